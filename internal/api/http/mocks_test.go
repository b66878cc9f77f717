package http_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"warebook-backend/internal/domain"
	"warebook-backend/internal/service"
)

// MockBookingService
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) CreateBookingOrder(ctx context.Context, warehouseID int64, customer service.CustomerDetails, userID *int64) (*service.OrderSummary, error) {
	args := m.Called(ctx, warehouseID, customer, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.OrderSummary), args.Error(1)
}
func (m *MockBookingService) VerifyPayment(ctx context.Context, orderID, paymentID, signature string) (*domain.ConfirmedBooking, error) {
	args := m.Called(ctx, orderID, paymentID, signature)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConfirmedBooking), args.Error(1)
}
func (m *MockBookingService) HandlePaymentFailure(ctx context.Context, orderID, paymentID, reason string) error {
	args := m.Called(ctx, orderID, paymentID, reason)
	return args.Error(0)
}
func (m *MockBookingService) HandleWebhook(ctx context.Context, body []byte, signature string) error {
	args := m.Called(ctx, body, signature)
	return args.Error(0)
}
func (m *MockBookingService) GetPaymentStatus(ctx context.Context, orderID string) (*service.PaymentStatusInfo, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PaymentStatusInfo), args.Error(1)
}
func (m *MockBookingService) ListOwnerBookings(ctx context.Context, ownerID, page, pageSize int64) ([]domain.ConfirmedBooking, int64, error) {
	args := m.Called(ctx, ownerID, page, pageSize)
	return args.Get(0).([]domain.ConfirmedBooking), args.Get(1).(int64), args.Error(2)
}

// MockAuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, name, email, phone, company, password string) (*domain.User, string, string, error) {
	args := m.Called(ctx, name, email, phone, company, password)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*domain.User), args.String(1), args.String(2), args.Error(3)
}
func (m *MockAuthService) Login(ctx context.Context, email, password string) (*domain.User, string, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*domain.User), args.String(1), args.String(2), args.Error(3)
}
func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.String(1), args.Error(2)
}
func (m *MockAuthService) RequestPasswordReset(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}
func (m *MockAuthService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	args := m.Called(ctx, email, code, newPassword)
	return args.Error(0)
}

// MockWarehouseService
type MockWarehouseService struct {
	mock.Mock
}

func (m *MockWarehouseService) CreateWarehouse(ctx context.Context, ownerID int64, w *domain.Warehouse) error {
	args := m.Called(ctx, ownerID, w)
	return args.Error(0)
}
func (m *MockWarehouseService) GetPublicWarehouse(ctx context.Context, id int64) (*domain.Warehouse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Warehouse), args.Error(1)
}
func (m *MockWarehouseService) ListPublicWarehouses(ctx context.Context, filter domain.WarehouseFilter, page, pageSize int64) ([]domain.Warehouse, int64, error) {
	args := m.Called(ctx, filter, page, pageSize)
	return args.Get(0).([]domain.Warehouse), args.Get(1).(int64), args.Error(2)
}
func (m *MockWarehouseService) ListMyWarehouses(ctx context.Context, ownerID int64) ([]domain.Warehouse, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Warehouse), args.Error(1)
}
func (m *MockWarehouseService) UpdateWarehouse(ctx context.Context, ownerID int64, w *domain.Warehouse) error {
	args := m.Called(ctx, ownerID, w)
	return args.Error(0)
}
func (m *MockWarehouseService) DeleteWarehouse(ctx context.Context, userID int64, isAdmin bool, id int64) error {
	args := m.Called(ctx, userID, isAdmin, id)
	return args.Error(0)
}

// MockInquiryService
type MockInquiryService struct {
	mock.Mock
}

func (m *MockInquiryService) CreateInquiry(ctx context.Context, inq *domain.Inquiry) error {
	args := m.Called(ctx, inq)
	return args.Error(0)
}
func (m *MockInquiryService) ListInquiries(ctx context.Context, status domain.InquiryStatus, page, pageSize int64) ([]domain.Inquiry, int64, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Inquiry), args.Get(1).(int64), args.Error(2)
}
func (m *MockInquiryService) UpdateInquiryStatus(ctx context.Context, id int64, status domain.InquiryStatus, allocatedTo *int64) error {
	args := m.Called(ctx, id, status, allocatedTo)
	return args.Error(0)
}

// MockContactService
type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) CreateContact(ctx context.Context, c *domain.Contact) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockContactService) ListContacts(ctx context.Context, status domain.ContactStatus, page, pageSize int64) ([]domain.Contact, int64, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Contact), args.Get(1).(int64), args.Error(2)
}
func (m *MockContactService) UpdateContactStatus(ctx context.Context, id int64, status domain.ContactStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockAdminService
type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}
func (m *MockAdminService) ListWarehouses(ctx context.Context, status domain.WarehouseStatus, page, pageSize int64) ([]domain.Warehouse, int64, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Warehouse), args.Get(1).(int64), args.Error(2)
}
func (m *MockAdminService) SetWarehouseApproval(ctx context.Context, id int64, status domain.WarehouseStatus, reason string) error {
	args := m.Called(ctx, id, status, reason)
	return args.Error(0)
}
func (m *MockAdminService) ListBookings(ctx context.Context, page, pageSize int64) ([]domain.ConfirmedBooking, int64, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.ConfirmedBooking), args.Get(1).(int64), args.Error(2)
}
func (m *MockAdminService) ListPayments(ctx context.Context, page, pageSize int64) ([]domain.Payment, int64, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Payment), args.Get(1).(int64), args.Error(2)
}
func (m *MockAdminService) ListUsers(ctx context.Context, page, pageSize int64) ([]domain.User, int64, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.User), args.Get(1).(int64), args.Error(2)
}

package service_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"warebook-backend/internal/domain"
	"warebook-backend/internal/gateway"
)

// MockPaymentRepo
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPaymentRepo) GetByOrderID(ctx context.Context, orderID string) (*domain.Payment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) Confirm(ctx context.Context, capture domain.PaymentCapture, booking *domain.ConfirmedBooking) error {
	args := m.Called(ctx, capture, booking)
	return args.Error(0)
}
func (m *MockPaymentRepo) MarkFailed(ctx context.Context, orderID, paymentID, reason string) error {
	args := m.Called(ctx, orderID, paymentID, reason)
	return args.Error(0)
}
func (m *MockPaymentRepo) ExpireStale(ctx context.Context, olderThan time.Time) ([]domain.Payment, error) {
	args := m.Called(ctx, olderThan)
	return args.Get(0).([]domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) List(ctx context.Context, page, pageSize int64) ([]domain.Payment, int64, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Payment), args.Get(1).(int64), args.Error(2)
}
func (m *MockPaymentRepo) TotalRevenueCents(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockPaymentRepo) MonthlyRevenue(ctx context.Context, months int) ([]domain.MonthlyRevenue, error) {
	args := m.Called(ctx, months)
	return args.Get(0).([]domain.MonthlyRevenue), args.Error(1)
}

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) GetByPaymentID(ctx context.Context, paymentID int64) (*domain.ConfirmedBooking, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConfirmedBooking), args.Error(1)
}
func (m *MockBookingRepo) ListByOwner(ctx context.Context, ownerID int64, page, pageSize int64) ([]domain.ConfirmedBooking, int64, error) {
	args := m.Called(ctx, ownerID, page, pageSize)
	return args.Get(0).([]domain.ConfirmedBooking), args.Get(1).(int64), args.Error(2)
}
func (m *MockBookingRepo) List(ctx context.Context, page, pageSize int64) ([]domain.ConfirmedBooking, int64, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.ConfirmedBooking), args.Get(1).(int64), args.Error(2)
}
func (m *MockBookingRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockBookingRepo) Recent(ctx context.Context, limit int64) ([]domain.ConfirmedBooking, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.ConfirmedBooking), args.Error(1)
}

// MockWarehouseRepo
type MockWarehouseRepo struct {
	mock.Mock
}

func (m *MockWarehouseRepo) Create(ctx context.Context, w *domain.Warehouse) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}
func (m *MockWarehouseRepo) GetByID(ctx context.Context, id int64) (*domain.Warehouse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Warehouse), args.Error(1)
}
func (m *MockWarehouseRepo) Update(ctx context.Context, w *domain.Warehouse) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}
func (m *MockWarehouseRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockWarehouseRepo) ListApproved(ctx context.Context, filter domain.WarehouseFilter, page, pageSize int64) ([]domain.Warehouse, int64, error) {
	args := m.Called(ctx, filter, page, pageSize)
	return args.Get(0).([]domain.Warehouse), args.Get(1).(int64), args.Error(2)
}
func (m *MockWarehouseRepo) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Warehouse, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]domain.Warehouse), args.Error(1)
}
func (m *MockWarehouseRepo) ListAll(ctx context.Context, status domain.WarehouseStatus, page, pageSize int64) ([]domain.Warehouse, int64, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Warehouse), args.Get(1).(int64), args.Error(2)
}
func (m *MockWarehouseRepo) SetApproval(ctx context.Context, id int64, status domain.WarehouseStatus, reason string) error {
	args := m.Called(ctx, id, status, reason)
	return args.Error(0)
}
func (m *MockWarehouseRepo) IncrementViews(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockWarehouseRepo) CountByStatus(ctx context.Context) (map[domain.WarehouseStatus]int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[domain.WarehouseStatus]int64), args.Error(1)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) List(ctx context.Context, page, pageSize int64) ([]domain.User, int64, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.User), args.Get(1).(int64), args.Error(2)
}
func (m *MockUserRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockUserRepo) SetResetCode(ctx context.Context, userID int64, codeHash string, expires time.Time) error {
	args := m.Called(ctx, userID, codeHash, expires)
	return args.Error(0)
}
func (m *MockUserRepo) ClearResetCode(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
func (m *MockUserRepo) ClearExpiredResetCodes(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockInquiryRepo
type MockInquiryRepo struct {
	mock.Mock
}

func (m *MockInquiryRepo) Create(ctx context.Context, inq *domain.Inquiry) error {
	args := m.Called(ctx, inq)
	return args.Error(0)
}
func (m *MockInquiryRepo) GetByID(ctx context.Context, id int64) (*domain.Inquiry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Inquiry), args.Error(1)
}
func (m *MockInquiryRepo) List(ctx context.Context, status domain.InquiryStatus, page, pageSize int64) ([]domain.Inquiry, int64, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Inquiry), args.Get(1).(int64), args.Error(2)
}
func (m *MockInquiryRepo) UpdateStatus(ctx context.Context, id int64, status domain.InquiryStatus, allocatedTo *int64) error {
	args := m.Called(ctx, id, status, allocatedTo)
	return args.Error(0)
}
func (m *MockInquiryRepo) CountByStatus(ctx context.Context) (map[domain.InquiryStatus]int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[domain.InquiryStatus]int64), args.Error(1)
}

// MockGateway
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) KeyID() string {
	args := m.Called()
	return args.String(0)
}
func (m *MockGateway) CreateOrder(ctx context.Context, amountCents int64, currency, receipt string, notes map[string]string) (*gateway.Order, error) {
	args := m.Called(ctx, amountCents, currency, receipt, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.Order), args.Error(1)
}
func (m *MockGateway) FetchPayment(ctx context.Context, paymentID string) (*gateway.PaymentDetails, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*gateway.PaymentDetails), args.Error(1)
}
func (m *MockGateway) VerifyPaymentSignature(orderID, paymentID, signature string) bool {
	args := m.Called(orderID, paymentID, signature)
	return args.Bool(0)
}
func (m *MockGateway) VerifyWebhookSignature(body []byte, signature string) bool {
	args := m.Called(body, signature)
	return args.Bool(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendBookingConfirmation(ctx context.Context, booking *domain.ConfirmedBooking, warehouse *domain.Warehouse) error {
	args := m.Called(ctx, booking, warehouse)
	return args.Error(0)
}
func (m *MockEmailService) SendOwnerBookingAlert(ctx context.Context, ownerEmail, ownerName string, booking *domain.ConfirmedBooking, warehouse *domain.Warehouse) error {
	args := m.Called(ctx, ownerEmail, ownerName, booking, warehouse)
	return args.Error(0)
}
func (m *MockEmailService) SendPaymentPendingNotice(ctx context.Context, payment *domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}
func (m *MockEmailService) SendOwnerInquiryNotice(ctx context.Context, ownerEmail, ownerName string, payment *domain.Payment) error {
	args := m.Called(ctx, ownerEmail, ownerName, payment)
	return args.Error(0)
}
func (m *MockEmailService) SendPasswordResetCode(ctx context.Context, email, name, code string) error {
	args := m.Called(ctx, email, name, code)
	return args.Error(0)
}

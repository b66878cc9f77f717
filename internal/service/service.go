package service

import (
	"context"
	"errors"

	"warebook-backend/internal/domain"
	"warebook-backend/internal/gateway"
)

var (
	ErrWarehouseNotFound  = errors.New("warehouse not found")
	ErrPaymentNotFound    = errors.New("payment not found")
	ErrSignatureMismatch  = errors.New("payment signature verification failed")
	ErrPaymentClosed      = errors.New("payment is already closed")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidResetCode   = errors.New("invalid or expired reset code")
	ErrForbidden          = errors.New("operation not permitted")
	ErrInquiryNotFound    = errors.New("inquiry not found")
	ErrContactNotFound    = errors.New("contact not found")
	ErrInvalidTransition  = errors.New("invalid status transition")
)

// PaymentGateway is the slice of the gateway client the booking workflow
// consumes; *gateway.Client satisfies it.
type PaymentGateway interface {
	KeyID() string
	CreateOrder(ctx context.Context, amountCents int64, currency, receipt string, notes map[string]string) (*gateway.Order, error)
	FetchPayment(ctx context.Context, paymentID string) (*gateway.PaymentDetails, error)
	VerifyPaymentSignature(orderID, paymentID, signature string) bool
	VerifyWebhookSignature(body []byte, signature string) bool
}

// CustomerDetails are the checkout form fields captured with an order.
type CustomerDetails struct {
	Name    string
	Email   string
	Phone   string
	Company string
}

// OrderSummary is returned to the frontend to open the gateway checkout.
type OrderSummary struct {
	OrderID       string `json:"order_id"`
	AmountCents   int64  `json:"amount_cents"`
	Currency      string `json:"currency"`
	KeyID         string `json:"key_id"`
	Receipt       string `json:"receipt"`
	WarehouseID   int64  `json:"warehouse_id"`
	WarehouseName string `json:"warehouse_name"`
}

// PaymentStatusInfo is the public status view of a payment.
type PaymentStatusInfo struct {
	OrderID       string               `json:"order_id"`
	Status        domain.PaymentStatus `json:"status"`
	BookingNumber string               `json:"booking_number,omitempty"`
}

type BookingService interface {
	CreateBookingOrder(ctx context.Context, warehouseID int64, customer CustomerDetails, userID *int64) (*OrderSummary, error)
	VerifyPayment(ctx context.Context, orderID, paymentID, signature string) (*domain.ConfirmedBooking, error)
	HandlePaymentFailure(ctx context.Context, orderID, paymentID, reason string) error
	HandleWebhook(ctx context.Context, body []byte, signature string) error
	GetPaymentStatus(ctx context.Context, orderID string) (*PaymentStatusInfo, error)
	ListOwnerBookings(ctx context.Context, ownerID, page, pageSize int64) ([]domain.ConfirmedBooking, int64, error)
}

type AuthService interface {
	Signup(ctx context.Context, name, email, phone, company, password string) (*domain.User, string, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email, code, newPassword string) error
}

type WarehouseService interface {
	CreateWarehouse(ctx context.Context, ownerID int64, w *domain.Warehouse) error
	GetPublicWarehouse(ctx context.Context, id int64) (*domain.Warehouse, error)
	ListPublicWarehouses(ctx context.Context, filter domain.WarehouseFilter, page, pageSize int64) ([]domain.Warehouse, int64, error)
	ListMyWarehouses(ctx context.Context, ownerID int64) ([]domain.Warehouse, error)
	UpdateWarehouse(ctx context.Context, ownerID int64, w *domain.Warehouse) error
	DeleteWarehouse(ctx context.Context, userID int64, isAdmin bool, id int64) error
}

type InquiryService interface {
	CreateInquiry(ctx context.Context, inq *domain.Inquiry) error
	ListInquiries(ctx context.Context, status domain.InquiryStatus, page, pageSize int64) ([]domain.Inquiry, int64, error)
	UpdateInquiryStatus(ctx context.Context, id int64, status domain.InquiryStatus, allocatedTo *int64) error
}

type ContactService interface {
	CreateContact(ctx context.Context, c *domain.Contact) error
	ListContacts(ctx context.Context, status domain.ContactStatus, page, pageSize int64) ([]domain.Contact, int64, error)
	UpdateContactStatus(ctx context.Context, id int64, status domain.ContactStatus) error
}

type AdminService interface {
	GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error)
	ListWarehouses(ctx context.Context, status domain.WarehouseStatus, page, pageSize int64) ([]domain.Warehouse, int64, error)
	SetWarehouseApproval(ctx context.Context, id int64, status domain.WarehouseStatus, reason string) error
	ListBookings(ctx context.Context, page, pageSize int64) ([]domain.ConfirmedBooking, int64, error)
	ListPayments(ctx context.Context, page, pageSize int64) ([]domain.Payment, int64, error)
	ListUsers(ctx context.Context, page, pageSize int64) ([]domain.User, int64, error)
}

// EmailService formats and dispatches the transactional emails. All sends
// are best-effort: implementations queue the message and report delivery
// problems through logs only.
type EmailService interface {
	SendBookingConfirmation(ctx context.Context, booking *domain.ConfirmedBooking, warehouse *domain.Warehouse) error
	SendOwnerBookingAlert(ctx context.Context, ownerEmail, ownerName string, booking *domain.ConfirmedBooking, warehouse *domain.Warehouse) error
	SendPaymentPendingNotice(ctx context.Context, payment *domain.Payment) error
	SendOwnerInquiryNotice(ctx context.Context, ownerEmail, ownerName string, payment *domain.Payment) error
	SendPasswordResetCode(ctx context.Context, email, name, code string) error
}

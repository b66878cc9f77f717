package repository

import (
	"context"
	"errors"
	"time"

	"warebook-backend/internal/domain"
)

// ErrPaymentNotPending is returned by Confirm and the status transitions
// when the payment row is no longer in the "created" state.
var ErrPaymentNotPending = errors.New("payment is not in created state")

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	List(ctx context.Context, page, pageSize int64) ([]domain.User, int64, error)
	Count(ctx context.Context) (int64, error)

	// OTP password reset
	SetResetCode(ctx context.Context, userID int64, codeHash string, expires time.Time) error
	ClearResetCode(ctx context.Context, userID int64) error
	ClearExpiredResetCodes(ctx context.Context) (int64, error)
}

type WarehouseRepository interface {
	Create(ctx context.Context, w *domain.Warehouse) error
	GetByID(ctx context.Context, id int64) (*domain.Warehouse, error)
	Update(ctx context.Context, w *domain.Warehouse) error
	Delete(ctx context.Context, id int64) error
	ListApproved(ctx context.Context, filter domain.WarehouseFilter, page, pageSize int64) ([]domain.Warehouse, int64, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Warehouse, error)
	ListAll(ctx context.Context, status domain.WarehouseStatus, page, pageSize int64) ([]domain.Warehouse, int64, error)
	SetApproval(ctx context.Context, id int64, status domain.WarehouseStatus, reason string) error
	IncrementViews(ctx context.Context, id int64) error
	CountByStatus(ctx context.Context) (map[domain.WarehouseStatus]int64, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) error
	GetByOrderID(ctx context.Context, orderID string) (*domain.Payment, error)
	// Confirm atomically marks the payment paid and inserts the confirmed
	// booking. Returns ErrPaymentNotPending when the row has already left
	// the "created" state; no writes happen in that case.
	Confirm(ctx context.Context, capture domain.PaymentCapture, booking *domain.ConfirmedBooking) error
	MarkFailed(ctx context.Context, orderID, paymentID, reason string) error
	ExpireStale(ctx context.Context, olderThan time.Time) ([]domain.Payment, error)
	List(ctx context.Context, page, pageSize int64) ([]domain.Payment, int64, error)
	TotalRevenueCents(ctx context.Context) (int64, error)
	MonthlyRevenue(ctx context.Context, months int) ([]domain.MonthlyRevenue, error)
}

type BookingRepository interface {
	GetByPaymentID(ctx context.Context, paymentID int64) (*domain.ConfirmedBooking, error)
	ListByOwner(ctx context.Context, ownerID int64, page, pageSize int64) ([]domain.ConfirmedBooking, int64, error)
	List(ctx context.Context, page, pageSize int64) ([]domain.ConfirmedBooking, int64, error)
	Count(ctx context.Context) (int64, error)
	Recent(ctx context.Context, limit int64) ([]domain.ConfirmedBooking, error)
}

type InquiryRepository interface {
	Create(ctx context.Context, inq *domain.Inquiry) error
	GetByID(ctx context.Context, id int64) (*domain.Inquiry, error)
	List(ctx context.Context, status domain.InquiryStatus, page, pageSize int64) ([]domain.Inquiry, int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.InquiryStatus, allocatedTo *int64) error
	CountByStatus(ctx context.Context) (map[domain.InquiryStatus]int64, error)
}

type ContactRepository interface {
	Create(ctx context.Context, c *domain.Contact) error
	GetByID(ctx context.Context, id int64) (*domain.Contact, error)
	List(ctx context.Context, status domain.ContactStatus, page, pageSize int64) ([]domain.Contact, int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ContactStatus) error
}

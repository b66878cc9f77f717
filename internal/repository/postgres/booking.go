package postgres

import (
	"context"
	"database/sql"

	"warebook-backend/internal/domain"
	"warebook-backend/internal/repository"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = `id, booking_number, warehouse_id, payment_id, owner_id, user_id, customer_name, customer_email, customer_phone, customer_company, amount_paid_cents, payment_method, payment_date, status, created_on`

func (r *bookingRepository) GetByPaymentID(ctx context.Context, paymentID int64) (*domain.ConfirmedBooking, error) {
	b := &domain.ConfirmedBooking{}
	query := `SELECT ` + bookingColumns + ` FROM confirmed_bookings WHERE payment_id = $1`
	err := r.db.QueryRowContext(ctx, query, paymentID).Scan(
		&b.ID, &b.BookingNumber, &b.WarehouseID, &b.PaymentIDRef, &b.OwnerID, &b.UserID,
		&b.CustomerName, &b.CustomerEmail, &b.CustomerPhone, &b.CustomerCompany,
		&b.AmountPaidCents, &b.PaymentMethod, &b.PaymentDate, &b.Status, &b.CreatedOn,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) ListByOwner(ctx context.Context, ownerID int64, page, pageSize int64) ([]domain.ConfirmedBooking, int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM confirmed_bookings WHERE owner_id = $1`, ownerID).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + bookingColumns + ` FROM confirmed_bookings WHERE owner_id = $1 ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	bookings, err := r.queryBookings(ctx, query, ownerID, pageSize, (page-1)*pageSize)
	return bookings, count, err
}

func (r *bookingRepository) List(ctx context.Context, page, pageSize int64) ([]domain.ConfirmedBooking, int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM confirmed_bookings`).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + bookingColumns + ` FROM confirmed_bookings ORDER BY created_on DESC LIMIT $1 OFFSET $2`
	bookings, err := r.queryBookings(ctx, query, pageSize, (page-1)*pageSize)
	return bookings, count, err
}

func (r *bookingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM confirmed_bookings`).Scan(&count)
	return count, err
}

func (r *bookingRepository) Recent(ctx context.Context, limit int64) ([]domain.ConfirmedBooking, error) {
	query := `SELECT ` + bookingColumns + ` FROM confirmed_bookings ORDER BY created_on DESC LIMIT $1`
	return r.queryBookings(ctx, query, limit)
}

func (r *bookingRepository) queryBookings(ctx context.Context, query string, args ...interface{}) ([]domain.ConfirmedBooking, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.ConfirmedBooking
	for rows.Next() {
		var b domain.ConfirmedBooking
		if err := rows.Scan(
			&b.ID, &b.BookingNumber, &b.WarehouseID, &b.PaymentIDRef, &b.OwnerID, &b.UserID,
			&b.CustomerName, &b.CustomerEmail, &b.CustomerPhone, &b.CustomerCompany,
			&b.AmountPaidCents, &b.PaymentMethod, &b.PaymentDate, &b.Status, &b.CreatedOn,
		); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"warebook-backend/internal/domain"
	"warebook-backend/internal/repository"
)

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

const paymentColumns = `id, order_id, payment_id, signature, amount_cents, currency, status, method, receipt, booking_details, gateway_response, failure_reason, warehouse_id, user_id, created_on, updated_on, paid_on`

func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	details, err := json.Marshal(p.BookingDetails)
	if err != nil {
		return fmt.Errorf("marshal booking details: %w", err)
	}
	query := `INSERT INTO payments (order_id, amount_cents, currency, status, receipt, booking_details, warehouse_id, user_id, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		p.OrderID, p.AmountCents, p.Currency, p.Status, p.Receipt, details,
		p.WarehouseID, p.UserID, now, now,
	).Scan(&p.ID)
}

func (r *paymentRepository) GetByOrderID(ctx context.Context, orderID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE order_id = $1`
	return scanPayment(r.db.QueryRowContext(ctx, query, orderID))
}

func scanPayment(row *sql.Row) (*domain.Payment, error) {
	p := &domain.Payment{}
	var details []byte
	var gatewayResp []byte
	err := row.Scan(
		&p.ID, &p.OrderID, &p.PaymentID, &p.Signature, &p.AmountCents, &p.Currency,
		&p.Status, &p.Method, &p.Receipt, &details, &gatewayResp, &p.FailureReason,
		&p.WarehouseID, &p.UserID, &p.CreatedOn, &p.UpdatedOn, &p.PaidOn,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(details, &p.BookingDetails); err != nil {
		return nil, fmt.Errorf("unmarshal booking details: %w", err)
	}
	p.GatewayResponse = gatewayResp
	return p, nil
}

// Confirm marks the payment paid and creates the confirmed booking in a
// single transaction. The status='created' guard makes the transition safe
// against concurrent verify calls and duplicate webhook deliveries: the
// second caller gets ErrPaymentNotPending and no second booking is written.
func (r *paymentRepository) Confirm(ctx context.Context, capture domain.PaymentCapture, booking *domain.ConfirmedBooking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now()
	var paymentRowID int64
	err = tx.QueryRowContext(ctx, `
		UPDATE payments
		SET status = 'paid', payment_id = $1, signature = $2, method = $3,
		    gateway_response = $4, paid_on = $5, updated_on = $5
		WHERE order_id = $6 AND status = 'created'
		RETURNING id`,
		capture.PaymentID, capture.Signature, capture.Method,
		[]byte(capture.GatewayResponse), now, capture.OrderID,
	).Scan(&paymentRowID)
	if err == sql.ErrNoRows {
		return repository.ErrPaymentNotPending
	}
	if err != nil {
		return err
	}

	booking.PaymentIDRef = paymentRowID
	booking.PaymentDate = now
	err = tx.QueryRowContext(ctx, `
		INSERT INTO confirmed_bookings (booking_number, warehouse_id, payment_id, owner_id, user_id, customer_name, customer_email, customer_phone, customer_company, amount_paid_cents, payment_method, payment_date, status, created_on)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14) RETURNING id`,
		booking.BookingNumber, booking.WarehouseID, paymentRowID, booking.OwnerID, booking.UserID,
		booking.CustomerName, booking.CustomerEmail, booking.CustomerPhone, booking.CustomerCompany,
		booking.AmountPaidCents, booking.PaymentMethod, now, domain.BookingStatusConfirmed, now,
	).Scan(&booking.ID)
	if err != nil {
		return err
	}
	booking.Status = domain.BookingStatusConfirmed
	booking.CreatedOn = now

	return tx.Commit()
}

func (r *paymentRepository) MarkFailed(ctx context.Context, orderID, paymentID, reason string) error {
	query := `UPDATE payments SET status='failed', payment_id=$1, failure_reason=$2, updated_on=$3
	          WHERE order_id=$4 AND status='created'`
	res, err := r.db.ExecContext(ctx, query, paymentID, reason, time.Now(), orderID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return repository.ErrPaymentNotPending
	}
	return nil
}

// ExpireStale cancels payments that have sat in "created" since before the
// cutoff and returns the cancelled rows so callers can notify customers.
func (r *paymentRepository) ExpireStale(ctx context.Context, olderThan time.Time) ([]domain.Payment, error) {
	query := `UPDATE payments SET status='cancelled', updated_on=$1
	          WHERE status='created' AND created_on < $2
	          RETURNING ` + paymentColumns
	rows, err := r.db.QueryContext(ctx, query, time.Now(), olderThan)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		var details []byte
		var gatewayResp []byte
		if err := rows.Scan(
			&p.ID, &p.OrderID, &p.PaymentID, &p.Signature, &p.AmountCents, &p.Currency,
			&p.Status, &p.Method, &p.Receipt, &details, &gatewayResp, &p.FailureReason,
			&p.WarehouseID, &p.UserID, &p.CreatedOn, &p.UpdatedOn, &p.PaidOn,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(details, &p.BookingDetails); err != nil {
			return nil, fmt.Errorf("unmarshal booking details: %w", err)
		}
		p.GatewayResponse = gatewayResp
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *paymentRepository) List(ctx context.Context, page, pageSize int64) ([]domain.Payment, int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM payments`).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + paymentColumns + ` FROM payments ORDER BY created_on DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		var details []byte
		var gatewayResp []byte
		if err := rows.Scan(
			&p.ID, &p.OrderID, &p.PaymentID, &p.Signature, &p.AmountCents, &p.Currency,
			&p.Status, &p.Method, &p.Receipt, &details, &gatewayResp, &p.FailureReason,
			&p.WarehouseID, &p.UserID, &p.CreatedOn, &p.UpdatedOn, &p.PaidOn,
		); err != nil {
			return nil, 0, err
		}
		if err := json.Unmarshal(details, &p.BookingDetails); err != nil {
			return nil, 0, fmt.Errorf("unmarshal booking details: %w", err)
		}
		p.GatewayResponse = gatewayResp
		payments = append(payments, p)
	}
	return payments, count, rows.Err()
}

func (r *paymentRepository) TotalRevenueCents(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(amount_cents), 0) FROM payments WHERE status='paid'`).Scan(&total)
	return total, err
}

func (r *paymentRepository) MonthlyRevenue(ctx context.Context, months int) ([]domain.MonthlyRevenue, error) {
	query := `SELECT to_char(paid_on, 'YYYY-MM') AS month, SUM(amount_cents), count(*)
	          FROM payments
	          WHERE status='paid' AND paid_on > now() - ($1 || ' months')::interval
	          GROUP BY month ORDER BY month`
	rows, err := r.db.QueryContext(ctx, query, months)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var series []domain.MonthlyRevenue
	for rows.Next() {
		var m domain.MonthlyRevenue
		if err := rows.Scan(&m.Month, &m.RevenueCents, &m.Payments); err != nil {
			return nil, err
		}
		series = append(series, m)
	}
	return series, rows.Err()
}

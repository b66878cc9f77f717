package domain

import (
	"encoding/json"
	"time"
)

type PaymentStatus string

const (
	PaymentStatusCreated   PaymentStatus = "created"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// BookingIntent is the customer snapshot captured when an order is created.
// It is serialized to the payments.booking_details JSONB column and copied
// onto the confirmed booking once the payment is captured.
type BookingIntent struct {
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	CustomerPhone   string `json:"customer_phone"`
	CustomerCompany string `json:"customer_company,omitempty"`
	WarehouseID     int64  `json:"warehouse_id"`
	WarehouseName   string `json:"warehouse_name"`
}

type Payment struct {
	ID              int64           `json:"id"`
	OrderID         string          `json:"order_id"`
	PaymentID       *string         `json:"payment_id,omitempty"` // gateway payment id, set on capture
	Signature       *string         `json:"-"`
	AmountCents     int64           `json:"amount_cents"`
	Currency        string          `json:"currency"`
	Status          PaymentStatus   `json:"status"`
	Method          string          `json:"method,omitempty"`
	Receipt         string          `json:"receipt"`
	BookingDetails  BookingIntent   `json:"booking_details"`
	GatewayResponse json.RawMessage `json:"-"`
	FailureReason   string          `json:"failure_reason,omitempty"`
	WarehouseID     int64           `json:"warehouse_id"`
	UserID          *int64          `json:"user_id,omitempty"` // nil for guest checkouts
	CreatedOn       time.Time       `json:"created_on"`
	UpdatedOn       time.Time       `json:"updated_on"`
	PaidOn          *time.Time      `json:"paid_on,omitempty"`
}

// Terminal reports whether the payment has left the "created" state.
// paid, failed and cancelled are all terminal.
func (p *Payment) Terminal() bool {
	return p.Status != PaymentStatusCreated
}

// PaymentCapture carries the gateway data recorded when a payment is
// marked paid.
type PaymentCapture struct {
	OrderID         string
	PaymentID       string
	Signature       string
	Method          string
	GatewayResponse json.RawMessage
}

package domain

import (
	"crypto/rand"
	"fmt"
	"time"
)

const BookingStatusConfirmed = "confirmed"

// ConfirmedBooking is a finalized reservation, created in the same
// transaction that marks its payment paid. The payment pairing is 1:1.
type ConfirmedBooking struct {
	ID              int64     `json:"id"`
	BookingNumber   string    `json:"booking_number"`
	WarehouseID     int64     `json:"warehouse_id"`
	Warehouse       *Warehouse `json:"warehouse,omitempty"`
	PaymentIDRef    int64     `json:"payment_id"`
	OwnerID         int64     `json:"owner_id"`
	UserID          *int64    `json:"user_id,omitempty"`
	CustomerName    string    `json:"customer_name"`
	CustomerEmail   string    `json:"customer_email"`
	CustomerPhone   string    `json:"customer_phone"`
	CustomerCompany string    `json:"customer_company,omitempty"`
	AmountPaidCents int64     `json:"amount_paid_cents"`
	PaymentMethod   string    `json:"payment_method"`
	PaymentDate     time.Time `json:"payment_date"`
	Status          string    `json:"status"`
	CreatedOn       time.Time `json:"created_on"`
}

const bookingNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateBookingNumber builds a booking number of the form
// WB<unix-millis><6 uppercase alphanumerics>.
func GenerateBookingNumber() string {
	buf := make([]byte, 6)
	rand.Read(buf)
	for i, b := range buf {
		buf[i] = bookingNumberAlphabet[int(b)%len(bookingNumberAlphabet)]
	}
	return fmt.Sprintf("WB%d%s", time.Now().UnixMilli(), buf)
}

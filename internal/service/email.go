package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"warebook-backend/internal/domain"
)

// SendGridSender delivers a single email through the SendGrid API.
type SendGridSender struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewSendGridSender(apiKey, fromEmail, fromName string) *SendGridSender {
	return &SendGridSender{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *SendGridSender) Send(to, toName, subject, html string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)

	message := mail.NewSingleEmail(from, subject, recipient, "", html)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}

	return nil
}

type emailService struct {
	queue *EmailQueue
}

// NewEmailService wraps the queue with the transactional templates.
func NewEmailService(queue *EmailQueue) EmailService {
	return &emailService{queue: queue}
}

func (s *emailService) SendBookingConfirmation(ctx context.Context, booking *domain.ConfirmedBooking, warehouse *domain.Warehouse) error {
	subject := fmt.Sprintf("Booking confirmed - %s", booking.BookingNumber)
	html := fmt.Sprintf(`<h2>Your booking is confirmed</h2>
<p>Hi %s,</p>
<p>Your booking for <strong>%s</strong> (%s, %s) is confirmed.</p>
<table>
<tr><td>Booking number</td><td><strong>%s</strong></td></tr>
<tr><td>Amount paid</td><td>%s</td></tr>
<tr><td>Payment method</td><td>%s</td></tr>
</table>
<p>The warehouse owner will contact you shortly to arrange the handover.</p>
<p>- The WareBook Team</p>`,
		booking.CustomerName, warehouse.Name, warehouse.City, warehouse.State,
		booking.BookingNumber, formatAmount(booking.AmountPaidCents), booking.PaymentMethod)
	return s.queue.Enqueue(booking.CustomerEmail, booking.CustomerName, subject, html)
}

func (s *emailService) SendOwnerBookingAlert(ctx context.Context, ownerEmail, ownerName string, booking *domain.ConfirmedBooking, warehouse *domain.Warehouse) error {
	subject := fmt.Sprintf("New booking for %s - %s", warehouse.Name, booking.BookingNumber)
	html := fmt.Sprintf(`<h2>You have a new booking</h2>
<p>Hi %s,</p>
<p>Your warehouse <strong>%s</strong> has been booked.</p>
<table>
<tr><td>Booking number</td><td><strong>%s</strong></td></tr>
<tr><td>Customer</td><td>%s (%s)</td></tr>
<tr><td>Phone</td><td>%s</td></tr>
<tr><td>Amount paid</td><td>%s</td></tr>
</table>
<p>Please reach out to the customer to arrange the handover.</p>
<p>- The WareBook Team</p>`,
		ownerName, warehouse.Name, booking.BookingNumber,
		booking.CustomerName, booking.CustomerEmail, booking.CustomerPhone,
		formatAmount(booking.AmountPaidCents))
	return s.queue.Enqueue(ownerEmail, ownerName, subject, html)
}

func (s *emailService) SendPaymentPendingNotice(ctx context.Context, payment *domain.Payment) error {
	intent := payment.BookingDetails
	subject := "Your warehouse booking is still pending"
	html := fmt.Sprintf(`<h2>Payment not completed</h2>
<p>Hi %s,</p>
<p>We noticed you started a booking for <strong>%s</strong> but the payment was not completed.</p>
<p>The order has been cancelled. You can restart the booking at any time - no charge was made.</p>
<p>- The WareBook Team</p>`,
		intent.CustomerName, intent.WarehouseName)
	return s.queue.Enqueue(intent.CustomerEmail, intent.CustomerName, subject, html)
}

func (s *emailService) SendOwnerInquiryNotice(ctx context.Context, ownerEmail, ownerName string, payment *domain.Payment) error {
	intent := payment.BookingDetails
	subject := fmt.Sprintf("Interest in your warehouse %s", intent.WarehouseName)
	html := fmt.Sprintf(`<h2>A customer showed interest</h2>
<p>Hi %s,</p>
<p>%s (%s, %s) started a booking for <strong>%s</strong> but did not complete the payment.</p>
<p>You may want to follow up with them directly.</p>
<p>- The WareBook Team</p>`,
		ownerName, intent.CustomerName, intent.CustomerEmail, intent.CustomerPhone, intent.WarehouseName)
	return s.queue.Enqueue(ownerEmail, ownerName, subject, html)
}

func (s *emailService) SendPasswordResetCode(ctx context.Context, email, name, code string) error {
	subject := "Your WareBook password reset code"
	html := fmt.Sprintf(`<h2>Password reset</h2>
<p>Hi %s,</p>
<p>Your one-time reset code is:</p>
<p style="font-size:24px;letter-spacing:4px"><strong>%s</strong></p>
<p>The code expires in 10 minutes. If you did not request it, you can ignore this email.</p>
<p>- The WareBook Team</p>`,
		name, code)
	return s.queue.Enqueue(email, name, subject, html)
}

func formatAmount(cents int64) string {
	return fmt.Sprintf("%.2f", float64(cents)/100)
}

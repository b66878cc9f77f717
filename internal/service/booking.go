package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"warebook-backend/internal/domain"
	"warebook-backend/internal/logger"
	"warebook-backend/internal/repository"
)

type bookingService struct {
	paymentRepo   repository.PaymentRepository
	bookingRepo   repository.BookingRepository
	warehouseRepo repository.WarehouseRepository
	userRepo      repository.UserRepository
	gw            PaymentGateway
	emailSvc      EmailService
	feeCents      int64
	currency      string
}

func NewBookingService(
	paymentRepo repository.PaymentRepository,
	bookingRepo repository.BookingRepository,
	warehouseRepo repository.WarehouseRepository,
	userRepo repository.UserRepository,
	gw PaymentGateway,
	emailSvc EmailService,
	feeCents int64,
	currency string,
) BookingService {
	return &bookingService{
		paymentRepo:   paymentRepo,
		bookingRepo:   bookingRepo,
		warehouseRepo: warehouseRepo,
		userRepo:      userRepo,
		gw:            gw,
		emailSvc:      emailSvc,
		feeCents:      feeCents,
		currency:      currency,
	}
}

func (s *bookingService) CreateBookingOrder(ctx context.Context, warehouseID int64, customer CustomerDetails, userID *int64) (*OrderSummary, error) {
	w, err := s.warehouseRepo.GetByID(ctx, warehouseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrWarehouseNotFound
		}
		return nil, err
	}
	// Unapproved warehouses are invisible to the public flow.
	if w.Status != domain.WarehouseStatusApproved {
		return nil, ErrWarehouseNotFound
	}

	receipt := "rcpt_" + uuid.NewString()
	order, err := s.gw.CreateOrder(ctx, s.feeCents, s.currency, receipt, map[string]string{
		"warehouse_id":   fmt.Sprintf("%d", warehouseID),
		"customer_email": customer.Email,
	})
	if err != nil {
		return nil, fmt.Errorf("create gateway order: %w", err)
	}

	payment := &domain.Payment{
		OrderID:     order.ID,
		AmountCents: s.feeCents,
		Currency:    s.currency,
		Status:      domain.PaymentStatusCreated,
		Receipt:     receipt,
		BookingDetails: domain.BookingIntent{
			CustomerName:    customer.Name,
			CustomerEmail:   customer.Email,
			CustomerPhone:   customer.Phone,
			CustomerCompany: customer.Company,
			WarehouseID:     w.ID,
			WarehouseName:   w.Name,
		},
		WarehouseID: w.ID,
		UserID:      userID,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("persist payment: %w", err)
	}

	logger.Info("Booking order created", "order_id", order.ID, "warehouse_id", w.ID, "amount_cents", s.feeCents)

	return &OrderSummary{
		OrderID:       order.ID,
		AmountCents:   s.feeCents,
		Currency:      s.currency,
		KeyID:         s.gw.KeyID(),
		Receipt:       receipt,
		WarehouseID:   w.ID,
		WarehouseName: w.Name,
	}, nil
}

func (s *bookingService) VerifyPayment(ctx context.Context, orderID, paymentID, signature string) (*domain.ConfirmedBooking, error) {
	// Signature mismatch is terminal; the payment row is left untouched.
	if !s.gw.VerifyPaymentSignature(orderID, paymentID, signature) {
		return nil, ErrSignatureMismatch
	}

	payment, err := s.paymentRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}

	// A second verify of an already-paid order is an idempotent success:
	// return the existing booking instead of creating another.
	if payment.Status == domain.PaymentStatusPaid {
		return s.bookingRepo.GetByPaymentID(ctx, payment.ID)
	}
	if payment.Terminal() {
		return nil, ErrPaymentClosed
	}

	details, err := s.gw.FetchPayment(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("fetch gateway payment: %w", err)
	}

	booking, err := s.confirm(ctx, payment, domain.PaymentCapture{
		OrderID:         orderID,
		PaymentID:       paymentID,
		Signature:       signature,
		Method:          details.Method,
		GatewayResponse: details.Raw,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Payment verified, booking confirmed", "order_id", orderID, "booking_number", booking.BookingNumber)
	return booking, nil
}

// confirm runs the atomic paid+booking transition and dispatches the two
// notification emails. Email failures never affect the result.
func (s *bookingService) confirm(ctx context.Context, payment *domain.Payment, capture domain.PaymentCapture) (*domain.ConfirmedBooking, error) {
	warehouse, err := s.warehouseRepo.GetByID(ctx, payment.WarehouseID)
	if err != nil {
		return nil, fmt.Errorf("load warehouse for booking: %w", err)
	}

	intent := payment.BookingDetails
	booking := &domain.ConfirmedBooking{
		BookingNumber:   domain.GenerateBookingNumber(),
		WarehouseID:     warehouse.ID,
		OwnerID:         warehouse.OwnerID,
		UserID:          payment.UserID,
		CustomerName:    intent.CustomerName,
		CustomerEmail:   intent.CustomerEmail,
		CustomerPhone:   intent.CustomerPhone,
		CustomerCompany: intent.CustomerCompany,
		AmountPaidCents: payment.AmountCents,
		PaymentMethod:   capture.Method,
	}

	err = s.paymentRepo.Confirm(ctx, capture, booking)
	if errors.Is(err, repository.ErrPaymentNotPending) {
		// Lost a race against a concurrent verify or webhook. If the other
		// writer captured the payment, surface its booking.
		current, ferr := s.paymentRepo.GetByOrderID(ctx, capture.OrderID)
		if ferr != nil {
			return nil, ferr
		}
		if current.Status == domain.PaymentStatusPaid {
			return s.bookingRepo.GetByPaymentID(ctx, current.ID)
		}
		return nil, ErrPaymentClosed
	}
	if err != nil {
		return nil, fmt.Errorf("confirm payment: %w", err)
	}

	_ = s.emailSvc.SendBookingConfirmation(ctx, booking, warehouse)
	owner, oerr := s.userRepo.GetByID(ctx, warehouse.OwnerID)
	if oerr == nil {
		_ = s.emailSvc.SendOwnerBookingAlert(ctx, owner.Email, owner.Name, booking, warehouse)
	} else {
		logger.Warn("Owner lookup failed, skipping owner notification", "owner_id", warehouse.OwnerID, "error", oerr)
	}

	return booking, nil
}

func (s *bookingService) HandlePaymentFailure(ctx context.Context, orderID, paymentID, reason string) error {
	err := s.paymentRepo.MarkFailed(ctx, orderID, paymentID, reason)
	if errors.Is(err, repository.ErrPaymentNotPending) {
		// Already terminal; failure callbacks are fire-and-forget on the
		// gateway side, so treat replays as no-ops.
		if _, gerr := s.paymentRepo.GetByOrderID(ctx, orderID); errors.Is(gerr, sql.ErrNoRows) {
			return ErrPaymentNotFound
		}
		return nil
	}
	return err
}

// webhookEvent is the gateway's webhook envelope.
type webhookEvent struct {
	Event   string `json:"event"`
	Payload struct {
		OrderID   string `json:"order_id"`
		PaymentID string `json:"payment_id"`
		Method    string `json:"method"`
		Reason    string `json:"reason"`
	} `json:"payload"`
}

func (s *bookingService) HandleWebhook(ctx context.Context, body []byte, signature string) error {
	if !s.gw.VerifyWebhookSignature(body, signature) {
		return ErrSignatureMismatch
	}

	var event webhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("decode webhook payload: %w", err)
	}

	switch event.Event {
	case "payment.captured":
		payment, err := s.paymentRepo.GetByOrderID(ctx, event.Payload.OrderID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrPaymentNotFound
			}
			return err
		}
		if payment.Terminal() {
			// Duplicate delivery; nothing to do.
			return nil
		}
		_, err = s.confirm(ctx, payment, domain.PaymentCapture{
			OrderID:         event.Payload.OrderID,
			PaymentID:       event.Payload.PaymentID,
			Method:          event.Payload.Method,
			GatewayResponse: body,
		})
		if errors.Is(err, ErrPaymentClosed) {
			return nil
		}
		return err
	case "payment.failed":
		err := s.HandlePaymentFailure(ctx, event.Payload.OrderID, event.Payload.PaymentID, event.Payload.Reason)
		if errors.Is(err, ErrPaymentNotFound) {
			logger.Warn("Webhook for unknown order", "order_id", event.Payload.OrderID)
			return nil
		}
		return err
	default:
		logger.Debug("Ignoring webhook event", "event", event.Event)
		return nil
	}
}

func (s *bookingService) GetPaymentStatus(ctx context.Context, orderID string) (*PaymentStatusInfo, error) {
	payment, err := s.paymentRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}

	info := &PaymentStatusInfo{OrderID: payment.OrderID, Status: payment.Status}
	if payment.Status == domain.PaymentStatusPaid {
		booking, err := s.bookingRepo.GetByPaymentID(ctx, payment.ID)
		if err == nil {
			info.BookingNumber = booking.BookingNumber
		}
	}
	return info, nil
}

func (s *bookingService) ListOwnerBookings(ctx context.Context, ownerID, page, pageSize int64) ([]domain.ConfirmedBooking, int64, error) {
	return s.bookingRepo.ListByOwner(ctx, ownerID, page, pageSize)
}

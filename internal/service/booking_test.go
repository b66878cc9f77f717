package service_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"warebook-backend/internal/domain"
	"warebook-backend/internal/gateway"
	"warebook-backend/internal/repository"
	"warebook-backend/internal/service"
)

const (
	testFeeCents = int64(99900)
	testCurrency = "INR"
)

type bookingFixture struct {
	paymentRepo   *MockPaymentRepo
	bookingRepo   *MockBookingRepo
	warehouseRepo *MockWarehouseRepo
	userRepo      *MockUserRepo
	gw            *MockGateway
	emailSvc      *MockEmailService
	svc           service.BookingService
}

func newBookingFixture() *bookingFixture {
	f := &bookingFixture{
		paymentRepo:   new(MockPaymentRepo),
		bookingRepo:   new(MockBookingRepo),
		warehouseRepo: new(MockWarehouseRepo),
		userRepo:      new(MockUserRepo),
		gw:            new(MockGateway),
		emailSvc:      new(MockEmailService),
	}
	f.svc = service.NewBookingService(
		f.paymentRepo, f.bookingRepo, f.warehouseRepo, f.userRepo,
		f.gw, f.emailSvc, testFeeCents, testCurrency,
	)
	return f
}

func approvedWarehouse() *domain.Warehouse {
	return &domain.Warehouse{
		ID:      7,
		OwnerID: 3,
		Name:    "Dockside Storage",
		City:    "Pune",
		Status:  domain.WarehouseStatusApproved,
	}
}

func testCustomer() service.CustomerDetails {
	return service.CustomerDetails{
		Name:  "Asha Rao",
		Email: "asha@example.com",
		Phone: "+911234567890",
	}
}

func createdPayment() *domain.Payment {
	return &domain.Payment{
		ID:          42,
		OrderID:     "order_abc",
		AmountCents: testFeeCents,
		Currency:    testCurrency,
		Status:      domain.PaymentStatusCreated,
		Receipt:     "rcpt_x",
		BookingDetails: domain.BookingIntent{
			CustomerName:  "Asha Rao",
			CustomerEmail: "asha@example.com",
			CustomerPhone: "+911234567890",
			WarehouseID:   7,
			WarehouseName: "Dockside Storage",
		},
		WarehouseID: 7,
	}
}

func TestBookingService_CreateBookingOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Approved Warehouse", func(t *testing.T) {
		f := newBookingFixture()
		f.warehouseRepo.On("GetByID", ctx, int64(7)).Return(approvedWarehouse(), nil)
		f.gw.On("CreateOrder", ctx, testFeeCents, testCurrency, mock.AnythingOfType("string"), mock.Anything).
			Return(&gateway.Order{ID: "order_abc", AmountCents: testFeeCents, Currency: testCurrency}, nil)
		f.gw.On("KeyID").Return("key_test")
		f.paymentRepo.On("Create", ctx, mock.MatchedBy(func(p *domain.Payment) bool {
			return p.OrderID == "order_abc" &&
				p.Status == domain.PaymentStatusCreated &&
				p.AmountCents == testFeeCents &&
				p.BookingDetails.WarehouseID == 7
		})).Return(nil)

		order, err := f.svc.CreateBookingOrder(ctx, 7, testCustomer(), nil)
		assert.NoError(t, err)
		assert.Equal(t, "order_abc", order.OrderID)
		assert.Equal(t, "key_test", order.KeyID)
		assert.Equal(t, testFeeCents, order.AmountCents)
		assert.Regexp(t, regexp.MustCompile(`^rcpt_`), order.Receipt)
		f.paymentRepo.AssertExpectations(t)
	})

	t.Run("Pending Warehouse Is Invisible", func(t *testing.T) {
		f := newBookingFixture()
		w := approvedWarehouse()
		w.Status = domain.WarehouseStatusPending
		f.warehouseRepo.On("GetByID", ctx, int64(7)).Return(w, nil)

		_, err := f.svc.CreateBookingOrder(ctx, 7, testCustomer(), nil)
		assert.ErrorIs(t, err, service.ErrWarehouseNotFound)
		f.gw.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		f.paymentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Unknown Warehouse", func(t *testing.T) {
		f := newBookingFixture()
		f.warehouseRepo.On("GetByID", ctx, int64(99)).Return(nil, sql.ErrNoRows)

		_, err := f.svc.CreateBookingOrder(ctx, 99, testCustomer(), nil)
		assert.ErrorIs(t, err, service.ErrWarehouseNotFound)
		f.paymentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Gateway Failure Leaves No Payment Row", func(t *testing.T) {
		f := newBookingFixture()
		f.warehouseRepo.On("GetByID", ctx, int64(7)).Return(approvedWarehouse(), nil)
		f.gw.On("CreateOrder", ctx, testFeeCents, testCurrency, mock.AnythingOfType("string"), mock.Anything).
			Return(nil, assert.AnError)

		_, err := f.svc.CreateBookingOrder(ctx, 7, testCustomer(), nil)
		assert.Error(t, err)
		f.paymentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestBookingService_VerifyPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid Capture Confirms Booking", func(t *testing.T) {
		f := newBookingFixture()
		f.gw.On("VerifyPaymentSignature", "order_abc", "pay_1", "sig").Return(true)
		f.paymentRepo.On("GetByOrderID", ctx, "order_abc").Return(createdPayment(), nil)
		f.gw.On("FetchPayment", ctx, "pay_1").Return(&gateway.PaymentDetails{
			ID: "pay_1", OrderID: "order_abc", Status: "captured", Method: "upi",
			Raw: json.RawMessage(`{"id":"pay_1"}`),
		}, nil)
		f.warehouseRepo.On("GetByID", ctx, int64(7)).Return(approvedWarehouse(), nil)
		f.paymentRepo.On("Confirm", ctx, mock.MatchedBy(func(c domain.PaymentCapture) bool {
			return c.OrderID == "order_abc" && c.PaymentID == "pay_1" && c.Method == "upi"
		}), mock.AnythingOfType("*domain.ConfirmedBooking")).Return(nil)
		f.userRepo.On("GetByID", ctx, int64(3)).Return(&domain.User{ID: 3, Email: "owner@example.com", Name: "Owner"}, nil)
		f.emailSvc.On("SendBookingConfirmation", ctx, mock.Anything, mock.Anything).Return(nil)
		f.emailSvc.On("SendOwnerBookingAlert", ctx, "owner@example.com", "Owner", mock.Anything, mock.Anything).Return(nil)

		booking, err := f.svc.VerifyPayment(ctx, "order_abc", "pay_1", "sig")
		assert.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^WB\d{13}[A-Z0-9]{6}$`), booking.BookingNumber)
		assert.Equal(t, int64(7), booking.WarehouseID)
		assert.Equal(t, int64(3), booking.OwnerID)
		assert.Equal(t, testFeeCents, booking.AmountPaidCents)
		f.paymentRepo.AssertExpectations(t)
	})

	t.Run("Corrupted Signature Touches Nothing", func(t *testing.T) {
		f := newBookingFixture()
		f.gw.On("VerifyPaymentSignature", "order_abc", "pay_1", "bad").Return(false)

		_, err := f.svc.VerifyPayment(ctx, "order_abc", "pay_1", "bad")
		assert.ErrorIs(t, err, service.ErrSignatureMismatch)
		f.paymentRepo.AssertNotCalled(t, "GetByOrderID", mock.Anything, mock.Anything)
		f.paymentRepo.AssertNotCalled(t, "Confirm", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Second Verify Is Idempotent", func(t *testing.T) {
		f := newBookingFixture()
		paid := createdPayment()
		paid.Status = domain.PaymentStatusPaid
		existing := &domain.ConfirmedBooking{ID: 1, BookingNumber: "WB1700000000000ABC123", PaymentIDRef: 42}

		f.gw.On("VerifyPaymentSignature", "order_abc", "pay_1", "sig").Return(true)
		f.paymentRepo.On("GetByOrderID", ctx, "order_abc").Return(paid, nil)
		f.bookingRepo.On("GetByPaymentID", ctx, int64(42)).Return(existing, nil)

		booking, err := f.svc.VerifyPayment(ctx, "order_abc", "pay_1", "sig")
		assert.NoError(t, err)
		assert.Equal(t, existing.BookingNumber, booking.BookingNumber)
		f.paymentRepo.AssertNotCalled(t, "Confirm", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failed Payment Stays Closed", func(t *testing.T) {
		f := newBookingFixture()
		failed := createdPayment()
		failed.Status = domain.PaymentStatusFailed

		f.gw.On("VerifyPaymentSignature", "order_abc", "pay_1", "sig").Return(true)
		f.paymentRepo.On("GetByOrderID", ctx, "order_abc").Return(failed, nil)

		_, err := f.svc.VerifyPayment(ctx, "order_abc", "pay_1", "sig")
		assert.ErrorIs(t, err, service.ErrPaymentClosed)
	})

	t.Run("Unknown Order", func(t *testing.T) {
		f := newBookingFixture()
		f.gw.On("VerifyPaymentSignature", "order_x", "pay_1", "sig").Return(true)
		f.paymentRepo.On("GetByOrderID", ctx, "order_x").Return(nil, sql.ErrNoRows)

		_, err := f.svc.VerifyPayment(ctx, "order_x", "pay_1", "sig")
		assert.ErrorIs(t, err, service.ErrPaymentNotFound)
	})

	t.Run("Email Failure Does Not Break Confirmation", func(t *testing.T) {
		f := newBookingFixture()
		f.gw.On("VerifyPaymentSignature", "order_abc", "pay_1", "sig").Return(true)
		f.paymentRepo.On("GetByOrderID", ctx, "order_abc").Return(createdPayment(), nil)
		f.gw.On("FetchPayment", ctx, "pay_1").Return(&gateway.PaymentDetails{
			ID: "pay_1", Method: "card", Raw: json.RawMessage(`{}`),
		}, nil)
		f.warehouseRepo.On("GetByID", ctx, int64(7)).Return(approvedWarehouse(), nil)
		f.paymentRepo.On("Confirm", ctx, mock.Anything, mock.Anything).Return(nil)
		f.userRepo.On("GetByID", ctx, int64(3)).Return(&domain.User{ID: 3, Email: "owner@example.com", Name: "Owner"}, nil)
		f.emailSvc.On("SendBookingConfirmation", ctx, mock.Anything, mock.Anything).Return(assert.AnError)
		f.emailSvc.On("SendOwnerBookingAlert", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

		booking, err := f.svc.VerifyPayment(ctx, "order_abc", "pay_1", "sig")
		assert.NoError(t, err)
		assert.NotEmpty(t, booking.BookingNumber)
	})

	t.Run("Lost Race Returns Winner Booking", func(t *testing.T) {
		f := newBookingFixture()
		paidNow := createdPayment()
		paidNow.Status = domain.PaymentStatusPaid
		winner := &domain.ConfirmedBooking{ID: 9, BookingNumber: "WB1700000000001XYZ789", PaymentIDRef: 42}

		f.gw.On("VerifyPaymentSignature", "order_abc", "pay_1", "sig").Return(true)
		f.paymentRepo.On("GetByOrderID", ctx, "order_abc").Return(createdPayment(), nil).Once()
		f.gw.On("FetchPayment", ctx, "pay_1").Return(&gateway.PaymentDetails{ID: "pay_1", Raw: json.RawMessage(`{}`)}, nil)
		f.warehouseRepo.On("GetByID", ctx, int64(7)).Return(approvedWarehouse(), nil)
		f.paymentRepo.On("Confirm", ctx, mock.Anything, mock.Anything).Return(repository.ErrPaymentNotPending)
		f.paymentRepo.On("GetByOrderID", ctx, "order_abc").Return(paidNow, nil).Once()
		f.bookingRepo.On("GetByPaymentID", ctx, int64(42)).Return(winner, nil)

		booking, err := f.svc.VerifyPayment(ctx, "order_abc", "pay_1", "sig")
		assert.NoError(t, err)
		assert.Equal(t, winner.BookingNumber, booking.BookingNumber)
	})
}

func TestBookingService_HandlePaymentFailure(t *testing.T) {
	ctx := context.Background()

	t.Run("Marks Pending Payment Failed", func(t *testing.T) {
		f := newBookingFixture()
		f.paymentRepo.On("MarkFailed", ctx, "order_abc", "pay_1", "card declined").Return(nil)

		err := f.svc.HandlePaymentFailure(ctx, "order_abc", "pay_1", "card declined")
		assert.NoError(t, err)
	})

	t.Run("Replay On Terminal Payment Is A NoOp", func(t *testing.T) {
		f := newBookingFixture()
		f.paymentRepo.On("MarkFailed", ctx, "order_abc", "pay_1", "x").Return(repository.ErrPaymentNotPending)
		failed := createdPayment()
		failed.Status = domain.PaymentStatusFailed
		f.paymentRepo.On("GetByOrderID", ctx, "order_abc").Return(failed, nil)

		err := f.svc.HandlePaymentFailure(ctx, "order_abc", "pay_1", "x")
		assert.NoError(t, err)
	})

	t.Run("Unknown Order", func(t *testing.T) {
		f := newBookingFixture()
		f.paymentRepo.On("MarkFailed", ctx, "order_nope", "pay_1", "x").Return(repository.ErrPaymentNotPending)
		f.paymentRepo.On("GetByOrderID", ctx, "order_nope").Return(nil, sql.ErrNoRows)

		err := f.svc.HandlePaymentFailure(ctx, "order_nope", "pay_1", "x")
		assert.ErrorIs(t, err, service.ErrPaymentNotFound)
	})
}

func TestBookingService_HandleWebhook(t *testing.T) {
	ctx := context.Background()

	t.Run("Rejects Bad Signature", func(t *testing.T) {
		f := newBookingFixture()
		body := []byte(`{"event":"payment.captured"}`)
		f.gw.On("VerifyWebhookSignature", body, "bad").Return(false)

		err := f.svc.HandleWebhook(ctx, body, "bad")
		assert.ErrorIs(t, err, service.ErrSignatureMismatch)
		f.paymentRepo.AssertNotCalled(t, "GetByOrderID", mock.Anything, mock.Anything)
	})

	t.Run("Duplicate Capture Delivery Is A NoOp", func(t *testing.T) {
		f := newBookingFixture()
		body := []byte(`{"event":"payment.captured","payload":{"order_id":"order_abc","payment_id":"pay_1"}}`)
		paid := createdPayment()
		paid.Status = domain.PaymentStatusPaid

		f.gw.On("VerifyWebhookSignature", body, "sig").Return(true)
		f.paymentRepo.On("GetByOrderID", ctx, "order_abc").Return(paid, nil)

		err := f.svc.HandleWebhook(ctx, body, "sig")
		assert.NoError(t, err)
		f.paymentRepo.AssertNotCalled(t, "Confirm", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Capture Event Confirms Pending Payment", func(t *testing.T) {
		f := newBookingFixture()
		body := []byte(`{"event":"payment.captured","payload":{"order_id":"order_abc","payment_id":"pay_1","method":"upi"}}`)

		f.gw.On("VerifyWebhookSignature", body, "sig").Return(true)
		f.paymentRepo.On("GetByOrderID", ctx, "order_abc").Return(createdPayment(), nil)
		f.warehouseRepo.On("GetByID", ctx, int64(7)).Return(approvedWarehouse(), nil)
		f.paymentRepo.On("Confirm", ctx, mock.MatchedBy(func(c domain.PaymentCapture) bool {
			return c.PaymentID == "pay_1" && c.Method == "upi"
		}), mock.Anything).Return(nil)
		f.userRepo.On("GetByID", ctx, int64(3)).Return(&domain.User{ID: 3, Email: "owner@example.com", Name: "Owner"}, nil)
		f.emailSvc.On("SendBookingConfirmation", ctx, mock.Anything, mock.Anything).Return(nil)
		f.emailSvc.On("SendOwnerBookingAlert", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		err := f.svc.HandleWebhook(ctx, body, "sig")
		assert.NoError(t, err)
		f.paymentRepo.AssertExpectations(t)
	})

	t.Run("Failure Event Marks Payment Failed", func(t *testing.T) {
		f := newBookingFixture()
		body := []byte(`{"event":"payment.failed","payload":{"order_id":"order_abc","payment_id":"pay_1","reason":"insufficient funds"}}`)

		f.gw.On("VerifyWebhookSignature", body, "sig").Return(true)
		f.paymentRepo.On("MarkFailed", ctx, "order_abc", "pay_1", "insufficient funds").Return(nil)

		err := f.svc.HandleWebhook(ctx, body, "sig")
		assert.NoError(t, err)
	})
}

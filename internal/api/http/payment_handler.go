package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"warebook-backend/internal/service"
)

// webhookSignatureHeader carries the gateway's HMAC over the raw webhook
// body.
const webhookSignatureHeader = "X-Webhook-Signature"

// maxWebhookBody caps webhook payloads before signature verification.
const maxWebhookBody = 64 << 10

type PaymentHandler struct {
	bookingSvc service.BookingService
}

func NewPaymentHandler(bookingSvc service.BookingService) *PaymentHandler {
	return &PaymentHandler{bookingSvc: bookingSvc}
}

type createOrderRequest struct {
	WarehouseID int64  `json:"warehouse_id" validate:"required,gt=0"`
	Name        string `json:"name" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required,max=20"`
	Company     string `json:"company" validate:"max=100"`
}

// CreateOrder opens a payment order for a warehouse booking. Works for
// guests and logged-in users alike; a bearer token just links the order
// to the account.
func (h *PaymentHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	var userID *int64
	if claims, ok := claimsFrom(r.Context()); ok {
		userID = &claims.UserID
	}

	order, err := h.bookingSvc.CreateBookingOrder(r.Context(), req.WarehouseID, service.CustomerDetails{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Company: req.Company,
	}, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, order)
}

type verifyPaymentRequest struct {
	OrderID   string `json:"order_id" validate:"required"`
	PaymentID string `json:"payment_id" validate:"required"`
	Signature string `json:"signature" validate:"required"`
}

func (h *PaymentHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req verifyPaymentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	booking, err := h.bookingSvc.VerifyPayment(r.Context(), req.OrderID, req.PaymentID, req.Signature)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, booking)
}

type paymentFailureRequest struct {
	OrderID   string `json:"order_id" validate:"required"`
	PaymentID string `json:"payment_id"`
	Reason    string `json:"reason" validate:"max=500"`
}

func (h *PaymentHandler) ReportFailure(w http.ResponseWriter, r *http.Request) {
	var req paymentFailureRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.bookingSvc.HandlePaymentFailure(r.Context(), req.OrderID, req.PaymentID, req.Reason); err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]string{"message": "payment failure recorded"})
}

func (h *PaymentHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderID"]
	if orderID == "" {
		writeError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	status, err := h.bookingSvc.GetPaymentStatus(r.Context(), orderID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, status)
}

// Webhook receives gateway notifications. The body is consumed raw so the
// signature check covers exactly the bytes on the wire.
func (h *PaymentHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "unable to read request body")
		return
	}

	if err := h.bookingSvc.HandleWebhook(r.Context(), body, r.Header.Get(webhookSignatureHeader)); err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]string{"message": "ok"})
}

func (h *PaymentHandler) ListMyBookings(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	page, pageSize := pagination(r)
	bookings, total, err := h.bookingSvc.ListOwnerBookings(r.Context(), claims.UserID, page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, listResponse{Items: bookings, Total: total, Page: page, PageSize: pageSize})
}

package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"warebook-backend/internal/security"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth      *AuthHandler
	Warehouse *WarehouseHandler
	Payment   *PaymentHandler
	Inquiry   *InquiryHandler
	Contact   *ContactHandler
	Admin     *AdminHandler
	Upload    *UploadHandler
}

// NewRouter wires all routes and middleware. CORS is layered on by the
// caller so test routers stay plain.
func NewRouter(h Handlers, tokens security.TokenManager, maxBodyBytes int64) *mux.Router {
	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultMaxBodyBytes
	}
	limit := bodyLimit(maxBodyBytes)

	r := mux.NewRouter()
	r.Use(Recovery, RequestLogger)
	r.NotFoundHandler = http.HandlerFunc(notFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	// Public surface, no authentication.
	public := r.PathPrefix("/api/public").Subrouter()
	public.Use(limit)
	public.HandleFunc("/auth/signup", h.Auth.Signup).Methods(http.MethodPost)
	public.HandleFunc("/auth/login", h.Auth.Login).Methods(http.MethodPost)
	public.HandleFunc("/auth/refresh", h.Auth.Refresh).Methods(http.MethodPost)
	public.HandleFunc("/auth/forgot-password", h.Auth.ForgotPassword).Methods(http.MethodPost)
	public.HandleFunc("/auth/reset-password", h.Auth.ResetPassword).Methods(http.MethodPost)

	public.HandleFunc("/warehouses", h.Warehouse.ListPublic).Methods(http.MethodGet)
	public.HandleFunc("/warehouses/{id}", h.Warehouse.GetPublic).Methods(http.MethodGet)
	public.HandleFunc("/inquiries", h.Inquiry.Create).Methods(http.MethodPost)
	public.HandleFunc("/contacts", h.Contact.Create).Methods(http.MethodPost)

	// Checkout works for guests; a bearer token links the order to the
	// account when one is sent.
	public.Handle("/payments/create-order", OptionalAuth(tokens)(http.HandlerFunc(h.Payment.CreateOrder))).Methods(http.MethodPost)
	public.HandleFunc("/payments/verify", h.Payment.VerifyPayment).Methods(http.MethodPost)
	public.HandleFunc("/payments/failure", h.Payment.ReportFailure).Methods(http.MethodPost)
	public.HandleFunc("/payments/{orderID}/status", h.Payment.GetStatus).Methods(http.MethodGet)

	// Gateway webhook. Authenticated by its signature header, not JWT.
	r.HandleFunc("/api/payments/webhook", h.Payment.Webhook).Methods(http.MethodPost)

	// Stored images.
	r.HandleFunc("/uploads/{key}", h.Upload.Serve).Methods(http.MethodGet)

	// Image uploads carry their own size limit, so they sit outside the
	// JSON body cap.
	uploads := r.PathPrefix("/api").Subrouter()
	uploads.Use(Auth(tokens))
	uploads.HandleFunc("/uploads", h.Upload.Upload).Methods(http.MethodPost)

	// Authenticated surface.
	auth := r.PathPrefix("/api").Subrouter()
	auth.Use(Auth(tokens), limit)
	auth.HandleFunc("/warehouses", h.Warehouse.Create).Methods(http.MethodPost)
	auth.HandleFunc("/warehouses/my", h.Warehouse.ListMine).Methods(http.MethodGet)
	auth.HandleFunc("/warehouses/{id}", h.Warehouse.Update).Methods(http.MethodPut)
	auth.HandleFunc("/warehouses/{id}", h.Warehouse.Delete).Methods(http.MethodDelete)
	auth.HandleFunc("/bookings/my", h.Payment.ListMyBookings).Methods(http.MethodGet)

	// Admin surface.
	admin := auth.PathPrefix("/admin").Subrouter()
	admin.Use(AdminOnly)
	admin.HandleFunc("/stats", h.Admin.GetStats).Methods(http.MethodGet)
	admin.HandleFunc("/warehouses", h.Admin.ListWarehouses).Methods(http.MethodGet)
	admin.HandleFunc("/warehouses/{id}/approval", h.Admin.SetWarehouseApproval).Methods(http.MethodPut)
	admin.HandleFunc("/bookings", h.Admin.ListBookings).Methods(http.MethodGet)
	admin.HandleFunc("/payments", h.Admin.ListPayments).Methods(http.MethodGet)
	admin.HandleFunc("/inquiries", h.Inquiry.List).Methods(http.MethodGet)
	admin.HandleFunc("/inquiries/{id}/status", h.Inquiry.UpdateStatus).Methods(http.MethodPut)
	admin.HandleFunc("/contacts", h.Contact.List).Methods(http.MethodGet)
	admin.HandleFunc("/contacts/{id}/status", h.Contact.UpdateStatus).Methods(http.MethodPut)
	admin.HandleFunc("/users", h.Admin.ListUsers).Methods(http.MethodGet)

	return r
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "not found")
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

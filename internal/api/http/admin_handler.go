package http

import (
	"net/http"

	"warebook-backend/internal/domain"
	"warebook-backend/internal/service"
)

type AdminHandler struct {
	adminSvc service.AdminService
}

func NewAdminHandler(adminSvc service.AdminService) *AdminHandler {
	return &AdminHandler{adminSvc: adminSvc}
}

func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.adminSvc.GetDashboardStats(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, stats)
}

func (h *AdminHandler) ListWarehouses(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	status := domain.WarehouseStatus(r.URL.Query().Get("status"))

	warehouses, total, err := h.adminSvc.ListWarehouses(r.Context(), status, page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, listResponse{Items: warehouses, Total: total, Page: page, PageSize: pageSize})
}

type approvalRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected"`
	Reason string `json:"reason" validate:"max=1000"`
}

func (h *AdminHandler) SetWarehouseApproval(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid warehouse id")
		return
	}

	var req approvalRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.adminSvc.SetWarehouseApproval(r.Context(), id, domain.WarehouseStatus(req.Status), req.Reason); err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]string{"message": "warehouse review recorded"})
}

func (h *AdminHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	bookings, total, err := h.adminSvc.ListBookings(r.Context(), page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, listResponse{Items: bookings, Total: total, Page: page, PageSize: pageSize})
}

func (h *AdminHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	payments, total, err := h.adminSvc.ListPayments(r.Context(), page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, listResponse{Items: payments, Total: total, Page: page, PageSize: pageSize})
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	users, total, err := h.adminSvc.ListUsers(r.Context(), page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, listResponse{Items: users, Total: total, Page: page, PageSize: pageSize})
}

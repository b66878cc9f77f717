package http

import (
	"net/http"

	"warebook-backend/internal/domain"
	"warebook-backend/internal/service"
)

type InquiryHandler struct {
	inquirySvc service.InquiryService
}

func NewInquiryHandler(inquirySvc service.InquiryService) *InquiryHandler {
	return &InquiryHandler{inquirySvc: inquirySvc}
}

type createInquiryRequest struct {
	WarehouseID int64  `json:"warehouse_id" validate:"required,gt=0"`
	Name        string `json:"name" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required,max=20"`
	Company     string `json:"company" validate:"max=100"`
	Message     string `json:"message" validate:"required,max=2000"`
}

func (h *InquiryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createInquiryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	inquiry := &domain.Inquiry{
		WarehouseID: req.WarehouseID,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Company:     req.Company,
		Message:     req.Message,
	}
	if err := h.inquirySvc.CreateInquiry(r.Context(), inquiry); err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, inquiry)
}

func (h *InquiryHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	status := domain.InquiryStatus(r.URL.Query().Get("status"))

	inquiries, total, err := h.inquirySvc.ListInquiries(r.Context(), status, page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, listResponse{Items: inquiries, Total: total, Page: page, PageSize: pageSize})
}

type updateInquiryRequest struct {
	Status      string `json:"status" validate:"required,oneof=unallocated allocated invalid"`
	AllocatedTo *int64 `json:"allocated_to"`
}

func (h *InquiryHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid inquiry id")
		return
	}

	var req updateInquiryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.inquirySvc.UpdateInquiryStatus(r.Context(), id, domain.InquiryStatus(req.Status), req.AllocatedTo); err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]string{"message": "inquiry updated"})
}

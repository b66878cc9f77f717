package http

import (
	"net/http"

	"warebook-backend/internal/domain"
	"warebook-backend/internal/service"
)

type ContactHandler struct {
	contactSvc service.ContactService
}

func NewContactHandler(contactSvc service.ContactService) *ContactHandler {
	return &ContactHandler{contactSvc: contactSvc}
}

type createContactRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"max=20"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=2000"`
}

func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createContactRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	contact := &domain.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := h.contactSvc.CreateContact(r.Context(), contact); err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, contact)
}

func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	status := domain.ContactStatus(r.URL.Query().Get("status"))

	contacts, total, err := h.contactSvc.ListContacts(r.Context(), status, page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, listResponse{Items: contacts, Total: total, Page: page, PageSize: pageSize})
}

type updateContactRequest struct {
	Status string `json:"status" validate:"required,oneof=new contacted completed"`
}

func (h *ContactHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid contact id")
		return
	}

	var req updateContactRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.contactSvc.UpdateContactStatus(r.Context(), id, domain.ContactStatus(req.Status)); err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]string{"message": "contact updated"})
}

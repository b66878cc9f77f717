package http

import (
	"net/http"
	"strconv"

	"warebook-backend/internal/domain"
	"warebook-backend/internal/service"
)

type WarehouseHandler struct {
	warehouseSvc service.WarehouseService
}

func NewWarehouseHandler(warehouseSvc service.WarehouseService) *WarehouseHandler {
	return &WarehouseHandler{warehouseSvc: warehouseSvc}
}

type warehouseRequest struct {
	Name                 string   `json:"name" validate:"required,max=200"`
	Description          string   `json:"description" validate:"required,max=5000"`
	Address              string   `json:"address" validate:"required,max=500"`
	City                 string   `json:"city" validate:"required,max=100"`
	State                string   `json:"state" validate:"required,max=100"`
	PostalCode           string   `json:"postal_code" validate:"required,max=20"`
	SizeSqft             int64    `json:"size_sqft" validate:"required,gt=0"`
	MonthlyRentCents     int64    `json:"monthly_rent_cents" validate:"required,gt=0"`
	SecurityDepositCents int64    `json:"security_deposit_cents" validate:"gte=0"`
	Images               []string `json:"images" validate:"max=10,dive,url"`
}

func (req *warehouseRequest) toDomain() *domain.Warehouse {
	return &domain.Warehouse{
		Name:                 req.Name,
		Description:          req.Description,
		Address:              req.Address,
		City:                 req.City,
		State:                req.State,
		PostalCode:           req.PostalCode,
		SizeSqft:             req.SizeSqft,
		MonthlyRentCents:     req.MonthlyRentCents,
		SecurityDepositCents: req.SecurityDepositCents,
		Images:               req.Images,
	}
}

// ListPublic serves the public marketplace listing with optional filters.
func (h *WarehouseHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.WarehouseFilter{City: q.Get("city")}
	filter.MinSizeSqft, _ = strconv.ParseInt(q.Get("min_size_sqft"), 10, 64)
	filter.MaxRent, _ = strconv.ParseInt(q.Get("max_rent_cents"), 10, 64)

	page, pageSize := pagination(r)
	warehouses, total, err := h.warehouseSvc.ListPublicWarehouses(r.Context(), filter, page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, listResponse{Items: warehouses, Total: total, Page: page, PageSize: pageSize})
}

func (h *WarehouseHandler) GetPublic(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid warehouse id")
		return
	}

	warehouse, err := h.warehouseSvc.GetPublicWarehouse(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, warehouse)
}

func (h *WarehouseHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req warehouseRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	warehouse := req.toDomain()
	if err := h.warehouseSvc.CreateWarehouse(r.Context(), claims.UserID, warehouse); err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, warehouse)
}

func (h *WarehouseHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	warehouses, err := h.warehouseSvc.ListMyWarehouses(r.Context(), claims.UserID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, warehouses)
}

func (h *WarehouseHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid warehouse id")
		return
	}

	var req warehouseRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	warehouse := req.toDomain()
	warehouse.ID = id
	if err := h.warehouseSvc.UpdateWarehouse(r.Context(), claims.UserID, warehouse); err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, warehouse)
}

func (h *WarehouseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	id, ok := pathID(r, "id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid warehouse id")
		return
	}

	if err := h.warehouseSvc.DeleteWarehouse(r.Context(), claims.UserID, claims.IsAdmin, id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]string{"message": "warehouse deleted"})
}

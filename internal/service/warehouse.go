package service

import (
	"context"
	"database/sql"
	"errors"

	"warebook-backend/internal/domain"
	"warebook-backend/internal/logger"
	"warebook-backend/internal/repository"
)

type warehouseService struct {
	warehouseRepo repository.WarehouseRepository
}

func NewWarehouseService(warehouseRepo repository.WarehouseRepository) WarehouseService {
	return &warehouseService{warehouseRepo: warehouseRepo}
}

// CreateWarehouse registers a new listing for the owner. Listings always
// start in the pending state regardless of what the caller sends.
func (s *warehouseService) CreateWarehouse(ctx context.Context, ownerID int64, w *domain.Warehouse) error {
	w.OwnerID = ownerID
	w.Status = domain.WarehouseStatusPending
	w.RejectionReason = ""
	w.ViewCount = 0

	if err := s.warehouseRepo.Create(ctx, w); err != nil {
		return err
	}
	logger.Info("Warehouse listed", "warehouse_id", w.ID, "owner_id", ownerID)
	return nil
}

// GetPublicWarehouse returns an approved listing and bumps its view counter.
// Pending and rejected listings are not visible here.
func (s *warehouseService) GetPublicWarehouse(ctx context.Context, id int64) (*domain.Warehouse, error) {
	w, err := s.warehouseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrWarehouseNotFound
		}
		return nil, err
	}
	if w.Status != domain.WarehouseStatusApproved {
		return nil, ErrWarehouseNotFound
	}

	if err := s.warehouseRepo.IncrementViews(ctx, id); err != nil {
		logger.Warn("Failed to bump warehouse views", "warehouse_id", id, "error", err)
	} else {
		w.ViewCount++
	}
	return w, nil
}

func (s *warehouseService) ListPublicWarehouses(ctx context.Context, filter domain.WarehouseFilter, page, pageSize int64) ([]domain.Warehouse, int64, error) {
	return s.warehouseRepo.ListApproved(ctx, filter, page, pageSize)
}

func (s *warehouseService) ListMyWarehouses(ctx context.Context, ownerID int64) ([]domain.Warehouse, error) {
	return s.warehouseRepo.ListByOwner(ctx, ownerID)
}

// UpdateWarehouse lets the owner edit their listing. Any edit sends the
// listing back through review.
func (s *warehouseService) UpdateWarehouse(ctx context.Context, ownerID int64, w *domain.Warehouse) error {
	existing, err := s.warehouseRepo.GetByID(ctx, w.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrWarehouseNotFound
		}
		return err
	}
	if existing.OwnerID != ownerID {
		return ErrForbidden
	}

	w.OwnerID = existing.OwnerID
	w.Status = domain.WarehouseStatusPending
	w.RejectionReason = ""
	return s.warehouseRepo.Update(ctx, w)
}

func (s *warehouseService) DeleteWarehouse(ctx context.Context, userID int64, isAdmin bool, id int64) error {
	existing, err := s.warehouseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrWarehouseNotFound
		}
		return err
	}
	if existing.OwnerID != userID && !isAdmin {
		return ErrForbidden
	}
	return s.warehouseRepo.Delete(ctx, id)
}

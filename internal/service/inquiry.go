package service

import (
	"context"
	"database/sql"
	"errors"

	"warebook-backend/internal/domain"
	"warebook-backend/internal/logger"
	"warebook-backend/internal/repository"
)

type inquiryService struct {
	inquiryRepo   repository.InquiryRepository
	warehouseRepo repository.WarehouseRepository
}

func NewInquiryService(inquiryRepo repository.InquiryRepository, warehouseRepo repository.WarehouseRepository) InquiryService {
	return &inquiryService{
		inquiryRepo:   inquiryRepo,
		warehouseRepo: warehouseRepo,
	}
}

func (s *inquiryService) CreateInquiry(ctx context.Context, inq *domain.Inquiry) error {
	w, err := s.warehouseRepo.GetByID(ctx, inq.WarehouseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrWarehouseNotFound
		}
		return err
	}
	if w.Status != domain.WarehouseStatusApproved {
		return ErrWarehouseNotFound
	}

	inq.Status = domain.InquiryStatusUnallocated
	inq.AllocatedTo = nil
	if err := s.inquiryRepo.Create(ctx, inq); err != nil {
		return err
	}
	logger.Info("Inquiry received", "inquiry_id", inq.ID, "warehouse_id", inq.WarehouseID)
	return nil
}

func (s *inquiryService) ListInquiries(ctx context.Context, status domain.InquiryStatus, page, pageSize int64) ([]domain.Inquiry, int64, error) {
	return s.inquiryRepo.List(ctx, status, page, pageSize)
}

// UpdateInquiryStatus moves an inquiry between triage states. Allocating
// requires an admin to allocate to; the other states clear the allocation.
func (s *inquiryService) UpdateInquiryStatus(ctx context.Context, id int64, status domain.InquiryStatus, allocatedTo *int64) error {
	switch status {
	case domain.InquiryStatusUnallocated, domain.InquiryStatusInvalid:
		allocatedTo = nil
	case domain.InquiryStatusAllocated:
		if allocatedTo == nil {
			return ErrInvalidTransition
		}
	default:
		return ErrInvalidTransition
	}

	if _, err := s.inquiryRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrInquiryNotFound
		}
		return err
	}
	return s.inquiryRepo.UpdateStatus(ctx, id, status, allocatedTo)
}

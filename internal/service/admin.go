package service

import (
	"context"
	"database/sql"
	"errors"

	"warebook-backend/internal/domain"
	"warebook-backend/internal/logger"
	"warebook-backend/internal/repository"
)

const (
	monthlyRevenueMonths = 12
	recentBookingsLimit  = 10
)

type adminService struct {
	userRepo      repository.UserRepository
	warehouseRepo repository.WarehouseRepository
	paymentRepo   repository.PaymentRepository
	bookingRepo   repository.BookingRepository
	inquiryRepo   repository.InquiryRepository
}

func NewAdminService(
	userRepo repository.UserRepository,
	warehouseRepo repository.WarehouseRepository,
	paymentRepo repository.PaymentRepository,
	bookingRepo repository.BookingRepository,
	inquiryRepo repository.InquiryRepository,
) AdminService {
	return &adminService{
		userRepo:      userRepo,
		warehouseRepo: warehouseRepo,
		paymentRepo:   paymentRepo,
		bookingRepo:   bookingRepo,
		inquiryRepo:   inquiryRepo,
	}
}

func (s *adminService) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	users, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	warehouses, err := s.warehouseRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookingRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.paymentRepo.TotalRevenueCents(ctx)
	if err != nil {
		return nil, err
	}
	inquiries, err := s.inquiryRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	monthly, err := s.paymentRepo.MonthlyRevenue(ctx, monthlyRevenueMonths)
	if err != nil {
		return nil, err
	}
	recent, err := s.bookingRepo.Recent(ctx, recentBookingsLimit)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardStats{
		TotalUsers:         users,
		WarehousesByStatus: warehouses,
		TotalBookings:      bookings,
		TotalRevenueCents:  revenue,
		InquiriesByStatus:  inquiries,
		MonthlyRevenue:     monthly,
		RecentBookings:     recent,
	}, nil
}

func (s *adminService) ListWarehouses(ctx context.Context, status domain.WarehouseStatus, page, pageSize int64) ([]domain.Warehouse, int64, error) {
	return s.warehouseRepo.ListAll(ctx, status, page, pageSize)
}

// SetWarehouseApproval approves or rejects a pending listing. A rejection
// keeps the reason so the owner can see why.
func (s *adminService) SetWarehouseApproval(ctx context.Context, id int64, status domain.WarehouseStatus, reason string) error {
	switch status {
	case domain.WarehouseStatusApproved:
		reason = ""
	case domain.WarehouseStatusRejected:
	default:
		return ErrInvalidTransition
	}

	if err := s.warehouseRepo.SetApproval(ctx, id, status, reason); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrWarehouseNotFound
		}
		return err
	}
	logger.Info("Warehouse reviewed", "warehouse_id", id, "status", status)
	return nil
}

func (s *adminService) ListBookings(ctx context.Context, page, pageSize int64) ([]domain.ConfirmedBooking, int64, error) {
	return s.bookingRepo.List(ctx, page, pageSize)
}

func (s *adminService) ListPayments(ctx context.Context, page, pageSize int64) ([]domain.Payment, int64, error) {
	return s.paymentRepo.List(ctx, page, pageSize)
}

func (s *adminService) ListUsers(ctx context.Context, page, pageSize int64) ([]domain.User, int64, error) {
	return s.userRepo.List(ctx, page, pageSize)
}

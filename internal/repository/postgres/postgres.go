package postgres

import (
	"database/sql"

	"warebook-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.WarehouseRepository
	repository.PaymentRepository
	repository.BookingRepository
	repository.InquiryRepository
	repository.ContactRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                  db,
		UserRepository:      NewUserRepository(db),
		WarehouseRepository: NewWarehouseRepository(db),
		PaymentRepository:   NewPaymentRepository(db),
		BookingRepository:   NewBookingRepository(db),
		InquiryRepository:   NewInquiryRepository(db),
		ContactRepository:   NewContactRepository(db),
	}
}

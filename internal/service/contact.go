package service

import (
	"context"
	"database/sql"
	"errors"

	"warebook-backend/internal/domain"
	"warebook-backend/internal/logger"
	"warebook-backend/internal/repository"
)

type contactService struct {
	contactRepo repository.ContactRepository
}

func NewContactService(contactRepo repository.ContactRepository) ContactService {
	return &contactService{contactRepo: contactRepo}
}

func (s *contactService) CreateContact(ctx context.Context, c *domain.Contact) error {
	c.Status = domain.ContactStatusNew
	if err := s.contactRepo.Create(ctx, c); err != nil {
		return err
	}
	logger.Info("Contact message received", "contact_id", c.ID)
	return nil
}

func (s *contactService) ListContacts(ctx context.Context, status domain.ContactStatus, page, pageSize int64) ([]domain.Contact, int64, error) {
	return s.contactRepo.List(ctx, status, page, pageSize)
}

func (s *contactService) UpdateContactStatus(ctx context.Context, id int64, status domain.ContactStatus) error {
	switch status {
	case domain.ContactStatusNew, domain.ContactStatusContacted, domain.ContactStatusCompleted:
	default:
		return ErrInvalidTransition
	}

	if _, err := s.contactRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrContactNotFound
		}
		return err
	}
	return s.contactRepo.UpdateStatus(ctx, id, status)
}

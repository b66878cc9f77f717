package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"warebook-backend/internal/domain"
	"warebook-backend/internal/repository"
)

type contactRepository struct {
	db *sql.DB
}

func NewContactRepository(db *sql.DB) repository.ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, c *domain.Contact) error {
	query := `INSERT INTO contacts (name, email, phone, subject, message, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query, c.Name, c.Email, c.Phone, c.Subject, c.Message, c.Status, now, now).Scan(&c.ID)
}

func (r *contactRepository) GetByID(ctx context.Context, id int64) (*domain.Contact, error) {
	c := &domain.Contact{}
	query := `SELECT id, name, email, phone, subject, message, status, created_on, updated_on FROM contacts WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.Subject, &c.Message, &c.Status, &c.CreatedOn, &c.UpdatedOn,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *contactRepository) List(ctx context.Context, status domain.ContactStatus, page, pageSize int64) ([]domain.Contact, int64, error) {
	sqlStr := `SELECT id, name, email, phone, subject, message, status, created_on, updated_on FROM contacts`
	args := []interface{}{}
	argIdx := 1
	if status != "" {
		sqlStr += fmt.Sprintf(" WHERE status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}

	var count int64
	countSQL := "SELECT count(*) FROM (" + sqlStr + ") as sub"
	if err := r.db.QueryRowContext(ctx, countSQL, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	sqlStr += fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var contacts []domain.Contact
	for rows.Next() {
		var c domain.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Subject, &c.Message, &c.Status, &c.CreatedOn, &c.UpdatedOn); err != nil {
			return nil, 0, err
		}
		contacts = append(contacts, c)
	}
	return contacts, count, rows.Err()
}

func (r *contactRepository) UpdateStatus(ctx context.Context, id int64, status domain.ContactStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE contacts SET status=$1, updated_on=$2 WHERE id=$3`, status, time.Now(), id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

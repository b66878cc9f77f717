package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"warebook-backend/internal/domain"
	"warebook-backend/internal/repository"
)

type inquiryRepository struct {
	db *sql.DB
}

func NewInquiryRepository(db *sql.DB) repository.InquiryRepository {
	return &inquiryRepository{db: db}
}

func (r *inquiryRepository) Create(ctx context.Context, inq *domain.Inquiry) error {
	query := `INSERT INTO inquiries (warehouse_id, name, email, phone, company, message, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		inq.WarehouseID, inq.Name, inq.Email, inq.Phone, inq.Company, inq.Message,
		inq.Status, now, now,
	).Scan(&inq.ID)
}

func (r *inquiryRepository) GetByID(ctx context.Context, id int64) (*domain.Inquiry, error) {
	inq := &domain.Inquiry{}
	query := `SELECT id, warehouse_id, name, email, phone, company, message, status, allocated_to, created_on, updated_on
	          FROM inquiries WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&inq.ID, &inq.WarehouseID, &inq.Name, &inq.Email, &inq.Phone, &inq.Company,
		&inq.Message, &inq.Status, &inq.AllocatedTo, &inq.CreatedOn, &inq.UpdatedOn,
	)
	if err != nil {
		return nil, err
	}
	return inq, nil
}

func (r *inquiryRepository) List(ctx context.Context, status domain.InquiryStatus, page, pageSize int64) ([]domain.Inquiry, int64, error) {
	sqlStr := `SELECT id, warehouse_id, name, email, phone, company, message, status, allocated_to, created_on, updated_on FROM inquiries`
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

	var inquiries []domain.Inquiry
	for rows.Next() {
		var inq domain.Inquiry
		if err := rows.Scan(
			&inq.ID, &inq.WarehouseID, &inq.Name, &inq.Email, &inq.Phone, &inq.Company,
			&inq.Message, &inq.Status, &inq.AllocatedTo, &inq.CreatedOn, &inq.UpdatedOn,
		); err != nil {
			return nil, 0, err
		}
		inquiries = append(inquiries, inq)
	}
	return inquiries, count, rows.Err()
}

func (r *inquiryRepository) UpdateStatus(ctx context.Context, id int64, status domain.InquiryStatus, allocatedTo *int64) error {
	query := `UPDATE inquiries SET status=$1, allocated_to=$2, updated_on=$3 WHERE id=$4`
	res, err := r.db.ExecContext(ctx, query, status, allocatedTo, time.Now(), id)
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

func (r *inquiryRepository) CountByStatus(ctx context.Context) (map[domain.InquiryStatus]int64, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, count(*) FROM inquiries GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[domain.InquiryStatus]int64{}
	for rows.Next() {
		var status domain.InquiryStatus
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

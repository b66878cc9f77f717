package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"warebook-backend/internal/domain"
	"warebook-backend/internal/repository"
)

type warehouseRepository struct {
	db *sql.DB
}

func NewWarehouseRepository(db *sql.DB) repository.WarehouseRepository {
	return &warehouseRepository{db: db}
}

func (r *warehouseRepository) Create(ctx context.Context, w *domain.Warehouse) error {
	query := `INSERT INTO warehouses (owner_id, name, description, address, city, state, postal_code, size_sqft, monthly_rent_cents, security_deposit_cents, images, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query,
		w.OwnerID, w.Name, w.Description, w.Address, w.City, w.State, w.PostalCode,
		w.SizeSqft, w.MonthlyRentCents, w.SecurityDepositCents, pq.Array(w.Images),
		w.Status, now, now,
	).Scan(&w.ID)
}

func (r *warehouseRepository) GetByID(ctx context.Context, id int64) (*domain.Warehouse, error) {
	w := &domain.Warehouse{}
	query := `SELECT id, owner_id, name, description, address, city, state, postal_code, size_sqft, monthly_rent_cents, security_deposit_cents, images, status, rejection_reason, view_count, created_on, updated_on
	          FROM warehouses WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&w.ID, &w.OwnerID, &w.Name, &w.Description, &w.Address, &w.City, &w.State, &w.PostalCode,
		&w.SizeSqft, &w.MonthlyRentCents, &w.SecurityDepositCents, pq.Array(&w.Images),
		&w.Status, &w.RejectionReason, &w.ViewCount, &w.CreatedOn, &w.UpdatedOn,
	)
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (r *warehouseRepository) Update(ctx context.Context, w *domain.Warehouse) error {
	query := `UPDATE warehouses SET name=$1, description=$2, address=$3, city=$4, state=$5, postal_code=$6, size_sqft=$7, monthly_rent_cents=$8, security_deposit_cents=$9, images=$10, updated_on=$11
	          WHERE id=$12`
	_, err := r.db.ExecContext(ctx, query,
		w.Name, w.Description, w.Address, w.City, w.State, w.PostalCode,
		w.SizeSqft, w.MonthlyRentCents, w.SecurityDepositCents, pq.Array(w.Images),
		time.Now(), w.ID,
	)
	return err
}

func (r *warehouseRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM warehouses WHERE id = $1`, id)
	return err
}

func (r *warehouseRepository) ListApproved(ctx context.Context, filter domain.WarehouseFilter, page, pageSize int64) ([]domain.Warehouse, int64, error) {
	sqlStr := `SELECT id, owner_id, name, description, address, city, state, postal_code, size_sqft, monthly_rent_cents, security_deposit_cents, images, status, rejection_reason, view_count, created_on, updated_on
	           FROM warehouses WHERE status = 'approved'`

	args := []interface{}{}
	argIdx := 1
	if filter.City != "" {
		sqlStr += fmt.Sprintf(" AND city ILIKE $%d", argIdx)
		args = append(args, filter.City)
		argIdx++
	}
	if filter.MinSizeSqft > 0 {
		sqlStr += fmt.Sprintf(" AND size_sqft >= $%d", argIdx)
		args = append(args, filter.MinSizeSqft)
		argIdx++
	}
	if filter.MaxRent > 0 {
		sqlStr += fmt.Sprintf(" AND monthly_rent_cents <= $%d", argIdx)
		args = append(args, filter.MaxRent)
		argIdx++
	}

	var count int64
	countSQL := "SELECT count(*) FROM (" + sqlStr + ") as sub"
	if err := r.db.QueryRowContext(ctx, countSQL, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	sqlStr += fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, (page-1)*pageSize)

	return r.queryWarehouses(ctx, sqlStr, args, count)
}

func (r *warehouseRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Warehouse, error) {
	query := `SELECT id, owner_id, name, description, address, city, state, postal_code, size_sqft, monthly_rent_cents, security_deposit_cents, images, status, rejection_reason, view_count, created_on, updated_on
	          FROM warehouses WHERE owner_id = $1 ORDER BY created_on DESC`
	ws, _, err := r.queryWarehouses(ctx, query, []interface{}{ownerID}, 0)
	return ws, err
}

func (r *warehouseRepository) ListAll(ctx context.Context, status domain.WarehouseStatus, page, pageSize int64) ([]domain.Warehouse, int64, error) {
	sqlStr := `SELECT id, owner_id, name, description, address, city, state, postal_code, size_sqft, monthly_rent_cents, security_deposit_cents, images, status, rejection_reason, view_count, created_on, updated_on
	           FROM warehouses`
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

	return r.queryWarehouses(ctx, sqlStr, args, count)
}

func (r *warehouseRepository) queryWarehouses(ctx context.Context, query string, args []interface{}, count int64) ([]domain.Warehouse, int64, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var warehouses []domain.Warehouse
	for rows.Next() {
		var w domain.Warehouse
		if err := rows.Scan(
			&w.ID, &w.OwnerID, &w.Name, &w.Description, &w.Address, &w.City, &w.State, &w.PostalCode,
			&w.SizeSqft, &w.MonthlyRentCents, &w.SecurityDepositCents, pq.Array(&w.Images),
			&w.Status, &w.RejectionReason, &w.ViewCount, &w.CreatedOn, &w.UpdatedOn,
		); err != nil {
			return nil, 0, err
		}
		warehouses = append(warehouses, w)
	}
	return warehouses, count, rows.Err()
}

func (r *warehouseRepository) SetApproval(ctx context.Context, id int64, status domain.WarehouseStatus, reason string) error {
	query := `UPDATE warehouses SET status=$1, rejection_reason=$2, updated_on=$3 WHERE id=$4`
	res, err := r.db.ExecContext(ctx, query, status, reason, time.Now(), id)
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

func (r *warehouseRepository) IncrementViews(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE warehouses SET view_count = view_count + 1 WHERE id = $1`, id)
	return err
}

func (r *warehouseRepository) CountByStatus(ctx context.Context) (map[domain.WarehouseStatus]int64, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, count(*) FROM warehouses GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[domain.WarehouseStatus]int64{}
	for rows.Next() {
		var status domain.WarehouseStatus
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, err
		}
		counts[status] = n
	}
	return counts, rows.Err()
}

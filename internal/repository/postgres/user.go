package postgres

import (
	"context"
	"database/sql"
	"time"

	"warebook-backend/internal/domain"
	"warebook-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, name, email, phone, company, password_hash, is_admin, reset_code_hash, reset_code_expires, created_on, updated_on`

func (r *userRepository) scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
	u := &domain.User{}
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Company, &u.PasswordHash, &u.IsAdmin, &u.ResetCodeHash, &u.ResetCodeExpires, &u.CreatedOn, &u.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (name, email, phone, company, password_hash, is_admin, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query, u.Name, u.Email, u.Phone, u.Company, u.PasswordHash, u.IsAdmin, now, now).Scan(&u.ID)
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET name=$1, phone=$2, company=$3, password_hash=$4, updated_on=$5 WHERE id=$6`
	_, err := r.db.ExecContext(ctx, query, u.Name, u.Phone, u.Company, u.PasswordHash, time.Now(), u.ID)
	return err
}

func (r *userRepository) List(ctx context.Context, page, pageSize int64) ([]domain.User, int64, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM users`).Scan(&count); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_on DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := r.scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, *u)
	}
	return users, count, rows.Err()
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM users`).Scan(&count)
	return count, err
}

func (r *userRepository) SetResetCode(ctx context.Context, userID int64, codeHash string, expires time.Time) error {
	query := `UPDATE users SET reset_code_hash=$1, reset_code_expires=$2, updated_on=$3 WHERE id=$4`
	_, err := r.db.ExecContext(ctx, query, codeHash, expires, time.Now(), userID)
	return err
}

func (r *userRepository) ClearResetCode(ctx context.Context, userID int64) error {
	query := `UPDATE users SET reset_code_hash=NULL, reset_code_expires=NULL, updated_on=$1 WHERE id=$2`
	_, err := r.db.ExecContext(ctx, query, time.Now(), userID)
	return err
}

func (r *userRepository) ClearExpiredResetCodes(ctx context.Context) (int64, error) {
	query := `UPDATE users SET reset_code_hash=NULL, reset_code_expires=NULL
	          WHERE reset_code_expires IS NOT NULL AND reset_code_expires < $1`
	res, err := r.db.ExecContext(ctx, query, time.Now())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/slotline/interview-api/internal/domain"
)

type userRepo struct {
	pool *pgxpool.Pool
}

const userCols = `id, email, name, role, company, title, password_hash, created_at`

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	const q = `INSERT INTO users (id, email, name, role, company, title, password_hash, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now().UTC()

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := r.pool.Exec(ctx, q,
		user.ID, user.Email, user.Name, user.Role,
		user.Company, user.Title, user.PasswordHash, user.CreatedAt,
	)
	return err
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	const q = `SELECT ` + userCols + ` FROM users WHERE email=$1`
	return r.findOne(ctx, q, email)
}

func (r *userRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	const q = `SELECT ` + userCols + ` FROM users WHERE id=$1`
	return r.findOne(ctx, q, id)
}

func (r *userRepo) findOne(ctx context.Context, q string, arg any) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var u domain.User
	err := r.pool.QueryRow(ctx, q, arg).Scan(
		&u.ID, &u.Email, &u.Name, &u.Role,
		&u.Company, &u.Title, &u.PasswordHash, &u.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) ListEmployeesByCompany(ctx context.Context, companyName string) ([]domain.User, error) {
	const q = `SELECT ` + userCols + ` FROM users WHERE role=$1 AND company=$2`

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q, domain.RoleEmployee, companyName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(
			&u.ID, &u.Email, &u.Name, &u.Role,
			&u.Company, &u.Title, &u.PasswordHash, &u.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

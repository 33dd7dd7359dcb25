package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stockops-api/internal/domain"
	"github.com/jhoicas/stockops-api/internal/domain/entity"
	"github.com/jhoicas/stockops-api/internal/domain/repository"
)

var (
	_ repository.UserRepository          = (*UserRepo)(nil)
	_ repository.PasswordResetRepository = (*PasswordResetRepo)(nil)
)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario y asigna ID y timestamps.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (email, password_hash, name, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query, user.Email, user.PasswordHash, user.Name, user.Role).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	return r.findOne(ctx, "id = $1", id)
}

// GetByEmail obtiene un usuario por email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, "email = $1", email)
}

func (r *UserRepo) findOne(ctx context.Context, where string, arg any) (*entity.User, error) {
	query := `
		SELECT id, email, password_hash, name, role, created_at, updated_at
		FROM users WHERE ` + where + ` LIMIT 1`
	var u entity.User
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Role, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// Count total de usuarios (el primero registrado queda como admin).
func (r *UserRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

// UpdatePassword reemplaza el hash de contraseña del usuario con ese email.
func (r *UserRepo) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE users SET password_hash = $2, updated_at = now() WHERE email = $1`,
		email, passwordHash,
	)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// PasswordResetRepo códigos OTP en password_reset_tokens.
type PasswordResetRepo struct {
	q Querier
}

// NewPasswordResetRepository construye el adaptador de códigos de recuperación.
func NewPasswordResetRepository(q Querier) *PasswordResetRepo {
	return &PasswordResetRepo{q: q}
}

func (r *PasswordResetRepo) Create(ctx context.Context, t *entity.PasswordResetToken) error {
	query := `
		INSERT INTO password_reset_tokens (email, token, expires_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`
	if err := r.q.QueryRow(ctx, query, t.Email, t.Token, t.ExpiresAt).Scan(&t.ID, &t.CreatedAt); err != nil {
		return fmt.Errorf("insert reset token: %w", err)
	}
	return nil
}

func (r *PasswordResetRepo) FindValid(ctx context.Context, email, token string, now time.Time) (*entity.PasswordResetToken, error) {
	query := `
		SELECT id, email, token, expires_at, created_at
		FROM password_reset_tokens
		WHERE email = $1 AND token = $2 AND expires_at > $3
		ORDER BY created_at DESC
		LIMIT 1`
	var t entity.PasswordResetToken
	err := r.q.QueryRow(ctx, query, email, token, now).Scan(&t.ID, &t.Email, &t.Token, &t.ExpiresAt, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find reset token: %w", err)
	}
	return &t, nil
}

func (r *PasswordResetRepo) DeleteByEmail(ctx context.Context, email string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM password_reset_tokens WHERE email = $1`, email); err != nil {
		return fmt.Errorf("delete reset tokens: %w", err)
	}
	return nil
}

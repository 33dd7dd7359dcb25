package repository

import (
	"context"
	"time"

	"github.com/jhoicas/stockops-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// Create retorna domain.ErrEmailAlreadyExists si el email ya existe.
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Count(ctx context.Context) (int64, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}

// PasswordResetRepository códigos OTP de recuperación de contraseña.
type PasswordResetRepository interface {
	Create(ctx context.Context, t *entity.PasswordResetToken) error
	// FindValid retorna el código más reciente que coincide y no ha expirado en now; (nil, nil) si no hay.
	FindValid(ctx context.Context, email, token string, now time.Time) (*entity.PasswordResetToken, error)
	DeleteByEmail(ctx context.Context, email string) error
}

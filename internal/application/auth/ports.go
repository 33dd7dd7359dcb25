package auth

import (
	"context"

	"github.com/jhoicas/stockops-api/internal/domain/repository"
)

// TxRunner transacción con los repos de auth (reset de contraseña).
type TxRunner interface {
	RunAuth(ctx context.Context, fn func(
		userRepo repository.UserRepository,
		resetRepo repository.PasswordResetRepository,
	) error) error
}

// Mailer entrega el código de recuperación al usuario.
type Mailer interface {
	Send(ctx context.Context, email, code string) error
}

package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stockops-api/internal/application/dto"
	"github.com/jhoicas/stockops-api/internal/domain"
	"github.com/jhoicas/stockops-api/internal/domain/entity"
	"github.com/jhoicas/stockops-api/internal/domain/repository"
	"github.com/jhoicas/stockops-api/pkg/jwt"
	"github.com/jhoicas/stockops-api/pkg/logger"
)

// ForgotPasswordMessage respuesta única de forgot-password, exista o no la cuenta.
const ForgotPasswordMessage = "If an account with that email exists, we sent you a reset code."

// ResetPasswordMessage respuesta de reset-password exitoso.
const ResetPasswordMessage = "Password reset successfully"

const otpDigits = 6

// Config configuración de tokens de sesión y códigos OTP.
type Config struct {
	Secret     string
	ExpMinutes int
	Issuer     string
	OTPTTL     time.Duration
}

// AuthUseCase casos de uso de autenticación: registro, login y recuperación de contraseña.
type AuthUseCase struct {
	userRepo  repository.UserRepository
	resetRepo repository.PasswordResetRepository
	txRunner  TxRunner
	mailer    Mailer
	cfg       Config
	log       *logger.Logger
	now       func() time.Time
	newOTP    func() (string, error)
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	resetRepo repository.PasswordResetRepository,
	txRunner TxRunner,
	mailer Mailer,
	cfg Config,
	log *logger.Logger,
) *AuthUseCase {
	if cfg.OTPTTL <= 0 {
		cfg.OTPTTL = 10 * time.Minute
	}
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{
		userRepo:  userRepo,
		resetRepo: resetRepo,
		txRunner:  txRunner,
		mailer:    mailer,
		cfg:       cfg,
		log:       log.Component("auth"),
		now:       time.Now,
		newOTP:    generateOTP,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *AuthUseCase) WithClock(now func() time.Time) *AuthUseCase {
	uc.now = now
	return uc
}

// RegisterUser crea un usuario con bcrypt y abre sesión. El primer usuario del sistema queda como admin.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*Session, error) {
	in.Email = normalizeEmail(in.Email)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	total, err := uc.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	role := entity.RoleStaff
	if total == 0 {
		role = entity.RoleAdmin
	}
	user := &entity.User{
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(in.Name),
		Role:         role,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	uc.log.Info().Int64("user_id", user.ID).Str("role", role).Msg("usuario registrado")
	return uc.session(user)
}

// Login verifica email/password y genera el JWT de sesión.
// Email desconocido y password incorrecto devuelven el mismo ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*Session, error) {
	in.Email = normalizeEmail(in.Email)
	if err := dto.Validate(in); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.session(user)
}

// Me devuelve el usuario de la sesión.
func (uc *AuthUseCase) Me(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	return toUserResponse(user), nil
}

// ForgotPassword guarda un OTP de 6 dígitos y lo envía por correo si la cuenta existe.
// La respuesta es la misma en ambos casos: los fallos posteriores a la búsqueda del usuario
// (generar, guardar o enviar el código) solo se registran en el log.
func (uc *AuthUseCase) ForgotPassword(ctx context.Context, in dto.ForgotPasswordRequest) (string, error) {
	in.Email = normalizeEmail(in.Email)
	if err := dto.Validate(in); err != nil {
		return "", err
	}
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return "", err
	}
	if user == nil {
		uc.log.Info().Msg("forgot-password para email no registrado")
		return ForgotPasswordMessage, nil
	}

	code, err := uc.newOTP()
	if err != nil {
		uc.log.Error().Err(err).Int64("user_id", user.ID).Msg("no se pudo generar el código de recuperación")
		return ForgotPasswordMessage, nil
	}
	token := &entity.PasswordResetToken{
		Email:     user.Email,
		Token:     code,
		ExpiresAt: uc.now().Add(uc.cfg.OTPTTL),
	}
	if err := uc.resetRepo.Create(ctx, token); err != nil {
		uc.log.Error().Err(err).Int64("user_id", user.ID).Msg("no se pudo guardar el código de recuperación")
		return ForgotPasswordMessage, nil
	}
	if uc.mailer != nil {
		if err := uc.mailer.Send(ctx, user.Email, code); err != nil {
			uc.log.Error().Err(err).Int64("user_id", user.ID).Msg("no se pudo enviar el código de recuperación")
		}
	}
	return ForgotPasswordMessage, nil
}

// ResetPassword valida el OTP más reciente no expirado y, en una transacción,
// cambia el hash y borra todos los códigos del email.
func (uc *AuthUseCase) ResetPassword(ctx context.Context, in dto.ResetPasswordRequest) error {
	in.Email = normalizeEmail(in.Email)
	if err := dto.Validate(in); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := uc.now()
	return uc.txRunner.RunAuth(ctx, func(userRepo repository.UserRepository, resetRepo repository.PasswordResetRepository) error {
		token, err := resetRepo.FindValid(ctx, in.Email, in.OTP, now)
		if err != nil {
			return err
		}
		if token == nil {
			return domain.ErrInvalidOTP
		}
		if err := userRepo.UpdatePassword(ctx, in.Email, string(hash)); err != nil {
			return err
		}
		return resetRepo.DeleteByEmail(ctx, in.Email)
	})
}

// Session usuario autenticado y su JWT. El token no forma parte de dto.AuthResponse:
// el handler lo pone en la cookie http-only y solo /auth/token lo entrega en el cuerpo.
type Session struct {
	User  dto.UserResponse
	Token string
}

func (uc *AuthUseCase) session(user *entity.User) (*Session, error) {
	token, err := jwt.Generate(uc.cfg.Secret, user.ID, user.Email, user.Role, uc.cfg.Issuer, uc.cfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &Session{User: *toUserResponse(user), Token: token}, nil
}

// generateOTP código numérico de 6 dígitos desde crypto/rand.
func generateOTP() (string, error) {
	limit := big.NewInt(1)
	for i := 0; i < otpDigits; i++ {
		limit.Mul(limit, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", otpDigits, n.Int64()), nil
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User representa un usuario del sistema.
type User struct {
	ID           int64
	Email        string
	PasswordHash string // bcrypt, nunca texto plano
	Name         string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PasswordResetToken código de un solo uso (OTP) para recuperar la contraseña.
type PasswordResetToken struct {
	ID        int64
	Email     string
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

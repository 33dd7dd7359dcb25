package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/stockops-api/internal/application/dto"
	"github.com/jhoicas/stockops-api/internal/domain"
)

// Códigos de error del envelope.
const (
	CodeValidation        = "VALIDATION"
	CodeInvalidBody       = "INVALID_BODY"
	CodeInvalidOTP        = "INVALID_OTP"
	CodeEmailExists       = "EMAIL_EXISTS"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeForbidden         = "FORBIDDEN"
	CodeNotFound          = "NOT_FOUND"
	CodeInvalidTransition = "INVALID_TRANSITION"
	CodeInsufficientStock = "INSUFFICIENT_STOCK"
	CodeDuplicate         = "DUPLICATE"
	CodeConflict          = "CONFLICT"
	CodeInternal          = "INTERNAL"
)

// writeError traduce errores de dominio a status + envelope. Los 500 no exponen detalle.
func writeError(c *fiber.Ctx, err error) error {
	var verr *dto.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Validation failed", Code: CodeValidation, Fields: verr.Fields,
		})
	case errors.Is(err, domain.ErrInvalidOTP):
		return respond(c, fiber.StatusBadRequest, CodeInvalidOTP, "Invalid or expired OTP")
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return respond(c, fiber.StatusBadRequest, CodeEmailExists, "User already exists")
	case errors.Is(err, domain.ErrInvalidInput):
		return respond(c, fiber.StatusBadRequest, CodeValidation, "Invalid input")
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrUserNotFound):
		return respond(c, fiber.StatusUnauthorized, CodeUnauthorized, "Invalid credentials")
	case errors.Is(err, domain.ErrForbidden):
		return respond(c, fiber.StatusForbidden, CodeForbidden, "Forbidden")
	case errors.Is(err, domain.ErrNotFound):
		return respond(c, fiber.StatusNotFound, CodeNotFound, "Not found")
	case errors.Is(err, domain.ErrInvalidTransition):
		return respond(c, fiber.StatusConflict, CodeInvalidTransition, "Status transition not allowed")
	case errors.Is(err, domain.ErrInsufficientStock):
		return respond(c, fiber.StatusConflict, CodeInsufficientStock, "Insufficient stock")
	case errors.Is(err, domain.ErrDuplicate):
		return respond(c, fiber.StatusConflict, CodeDuplicate, "Resource already exists")
	case errors.Is(err, domain.ErrConflict):
		return respond(c, fiber.StatusConflict, CodeConflict, "Resource is in use")
	}
	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
	return respond(c, fiber.StatusInternalServerError, CodeInternal, "Internal server error")
}

func respond(c *fiber.Ctx, status int, code, msg string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Error: msg, Code: code})
}

func invalidBody(c *fiber.Ctx) error {
	return respond(c, fiber.StatusBadRequest, CodeInvalidBody, "Invalid request body")
}

// parseID lee el parámetro :id como entero positivo.
func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, dto.NewValidationError("id", "numeric")
	}
	return id, nil
}

// optionalInt64Query lee un filtro numérico opcional de la query (nil si no viene).
func optionalInt64Query(c *fiber.Ctx, key string) (*int64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return nil, dto.NewValidationError(key, "numeric")
	}
	return &v, nil
}

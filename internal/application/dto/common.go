package dto

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockops-api/internal/domain"
)

// ErrorResponse cuerpo de error HTTP. Fields solo en errores de validación (campo -> regla).
type ErrorResponse struct {
	Error  string            `json:"error"`
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields,omitempty"`
}

// MessageResponse respuesta simple con mensaje.
type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationError error de entrada con detalle por campo. Es domain.ErrInvalidInput para errors.Is.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return domain.ErrInvalidInput.Error()
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "invalid input (" + strings.Join(parts, ", ") + ")"
}

func (e *ValidationError) Unwrap() error { return domain.ErrInvalidInput }

// NewValidationError construye un error de validación de un solo campo.
func NewValidationError(field, rule string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: rule}}
}

// Topes de las columnas NUMERIC(14,3) de cantidades y NUMERIC(14,2) de costos.
var (
	maxQuantity = decimal.New(1, 11)
	maxMoney    = decimal.New(1, 12)
)

// QuantityRule regla que incumple una cantidad para caber sin redondeo en su columna; "" si cabe.
func QuantityRule(d decimal.Decimal) string { return numericRule(d, 3, maxQuantity) }

// MoneyRule igual que QuantityRule para costos (dos decimales).
func MoneyRule(d decimal.Decimal) string { return numericRule(d, 2, maxMoney) }

func numericRule(d decimal.Decimal, scale int32, limit decimal.Decimal) string {
	if !d.Equal(d.Truncate(scale)) {
		return "scale"
	}
	if d.Abs().GreaterThanOrEqual(limit) {
		return "max"
	}
	return ""
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Nombres de campo según el tag json, para que el cliente reconozca el campo.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// decimal.Decimal se valida como float64 (gt, gte, lte...).
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// Validate aplica las reglas `validate` del struct y devuelve *ValidationError con campo -> regla.
func Validate(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	ves, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	return &ValidationError{Fields: processValidationErrors(ves)}
}

func processValidationErrors(ves validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(ves))
	for _, ve := range ves {
		out[fieldPath(ve.Namespace())] = ve.Tag()
	}
	return out
}

// fieldPath quita el nombre del struct raíz: "CreateDeliveryRequest.items[0].quantity" -> "items[0].quantity".
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

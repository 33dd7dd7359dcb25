package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/stockops-api/pkg/jwt"
)

const testSecret = "test-secret-key-for-unit-tests"

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, 42, "ana@stockops.dev", "admin", "stockops-test", 60)
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "ana@stockops.dev", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "42", claims.Subject)
	assert.NotEmpty(t, claims.ID, "cada token lleva un jti")
}

func TestGenerate_JTIUnico(t *testing.T) {
	a, err := pkgjwt.Generate(testSecret, 1, "a@b.co", "staff", "x", 60)
	require.NoError(t, err)
	b, err := pkgjwt.Generate(testSecret, 1, "a@b.co", "staff", "x", 60)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestParse_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, 1, "a@b.co", "staff", "x", -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err)
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, 1, "a@b.co", "staff", "x", 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret", tok)
	assert.Error(t, err)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", 1, "a@b.co", "staff", "x", 60)
	assert.Error(t, err)
}

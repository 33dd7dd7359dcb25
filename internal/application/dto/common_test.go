package dto_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stockops-api/internal/application/dto"
)

func TestQuantityRule(t *testing.T) {
	d := decimal.RequireFromString
	assert.Empty(t, dto.QuantityRule(d("1.125")))
	assert.Empty(t, dto.QuantityRule(d("99999999999.999")))
	assert.Equal(t, "scale", dto.QuantityRule(d("0.0001")))
	assert.Equal(t, "max", dto.QuantityRule(d("100000000000")))
	assert.Equal(t, "max", dto.QuantityRule(d("-100000000000")))
}

func TestMoneyRule(t *testing.T) {
	d := decimal.RequireFromString
	assert.Empty(t, dto.MoneyRule(d("2.50")))
	assert.Equal(t, "scale", dto.MoneyRule(d("2.505")))
	assert.Equal(t, "max", dto.MoneyRule(d("1000000000000")))
}

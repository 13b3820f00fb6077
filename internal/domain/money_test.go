package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	v, _ := decimal.NewFromString(s)
	return v
}

func TestLineTotal(t *testing.T) {
	// price 100, qty 2, 10% discount -> 180.00
	got := LineTotal(d("100"), 2, d("10"))
	assert.True(t, got.Equal(d("180")), "got %s", got)

	// no discount path
	got = LineTotal(d("35.50"), 3, decimal.Zero)
	assert.True(t, got.Equal(d("106.50")), "got %s", got)

	// rounding after discount: 33.33 * 1 - 10% = 33.33 - 3.33 = 30.00
	got = LineTotal(d("33.33"), 1, d("10"))
	assert.True(t, got.Equal(d("30")), "got %s", got)
}

func TestCommissionAmount(t *testing.T) {
	got := CommissionAmount(d("180"), d("20"))
	assert.True(t, got.Equal(d("36")), "got %s", got)

	// half rounds away from zero: 12.345 -> 12.35 at 100%
	got = CommissionAmount(d("12.345"), d("100"))
	assert.True(t, got.Equal(d("12.35")), "got %s", got)
}

func TestTaxAmount(t *testing.T) {
	got := TaxAmount(d("180"), d("7"))
	assert.True(t, got.Equal(d("12.60")), "got %s", got)

	assert.True(t, TaxAmount(d("180"), decimal.Zero).IsZero())
}

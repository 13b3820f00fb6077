package domain

import "github.com/shopspring/decimal"

// All currency math rounds half-away-from-zero to 2 fraction digits after
// every multiplication, matching the decimal(10,2) columns it is stored in.

// LineTotal returns price * quantity reduced by discountPercent (0-100).
func LineTotal(price decimal.Decimal, quantity int, discountPercent decimal.Decimal) decimal.Decimal {
	sub := price.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
	if discountPercent.IsZero() {
		return sub
	}
	disc := sub.Mul(discountPercent).Div(decimal.NewFromInt(100)).Round(2)
	return sub.Sub(disc)
}

// CommissionAmount returns lineTotal * ratePercent/100.
func CommissionAmount(lineTotal, ratePercent decimal.Decimal) decimal.Decimal {
	return lineTotal.Mul(ratePercent).Div(decimal.NewFromInt(100)).Round(2)
}

// TaxAmount returns subtotal * ratePercent/100.
func TaxAmount(subtotal, ratePercent decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(ratePercent).Div(decimal.NewFromInt(100)).Round(2)
}

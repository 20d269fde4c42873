// Package pricing computes the checkout price breakdown in whole currency units.
package pricing

import "errors"

var (
	ErrNegativeBasePrice = errors.New("base price cannot be negative")
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrNegativeDiscount  = errors.New("discount cannot be negative")
)

type Quote struct {
	SubtotalUnits int64
	TaxUnits      int64
	DiscountUnits int64
	TotalUnits    int64
}

// Calculate is pure and deterministic: subtotal = base * quantity, taxes are
// round-half-up at taxRateBP basis points, and the total floors at zero.
func Calculate(basePriceUnits int64, quantity int, taxRateBP int, discountUnits int64) (Quote, error) {
	if basePriceUnits < 0 {
		return Quote{}, ErrNegativeBasePrice
	}
	if quantity < 1 {
		return Quote{}, ErrInvalidQuantity
	}
	if discountUnits < 0 {
		return Quote{}, ErrNegativeDiscount
	}

	subtotal := basePriceUnits * int64(quantity)
	taxes := roundHalfUp(float64(subtotal) * float64(taxRateBP) / 10000.0)
	total := subtotal + taxes - discountUnits
	if total < 0 {
		total = 0
	}

	return Quote{
		SubtotalUnits: subtotal,
		TaxUnits:      taxes,
		DiscountUnits: discountUnits,
		TotalUnits:    total,
	}, nil
}

func roundHalfUp(v float64) int64 {
	return int64(v + 0.5)
}

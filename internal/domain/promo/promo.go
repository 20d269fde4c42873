// Package promo evaluates promo codes against a booking subtotal.
package promo

import (
	"errors"
	"strings"
)

var ErrCodeNotFound = errors.New("promo code not found")

type DiscountType string

const (
	TypePercentage DiscountType = "percentage"
	TypeFlat       DiscountType = "flat"
)

// Code is a promo code definition: either a percentage off the subtotal or a
// flat amount. Codes live in a static table today; Lookup is the seam for an
// external promo store later.
type Code struct {
	code        string
	typ         DiscountType
	percentOff  float64
	amountUnits int64
}

func Percentage(code string, percentOff float64) Code {
	return Code{code: normalize(code), typ: TypePercentage, percentOff: percentOff}
}

func Flat(code string, amountUnits int64) Code {
	return Code{code: normalize(code), typ: TypeFlat, amountUnits: amountUnits}
}

func (c Code) Code() string       { return c.code }
func (c Code) Type() DiscountType { return c.typ }

// DiscountFor is pure: percentage codes round half up, flat codes are capped
// so the discount never exceeds the subtotal.
func (c Code) DiscountFor(subtotalUnits int64) int64 {
	switch c.typ {
	case TypePercentage:
		return roundHalfUp(float64(subtotalUnits) * c.percentOff / 100.0)
	case TypeFlat:
		if c.amountUnits > subtotalUnits {
			return subtotalUnits
		}
		return c.amountUnits
	default:
		return 0
	}
}

var table = map[string]Code{}

func register(c Code) {
	table[c.code] = c
}

func init() {
	register(Percentage("SAVE10", 10))
	register(Flat("FLAT100", 100))
}

// Lookup resolves a code after normalizing it to uppercase.
func Lookup(code string) (Code, error) {
	c, ok := table[normalize(code)]
	if !ok {
		return Code{}, ErrCodeNotFound
	}
	return c, nil
}

// Evaluate resolves code and returns the discount for subtotalUnits.
func Evaluate(code string, subtotalUnits int64) (int64, error) {
	c, err := Lookup(code)
	if err != nil {
		return 0, err
	}
	return c.DiscountFor(subtotalUnits), nil
}

// StaticEvaluator adapts the in-code table to an injectable evaluator.
type StaticEvaluator struct{}

func NewStaticEvaluator() StaticEvaluator {
	return StaticEvaluator{}
}

func (StaticEvaluator) Evaluate(code string, subtotalUnits int64) (int64, error) {
	return Evaluate(code, subtotalUnits)
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func roundHalfUp(v float64) int64 {
	return int64(v + 0.5)
}

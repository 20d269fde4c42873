//go:build unit

package pricing_test

import (
	"testing"

	"bookit/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name      string
		base      int64
		quantity  int
		taxRateBP int
		discount  int64
		want      pricing.Quote
		errIs     error
	}{
		{
			name: "no discount", base: 500, quantity: 2, taxRateBP: 600,
			want: pricing.Quote{SubtotalUnits: 1000, TaxUnits: 60, TotalUnits: 1060},
		},
		{
			name: "with discount", base: 500, quantity: 2, taxRateBP: 600, discount: 100,
			want: pricing.Quote{SubtotalUnits: 1000, TaxUnits: 60, DiscountUnits: 100, TotalUnits: 960},
		},
		{
			name: "discount larger than subtotal plus taxes floors at zero",
			base: 500, quantity: 2, taxRateBP: 600, discount: 5000,
			want: pricing.Quote{SubtotalUnits: 1000, TaxUnits: 60, DiscountUnits: 5000, TotalUnits: 0},
		},
		{
			name: "tax rounds half up", base: 125, quantity: 1, taxRateBP: 600,
			// 125 * 0.06 = 7.5 -> 8
			want: pricing.Quote{SubtotalUnits: 125, TaxUnits: 8, TotalUnits: 133},
		},
		{
			name: "zero tax rate", base: 300, quantity: 3, taxRateBP: 0,
			want: pricing.Quote{SubtotalUnits: 900, TotalUnits: 900},
		},
		{
			name: "free experience", base: 0, quantity: 4, taxRateBP: 600,
			want: pricing.Quote{},
		},
		{name: "negative base price", base: -1, quantity: 1, taxRateBP: 600, errIs: pricing.ErrNegativeBasePrice},
		{name: "zero quantity", base: 500, quantity: 0, taxRateBP: 600, errIs: pricing.ErrInvalidQuantity},
		{name: "negative discount", base: 500, quantity: 1, taxRateBP: 600, discount: -10, errIs: pricing.ErrNegativeDiscount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := pricing.Calculate(tt.base, tt.quantity, tt.taxRateBP, tt.discount)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalculateIsDeterministic(t *testing.T) {
	first, err := pricing.Calculate(500, 2, 600, 100)
	require.NoError(t, err)

	for range 10 {
		again, err := pricing.Calculate(500, 2, 600, 100)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

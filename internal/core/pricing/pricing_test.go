package pricing_test

import (
	"testing"

	"github.com/govalues/decimal"
	"github.com/jibli-app/jibli-backend/internal/core/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	v, err := decimal.Parse(s)
	require.NoError(t, err)
	return v
}

func TestFinalPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    string
		discount string
		expected string
	}{
		{name: "twenty percent off", price: "50.00", discount: "20", expected: "40.00"},
		{name: "no discount", price: "19.99", discount: "0", expected: "19.99"},
		{name: "full discount", price: "50.00", discount: "100", expected: "0.00"},
		{name: "discount above hundred clamps", price: "50.00", discount: "150", expected: "0.00"},
		{name: "negative discount clamps to zero", price: "50.00", discount: "-10", expected: "50.00"},
		{name: "half rounds up", price: "10.01", discount: "50", expected: "5.01"},
		{name: "third rounds down", price: "10.00", discount: "33.333", expected: "6.67"},
		{name: "fractional discount", price: "99.99", discount: "12.5", expected: "87.49"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := pricing.FinalPrice(d(t, test.price), d(t, test.discount))
			require.NoError(t, err)
			assert.Zero(t, got.Cmp(d(t, test.expected)),
				"expected %s, got %s", test.expected, got)
		})
	}
}

func TestClampDiscount(t *testing.T) {
	assert.Zero(t, pricing.ClampDiscount(d(t, "-5")).Cmp(decimal.Zero))
	assert.Zero(t, pricing.ClampDiscount(d(t, "150")).Cmp(decimal.Hundred))
	assert.Zero(t, pricing.ClampDiscount(d(t, "42")).Cmp(d(t, "42")))
}

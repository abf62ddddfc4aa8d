package pricing

import (
	"fmt"

	"github.com/govalues/decimal"
)

// halfCent shifts a value so that truncation at two places rounds half-up.
var halfCent = decimal.MustParse("0.005")

// ClampDiscount normalizes a discount percentage into [0, 100].
func ClampDiscount(pct decimal.Decimal) decimal.Decimal {
	if pct.IsNeg() {
		return decimal.Zero
	}
	if pct.Cmp(decimal.Hundred) > 0 {
		return decimal.Hundred
	}
	return pct
}

// FinalPrice derives the effective sale price from a base price and a
// discount percentage: round2(price * (1 - discount/100)), rounding half-up.
// The discount is clamped to [0, 100] before use.
func FinalPrice(price, discountPct decimal.Decimal) (decimal.Decimal, error) {
	discount := ClampDiscount(discountPct)

	factor, err := decimal.Hundred.Sub(discount)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("math error:%w", err)
	}

	raw, err := price.Mul(factor)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("math error:%w", err)
	}
	raw, err = raw.Quo(decimal.Hundred)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("math error:%w", err)
	}

	return roundHalfUp2(raw)
}

func roundHalfUp2(d decimal.Decimal) (decimal.Decimal, error) {
	shifted, err := d.Add(halfCent)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("math error:%w", err)
	}
	return shifted.Trunc(2), nil
}

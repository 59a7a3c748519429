package calculator

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/models"
)

// Places is the number of fractional digits kept for every money amount.
const Places = 2

var (
	// Tolerance is the largest difference accepted when reconciling sums against a total.
	Tolerance = decimal.New(1, -Places)

	// MaxAmount bounds every parsed amount. Stored amounts are NUMERIC(12,2).
	MaxAmount = decimal.New(1, 10)

	hundred = decimal.NewFromInt(100)
)

// Quantize rounds d to cents using round-half-to-even.
func Quantize(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(Places)
}

// WithinTolerance reports whether |a - b| <= 0.01.
func WithinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(Tolerance)
}

// ParseAmount parses a decimal string such as "12.50". It must be positive and round to
// less than MaxAmount.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("amount %q is not a decimal number: %w", s, models.ErrInvalidInput)
	}
	if !d.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount %q must be greater than zero: %w", s, models.ErrInvalidInput)
	}
	if Quantize(d).GreaterThanOrEqual(MaxAmount) {
		return decimal.Zero, fmt.Errorf("amount %q must be less than %s: %w", s, MaxAmount, models.ErrInvalidInput)
	}
	return d, nil
}

// FormatAmount renders d with exactly two fractional digits.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(Places)
}

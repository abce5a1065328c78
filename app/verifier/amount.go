package verifier

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// NormalizeAmount parses a human-formatted amount string into a decimal.
// Currency symbols, letters and thousands separators are ignored, so
// "₦2,600.00", "NGN 2600" and "2600" all normalize to 2600.
func NormalizeAmount(s string) (decimal.Decimal, error) {
	var b strings.Builder
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r >= '0' && r <= '9', r == '.', r == '-':
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return decimal.Zero, fmt.Errorf("no numeric value in %q", s)
	}
	d, err := decimal.NewFromString(b.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("cannot parse amount %q: %w", s, err)
	}
	return d, nil
}

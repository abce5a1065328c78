package verifier

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2600", "2600"},
		{"2,600", "2600"},
		{"₦2,600.00", "2600"},
		{"NGN 2,600.00", "2600"},
		{"$1,000", "1000"},
		{"1000.00", "1000"},
		{"1,000.50", "1000.5"},
		{" 2600 ", "2600"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeAmount(tt.in)
			require.NoError(t, err)
			want, err := decimal.NewFromString(tt.want)
			require.NoError(t, err)
			assert.True(t, got.Equal(want), "normalize(%q) = %s, want %s", tt.in, got, want)
		})
	}
}

func TestNormalizeAmountRejectsNonNumeric(t *testing.T) {
	_, err := NormalizeAmount("")
	assert.Error(t, err)

	_, err = NormalizeAmount("free")
	assert.Error(t, err)
}

// Amount strings differing only by currency symbol, separators or a
// trailing ".00" must produce the same accept/reject outcome.
func TestAmountComparisonIsFormatInsensitive(t *testing.T) {
	rules := TextbookRules(decimal.NewFromInt(2600), "Discrete Structures")

	equivalent := []string{"2600", "2,600", "₦2,600.00", "2600.00", "NGN 2600"}
	for _, s := range equivalent {
		assert.True(t, rules.AmountMatches(s), "expected %q to match 2600", s)
	}

	below := []string{"2599", "₦2,599.99", "2,599.00"}
	for _, s := range below {
		assert.False(t, rules.AmountMatches(s), "expected %q to be rejected", s)
	}
}

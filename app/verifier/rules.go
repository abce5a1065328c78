package verifier

import "github.com/shopspring/decimal"

// AmountRule controls how the paid amount is compared to the expected one.
type AmountRule int

const (
	// AmountAtLeast accepts any paid amount >= expected; overpayment is a tip.
	AmountAtLeast AmountRule = iota
	// AmountExact accepts only the exact expected amount.
	AmountExact
)

// Rules is the structured acceptance criteria a receipt is checked against.
// It is the source of truth; the natural-language prompt sent to the model
// is generated from it, never hand-edited per call site.
type Rules struct {
	Version         int
	Flow            string
	ExpectedAmount  decimal.Decimal
	AmountRule      AmountRule
	BankNames       []string
	AccountNames    []string
	AccountNumber   string // empty means the account number is not checked
	ItemDescription string
}

// BalanceAmount is the fixed balance payment amount.
var BalanceAmount = decimal.NewFromInt(1000)

// TextbookRules builds the acceptance criteria for a textbook cart payment.
// The paid amount must be at least the cart total; the account number is
// deliberately not checked.
func TextbookRules(total decimal.Decimal, textbookList string) Rules {
	return Rules{
		Version:         1,
		Flow:            "textbook",
		ExpectedAmount:  total,
		AmountRule:      AmountAtLeast,
		BankNames:       []string{"Moniepoint"},
		AccountNames:    []string{"Chimaraoke Samson", "Samson Chimaraoke"},
		ItemDescription: textbookList,
	}
}

// BalanceRules builds the acceptance criteria for the fixed 1000 balance
// payment.
func BalanceRules() Rules {
	return Rules{
		Version:         1,
		Flow:            "balance",
		ExpectedAmount:  BalanceAmount,
		AmountRule:      AmountExact,
		BankNames:       []string{"Opay", "Opay MFB"},
		AccountNames:    []string{"Promise Ogbu Ucha", "Promise Ucha Ogbu", "Ogbu Ucha Promise"},
		AccountNumber:   "9135315917",
		ItemDescription: "Defense refreshment payment balance",
	}
}

// AmountMatches reports whether a paid amount string satisfies the rule
// after normalization.
func (r Rules) AmountMatches(paid string) bool {
	d, err := NormalizeAmount(paid)
	if err != nil {
		return false
	}
	if r.AmountRule == AmountExact {
		return d.Equal(r.ExpectedAmount)
	}
	return d.GreaterThanOrEqual(r.ExpectedAmount)
}

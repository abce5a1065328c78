package verifier

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTextbookRulesTolerateOverpayment(t *testing.T) {
	rules := TextbookRules(decimal.NewFromInt(2600), "Discrete Structures")

	assert.True(t, rules.AmountMatches("2600"), "exact amount must approve")
	assert.True(t, rules.AmountMatches("3000"), "overpayment is a tip")
	assert.False(t, rules.AmountMatches("2599"), "underpayment must reject")
}

func TestBalanceRulesRequireExactAmount(t *testing.T) {
	rules := BalanceRules()

	assert.True(t, rules.AmountMatches("1000"))
	assert.True(t, rules.AmountMatches("₦1,000.00"))
	assert.False(t, rules.AmountMatches("999"), "underpayment must reject")
	assert.False(t, rules.AmountMatches("1001"), "overpayment must reject on exact rule")
	assert.False(t, rules.AmountMatches("2000"))
}

func TestBalanceRulesCriteria(t *testing.T) {
	rules := BalanceRules()

	assert.Equal(t, AmountExact, rules.AmountRule)
	assert.Equal(t, "9135315917", rules.AccountNumber)
	assert.ElementsMatch(t, []string{"Opay", "Opay MFB"}, rules.BankNames)
	assert.Len(t, rules.AccountNames, 3)
}

func TestBuildPromptContainsEveryCriterion(t *testing.T) {
	rules := TextbookRules(decimal.NewFromInt(2600), "Discrete Structures, Algorithms")
	prompt := BuildPrompt(rules)

	assert.Contains(t, prompt, "2600")
	assert.Contains(t, prompt, "GREATER THAN")
	assert.Contains(t, prompt, "Moniepoint")
	assert.Contains(t, prompt, "Chimaraoke Samson")
	assert.Contains(t, prompt, "Samson Chimaraoke")
	assert.Contains(t, prompt, "DO NOT check the account number")
	assert.Contains(t, prompt, "Discrete Structures, Algorithms")
	assert.Contains(t, prompt, "ignore commas, currency symbols")
	assert.Contains(t, prompt, "which specific check failed")
}

func TestBuildPromptExactAmountAndAccountNumber(t *testing.T) {
	prompt := BuildPrompt(BalanceRules())

	assert.Contains(t, prompt, "EXACTLY 1000")
	assert.Contains(t, prompt, "9135315917")
	assert.Contains(t, prompt, "Opay")
	assert.NotContains(t, prompt, "DO NOT check the account number")
}

func TestQuoteList(t *testing.T) {
	assert.Equal(t, `"Opay"`, quoteList([]string{"Opay"}, "or"))
	assert.Equal(t, `"Opay" or "Opay MFB"`, quoteList([]string{"Opay", "Opay MFB"}, "or"))

	three := quoteList([]string{"a", "b", "c"}, "or")
	assert.Equal(t, `"a", "b" or "c"`, three)
	assert.Equal(t, 1, strings.Count(three, "or"))
}

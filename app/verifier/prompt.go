package verifier

import (
	"fmt"
	"strings"
)

// BuildPrompt renders the verification instructions for a rule set. The
// generated text is the only thing the model sees besides the image, so
// every acceptance criterion must appear here.
func BuildPrompt(r Rules) string {
	var b strings.Builder

	b.WriteString("You are an expert payment receipt verification system. ")
	b.WriteString("Your task is to meticulously check a payment receipt image against a set of strict criteria.\n\n")
	b.WriteString("For the payment to be approved, ALL of the following conditions MUST be met:\n")

	n := 1
	switch r.AmountRule {
	case AmountExact:
		fmt.Fprintf(&b, "%d. The amount paid on the receipt must be EXACTLY %s. No more, no less.\n",
			n, r.ExpectedAmount.String())
	default:
		fmt.Fprintf(&b, "%d. The amount paid on the receipt must be equal to or GREATER THAN %s. "+
			"If it is less, you must reject it. Any amount paid over the expected amount is considered a tip.\n",
			n, r.ExpectedAmount.String())
	}
	n++

	fmt.Fprintf(&b, "%d. The recipient's bank name MUST be %s.\n", n, quoteList(r.BankNames, "or"))
	n++

	fmt.Fprintf(&b, "%d. The recipient's account name MUST be EXACTLY %s. "+
		"No other variations or additional names are acceptable.\n", n, quoteList(r.AccountNames, "or"))
	n++

	if r.AccountNumber != "" {
		fmt.Fprintf(&b, "%d. The recipient's account number MUST be EXACTLY %q.\n", n, r.AccountNumber)
	} else {
		b.WriteString("DO NOT check the account number.\n")
	}

	b.WriteString("\nIMPORTANT: When checking the payment amount, ignore commas, currency symbols, and trailing \".00\" decimals. ")
	fmt.Fprintf(&b, "For example, \"₦2,600.00\" and \"2600\" should both match an expected amount of 2600.\n\n")

	if r.ItemDescription != "" {
		fmt.Fprintf(&b, "Payment is for: %s\n\n", r.ItemDescription)
	}

	b.WriteString("If any condition is not met, you must reject the payment. ")
	b.WriteString("Set isApproved to true only if all conditions are met, otherwise false. ")
	b.WriteString("Provide a clear and detailed reason for your decision, mentioning which specific check failed.")

	return b.String()
}

func quoteList(items []string, conj string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = fmt.Sprintf("%q", s)
	}
	if len(quoted) <= 1 {
		return strings.Join(quoted, "")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + " " + conj + " " + quoted[len(quoted)-1]
}

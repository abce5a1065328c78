package verifier

import "context"

// Decision is the verification outcome. A rejection is a normal negative
// decision, not an error; transport failures are returned as errors.
type Decision struct {
	IsApproved bool   `json:"isApproved"`
	Reason     string `json:"reason"`
}

// Verifier classifies a receipt image against structured rules.
type Verifier interface {
	Verify(ctx context.Context, receiptDataURI string, rules Rules) (Decision, error)
}

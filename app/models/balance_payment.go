package models

import "time"

// BalancePayment is a fixed-amount supplementary payment tied to a prior
// purchase. Rows are only written after a positive verification.
type BalancePayment struct {
	ID               string     `json:"id"`
	StudentRegNumber string     `json:"student_reg_number"`
	ItemName         string     `json:"item_name"`
	Amount           float64    `json:"amount"`
	ReceiptText      string     `json:"receipt_text"`
	Verified         bool       `json:"verified"`
	VerifiedAt       *time.Time `json:"verified_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

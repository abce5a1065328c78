package models

import "time"

// Record is an approved textbook payment, written either by the receipt
// verifier on approval or by a gateway verify callback. Append-only except
// for the collection fields.
type Record struct {
	ID          string     `json:"id"`
	StudentName string     `json:"student_name"`
	RegNumber   string     `json:"reg_number"`
	ItemName    string     `json:"item_name"`
	AmountPaid  float64    `json:"amount_paid"`
	CreatedAt   time.Time  `json:"created_at"`
	IsCollected bool       `json:"is_collected"`
	CollectedBy *string    `json:"collected_by,omitempty"`
	CollectedAt *time.Time `json:"collected_at,omitempty"`
	ReceiptText *string    `json:"receipt_text,omitempty"`
}

// NewRecordInput carries the fields callers may set when inserting records.
// Both the verifier approval path and the gateway callbacks go through this
// shape so behavior stays consistent across dashboards.
type NewRecordInput struct {
	StudentName string
	RegNumber   string
	ItemName    string
	AmountPaid  float64
	CreatedAt   *time.Time
	IsCollected bool
	CollectedBy string
	ReceiptText string
}

package models

import "time"

// Transaction is the unified view model every dashboard renders. It is a
// projection of Record, ManualRecord and BalancePayment rows; balance rows
// get a " (Balance)" suffix on the textbook name to distinguish them.
type Transaction struct {
	ID           string     `json:"id"`
	StudentName  string     `json:"student_name"`
	RegNumber    string     `json:"reg_number"`
	TextbookName string     `json:"textbook_name"`
	TotalAmount  float64    `json:"total_amount"`
	Date         time.Time  `json:"date"`
	IsCollected  bool       `json:"is_collected"`
	CollectedBy  string     `json:"collected_by,omitempty"`
	CollectedAt  *time.Time `json:"collected_at,omitempty"`
}

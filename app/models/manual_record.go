package models

import "time"

// ManualRecord is an admin-entered payment that bypasses verification.
// It is always marked collected-by-admin at creation.
type ManualRecord struct {
	ID          string     `json:"id"`
	StudentName string     `json:"student_name"`
	RegNumber   string     `json:"reg_number"`
	Product     string     `json:"product"`
	Price       float64    `json:"price"`
	Time        time.Time  `json:"time"`
	IsCollected bool       `json:"is_collected"`
	CollectedBy *string    `json:"collected_by,omitempty"`
	CollectedAt *time.Time `json:"collected_at,omitempty"`
}

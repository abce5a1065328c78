package models

// Student is looked up by registration number at login; rows are created by
// the seeder or an admin import and are read-only in the payment flow.
type Student struct {
	ID        string `json:"id"`
	RegNumber string `json:"reg_number"`
	Name      string `json:"name"`
}

package models

// Textbook is a catalog item managed by admins. Name is unique.
type Textbook struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

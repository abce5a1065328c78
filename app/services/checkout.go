package services

import (
	"context"
	"database/sql"
	"log"
	"strings"

	"csc-payments/app/database"
	"csc-payments/app/models"
	"csc-payments/app/verifier"

	"github.com/shopspring/decimal"
)

// CheckoutStatus distinguishes the three terminal states of the
// verify-then-record flow. Approved-but-unrecorded is its own state so it is
// never collapsed into plain success or plain failure.
type CheckoutStatus string

const (
	StatusRejected             CheckoutStatus = "rejected"
	StatusApprovedRecorded     CheckoutStatus = "approved_recorded"
	StatusApprovedRecordFailed CheckoutStatus = "approved_record_failed"
)

type CheckoutResult struct {
	Status     CheckoutStatus `json:"status"`
	IsApproved bool           `json:"is_approved"`
	Reason     string         `json:"reason"`
}

// CheckoutService runs the two-phase verify-then-record textbook payment
// flow. The insert function is injectable for tests.
type CheckoutService struct {
	Verifier      verifier.Verifier
	InsertRecords func([]models.NewRecordInput) error
}

func NewCheckoutService(db *sql.DB, v verifier.Verifier) *CheckoutService {
	return &CheckoutService{
		Verifier: v,
		InsertRecords: func(inputs []models.NewRecordInput) error {
			return database.InsertRecords(db, inputs)
		},
	}
}

// VerifyAndRecord checks the receipt against the cart total and, on
// approval, writes one Record row per cart item.
func (s *CheckoutService) VerifyAndRecord(ctx context.Context, student models.Student, cart []models.Textbook, receiptDataURI string) CheckoutResult {
	if receiptDataURI == "" {
		return CheckoutResult{Status: StatusRejected, Reason: "Please upload a receipt image."}
	}
	if len(cart) == 0 {
		return CheckoutResult{Status: StatusRejected, Reason: "Your cart is empty."}
	}

	total := decimal.Zero
	names := make([]string, len(cart))
	for i, book := range cart {
		total = total.Add(decimal.NewFromFloat(book.Price))
		names[i] = book.Name
	}

	rules := verifier.TextbookRules(total, strings.Join(names, ", "))

	decision, err := s.Verifier.Verify(ctx, receiptDataURI, rules)
	if err != nil {
		log.Printf("Receipt verification failed: %v", err)
		return CheckoutResult{
			Status: StatusRejected,
			Reason: "An error occurred during verification. Please try again later.",
		}
	}
	if !decision.IsApproved {
		return CheckoutResult{Status: StatusRejected, Reason: decision.Reason}
	}

	inputs := make([]models.NewRecordInput, len(cart))
	for i, book := range cart {
		inputs[i] = models.NewRecordInput{
			StudentName: student.Name,
			RegNumber:   student.RegNumber,
			ItemName:    book.Name,
			AmountPaid:  book.Price,
		}
	}

	if err := s.InsertRecords(inputs); err != nil {
		log.Printf("Error saving records after approval: %v", err)
		return CheckoutResult{
			Status:     StatusApprovedRecordFailed,
			IsApproved: true,
			Reason:     "Payment approved, but failed to save record. Please contact the administrator.",
		}
	}

	return CheckoutResult{Status: StatusApprovedRecorded, IsApproved: true, Reason: decision.Reason}
}

package services

import (
	"context"
	"database/sql"
	"log"

	"csc-payments/app/database"
	"csc-payments/app/models"
	"csc-payments/app/verifier"
)

// BalanceItemName is the label stored on balance payment rows.
const BalanceItemName = "Defense refreshment payment"

// BalanceService verifies and records fixed-amount balance payments.
type BalanceService struct {
	Verifier verifier.Verifier
	Insert   func(regNumber, itemName string, amount float64, receiptText string) error
}

func NewBalanceService(db *sql.DB, v verifier.Verifier) *BalanceService {
	return &BalanceService{
		Verifier: v,
		Insert: func(regNumber, itemName string, amount float64, receiptText string) error {
			return database.InsertBalancePayment(db, regNumber, itemName, amount, receiptText)
		},
	}
}

// Submit verifies a balance receipt for the logged-in student and records a
// verified balance payment row on approval.
func (s *BalanceService) Submit(ctx context.Context, student models.Student, receiptDataURI string) CheckoutResult {
	if receiptDataURI == "" {
		return CheckoutResult{Status: StatusRejected, Reason: "Please upload a receipt image."}
	}

	rules := verifier.BalanceRules()

	decision, err := s.Verifier.Verify(ctx, receiptDataURI, rules)
	if err != nil {
		log.Printf("Balance verification failed: %v", err)
		return CheckoutResult{
			Status: StatusRejected,
			Reason: "An error occurred during verification. Please try again later.",
		}
	}
	if !decision.IsApproved {
		return CheckoutResult{Status: StatusRejected, Reason: decision.Reason}
	}

	amount, _ := verifier.BalanceAmount.Float64()
	if err := s.Insert(student.RegNumber, BalanceItemName, amount, receiptDataURI); err != nil {
		log.Printf("Error inserting balance payment: %v", err)
		return CheckoutResult{
			Status:     StatusApprovedRecordFailed,
			IsApproved: true,
			Reason:     "Payment approved, but failed to record balance payment. Please contact the administrator.",
		}
	}

	return CheckoutResult{Status: StatusApprovedRecorded, IsApproved: true, Reason: decision.Reason}
}

package services

import (
	"database/sql"
	"log"
	"sort"

	"csc-payments/app/database"
	"csc-payments/app/models"
)

// Merge projects the three record sources into the unified Transaction view,
// sorted by date descending. No dedup is attempted: sources are disjoint by
// construction, and N1+N2+N3 input rows always yield N1+N2+N3 transactions.
func Merge(records []models.Record, manual []models.ManualRecord, balances []models.BalancePayment) []models.Transaction {
	transactions := make([]models.Transaction, 0, len(records)+len(manual)+len(balances))

	for _, r := range records {
		t := models.Transaction{
			ID:           r.ID,
			StudentName:  r.StudentName,
			RegNumber:    r.RegNumber,
			TextbookName: r.ItemName,
			TotalAmount:  r.AmountPaid,
			Date:         r.CreatedAt,
			IsCollected:  r.IsCollected,
			CollectedAt:  r.CollectedAt,
		}
		if r.CollectedBy != nil {
			t.CollectedBy = *r.CollectedBy
		}
		transactions = append(transactions, t)
	}

	for _, m := range manual {
		t := models.Transaction{
			ID:           m.ID,
			StudentName:  m.StudentName,
			RegNumber:    m.RegNumber,
			TextbookName: m.Product,
			TotalAmount:  m.Price,
			Date:         m.Time,
			IsCollected:  m.IsCollected,
			CollectedAt:  m.CollectedAt,
		}
		if m.CollectedBy != nil {
			t.CollectedBy = *m.CollectedBy
		}
		transactions = append(transactions, t)
	}

	for _, b := range balances {
		// Student name is not stored on balance rows. Verified balance
		// payments count as collected.
		transactions = append(transactions, models.Transaction{
			ID:           b.ID,
			RegNumber:    b.StudentRegNumber,
			TextbookName: b.ItemName + " (Balance)",
			TotalAmount:  b.Amount,
			Date:         b.CreatedAt,
			IsCollected:  true,
			CollectedBy:  "AI Verified",
			CollectedAt:  b.VerifiedAt,
		})
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.After(transactions[j].Date)
	})
	return transactions
}

// GetTransactions returns the global transaction view. A failure reading one
// source is logged and treated as an empty list; the other sources still
// contribute, so the aggregate never hard-fails.
func GetTransactions(db *sql.DB) []models.Transaction {
	records, err := database.ListRecords(db)
	if err != nil {
		log.Printf("Error fetching records: %v", err)
	}
	manual, err := database.ListManualRecords(db)
	if err != nil {
		log.Printf("Error fetching manual records: %v", err)
	}
	balances, err := database.ListBalancePayments(db)
	if err != nil {
		log.Printf("Error fetching balance payments: %v", err)
	}
	return Merge(records, manual, balances)
}

// GetStudentTransactions returns the transaction view for one registration
// number. An unknown or empty reg number yields an empty list, not an error.
func GetStudentTransactions(db *sql.DB, regNumber string) []models.Transaction {
	if regNumber == "" {
		return []models.Transaction{}
	}

	records, err := database.ListRecordsByRegNumber(db, regNumber)
	if err != nil {
		log.Printf("Error fetching student records: %v", err)
	}
	manual, err := database.ListManualRecordsByRegNumber(db, regNumber)
	if err != nil {
		log.Printf("Error fetching student manual records: %v", err)
	}
	balances, err := database.ListBalancePaymentsByRegNumber(db, regNumber)
	if err != nil {
		log.Printf("Error fetching student balance payments: %v", err)
	}
	return Merge(records, manual, balances)
}

package database

import (
	"database/sql"

	"csc-payments/app/models"
)

// InsertBalancePayment writes a verified balance payment row.
func InsertBalancePayment(db *sql.DB, regNumber, itemName string, amount float64, receiptText string) error {
	query := `INSERT INTO balance_payments (student_reg_number, item_name, amount, receipt_text, verified, verified_at)
			  VALUES ($1, $2, $3, $4, TRUE, NOW())`
	_, err := db.Exec(query, regNumber, itemName, amount, receiptText)
	return err
}

func scanBalancePayments(rows *sql.Rows) ([]models.BalancePayment, error) {
	defer rows.Close()

	var payments []models.BalancePayment
	for rows.Next() {
		var b models.BalancePayment
		var receiptText sql.NullString
		err := rows.Scan(
			&b.ID, &b.StudentRegNumber, &b.ItemName, &b.Amount,
			&receiptText, &b.Verified, &b.VerifiedAt, &b.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		b.ReceiptText = receiptText.String
		payments = append(payments, b)
	}
	return payments, rows.Err()
}

const balanceColumns = `id, student_reg_number, item_name, amount, receipt_text, verified, verified_at, created_at`

func ListBalancePayments(db *sql.DB) ([]models.BalancePayment, error) {
	rows, err := db.Query(`SELECT ` + balanceColumns + ` FROM balance_payments ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return scanBalancePayments(rows)
}

func ListBalancePaymentsByRegNumber(db *sql.DB, regNumber string) ([]models.BalancePayment, error) {
	rows, err := db.Query(`SELECT `+balanceColumns+` FROM balance_payments WHERE student_reg_number = $1 ORDER BY created_at DESC`, regNumber)
	if err != nil {
		return nil, err
	}
	return scanBalancePayments(rows)
}

package database

import (
	"database/sql"
	"time"

	"csc-payments/app/models"
)

// InsertRecords inserts one row per input into the records table. This is
// the single write path used by the verifier approval flow and the gateway
// verify callbacks, so behavior stays consistent across dashboards.
func InsertRecords(db *sql.DB, inputs []models.NewRecordInput) error {
	if len(inputs) == 0 {
		return nil
	}

	query := `INSERT INTO records (student_name, reg_number, name, amount_paid, created_at, is_collected, collected_by, receipt_text)
			  VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), NULLIF($8, ''))`

	for _, in := range inputs {
		createdAt := time.Now()
		if in.CreatedAt != nil {
			createdAt = *in.CreatedAt
		}
		_, err := db.Exec(query,
			in.StudentName, in.RegNumber, in.ItemName, in.AmountPaid,
			createdAt, in.IsCollected, in.CollectedBy, in.ReceiptText,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func scanRecords(rows *sql.Rows) ([]models.Record, error) {
	defer rows.Close()

	var records []models.Record
	for rows.Next() {
		var r models.Record
		err := rows.Scan(
			&r.ID, &r.StudentName, &r.RegNumber, &r.ItemName, &r.AmountPaid,
			&r.CreatedAt, &r.IsCollected, &r.CollectedBy, &r.CollectedAt, &r.ReceiptText,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

const recordColumns = `id, student_name, reg_number, name, amount_paid, created_at, is_collected, collected_by, collected_at, receipt_text`

func ListRecords(db *sql.DB) ([]models.Record, error) {
	rows, err := db.Query(`SELECT ` + recordColumns + ` FROM records ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return scanRecords(rows)
}

func ListRecordsByRegNumber(db *sql.DB, regNumber string) ([]models.Record, error) {
	rows, err := db.Query(`SELECT `+recordColumns+` FROM records WHERE reg_number = $1 ORDER BY created_at DESC`, regNumber)
	if err != nil {
		return nil, err
	}
	return scanRecords(rows)
}

// MarkRecordCollected sets the collection fields and reports how many rows
// matched. Repeat marking overwrites the previous value (last write wins).
func MarkRecordCollected(db *sql.DB, id, collectedBy string) (int64, error) {
	res, err := db.Exec(
		`UPDATE records SET is_collected = TRUE, collected_by = $1, collected_at = NOW() WHERE id = $2`,
		collectedBy, id,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func DeleteRecord(db *sql.DB, id string) (int64, error) {
	res, err := db.Exec(`DELETE FROM records WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

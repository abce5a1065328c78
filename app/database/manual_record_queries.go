package database

import (
	"database/sql"
	"time"

	"csc-payments/app/models"
)

// InsertManualRecord writes an admin-entered payment. Manual records are
// always marked collected-by-admin at creation.
func InsertManualRecord(db *sql.DB, studentName, regNumber, product string, price float64, recordTime time.Time) error {
	query := `INSERT INTO manual_records (student_name, reg_number, product, price, time, is_collected, collected_by, collected_at)
			  VALUES ($1, $2, $3, $4, $5, TRUE, 'Admin', NOW())`
	_, err := db.Exec(query, studentName, regNumber, product, price, recordTime)
	return err
}

func scanManualRecords(rows *sql.Rows) ([]models.ManualRecord, error) {
	defer rows.Close()

	var records []models.ManualRecord
	for rows.Next() {
		var m models.ManualRecord
		err := rows.Scan(
			&m.ID, &m.StudentName, &m.RegNumber, &m.Product, &m.Price,
			&m.Time, &m.IsCollected, &m.CollectedBy, &m.CollectedAt,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, m)
	}
	return records, rows.Err()
}

const manualRecordColumns = `id, student_name, reg_number, product, price, time, is_collected, collected_by, collected_at`

func ListManualRecords(db *sql.DB) ([]models.ManualRecord, error) {
	rows, err := db.Query(`SELECT ` + manualRecordColumns + ` FROM manual_records ORDER BY time DESC`)
	if err != nil {
		return nil, err
	}
	return scanManualRecords(rows)
}

func ListManualRecordsByRegNumber(db *sql.DB, regNumber string) ([]models.ManualRecord, error) {
	rows, err := db.Query(`SELECT `+manualRecordColumns+` FROM manual_records WHERE reg_number = $1 ORDER BY time DESC`, regNumber)
	if err != nil {
		return nil, err
	}
	return scanManualRecords(rows)
}

func MarkManualRecordCollected(db *sql.DB, id, collectedBy string) (int64, error) {
	res, err := db.Exec(
		`UPDATE manual_records SET is_collected = TRUE, collected_by = $1, collected_at = NOW() WHERE id = $2`,
		collectedBy, id,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func DeleteManualRecord(db *sql.DB, id string) (int64, error) {
	res, err := db.Exec(`DELETE FROM manual_records WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

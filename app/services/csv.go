package services

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"csc-payments/app/models"
)

var csvHeader = []string{"Student Name", "Registration Number", "Textbook", "Amount Paid", "Date of Payment"}

// BuildTransactionsCSV renders the admin export: one row per transaction,
// dates formatted YYYY-MM-DD.
func BuildTransactionsCSV(transactions []models.Transaction) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, t := range transactions {
		row := []string{
			t.StudentName,
			t.RegNumber,
			t.TextbookName,
			strconv.FormatFloat(t.TotalAmount, 'f', -1, 64),
			t.Date.Format("2006-01-02"),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

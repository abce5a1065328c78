package database

import (
	"database/sql"
	"errors"

	"csc-payments/app/models"

	"github.com/lib/pq"
)

// ErrDuplicateTextbook is returned when a textbook name already exists.
var ErrDuplicateTextbook = errors.New("a textbook with this name already exists")

func GetAllTextbooks(db *sql.DB) ([]models.Textbook, error) {
	rows, err := db.Query(`SELECT id, name, price FROM textbooks ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var textbooks []models.Textbook
	for rows.Next() {
		var t models.Textbook
		if err := rows.Scan(&t.ID, &t.Name, &t.Price); err != nil {
			return nil, err
		}
		textbooks = append(textbooks, t)
	}
	return textbooks, rows.Err()
}

func CreateTextbook(db *sql.DB, name string, price float64) error {
	_, err := db.Exec(`INSERT INTO textbooks (name, price) VALUES ($1, $2)`, name, price)
	return mapTextbookError(err)
}

func UpdateTextbook(db *sql.DB, id, name string, price float64) error {
	_, err := db.Exec(`UPDATE textbooks SET name = $1, price = $2 WHERE id = $3`, name, price, id)
	return mapTextbookError(err)
}

func DeleteTextbook(db *sql.DB, id string) error {
	_, err := db.Exec(`DELETE FROM textbooks WHERE id = $1`, id)
	return err
}

// mapTextbookError surfaces unique-constraint violations as a specific
// duplicate-name error the handlers can report inline.
func mapTextbookError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return ErrDuplicateTextbook
	}
	return err
}

package database

import (
	"database/sql"
	"time"

	"csc-payments/app/models"
)

func GetStudentByRegNumber(db *sql.DB, regNumber string) (*models.Student, error) {
	student := &models.Student{}
	query := `SELECT id, reg_number, name FROM students WHERE reg_number = $1`

	err := db.QueryRow(query, regNumber).Scan(&student.ID, &student.RegNumber, &student.Name)
	if err != nil {
		return nil, err
	}
	return student, nil
}

func GetStudentByID(db *sql.DB, id string) (*models.Student, error) {
	student := &models.Student{}
	query := `SELECT id, reg_number, name FROM students WHERE id = $1`

	err := db.QueryRow(query, id).Scan(&student.ID, &student.RegNumber, &student.Name)
	if err != nil {
		return nil, err
	}
	return student, nil
}

func GetAllStudents(db *sql.DB) ([]models.Student, error) {
	rows, err := db.Query(`SELECT id, reg_number, name FROM students ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		var s models.Student
		if err := rows.Scan(&s.ID, &s.RegNumber, &s.Name); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

func CreateStudent(db *sql.DB, regNumber, name string) error {
	query := `INSERT INTO students (reg_number, name) VALUES ($1, $2)
			  ON CONFLICT (reg_number) DO UPDATE SET name = EXCLUDED.name`
	_, err := db.Exec(query, regNumber, name)
	return err
}

func CreateSession(db *sql.DB, sessionID string, studentID *string, isAdmin bool, expiresAt time.Time) error {
	query := `INSERT INTO sessions (id, student_id, is_admin, expires_at, created_at) VALUES ($1, $2, $3, $4, $5)`
	_, err := db.Exec(query, sessionID, studentID, isAdmin, expiresAt, time.Now())
	return err
}

func GetSessionByID(db *sql.DB, sessionID string) (*models.Session, error) {
	session := &models.Session{}
	query := `SELECT id, student_id, is_admin, expires_at, created_at FROM sessions WHERE id = $1 AND expires_at > NOW()`

	err := db.QueryRow(query, sessionID).Scan(
		&session.ID, &session.StudentID, &session.IsAdmin, &session.ExpiresAt, &session.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return session, nil
}

func DeleteSession(db *sql.DB, sessionID string) error {
	_, err := db.Exec(`DELETE FROM sessions WHERE id = $1`, sessionID)
	return err
}

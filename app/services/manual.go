package services

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"csc-payments/app/database"
	"csc-payments/app/models"
)

var (
	ErrStudentNotFound = errors.New("student not found for the provided registration number")
	ErrInvalidItemName = errors.New("item name is required")
	ErrInvalidAmount   = errors.New("amount must be a positive number")
)

// ManualRecordService writes admin-entered payments. The student lookup and
// the insert are injectable for tests.
type ManualRecordService struct {
	GetStudent func(regNumber string) (*models.Student, error)
	Insert     func(studentName, regNumber, product string, price float64, recordTime time.Time) error
}

func NewManualRecordService(db *sql.DB) *ManualRecordService {
	return &ManualRecordService{
		GetStudent: func(regNumber string) (*models.Student, error) {
			return database.GetStudentByRegNumber(db, regNumber)
		},
		Insert: func(studentName, regNumber, product string, price float64, recordTime time.Time) error {
			return database.InsertManualRecord(db, studentName, regNumber, product, price, recordTime)
		},
	}
}

// Create validates and writes an admin-entered payment. The registration
// number must resolve to an existing student; the stored name comes from the
// student row, not the form.
func (s *ManualRecordService) Create(regNumber, itemName string, amount float64, date *time.Time) error {
	regNumber = strings.TrimSpace(regNumber)
	itemName = strings.TrimSpace(itemName)

	if regNumber == "" {
		return ErrStudentNotFound
	}
	if len(itemName) < 2 {
		return ErrInvalidItemName
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}

	student, err := s.GetStudent(regNumber)
	if err != nil {
		if err == sql.ErrNoRows {
			return ErrStudentNotFound
		}
		return err
	}

	recordTime := time.Now()
	if date != nil {
		recordTime = *date
	}

	return s.Insert(student.Name, student.RegNumber, itemName, amount, recordTime)
}

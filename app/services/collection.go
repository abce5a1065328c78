package services

import (
	"database/sql"
	"errors"
	"log"

	"csc-payments/app/database"
)

// ErrTransactionNotFound is returned when neither source table contains the
// given transaction id.
var ErrTransactionNotFound = errors.New("transaction not found")

// CollectionService marks and deletes transactions across the two source
// tables that hold them. The table operations are injectable for tests.
type CollectionService struct {
	MarkRecord   func(id, collectedBy string) (int64, error)
	MarkManual   func(id, collectedBy string) (int64, error)
	DeleteRecord func(id string) (int64, error)
	DeleteManual func(id string) (int64, error)
}

func NewCollectionService(db *sql.DB) *CollectionService {
	return &CollectionService{
		MarkRecord: func(id, collectedBy string) (int64, error) {
			return database.MarkRecordCollected(db, id, collectedBy)
		},
		MarkManual: func(id, collectedBy string) (int64, error) {
			return database.MarkManualRecordCollected(db, id, collectedBy)
		},
		DeleteRecord: func(id string) (int64, error) {
			return database.DeleteRecord(db, id)
		},
		DeleteManual: func(id string) (int64, error) {
			return database.DeleteManualRecord(db, id)
		},
	}
}

// MarkCollected sets collection status on whichever source table holds the
// id. The id is tried against both tables; marking an already collected row
// again is an allowed no-op (last write wins).
func (s *CollectionService) MarkCollected(id, collectedBy string) error {
	recN, recErr := s.MarkRecord(id, collectedBy)
	manN, manErr := s.MarkManual(id, collectedBy)

	if recErr != nil && manErr != nil {
		log.Printf("Error updating collection status in both tables: %v / %v", recErr, manErr)
		return errors.New("failed to update collection status")
	}
	if recN == 0 && manN == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// Delete removes the row from whichever source table contains the id. Both
// tables are tried unconditionally; the call succeeds if either delete
// matched, and reports not-found only when neither did.
func (s *CollectionService) Delete(id string) error {
	recN, recErr := s.DeleteRecord(id)
	manN, manErr := s.DeleteManual(id)

	if recErr != nil && manErr != nil {
		log.Printf("Error deleting transaction from both tables: %v / %v", recErr, manErr)
		return errors.New("failed to delete transaction")
	}
	if recN == 0 && manN == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

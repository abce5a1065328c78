package services

import (
	"testing"
	"time"

	"csc-payments/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(n int) time.Time {
	return time.Date(2026, 3, n, 12, 0, 0, 0, time.UTC)
}

func TestMergeCombinesAllSources(t *testing.T) {
	admin := "Admin"
	records := []models.Record{
		{ID: "r1", StudentName: "Ada Obi", RegNumber: "2023001", ItemName: "Discrete Structures", AmountPaid: 2600, CreatedAt: day(3)},
		{ID: "r2", StudentName: "Ada Obi", RegNumber: "2023001", ItemName: "Algorithms", AmountPaid: 3100, CreatedAt: day(1)},
	}
	manual := []models.ManualRecord{
		{ID: "m1", StudentName: "Bayo Ade", RegNumber: "2023002", Product: "Compilers", Price: 1800, Time: day(2), IsCollected: true, CollectedBy: &admin},
	}
	verifiedAt := day(4)
	balances := []models.BalancePayment{
		{ID: "b1", StudentRegNumber: "2023001", ItemName: "Defense refreshment payment", Amount: 1000, CreatedAt: day(4), Verified: true, VerifiedAt: &verifiedAt},
	}

	got := Merge(records, manual, balances)

	// N1+N2+N3 inputs yield exactly N1+N2+N3 transactions, no dedup.
	require.Len(t, got, 4)

	// Sorted by date descending.
	for i := 1; i < len(got); i++ {
		assert.False(t, got[i].Date.After(got[i-1].Date), "transactions must be sorted newest-first")
	}
	assert.Equal(t, "b1", got[0].ID)
	assert.Equal(t, "r2", got[3].ID)
}

func TestMergeBalanceRows(t *testing.T) {
	verifiedAt := day(5)
	balances := []models.BalancePayment{
		{ID: "b1", StudentRegNumber: "2023001", ItemName: "Defense refreshment payment", Amount: 1000, CreatedAt: day(5), VerifiedAt: &verifiedAt},
	}

	got := Merge(nil, nil, balances)
	require.Len(t, got, 1)

	assert.Equal(t, "Defense refreshment payment (Balance)", got[0].TextbookName)
	assert.True(t, got[0].IsCollected, "verified balance payments count as collected")
	assert.Equal(t, "AI Verified", got[0].CollectedBy)
	assert.Empty(t, got[0].StudentName, "student name is not stored on balance rows")
	assert.Equal(t, float64(1000), got[0].TotalAmount)
}

func TestMergeFieldMapping(t *testing.T) {
	collectedBy := "Front Desk"
	collectedAt := day(6)
	records := []models.Record{
		{
			ID: "r1", StudentName: "Ada Obi", RegNumber: "2023001", ItemName: "Discrete Structures",
			AmountPaid: 2600, CreatedAt: day(3), IsCollected: true,
			CollectedBy: &collectedBy, CollectedAt: &collectedAt,
		},
	}

	got := Merge(records, nil, nil)
	require.Len(t, got, 1)

	assert.Equal(t, "Discrete Structures", got[0].TextbookName)
	assert.Equal(t, float64(2600), got[0].TotalAmount)
	assert.Equal(t, "Front Desk", got[0].CollectedBy)
	require.NotNil(t, got[0].CollectedAt)
	assert.Equal(t, collectedAt, *got[0].CollectedAt)
}

func TestMergeEmptySources(t *testing.T) {
	got := Merge(nil, nil, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGetStudentTransactionsEmptyRegNumber(t *testing.T) {
	// Must return an empty list without touching the database.
	got := GetStudentTransactions(nil, "")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"folio-backend/internal/models"
)

func TestCalculateFine(t *testing.T) {
	due := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	loan := &models.Loan{DueDate: due}

	tests := []struct {
		name       string
		returnDate time.Time
		want       float64
	}{
		{"zwrot przed terminem", due.AddDate(0, 0, -2), 0},
		{"zwrot dokładnie w terminie", due, 0},
		{"spóźnienie poniżej pełnego dnia", due.Add(6 * time.Hour), 0},
		{"jeden dzień spóźnienia", due.AddDate(0, 0, 1), 0.50},
		{"trzy dni spóźnienia", due.AddDate(0, 0, 3), 1.50},
		{"dziesięć dni spóźnienia", due.AddDate(0, 0, 10), 5.00},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, loan.CalculateFine(tc.returnDate, 0.50))
		})
	}
}

func TestIsOverdue(t *testing.T) {
	active := &models.Loan{
		Status:  models.LoanStatusActive,
		DueDate: time.Now().AddDate(0, 0, -1),
	}
	assert.True(t, active.IsOverdue())

	future := &models.Loan{
		Status:  models.LoanStatusActive,
		DueDate: time.Now().AddDate(0, 0, 7),
	}
	assert.False(t, future.IsOverdue())

	// Zwrócone wypożyczenie nie jest przeterminowane nawet po terminie
	returned := &models.Loan{
		Status:  models.LoanStatusReturned,
		DueDate: time.Now().AddDate(0, 0, -30),
	}
	assert.False(t, returned.IsOverdue())
}

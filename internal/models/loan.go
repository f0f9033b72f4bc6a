package models

import "time"

// LoanStatus określa status wypożyczenia
type LoanStatus string

const (
	LoanStatusActive   LoanStatus = "active"   // Aktywne wypożyczenie
	LoanStatusReturned LoanStatus = "returned" // Zwrócone
	// LoanStatusOverdue należy do słownika domeny, ale żadna ścieżka kodu
	// nie ustawia go na rekordzie - przeterminowane wypożyczenia są
	// wyliczane na bieżąco z DueDate aktywnych wypożyczeń
	LoanStatusOverdue LoanStatus = "overdue"
)

// Loan reprezentuje wypożyczenie jednego egzemplarza książki,
// od wypożyczenia do zwrotu
type Loan struct {
	ID         int64      `json:"loan_id" gorm:"column:loan_id;primaryKey"`
	UserID     int64      `json:"user_id" gorm:"not null;index"`
	BookID     int64      `json:"book_id" gorm:"not null;index"`
	LoanDate   time.Time  `json:"loan_date"`
	DueDate    time.Time  `json:"due_date" gorm:"not null"`
	ReturnDate *time.Time `json:"return_date"`
	Status     LoanStatus `json:"status" gorm:"size:20;default:active;index"`
	FineAmount float64    `json:"fine_amount" gorm:"default:0"`
}

// TableName zwraca nazwę tabeli wypożyczeń
func (Loan) TableName() string {
	return "loans"
}

// IsOverdue sprawdza czy aktywne wypożyczenie przekroczyło termin zwrotu
func (l *Loan) IsOverdue() bool {
	return l.Status == LoanStatusActive && time.Now().After(l.DueDate)
}

// CalculateFine oblicza karę za przetrzymanie książki przy zwrocie.
// Kara jest naliczana za każdy pełny dzień po terminie - zwrot dokładnie
// w terminie (lub wcześniej) nie generuje kary.
func (l *Loan) CalculateFine(returnDate time.Time, ratePerDay float64) float64 {
	if !returnDate.After(l.DueDate) {
		return 0
	}

	daysOverdue := int(returnDate.Sub(l.DueDate).Hours() / 24)
	if daysOverdue <= 0 {
		return 0
	}

	return float64(daysOverdue) * ratePerDay
}

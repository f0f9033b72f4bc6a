package database

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"folio-backend/internal/models"
)

const (
	// DefaultLoanPeriodDays to standardowy okres wypożyczenia
	DefaultLoanPeriodDays = 14
	// DefaultFinePerDay to dzienna stawka kary za przetrzymanie książki
	DefaultFinePerDay = 0.50
)

// BorrowBook wypożycza książkę użytkownikowi: zmniejsza liczbę dostępnych
// egzemplarzy i tworzy aktywne wypożyczenie w jednej transakcji.
//
// Dostępność jest zmniejszana warunkową aktualizacją (tylko gdy
// quantity_available > 0), więc równoległe wypożyczenia ostatniego
// egzemplarza nie mogą zejść licznika poniżej zera - baza danych
// szereguje konfliktujące aktualizacje tego samego wiersza.
func (c *Client) BorrowBook(userID, bookID int64, days int) (*models.Loan, error) {
	if days <= 0 {
		days = DefaultLoanPeriodDays
	}

	var loan *models.Loan

	err := c.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Book{}).
			Where("book_id = ? AND quantity_available > 0", bookID).
			UpdateColumn("quantity_available", gorm.Expr("quantity_available - 1"))
		if res.Error != nil {
			return fmt.Errorf("błąd aktualizacji dostępności książki: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			// Książka nie istnieje albo nie ma wolnych egzemplarzy
			return ErrBookUnavailable
		}

		now := time.Now()
		loan = &models.Loan{
			UserID:     userID,
			BookID:     bookID,
			Status:     models.LoanStatusActive,
			LoanDate:   now,
			DueDate:    now.AddDate(0, 0, days),
			FineAmount: 0,
		}

		if err := tx.Create(loan).Error; err != nil {
			return fmt.Errorf("błąd tworzenia wypożyczenia: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Wypożyczono książkę %d użytkownikowi %d (termin zwrotu: %s)",
		bookID, userID, loan.DueDate.Format("2006-01-02"))

	return loan, nil
}

// ReturnLoan obsługuje zwrot książki: zamyka wypożyczenie, nalicza karę za
// przetrzymanie i oddaje egzemplarz do katalogu w jednej transakcji.
//
// Zamknięcie wypożyczenia jest warunkową aktualizacją (tylko gdy status to
// nadal active), więc podwójny zwrot tego samego wypożyczenia nalicza karę
// i zwiększa dostępność dokładnie raz.
func (c *Client) ReturnLoan(loanID int64, finePerDay float64) (*models.Loan, error) {
	var returned models.Loan

	err := c.DB.Transaction(func(tx *gorm.DB) error {
		var loan models.Loan
		if err := tx.First(&loan, loanID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Nieistniejące wypożyczenie traktujemy tak samo jak nieaktywne
				return ErrLoanNotActive
			}
			return fmt.Errorf("błąd pobierania wypożyczenia: %w", err)
		}

		now := time.Now()
		fine := loan.CalculateFine(now, finePerDay)

		res := tx.Model(&models.Loan{}).
			Where("loan_id = ? AND status = ?", loanID, models.LoanStatusActive).
			Updates(map[string]interface{}{
				"status":      models.LoanStatusReturned,
				"return_date": now,
				"fine_amount": fine,
			})
		if res.Error != nil {
			return fmt.Errorf("błąd aktualizacji wypożyczenia: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrLoanNotActive
		}

		// Oddaj egzemplarz do katalogu, nie przekraczając łącznej liczby egzemplarzy
		inc := tx.Model(&models.Book{}).
			Where("book_id = ? AND quantity_available < quantity_total", loan.BookID).
			UpdateColumn("quantity_available", gorm.Expr("quantity_available + 1"))
		if inc.Error != nil {
			return fmt.Errorf("błąd aktualizacji dostępności książki: %w", inc.Error)
		}

		loan.Status = models.LoanStatusReturned
		loan.ReturnDate = &now
		loan.FineAmount = fine
		returned = loan

		return nil
	})
	if err != nil {
		return nil, err
	}

	if returned.FineAmount > 0 {
		log.Printf("Zwrócono wypożyczenie %d z karą %.2f za przetrzymanie", loanID, returned.FineAmount)
	}

	return &returned, nil
}

// GetLoan pobiera wypożyczenie po ID
func (c *Client) GetLoan(id int64) (*models.Loan, error) {
	var loan models.Loan
	if err := c.DB.First(&loan, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("błąd pobierania wypożyczenia: %w", err)
	}

	return &loan, nil
}

// GetUserLoans pobiera wypożyczenia użytkownika z paginacją
func (c *Client) GetUserLoans(userID int64, skip, limit int) ([]*models.Loan, error) {
	var loans []*models.Loan

	err := c.DB.Where("user_id = ?", userID).
		Order("loan_date DESC").
		Offset(skip).Limit(limit).
		Find(&loans).Error
	if err != nil {
		return nil, fmt.Errorf("błąd pobierania wypożyczeń: %w", err)
	}

	return loans, nil
}

// GetActiveLoans pobiera aktywne wypożyczenia z paginacją
func (c *Client) GetActiveLoans(skip, limit int) ([]*models.Loan, error) {
	var loans []*models.Loan

	err := c.DB.Where("status = ?", models.LoanStatusActive).
		Order("loan_date DESC").
		Offset(skip).Limit(limit).
		Find(&loans).Error
	if err != nil {
		return nil, fmt.Errorf("błąd pobierania wypożyczeń: %w", err)
	}

	return loans, nil
}

// GetOverdueLoans pobiera aktywne wypożyczenia po terminie zwrotu.
// Przeterminowanie jest wyliczane z DueDate - status rekordu się nie zmienia.
func (c *Client) GetOverdueLoans(skip, limit int) ([]*models.Loan, error) {
	var loans []*models.Loan

	err := c.DB.Where("status = ? AND due_date < ?", models.LoanStatusActive, time.Now()).
		Order("due_date").
		Offset(skip).Limit(limit).
		Find(&loans).Error
	if err != nil {
		return nil, fmt.Errorf("błąd pobierania przeterminowanych wypożyczeń: %w", err)
	}

	return loans, nil
}

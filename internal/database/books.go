package database

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"folio-backend/internal/models"
)

// CreateBook dodaje książkę do katalogu.
// Autor i kategoria muszą istnieć, a ISBN (jeśli podany) musi być unikalny.
func (c *Client) CreateBook(book *models.Book) error {
	if book == nil {
		return fmt.Errorf("książka nie może być nil")
	}

	// Walidacja
	if book.Title == "" {
		return fmt.Errorf("tytuł książki jest wymagany")
	}
	if book.QuantityTotal < 0 || book.QuantityAvailable < 0 {
		return fmt.Errorf("liczba egzemplarzy nie może być ujemna")
	}
	if book.QuantityAvailable > book.QuantityTotal {
		return fmt.Errorf("liczba dostępnych egzemplarzy nie może przekraczać łącznej liczby")
	}

	// Sprawdź czy autor i kategoria istnieją
	if _, err := c.GetAuthor(book.AuthorID); err != nil {
		return err
	}
	if _, err := c.GetCategory(book.CategoryID); err != nil {
		return err
	}

	if err := c.DB.Create(book).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("błąd zapisywania książki: %w", err)
	}

	return nil
}

// GetBook pobiera książkę po ID wraz z autorem i kategorią
func (c *Client) GetBook(id int64) (*models.Book, error) {
	var book models.Book

	err := c.DB.Preload("Author").Preload("Category").First(&book, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("błąd pobierania książki: %w", err)
	}

	return &book, nil
}

// ListBooks pobiera listę książek z paginacją i opcjonalnym wyszukiwaniem.
// Wyszukiwanie dopasowuje fragment tytułu lub numeru ISBN bez rozróżniania
// wielkości liter.
func (c *Client) ListBooks(skip, limit int, search string) ([]*models.Book, error) {
	var books []*models.Book

	query := c.DB.Preload("Author").Preload("Category")

	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(isbn) LIKE ?", pattern, pattern)
	}

	err := query.Order("book_id").Offset(skip).Limit(limit).Find(&books).Error
	if err != nil {
		return nil, fmt.Errorf("błąd pobierania książek: %w", err)
	}

	return books, nil
}

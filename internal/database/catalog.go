package database

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"folio-backend/internal/models"
)

// CreateAuthor dodaje autora do katalogu
func (c *Client) CreateAuthor(author *models.Author) error {
	if author == nil {
		return fmt.Errorf("autor nie może być nil")
	}
	if author.Name == "" {
		return fmt.Errorf("nazwisko autora jest wymagane")
	}

	if err := c.DB.Create(author).Error; err != nil {
		return fmt.Errorf("błąd zapisywania autora: %w", err)
	}

	return nil
}

// GetAuthor pobiera autora po ID
func (c *Client) GetAuthor(id int64) (*models.Author, error) {
	var author models.Author
	if err := c.DB.First(&author, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("błąd pobierania autora: %w", err)
	}

	return &author, nil
}

// ListAuthors pobiera listę autorów z paginacją
func (c *Client) ListAuthors(skip, limit int) ([]*models.Author, error) {
	var authors []*models.Author

	err := c.DB.Order("author_id").Offset(skip).Limit(limit).Find(&authors).Error
	if err != nil {
		return nil, fmt.Errorf("błąd pobierania autorów: %w", err)
	}

	return authors, nil
}

// CreateCategory dodaje kategorię do katalogu.
// Kolizja unikalnej nazwy kategorii zwraca ErrDuplicate.
func (c *Client) CreateCategory(category *models.Category) error {
	if category == nil {
		return fmt.Errorf("kategoria nie może być nil")
	}
	if category.Name == "" {
		return fmt.Errorf("nazwa kategorii jest wymagana")
	}

	if err := c.DB.Create(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("błąd zapisywania kategorii: %w", err)
	}

	return nil
}

// GetCategory pobiera kategorię po ID
func (c *Client) GetCategory(id int64) (*models.Category, error) {
	var category models.Category
	if err := c.DB.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("błąd pobierania kategorii: %w", err)
	}

	return &category, nil
}

// ListCategories pobiera listę kategorii z paginacją
func (c *Client) ListCategories(skip, limit int) ([]*models.Category, error) {
	var categories []*models.Category

	err := c.DB.Order("category_id").Offset(skip).Limit(limit).Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("błąd pobierania kategorii: %w", err)
	}

	return categories, nil
}

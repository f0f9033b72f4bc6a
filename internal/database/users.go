package database

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"folio-backend/internal/models"
)

// GetUser pobiera użytkownika po ID
func (c *Client) GetUser(id int64) (*models.User, error) {
	var user models.User
	if err := c.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("błąd pobierania użytkownika: %w", err)
	}

	return &user, nil
}

// GetUserByUsername pobiera użytkownika po nazwie użytkownika
func (c *Client) GetUserByUsername(username string) (*models.User, error) {
	if username == "" {
		return nil, fmt.Errorf("nazwa użytkownika nie może być pusta")
	}

	var user models.User
	if err := c.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("błąd wyszukiwania użytkownika: %w", err)
	}

	return &user, nil
}

// GetUserByEmail pobiera użytkownika po adresie email
func (c *Client) GetUserByEmail(email string) (*models.User, error) {
	if email == "" {
		return nil, fmt.Errorf("email nie może być pusty")
	}

	var user models.User
	if err := c.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("błąd wyszukiwania użytkownika: %w", err)
	}

	return &user, nil
}

// CreateUser tworzy nowego użytkownika.
// Kolizja nazwy użytkownika lub adresu email zwraca ErrDuplicate.
func (c *Client) CreateUser(user *models.User) error {
	if user == nil {
		return fmt.Errorf("użytkownik nie może być nil")
	}

	// Walidacja
	if user.Username == "" || user.Email == "" {
		return fmt.Errorf("nazwa użytkownika i email są wymagane")
	}
	if user.PasswordHash == "" {
		return fmt.Errorf("hash hasła jest wymagany")
	}

	// Domyślne wartości
	if user.Role == "" {
		user.Role = models.RoleMember
	}
	if !user.Role.IsValid() {
		return fmt.Errorf("nieznana rola: %s", user.Role)
	}
	user.IsActive = true

	if err := c.DB.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("błąd zapisywania użytkownika: %w", err)
	}

	return nil
}

// ListUsers pobiera listę użytkowników z paginacją
func (c *Client) ListUsers(skip, limit int) ([]*models.User, error) {
	var users []*models.User

	err := c.DB.Order("user_id").Offset(skip).Limit(limit).Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("błąd pobierania użytkowników: %w", err)
	}

	return users, nil
}

package database_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"folio-backend/internal/database"
	"folio-backend/internal/models"
)

// newTestClient otwiera świeżą bazę SQLite w pamięci dla pojedynczego testu
func newTestClient(t *testing.T) *database.Client {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	client, err := database.NewClient(db)
	require.NoError(t, err)

	return client
}

// newFileTestClient otwiera bazę SQLite na pliku tymczasowym.
// Parametr _busy_timeout pozwala równoległym transakcjom czekać na blokadę
// zapisu zamiast od razu kończyć się błędem.
func newFileTestClient(t *testing.T) *database.Client {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", filepath.Join(t.TempDir(), "biblioteka.db"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	client, err := database.NewClient(db)
	require.NoError(t, err)

	return client
}

// createTestUser dodaje użytkownika testowego
func createTestUser(t *testing.T, c *database.Client, username string) *models.User {
	t.Helper()

	user := &models.User{
		Username:     username,
		Email:        username + "@biblioteka.pl",
		PasswordHash: "nieistotny-hash",
		FullName:     "Użytkownik Testowy",
	}
	require.NoError(t, c.CreateUser(user))

	return user
}

// createTestBook dodaje książkę testową z podaną liczbą egzemplarzy
func createTestBook(t *testing.T, c *database.Client, title string, quantity int) *models.Book {
	t.Helper()

	author := &models.Author{Name: "Autor Testowy"}
	require.NoError(t, c.CreateAuthor(author))

	category := &models.Category{Name: "Kategoria " + uuid.NewString()[:8]}
	require.NoError(t, c.CreateCategory(category))

	book := &models.Book{
		Title:             title,
		AuthorID:          author.ID,
		CategoryID:        category.ID,
		QuantityTotal:     quantity,
		QuantityAvailable: quantity,
	}
	require.NoError(t, c.CreateBook(book))

	return book
}

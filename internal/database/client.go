package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"folio-backend/internal/models"
)

// Client łączy wszystkie operacje na bazie danych
type Client struct {
	DB *gorm.DB
}

// Connect otwiera połączenie z bazą Postgres i wykonuje migracje schematu
func Connect(dsn string) (*Client, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("błąd połączenia z bazą danych: %w", err)
	}

	return NewClient(db)
}

// NewClient opakowuje istniejące połączenie GORM i wykonuje migracje.
// Testy używają go z bazą SQLite w pamięci.
func NewClient(db *gorm.DB) (*Client, error) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Author{},
		&models.Category{},
		&models.Book{},
		&models.Loan{},
	)
	if err != nil {
		return nil, fmt.Errorf("błąd migracji schematu: %w", err)
	}

	return &Client{DB: db}, nil
}

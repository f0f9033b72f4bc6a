package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"folio-backend/internal/config"
	"folio-backend/internal/database"
	"folio-backend/internal/models"
)

func main() {
	// Wczytaj zmienne środowiskowe
	if err := godotenv.Load(); err != nil {
		log.Println("Brak pliku .env - używam zmiennych systemowych")
	}

	cfg := config.Load()

	// Połączenie z bazą danych
	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Błąd inicjalizacji bazy danych: %v", err)
	}

	fmt.Println("=== Tworzenie użytkownika admina ===")

	// Dane admina
	username := "admin"
	email := "admin@biblioteka.pl"
	password := "admin123"
	fullName := "Admin System"

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Błąd hashowania hasła: %v", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		FullName:     fullName,
		Role:         models.RoleAdmin,
	}

	if err := db.CreateUser(user); err != nil {
		log.Fatalf("Błąd tworzenia użytkownika: %v", err)
	}

	fmt.Printf("✓ Utworzono użytkownika: %s (ID: %d)\n", username, user.ID)
	fmt.Println("\n=== Użytkownik admin utworzony pomyślnie ===")
	fmt.Printf("Login: %s\n", username)
	fmt.Printf("Email: %s\n", email)
	fmt.Printf("Hasło: %s\n", password)
	fmt.Printf("Rola: %s\n", user.Role)
	fmt.Println("\nMożesz teraz pobrać token przez POST /token.")
}

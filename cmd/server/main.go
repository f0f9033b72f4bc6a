package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"folio-backend/internal/config"
	"folio-backend/internal/database"
	"folio-backend/internal/handlers"
	"folio-backend/internal/token"
)

func main() {
	// Wczytaj zmienne środowiskowe z pliku .env
	if err := godotenv.Load(); err != nil {
		log.Println("Brak pliku .env - używam zmiennych systemowych")
	}

	cfg := config.Load()

	// Połączenie z bazą danych i migracje
	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Błąd inicjalizacji bazy danych: %v", err)
	}
	log.Println("Baza danych zainicjalizowana pomyślnie")

	// Wystawca tokenów dostępu
	issuer := token.NewIssuer(cfg.JWTSecret, cfg.TokenExpiry)

	// Router z pełną powierzchnią API
	r := handlers.NewRouter(cfg, db, issuer)

	// Start serwera
	log.Printf("Serwer uruchomiony na porcie %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatalf("Nie można uruchomić serwera: %v", err)
	}
}

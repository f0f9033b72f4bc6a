package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config przechowuje konfigurację aplikacji odczytaną ze zmiennych środowiskowych
type Config struct {
	Port           string
	DatabaseDSN    string
	JWTSecret      string
	TokenExpiry    time.Duration
	LoanPeriodDays int
	FinePerDay     float64
	AllowedOrigins []string
}

// Load odczytuje konfigurację ze zmiennych środowiskowych,
// stosując wartości domyślne tam gdzie zmienna nie jest ustawiona
func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		DatabaseDSN:    getEnv("DATABASE_DSN", "host=localhost user=folio password=folio dbname=folio port=5432 sslmode=disable TimeZone=UTC"),
		JWTSecret:      getEnv("JWT_SECRET", "zmien-mnie-na-produkcji"),
		TokenExpiry:    time.Duration(getEnvInt("TOKEN_EXPIRY_MINUTES", 30)) * time.Minute,
		LoanPeriodDays: getEnvInt("LOAN_PERIOD_DAYS", 14),
		FinePerDay:     getEnvFloat("FINE_PER_DAY", 0.50),
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:3000"), ","),
	}
}

// getEnv zwraca wartość zmiennej środowiskowej lub wartość domyślną
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt zwraca wartość liczbową zmiennej środowiskowej
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvFloat zwraca wartość zmiennoprzecinkową zmiennej środowiskowej
func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return parsed
}

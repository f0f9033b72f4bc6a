package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"folio-backend/internal/database"
	"folio-backend/internal/models"
	"folio-backend/internal/token"
)

// Klucze do przechowywania wartości w context
type contextKey string

const (
	// UserKey przechowuje uwierzytelnionego użytkownika w kontekście żądania
	UserKey contextKey = "user"
)

// Authenticator weryfikuje token JWT z nagłówka Authorization i dodaje
// użytkownika do kontekstu. Żądania bez poprawnego tokenu są odrzucane
// zanim dotrą do logiki biznesowej.
func Authenticator(db *database.Client, issuer *token.Issuer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Pobierz token z nagłówka Authorization
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				unauthorized(w, "brak nagłówka Authorization")
				return
			}

			// Sprawdź format: "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				unauthorized(w, "nieprawidłowy format Authorization")
				return
			}

			// Weryfikuj token i odczytaj nazwę użytkownika
			username, err := issuer.Validate(parts[1])
			if err != nil {
				unauthorized(w, "nieprawidłowy lub wygasły token")
				return
			}

			// Pobierz użytkownika z bazy na podstawie nazwy z tokenu
			user, err := db.GetUserByUsername(username)
			if err != nil {
				unauthorized(w, "użytkownik nie został znaleziony")
				return
			}

			// Sprawdź czy konto jest aktywne
			if !user.IsActive {
				forbidden(w, "konto użytkownika jest nieaktywne")
				return
			}

			// Dodaj użytkownika do kontekstu i przekaż żądanie dalej
			ctx := context.WithValue(r.Context(), UserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequirePrivileged przepuszcza tylko role personelu (admin, bibliotekarz)
func RequirePrivileged(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := GetUserFromContext(r.Context())
		if err != nil {
			unauthorized(w, "brak danych użytkownika")
			return
		}

		if !user.Role.IsPrivileged() {
			forbidden(w, "brak uprawnień")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// GetUserFromContext pobiera uwierzytelnionego użytkownika z kontekstu
func GetUserFromContext(ctx context.Context) (*models.User, error) {
	user, ok := ctx.Value(UserKey).(*models.User)
	if !ok {
		return nil, fmt.Errorf("brak danych użytkownika w kontekście")
	}
	return user, nil
}

// writeDetail zwraca komunikat błędu w formacie JSON,
// tym samym co odpowiedzi błędów handlerów
func writeDetail(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": message})
}

// unauthorized odrzuca żądanie z nagłówkiem WWW-Authenticate
func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeDetail(w, http.StatusUnauthorized, message)
}

// forbidden odrzuca żądanie uwierzytelnione, ale bez wymaganych uprawnień
func forbidden(w http.ResponseWriter, message string) {
	writeDetail(w, http.StatusForbidden, message)
}

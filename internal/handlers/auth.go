package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/mail"

	"golang.org/x/crypto/bcrypt"

	"folio-backend/internal/database"
	"folio-backend/internal/middleware"
	"folio-backend/internal/models"
	"folio-backend/internal/token"
)

// AuthHandler obsługuje rejestrację i wydawanie tokenów
type AuthHandler struct {
	db     *database.Client
	issuer *token.Issuer
}

// NewAuthHandler tworzy nowy handler autoryzacji
func NewAuthHandler(db *database.Client, issuer *token.Issuer) *AuthHandler {
	return &AuthHandler{
		db:     db,
		issuer: issuer,
	}
}

// registerRequest to dane rejestracji nowego użytkownika
type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

// loginRequest to dane logowania w formacie JSON
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// tokenResponse to odpowiedź z tokenem dostępu
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// HandleRegister rejestruje nowego użytkownika z rolą czytelnika (POST /register)
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "nieprawidłowe dane wejściowe")
		return
	}

	// Walidacja danych wejściowych
	if len(req.Username) < 3 || len(req.Username) > 50 {
		writeError(w, http.StatusBadRequest, "nazwa użytkownika musi mieć od 3 do 50 znaków")
		return
	}
	if _, err := mail.ParseAddress(req.Email); err != nil || len(req.Email) > 100 {
		writeError(w, http.StatusBadRequest, "nieprawidłowy adres email")
		return
	}
	if len(req.Password) < 6 || len(req.Password) > 100 {
		writeError(w, http.StatusBadRequest, "hasło musi mieć od 6 do 100 znaków")
		return
	}
	if req.FullName == "" || len(req.FullName) > 100 {
		writeError(w, http.StatusBadRequest, "imię i nazwisko są wymagane")
		return
	}

	// Zahashuj hasło
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Błąd hashowania hasła: %v", err)
		writeError(w, http.StatusInternalServerError, "wewnętrzny błąd serwera")
		return
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Role:         models.RoleMember,
	}

	if err := h.db.CreateUser(user); err != nil {
		writeStoreError(w, err)
		return
	}

	log.Printf("Zarejestrowano użytkownika: %s", user.Username)
	writeJSON(w, http.StatusCreated, user)
}

// HandleToken wydaje token dostępu dla danych przesłanych formularzem (POST /token)
func (h *AuthHandler) HandleToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "nieprawidłowe dane formularza")
		return
	}

	h.issueToken(w, r.FormValue("username"), r.FormValue("password"))
}

// HandleLogin wydaje token dostępu dla danych w formacie JSON (POST /login)
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "nieprawidłowe dane wejściowe")
		return
	}

	h.issueToken(w, req.Username, req.Password)
}

// issueToken weryfikuje dane logowania i wystawia token dostępu
func (h *AuthHandler) issueToken(w http.ResponseWriter, username, password string) {
	user, err := h.db.GetUserByUsername(username)
	if err != nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeError(w, http.StatusUnauthorized, "nieprawidłowa nazwa użytkownika lub hasło")
		return
	}

	accessToken, err := h.issuer.Generate(user.Username)
	if err != nil {
		log.Printf("Błąd wystawiania tokenu: %v", err)
		writeError(w, http.StatusInternalServerError, "wewnętrzny błąd serwera")
		return
	}

	log.Printf("Użytkownik zalogowany: %s (%s)", user.Username, user.Role)

	writeJSON(w, http.StatusOK, tokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
	})
}

// HandleMe zwraca profil uwierzytelnionego użytkownika (GET /me)
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "brak danych użytkownika")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"folio-backend/internal/database"
)

// UsersHandler obsługuje przeglądanie użytkowników
type UsersHandler struct {
	db *database.Client
}

// NewUsersHandler tworzy nowy handler użytkowników
func NewUsersHandler(db *database.Client) *UsersHandler {
	return &UsersHandler{db: db}
}

// ListUsers zwraca listę użytkowników (GET /users, tylko personel)
func (h *UsersHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	skip, limit := parsePagination(r)

	users, err := h.db.ListUsers(skip, limit)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// GetUser zwraca pojedynczego użytkownika (GET /users/{id})
func (h *UsersHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.db.GetUser(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

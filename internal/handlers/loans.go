package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"folio-backend/internal/database"
	"folio-backend/internal/middleware"
)

// LoansHandler obsługuje wypożyczenia i zwroty książek
type LoansHandler struct {
	db             *database.Client
	loanPeriodDays int
	finePerDay     float64
}

// NewLoansHandler tworzy nowy handler wypożyczeń
func NewLoansHandler(db *database.Client, loanPeriodDays int, finePerDay float64) *LoansHandler {
	if loanPeriodDays <= 0 {
		loanPeriodDays = database.DefaultLoanPeriodDays
	}
	if finePerDay < 0 {
		finePerDay = database.DefaultFinePerDay
	}

	return &LoansHandler{
		db:             db,
		loanPeriodDays: loanPeriodDays,
		finePerDay:     finePerDay,
	}
}

// loanRequest to dane nowego wypożyczenia
type loanRequest struct {
	BookID int64 `json:"book_id"`
}

// CreateLoan wypożycza książkę uwierzytelnionemu użytkownikowi (POST /loans)
func (h *LoansHandler) CreateLoan(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "brak danych użytkownika")
		return
	}

	var req loanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.BookID <= 0 {
		writeError(w, http.StatusBadRequest, "nieprawidłowe dane wejściowe")
		return
	}

	loan, err := h.db.BorrowBook(user.ID, req.BookID, h.loanPeriodDays)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, loan)
}

// MyLoans zwraca wypożyczenia uwierzytelnionego użytkownika (GET /loans/my-loans)
func (h *LoansHandler) MyLoans(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "brak danych użytkownika")
		return
	}

	skip, limit := parsePagination(r)

	loans, err := h.db.GetUserLoans(user.ID, skip, limit)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loans)
}

// ListActive zwraca wszystkie aktywne wypożyczenia (GET /loans, tylko personel)
func (h *LoansHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	skip, limit := parsePagination(r)

	loans, err := h.db.GetActiveLoans(skip, limit)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loans)
}

// ListOverdue zwraca aktywne wypożyczenia po terminie zwrotu
// (GET /loans/overdue, tylko personel)
func (h *LoansHandler) ListOverdue(w http.ResponseWriter, r *http.Request) {
	skip, limit := parsePagination(r)

	loans, err := h.db.GetOverdueLoans(skip, limit)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loans)
}

// ReturnLoan obsługuje zwrot książki (PUT /loans/{id}/return)
func (h *LoansHandler) ReturnLoan(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	loan, err := h.db.ReturnLoan(id, h.finePerDay)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loan)
}

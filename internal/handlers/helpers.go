package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"folio-backend/internal/database"
)

const (
	// defaultPageLimit to domyślny rozmiar strony wyników
	defaultPageLimit = 100
	// maxPageLimit to górna granica rozmiaru strony - większe wartości
	// z parametru limit są przycinane
	maxPageLimit = 100
)

// writeJSON serializuje odpowiedź jako JSON z podanym kodem statusu
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Błąd serializacji odpowiedzi: %v", err)
	}
}

// writeError zwraca komunikat błędu w formacie JSON
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"detail": message})
}

// writeStoreError mapuje błędy warstwy bazy danych na kody HTTP
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, database.ErrDuplicate),
		errors.Is(err, database.ErrBookUnavailable),
		errors.Is(err, database.ErrLoanNotActive):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("Błąd wewnętrzny: %v", err)
		writeError(w, http.StatusInternalServerError, "wewnętrzny błąd serwera")
	}
}

// parsePagination odczytuje parametry skip i limit z zapytania.
// Limit jest przycinany do maxPageLimit, żeby pojedyncze żądanie nie
// ściągało nieograniczonej liczby rekordów.
func parsePagination(r *http.Request) (skip, limit int) {
	skip = 0
	limit = defaultPageLimit

	if v := r.URL.Query().Get("skip"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			skip = n
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	return skip, limit
}

// parseIDParam odczytuje liczbowy parametr ścieżki
func parseIDParam(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("nieprawidłowy identyfikator")
	}
	return id, nil
}

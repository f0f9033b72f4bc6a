package handlers

import "net/http"

// Index zwraca powitalną odpowiedź API (GET /)
func Index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Witamy w API systemu bibliotecznego Folio",
		"version": "1.0",
	})
}

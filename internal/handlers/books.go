package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"folio-backend/internal/database"
	"folio-backend/internal/models"
)

// BooksHandler obsługuje katalog książek
type BooksHandler struct {
	db *database.Client
}

// NewBooksHandler tworzy nowy handler książek
func NewBooksHandler(db *database.Client) *BooksHandler {
	return &BooksHandler{db: db}
}

// bookRequest to dane nowej książki
type bookRequest struct {
	Title             string  `json:"title"`
	ISBN              *string `json:"isbn"`
	AuthorID          int64   `json:"author_id"`
	CategoryID        int64   `json:"category_id"`
	Description       string  `json:"description"`
	CoverImageURL     string  `json:"cover_image_url"`
	QuantityTotal     int     `json:"quantity_total"`
	QuantityAvailable int     `json:"quantity_available"`
	PublicationYear   int     `json:"publication_year"`
}

// CreateBook dodaje książkę do katalogu (POST /books, tylko personel)
func (h *BooksHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	var req bookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "nieprawidłowe dane wejściowe")
		return
	}

	// Walidacja danych wejściowych
	if req.Title == "" || len(req.Title) > 200 {
		writeError(w, http.StatusBadRequest, "tytuł jest wymagany (do 200 znaków)")
		return
	}
	if req.ISBN != nil && len(*req.ISBN) > 13 {
		writeError(w, http.StatusBadRequest, "numer ISBN może mieć najwyżej 13 znaków")
		return
	}
	if req.AuthorID <= 0 || req.CategoryID <= 0 {
		writeError(w, http.StatusBadRequest, "autor i kategoria są wymagane")
		return
	}
	if req.QuantityTotal < 0 || req.QuantityAvailable < 0 {
		writeError(w, http.StatusBadRequest, "liczba egzemplarzy nie może być ujemna")
		return
	}
	if req.QuantityAvailable > req.QuantityTotal {
		writeError(w, http.StatusBadRequest, "liczba dostępnych egzemplarzy nie może przekraczać łącznej liczby")
		return
	}

	// Domyślnie jeden egzemplarz na półce
	if req.QuantityTotal == 0 && req.QuantityAvailable == 0 {
		req.QuantityTotal = 1
		req.QuantityAvailable = 1
	}

	book := &models.Book{
		Title:             req.Title,
		ISBN:              req.ISBN,
		AuthorID:          req.AuthorID,
		CategoryID:        req.CategoryID,
		Description:       req.Description,
		CoverImageURL:     req.CoverImageURL,
		QuantityTotal:     req.QuantityTotal,
		QuantityAvailable: req.QuantityAvailable,
		PublicationYear:   req.PublicationYear,
	}

	if err := h.db.CreateBook(book); err != nil {
		writeStoreError(w, err)
		return
	}

	log.Printf("Dodano książkę do katalogu: %s", book.Title)
	writeJSON(w, http.StatusCreated, book)
}

// ListBooks zwraca listę książek z opcjonalnym wyszukiwaniem
// (GET /books?search=&skip=&limit=, publiczne)
func (h *BooksHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	skip, limit := parsePagination(r)
	search := r.URL.Query().Get("search")

	books, err := h.db.ListBooks(skip, limit, search)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, books)
}

// GetBook zwraca pojedynczą książkę (GET /books/{id}, publiczne)
func (h *BooksHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	book, err := h.db.GetBook(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, book)
}

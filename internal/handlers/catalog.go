package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"folio-backend/internal/database"
	"folio-backend/internal/models"
)

// CatalogHandler obsługuje zarządzanie autorami i kategoriami
type CatalogHandler struct {
	db *database.Client
}

// NewCatalogHandler tworzy nowy handler katalogu
func NewCatalogHandler(db *database.Client) *CatalogHandler {
	return &CatalogHandler{db: db}
}

// authorRequest to dane nowego autora
type authorRequest struct {
	Name    string `json:"name"`
	Bio     string `json:"bio"`
	Country string `json:"country"`
}

// categoryRequest to dane nowej kategorii
type categoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreateAuthor dodaje autora do katalogu (POST /authors, tylko personel)
func (h *CatalogHandler) CreateAuthor(w http.ResponseWriter, r *http.Request) {
	var req authorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "nieprawidłowe dane wejściowe")
		return
	}

	if req.Name == "" || len(req.Name) > 100 {
		writeError(w, http.StatusBadRequest, "nazwisko autora jest wymagane (do 100 znaków)")
		return
	}

	author := &models.Author{
		Name:    req.Name,
		Bio:     req.Bio,
		Country: req.Country,
	}

	if err := h.db.CreateAuthor(author); err != nil {
		writeStoreError(w, err)
		return
	}

	log.Printf("Dodano autora do katalogu: %s", author.Name)
	writeJSON(w, http.StatusCreated, author)
}

// ListAuthors zwraca listę autorów (GET /authors, publiczne)
func (h *CatalogHandler) ListAuthors(w http.ResponseWriter, r *http.Request) {
	skip, limit := parsePagination(r)

	authors, err := h.db.ListAuthors(skip, limit)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, authors)
}

// GetAuthor zwraca pojedynczego autora (GET /authors/{id}, publiczne)
func (h *CatalogHandler) GetAuthor(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	author, err := h.db.GetAuthor(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, author)
}

// CreateCategory dodaje kategorię do katalogu (POST /categories, tylko personel)
func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "nieprawidłowe dane wejściowe")
		return
	}

	if req.Name == "" || len(req.Name) > 50 {
		writeError(w, http.StatusBadRequest, "nazwa kategorii jest wymagana (do 50 znaków)")
		return
	}

	category := &models.Category{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := h.db.CreateCategory(category); err != nil {
		writeStoreError(w, err)
		return
	}

	log.Printf("Dodano kategorię do katalogu: %s", category.Name)
	writeJSON(w, http.StatusCreated, category)
}

// ListCategories zwraca listę kategorii (GET /categories, publiczne)
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	skip, limit := parsePagination(r)

	categories, err := h.db.ListCategories(skip, limit)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, categories)
}

// GetCategory zwraca pojedynczą kategorię (GET /categories/{id}, publiczne)
func (h *CatalogHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	category, err := h.db.GetCategory(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, category)
}

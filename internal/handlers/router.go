package handlers

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"folio-backend/internal/config"
	"folio-backend/internal/database"
	authmw "folio-backend/internal/middleware"
	"folio-backend/internal/token"
)

// NewRouter buduje router Chi z pełną powierzchnią API.
// Testy end-to-end używają go bezpośrednio, bez uruchamiania serwera.
func NewRouter(cfg *config.Config, db *database.Client, issuer *token.Issuer) chi.Router {
	r := chi.NewRouter()

	// Middleware do logowania i obsługi żądań
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)

	// CORS dla aplikacji frontendowej
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// Inicjalizacja handlerów
	authHandler := NewAuthHandler(db, issuer)
	usersHandler := NewUsersHandler(db)
	catalogHandler := NewCatalogHandler(db)
	booksHandler := NewBooksHandler(db)
	loansHandler := NewLoansHandler(db, cfg.LoanPeriodDays, cfg.FinePerDay)

	authenticate := authmw.Authenticator(db, issuer)

	// Strona główna API - publiczna
	r.Get("/", Index)

	// Rejestracja i logowanie - publiczne
	r.Post("/register", authHandler.HandleRegister)
	r.Post("/token", authHandler.HandleToken)
	r.Post("/login", authHandler.HandleLogin)

	// Katalog autorów - odczyt publiczny, zapis dla personelu
	r.Route("/authors", func(r chi.Router) {
		r.Get("/", catalogHandler.ListAuthors)
		r.Get("/{id}", catalogHandler.GetAuthor)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(authmw.RequirePrivileged)
			r.Post("/", catalogHandler.CreateAuthor)
		})
	})

	// Katalog kategorii - odczyt publiczny, zapis dla personelu
	r.Route("/categories", func(r chi.Router) {
		r.Get("/", catalogHandler.ListCategories)
		r.Get("/{id}", catalogHandler.GetCategory)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(authmw.RequirePrivileged)
			r.Post("/", catalogHandler.CreateCategory)
		})
	})

	// Katalog książek - odczyt publiczny, zapis dla personelu
	r.Route("/books", func(r chi.Router) {
		r.Get("/", booksHandler.ListBooks)
		r.Get("/{id}", booksHandler.GetBook)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Use(authmw.RequirePrivileged)
			r.Post("/", booksHandler.CreateBook)
		})
	})

	// Endpointy wymagające zalogowania
	r.Group(func(r chi.Router) {
		r.Use(authenticate)

		r.Get("/me", authHandler.HandleMe)

		r.Route("/users", func(r chi.Router) {
			r.With(authmw.RequirePrivileged).Get("/", usersHandler.ListUsers)
			r.Get("/{id}", usersHandler.GetUser)
		})

		r.Route("/loans", func(r chi.Router) {
			r.Post("/", loansHandler.CreateLoan)
			r.Get("/my-loans", loansHandler.MyLoans)
			r.With(authmw.RequirePrivileged).Get("/", loansHandler.ListActive)
			r.With(authmw.RequirePrivileged).Get("/overdue", loansHandler.ListOverdue)
			r.Put("/{id}/return", loansHandler.ReturnLoan)
		})
	})

	return r
}

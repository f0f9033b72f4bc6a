package main

import (
	"log"

	"github.com/joho/godotenv"

	"folio-backend/internal/config"
	"folio-backend/internal/database"
	"folio-backend/internal/models"
)

// seedBook łączy dane książki z nazwiskiem autora i nazwą kategorii
type seedBook struct {
	Title           string
	ISBN            string
	Author          string
	Category        string
	Description     string
	PublicationYear int
	Quantity        int
}

func main() {
	// Wczytaj zmienne środowiskowe
	if err := godotenv.Load(); err != nil {
		log.Println("Brak pliku .env - używam zmiennych systemowych")
	}

	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Błąd inicjalizacji bazy danych: %v", err)
	}

	log.Println("Dodawanie przykładowych danych do katalogu...")

	authors := map[string]*models.Author{
		"Andrzej Sapkowski":  {Name: "Andrzej Sapkowski", Bio: "Polski pisarz fantasy, twórca sagi o wiedźminie.", Country: "Polska"},
		"Fiodor Dostojewski": {Name: "Fiodor Dostojewski", Bio: "Rosyjski pisarz, klasyk powieści psychologicznej.", Country: "Rosja"},
		"Yuval Noah Harari":  {Name: "Yuval Noah Harari", Bio: "Izraelski historyk i autor książek popularnonaukowych.", Country: "Izrael"},
		"George Orwell":      {Name: "George Orwell", Bio: "Brytyjski pisarz i publicysta, autor powieści dystopijnych.", Country: "Wielka Brytania"},
		"James Clear":        {Name: "James Clear", Bio: "Amerykański autor książek o budowaniu nawyków.", Country: "USA"},
	}

	categories := map[string]*models.Category{
		"Fantasy":          {Name: "Fantasy", Description: "Literatura fantastyczna"},
		"Klasyka":          {Name: "Klasyka", Description: "Klasyka literatury światowej"},
		"Popularnonaukowa": {Name: "Popularnonaukowa", Description: "Książki popularnonaukowe"},
		"Science Fiction":  {Name: "Science Fiction", Description: "Fantastyka naukowa i dystopie"},
		"Rozwój osobisty":  {Name: "Rozwój osobisty", Description: "Poradniki i literatura self-help"},
	}

	for name, author := range authors {
		if err := db.CreateAuthor(author); err != nil {
			log.Fatalf("Błąd dodawania autora %s: %v", name, err)
		}
	}

	for name, category := range categories {
		if err := db.CreateCategory(category); err != nil {
			log.Fatalf("Błąd dodawania kategorii %s: %v", name, err)
		}
	}

	books := []seedBook{
		{
			Title:           "Wiedźmin: Ostatnie życzenie",
			ISBN:            "9788380324648",
			Author:          "Andrzej Sapkowski",
			Category:        "Fantasy",
			Description:     "Zbiór opowiadań o wiedźminie Geralcie z Rivii, łowcy potworów.",
			PublicationYear: 1993,
			Quantity:        3,
		},
		{
			Title:           "Zbrodnia i kara",
			ISBN:            "9788324014555",
			Author:          "Fiodor Dostojewski",
			Category:        "Klasyka",
			Description:     "Psychologiczna powieść o studencie Rodionie Raskolnikowie.",
			PublicationYear: 1866,
			Quantity:        2,
		},
		{
			Title:           "Sapiens: Od zwierząt do bogów",
			ISBN:            "9788376863204",
			Author:          "Yuval Noah Harari",
			Category:        "Popularnonaukowa",
			Description:     "Historia ludzkości od czasów prehistorycznych po współczesność.",
			PublicationYear: 2011,
			Quantity:        4,
		},
		{
			Title:           "Rok 1984",
			ISBN:            "9788378855858",
			Author:          "George Orwell",
			Category:        "Science Fiction",
			Description:     "Dystopijny obraz totalitarnego społeczeństwa przyszłości.",
			PublicationYear: 1949,
			Quantity:        2,
		},
		{
			Title:           "Atomowe nawyki",
			ISBN:            "9788381002341",
			Author:          "James Clear",
			Category:        "Rozwój osobisty",
			Description:     "Praktyczny przewodnik po budowaniu dobrych nawyków.",
			PublicationYear: 2018,
			Quantity:        3,
		},
	}

	for _, b := range books {
		isbn := b.ISBN
		book := &models.Book{
			Title:             b.Title,
			ISBN:              &isbn,
			AuthorID:          authors[b.Author].ID,
			CategoryID:        categories[b.Category].ID,
			Description:       b.Description,
			QuantityTotal:     b.Quantity,
			QuantityAvailable: b.Quantity,
			PublicationYear:   b.PublicationYear,
		}

		if err := db.CreateBook(book); err != nil {
			log.Fatalf("Błąd dodawania książki %s: %v", b.Title, err)
		}

		log.Printf("✓ Dodano: %s (%d egz.)", b.Title, b.Quantity)
	}

	log.Println("Katalog przykładowy utworzony pomyślnie")
}

package models

import "time"

// Book reprezentuje książkę w katalogu bibliotecznym.
// Licznik QuantityAvailable jest jedynym źródłem prawdy o liczbie
// egzemplarzy na półce - wypożyczenia modyfikują go wyłącznie
// warunkowymi aktualizacjami wewnątrz transakcji.
type Book struct {
	ID                int64     `json:"book_id" gorm:"column:book_id;primaryKey"`
	Title             string    `json:"title" gorm:"size:200;not null;index"`
	ISBN              *string   `json:"isbn" gorm:"size:13;uniqueIndex"`
	AuthorID          int64     `json:"author_id" gorm:"not null;index"`
	CategoryID        int64     `json:"category_id" gorm:"not null;index"`
	Description       string    `json:"description"`
	CoverImageURL     string    `json:"cover_image_url" gorm:"size:500"`
	// Bez tagu default - GORM pomija pola zerowe z wartością domyślną
	// przy INSERT, a jawny stan zero egzemplarzy musi przetrwać zapis
	QuantityTotal     int       `json:"quantity_total"`
	QuantityAvailable int       `json:"quantity_available"`
	PublicationYear   int       `json:"publication_year"`
	CreatedAt         time.Time `json:"created_at"`

	Author   *Author   `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}

// TableName zwraca nazwę tabeli książek
func (Book) TableName() string {
	return "books"
}

// IsAvailable sprawdza czy książka ma wolne egzemplarze do wypożyczenia
func (b *Book) IsAvailable() bool {
	return b.QuantityAvailable > 0
}

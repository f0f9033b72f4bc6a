package models

// Author reprezentuje autora książek w katalogu
type Author struct {
	ID      int64  `json:"author_id" gorm:"column:author_id;primaryKey"`
	Name    string `json:"name" gorm:"size:100;not null;index"`
	Bio     string `json:"bio"`
	Country string `json:"country" gorm:"size:50"`
}

// TableName zwraca nazwę tabeli autorów
func (Author) TableName() string {
	return "authors"
}

package models

// Category reprezentuje kategorię książek w katalogu
type Category struct {
	ID          int64  `json:"category_id" gorm:"column:category_id;primaryKey"`
	Name        string `json:"name" gorm:"size:50;uniqueIndex;not null"`
	Description string `json:"description"`
}

// TableName zwraca nazwę tabeli kategorii
func (Category) TableName() string {
	return "categories"
}

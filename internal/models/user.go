package models

import "time"

// UserRole określa rolę użytkownika w systemie
type UserRole string

const (
	RoleAdmin     UserRole = "admin"     // Administrator - pełny dostęp do systemu
	RoleLibrarian UserRole = "librarian" // Bibliotekarz - zarządza katalogiem i wypożyczeniami
	RoleMember    UserRole = "member"    // Czytelnik - może wypożyczać książki
)

// IsValid sprawdza czy rola należy do zamkniętego zbioru ról
func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleLibrarian, RoleMember:
		return true
	}
	return false
}

// IsPrivileged sprawdza czy rola pozwala zarządzać katalogiem
// i przeglądać dane innych użytkowników
func (r UserRole) IsPrivileged() bool {
	return r == RoleAdmin || r == RoleLibrarian
}

// User reprezentuje użytkownika systemu
type User struct {
	ID           int64     `json:"user_id" gorm:"column:user_id;primaryKey"`
	Username     string    `json:"username" gorm:"size:50;uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"size:100;uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"`
	FullName     string    `json:"full_name" gorm:"size:100;not null"`
	Role         UserRole  `json:"role" gorm:"size:20;default:member"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName zwraca nazwę tabeli użytkowników
func (User) TableName() string {
	return "users"
}

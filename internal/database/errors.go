package database

import "errors"

// Błędy domenowe zwracane przez warstwę bazy danych.
// Handlery mapują je na kody HTTP przez errors.Is.
var (
	ErrNotFound        = errors.New("rekord nie został znaleziony")
	ErrDuplicate       = errors.New("rekord o takich danych już istnieje")
	ErrBookUnavailable = errors.New("książka nie jest dostępna")
	ErrLoanNotActive   = errors.New("wypożyczenie nie jest aktywne")
)

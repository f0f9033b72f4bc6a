package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Issuer wystawia i weryfikuje tokeny dostępu JWT.
// Token przenosi nazwę użytkownika w polu sub oraz termin ważności.
type Issuer struct {
	secret []byte
	expiry time.Duration
}

// NewIssuer tworzy nowy wystawca tokenów z podanym sekretem i czasem ważności
func NewIssuer(secret string, expiry time.Duration) *Issuer {
	return &Issuer{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// Generate wystawia podpisany token dla podanej nazwy użytkownika
func (i *Issuer) Generate(username string) (string, error) {
	if username == "" {
		return "", errors.New("nazwa użytkownika nie może być pusta")
	}

	claims := jwt.RegisteredClaims{
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(i.expiry)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}

// Validate weryfikuje token i zwraca nazwę użytkownika z pola sub.
// Tokeny wygasłe, uszkodzone lub podpisane innym kluczem są odrzucane.
func (i *Issuer) Validate(tokenString string) (string, error) {
	t, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("nieprawidłowa metoda podpisu tokenu")
		}
		return i.secret, nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := t.Claims.(*jwt.RegisteredClaims)
	if !ok || !t.Valid || claims.Subject == "" {
		return "", errors.New("nieprawidłowy token")
	}

	return claims.Subject, nil
}

package token_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio-backend/internal/token"
)

func TestGenerateAndValidate(t *testing.T) {
	issuer := token.NewIssuer("sekret-testowy", 30*time.Minute)

	signed, err := issuer.Generate("jkowalski")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	username, err := issuer.Validate(signed)
	require.NoError(t, err)
	assert.Equal(t, "jkowalski", username)
}

func TestValidateExpiredToken(t *testing.T) {
	issuer := token.NewIssuer("sekret-testowy", -time.Minute)

	signed, err := issuer.Generate("jkowalski")
	require.NoError(t, err)

	_, err = issuer.Validate(signed)
	assert.Error(t, err)
}

func TestValidateWrongSecret(t *testing.T) {
	issuer := token.NewIssuer("sekret-testowy", 30*time.Minute)
	other := token.NewIssuer("inny-sekret", 30*time.Minute)

	signed, err := issuer.Generate("jkowalski")
	require.NoError(t, err)

	_, err = other.Validate(signed)
	assert.Error(t, err)
}

func TestValidateGarbage(t *testing.T) {
	issuer := token.NewIssuer("sekret-testowy", 30*time.Minute)

	_, err := issuer.Validate("to-nie-jest-token")
	assert.Error(t, err)
}

func TestGenerateEmptyUsername(t *testing.T) {
	issuer := token.NewIssuer("sekret-testowy", 30*time.Minute)

	_, err := issuer.Generate("")
	assert.Error(t, err)
}

package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTFlow(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret-key-12345"), time.Hour)

	token, err := issuer.GenerateToken("guicouto6")
	require.NoError(t, err)

	username, err := issuer.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "guicouto6", username)
}

func TestValidateTokenErrors(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret-key-12345"), time.Hour)
	other := NewTokenIssuer([]byte("another-secret"), time.Hour)

	foreign, err := other.GenerateToken("guicouto6")
	require.NoError(t, err)

	_, err = issuer.ValidateToken("")
	assert.ErrorIs(t, err, ErrTokenMissing)

	_, err = issuer.ValidateToken("123456")
	assert.ErrorIs(t, err, ErrTokenMalformed)

	_, err = issuer.ValidateToken(foreign)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestExpiredToken(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-secret-key-12345"), time.Minute)
	issuer.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, err := issuer.GenerateToken("guicouto6")
	require.NoError(t, err)

	issuer.now = time.Now
	_, err = issuer.ValidateToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestGenerateTokenRequiresUsername(t *testing.T) {
	issuer := NewTokenIssuer([]byte("s"), time.Hour)
	_, err := issuer.GenerateToken("")
	assert.Error(t, err)
}

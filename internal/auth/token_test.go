package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-testing-purposes"

func TestTokenService_IssueAndParse(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour)

	token, issued, err := svc.Issue("owner@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.NotEmpty(t, issued.ID)

	claims, err := svc.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", claims.Email)
	assert.Equal(t, issued.ID, claims.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestTokenService_UniqueIDs(t *testing.T) {
	svc := NewTokenService(testSecret, time.Hour)

	_, a, err := svc.Issue("owner@example.com")
	require.NoError(t, err)
	_, b, err := svc.Issue("owner@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService(testSecret, time.Minute)
	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, _, err := svc.Issue("owner@example.com")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_WrongSecret(t *testing.T) {
	token, _, err := NewTokenService("other-secret", time.Hour).Issue("owner@example.com")
	require.NoError(t, err)

	_, err = NewTokenService(testSecret, time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_RejectsNoneAlgorithm(t *testing.T) {
	claims := &Claims{
		Email: "owner@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "abc",
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenService(testSecret, time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_Garbage(t *testing.T) {
	_, err := NewTokenService(testSecret, time.Hour).Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/akhilduddi/college-complaints-management-system/internal/app/models"
	"github.com/akhilduddi/college-complaints-management-system/internal/pkg/apperrors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService() *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:      "test-secret-key-for-unit-testing",
		AccessTokenExp: 24 * time.Hour,
		TokenIssuer:    "college-complaints",
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	s := newTestJWTService()

	token, expiresIn, err := s.GenerateToken(Subject{ID: 7, Identifier: "21CS001", Name: "Asha", Role: models.RoleStudent})
	require.NoError(t, err)
	assert.Equal(t, 86400, expiresIn)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.ID)
	assert.Equal(t, "21CS001", claims.Identifier)
	assert.Equal(t, "Asha", claims.Name)
	assert.Equal(t, models.RoleStudent, claims.Role)
	assert.Equal(t, "college-complaints", claims.Issuer)
	assert.Equal(t, "7", claims.Subject)
	assert.NotEmpty(t, claims.RegisteredClaims.ID)

	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, 24*time.Hour, ttl)
}

func TestGenerateToken_UnknownRole(t *testing.T) {
	s := newTestJWTService()

	_, _, err := s.GenerateToken(Subject{ID: 1, Role: models.Role("superuser")})
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	s := newTestJWTService()
	s.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }

	token, _, err := s.GenerateToken(Subject{ID: 1, Identifier: "T-1", Name: "T", Role: models.RoleTeacher})
	require.NoError(t, err)

	s.now = time.Now
	_, err = s.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, _, err := newTestJWTService().GenerateToken(Subject{ID: 1, Identifier: "admin", Name: "A", Role: models.RoleAdmin})
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "another-secret", AccessTokenExp: time.Hour, TokenIssuer: "college-complaints"})
	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_WrongIssuer(t *testing.T) {
	token, _, err := newTestJWTService().GenerateToken(Subject{ID: 1, Identifier: "admin", Name: "A", Role: models.RoleAdmin})
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "test-secret-key-for-unit-testing", AccessTokenExp: time.Hour, TokenIssuer: "someone-else"})
	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_RejectsOtherAlgorithms(t *testing.T) {
	claims := &Claims{
		ID:   1,
		Role: models.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			Issuer:    "college-complaints",
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = newTestJWTService().ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_MissingRole(t *testing.T) {
	claims := &Claims{
		ID: 3,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			Issuer:    "college-complaints",
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret-key-for-unit-testing"))
	require.NoError(t, err)

	_, err = newTestJWTService().ValidateToken(token)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc", want: "abc"},
		{name: "empty", header: "", wantErr: true},
		{name: "no scheme", header: "abc.def.ghi", wantErr: true},
		{name: "basic", header: "Basic dXNlcjpwYXNz", wantErr: true},
		{name: "bearer without token", header: "Bearer ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFormat)
				assert.ErrorIs(t, err, apperrors.ErrTokenMissing)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	assert.True(t, CheckPassword(hash, "secret1"))
	assert.False(t, CheckPassword(hash, "secret2"))
	assert.False(t, CheckPassword("not-a-hash", "secret1"))

	// Must not panic
	BurnPasswordCheck("anything")
}

package security

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/anderson-nunes/account-service/internal/core/domain"
)

func TestBcryptHasher_HashAndCompare(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("fulano123")
	require.NoError(t, err)
	assert.NotEqual(t, "fulano123", hash)

	ok, err := h.Compare("fulano123", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Compare("wrong", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	ok, err := h.Compare("fulano123", "not-a-bcrypt-hash")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_PasswordTooLong(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	_, err := h.Hash(strings.Repeat("a", 73))
	require.ErrorIs(t, err, domain.ErrBadRequest)
	assert.EqualError(t, err, domain.MsgPasswordTooLong)

	_, err = h.Hash(strings.Repeat("a", 72))
	assert.NoError(t, err)
}

func TestBcryptHasher_CostOutOfRange(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(99).cost)
	assert.Equal(t, 12, NewBcryptHasher(12).cost)
}

func TestJWTManager_RoundTrip(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)
	in := domain.TokenPayload{ID: "id-1", Name: "Fulano", Role: domain.RoleNormal}

	token, err := m.CreateToken(in)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	out := m.GetPayload(token)
	require.NotNil(t, out)
	assert.Equal(t, in, *out)
}

func TestJWTManager_Expired(t *testing.T) {
	m := NewJWTManager("secret", time.Minute)
	issued := time.Now().Add(-time.Hour)
	m.now = func() time.Time { return issued }

	token, err := m.CreateToken(domain.TokenPayload{ID: "id-1", Role: domain.RoleAdmin})
	require.NoError(t, err)

	m.now = time.Now
	assert.Nil(t, m.GetPayload(token))
}

func TestJWTManager_WrongSecret(t *testing.T) {
	token, err := NewJWTManager("secret", time.Hour).CreateToken(domain.TokenPayload{ID: "id-1", Role: domain.RoleAdmin})
	require.NoError(t, err)

	assert.Nil(t, NewJWTManager("other", time.Hour).GetPayload(token))
}

func TestJWTManager_Malformed(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)

	assert.Nil(t, m.GetPayload(""))
	assert.Nil(t, m.GetPayload("not-a-token"))
	assert.Nil(t, m.GetPayload("token-mock-astrodev"))
}

func TestJWTManager_RejectsIncompleteClaims(t *testing.T) {
	t.Run("role outside the enumeration", func(t *testing.T) {
		claims := jwt.MapClaims{
			"id":   "id-1",
			"role": "SUPERUSER",
			"iss":  issuer,
			"exp":  time.Now().Add(time.Hour).Unix(),
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)

		assert.Nil(t, NewJWTManager("secret", time.Hour).GetPayload(signed))
	})

	t.Run("missing expiry", func(t *testing.T) {
		claims := jwt.MapClaims{"id": "id-1", "role": "ADMIN", "iss": issuer}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
		require.NoError(t, err)

		assert.Nil(t, NewJWTManager("secret", time.Hour).GetPayload(signed))
	})
}

func TestJWTManager_RejectsOtherAlgorithm(t *testing.T) {
	claims := jwt.MapClaims{
		"id":   "id-1",
		"role": "ADMIN",
		"iss":  issuer,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	assert.Nil(t, NewJWTManager("secret", time.Hour).GetPayload(signed))
}

func TestUUIDGenerator_Unique(t *testing.T) {
	g := NewUUIDGenerator()
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := g.Generate()
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

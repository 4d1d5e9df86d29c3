package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/anderson-nunes/account-service/internal/core/domain"
)

const issuer = "account-service"

type sessionClaims struct {
	ID   string      `json:"id"`
	Name string      `json:"name"`
	Role domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// JWTManager implements ports.TokenManager with HS256-signed JWTs.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (m *JWTManager) CreateToken(payload domain.TokenPayload) (string, error) {
	now := m.now()
	claims := sessionClaims{
		ID:   payload.ID,
		Name: payload.Name,
		Role: payload.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   payload.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// GetPayload returns nil when the token is malformed, expired, signed with a
// different key or algorithm, or carries an unknown role.
func (m *JWTManager) GetPayload(token string) *domain.TokenPayload {
	if token == "" {
		return nil
	}

	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !parsed.Valid {
		return nil
	}
	if claims.ID == "" || !claims.Role.Valid() {
		return nil
	}

	return &domain.TokenPayload{ID: claims.ID, Name: claims.Name, Role: claims.Role}
}

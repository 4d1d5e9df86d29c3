package ports

import "github.com/anderson-nunes/account-service/internal/core/domain"

// PasswordHasher is a one-way hash with verification.
type PasswordHasher interface {
	Hash(raw string) (string, error)
	// Compare reports whether raw matches hash. A mismatch is (false, nil);
	// a non-nil error means the hash could not be evaluated.
	Compare(raw, hash string) (bool, error)
}

// TokenManager signs session claims into an opaque token and reverses it.
type TokenManager interface {
	CreateToken(payload domain.TokenPayload) (string, error)
	// GetPayload returns nil for invalid, expired or malformed tokens.
	GetPayload(token string) *domain.TokenPayload
}

// IDGenerator produces globally unique account identifiers.
type IDGenerator interface {
	Generate() string
}

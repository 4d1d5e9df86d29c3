package security

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/anderson-nunes/account-service/internal/core/domain"
)

// BcryptHasher implements ports.PasswordHasher with bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher using cost, or bcrypt.DefaultCost when cost
// is outside bcrypt's accepted range.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash rejects passwords longer than bcrypt's 72-byte limit as BadRequest.
func (h *BcryptHasher) Hash(raw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", domain.BadRequest(domain.MsgPasswordTooLong)
		}
		return "", err
	}
	return string(hash), nil
}

func (h *BcryptHasher) Compare(raw, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, err
	}
}

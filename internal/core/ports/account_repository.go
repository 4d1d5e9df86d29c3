package ports

import (
	"context"

	"github.com/anderson-nunes/account-service/internal/core/domain"
)

// AccountRepository defines the persistence operations for accounts.
// Lookups return domain.ErrAccountNotFound when no record matches.
type AccountRepository interface {
	// FindMany returns accounts whose name matches q; an empty q returns all of them.
	FindMany(ctx context.Context, q string) ([]*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	Insert(ctx context.Context, account *domain.Account) error
	DeleteByID(ctx context.Context, id string) error
}

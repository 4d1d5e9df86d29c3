// Package seed creates the bootstrap ADMIN account. Signup always yields
// NORMAL accounts, so the first administrator has to be written directly.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/anderson-nunes/account-service/internal/core/domain"
	"github.com/anderson-nunes/account-service/internal/core/ports"
)

// ErrIncompleteAdmin is returned when any admin field is empty.
var ErrIncompleteAdmin = errors.New("admin name, email and password are required")

// Admin describes the account to seed.
type Admin struct {
	Name     string
	Email    string
	Password string
}

// Seeder writes the bootstrap ADMIN account through the account repository.
type Seeder struct {
	repo   ports.AccountRepository
	ids    ports.IDGenerator
	hasher ports.PasswordHasher
	log    zerolog.Logger
	now    func() time.Time
}

func NewSeeder(repo ports.AccountRepository, ids ports.IDGenerator, hasher ports.PasswordHasher, log zerolog.Logger) *Seeder {
	return &Seeder{repo: repo, ids: ids, hasher: hasher, log: log, now: time.Now}
}

// EnsureAdmin inserts an ADMIN account for admin.Email unless an account with
// that email already exists. It reports whether an account was created.
// An existing account is left untouched, whatever its role.
func (s *Seeder) EnsureAdmin(ctx context.Context, admin Admin) (bool, error) {
	if admin.Name == "" || admin.Email == "" || admin.Password == "" {
		return false, ErrIncompleteAdmin
	}

	existing, err := s.repo.FindByEmail(ctx, admin.Email)
	switch {
	case err == nil:
		s.log.Info().
			Str("account_id", existing.ID).
			Str("role", string(existing.Role)).
			Msg("admin email already registered, skipping")
		return false, nil
	case !errors.Is(err, domain.ErrAccountNotFound):
		return false, fmt.Errorf("seed admin: %w", err)
	}

	hash, err := s.hasher.Hash(admin.Password)
	if err != nil {
		return false, fmt.Errorf("seed admin: hash password: %w", err)
	}

	account := &domain.Account{
		ID:           s.ids.Generate(),
		Name:         admin.Name,
		Email:        admin.Email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.repo.Insert(ctx, account); err != nil {
		return false, fmt.Errorf("seed admin: %w", err)
	}

	s.log.Info().Str("account_id", account.ID).Msg("admin account created")
	return true, nil
}

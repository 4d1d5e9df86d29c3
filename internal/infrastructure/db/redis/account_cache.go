package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/anderson-nunes/account-service/internal/core/domain"
	"github.com/anderson-nunes/account-service/internal/core/ports"
	"github.com/anderson-nunes/account-service/internal/pkg/metrics"
)

const (
	defaultCacheTTL = 5 * time.Minute
	// tombstone marks an id being or already deleted. Reads treat it as a miss
	// and read-through writes (SETNX) cannot replace it before it expires.
	tombstone = "-"
)

// CachedAccountRepository is a read-through cache over another
// ports.AccountRepository. Only lookups by id are cached. Read failures fall
// back to the wrapped store; DeleteByID refuses to run when the entry cannot
// be invalidated.
// Key format: account:<id>
type CachedAccountRepository struct {
	next   ports.AccountRepository
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

// NewCachedAccountRepository wraps next. If ttl <= 0, defaultCacheTTL is used.
func NewCachedAccountRepository(next ports.AccountRepository, client *redis.Client, ttl time.Duration, log zerolog.Logger) *CachedAccountRepository {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &CachedAccountRepository{next: next, client: client, ttl: ttl, log: log}
}

// cachedAccount mirrors domain.Account with explicit JSON names so the hash
// survives the round trip.
type cachedAccount struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

func (c *CachedAccountRepository) FindMany(ctx context.Context, q string) ([]*domain.Account, error) {
	return c.next.FindMany(ctx, q)
}

func (c *CachedAccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return c.next.FindByEmail(ctx, email)
}

func (c *CachedAccountRepository) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	if account, ok := c.get(ctx, id); ok {
		return account, nil
	}

	account, err := c.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.set(ctx, account)
	return account, nil
}

func (c *CachedAccountRepository) Insert(ctx context.Context, account *domain.Account) error {
	return c.next.Insert(ctx, account)
}

// DeleteByID tombstones the cache entry, then deletes from the store. A lookup
// that read the store before the delete can no longer cache the account.
func (c *CachedAccountRepository) DeleteByID(ctx context.Context, id string) error {
	if err := c.client.Set(ctx, key(id), tombstone, c.ttl).Err(); err != nil {
		return fmt.Errorf("invalidate cached account %s: %w", id, err)
	}
	return c.next.DeleteByID(ctx, id)
}

func (c *CachedAccountRepository) get(ctx context.Context, id string) (*domain.Account, bool) {
	raw, err := c.client.Get(ctx, key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()
		} else {
			metrics.CacheLookupsTotal.WithLabelValues("error").Inc()
			c.log.Warn().Err(err).Str("account_id", id).Msg("account cache read failed")
		}
		return nil, false
	}
	if string(raw) == tombstone {
		metrics.CacheLookupsTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	account, err := decodeAccount(raw)
	if err != nil {
		metrics.CacheLookupsTotal.WithLabelValues("error").Inc()
		c.log.Warn().Err(err).Str("account_id", id).Msg("discarding corrupt cache entry")
		_ = c.client.Del(ctx, key(id)).Err()
		return nil, false
	}

	metrics.CacheLookupsTotal.WithLabelValues("hit").Inc()
	return account, true
}

// set only writes when the key is absent, so it never overwrites a tombstone.
func (c *CachedAccountRepository) set(ctx context.Context, account *domain.Account) {
	raw, err := encodeAccount(account)
	if err == nil {
		err = c.client.SetNX(ctx, key(account.ID), raw, c.ttl).Err()
	}
	if err != nil {
		c.log.Warn().Err(err).Str("account_id", account.ID).Msg("account cache write failed")
	}
}

func encodeAccount(a *domain.Account) ([]byte, error) {
	return json.Marshal(cachedAccount{
		ID:           a.ID,
		Name:         a.Name,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		Role:         string(a.Role),
		CreatedAt:    a.CreatedAt.UTC(),
	})
}

func decodeAccount(raw []byte) (*domain.Account, error) {
	var ca cachedAccount
	if err := json.Unmarshal(raw, &ca); err != nil {
		return nil, fmt.Errorf("decode cached account: %w", err)
	}
	if ca.ID == "" {
		return nil, errors.New("decode cached account: missing id")
	}
	return &domain.Account{
		ID:           ca.ID,
		Name:         ca.Name,
		Email:        ca.Email,
		PasswordHash: ca.PasswordHash,
		Role:         domain.Role(ca.Role),
		CreatedAt:    ca.CreatedAt,
	}, nil
}

func key(id string) string {
	return "account:" + id
}

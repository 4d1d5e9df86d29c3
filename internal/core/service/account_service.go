package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/anderson-nunes/account-service/internal/core/domain"
	"github.com/anderson-nunes/account-service/internal/core/ports"
	"github.com/anderson-nunes/account-service/internal/pkg/metrics"
)

// AccountService implements signup, login and the token-gated directory operations.
type AccountService struct {
	repo   ports.AccountRepository
	ids    ports.IDGenerator
	tokens ports.TokenManager
	hasher ports.PasswordHasher
	logger zerolog.Logger
	now    func() time.Time
}

func NewAccountService(
	repo ports.AccountRepository,
	ids ports.IDGenerator,
	tokens ports.TokenManager,
	hasher ports.PasswordHasher,
	logger zerolog.Logger,
) *AccountService {
	return &AccountService{
		repo:   repo,
		ids:    ids,
		tokens: tokens,
		hasher: hasher,
		logger: logger,
		now:    time.Now,
	}
}

// Signup registers a NORMAL account and returns a token for it.
// Email uniqueness is left to the repository.
func (s *AccountService) Signup(ctx context.Context, input ports.SignupInput) (*ports.AuthResult, error) {
	id := s.ids.Generate()
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		ID:           id,
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         domain.RoleNormal,
		CreatedAt:    s.now().UTC(),
	}

	if err := s.repo.Insert(ctx, account); err != nil {
		s.logger.Error().Err(err).Msg("failed to insert account")
		return nil, err
	}

	token, err := s.tokens.CreateToken(account.Payload())
	if err != nil {
		return nil, err
	}

	metrics.AccountsCreatedTotal.Inc()
	s.logger.Info().Str("account_id", account.ID).Msg("account created")

	return &ports.AuthResult{Message: domain.MsgSignupSuccess, Token: token}, nil
}

// Login checks the credentials and issues a fresh token. An unknown email is
// NotFound; a wrong password is BadRequest.
func (s *AccountService) Login(ctx context.Context, input ports.LoginInput) (*ports.AuthResult, error) {
	account, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			metrics.LoginsTotal.WithLabelValues("unknown_email").Inc()
			return nil, domain.NotFound(domain.MsgEmailNotFound)
		}
		return nil, err
	}

	ok, err := s.hasher.Compare(input.Password, account.PasswordHash)
	if err != nil {
		return nil, err
	}
	if !ok {
		metrics.LoginsTotal.WithLabelValues("wrong_password").Inc()
		s.logger.Debug().Str("account_id", account.ID).Msg("login rejected")
		return nil, domain.BadRequest(domain.MsgWrongCredentials)
	}

	token, err := s.tokens.CreateToken(account.Payload())
	if err != nil {
		return nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return &ports.AuthResult{Message: domain.MsgLoginSuccess, Token: token}, nil
}

// List returns every account matching the query. ADMIN only.
func (s *AccountService) List(ctx context.Context, input ports.ListAccountsInput) ([]domain.PublicAccount, error) {
	if _, err := s.authorize("list", input.Token, true); err != nil {
		return nil, err
	}

	accounts, err := s.repo.FindMany(ctx, input.Query)
	if err != nil {
		return nil, err
	}

	out := make([]domain.PublicAccount, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, a.Public())
	}
	return out, nil
}

// GetByID returns a single account. ADMIN only; a missing id is BadRequest.
func (s *AccountService) GetByID(ctx context.Context, input ports.GetAccountInput) (*domain.PublicAccount, error) {
	if _, err := s.authorize("get_by_id", input.Token, true); err != nil {
		return nil, err
	}

	account, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			metrics.RejectionsTotal.WithLabelValues("get_by_id", "not_found").Inc()
			return nil, domain.BadRequest(domain.MsgAccountMissing)
		}
		return nil, err
	}

	view := account.Public()
	return &view, nil
}

// Delete removes an account by id. Any valid token may delete any account;
// the role is not checked here.
func (s *AccountService) Delete(ctx context.Context, input ports.DeleteAccountInput) (*ports.MessageResult, error) {
	caller, err := s.authorize("delete", input.Token, false)
	if err != nil {
		return nil, err
	}

	if input.IDToDelete == "" {
		metrics.RejectionsTotal.WithLabelValues("delete", "invalid_id").Inc()
		return nil, domain.BadRequest(domain.MsgInvalidID)
	}

	if _, err := s.repo.FindByID(ctx, input.IDToDelete); err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			metrics.RejectionsTotal.WithLabelValues("delete", "not_found").Inc()
			return nil, domain.BadRequest(domain.MsgDeleteTargetAbsent)
		}
		return nil, err
	}

	// A concurrent delete can remove the account between the lookup and here.
	if err := s.repo.DeleteByID(ctx, input.IDToDelete); err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			metrics.RejectionsTotal.WithLabelValues("delete", "not_found").Inc()
			return nil, domain.BadRequest(domain.MsgDeleteTargetAbsent)
		}
		s.logger.Error().Err(err).Str("account_id", input.IDToDelete).Msg("failed to delete account")
		return nil, err
	}

	metrics.AccountsDeletedTotal.Inc()
	s.logger.Info().
		Str("account_id", input.IDToDelete).
		Str("deleted_by", caller.ID).
		Str("caller_role", string(caller.Role)).
		Msg("account deleted")

	return &ports.MessageResult{Message: domain.MsgDeleteSuccess}, nil
}

// authorize decodes token and, when adminOnly is set, requires the ADMIN role.
func (s *AccountService) authorize(operation, token string, adminOnly bool) (*domain.TokenPayload, error) {
	payload := s.tokens.GetPayload(token)
	if payload == nil {
		metrics.RejectionsTotal.WithLabelValues(operation, "invalid_token").Inc()
		return nil, domain.BadRequest(domain.MsgInvalidToken)
	}
	if adminOnly && payload.Role != domain.RoleAdmin {
		metrics.RejectionsTotal.WithLabelValues(operation, "admin_only").Inc()
		s.logger.Debug().Str("operation", operation).Str("account_id", payload.ID).Msg("admin role required")
		return nil, domain.BadRequest(domain.MsgAdminOnly)
	}
	return payload, nil
}

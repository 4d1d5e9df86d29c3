package ports

import (
	"context"

	"github.com/anderson-nunes/account-service/internal/core/domain"
)

// SignupInput carries the self-service registration fields.
type SignupInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput carries login credentials.
type LoginInput struct {
	Email    string
	Password string
}

// ListAccountsInput carries the optional name filter and the caller's token.
type ListAccountsInput struct {
	Query string
	Token string
}

// GetAccountInput identifies the account to fetch.
type GetAccountInput struct {
	ID    string
	Token string
}

// DeleteAccountInput identifies the account to remove.
type DeleteAccountInput struct {
	IDToDelete string
	Token      string
}

// AuthResult is returned by signup and login.
type AuthResult struct {
	Message string
	Token   string
}

// MessageResult is returned by operations that only report success.
type MessageResult struct {
	Message string
}

// AccountService defines the account use cases.
type AccountService interface {
	Signup(ctx context.Context, input SignupInput) (*AuthResult, error)
	Login(ctx context.Context, input LoginInput) (*AuthResult, error)
	List(ctx context.Context, input ListAccountsInput) ([]domain.PublicAccount, error)
	GetByID(ctx context.Context, input GetAccountInput) (*domain.PublicAccount, error)
	Delete(ctx context.Context, input DeleteAccountInput) (*MessageResult, error)
}

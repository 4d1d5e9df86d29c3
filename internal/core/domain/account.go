package domain

import (
	"errors"
	"time"
)

// Role is the closed set of account roles. Gated operations compare it by value.
type Role string

const (
	RoleNormal Role = "NORMAL"
	RoleAdmin  Role = "ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleNormal || r == RoleAdmin
}

var ErrAccountNotFound = errors.New("account not found")

// Account models a registered user. PasswordHash never leaves the service layer.
type Account struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// PublicAccount is the outward view of an Account; it has no password field.
type PublicAccount struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	CreatedAt string `json:"createdAt"`
}

// TimestampLayout renders createdAt the way JavaScript's toISOString does.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Public strips the hash and formats the creation time.
func (a *Account) Public() PublicAccount {
	return PublicAccount{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Role:      a.Role,
		CreatedAt: a.CreatedAt.UTC().Format(TimestampLayout),
	}
}

// TokenPayload is the set of claims carried by a session token.
type TokenPayload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// Payload builds the session claims for a.
func (a *Account) Payload() TokenPayload {
	return TokenPayload{ID: a.ID, Name: a.Name, Role: a.Role}
}

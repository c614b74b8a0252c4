package usecase

import (
	"context"

	"github.com/google/uuid"
)

// AuthResult bundles the issued token pair with the authenticated user.
// Created is true when the login auto-registered a new account.
type AuthResult struct {
	Token   TokenDTO `json:"token"`
	User    *UserDTO `json:"user"`
	Created bool     `json:"-"`
}

// AuthUsecase defines the authentication operations.
type AuthUsecase interface {
	// Login exchanges an external one-time auth code for a session,
	// auto-registering the account on first contact.
	Login(ctx context.Context, authCode string) (*AuthResult, error)

	// SignIn authenticates a local username/password credential.
	SignIn(ctx context.Context, username, password string) (*AuthResult, error)

	// Refresh redeems a single-use refresh token for a fresh token pair.
	// Identity is the user's external id.
	Refresh(ctx context.Context, identity, refreshToken string) (*AuthResult, error)

	// Logout revokes every session of the user, invalidating all of their
	// outstanding refresh tokens.
	Logout(ctx context.Context, userID uuid.UUID) error
}

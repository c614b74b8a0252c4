package service

import (
	"context"
)

// IdentityUser represents user information resolved from the external identity provider.
type IdentityUser struct {
	ExternalID string // Provider-specific user ID
	Name       string // User's display name
}

// IdentityService defines the interface for exchanging a login code issued by an
// external identity provider for the user's identity. Implementations are expected
// to return a typed error naming the step that failed, so callers can surface
// upstream outages instead of masking them.
type IdentityService interface {
	// ResolveCode exchanges a one-time login code for the external user identity.
	ResolveCode(ctx context.Context, code string) (*IdentityUser, error)
}

// Package identity resolves bearer tokens into caller identities.
package identity

import (
	"context"

	"github.com/abnerteste26-bot/group-champs/internal/apperr"
)

// Role is the caller's role.
type Role string

// Roles.
const (
	RoleAdmin Role = "admin"
	RoleTeam  Role = "team"
)

var (
	// ErrUnauthorized indicates a missing, expired or malformed token.
	ErrUnauthorized = apperr.New(apperr.KindUnauthorized, "missing or invalid credentials")
	// ErrForbidden indicates the caller may not perform the operation.
	ErrForbidden = apperr.New(apperr.KindForbidden, "operation not permitted")
)

// Identity is the authenticated caller.
type Identity struct {
	Subject string `json:"sub"`
	Role    Role   `json:"role"`
	// TeamID is set for team callers.
	TeamID string `json:"team_id,omitempty"`
}

// IsAdmin reports whether the caller is an administrator.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// ActsFor reports whether the caller acts on behalf of teamID.
func (i Identity) ActsFor(teamID string) bool {
	return i.Role == RoleTeam && i.TeamID != "" && i.TeamID == teamID
}

// RequireAdmin returns ErrForbidden unless the caller is an administrator.
func RequireAdmin(actor Identity) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	return nil
}

// Resolver turns a bearer token into an Identity.
type Resolver interface {
	Resolve(ctx context.Context, token string) (Identity, error)
}

type contextKey struct{}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the identity stored in ctx, if any.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(contextKey{}).(Identity)
	return id, ok
}

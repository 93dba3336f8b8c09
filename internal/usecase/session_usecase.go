package usecase

import (
	"context"

	"orchid/internal/domain/entity"
)

// RegisterForm is the registration input, validated before any network call.
type RegisterForm struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

// SessionUsecase owns the persisted session (token plus user record) and
// answers the guard questions the views gate navigation on. The guard reads
// only the persistent store; it never calls the network for role checks.
type SessionUsecase interface {
	Login(ctx context.Context, email, password string) (*entity.Account, error)
	Register(ctx context.Context, form RegisterForm) error

	// Logout deletes both the token and the user record, then the store's
	// broadcast lets independent observers re-derive their display state.
	Logout(ctx context.Context) error

	// IsAuthenticated is true iff a non-empty token is persisted.
	IsAuthenticated(ctx context.Context) bool

	// CurrentAccount parses the persisted user record. Missing or malformed
	// records yield ErrLoginRequired, never a parse failure.
	CurrentAccount(ctx context.Context) (*entity.Account, error)

	// CurrentRole returns the persisted role, or RoleUnknown when the record
	// is missing or malformed.
	CurrentRole(ctx context.Context) entity.Role

	// RequireAuthenticated returns ErrLoginRequired for anonymous callers.
	RequireAuthenticated(ctx context.Context) error

	// RequireRole returns ErrLoginRequired for anonymous callers and
	// ErrPermissionDenied for authenticated callers missing the role. The
	// two map to different redirect targets.
	RequireRole(ctx context.Context, role entity.Role) error

	// TokenClaims reads display-only claims out of the bearer token.
	TokenClaims(ctx context.Context) (*entity.TokenInfo, error)
}

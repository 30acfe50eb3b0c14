package repository

import (
	"context"

	"github.com/ptanasia/potrack/internal/domain/model"
)

// SessionStore persists the single active session so a restart preserves
// the login. LoadSession returns nil when no session is stored or the
// stored record cannot be decoded.
type SessionStore interface {
	LoadSession(ctx context.Context) *model.User
	SaveSession(ctx context.Context, user model.User) error
	ClearSession(ctx context.Context) error
}

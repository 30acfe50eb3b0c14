package usecase

import (
	"context"
	"log/slog"
	"sync"

	domainErrors "github.com/ptanasia/potrack/internal/domain/errors"
	"github.com/ptanasia/potrack/internal/domain/model"
	"github.com/ptanasia/potrack/internal/domain/repository"
)

// staticUsers is the fixed credential table. Exact-match plaintext lookup
// is the documented contract of this demo-grade gate, not a security
// boundary.
var staticUsers = []model.User{
	{Username: "admin", Password: "admin123", Name: "Administrator", Role: model.RoleAdmin},
	{Username: "user", Password: "user123", Name: "Regular User", Role: model.RoleUser},
}

// SessionUseCase tracks the single active session and persists it so a
// restart preserves the login.
type SessionUseCase struct {
	sessions repository.SessionStore
	logger   *slog.Logger

	mu      sync.Mutex
	current *model.User
}

// NewSessionUseCase constructs SessionUseCase.
func NewSessionUseCase(sessions repository.SessionStore, logger *slog.Logger) *SessionUseCase {
	return &SessionUseCase{sessions: sessions, logger: logger}
}

// Login validates credentials against the static user table. A persistence
// failure of the session record is logged and does not fail the login.
func (s *SessionUseCase) Login(ctx context.Context, username, password string) (*model.User, error) {
	for _, u := range staticUsers {
		if u.Username != username || u.Password != password {
			continue
		}
		s.mu.Lock()
		user := u
		s.current = &user
		s.mu.Unlock()

		if err := s.sessions.SaveSession(ctx, user); err != nil {
			s.logger.Error("persist session", slog.String("error", err.Error()))
		}
		result := user
		return &result, nil
	}
	return nil, domainErrors.ErrInvalidCredentials
}

// Logout clears the in-memory and persisted session. It always succeeds;
// a storage failure is logged and swallowed.
func (s *SessionUseCase) Logout(ctx context.Context) {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := s.sessions.ClearSession(ctx); err != nil {
		s.logger.Error("clear persisted session", slog.String("error", err.Error()))
	}
}

// CurrentUser returns the active session, rehydrating from persisted
// storage when the in-memory session is absent.
func (s *SessionUseCase) CurrentUser(ctx context.Context) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil {
		user := *s.current
		return &user, nil
	}

	if stored := s.sessions.LoadSession(ctx); stored != nil {
		user := *stored
		s.current = &user
		result := user
		return &result, nil
	}

	return nil, domainErrors.ErrNoSession
}

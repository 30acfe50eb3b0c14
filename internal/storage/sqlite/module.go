package sqlite

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/ptanasia/potrack/internal/config"
	"github.com/ptanasia/potrack/internal/domain/repository"
)

// Module wires sqlite storage and the store interfaces used by the use cases.
var Module = fx.Options(
	fx.Provide(newStore),
	fx.Provide(
		func(s *Store) repository.OrderStore { return s },
		func(s *Store) repository.SessionStore { return s },
	),
	fx.Invoke(registerLifecycle),
)

type storeParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newStore(p storeParams) (*Store, error) {
	return New(p.Config.DataDir, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, store *Store) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return store.Close()
		},
	})
}

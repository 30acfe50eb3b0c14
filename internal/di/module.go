package di

import (
	"github.com/ptanasia/potrack/internal/app"
	"github.com/ptanasia/potrack/internal/config"
	"github.com/ptanasia/potrack/internal/logger"
	"github.com/ptanasia/potrack/internal/server/http/handlers"
	"github.com/ptanasia/potrack/internal/server/http/router"
	"github.com/ptanasia/potrack/internal/storage/sqlite"
	"github.com/ptanasia/potrack/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		sqlite.Module,
		usecase.Module,
		fx.Provide(func(facade *app.EntryFacade) handlers.EntryFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}

package handlers

import (
	"context"

	"github.com/ptanasia/potrack/internal/domain/model"
	"github.com/ptanasia/potrack/internal/usecase"
)

// SessionFacade describes session capabilities required by handlers.
type SessionFacade interface {
	Login(ctx context.Context, username, password string) (*model.User, error)
	Logout(ctx context.Context)
	CurrentUser(ctx context.Context) (*model.User, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	CreateOrder(ctx context.Context, in usecase.CreateOrderInput) (*model.Order, error)
	ListOrders(ctx context.Context) []model.Order
	SearchOrders(ctx context.Context, query string) []model.Order
	GetOrder(ctx context.Context, id int64) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error)
	NextOrderNumber(ctx context.Context) string
	ValidateHeader(orderDate, department string) error
	ValidateItems(items []model.LineItem) error
}

// EntryFacade aggregates the full set of operations used across handlers.
type EntryFacade interface {
	SessionFacade
	OrderFacade
}

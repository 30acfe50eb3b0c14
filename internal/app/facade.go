package app

import (
	"context"
	"time"

	"github.com/ptanasia/potrack/internal/domain/model"
	"github.com/ptanasia/potrack/internal/usecase"
)

// EntryFacade aggregates the session and order use cases behind the single
// surface the UI layer talks to. Order mutations resolve the acting user
// from the current session here, so handlers never pass identity around.
type EntryFacade struct {
	sessions *usecase.SessionUseCase
	orders   *usecase.OrderUseCase
}

// NewEntryFacade constructs EntryFacade.
func NewEntryFacade(sessions *usecase.SessionUseCase, orders *usecase.OrderUseCase) *EntryFacade {
	return &EntryFacade{sessions: sessions, orders: orders}
}

func (f *EntryFacade) Login(ctx context.Context, username, password string) (*model.User, error) {
	return f.sessions.Login(ctx, username, password)
}

func (f *EntryFacade) Logout(ctx context.Context) {
	f.sessions.Logout(ctx)
}

func (f *EntryFacade) CurrentUser(ctx context.Context) (*model.User, error) {
	return f.sessions.CurrentUser(ctx)
}

func (f *EntryFacade) CreateOrder(ctx context.Context, in usecase.CreateOrderInput) (*model.Order, error) {
	actor, err := f.sessions.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	return f.orders.Create(ctx, *actor, in)
}

func (f *EntryFacade) ListOrders(ctx context.Context) []model.Order {
	return f.orders.ListAll(ctx)
}

func (f *EntryFacade) SearchOrders(ctx context.Context, query string) []model.Order {
	return f.orders.Search(ctx, query)
}

func (f *EntryFacade) GetOrder(ctx context.Context, id int64) (*model.Order, error) {
	return f.orders.GetByID(ctx, id)
}

func (f *EntryFacade) UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	actor, err := f.sessions.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	return f.orders.UpdateStatus(ctx, id, status, actor.Role)
}

func (f *EntryFacade) NextOrderNumber(ctx context.Context) string {
	return f.orders.NextOrderNumber(ctx)
}

func (f *EntryFacade) ValidateHeader(orderDate, department string) error {
	return usecase.ValidateHeader(orderDate, department, time.Now())
}

func (f *EntryFacade) ValidateItems(items []model.LineItem) error {
	return usecase.ValidateItems(items)
}

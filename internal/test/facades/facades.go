package facades

import (
	"context"

	"github.com/ptanasia/potrack/internal/domain/model"
	"github.com/ptanasia/potrack/internal/usecase"
)

// AdminUser is the default actor returned by facade stubs.
var AdminUser = model.User{Username: "admin", Name: "Administrator", Role: model.RoleAdmin}

// SessionFacadeStub simulates session operations for HTTP layer tests.
type SessionFacadeStub struct {
	LoginFn       func(context.Context, string, string) (*model.User, error)
	LogoutFn      func(context.Context)
	CurrentUserFn func(context.Context) (*model.User, error)
}

// Login returns the default admin user or delegates to the override.
func (s SessionFacadeStub) Login(ctx context.Context, username, password string) (*model.User, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, username, password)
	}
	user := AdminUser
	return &user, nil
}

// Logout invokes the override when provided.
func (s SessionFacadeStub) Logout(ctx context.Context) {
	if s.LogoutFn != nil {
		s.LogoutFn(ctx)
	}
}

// CurrentUser returns the default admin user or delegates to the override.
func (s SessionFacadeStub) CurrentUser(ctx context.Context) (*model.User, error) {
	if s.CurrentUserFn != nil {
		return s.CurrentUserFn(ctx)
	}
	user := AdminUser
	return &user, nil
}

// OrderFacadeStub simulates order operations for HTTP layer tests.
type OrderFacadeStub struct {
	CreateOrderFn       func(context.Context, usecase.CreateOrderInput) (*model.Order, error)
	ListOrdersFn        func(context.Context) []model.Order
	SearchOrdersFn      func(context.Context, string) []model.Order
	GetOrderFn          func(context.Context, int64) (*model.Order, error)
	UpdateOrderStatusFn func(context.Context, int64, model.OrderStatus) (*model.Order, error)
	NextOrderNumberFn   func(context.Context) string
	ValidateHeaderFn    func(string, string) error
	ValidateItemsFn     func([]model.LineItem) error

	Orders []model.Order
}

// CreateOrder delegates to the override or echoes a draft order.
func (s OrderFacadeStub) CreateOrder(ctx context.Context, in usecase.CreateOrderInput) (*model.Order, error) {
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, in)
	}
	return &model.Order{
		ID:          1,
		OrderNumber: in.OrderNumber,
		OrderDate:   in.OrderDate,
		Department:  in.Department,
		Items:       in.Items,
		Status:      model.OrderStatusDraft,
	}, nil
}

// ListOrders returns the configured slice or delegates to the override.
func (s OrderFacadeStub) ListOrders(ctx context.Context) []model.Order {
	if s.ListOrdersFn != nil {
		return s.ListOrdersFn(ctx)
	}
	return s.Orders
}

// SearchOrders returns the configured slice or delegates to the override.
func (s OrderFacadeStub) SearchOrders(ctx context.Context, query string) []model.Order {
	if s.SearchOrdersFn != nil {
		return s.SearchOrdersFn(ctx, query)
	}
	return s.Orders
}

// GetOrder returns the first configured order or delegates to the override.
func (s OrderFacadeStub) GetOrder(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetOrderFn != nil {
		return s.GetOrderFn(ctx, id)
	}
	for _, o := range s.Orders {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	order := model.Order{ID: id}
	return &order, nil
}

// UpdateOrderStatus delegates to the override or echoes the transition.
func (s OrderFacadeStub) UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.Order, error) {
	if s.UpdateOrderStatusFn != nil {
		return s.UpdateOrderStatusFn(ctx, id, status)
	}
	return &model.Order{ID: id, Status: status}, nil
}

// NextOrderNumber returns a fixed number or delegates to the override.
func (s OrderFacadeStub) NextOrderNumber(ctx context.Context) string {
	if s.NextOrderNumberFn != nil {
		return s.NextOrderNumberFn(ctx)
	}
	return "PO-0001-2025"
}

// ValidateHeader delegates to the override or accepts everything.
func (s OrderFacadeStub) ValidateHeader(orderDate, department string) error {
	if s.ValidateHeaderFn != nil {
		return s.ValidateHeaderFn(orderDate, department)
	}
	return nil
}

// ValidateItems delegates to the override or accepts everything.
func (s OrderFacadeStub) ValidateItems(items []model.LineItem) error {
	if s.ValidateItemsFn != nil {
		return s.ValidateItemsFn(items)
	}
	return nil
}

// EntryFacadeStub aggregates facade dependencies for HTTP layer tests.
type EntryFacadeStub struct {
	SessionFacadeStub
	OrderFacadeStub
}

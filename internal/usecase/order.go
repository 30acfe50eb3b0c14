package usecase

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	domainErrors "github.com/ptanasia/potrack/internal/domain/errors"
	"github.com/ptanasia/potrack/internal/domain/model"
	"github.com/ptanasia/potrack/internal/domain/repository"
)

// OrderUseCase owns the order list and its lifecycle. Every listing
// re-reads authoritative storage; a failed persistence write is logged and
// swallowed, leaving the in-memory result as the last-known-good value.
type OrderUseCase struct {
	store   repository.OrderStore
	numbers *NumberGenerator
	logger  *slog.Logger

	mu sync.Mutex
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(store repository.OrderStore, numbers *NumberGenerator, logger *slog.Logger) *OrderUseCase {
	return &OrderUseCase{store: store, numbers: numbers, logger: logger}
}

// loadOrders re-reads the order list and resynchronizes the number
// generator with what is actually persisted.
func (u *OrderUseCase) loadOrders(ctx context.Context) []model.Order {
	orders := u.store.LoadOrders(ctx)
	u.numbers.Sync(ctx, orders)
	return orders
}

func (u *OrderUseCase) persist(ctx context.Context, orders []model.Order) {
	if err := u.store.SaveOrders(ctx, orders); err != nil {
		u.logger.Error("persist orders", slog.String("error", err.Error()))
	}
}

// Create validates the submission in full, guards against double submits
// of the same order number, stamps the server-assigned fields, and
// persists the appended list.
func (u *OrderUseCase) Create(ctx context.Context, actor model.User, in CreateOrderInput) (*model.Order, error) {
	now := time.Now()
	if err := ValidateOrder(in, now); err != nil {
		return nil, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	orders := u.loadOrders(ctx)

	number := in.OrderNumber
	if number == "" {
		number = u.numbers.Next(ctx)
	}
	for _, o := range orders {
		if o.OrderNumber == number {
			return nil, domainErrors.ErrAlreadyExists
		}
	}

	order := model.Order{
		ID:          newOrderID(orders, now),
		OrderNumber: number,
		OrderDate:   in.OrderDate,
		Department:  in.Department,
		Items:       in.Items,
		Status:      model.OrderStatusDraft,
		CreatedBy:   actor.Name,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	orders = append(orders, order)
	u.persist(ctx, orders)

	return &order, nil
}

// ListAll returns every order, freshly reloaded from storage and sorted
// descending by update time (creation time when never updated).
func (u *OrderUseCase) ListAll(ctx context.Context) []model.Order {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.listSorted(ctx)
}

func (u *OrderUseCase) listSorted(ctx context.Context) []model.Order {
	orders := u.loadOrders(ctx)
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].EffectiveUpdatedAt().After(orders[j].EffectiveUpdatedAt())
	})
	return orders
}

// Search filters the sorted list by case-insensitive substring match over
// order number, department, and line item names. An empty query returns
// the full list.
func (u *OrderUseCase) Search(ctx context.Context, query string) []model.Order {
	u.mu.Lock()
	defer u.mu.Unlock()

	orders := u.listSorted(ctx)
	if query == "" {
		return orders
	}

	needle := strings.ToLower(query)
	matched := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if orderMatches(o, needle) {
			matched = append(matched, o)
		}
	}
	return matched
}

func orderMatches(o model.Order, needle string) bool {
	if strings.Contains(strings.ToLower(o.OrderNumber), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(o.Department), needle) {
		return true
	}
	for _, item := range o.Items {
		if strings.Contains(strings.ToLower(item.Name), needle) {
			return true
		}
	}
	return false
}

// GetByID fetches a single order.
func (u *OrderUseCase) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	for _, o := range u.loadOrders(ctx) {
		if o.ID == id {
			order := o
			return &order, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// UpdateStatus applies a status transition on behalf of the acting role.
// Authorization and transition legality are enforced here rather than
// trusted to the caller: user-role sessions may only release, and no path
// leads back to draft or out of a terminal status.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus, role model.Role) (*model.Order, error) {
	if !status.Valid() {
		return nil, domainErrors.ErrInvalidTransition
	}
	if role != model.RoleAdmin && status != model.OrderStatusRelease {
		return nil, domainErrors.ErrForbidden
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	orders := u.loadOrders(ctx)
	for i := range orders {
		if orders[i].ID != id {
			continue
		}
		if !transitionAllowed(orders[i].Status, status) {
			return nil, domainErrors.ErrInvalidTransition
		}
		orders[i].Status = status
		orders[i].UpdatedAt = time.Now()
		u.persist(ctx, orders)
		order := orders[i]
		return &order, nil
	}
	return nil, domainErrors.ErrNotFound
}

// NextOrderNumber reloads the order list, resynchronizes the counter, and
// mints the next order number.
func (u *OrderUseCase) NextOrderNumber(ctx context.Context) string {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.loadOrders(ctx)
	return u.numbers.Next(ctx)
}

// transitionAllowed encodes the lifecycle: draft -> release -> completed,
// draft|release -> canceled. Admin jumps such as draft -> completed are
// allowed; nothing returns to draft and terminal statuses are final.
func transitionAllowed(from, to model.OrderStatus) bool {
	if from.Terminal() || to == model.OrderStatusDraft || from == to {
		return false
	}
	return true
}

// newOrderID derives a unique identifier from the clock, bumping past any
// collision with an existing order created in the same millisecond.
func newOrderID(orders []model.Order, now time.Time) int64 {
	id := now.UnixMilli()
	for {
		collision := false
		for _, o := range orders {
			if o.ID == id {
				collision = true
				break
			}
		}
		if !collision {
			return id
		}
		id++
	}
}

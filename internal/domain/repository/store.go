package repository

import (
	"context"

	"github.com/ptanasia/potrack/internal/domain/model"
)

// OrderStore persists the order list and the order-number sequence counter.
//
// LoadOrders and LastSequence never fail: an absent, corrupt, or unreadable
// store degrades to the empty state and the condition is logged inside the
// adapter. Writes are best-effort; callers treat a returned error as
// non-fatal and keep serving from memory.
type OrderStore interface {
	LoadOrders(ctx context.Context) []model.Order
	SaveOrders(ctx context.Context, orders []model.Order) error
	LastSequence(ctx context.Context) int64
	SetLastSequence(ctx context.Context, n int64) error
}

package test

import (
	"context"

	"github.com/ptanasia/potrack/internal/domain/model"
)

// StateStoreStub is an in-memory stand-in for the persisted key-value
// store. Error fields let tests inject write failures per operation.
type StateStoreStub struct {
	Orders   []model.Order
	Sequence int64
	Session  *model.User

	SaveOrdersErr   error
	SetSequenceErr  error
	SaveSessionErr  error
	ClearSessionErr error

	LoadOrderCalls int
	SaveOrderCalls int
}

// LoadOrders returns a copy of the stored order list.
func (s *StateStoreStub) LoadOrders(ctx context.Context) []model.Order {
	s.LoadOrderCalls++
	return append([]model.Order(nil), s.Orders...)
}

// SaveOrders replaces the stored order list unless a failure is injected.
func (s *StateStoreStub) SaveOrders(ctx context.Context, orders []model.Order) error {
	s.SaveOrderCalls++
	if s.SaveOrdersErr != nil {
		return s.SaveOrdersErr
	}
	s.Orders = append([]model.Order(nil), orders...)
	return nil
}

// LastSequence returns the stored counter.
func (s *StateStoreStub) LastSequence(ctx context.Context) int64 {
	return s.Sequence
}

// SetLastSequence stores the counter unless a failure is injected.
func (s *StateStoreStub) SetLastSequence(ctx context.Context, n int64) error {
	if s.SetSequenceErr != nil {
		return s.SetSequenceErr
	}
	s.Sequence = n
	return nil
}

// LoadSession returns a copy of the stored session user.
func (s *StateStoreStub) LoadSession(ctx context.Context) *model.User {
	if s.Session == nil {
		return nil
	}
	user := *s.Session
	return &user
}

// SaveSession stores the session user unless a failure is injected.
func (s *StateStoreStub) SaveSession(ctx context.Context, user model.User) error {
	if s.SaveSessionErr != nil {
		return s.SaveSessionErr
	}
	stored := user
	s.Session = &stored
	return nil
}

// ClearSession removes the stored session unless a failure is injected.
func (s *StateStoreStub) ClearSession(ctx context.Context) error {
	if s.ClearSessionErr != nil {
		return s.ClearSessionErr
	}
	s.Session = nil
	return nil
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	domainErrors "github.com/ptanasia/potrack/internal/domain/errors"
	"github.com/ptanasia/potrack/internal/domain/model"
	testhelpers "github.com/ptanasia/potrack/internal/test"
)

var testActor = model.User{Username: "admin", Name: "Administrator", Role: model.RoleAdmin}

func newOrderUseCase(store *testhelpers.StateStoreStub) *OrderUseCase {
	logger := discardLogger()
	return NewOrderUseCase(store, NewNumberGenerator(store, logger), logger)
}

func validInput() CreateOrderInput {
	return CreateOrderInput{
		OrderDate:  time.Now().AddDate(0, 0, 10).Format(dateLayout),
		Department: "Finance",
		Items:      []model.LineItem{validItem()},
	}
}

func TestCreateMintsNumberAndStampsFields(t *testing.T) {
	store := &testhelpers.StateStoreStub{}
	uc := newOrderUseCase(store)

	order, err := uc.Create(context.Background(), testActor, validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := fmt.Sprintf("PO-0001-%d", time.Now().Year())
	if order.OrderNumber != want {
		t.Fatalf("expected minted number %q, got %q", want, order.OrderNumber)
	}
	if order.Status != model.OrderStatusDraft {
		t.Fatalf("expected draft status, got %s", order.Status)
	}
	if order.CreatedBy != "Administrator" {
		t.Fatalf("expected creator name, got %q", order.CreatedBy)
	}
	if order.ID == 0 {
		t.Fatal("expected clock-derived id")
	}
	if order.CreatedAt.IsZero() || !order.UpdatedAt.Equal(order.CreatedAt) {
		t.Fatalf("expected matching timestamps, got %v / %v", order.CreatedAt, order.UpdatedAt)
	}
	if len(store.Orders) != 1 {
		t.Fatalf("expected order persisted, store has %d", len(store.Orders))
	}
}

func TestCreateSequentialNumbersAreUnique(t *testing.T) {
	store := &testhelpers.StateStoreStub{}
	uc := newOrderUseCase(store)
	ctx := context.Background()

	first, err := uc.Create(ctx, testActor, validInput())
	if err != nil {
		t.Fatalf("first create: %v", err)
	}
	second, err := uc.Create(ctx, testActor, validInput())
	if err != nil {
		t.Fatalf("second create: %v", err)
	}

	if first.OrderNumber == second.OrderNumber {
		t.Fatalf("expected unique numbers, both got %q", first.OrderNumber)
	}
	if first.ID == second.ID {
		t.Fatalf("expected unique ids, both got %d", first.ID)
	}
}

func TestCreateRejectsDuplicateSuppliedNumber(t *testing.T) {
	store := &testhelpers.StateStoreStub{}
	uc := newOrderUseCase(store)
	ctx := context.Background()

	in := validInput()
	in.OrderNumber = "PO-0005-2025"

	if _, err := uc.Create(ctx, testActor, in); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := uc.Create(ctx, testActor, in); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected duplicate rejection, got %v", err)
	}
	if len(store.Orders) != 1 {
		t.Fatalf("expected single persisted order, got %d", len(store.Orders))
	}
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	store := &testhelpers.StateStoreStub{}
	uc := newOrderUseCase(store)

	in := validInput()
	in.OrderDate = time.Now().Format(dateLayout)

	_, err := uc.Create(context.Background(), testActor, in)
	if !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(store.Orders) != 0 {
		t.Fatal("expected nothing persisted on validation failure")
	}
}

func TestCreateSurvivesPersistenceFailure(t *testing.T) {
	store := &testhelpers.StateStoreStub{SaveOrdersErr: errors.New("disk full")}
	uc := newOrderUseCase(store)

	order, err := uc.Create(context.Background(), testActor, validInput())
	if err != nil {
		t.Fatalf("expected create to succeed despite write failure, got %v", err)
	}
	if order == nil || order.OrderNumber == "" {
		t.Fatal("expected a complete order back")
	}
}

func seedOrders(store *testhelpers.StateStoreStub) []model.Order {
	base := time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)
	store.Orders = []model.Order{
		{
			ID: 1, OrderNumber: "PO-0001-2025", OrderDate: "2025-04-20", Department: "Finance",
			Items:     []model.LineItem{{Name: "Stapler", Quantity: 2, Price: 25000, Unit: "PCS", Description: "Heavy duty stapler"}},
			Status:    model.OrderStatusDraft,
			CreatedAt: base, UpdatedAt: base,
		},
		{
			ID: 2, OrderNumber: "PO-0002-2025", OrderDate: "2025-04-22", Department: "IT",
			Items:     []model.LineItem{{Name: "HDMI cable", Quantity: 3, Price: 40000, Unit: "PCS", Description: "Two meter cable"}},
			Status:    model.OrderStatusRelease,
			CreatedAt: base.Add(time.Hour), UpdatedAt: base.Add(3 * time.Hour),
		},
		{
			ID: 3, OrderNumber: "PO-0003-2025", OrderDate: "2025-04-25", Department: "HR",
			Items:     []model.LineItem{{Name: "Whiteboard marker", Quantity: 12, Price: 8000, Unit: "BOX", Description: "Assorted colors"}},
			Status:    model.OrderStatusDraft,
			CreatedAt: base.Add(2 * time.Hour),
		},
	}
	return store.Orders
}

func TestListAllSortedByEffectiveTimestampDescending(t *testing.T) {
	store := &testhelpers.StateStoreStub{}
	seedOrders(store)
	uc := newOrderUseCase(store)

	orders := uc.ListAll(context.Background())
	if len(orders) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(orders))
	}
	for i := 1; i < len(orders); i++ {
		if orders[i-1].EffectiveUpdatedAt().Before(orders[i].EffectiveUpdatedAt()) {
			t.Fatalf("orders out of order at %d: %v before %v",
				i, orders[i-1].EffectiveUpdatedAt(), orders[i].EffectiveUpdatedAt())
		}
	}
	// Order 2 was updated last; order 3 has no update and falls back to
	// its creation time.
	if orders[0].ID != 2 || orders[1].ID != 3 || orders[2].ID != 1 {
		t.Fatalf("unexpected ordering: %d %d %d", orders[0].ID, orders[1].ID, orders[2].ID)
	}
}

func TestListAllAlwaysReloadsFromStorage(t *testing.T) {
	store := &testhelpers.StateStoreStub{}
	uc := newOrderUseCase(store)
	ctx := context.Background()

	if got := uc.ListAll(ctx); len(got) != 0 {
		t.Fatalf("expected empty list, got %d", len(got))
	}

	// Mutate storage behind the use case's back; the next listing must
	// see it.
	seedOrders(store)
	if got := uc.ListAll(ctx); len(got) != 3 {
		t.Fatalf("expected reloaded list of 3, got %d", len(got))
	}
}

func TestSearchEmptyQueryEqualsListAll(t *testing.T) {
	store := &testhelpers.StateStoreStub{}
	seedOrders(store)
	uc := newOrderUseCase(store)
	ctx := context.Background()

	all := uc.ListAll(ctx)
	found := uc.Search(ctx, "")
	if len(found) != len(all) {
		t.Fatalf("expected %d results, got %d", len(all), len(found))
	}
	for i := range all {
		if all[i].ID != found[i].ID {
			t.Fatalf("result %d differs: %d vs %d", i, all[i].ID, found[i].ID)
		}
	}
}

func TestSearchMatchesNumberDepartmentAndItemNames(t *testing.T) {
	store := &testhelpers.StateStoreStub{}
	seedOrders(store)
	uc := newOrderUseCase(store)
	ctx := context.Background()

	cases := []struct {
		name  string
		query string
		want  []int64
	}{
		{"by number", "po-0002", []int64{2}},
		{"by department", "finance", []int64{1}},
		{"by item name", "HDMI", []int64{2}},
		{"case insensitive item", "whiteboard", []int64{3}},
		{"shared prefix", "PO-", []int64{2, 3, 1}},
		{"no match", "forklift", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := uc.Search(ctx, tc.query)
			if len(got) != len(tc.want) {
				t.Fatalf("expected %d results, got %d", len(tc.want), len(got))
			}
			for i, id := range tc.want {
				if got[i].ID != id {
					t.Fatalf("result %d: expected id %d, got %d", i, id, got[i].ID)
				}
			}
		})
	}
}

func TestGetByID(t *testing.T) {
	store := &testhelpers.StateStoreStub{}
	seedOrders(store)
	uc := newOrderUseCase(store)
	ctx := context.Background()

	order, err := uc.GetByID(ctx, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.OrderNumber != "PO-0002-2025" {
		t.Fatalf("unexpected order: %+v", order)
	}

	if _, err := uc.GetByID(ctx, 999); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateStatusNotFound(t *testing.T) {
	store := &testhelpers.StateStoreStub{}
	uc := newOrderUseCase(store)

	_, err := uc.UpdateStatus(context.Background(), 404, model.OrderStatusRelease, model.RoleAdmin)
	if !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestUpdateStatusUserRoleMayOnlyRelease(t *testing.T) {
	store := &testhelpers.StateStoreStub{}
	seedOrders(store)
	uc := newOrderUseCase(store)
	ctx := context.Background()

	if _, err := uc.UpdateStatus(ctx, 1, model.OrderStatusCompleted, model.RoleUser); !errors.Is(err, domainErrors.ErrForbidden) {
		t.Fatalf("expected forbidden for user completing order, got %v", err)
	}
	if _, err := uc.UpdateStatus(ctx, 1, model.OrderStatusCanceled, model.RoleUser); !errors.Is(err, domainErrors.ErrForbidden) {
		t.Fatalf("expected forbidden for user canceling order, got %v", err)
	}

	order, err := uc.UpdateStatus(ctx, 1, model.OrderStatusRelease, model.RoleUser)
	if err != nil {
		t.Fatalf("expected user release to succeed, got %v", err)
	}
	if order.Status != model.OrderStatusRelease {
		t.Fatalf("expected release status, got %s", order.Status)
	}
	if !order.UpdatedAt.After(order.CreatedAt) {
		t.Fatal("expected updatedAt to be refreshed")
	}
	if store.Orders[0].Status != model.OrderStatusRelease {
		t.Fatal("expected transition to be persisted")
	}
}

func TestUpdateStatusAdminTransitions(t *testing.T) {
	cases := []struct {
		name    string
		from    model.OrderStatus
		to      model.OrderStatus
		allowed bool
	}{
		{"draft to release", model.OrderStatusDraft, model.OrderStatusRelease, true},
		{"draft to completed jump", model.OrderStatusDraft, model.OrderStatusCompleted, true},
		{"draft to canceled", model.OrderStatusDraft, model.OrderStatusCanceled, true},
		{"release to completed", model.OrderStatusRelease, model.OrderStatusCompleted, true},
		{"release to canceled", model.OrderStatusRelease, model.OrderStatusCanceled, true},
		{"release back to draft", model.OrderStatusRelease, model.OrderStatusDraft, false},
		{"completed is terminal", model.OrderStatusCompleted, model.OrderStatusCanceled, false},
		{"canceled is terminal", model.OrderStatusCanceled, model.OrderStatusRelease, false},
		{"no self transition", model.OrderStatusRelease, model.OrderStatusRelease, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &testhelpers.StateStoreStub{Orders: []model.Order{{
				ID: 1, OrderNumber: "PO-0001-2025", Status: tc.from,
				Items:     []model.LineItem{validItem()},
				CreatedAt: time.Now().Add(-time.Hour),
			}}}
			uc := newOrderUseCase(store)

			order, err := uc.UpdateStatus(context.Background(), 1, tc.to, model.RoleAdmin)
			if tc.allowed {
				if err != nil {
					t.Fatalf("expected transition to succeed, got %v", err)
				}
				if order.Status != tc.to {
					t.Fatalf("expected status %s, got %s", tc.to, order.Status)
				}
			} else if !errors.Is(err, domainErrors.ErrInvalidTransition) {
				t.Fatalf("expected invalid transition, got %v", err)
			}
		})
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	store := &testhelpers.StateStoreStub{}
	seedOrders(store)
	uc := newOrderUseCase(store)

	_, err := uc.UpdateStatus(context.Background(), 1, model.OrderStatus("pending"), model.RoleAdmin)
	if !errors.Is(err, domainErrors.ErrInvalidTransition) {
		t.Fatalf("expected invalid transition, got %v", err)
	}
}

func TestNextOrderNumberExceedsPersistedMaximum(t *testing.T) {
	store := &testhelpers.StateStoreStub{Sequence: 99}
	seedOrders(store)
	uc := newOrderUseCase(store)

	want := fmt.Sprintf("PO-0004-%d", time.Now().Year())
	if got := uc.NextOrderNumber(context.Background()); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

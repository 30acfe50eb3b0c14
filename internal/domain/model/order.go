package model

import "time"

// OrderStatus describes the purchase order lifecycle.
type OrderStatus string

const (
	OrderStatusDraft     OrderStatus = "draft"
	OrderStatusRelease   OrderStatus = "release"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCanceled  OrderStatus = "canceled"
)

// Valid reports whether the status is one of the defined lifecycle values.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusDraft, OrderStatusRelease, OrderStatusCompleted, OrderStatusCanceled:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are possible from the status.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCanceled
}

// LineItem is one purchased good within an order.
type LineItem struct {
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	Price       int64  `json:"price"`
	Unit        string `json:"unit"`
	Description string `json:"description"`
}

// Total returns quantity multiplied by unit price.
func (i LineItem) Total() int64 {
	return int64(i.Quantity) * i.Price
}

// Order describes a purchase order with header fields and line items.
// OrderDate is a calendar date in YYYY-MM-DD form, compared in local time.
type Order struct {
	ID          int64       `json:"id"`
	OrderNumber string      `json:"orderNumber"`
	OrderDate   string      `json:"orderDate"`
	Department  string      `json:"department"`
	Items       []LineItem  `json:"items"`
	Status      OrderStatus `json:"status"`
	CreatedBy   string      `json:"createdBy"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// EffectiveUpdatedAt returns the update timestamp, falling back to the
// creation timestamp when no mutation has been recorded.
func (o Order) EffectiveUpdatedAt() time.Time {
	if o.UpdatedAt.IsZero() {
		return o.CreatedAt
	}
	return o.UpdatedAt
}

// TotalPrice sums the totals of all line items.
func (o Order) TotalPrice() int64 {
	var sum int64
	for _, item := range o.Items {
		sum += item.Total()
	}
	return sum
}

// Departments lists the selectable department labels.
var Departments = []string{"Purchasing", "Finance", "IT", "HR", "Marketing", "Operational"}

// Units lists the selectable line item unit labels.
var Units = []string{"PCS", "BOX", "PACK", "RIM", "ROLL", "LSN", "UNIT", "SET", "MTR", "KG"}

// ValidDepartment reports whether the label belongs to the fixed department set.
func ValidDepartment(label string) bool {
	for _, d := range Departments {
		if d == label {
			return true
		}
	}
	return false
}

// ValidUnit reports whether the label belongs to the fixed unit set.
func ValidUnit(label string) bool {
	for _, u := range Units {
		if u == label {
			return true
		}
	}
	return false
}

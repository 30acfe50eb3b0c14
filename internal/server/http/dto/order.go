package dto

import "time"

// LineItemPayload describes one purchased good in requests and responses.
type LineItemPayload struct {
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	Price       int64  `json:"price"`
	Unit        string `json:"unit"`
	Description string `json:"description"`
}

// CreateOrderRequest carries the full two-step form submission. An empty
// order number lets the server mint the next one.
type CreateOrderRequest struct {
	OrderNumber string            `json:"orderNumber"`
	OrderDate   string            `json:"orderDate"`
	Department  string            `json:"department"`
	Items       []LineItemPayload `json:"items"`
}

// OrderResponse describes a persisted purchase order.
type OrderResponse struct {
	ID          int64             `json:"id"`
	OrderNumber string            `json:"orderNumber"`
	OrderDate   string            `json:"orderDate"`
	Department  string            `json:"department"`
	Items       []LineItemPayload `json:"items"`
	TotalPrice  int64             `json:"totalPrice"`
	Status      string            `json:"status"`
	CreatedBy   string            `json:"createdBy"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// StatusUpdateRequest carries the requested lifecycle transition.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// NextNumberResponse carries a freshly minted order number.
type NextNumberResponse struct {
	OrderNumber string `json:"orderNumber"`
}

// ValidateHeaderRequest carries the first form step for early validation.
type ValidateHeaderRequest struct {
	OrderDate  string `json:"orderDate"`
	Department string `json:"department"`
}

// ValidateItemsRequest carries the second form step for early validation.
type ValidateItemsRequest struct {
	Items []LineItemPayload `json:"items"`
}

// ErrorResponse is the uniform failure payload. Field and Item identify
// the first offending form field; Item is the 1-based line item position.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
	Item  int    `json:"item,omitempty"`
}

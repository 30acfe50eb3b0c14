package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ptanasia/potrack/internal/domain/model"
	"github.com/ptanasia/potrack/internal/server/http/dto"
	"github.com/ptanasia/potrack/internal/usecase"
)

// OrderHandler manages purchase order endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Create handles POST /api/orders.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.CreateOrder(c.Request.Context(), usecase.CreateOrderInput{
		OrderNumber: req.OrderNumber,
		OrderDate:   req.OrderDate,
		Department:  req.Department,
		Items:       toLineItems(req.Items),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

// List handles GET /api/orders. A non-empty q parameter narrows the
// result to orders matching by number, department or item name.
func (h *OrderHandler) List(c *gin.Context) {
	query := c.Query("q")
	var orders []model.Order
	if query == "" {
		orders = h.facade.ListOrders(c.Request.Context())
	} else {
		orders = h.facade.SearchOrders(c.Request.Context(), query)
	}

	c.JSON(http.StatusOK, toOrderResponses(orders))
}

// Get handles GET /api/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.GetOrder(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// UpdateStatus handles PATCH /api/orders/:id/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	var req dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.UpdateOrderStatus(c.Request.Context(), id, model.OrderStatus(req.Status))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(*order))
}

// NextNumber handles GET /api/orders/next-number.
func (h *OrderHandler) NextNumber(c *gin.Context) {
	number := h.facade.NextOrderNumber(c.Request.Context())
	c.JSON(http.StatusOK, dto.NextNumberResponse{OrderNumber: number})
}

// ValidateHeader handles POST /api/orders/validate/header.
func (h *OrderHandler) ValidateHeader(c *gin.Context) {
	var req dto.ValidateHeaderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.ValidateHeader(req.OrderDate, req.Department); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ValidateItems handles POST /api/orders/validate/items.
func (h *OrderHandler) ValidateItems(c *gin.Context) {
	var req dto.ValidateItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.ValidateItems(toLineItems(req.Items)); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

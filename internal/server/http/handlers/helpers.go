package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/ptanasia/potrack/internal/domain/errors"
	"github.com/ptanasia/potrack/internal/domain/model"
	"github.com/ptanasia/potrack/internal/server/http/dto"
)

// writeError maps domain failures onto HTTP statuses with a uniform body.
func writeError(c *gin.Context, err error) {
	var ve *domainErrors.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: ve.Error(), Field: ve.Field, Item: ve.Item})
	case errors.Is(err, domainErrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainErrors.ErrNoSession):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainErrors.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainErrors.ErrInvalidTransition):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
	}
}

func toUserResponse(user model.User) dto.UserResponse {
	return dto.UserResponse{
		Username: user.Username,
		Name:     user.Name,
		Role:     string(user.Role),
	}
}

func toLineItems(payload []dto.LineItemPayload) []model.LineItem {
	items := make([]model.LineItem, 0, len(payload))
	for _, p := range payload {
		items = append(items, model.LineItem{
			Name:        p.Name,
			Quantity:    p.Quantity,
			Price:       p.Price,
			Unit:        p.Unit,
			Description: p.Description,
		})
	}
	return items
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	items := make([]dto.LineItemPayload, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.LineItemPayload{
			Name:        item.Name,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Unit:        item.Unit,
			Description: item.Description,
		})
	}
	return dto.OrderResponse{
		ID:          order.ID,
		OrderNumber: order.OrderNumber,
		OrderDate:   order.OrderDate,
		Department:  order.Department,
		Items:       items,
		TotalPrice:  order.TotalPrice(),
		Status:      string(order.Status),
		CreatedBy:   order.CreatedBy,
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
}

func toOrderResponses(orders []model.Order) []dto.OrderResponse {
	response := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, toOrderResponse(o))
	}
	return response
}

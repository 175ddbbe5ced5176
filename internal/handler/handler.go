package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"warehouse-service/internal/inventory"
	"warehouse-service/internal/store"
)

// Handler exposes the inventory engine over HTTP.
type Handler struct {
	engine *inventory.Engine
}

// New creates a handler for the given engine.
func New(engine *inventory.Engine) *Handler {
	return &Handler{engine: engine}
}

// writeError maps engine errors to HTTP responses. Stock and capacity
// failures carry the available amount so the caller can correct the request.
func (h *Handler) writeError(c echo.Context, err error) error {
	var stockErr *inventory.InsufficientStockError
	var capacityErr *inventory.CapacityExceededError
	switch {
	case errors.Is(err, inventory.ErrItemNotFound), errors.Is(err, inventory.ErrCategoryNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": err.Error(),
		})
	case errors.As(err, &stockErr):
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":              stockErr.Error(),
			"available_quantity": stockErr.Available,
		})
	case errors.As(err, &capacityErr):
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error":           capacityErr.Error(),
			"available_space": capacityErr.Available,
		})
	case errors.Is(err, inventory.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": err.Error(),
		})
	case errors.Is(err, store.ErrConflict):
		return c.JSON(http.StatusConflict, echo.Map{
			"error": "inventory was modified concurrently, please retry",
		})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "internal server error",
		})
	}
}

func rejectionReason(err error) string {
	var stockErr *inventory.InsufficientStockError
	var capacityErr *inventory.CapacityExceededError
	switch {
	case errors.Is(err, inventory.ErrItemNotFound), errors.Is(err, inventory.ErrCategoryNotFound):
		return "not_found"
	case errors.As(err, &stockErr):
		return "insufficient_stock"
	case errors.As(err, &capacityErr):
		return "capacity_exceeded"
	case errors.Is(err, inventory.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, store.ErrConflict):
		return "conflict"
	default:
		return "storage"
	}
}

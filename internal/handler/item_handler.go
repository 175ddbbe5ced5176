package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"warehouse-service/internal/logger"
)

// ItemRequest defines the structure for item creation requests
type ItemRequest struct {
	Name            string `json:"name"`
	CategoryID      uint   `json:"category_id"`
	MaxQuantity     int    `json:"max_quantity"`
	InitialQuantity int    `json:"initial_quantity"`
}

// ListItems handles retrieving all items with their compartment names
func (h *Handler) ListItems(c echo.Context) error {
	log := logger.FromEcho(c)
	log.Info("Listing items")

	items, err := h.engine.ListItems(c.Request().Context())
	if err != nil {
		log.Error("Failed to list items", zap.Error(err))
		return h.writeError(c, err)
	}

	log.Info("Items retrieved successfully", zap.Int("count", len(items)))
	return c.JSON(http.StatusOK, items)
}

// CreateItem handles creating a new item, optionally with initial stock
func (h *Handler) CreateItem(c echo.Context) error {
	log := logger.FromEcho(c)
	log.Info("Creating new item")

	var req ItemRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	log.Info("Item creation request",
		zap.String("name", req.Name),
		zap.Uint("category_id", req.CategoryID),
		zap.Int("max_quantity", req.MaxQuantity),
		zap.Int("initial_quantity", req.InitialQuantity))

	item, err := h.engine.CreateItem(c.Request().Context(), req.Name, req.CategoryID,
		req.MaxQuantity, req.InitialQuantity)
	if err != nil {
		log.Error("Failed to create item",
			zap.String("name", req.Name),
			zap.Uint("category_id", req.CategoryID),
			zap.Error(err))
		return h.writeError(c, err)
	}

	log.Info("Item created successfully",
		zap.Uint("item_id", item.ID),
		zap.String("name", item.Name),
		zap.Int("current_quantity", item.CurrentQuantity))
	return c.JSON(http.StatusCreated, item)
}

// DeleteItem handles deleting an item, retracting its stock from the
// owning compartment
func (h *Handler) DeleteItem(c echo.Context) error {
	log := logger.FromEcho(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		log.Warn("Invalid item ID", zap.String("id", c.Param("id")), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid item ID",
		})
	}

	log.Info("Deleting item", zap.Uint64("item_id", id))

	item, err := h.engine.DeleteItem(c.Request().Context(), uint(id))
	if err != nil {
		log.Error("Failed to delete item", zap.Uint64("item_id", id), zap.Error(err))
		return h.writeError(c, err)
	}

	log.Info("Item deleted successfully",
		zap.Uint("item_id", item.ID),
		zap.String("name", item.Name),
		zap.Int("retracted_quantity", item.CurrentQuantity))
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Item deleted successfully",
		"item":    item,
	})
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"warehouse-service/internal/inventory"
	"warehouse-service/internal/logger"
	"warehouse-service/internal/metrics"
)

// SendRequest defines the structure for send movement requests
type SendRequest struct {
	ItemID   uint `json:"item_id"`
	Quantity int  `json:"quantity"`
}

// ListTransactions handles retrieving the movement history, most recent first
func (h *Handler) ListTransactions(c echo.Context) error {
	log := logger.FromEcho(c)
	log.Info("Listing transactions")

	transactions, err := h.engine.ListTransactions(c.Request().Context())
	if err != nil {
		log.Error("Failed to list transactions", zap.Error(err))
		return h.writeError(c, err)
	}

	log.Info("Transactions retrieved successfully", zap.Int("count", len(transactions)))
	return c.JSON(http.StatusOK, transactions)
}

// SendItems handles sending stock out of the warehouse
func (h *Handler) SendItems(c echo.Context) error {
	log := logger.FromEcho(c)

	var req SendRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	log.Info("Send request",
		zap.Uint("item_id", req.ItemID),
		zap.Int("quantity", req.Quantity))

	result, err := h.engine.SendItems(c.Request().Context(), req.ItemID, req.Quantity)
	if err != nil {
		metrics.RecordMovementRejection(rejectionReason(err))
		log.Error("Failed to send items",
			zap.Uint("item_id", req.ItemID),
			zap.Int("quantity", req.Quantity),
			zap.Error(err))
		return h.writeError(c, err)
	}

	metrics.RecordStockMovement(string(result.Transaction.Type), result.Transaction.Quantity)

	log.Info("Items sent successfully",
		zap.Uint("item_id", result.Item.ID),
		zap.String("name", result.Item.Name),
		zap.Int("quantity", result.Transaction.Quantity),
		zap.Int("remaining_quantity", result.Item.CurrentQuantity))
	return c.JSON(http.StatusOK, result)
}

// ReceiveItems handles receiving stock into an existing or new item
func (h *Handler) ReceiveItems(c echo.Context) error {
	log := logger.FromEcho(c)

	var req inventory.ReceiveRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Invalid request data",
		})
	}

	log.Info("Receive request",
		zap.Uint("item_id", req.ItemID),
		zap.Uint("category_id", req.CategoryID),
		zap.String("item_name", req.ItemName),
		zap.Int("quantity", req.Quantity))

	result, err := h.engine.ReceiveItems(c.Request().Context(), req)
	if err != nil {
		metrics.RecordMovementRejection(rejectionReason(err))
		log.Error("Failed to receive items",
			zap.Uint("item_id", req.ItemID),
			zap.Uint("category_id", req.CategoryID),
			zap.Int("quantity", req.Quantity),
			zap.Error(err))
		return h.writeError(c, err)
	}

	metrics.RecordStockMovement(string(result.Transaction.Type), result.Transaction.Quantity)

	log.Info("Items received successfully",
		zap.Uint("item_id", result.Item.ID),
		zap.String("name", result.Item.Name),
		zap.Int("quantity", result.Transaction.Quantity),
		zap.Int("current_quantity", result.Item.CurrentQuantity))
	return c.JSON(http.StatusOK, result)
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"warehouse-service/internal/logger"
	"warehouse-service/internal/metrics"
)

// ListCompartments handles retrieving all compartments with their items and
// utilization figures
func (h *Handler) ListCompartments(c echo.Context) error {
	log := logger.FromEcho(c)
	log.Info("Listing compartments")

	compartments, err := h.engine.ListCompartments(c.Request().Context())
	if err != nil {
		log.Error("Failed to list compartments", zap.Error(err))
		return h.writeError(c, err)
	}

	for _, compartment := range compartments {
		metrics.UpdateCompartmentUtilization(compartment.Name, compartment.UtilizationPercentage)
	}

	log.Info("Compartments retrieved successfully", zap.Int("count", len(compartments)))
	return c.JSON(http.StatusOK, compartments)
}

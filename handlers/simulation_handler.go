package handlers

import (
	"errors"
	"net/http"

	"lexsim-backend/models"
	"lexsim-backend/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SimulationHandler handles HTTP requests for simulation generation
type SimulationHandler struct {
	simulationService *service.SimulationService
	logger            *zap.Logger
}

// NewSimulationHandler creates a new simulation handler
func NewSimulationHandler(simulationService *service.SimulationService, logger *zap.Logger) *SimulationHandler {
	return &SimulationHandler{
		simulationService: simulationService,
		logger:            logger.With(zap.String("component", "simulation_handler")),
	}
}

// Health handles GET /health
func (h *SimulationHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Simulate handles POST /api/simulate
func (h *SimulationHandler) Simulate(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_REQUEST",
				"message": err.Error(),
			},
		})
		return
	}

	requestID := uuid.New()
	logger := h.logger.With(zap.String("request_id", requestID.String()))

	resp, err := h.simulationService.Simulate(c.Request.Context(), &req)
	if err != nil {
		logger.Error("simulation generation failed", zap.Error(err))
		status := http.StatusBadGateway
		if !errors.Is(err, service.ErrGenerationFailed) {
			status = http.StatusInternalServerError
		}
		c.JSON(status, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "GENERATION_FAILED",
				"message": "Error al generar la simulación. Intente nuevamente más tarde.",
			},
		})
		return
	}

	c.Header("X-Request-ID", requestID.String())
	c.JSON(http.StatusOK, resp)
}

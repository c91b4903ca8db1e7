package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rpgo/pension-drawdown/internal/api/models"
	"github.com/rpgo/pension-drawdown/internal/calculation"
	"github.com/rpgo/pension-drawdown/internal/config"
	"github.com/rpgo/pension-drawdown/internal/domain"
)

// SimulationHandler handles simulation requests
type SimulationHandler struct {
	engine *calculation.CalculationEngine
}

// NewSimulationHandler creates a new simulation handler
func NewSimulationHandler(engine *calculation.CalculationEngine) *SimulationHandler {
	if engine == nil {
		engine = calculation.NewCalculationEngine()
	}
	return &SimulationHandler{engine: engine}
}

// Simulate handles POST /api/v1/simulate
func (h *SimulationHandler) Simulate(c *gin.Context) {
	req, ok := bindSimulateRequest(c)
	if !ok {
		return
	}

	scenario := &domain.Scenario{Name: req.ScenarioName(), Household: req.SimulationConfig}
	summary, err := h.engine.RunScenario(c.Request.Context(), scenario)
	if err != nil {
		h.engine.Logger.Errorf("simulate %q: %v", scenario.Name, err)
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SimulateResponse{
		Status:  "completed",
		Summary: models.NewSimulationSummary(summary),
		Records: summary.Records,
	})
}

// bindSimulateRequest decodes and validates the request body, writing a 400 on failure.
func bindSimulateRequest(c *gin.Context) (models.SimulateRequest, bool) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    models.CodeInvalidRequest,
				Message: err.Error(),
			},
		})
		return req, false
	}
	if err := config.ValidateHousehold(req.SimulationConfig); err != nil {
		writeError(c, err)
		return req, false
	}
	return req, true
}

func writeError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrInvalidInput) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    models.CodeInvalidInput,
				Message: err.Error(),
			},
		})
		return
	}
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    models.CodeInternal,
			Message: err.Error(),
		},
	})
}

// Sweep handles POST /api/v1/sweep
func (h *SimulationHandler) Sweep(c *gin.Context) {
	req, ok := bindSimulateRequest(c)
	if !ok {
		return
	}

	points, err := h.engine.ReturnRateSweep(c.Request.Context(), req.SimulationConfig, nil)
	if err != nil {
		h.engine.Logger.Errorf("sweep %q: %v", req.ScenarioName(), err)
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.SweepResponse{
		Status: "completed",
		Name:   req.ScenarioName(),
		Points: points,
	})
}

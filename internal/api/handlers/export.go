package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rpgo/pension-drawdown/internal/api/models"
	"github.com/rpgo/pension-drawdown/internal/calculation"
	"github.com/rpgo/pension-drawdown/internal/domain"
	"github.com/rpgo/pension-drawdown/internal/output"
)

var contentTypes = map[string]string{
	"console": "text/plain; charset=utf-8",
	"chart":   "text/plain; charset=utf-8",
	"csv":     "text/csv; charset=utf-8",
	"json":    "application/json; charset=utf-8",
	"xlsx":    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	"pdf":     "application/pdf",
	"html":    "text/html; charset=utf-8",
}

// ContentType returns the MIME type served for a formatter name.
func ContentType(format string) string {
	if ct, ok := contentTypes[output.NormalizeFormatName(format)]; ok {
		return ct
	}
	return "application/octet-stream"
}

// ExportHandler renders a simulation with one of the registered formatters
type ExportHandler struct {
	engine *calculation.CalculationEngine
}

// NewExportHandler creates a new export handler
func NewExportHandler(engine *calculation.CalculationEngine) *ExportHandler {
	if engine == nil {
		engine = calculation.NewCalculationEngine()
	}
	return &ExportHandler{engine: engine}
}

// Export handles POST /api/v1/export/:format
func (h *ExportHandler) Export(c *gin.Context) {
	format := c.Param("format")
	formatter := output.GetFormatterByName(format)
	if formatter == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    models.CodeUnsupportedFormat,
				Message: output.UnsupportedFormatError(format).Error(),
				Details: map[string]interface{}{
					"formats": output.AvailableFormatterNames(),
				},
			},
		})
		return
	}

	req, ok := bindSimulateRequest(c)
	if !ok {
		return
	}

	cfg := &domain.Configuration{Scenarios: []domain.Scenario{{Name: req.ScenarioName(), Household: req.SimulationConfig}}}
	comparison, err := h.engine.RunScenarios(c.Request.Context(), cfg)
	if err != nil {
		writeError(c, err)
		return
	}

	data, err := formatter.Format(comparison)
	if err != nil {
		h.engine.Logger.Errorf("export %s: %v", formatter.Name(), err)
		writeError(c, err)
		return
	}

	filename := fmt.Sprintf("drawdown_report.%s", output.FileExtension(formatter.Name()))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, ContentType(formatter.Name()), data)
}

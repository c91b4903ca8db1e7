package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rpgo/pension-drawdown/internal/domain"
	"github.com/rpgo/pension-drawdown/internal/output"
)

// Health handles GET /health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Rules handles GET /api/v1/rules, listing the policy assumptions and available export formats.
func Rules(rules domain.PolicyRules) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"rules":       rules,
			"assumptions": rules.Assumptions(),
			"formats":     output.AvailableFormatterNames(),
		})
	}
}

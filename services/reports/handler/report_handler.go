package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ecobid/internal/reports"
	"ecobid/services/reports/helpers"
	"ecobid/utils"
)

// ReportHandler serves the environmental impact figures used by the
// compliance certificates and impact reports. The calculators are pure, so
// the handler has no collaborators.
type ReportHandler struct{}

func NewReportHandler() *ReportHandler {
	return &ReportHandler{}
}

// GetImpactHandler handles GET /reports/impact
func (h *ReportHandler) GetImpactHandler(c *gin.Context) {
	var req helpers.ImpactRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.HandleBindError(c, "GetImpactHandler", err)
		return
	}

	weightKg := reports.ParseWeightInKg(req.Quantity)
	stats := reports.CalculateImpact(req.Category, req.Quantity)

	utils.JSONResponse(c, http.StatusOK, helpers.NewImpactResponse(req, weightKg, stats), "impact calculated successfully")
	utils.LogSuccess("GetImpactHandler", "impact calculated successfully", map[string]any{
		"category":  req.Category,
		"quantity":  req.Quantity,
		"weight_kg": weightKg,
	})
}

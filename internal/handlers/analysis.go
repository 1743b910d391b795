package handlers

import (
	stderrors "errors"

	"fraudlens/internal/errors"
	"fraudlens/internal/models"
	"fraudlens/internal/services/dashboard"
	"fraudlens/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type AnalysisHandler struct {
	dashboardService dashboard.Service
}

func NewAnalysisHandler(dashboardService dashboard.Service) *AnalysisHandler {
	return &AnalysisHandler{
		dashboardService: dashboardService,
	}
}

// Analyze runs a full fraud analysis and returns the dashboard report.
func (h *AnalysisHandler) Analyze(c *fiber.Ctx) error {
	var req models.AnalysisRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	report, err := h.dashboardService.GenerateReport(c.Context(), req)
	if err != nil {
		var domainErr *errors.DomainError
		if stderrors.As(err, &domainErr) {
			return response.BadRequest(c, domainErr.Message)
		}
		return response.ServerError(c, "Failed to generate analysis report")
	}

	return response.Success(c, "Analysis report generated successfully", report)
}

package handlers

import (
	stderrors "errors"

	"fraudlens/internal/errors"
	"fraudlens/internal/models"
	"fraudlens/internal/services/risk"
	"fraudlens/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type RiskHandler struct {
	riskService risk.Service
}

func NewRiskHandler(riskService risk.Service) *RiskHandler {
	return &RiskHandler{
		riskService: riskService,
	}
}

// Evaluate returns the bare risk assessment without chart series.
func (h *RiskHandler) Evaluate(c *fiber.Ctx) error {
	var inputs models.FinancialInputs
	if err := c.BodyParser(&inputs); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	assessment, err := h.riskService.Evaluate(inputs)
	if err != nil {
		var domainErr *errors.DomainError
		if stderrors.As(err, &domainErr) {
			return response.BadRequest(c, domainErr.Message)
		}
		return response.ServerError(c, "Failed to evaluate risk")
	}

	return response.Success(c, "Risk evaluated successfully", assessment)
}

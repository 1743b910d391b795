package validation

import (
	"math"
	"testing"

	"fraudlens/internal/errors"
	"fraudlens/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFinancialInputs(t *testing.T) {
	t.Run("finite inputs pass", func(t *testing.T) {
		assert.NoError(t, ValidateFinancialInputs(models.FinancialInputs{
			RevenueGrowthPct:        25,
			CashflowGrowthPct:       -8,
			AccrualsPctOfAssets:     0,
			DebtToEquity:            2.5,
			WorkingCapitalChangePct: -30,
		}))
	})

	t.Run("non-finite input names the field", func(t *testing.T) {
		err := ValidateFinancialInputs(models.FinancialInputs{
			AccrualsPctOfAssets: math.NaN(),
		})
		require.Error(t, err)

		var domainErr *errors.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NON_FINITE_INPUT", domainErr.Code)
		assert.Contains(t, domainErr.Message, "accruals_pct_of_assets")
	})
}

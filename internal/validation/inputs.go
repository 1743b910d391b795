package validation

import (
	"fmt"
	"math"

	"fraudlens/internal/errors"
	"fraudlens/internal/models"
)

// ValidateFinancialInputs rejects non-finite metrics. NaN comparisons evaluate
// false, which would silently suppress rule triggering instead of erroring, so
// these are the one class of input the scoring service refuses to accept.
func ValidateFinancialInputs(in models.FinancialInputs) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"revenue_growth_pct", in.RevenueGrowthPct},
		{"cashflow_growth_pct", in.CashflowGrowthPct},
		{"accruals_pct_of_assets", in.AccrualsPctOfAssets},
		{"debt_to_equity", in.DebtToEquity},
		{"working_capital_change_pct", in.WorkingCapitalChangePct},
	}

	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &errors.DomainError{
				Code:    "NON_FINITE_INPUT",
				Message: fmt.Sprintf("%s must be a finite number", f.name),
			}
		}
	}

	return nil
}

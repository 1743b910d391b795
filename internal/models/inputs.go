package models

// FinancialInputs holds the five reported metrics a single analysis runs on.
// Values are taken as-is from the caller; the service accepts any finite
// real number even when it falls outside the usual reporting ranges.
type FinancialInputs struct {
	RevenueGrowthPct        float64 `json:"revenue_growth_pct"`
	CashflowGrowthPct       float64 `json:"cashflow_growth_pct"`
	AccrualsPctOfAssets     float64 `json:"accruals_pct_of_assets"`
	DebtToEquity            float64 `json:"debt_to_equity"`
	WorkingCapitalChangePct float64 `json:"working_capital_change_pct"`
}

// AnalysisRequest is the payload of a full dashboard analysis. Company and
// year label the report only; they never feed the scoring rules.
type AnalysisRequest struct {
	Company string `json:"company"`
	Year    int    `json:"year"`
	FinancialInputs
}

// Package risk evaluates the forensic red-flag rule set against a set of
// reported financial metrics and derives the composite fraud score.
package risk

import (
	"math"

	"fraudlens/internal/models"
	"fraudlens/internal/validation"
)

// Service evaluates financial inputs against the forensic rule set.
type Service interface {
	Evaluate(inputs models.FinancialInputs) (models.RiskAssessment, error)
}

type rule struct {
	id        string
	reason    string
	triggered func(models.FinancialInputs) bool
}

// Rules are evaluated in this order; each appends its reason independently,
// so several may fire on the same inputs.
var rules = []rule{
	{
		id:     "revenue_cashflow_divergence",
		reason: "Revenue growing much faster than cash flows",
		triggered: func(in models.FinancialInputs) bool {
			return in.RevenueGrowthPct > in.CashflowGrowthPct*2
		},
	},
	{
		id:     "high_accruals",
		reason: "High accruals → possible earnings manipulation",
		triggered: func(in models.FinancialInputs) bool {
			return in.AccrualsPctOfAssets > 10
		},
	},
	{
		id:     "high_leverage",
		reason: "High leverage → financial stress",
		triggered: func(in models.FinancialInputs) bool {
			return in.DebtToEquity > 1.2
		},
	},
	{
		id:     "working_capital_swing",
		reason: "Unusual working capital movement",
		triggered: func(in models.FinancialInputs) bool {
			return in.WorkingCapitalChangePct > 10
		},
	},
}

type service struct {
	metrics MetricsCollector
}

// NewService returns a risk evaluation service. The collector must not be
// nil; pass NoopMetricsCollector when metrics are not wanted.
func NewService(metrics MetricsCollector) Service {
	return &service{metrics: metrics}
}

// Evaluate runs the rule set in its fixed order and derives the score, label
// and proxy ratios. It is a pure function of its inputs: identical inputs
// always produce identical assessments.
func (s *service) Evaluate(in models.FinancialInputs) (models.RiskAssessment, error) {
	if err := validation.ValidateFinancialInputs(in); err != nil {
		s.metrics.RecordError("evaluate", "non_finite_input")
		return models.RiskAssessment{}, err
	}

	flags := make([]string, 0, len(rules))
	for _, r := range rules {
		if r.triggered(in) {
			flags = append(flags, r.reason)
			s.metrics.RecordRuleTrigger(r.id)
		}
	}

	score := fraudScore(len(flags))
	label := labelFor(score)

	assessment := models.RiskAssessment{
		Flags:         flags,
		FlagCount:     len(flags),
		FraudScore:    score,
		RiskLabel:     label,
		AltmanZProxy:  round2(3.0 - in.DebtToEquity - in.AccrualsPctOfAssets/20),
		BeneishMProxy: round2(in.AccrualsPctOfAssets/8 + in.RevenueGrowthPct/60),
	}

	s.metrics.RecordEvaluation(string(label), assessment.FlagCount)
	return assessment, nil
}

// fraudScore is a step function of the flag count, clamped at 100.
func fraudScore(flagCount int) int {
	score := 20 + 20*flagCount
	if score > 100 {
		return 100
	}
	return score
}

// labelFor buckets a score into LOW / MODERATE / HIGH. Lower bounds are
// inclusive: exactly 40 is MODERATE, exactly 70 is HIGH.
func labelFor(score int) models.RiskLabel {
	switch {
	case score < 40:
		return models.RiskLow
	case score < 70:
		return models.RiskModerate
	default:
		return models.RiskHigh
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

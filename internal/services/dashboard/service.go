// Package dashboard composes risk assessments and chart series into the
// report payload the monitoring frontend renders.
package dashboard

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"time"

	"fraudlens/internal/models"
	"fraudlens/internal/repositories/cache"
	"fraudlens/internal/services/benford"
	"fraudlens/internal/services/risk"

	"github.com/google/uuid"
)

// Service builds full dashboard reports.
type Service interface {
	GenerateReport(ctx context.Context, req models.AnalysisRequest) (*models.DashboardReport, error)
}

// riskTrendHistory is illustrative trend decoration for the four periods
// before the current one. It is not derived from stored history; there is
// none.
var riskTrendHistory = []int{30, 45, 55, 65}

// gaugeBands are the fixed gauge segments: low, moderate, high.
var gaugeBands = []models.GaugeBand{
	{From: 0, To: 40, Color: "#2ecc71"},
	{From: 40, To: 70, Color: "#f1c40f"},
	{From: 70, To: 100, Color: "#e74c3c"},
}

type service struct {
	risk    risk.Service
	sampler *benford.Sampler
	cache   cache.Cache
	newRand func() *rand.Rand
	now     func() time.Time
}

// NewService wires the report composer. newRand supplies a fresh generator
// per report so concurrent requests never share one; pass nil for the
// time-seeded default.
func NewService(riskSvc risk.Service, sampler *benford.Sampler, reportCache cache.Cache, newRand func() *rand.Rand) Service {
	if newRand == nil {
		newRand = benford.NewRand
	}
	return &service{
		risk:    riskSvc,
		sampler: sampler,
		cache:   reportCache,
		newRand: newRand,
		now:     time.Now,
	}
}

func (s *service) GenerateReport(ctx context.Context, req models.AnalysisRequest) (*models.DashboardReport, error) {
	if req.Year == 0 {
		req.Year = s.now().Year()
	}

	key := cache.ReportKey(req)
	var cached models.DashboardReport
	if hit, err := s.cache.Get(ctx, key, &cached); err != nil {
		log.Printf("report cache read failed: %v", err)
	} else if hit {
		return &cached, nil
	}

	assessment, err := s.risk.Evaluate(req.FinancialInputs)
	if err != nil {
		return nil, err
	}

	sample := s.sampler.Sample(s.newRand())

	report := &models.DashboardReport{
		ReportID:         uuid.NewString(),
		Company:          req.Company,
		Year:             req.Year,
		GeneratedAt:      s.now().UTC(),
		Assessment:       assessment,
		Gauge:            models.GaugeSpec{Value: assessment.FraudScore, Bands: gaugeBands},
		StressIndicators: stressIndicators(req.FinancialInputs),
		RiskTrend:        riskTrend(req.Year, assessment.FraudScore),
		Benford:          benfordSeries(sample),
		Summary:          summary(assessment.FlagCount),
	}

	if err := s.cache.Set(ctx, key, report); err != nil {
		log.Printf("report cache write failed: %v", err)
	}

	return report, nil
}

func stressIndicators(in models.FinancialInputs) []models.MetricBar {
	return []models.MetricBar{
		{Metric: "Revenue Growth", Value: in.RevenueGrowthPct},
		{Metric: "Cash Flow Growth", Value: in.CashflowGrowthPct},
		{Metric: "Accruals", Value: in.AccrualsPctOfAssets},
		{Metric: "Debt-Equity", Value: in.DebtToEquity * 10}, // scaled for chart visibility
		{Metric: "WC Change", Value: in.WorkingCapitalChangePct},
	}
}

func riskTrend(year, currentScore int) []models.TrendPoint {
	points := make([]models.TrendPoint, 0, len(riskTrendHistory)+1)
	firstYear := year - len(riskTrendHistory)
	for i, score := range riskTrendHistory {
		points = append(points, models.TrendPoint{
			Period: strconv.Itoa(firstYear + i),
			Score:  score,
		})
	}
	return append(points, models.TrendPoint{Period: strconv.Itoa(year), Score: currentScore})
}

func benfordSeries(sample models.BenfordSample) []models.BenfordPoint {
	points := make([]models.BenfordPoint, 0, 9)
	for d := 1; d <= 9; d++ {
		points = append(points, models.BenfordPoint{Digit: d, Count: sample.DigitCounts[d]})
	}
	return points
}

func summary(flagCount int) string {
	if flagCount == 0 {
		return "No major red flags detected"
	}
	return fmt.Sprintf("%d forensic red flag(s) detected", flagCount)
}

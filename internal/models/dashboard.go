package models

import "time"

// GaugeBand is one colored segment of the risk gauge.
type GaugeBand struct {
	From  int    `json:"from"`
	To    int    `json:"to"`
	Color string `json:"color"`
}

// GaugeSpec describes the fraud risk meter: the needle value plus the fixed
// low/moderate/high color bands.
type GaugeSpec struct {
	Value int         `json:"value"`
	Bands []GaugeBand `json:"bands"`
}

// MetricBar is one bar of the financial stress indicator chart.
type MetricBar struct {
	Metric string  `json:"metric"`
	Value  float64 `json:"value"`
}

// TrendPoint is one point of the fraud risk trend line.
type TrendPoint struct {
	Period string `json:"period"`
	Score  int    `json:"score"`
}

// BenfordPoint is one bar of the first-digit distribution chart.
type BenfordPoint struct {
	Digit int `json:"digit"`
	Count int `json:"count"`
}

// DashboardReport bundles everything the monitoring dashboard renders for a
// single analysis: the assessment itself plus the chart series derived from it.
type DashboardReport struct {
	ReportID         string         `json:"report_id"`
	Company          string         `json:"company,omitempty"`
	Year             int            `json:"year"`
	GeneratedAt      time.Time      `json:"generated_at"`
	Assessment       RiskAssessment `json:"assessment"`
	Gauge            GaugeSpec      `json:"gauge"`
	StressIndicators []MetricBar    `json:"stress_indicators"`
	RiskTrend        []TrendPoint   `json:"risk_trend"`
	Benford          []BenfordPoint `json:"benford"`
	Summary          string         `json:"summary"`
}

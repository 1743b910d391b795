package models

// RiskLabel classifies a fraud score into one of three bands.
type RiskLabel string

const (
	RiskLow      RiskLabel = "LOW"
	RiskModerate RiskLabel = "MODERATE"
	RiskHigh     RiskLabel = "HIGH"
)

// RiskAssessment is the result of evaluating the forensic rule set against
// one FinancialInputs snapshot.
type RiskAssessment struct {
	Flags         []string  `json:"flags"`
	FlagCount     int       `json:"flag_count"`
	FraudScore    int       `json:"fraud_score"`
	RiskLabel     RiskLabel `json:"risk_label"`
	AltmanZProxy  float64   `json:"altman_z_proxy"`
	BeneishMProxy float64   `json:"beneish_m_proxy"`
}

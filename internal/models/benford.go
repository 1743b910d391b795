package models

// BenfordSample is a synthetic first-digit sample drawn from the theoretical
// Benford distribution. DigitCounts always carries all nine digits; digits
// that were never drawn are reported with a zero count.
type BenfordSample struct {
	SampleSize  int         `json:"sample_size"`
	DigitCounts map[int]int `json:"digit_counts"`
}

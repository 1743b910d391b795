package errors

var (
	ErrDistributionLength = &DomainError{
		Code:    "INVALID_DISTRIBUTION",
		Message: "benford distribution must have exactly 9 weights",
	}
	ErrNegativeWeight = &DomainError{
		Code:    "INVALID_DISTRIBUTION",
		Message: "benford distribution weights must be non-negative",
	}
	ErrDistributionSum = &DomainError{
		Code:    "INVALID_DISTRIBUTION",
		Message: "benford distribution weights must sum to 1",
	}
	ErrInvalidSampleSize = &DomainError{
		Code:    "INVALID_SAMPLE_SIZE",
		Message: "benford sample size must be positive",
	}
)

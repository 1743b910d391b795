// Package errors defines the domain error type shared across services.
package errors

import "fmt"

// DomainError is a coded error surfaced to API clients.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

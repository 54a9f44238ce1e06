package entity

import "fmt"

// DomainError reports an input that puts a trigonometric evaluation outside
// its physical domain, e.g. sin(incidence)/n > 1. The formulas have no
// fallback interpretation for such inputs, so it propagates uncaught.
type DomainError struct {
	Quantity string
	Value    float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("non-physical %s: %g", e.Quantity, e.Value)
}

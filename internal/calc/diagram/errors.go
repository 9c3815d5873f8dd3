package diagram

import "fmt"

// RangeError reports a load, moment, or UDL placed outside the beam. Index
// is 1-based to match the form labels; it is zero for the UDL.
type RangeError struct {
	Item      string
	Index     int
	PositionM float64
	EndM      float64
	SpanM     float64
}

func (e *RangeError) Error() string {
	if e.Item == "udl" {
		return fmt.Sprintf("udl range %.3g..%.3g m is invalid for a %.3g m beam", e.PositionM, e.EndM, e.SpanM)
	}
	return fmt.Sprintf("%s %d at %.3g m is outside the beam (0..%.3g m)", e.Item, e.Index, e.PositionM, e.SpanM)
}

// DomainError reports a non-positive span, modulus, or inertia. The form
// clamps these, but the engine checks anyway.
type DomainError struct {
	Field string
	Value float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s must be positive, got %g", e.Field, e.Value)
}

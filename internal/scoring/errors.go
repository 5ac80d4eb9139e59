package scoring

import "fmt"

// WeightsError is returned when scoring weights are out of range or do not sum to 1.0
type WeightsError struct {
	Weights string
	Message string
	Cause   error
}

func (e *WeightsError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid scoring weights %s: %s: %v", e.Weights, e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid scoring weights %s: %s", e.Weights, e.Message)
}

func (e *WeightsError) Unwrap() error {
	return e.Cause
}

package parsing

import "fmt"

// ExtractorFailure records that a single field extractor failed, by returning an
// error or by panicking. It never leaves the profile assembler; the field is left empty.
type ExtractorFailure struct {
	Field string
	Cause error
}

func (e *ExtractorFailure) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extractor %s failed: %v", e.Field, e.Cause)
	}
	return fmt.Sprintf("extractor %s failed", e.Field)
}

func (e *ExtractorFailure) Unwrap() error {
	return e.Cause
}

// PanicError wraps a value recovered from a panicking extractor
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

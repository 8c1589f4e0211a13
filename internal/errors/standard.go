// Package errors provides standardized error messaging for the type checker.
package errors

import (
	"fmt"
	"runtime"
)

// ErrorCategory tags which subsystem raised a StandardError.
type ErrorCategory string

// CategoryVariance is the only category this checker currently raises: a
// fatal, structural bug in the variance engine's own fixpoint projection.
const CategoryVariance ErrorCategory = "VARIANCE"

// StandardError provides a consistent error format across the checker.
type StandardError struct {
	Category ErrorCategory
	Code     string
	Message  string
	Context  map[string]interface{}
	Caller   string
}

// Error implements the error interface.
func (e *StandardError) Error() string {
	return fmt.Sprintf("[%s:%s] %s (caller: %s)", e.Category, e.Code, e.Message, e.Caller)
}

// NewStandardError creates a new standardized error.
func NewStandardError(category ErrorCategory, code, message string, context map[string]interface{}) *StandardError {
	pc, _, _, ok := runtime.Caller(1)

	caller := "unknown"
	if ok {
		if fn := runtime.FuncForPC(pc); fn != nil {
			caller = fn.Name()
		}
	}

	return &StandardError{
		Category: category,
		Code:     code,
		Message:  message,
		Context:  context,
		Caller:   caller,
	}
}

// VarianceProjectionBug builds the single fatal error the variance engine
// can return: a parameter discovered by the fixpoint that is absent from
// the class's own initial seed, which indicates a corrupted environment
// rather than anything a caller did wrong.
func VarianceProjectionBug(class, param string) *StandardError {
	return NewStandardError(CategoryVariance, "UNKNOWN_PROJECTION_PARAMETER",
		fmt.Sprintf("parameter %q of class %q was produced by the fixpoint but is absent from its own declaration", param, class),
		map[string]interface{}{"class": class, "param": param})
}

package grammar

import (
	"fmt"
	"strings"
)

// ValidationError aggregates all problems found in a grammar.
type ValidationError struct {
	Errors []error
}

// Error implements error.
func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return ""
	}
	if len(e.Errors) == 1 {
		return "invalid grammar: " + e.Errors[0].Error()
	}
	msg := make([]string, len(e.Errors)+1)
	msg[0] = "invalid grammar:"
	for n, err := range e.Errors {
		msg[n+1] = "  " + err.Error()
	}
	return strings.Join(msg, "\n")
}

// Addf records a problem.
func (e *ValidationError) Addf(format string, args ...interface{}) *ValidationError {
	e.Errors = append(e.Errors, fmt.Errorf(format, args...))
	return e
}

// Aggregate returns the error if any problem was recorded.
func (e *ValidationError) Aggregate() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e
}

// MatchError reports the parameter which failed to parse.
type MatchError struct {
	Command string
	Param   string
	Err     error
}

// Error implements error.
func (e *MatchError) Error() string {
	return fmt.Sprintf("%s.%s: %v", e.Command, e.Param, e.Err)
}

// Unwrap returns the parser error.
func (e *MatchError) Unwrap() error {
	return e.Err
}

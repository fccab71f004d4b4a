package errors

import (
	"fmt"
	"strings"
)

// AggregateError reports that one or more tasks from a concurrent batch
// failed. It carries the total batch size and the underlying errors in
// task-submission order. Successful task results are not retained.
type AggregateError struct {
	Total int     // Number of tasks in the batch
	Errs  []error // Errors from failed tasks, in submission order
}

// NewAggregate creates an AggregateError for a batch of total tasks.
// It must only be called with at least one underlying error.
func NewAggregate(total int, errs []error) *AggregateError {
	return &AggregateError{Total: total, Errs: errs}
}

// Failed returns the number of failed tasks.
func (e *AggregateError) Failed() int {
	return len(e.Errs)
}

func (e *AggregateError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d out of %d build tasks failed", len(e.Errs), e.Total)
	for _, err := range e.Errs {
		b.WriteString("\n  - ")
		b.WriteString(err.Error())
	}
	return b.String()
}

// Unwrap exposes the underlying errors to errors.Is and errors.As.
func (e *AggregateError) Unwrap() []error {
	return e.Errs
}

// ExitCode returns the runtime exit code; an aggregate failure is always
// a runtime failure regardless of the kinds of its parts.
func (e *AggregateError) ExitCode() int {
	return ExitRuntimeError
}

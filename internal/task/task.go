// Package task provides a generic batch primitive for running
// independent tasks concurrently and aggregating their outcomes.
package task

import (
	"context"
	"sync"

	"github.com/catalyst/elements-build/internal/errors"
)

// Task is one unit of asynchronous work producing a value of type T.
type Task[T any] func(ctx context.Context) (T, error)

// outcome records the result slot of a single task.
type outcome[T any] struct {
	value T
	err   error
}

// RunAll starts every task concurrently and waits for all of them to
// settle; it never abandons pending work on first error. On full success
// it returns the task values index-aligned with the input. If one or
// more tasks fail it returns an *errors.AggregateError carrying the
// failed errors in submission order; successful values are discarded in
// that case.
//
// RunAll has no retry logic and no timeout: the context is passed
// through to the tasks unmodified, and a hanging task hangs the batch.
func RunAll[T any](ctx context.Context, tasks []Task[T]) ([]T, error) {
	if len(tasks) == 0 {
		return []T{}, nil
	}

	outcomes := make([]outcome[T], len(tasks))

	var wg sync.WaitGroup
	for i, t := range tasks {
		wg.Add(1)
		go func(i int, t Task[T]) {
			defer wg.Done()
			v, err := t(ctx)
			outcomes[i] = outcome[T]{value: v, err: err}
		}(i, t)
	}
	wg.Wait()

	var errs []error
	for _, o := range outcomes {
		if o.err != nil {
			errs = append(errs, o.err)
		}
	}
	if len(errs) > 0 {
		return nil, errors.NewAggregate(len(tasks), errs)
	}

	values := make([]T, len(tasks))
	for i, o := range outcomes {
		values[i] = o.value
	}
	return values, nil
}

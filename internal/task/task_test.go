package task

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalyst/elements-build/internal/errors"
)

func TestRunAll_Empty(t *testing.T) {
	t.Parallel()
	values, err := RunAll(context.Background(), []Task[int]{})
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestRunAll_ResultsAreIndexAligned(t *testing.T) {
	t.Parallel()
	// Later tasks finish first; the result order must still follow the
	// submission order, not the completion order.
	tasks := []Task[int]{
		func(context.Context) (int, error) {
			time.Sleep(30 * time.Millisecond)
			return 1, nil
		},
		func(context.Context) (int, error) {
			time.Sleep(10 * time.Millisecond)
			return 2, nil
		},
		func(context.Context) (int, error) {
			return 3, nil
		},
	}

	values, err := RunAll(context.Background(), tasks)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, values)
}

func TestRunAll_StartsTasksConcurrently(t *testing.T) {
	t.Parallel()
	// Every task blocks until all of them have started; a sequential
	// runner would deadlock here.
	const n = 4
	var wg sync.WaitGroup
	wg.Add(n)

	tasks := make([]Task[struct{}], n)
	for i := range tasks {
		tasks[i] = func(context.Context) (struct{}, error) {
			wg.Done()
			wg.Wait()
			return struct{}{}, nil
		}
	}

	done := make(chan error, 1)
	go func() {
		_, err := RunAll(context.Background(), tasks)
		done <- err
	}()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("RunAll did not run the tasks concurrently")
	}
}

func TestRunAll_PartialFailure(t *testing.T) {
	t.Parallel()
	e1 := errors.New("E1")
	e3 := errors.New("E3")

	tasks := []Task[int]{
		func(context.Context) (int, error) { return 0, nil },
		func(context.Context) (int, error) { return 0, e1 },
		func(context.Context) (int, error) { return 0, nil },
		func(context.Context) (int, error) { return 0, e3 },
	}

	values, err := RunAll(context.Background(), tasks)
	require.Error(t, err)
	assert.Nil(t, values, "successful values are discarded on any failure")

	var agg *errors.AggregateError
	require.ErrorAs(t, err, &agg)
	assert.Equal(t, 2, agg.Failed())
	assert.Equal(t, 4, agg.Total)
	assert.Equal(t, []error{e1, e3}, agg.Errs, "errors keep submission index order")
}

func TestRunAll_AllFail(t *testing.T) {
	t.Parallel()
	tasks := []Task[string]{
		func(context.Context) (string, error) { return "", errors.New("a") },
		func(context.Context) (string, error) { return "", errors.New("b") },
	}

	_, err := RunAll(context.Background(), tasks)
	var agg *errors.AggregateError
	require.ErrorAs(t, err, &agg)
	assert.Equal(t, 2, agg.Failed())
	assert.Equal(t, 2, agg.Total)
}

func TestRunAll_WaitsForAllToSettle(t *testing.T) {
	t.Parallel()
	// A failing task must not short-circuit the slow sibling.
	var slowFinished bool
	var mu sync.Mutex

	tasks := []Task[int]{
		func(context.Context) (int, error) {
			return 0, errors.New("fast failure")
		},
		func(context.Context) (int, error) {
			time.Sleep(50 * time.Millisecond)
			mu.Lock()
			slowFinished = true
			mu.Unlock()
			return 1, nil
		},
	}

	_, err := RunAll(context.Background(), tasks)
	require.Error(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.True(t, slowFinished, "RunAll must wait for every task to settle")
}

package builder

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalyst/elements-build/internal/bundle"
	"github.com/catalyst/elements-build/internal/errors"
)

func TestBuild_FlattensInSubmissionOrder(t *testing.T) {
	t.Parallel()
	descriptors := []bundle.Descriptor{
		{Entry: "d0.ts"},
		{Entry: "d1.ts"},
	}
	bundler := bundle.BundlerFunc(func(_ context.Context, d bundle.Descriptor) ([]string, error) {
		switch d.Entry {
		case "d0.ts":
			// The first task finishing last must not affect ordering.
			time.Sleep(20 * time.Millisecond)
			return []string{"a.mjs", "b.mjs"}, nil
		default:
			return []string{"c.mjs"}, nil
		}
	})

	artifacts, err := Build(context.Background(), descriptors, bundler)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.mjs", "b.mjs", "c.mjs"}, artifacts)
}

func TestBuild_DuplicateNamesPreserved(t *testing.T) {
	t.Parallel()
	descriptors := []bundle.Descriptor{{Entry: "a.ts"}, {Entry: "b.ts"}}
	bundler := bundle.BundlerFunc(func(context.Context, bundle.Descriptor) ([]string, error) {
		return []string{"common/x.mjs"}, nil
	})

	artifacts, err := Build(context.Background(), descriptors, bundler)
	require.NoError(t, err)
	assert.Equal(t, []string{"common/x.mjs", "common/x.mjs"}, artifacts)
}

func TestBuild_EmptyDescriptorsSkipsBundler(t *testing.T) {
	t.Parallel()
	var calls atomic.Int32
	bundler := bundle.BundlerFunc(func(context.Context, bundle.Descriptor) ([]string, error) {
		calls.Add(1)
		return nil, nil
	})

	artifacts, err := Build(context.Background(), nil, bundler)
	require.NoError(t, err)
	assert.Empty(t, artifacts)
	assert.Zero(t, calls.Load(), "the bundler must not be invoked for a zero-descriptor build")
}

func TestBuild_AggregateFailurePropagatesUnchanged(t *testing.T) {
	t.Parallel()
	e1 := errors.New("d1 broke")
	descriptors := []bundle.Descriptor{{Entry: "d0.ts"}, {Entry: "d1.ts"}, {Entry: "d2.ts"}}
	bundler := bundle.BundlerFunc(func(_ context.Context, d bundle.Descriptor) ([]string, error) {
		if d.Entry == "d1.ts" {
			return nil, e1
		}
		return []string{d.Entry + ".out"}, nil
	})

	artifacts, err := Build(context.Background(), descriptors, bundler)
	assert.Nil(t, artifacts, "no partial artifacts on failure")

	var agg *errors.AggregateError
	require.ErrorAs(t, err, &agg)
	assert.Equal(t, 1, agg.Failed())
	assert.Equal(t, 3, agg.Total)
	assert.Equal(t, []error{e1}, agg.Errs)
}

// Package builder composes descriptor expansion with the bundler
// collaborator and aggregates the results of concurrent build tasks.
package builder

import (
	"context"

	"github.com/catalyst/elements-build/internal/bundle"
	"github.com/catalyst/elements-build/internal/task"
)

// Build runs every descriptor through the bundler concurrently and
// flattens the per-descriptor artifact lists, in submission order, into
// one list. Duplicate names across descriptors are preserved.
//
// With zero descriptors it returns an empty list without invoking the
// bundler. If any task fails the aggregate failure is returned unchanged
// and no artifacts are reported, even though every task ran to
// completion.
func Build(ctx context.Context, descriptors []bundle.Descriptor, bundler bundle.Bundler) ([]string, error) {
	tasks := make([]task.Task[[]string], len(descriptors))
	for i, d := range descriptors {
		d := d
		tasks[i] = func(ctx context.Context) ([]string, error) {
			return bundler.Bundle(ctx, d)
		}
	}

	lists, err := task.RunAll(ctx, tasks)
	if err != nil {
		return nil, err
	}

	artifacts := []string{}
	for _, list := range lists {
		artifacts = append(artifacts, list...)
	}
	return artifacts, nil
}

package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestAggregateError_Message(t *testing.T) {
	t.Parallel()
	agg := NewAggregate(4, []error{
		New("entry a.ts failed"),
		New("entry c.ts failed"),
	})

	msg := agg.Error()
	if !strings.HasPrefix(msg, "2 out of 4 build tasks failed") {
		t.Errorf("message = %q, want prefix %q", msg, "2 out of 4 build tasks failed")
	}
	if !strings.Contains(msg, "entry a.ts failed") || !strings.Contains(msg, "entry c.ts failed") {
		t.Errorf("message should contain every nested error, got %q", msg)
	}
	if agg.Failed() != 2 {
		t.Errorf("Failed() = %d, want 2", agg.Failed())
	}
}

func TestAggregateError_ErrorOrder(t *testing.T) {
	t.Parallel()
	first := New("first")
	second := New("second")
	agg := NewAggregate(2, []error{first, second})

	msg := agg.Error()
	if strings.Index(msg, "first") > strings.Index(msg, "second") {
		t.Errorf("nested errors should appear in submission order, got %q", msg)
	}
}

func TestAggregateError_Unwrap(t *testing.T) {
	t.Parallel()
	cause := New("inner")
	agg := NewAggregate(3, []error{New("other"), cause})

	if !errors.Is(agg, cause) {
		t.Error("errors.Is should traverse into the aggregated errors")
	}

	var be *BuildError
	if !errors.As(agg, &be) {
		t.Error("errors.As should find a BuildError among the aggregated errors")
	}
}

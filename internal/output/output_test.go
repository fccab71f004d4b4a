package output

import (
	"bytes"
	"strings"
	"testing"
)

func newTestWriter(color bool) (*Writer, *bytes.Buffer, *bytes.Buffer) {
	var out, errBuf bytes.Buffer
	return NewWithWriters(&out, &errBuf, color), &out, &errBuf
}

func TestPrintln_GoesToStdout(t *testing.T) {
	t.Parallel()
	w, out, errBuf := newTestWriter(false)

	w.Println("hello %s", "world")

	if out.String() != "hello world\n" {
		t.Errorf("stdout = %q", out.String())
	}
	if errBuf.Len() != 0 {
		t.Errorf("stderr should be empty, got %q", errBuf.String())
	}
}

func TestWarning_GoesToStderrWithPrefix(t *testing.T) {
	t.Parallel()
	w, out, errBuf := newTestWriter(false)

	w.Warning("something odd")

	if !strings.HasPrefix(errBuf.String(), "warning: ") {
		t.Errorf("stderr = %q, want warning prefix", errBuf.String())
	}
	if out.Len() != 0 {
		t.Errorf("stdout should be empty, got %q", out.String())
	}
}

func TestQuiet_SuppressesInfoNotErrors(t *testing.T) {
	t.Parallel()
	w, out, errBuf := newTestWriter(false)
	w.SetQuiet(true)

	w.Info("informational")
	w.StepStart("bundle")
	w.StepSuccess("bundle")
	w.ErrorPrefix("broken")

	if out.Len() != 0 {
		t.Errorf("quiet mode should suppress info output, got %q", out.String())
	}
	if !strings.Contains(errBuf.String(), "error: broken") {
		t.Errorf("errors must not be suppressed, got %q", errBuf.String())
	}
}

func TestStepFailed_AlwaysPrinted(t *testing.T) {
	t.Parallel()
	w, _, errBuf := newTestWriter(false)
	w.SetQuiet(true)

	w.StepFailed("bundle", errTest("boom"))

	if !strings.Contains(errBuf.String(), "bundle failed: boom") {
		t.Errorf("stderr = %q", errBuf.String())
	}
}

type errTest string

func (e errTest) Error() string { return string(e) }

func TestColor_AppliedOnlyWhenEnabled(t *testing.T) {
	t.Parallel()
	plain, outPlain, _ := newTestWriter(false)
	colored, outColored, _ := newTestWriter(true)

	plain.Success("done")
	colored.Success("done")

	if strings.Contains(outPlain.String(), "\033[") {
		t.Errorf("plain output should carry no ANSI codes, got %q", outPlain.String())
	}
	if !strings.Contains(outColored.String(), "\033[32m") {
		t.Errorf("colored output should be green, got %q", outColored.String())
	}
}

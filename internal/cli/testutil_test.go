package cli

import (
	"bytes"
	"context"
	"os"
	"testing"
)

// recordingRunner stands in for the package manager.
type recordingRunner struct {
	RunFunc func(ctx context.Context, args []string) error
	calls   [][]string
}

func (r *recordingRunner) Run(ctx context.Context, args []string) error {
	r.calls = append(r.calls, args)
	if r.RunFunc != nil {
		return r.RunFunc(ctx, args)
	}
	return nil
}

// withRunner installs r as the command runner for the duration of the test.
func withRunner(t *testing.T, r *recordingRunner) {
	t.Helper()
	testRunnerOverride = r
	t.Cleanup(func() { testRunnerOverride = nil })
}

// withStdin pipes data into os.Stdin for the duration of the test.
func withStdin(t *testing.T, data []byte) {
	t.Helper()
	oldStdin := os.Stdin
	t.Cleanup(func() { os.Stdin = oldStdin })

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdin = r
	go func() {
		_, _ = w.Write(data)
		_ = w.Close()
	}()
}

// captureStdout runs fn with os.Stdout redirected and returns what it wrote.
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}
	os.Stdout = w

	fnErr := fn()

	_ = w.Close()
	os.Stdout = oldStdout
	var out bytes.Buffer
	_, _ = out.ReadFrom(r)
	return out.String(), fnErr
}

func assertEqual[T comparable](t *testing.T, name string, expected, actual T) {
	t.Helper()
	if expected != actual {
		t.Errorf("%s: expected %v, got %v", name, expected, actual)
	}
}

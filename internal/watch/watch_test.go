package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

// touchUntil rewrites path until cond holds or the deadline passes. The
// watcher is registered asynchronously, so a single write may be missed.
func touchUntil(t *testing.T, path string, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if err := os.WriteFile(path, []byte(time.Now().String()), 0644); err != nil {
			t.Fatalf("writing %s: %v", path, err)
		}
		time.Sleep(50 * time.Millisecond)
		if cond() {
			return true
		}
	}
	return false
}

func startRun(t *testing.T, paths []string, fn Func) (context.CancelFunc, <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, paths, 10*time.Millisecond, nil, fn)
	}()
	t.Cleanup(cancel)
	return cancel, done
}

func TestRun_CallsFnOnChange(t *testing.T) {
	dir := t.TempDir()
	tmpl := filepath.Join(dir, "Makefile.tmp")
	if err := os.WriteFile(tmpl, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	var calls atomic.Int32
	cancel, done := startRun(t, []string{tmpl}, func() error {
		calls.Add(1)
		return nil
	})

	if !touchUntil(t, tmpl, func() bool { return calls.Load() > 0 }) {
		t.Fatal("fn was not called after the template changed")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}
}

func TestRun_IgnoresUnwatchedFiles(t *testing.T) {
	dir := t.TempDir()
	tmpl := filepath.Join(dir, "Makefile.tmp")
	other := filepath.Join(dir, "Makefile")
	if err := os.WriteFile(tmpl, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	var calls atomic.Int32
	startRun(t, []string{tmpl}, func() error {
		calls.Add(1)
		return nil
	})

	// Writing the output next to the template must not trigger a re-render.
	for i := 0; i < 10; i++ {
		if err := os.WriteFile(other, []byte("y"), 0644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(30 * time.Millisecond)
	}
	if n := calls.Load(); n != 0 {
		t.Errorf("fn called %d times for an unwatched file", n)
	}
}

func TestRun_ContinuesAfterFnError(t *testing.T) {
	dir := t.TempDir()
	tmpl := filepath.Join(dir, "Makefile.tmp")
	if err := os.WriteFile(tmpl, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	var calls atomic.Int32
	startRun(t, []string{tmpl}, func() error {
		calls.Add(1)
		return errors.New("boom")
	})

	if !touchUntil(t, tmpl, func() bool { return calls.Load() >= 2 }) {
		t.Fatalf("fn called %d times, want at least 2", calls.Load())
	}
}

func TestRun_MissingDirectory(t *testing.T) {
	err := Run(context.Background(), []string{filepath.Join(t.TempDir(), "missing", "Makefile.tmp")}, DefaultDebounce, nil, func() error { return nil })
	if err == nil {
		t.Fatal("expected error for a missing directory, got nil")
	}
}

package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestNewWatcher(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "main.sb")
	if err := os.WriteFile(tmpFile, []byte("const x = 1"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := New(tmpFile, 50*time.Millisecond, nil)
	if err != nil {
		t.Fatalf("New() error = %v, want nil", err)
	}
	defer w.Close()

	if w.watcher == nil {
		t.Error("w.watcher is nil")
	}
	if w.debounce == nil {
		t.Error("w.debounce is nil")
	}
	if !filepath.IsAbs(w.path) {
		t.Errorf("w.path = %q, want absolute", w.path)
	}
}

func TestWatchTriggersOnWrite(t *testing.T) {
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "main.sb")
	if err := os.WriteFile(tmpFile, []byte("const x = 1"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := New(tmpFile, 20*time.Millisecond, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	var fired atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- w.Watch(ctx, func() error {
			fired.Add(1)
			return nil
		})
	}()

	// Give the watch registration a moment, then modify the file.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(tmpFile, []byte("const x = 2"), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(2 * time.Second)
	for fired.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("callback never fired after file write")
		case <-time.After(10 * time.Millisecond):
		}
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Watch() error = %v, want nil", err)
	}
}

func TestWatchIgnoresSiblingFiles(t *testing.T) {
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "main.sb")
	sibling := filepath.Join(tmpDir, "other.sb")
	for _, p := range []string{tmpFile, sibling} {
		if err := os.WriteFile(p, []byte("const x = 1"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	w, err := New(tmpFile, 20*time.Millisecond, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	var fired atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		_ = w.Watch(ctx, func() error {
			fired.Add(1)
			return nil
		})
	}()

	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(sibling, []byte("const x = 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(200 * time.Millisecond)

	if n := fired.Load(); n != 0 {
		t.Errorf("callback fired %d times for a sibling file, want 0", n)
	}
}

func TestDebouncerCollapsesBursts(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)
	defer d.Stop()

	var fired atomic.Int32
	for i := 0; i < 5; i++ {
		d.Trigger(func() { fired.Add(1) })
		time.Sleep(5 * time.Millisecond)
	}

	time.Sleep(200 * time.Millisecond)
	if n := fired.Load(); n != 1 {
		t.Errorf("callback fired %d times for a 5-event burst, want 1", n)
	}
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)

	var fired atomic.Int32
	d.Trigger(func() { fired.Add(1) })
	d.Stop()

	time.Sleep(150 * time.Millisecond)
	if n := fired.Load(); n != 0 {
		t.Errorf("callback fired %d times after Stop, want 0", n)
	}
}

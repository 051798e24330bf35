package tailer

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newLogFile(t *testing.T) (string, *os.File) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "game.log")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { f.Close() })
	return path, f
}

func TestTailer_NewLines(t *testing.T) {
	path, f := newLogFile(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tailer, err := New(ctx, path, Config{Poll: true})
	if err != nil {
		t.Fatal(err)
	}
	defer tailer.Stop()

	// Give the tailer a moment to reach the tail point
	time.Sleep(200 * time.Millisecond)

	f.WriteString("line1\n")
	f.Sync()

	select {
	case line := <-tailer.Lines():
		if line != "line1" {
			t.Errorf("got %q, want %q", line, "line1")
		}
	case <-time.After(5 * time.Second):
		t.Error("timeout waiting for line")
	}
}

func TestTailer_SkipsExistingContent(t *testing.T) {
	path, f := newLogFile(t)
	f.WriteString("old line\n")
	f.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tailer, err := New(ctx, path, Config{Poll: true})
	if err != nil {
		t.Fatal(err)
	}
	defer tailer.Stop()

	time.Sleep(200 * time.Millisecond)

	f.WriteString("new line\n")
	f.Sync()

	// The first delivered line is the post-start one; content before the
	// tail point never arrives.
	select {
	case line := <-tailer.Lines():
		if line != "new line" {
			t.Errorf("got %q, want %q", line, "new line")
		}
	case <-time.After(5 * time.Second):
		t.Error("timeout waiting for line")
	}
}

func TestTailer_MultipleLines(t *testing.T) {
	path, f := newLogFile(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tailer, err := New(ctx, path, Config{Poll: true})
	if err != nil {
		t.Fatal(err)
	}
	defer tailer.Stop()

	time.Sleep(200 * time.Millisecond)

	lines := []string{"line1", "line2", "line3"}
	for i, line := range lines {
		f.WriteString(line + "\n")
		f.Sync()

		// Verify each line is received in order
		select {
		case got := <-tailer.Lines():
			if got != line {
				t.Errorf("line %d: got %q, want %q", i, got, line)
			}
		case <-time.After(5 * time.Second):
			t.Errorf("timeout waiting for line %d: %q", i, line)
		}
	}
}

func TestTailer_FromStart(t *testing.T) {
	path, f := newLogFile(t)
	f.WriteString("existing1\nexisting2\n")
	f.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tailer, err := New(ctx, path, Config{Poll: true, FromStart: true})
	if err != nil {
		t.Fatal(err)
	}
	defer tailer.Stop()

	// Should receive existing lines
	expected := []string{"existing1", "existing2"}
	for _, want := range expected {
		select {
		case got := <-tailer.Lines():
			if got != want {
				t.Errorf("got %q, want %q", got, want)
			}
		case <-time.After(5 * time.Second):
			t.Errorf("timeout waiting for line %q", want)
		}
	}
}

func TestTailer_Stop(t *testing.T) {
	path, _ := newLogFile(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tailer, err := New(ctx, path, Config{Poll: true})
	if err != nil {
		t.Fatal(err)
	}

	// Stop should close channels
	if err := tailer.Stop(); err != nil {
		t.Errorf("Stop() error = %v", err)
	}

	select {
	case _, ok := <-tailer.Lines():
		if ok {
			t.Error("expected Lines channel to be closed")
		}
	case <-time.After(2 * time.Second):
		t.Error("timeout waiting for Lines channel to close")
	}

	// Multiple Stop calls should be safe
	if err := tailer.Stop(); err != nil {
		t.Errorf("second Stop() error = %v", err)
	}
}

func TestTailer_ContextCancel(t *testing.T) {
	path, _ := newLogFile(t)

	ctx, cancel := context.WithCancel(context.Background())

	tailer, err := New(ctx, path, Config{Poll: true})
	if err != nil {
		t.Fatal(err)
	}
	defer tailer.Stop()

	cancel()

	select {
	case _, ok := <-tailer.Lines():
		if ok {
			t.Error("expected Lines channel to be closed after context cancel")
		}
	case <-time.After(2 * time.Second):
		t.Error("timeout waiting for Lines channel to close")
	}
}

func TestTailer_FileNotExists(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, err := New(ctx, filepath.Join(t.TempDir(), "absent.log"), Config{Poll: true})
	if err == nil {
		t.Error("expected error for nonexistent file")
	}
}

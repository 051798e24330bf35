package splits

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeSplitsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "splits.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeSplitsFile(t, `{
		"game": "Hollow Knight",
		"category": "Any%",
		"start_trigger": "run started",
		"reset_trigger": "back to menu",
		"splits": [
			{"name": "False Knight", "best_time_ms": 185000, "trigger": "boss defeated"},
			{"name": "Hornet"}
		]
	}`)

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if f.Game != "Hollow Knight" || f.Category != "Any%" {
		t.Errorf("header = %q / %q", f.Game, f.Category)
	}
	if got := f.Names(); len(got) != 2 || got[0] != "False Knight" || got[1] != "Hornet" {
		t.Errorf("Names() = %v", got)
	}

	bests := f.BestSegments()
	if bests[0] == nil || *bests[0] != 185*time.Second {
		t.Errorf("best 0 = %v, want 3m5s", bests[0])
	}
	if bests[1] != nil {
		t.Errorf("best 1 = %v, want nil", *bests[1])
	}
}

func TestLoadMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid json", `{"game": "x", "splits": [`},
		{"no splits", `{"game": "x", "category": "Any%", "splits": []}`},
		{"splits absent", `{"game": "x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSplitsFile(t, tt.content)
			if _, err := Load(path); !errors.Is(err, ErrMalformed) {
				t.Errorf("Load() error = %v, want ErrMalformed", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("Load() succeeded for a missing file")
	}
	// A missing file is not a parse failure; callers distinguish the two.
	if errors.Is(err, ErrMalformed) {
		t.Errorf("Load() error = %v, want a non-ErrMalformed error", err)
	}
}

func TestDefaultRun(t *testing.T) {
	f := DefaultRun()
	if len(f.Splits) != 1 || f.Splits[0].Name != "Split 1" {
		t.Errorf("DefaultRun() splits = %v", f.Splits)
	}
	if f.Game != "Game" || f.Category != "Any%" {
		t.Errorf("DefaultRun() header = %q / %q", f.Game, f.Category)
	}
}

func TestTriggers(t *testing.T) {
	start := "run started"
	boss := "boss defeated"
	f := &File{
		StartTrigger: &start,
		Splits: []Definition{
			{Name: "First", Trigger: &boss},
			{Name: "Second"},
		},
	}

	set := f.Triggers()
	if text, ok := set.Start.Text(); !ok || text != "run started" {
		t.Errorf("start trigger = %q, %v", text, ok)
	}
	if set.Reset.IsSet() {
		t.Error("reset trigger set without a definition")
	}
	if len(set.Splits) != 2 {
		t.Fatalf("got %d split triggers, want 2", len(set.Splits))
	}
	if text, ok := set.Splits[0].Text(); !ok || text != "boss defeated" {
		t.Errorf("split trigger 0 = %q, %v", text, ok)
	}
	if set.Splits[1].IsSet() {
		t.Error("split trigger 1 set without a definition")
	}
}

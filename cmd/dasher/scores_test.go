package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/dapper-dasher/internal/storage"
)

func seededStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	runs := []storage.Run{
		{VariantID: "dasher", Outcome: storage.OutcomeWon, Score: 10, Survived: 16.2},
		{VariantID: "dasher", Outcome: storage.OutcomeLost, Score: 3, Survived: 5},
		{VariantID: "dasher-pair", Outcome: storage.OutcomeQuit, Score: 1, Survived: 2.5},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun(%+v) failed: %v", r, err)
		}
	}
	return store
}

func TestPrintSummary(t *testing.T) {
	store := seededStore(t)

	var buf bytes.Buffer
	if err := printSummary(&buf, store); err != nil {
		t.Fatalf("printSummary() failed: %v", err)
	}
	out := buf.String()

	first := strings.Index(out, "  dasher ")
	second := strings.Index(out, "  dasher-pair ")
	if first < 0 || second < 0 {
		t.Fatalf("summary misses a variant:\n%s", out)
	}
	if first > second {
		t.Errorf("variants should be sorted by id:\n%s", out)
	}
}

func TestPrintRecent(t *testing.T) {
	store := seededStore(t)

	var buf bytes.Buffer
	if err := printRecent(&buf, store, 2); err != nil {
		t.Fatalf("printRecent() failed: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "dasher-pair") || !strings.Contains(out, "quit") {
		t.Errorf("latest run missing:\n%s", out)
	}
	if strings.Contains(out, "won") {
		t.Errorf("limit 2 should drop the oldest run:\n%s", out)
	}
}

func TestClearRuns(t *testing.T) {
	store := seededStore(t)

	var buf bytes.Buffer
	if err := clearRuns(&buf, store, "dasher"); err != nil {
		t.Fatalf("clearRuns() failed: %v", err)
	}

	buf.Reset()
	if err := printBest(&buf, store, "dasher", 10); err != nil {
		t.Fatalf("printBest() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No runs recorded yet.") {
		t.Errorf("cleared variant still has runs:\n%s", buf.String())
	}

	best, err := store.BestScore("dasher-pair")
	if err != nil || best != 1 {
		t.Errorf("other variants should be kept, best = %d, err = %v", best, err)
	}
}

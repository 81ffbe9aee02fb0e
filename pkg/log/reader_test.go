package log

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/pclscope/pcl-go/pkg/seq"
)

func createTestTrace(t *testing.T, events []Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.plog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create test trace: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()
	return path
}

func readAllFiltered(t *testing.T, path string, f Filter) []Event {
	t.Helper()
	r, err := NewFilteredReader(path, f)
	if err != nil {
		t.Fatalf("NewFilteredReader: %v", err)
	}
	defer r.Close()

	var out []Event
	for {
		e, err := r.Next()
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		out = append(out, e)
	}
}

func TestReaderFilters(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	events := []Event{
		{Timestamp: base, SessionID: "a", Kind: KindSession, Session: &SessionEvent{State: SessionStart}},
		sequenceEvent("a", 0, true, seq.CategoryPageControl),
		sequenceEvent("a", 1, false, seq.CategoryUnknown),
		sequenceEvent("b", 2, true, seq.CategoryMacro),
		{Timestamp: base.Add(time.Hour), SessionID: "b", Kind: KindError, Error: &ErrorEvent{Message: "truncated"}},
	}
	events[1].Timestamp = base.Add(time.Minute)
	events[2].Timestamp = base.Add(2 * time.Minute)
	events[3].Timestamp = base.Add(3 * time.Minute)
	path := createTestTrace(t, events)

	kindSeq := KindSequence
	macro := seq.CategoryMacro
	unknown := false
	start := base.Add(90 * time.Second)
	end := base.Add(time.Hour)

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"all", Filter{}, 5},
		{"session", Filter{SessionID: "a"}, 3},
		{"kind", Filter{Kind: &kindSeq}, 3},
		{"category", Filter{Category: &macro}, 1},
		{"unknown only", Filter{Known: &unknown}, 1},
		{"min depth", Filter{MinDepth: 1}, 2},
		{"time window", Filter{TimeStart: &start, TimeEnd: &end}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := readAllFiltered(t, path, tt.filter)
			if len(got) != tt.want {
				t.Errorf("got %d events, want %d", len(got), tt.want)
			}
		})
	}
}

func TestReaderMissingFile(t *testing.T) {
	if _, err := NewReader(filepath.Join(t.TempDir(), "none.plog")); err == nil {
		t.Error("expected error for missing file")
	}
}

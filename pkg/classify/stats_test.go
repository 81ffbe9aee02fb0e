package classify

import (
	"testing"

	"github.com/pclscope/pcl-go/pkg/seq"
)

func TestStatsIncrementGrows(t *testing.T) {
	s := NewStats()
	k := seq.RootKey('&', 'l', 'X')

	s.Increment(k, 0)
	s.Increment(k, 4)
	s.Increment(k, 4)
	s.Increment(k, -1)

	u := s.Usage(k)
	if len(u.Levels) != 5 {
		t.Fatalf("Levels = %v, want 5 levels", u.Levels)
	}
	if u.Parent != 2 || u.Child != 2 || u.Total != 4 {
		t.Errorf("Usage = %+v", u)
	}
	if s.MaxLevel() != 4 {
		t.Errorf("MaxLevel() = %d, want 4", s.MaxLevel())
	}
}

func TestStatsUsageIsCopy(t *testing.T) {
	s := NewStats()
	k := seq.RootKey('*', 'r', 'C')
	s.Increment(k, 1)

	u := s.Usage(k)
	u.Levels[1] = 99

	if got := s.Usage(k).Levels[1]; got != 1 {
		t.Errorf("stored count changed to %d", got)
	}
}

func TestStatsReset(t *testing.T) {
	s := NewStats()
	s.Increment(seq.UnknownKey, 0)
	s.Increment(seq.RootKey('E', 0, 0), 2)

	s.Reset()

	if s.Total() != 0 {
		t.Errorf("Total() = %d after Reset", s.Total())
	}
	if s.MaxLevel() != -1 {
		t.Errorf("MaxLevel() = %d after Reset", s.MaxLevel())
	}
	if u := s.Usage(seq.UnknownKey); u.Total != 0 || len(u.Levels) != 0 {
		t.Errorf("unknown usage = %+v after Reset", u)
	}
}

func TestStatsLevel(t *testing.T) {
	stop := seq.Entry{Action: seq.ActionMacroStop}
	other := seq.Entry{Action: seq.ActionMacroCall}

	tests := []struct {
		name  string
		entry seq.Entry
		depth int
		want  int
	}{
		{"stop nested", stop, 3, 2},
		{"stop top", stop, 0, 0},
		{"stop negative", stop, -1, 0},
		{"call nested", other, 3, 3},
		{"call negative", other, -2, 0},
	}
	for _, tt := range tests {
		if got := statsLevel(tt.entry, tt.depth); got != tt.want {
			t.Errorf("%s: statsLevel = %d, want %d", tt.name, got, tt.want)
		}
	}
}

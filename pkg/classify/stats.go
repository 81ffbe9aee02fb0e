package classify

import "github.com/pclscope/pcl-go/pkg/seq"

// Usage is the usage of one entry.
type Usage struct {
	// Levels holds one counter per macro nesting level.
	Levels []uint64

	// Parent is the use count at level 0.
	Parent uint64

	// Child is the use count at levels above 0.
	Child uint64

	// Total is Parent + Child.
	Total uint64
}

// Stats counts entry usage per macro nesting level. It is kept apart from
// the registry so the registry can be shared while each session counts on
// its own. Stats is not safe for concurrent use.
type Stats struct {
	counts map[seq.Key][]uint64
}

// NewStats returns an empty statistics table.
func NewStats() *Stats {
	return &Stats{counts: make(map[seq.Key][]uint64)}
}

// Increment counts one use of the entry with key k at level. The per-level
// slice grows as needed; negative levels count as level 0.
func (s *Stats) Increment(k seq.Key, level int) {
	if level < 0 {
		level = 0
	}
	levels := s.counts[k]
	if level >= len(levels) {
		levels = append(levels, make([]uint64, level+1-len(levels))...)
	}
	levels[level]++
	s.counts[k] = levels
}

// Usage returns the usage of the entry with key k.
func (s *Stats) Usage(k seq.Key) Usage {
	levels := s.counts[k]
	u := Usage{Levels: append([]uint64(nil), levels...)}
	for i, n := range levels {
		if i == 0 {
			u.Parent += n
		} else {
			u.Child += n
		}
	}
	u.Total = u.Parent + u.Child
	return u
}

// Total returns the number of uses across all entries.
func (s *Stats) Total() uint64 {
	var total uint64
	for _, levels := range s.counts {
		for _, n := range levels {
			total += n
		}
	}
	return total
}

// MaxLevel returns the deepest level with a recorded use, or -1 if nothing
// was counted.
func (s *Stats) MaxLevel() int {
	deepest := -1
	for _, levels := range s.counts {
		for i := len(levels) - 1; i > deepest; i-- {
			if levels[i] != 0 {
				deepest = i
				break
			}
		}
	}
	return deepest
}

// Reset zeroes all counters.
func (s *Stats) Reset() {
	clear(s.counts)
}

// Package classify resolves escape sequences against a sequence registry
// and counts how often each entry is used.
package classify

import (
	"time"

	"github.com/google/uuid"

	"github.com/pclscope/pcl-go/pkg/log"
	"github.com/pclscope/pcl-go/pkg/seq"
)

// Query is one escape sequence to classify.
type Query struct {
	Ind, Group, Term byte

	// Exact requests a match on Value before falling back to the family.
	Exact bool
	Value int32

	// Depth is the current macro nesting depth.
	Depth int

	// Offset is the stream offset of the sequence; it is only used for
	// tracing.
	Offset int64
}

// Result is the outcome of a classification.
type Result struct {
	// Known is false when no entry matched and Entry is the Unknown Entry.
	Known bool

	// Entry is a copy of the matched entry.
	Entry seq.Entry

	// Description is the text to report. For the generic root of a
	// discrete family it reads "unknown/illegal" in place of "discrete".
	Description string

	// Level is the statistics level the use was counted at.
	Level int
}

// Classifier classifies sequences for one parsing session. The registry may
// be shared between classifiers; the statistics may not. A Classifier is
// not safe for concurrent use.
type Classifier struct {
	reg     *seq.Registry
	stats   *Stats
	logger  log.Logger
	session string
	source  string
	now     func() time.Time
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithLogger sends one trace event per classification to l.
func WithLogger(l log.Logger) Option {
	return func(c *Classifier) {
		c.logger = l
	}
}

// WithStats uses s as the statistics table.
func WithStats(s *Stats) Option {
	return func(c *Classifier) {
		if s != nil {
			c.stats = s
		}
	}
}

// WithSessionID sets the session id recorded in trace events.
func WithSessionID(id string) Option {
	return func(c *Classifier) {
		if id != "" {
			c.session = id
		}
	}
}

// WithSource names the analysed stream in trace events.
func WithSource(name string) Option {
	return func(c *Classifier) {
		c.source = name
	}
}

// New creates a Classifier over reg.
func New(reg *seq.Registry, opts ...Option) *Classifier {
	c := &Classifier{
		reg:     reg,
		stats:   NewStats(),
		logger:  log.NoopLogger{},
		session: uuid.NewString(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = log.NoopLogger{}
	}
	return c
}

// Classify resolves a sequence and counts its use at depth. See ClassifyQuery.
func (c *Classifier) Classify(ind, group, term byte, exact bool, value int32, depth int) Result {
	return c.ClassifyQuery(Query{
		Ind:   ind,
		Group: group,
		Term:  term,
		Exact: exact,
		Value: value,
		Depth: depth,
	})
}

// ClassifyQuery resolves q. With q.Exact the value entry is tried first,
// then the family root, then the Unknown Entry. The use is counted at
// q.Depth, except that a macro stop is counted at the level it returns to.
func (c *Classifier) ClassifyQuery(q Query) Result {
	var (
		e  seq.Entry
		ok bool
	)
	if q.Exact {
		e, ok = c.reg.Lookup(seq.ValueKey(q.Ind, q.Group, q.Term, q.Value))
	}
	if !ok {
		e, ok = c.reg.Lookup(seq.RootKey(q.Ind, q.Group, q.Term))
	}
	if !ok {
		e = c.reg.Unknown()
	}

	res := Result{
		Known:       ok,
		Entry:       e,
		Description: e.Description.String(),
		Level:       statsLevel(e, q.Depth),
	}
	if e.IsGenericFallback() {
		res.Description = e.Description.Unmatched()
	}

	c.stats.Increment(e.Key, res.Level)
	c.trace(q, res)
	return res
}

func statsLevel(e seq.Entry, depth int) int {
	if depth < 0 {
		return 0
	}
	if e.Action == seq.ActionMacroStop && depth > 0 {
		return depth - 1
	}
	return depth
}

func (c *Classifier) trace(q Query, res Result) {
	if _, noop := c.logger.(log.NoopLogger); noop {
		return
	}
	ev := &log.SequenceEvent{
		Key:         res.Entry.Key.String(),
		Label:       res.Entry.Label(),
		Known:       res.Known,
		Category:    res.Entry.Category,
		Action:      res.Entry.Action,
		Overlay:     res.Entry.Overlay,
		Description: res.Description,
		Level:       res.Level,
	}
	if q.Exact {
		v := q.Value
		ev.Value = &v
	}
	c.logger.Log(log.Event{
		Timestamp: c.now(),
		SessionID: c.session,
		Kind:      log.KindSequence,
		Offset:    q.Offset,
		Depth:     q.Depth,
		Source:    c.source,
		Sequence:  ev,
	})
}

// LogSession records a session boundary in the trace.
func (c *Classifier) LogSession(ev log.SessionEvent, offset int64) {
	c.logger.Log(log.Event{
		Timestamp: c.now(),
		SessionID: c.session,
		Kind:      log.KindSession,
		Offset:    offset,
		Source:    c.source,
		Session:   &ev,
	})
}

// LogError records a stream error in the trace.
func (c *Classifier) LogError(err error, context string, offset int64, depth int) {
	c.logger.Log(log.Event{
		Timestamp: c.now(),
		SessionID: c.session,
		Kind:      log.KindError,
		Offset:    offset,
		Depth:     depth,
		Source:    c.source,
		Error:     &log.ErrorEvent{Message: err.Error(), Context: context},
	})
}

// ListEntries returns the registry listing; see seq.Registry.List.
func (c *Classifier) ListEntries(opts seq.ListOptions) []seq.Entry {
	return c.reg.List(opts)
}

// ResetStatistics zeroes all usage counters, including the Unknown Entry's.
func (c *Classifier) ResetStatistics() {
	c.stats.Reset()
}

// RegistrySize returns the number of registry entries, excluding the
// Unknown Entry.
func (c *Classifier) RegistrySize() int {
	return c.reg.Len()
}

// Registry returns the registry the classifier resolves against.
func (c *Classifier) Registry() *seq.Registry {
	return c.reg
}

// Stats returns the statistics table.
func (c *Classifier) Stats() *Stats {
	return c.stats
}

// SessionID returns the id recorded in trace events.
func (c *Classifier) SessionID() string {
	return c.session
}

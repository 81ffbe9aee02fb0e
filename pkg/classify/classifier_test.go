package classify_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pclscope/pcl-go/pkg/classify"
	"github.com/pclscope/pcl-go/pkg/log"
	"github.com/pclscope/pcl-go/pkg/log/mocks"
	"github.com/pclscope/pcl-go/pkg/seq"
)

var registry = seq.MustBuild(seq.Providers{})

func TestClassify_ExactValueTakesPrecedence(t *testing.T) {
	c := classify.New(registry)

	res := c.Classify('&', 'a', 'G', true, 1, 0)
	require.True(t, res.Known)
	assert.Equal(t, seq.ValueKey('&', 'a', 'G', 1), res.Entry.Key)
	assert.Equal(t, "Duplex Page Side Selection: Front side", res.Description)
	assert.NotContains(t, res.Description, "unknown/illegal")
}

func TestClassify_UnmatchedValueFallsBackToRoot(t *testing.T) {
	c := classify.New(registry)

	res := c.Classify('&', 'a', 'G', true, 7, 0)
	require.True(t, res.Known)
	assert.Equal(t, seq.RootKey('&', 'a', 'G'), res.Entry.Key)
	assert.Equal(t, "Duplex Page Side Selection (# = unknown/illegal value)", res.Description)

	// The stored template is untouched.
	root, _ := registry.Lookup(seq.RootKey('&', 'a', 'G'))
	assert.Equal(t, "Duplex Page Side Selection (# = discrete value)", root.Description.String())
	again := c.Classify('&', 'a', 'G', true, 8, 0)
	assert.Equal(t, res.Description, again.Description)
}

func TestClassify_InexactAlwaysUsesRoot(t *testing.T) {
	c := classify.New(registry)

	for _, v := range []int32{0, 1, 2, 99, -5} {
		res := c.Classify('&', 'a', 'G', false, v, 0)
		assert.Equal(t, seq.RootKey('&', 'a', 'G'), res.Entry.Key, "value %d", v)
	}
}

func TestClassify_ContinuousFamilyKeepsDescription(t *testing.T) {
	c := classify.New(registry)

	res := c.Classify('&', 'l', 'X', true, 3, 0)
	require.True(t, res.Known)
	assert.Equal(t, seq.RootKey('&', 'l', 'X'), res.Entry.Key)
	assert.Equal(t, "Number of Copies (# = number of copies)", res.Description)
}

func TestClassify_Unknown(t *testing.T) {
	c := classify.New(registry)

	res := c.Classify('&', 'z', 'Q', true, 1, 0)
	assert.False(t, res.Known)
	assert.Equal(t, seq.UnknownKey, res.Entry.Key)
	assert.Equal(t, seq.CategoryUnknown, res.Entry.Category)
	assert.Equal(t, "*** Unknown sequence ***", res.Description)
	assert.Equal(t, uint64(1), c.Stats().Usage(seq.UnknownKey).Total)
}

func TestClassify_TwoByteSequence(t *testing.T) {
	c := classify.New(registry)

	res := c.Classify('E', 0, 0, false, 0, 0)
	require.True(t, res.Known)
	assert.Equal(t, "Printer Reset", res.Description)
	assert.Equal(t, seq.OverlayReset, res.Entry.Overlay)
}

func TestClassify_MacroStopAttribution(t *testing.T) {
	tests := []struct {
		depth int
		level int
	}{
		{depth: 2, level: 1},
		{depth: 1, level: 0},
		{depth: 0, level: 0},
		{depth: -3, level: 0},
	}

	for _, tt := range tests {
		c := classify.New(registry)
		res := c.Classify('&', 'f', 'X', true, 1, tt.depth)
		require.Equal(t, seq.ActionMacroStop, res.Entry.Action)
		assert.Equal(t, tt.level, res.Level, "depth %d", tt.depth)

		u := c.Stats().Usage(res.Entry.Key)
		require.Len(t, u.Levels, tt.level+1)
		assert.Equal(t, uint64(1), u.Levels[tt.level])
	}
}

func TestClassify_MacroStartCountsAtDepth(t *testing.T) {
	c := classify.New(registry)

	res := c.Classify('&', 'f', 'X', true, 0, 2)
	assert.Equal(t, seq.ActionMacroStart, res.Entry.Action)
	assert.Equal(t, 2, res.Level)

	u := c.Stats().Usage(res.Entry.Key)
	assert.Equal(t, []uint64{0, 0, 1}, u.Levels)
	assert.Equal(t, uint64(0), u.Parent)
	assert.Equal(t, uint64(1), u.Child)
}

func TestClassifier_ResetStatistics(t *testing.T) {
	c := classify.New(registry)
	c.Classify('&', 'l', 'X', true, 1, 0)
	c.Classify('&', 'z', 'Q', false, 0, 3)
	c.Classify('*', 'r', 'C', false, 0, 1)

	c.ResetStatistics()

	assert.Equal(t, uint64(0), c.Stats().Total())
	for _, row := range c.ReportUsage(classify.ReportOptions{}) {
		assert.Zero(t, row.Total, row.Label)
	}
	assert.Zero(t, c.Stats().Usage(seq.UnknownKey).Total)
	assert.Equal(t, registry.Len(), c.RegistrySize())
}

func TestClassifier_SharedRegistryIsolatedStats(t *testing.T) {
	a := classify.New(registry)
	b := classify.New(registry)

	a.Classify('*', 'r', 'C', false, 0, 0)

	assert.Equal(t, uint64(1), a.Stats().Total())
	assert.Equal(t, uint64(0), b.Stats().Total())
	assert.NotEqual(t, a.SessionID(), b.SessionID())

	shared := classify.NewStats()
	c := classify.New(registry, classify.WithStats(shared))
	c.Classify('*', 'r', 'C', false, 0, 0)
	assert.Equal(t, uint64(1), shared.Total())
}

func TestClassifier_Trace(t *testing.T) {
	logger := mocks.NewMockLogger(t)
	logger.EXPECT().Log(mock.MatchedBy(func(e log.Event) bool {
		return e.Kind == log.KindSequence &&
			e.SessionID == "sess-1" &&
			e.Source == "job.pcl" &&
			e.Offset == 128 &&
			e.Depth == 1 &&
			e.Sequence != nil &&
			e.Sequence.Label == "<Esc>&f1X" &&
			e.Sequence.Level == 0 &&
			e.Sequence.Value != nil && *e.Sequence.Value == 1
	})).Return().Once()
	logger.EXPECT().Log(mock.MatchedBy(func(e log.Event) bool {
		return e.Kind == log.KindSequence && e.Sequence != nil && !e.Sequence.Known && e.Sequence.Value == nil
	})).Return().Once()
	logger.EXPECT().Log(mock.MatchedBy(func(e log.Event) bool {
		return e.Kind == log.KindError && e.Error != nil && e.Error.Message == "truncated"
	})).Return().Once()

	c := classify.New(registry,
		classify.WithLogger(logger),
		classify.WithSessionID("sess-1"),
		classify.WithSource("job.pcl"),
	)
	c.ClassifyQuery(classify.Query{Ind: '&', Group: 'f', Term: 'X', Exact: true, Value: 1, Depth: 1, Offset: 128})
	c.ClassifyQuery(classify.Query{Ind: '~', Term: 'Q'})
	c.LogError(errors.New("truncated"), "payload", 200, 0)
}

func TestClassifier_NilLogger(t *testing.T) {
	c := classify.New(registry, classify.WithLogger(nil))
	c.Classify('E', 0, 0, false, 0, 0)
	c.LogSession(log.SessionEvent{State: log.SessionStart}, 0)
}

func TestClassifier_ListEntries(t *testing.T) {
	c := classify.New(registry)

	collapsed := c.ListEntries(seq.ListOptions{})
	expanded := c.ListEntries(seq.ListOptions{ShowDiscrete: true})
	assert.NotEmpty(t, collapsed)
	assert.Greater(t, len(expanded), len(collapsed))
}

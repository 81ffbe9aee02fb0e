package scan_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pclscope/pcl-go/pkg/classify"
	"github.com/pclscope/pcl-go/pkg/log"
	"github.com/pclscope/pcl-go/pkg/log/mocks"
	"github.com/pclscope/pcl-go/pkg/scan"
	"github.com/pclscope/pcl-go/pkg/seq"
)

var registry = seq.MustBuild(seq.Providers{})

// job defines a macro, prints a raster row and ends with an unknown
// sequence.
const job = "\x1bE" +
	"\x1b&f1Y\x1b&f0X" + // macro 1, start definition
	"\x1b*rC" +
	"\x1b&f1X" + // stop definition
	"\x1b*b3Wxyz" +
	"text" +
	"\x1bz" +
	"\x1b&z9Q"

func TestSession_Run(t *testing.T) {
	c := classify.New(registry)
	var labels []string
	s := scan.NewSession(strings.NewReader(job), c, scan.WithObserver(func(tok scan.Token, _ classify.Result) {
		labels = append(labels, tok.Label())
	}))

	sum, err := s.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, uint64(8), sum.Sequences)
	assert.Equal(t, uint64(1), sum.Unknown)
	assert.Equal(t, int64(len(job)), sum.Bytes)
	assert.Equal(t, int64(3), sum.Payloads)
	assert.Equal(t, 1, sum.MaxDepth)
	assert.Equal(t, 0, s.Depth())
	assert.Equal(t, []string{
		"<Esc>E", "<Esc>&f1Y", "<Esc>&f0X", "<Esc>*rC", "<Esc>&f1X", "<Esc>*b3W", "<Esc>z", "<Esc>&z9Q",
	}, labels)

	// Used inside the macro definition.
	assert.Equal(t, []uint64{0, 1}, c.Stats().Usage(seq.RootKey('*', 'r', 'C')).Levels)
	// The stop is counted at the level it returns to.
	assert.Equal(t, []uint64{1}, c.Stats().Usage(seq.ValueKey('&', 'f', 'X', 1)).Levels)
	assert.Equal(t, uint64(1), c.Stats().Usage(seq.UnknownKey).Total)
}

func TestSession_UnbalancedStop(t *testing.T) {
	c := classify.New(registry)
	s := scan.NewSession(strings.NewReader("\x1b&f1X\x1b&f1X\x1b*rC"), c)

	_, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, s.Depth())
	assert.Equal(t, []uint64{1}, c.Stats().Usage(seq.RootKey('*', 'r', 'C')).Levels)
}

func TestSession_Truncated(t *testing.T) {
	c := classify.New(registry)
	s := scan.NewSession(strings.NewReader("\x1bE\x1b*b10Wabc"), c)

	sum, err := s.Run(context.Background())
	assert.ErrorIs(t, err, scan.ErrTruncated)
	assert.Equal(t, uint64(2), sum.Sequences)
	assert.Equal(t, int64(0), sum.Payloads)
}

func TestSession_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := classify.New(registry)
	sum, err := scan.NewSession(strings.NewReader(job), c).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, sum.Sequences)
}

func TestSession_Trace(t *testing.T) {
	var events []log.Event
	logger := mocks.NewMockLogger(t)
	logger.EXPECT().Log(mock.Anything).RunAndReturn(func(e log.Event) {
		events = append(events, e)
	})

	c := classify.New(registry, classify.WithLogger(logger))
	_, err := scan.NewSession(strings.NewReader("\x1bE\x1b&l1o2A\x1b&l"), c).Run(context.Background())
	require.ErrorIs(t, err, scan.ErrTruncated)

	kinds := make([]log.Kind, len(events))
	for i, e := range events {
		kinds[i] = e.Kind
		assert.Equal(t, c.SessionID(), e.SessionID)
	}
	assert.Equal(t, []log.Kind{
		log.KindSession,
		log.KindSequence,
		log.KindSequence,
		log.KindSequence,
		log.KindError,
		log.KindSession,
	}, kinds)

	assert.Equal(t, log.SessionStart, events[0].Session.State)
	assert.Equal(t, "<Esc>&l#O", events[2].Sequence.Label)
	assert.Equal(t, int64(2), events[2].Offset)
	end := events[len(events)-1].Session
	assert.Equal(t, log.SessionEnd, end.State)
	assert.Equal(t, uint64(3), end.Sequences)
	assert.Equal(t, int64(12), end.Bytes)
}

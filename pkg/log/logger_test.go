package log

import (
	"testing"
	"time"

	"github.com/pclscope/pcl-go/pkg/seq"
)

func TestNoopLoggerDoesNotPanic(t *testing.T) {
	logger := NoopLogger{}

	event := Event{
		Timestamp: time.Now(),
		SessionID: "test-session",
		Kind:      KindSequence,
		Offset:    42,
	}

	// Test with nil payloads
	logger.Log(event)

	value := int32(26)
	event.Sequence = &SequenceEvent{Key: "&lA26", Label: "<Esc>&l26A", Known: true, Category: seq.CategoryPageControl, Value: &value}
	logger.Log(event)

	event.Sequence = nil
	event.Kind = KindSession
	event.Session = &SessionEvent{State: SessionEnd, Sequences: 10}
	logger.Log(event)

	event.Session = nil
	event.Kind = KindError
	event.Error = &ErrorEvent{Message: "test error"}
	logger.Log(event)
}

func TestLoggerInterfaceSatisfaction(t *testing.T) {
	var _ Logger = NoopLogger{}
	var _ Logger = &NoopLogger{}
}

func TestNoopLoggerIsZeroValue(t *testing.T) {
	var logger NoopLogger
	logger.Log(Event{})
}

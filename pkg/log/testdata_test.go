package log

import (
	"time"

	"github.com/pclscope/pcl-go/pkg/seq"
)

func int32p(v int32) *int32 { return &v }

func sequenceEvent(session string, depth int, known bool, cat seq.Category) Event {
	return Event{
		Timestamp: time.Now(),
		SessionID: session,
		Kind:      KindSequence,
		Offset:    int64(depth) * 10,
		Depth:     depth,
		Sequence: &SequenceEvent{
			Key:         "266C41:1A",
			Label:       "<Esc>&l26A",
			Known:       known,
			Category:    cat,
			Description: "Page Size: A4",
			Value:       int32p(26),
			Level:       depth,
		},
	}
}

package log

import (
	"time"

	"github.com/pclscope/pcl-go/pkg/seq"
)

// Event is one record of a classification trace.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies the classification session (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Kind classifies the event type.
	Kind Kind `cbor:"3,keyasint"`

	// Offset is the byte offset in the analysed stream.
	Offset int64 `cbor:"4,keyasint"`

	// Depth is the macro nesting depth when the event occurred.
	Depth int `cbor:"5,keyasint"`

	// Source names the analysed stream (file name or "-").
	Source string `cbor:"6,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Sequence *SequenceEvent `cbor:"10,keyasint,omitempty"`
	Session  *SessionEvent  `cbor:"11,keyasint,omitempty"`
	Error    *ErrorEvent    `cbor:"12,keyasint,omitempty"`
}

// Kind classifies trace events.
type Kind uint8

const (
	// KindSequence records one classified escape sequence.
	KindSequence Kind = 0
	// KindSession records the start or end of a session.
	KindSession Kind = 1
	// KindError records a stream error.
	KindError Kind = 2
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindSequence:
		return "SEQUENCE"
	case KindSession:
		return "SESSION"
	case KindError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// SequenceEvent captures the classification of one escape sequence.
type SequenceEvent struct {
	// Key is the textual key of the matched entry.
	Key string `cbor:"1,keyasint"`

	// Label is the display form of the matched entry.
	Label string `cbor:"2,keyasint"`

	// Known is false when the Unknown Entry was matched.
	Known bool `cbor:"3,keyasint"`

	// Category of the matched entry.
	Category seq.Category `cbor:"4,keyasint"`

	// Action of the matched entry.
	Action seq.Action `cbor:"5,keyasint,omitempty"`

	// Overlay of the matched entry.
	Overlay seq.Overlay `cbor:"6,keyasint,omitempty"`

	// Description as reported, after any rewrite.
	Description string `cbor:"7,keyasint"`

	// Value is the value field as seen in the stream, if any.
	Value *int32 `cbor:"8,keyasint,omitempty"`

	// Level is the statistics level the use was attributed to.
	Level int `cbor:"9,keyasint"`
}

// SessionState distinguishes session start and end records.
type SessionState uint8

const (
	// SessionStart opens a session.
	SessionStart SessionState = 0
	// SessionEnd closes a session and carries its totals.
	SessionEnd SessionState = 1
)

// String returns the state name.
func (s SessionState) String() string {
	switch s {
	case SessionStart:
		return "START"
	case SessionEnd:
		return "END"
	default:
		return "UNKNOWN"
	}
}

// SessionEvent captures session boundaries.
type SessionEvent struct {
	State SessionState `cbor:"1,keyasint"`

	// Totals, set on SessionEnd.
	Sequences uint64 `cbor:"2,keyasint,omitempty"`
	Unknown   uint64 `cbor:"3,keyasint,omitempty"`
	Bytes     int64  `cbor:"4,keyasint,omitempty"`
}

// ErrorEvent captures a stream error.
type ErrorEvent struct {
	// Message is the error text.
	Message string `cbor:"1,keyasint"`

	// Context describes what was being read.
	Context string `cbor:"2,keyasint,omitempty"`
}

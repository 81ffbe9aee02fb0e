package log

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/pclscope/pcl-go/pkg/seq"
)

func TestEncodeDecodeSequenceEvent(t *testing.T) {
	ts := time.Date(2026, 3, 1, 12, 0, 0, 123456789, time.UTC)
	in := Event{
		Timestamp: ts,
		SessionID: "5f8a",
		Kind:      KindSequence,
		Offset:    4096,
		Depth:     1,
		Source:    "job.pcl",
		Sequence: &SequenceEvent{
			Key:         "26663X",
			Label:       "<Esc>&f1X",
			Known:       true,
			Category:    seq.CategoryMacro,
			Action:      seq.ActionMacroStop,
			Overlay:     seq.OverlayMacroControl,
			Description: "Macro Control: Stop macro definition",
			Value:       int32p(1),
			Level:       0,
		},
	}

	data, err := EncodeEvent(in)
	if err != nil {
		t.Fatalf("EncodeEvent: %v", err)
	}
	out, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("DecodeEvent: %v", err)
	}

	if !out.Timestamp.Equal(ts) {
		t.Errorf("Timestamp = %v, want %v", out.Timestamp, ts)
	}
	if out.Sequence == nil {
		t.Fatal("Sequence payload lost")
	}
	if out.Sequence.Action != seq.ActionMacroStop {
		t.Errorf("Action = %s", out.Sequence.Action)
	}
	if out.Sequence.Value == nil || *out.Sequence.Value != 1 {
		t.Errorf("Value = %v", out.Sequence.Value)
	}
	if out.Session != nil || out.Error != nil {
		t.Error("unexpected payloads set")
	}
}

func TestDecodeEventRejectsGarbage(t *testing.T) {
	if _, err := DecodeEvent([]byte{0xff, 0x00}); err == nil {
		t.Error("expected error decoding garbage")
	}
}

func TestReadAll(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	for i := 0; i < 3; i++ {
		if err := enc.Encode(sequenceEvent("s", i, true, seq.CategoryColour)); err != nil {
			t.Fatal(err)
		}
	}
	full := buf.Len()

	events, err := ReadAll(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}

	events, err = ReadAll(bytes.NewReader(buf.Bytes()[:full-3]))
	if err == nil || errors.Is(err, io.EOF) {
		t.Errorf("truncated stream: err = %v", err)
	}
	if len(events) != 2 {
		t.Errorf("truncated stream: got %d events, want 2", len(events))
	}
}

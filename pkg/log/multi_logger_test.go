package log_test

import (
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/pclscope/pcl-go/pkg/log"
	"github.com/pclscope/pcl-go/pkg/log/mocks"
)

func TestMultiLoggerFansOut(t *testing.T) {
	first := mocks.NewMockLogger(t)
	second := mocks.NewMockLogger(t)
	first.EXPECT().Log(mock.Anything).Return().Times(2)
	second.EXPECT().Log(mock.Anything).Return().Times(2)

	m := log.NewMultiLogger(first, nil, second, log.NoopLogger{})
	m.Log(log.Event{SessionID: "s", Kind: log.KindSequence})
	m.Log(log.Event{SessionID: "s", Kind: log.KindError, Error: &log.ErrorEvent{Message: "eof"}})
}

func TestMultiLoggerEmpty(t *testing.T) {
	log.NewMultiLogger().Log(log.Event{})
}

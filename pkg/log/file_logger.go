package log

import (
	"os"
	"sync"

	"github.com/fxamacker/cbor/v2"
)

// FileLogger writes trace events to a file in CBOR format.
// It is safe for concurrent use from multiple goroutines.
type FileLogger struct {
	file    *os.File
	encoder *cbor.Encoder
	mu      sync.Mutex
	closed  bool
	written uint64
	err     error
}

// FileOption configures NewFileLogger.
type FileOption func(*int)

// WithTruncate starts a fresh file instead of appending to an existing one.
func WithTruncate() FileOption {
	return func(flags *int) {
		*flags = (*flags &^ os.O_APPEND) | os.O_TRUNC
	}
}

// NewFileLogger creates a FileLogger that writes to path. By default new
// events are appended to an existing file. The file is created with
// permissions 0644 if it doesn't exist.
func NewFileLogger(path string, opts ...FileOption) (*FileLogger, error) {
	flags := os.O_CREATE | os.O_APPEND | os.O_WRONLY
	for _, opt := range opts {
		opt(&flags)
	}
	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return nil, err
	}
	return &FileLogger{
		file:    f,
		encoder: NewEncoder(f),
	}, nil
}

// Log writes an event to the file. Encoding errors do not interrupt the
// caller; the first one is kept and reported by Err.
func (l *FileLogger) Log(event Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}

	if err := l.encoder.Encode(event); err != nil {
		if l.err == nil {
			l.err = err
		}
		return
	}
	l.written++
}

// Written returns the number of events written.
func (l *FileLogger) Written() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.written
}

// Err returns the first write error, if any.
func (l *FileLogger) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Close closes the file. It is safe to call Close multiple times; later
// Log calls are silently ignored.
func (l *FileLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}

	l.closed = true
	return l.file.Close()
}

// Compile-time interface satisfaction check.
var _ Logger = (*FileLogger)(nil)

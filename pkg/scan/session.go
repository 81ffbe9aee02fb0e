package scan

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/pclscope/pcl-go/pkg/classify"
	"github.com/pclscope/pcl-go/pkg/log"
	"github.com/pclscope/pcl-go/pkg/seq"
)

// Summary holds the totals of one session.
type Summary struct {
	Sequences uint64
	Unknown   uint64
	Bytes     int64

	// MaxDepth is the deepest macro nesting seen.
	MaxDepth int

	// Payloads is the number of payload bytes skipped.
	Payloads int64
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the operational logger.
func WithLogger(l *slog.Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithObserver registers a function called with every classified token.
func WithObserver(fn func(Token, classify.Result)) SessionOption {
	return func(s *Session) {
		s.observe = fn
	}
}

// Session classifies every sequence of one stream.
type Session struct {
	scanner    *Scanner
	classifier *classify.Classifier
	logger     *slog.Logger
	observe    func(Token, classify.Result)

	depth   int
	summary Summary
}

// NewSession creates a session reading r and classifying with c.
func NewSession(r io.Reader, c *classify.Classifier, opts ...SessionOption) *Session {
	s := &Session{
		scanner:    NewScanner(r),
		classifier: c,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Depth returns the current macro nesting depth.
func (s *Session) Depth() int {
	return s.depth
}

// Run reads the stream to the end. It stops at the first lexical error or
// when ctx is cancelled, returning the totals so far with the error.
func (s *Session) Run(ctx context.Context) (Summary, error) {
	s.classifier.LogSession(log.SessionEvent{State: log.SessionStart}, 0)
	s.logger.Debug("session started", "session", s.classifier.SessionID())

	err := s.run(ctx)
	s.summary.Bytes = s.scanner.Offset()

	if err != nil {
		s.classifier.LogError(err, "scan", s.scanner.Offset(), s.depth)
		s.logger.Warn("session stopped", "session", s.classifier.SessionID(), "offset", s.scanner.Offset(), "error", err)
	}
	s.classifier.LogSession(log.SessionEvent{
		State:     log.SessionEnd,
		Sequences: s.summary.Sequences,
		Unknown:   s.summary.Unknown,
		Bytes:     s.summary.Bytes,
	}, s.summary.Bytes)
	s.logger.Debug("session ended",
		"session", s.classifier.SessionID(),
		"sequences", s.summary.Sequences,
		"unknown", s.summary.Unknown,
		"bytes", s.summary.Bytes,
	)
	return s.summary, err
}

func (s *Session) run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		tok, err := s.scanner.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		res := s.classifier.ClassifyQuery(classify.Query{
			Ind:    tok.Ind,
			Group:  tok.Group,
			Term:   tok.Term,
			Exact:  tok.Exact,
			Value:  tok.Value,
			Depth:  s.depth,
			Offset: tok.Offset,
		})
		s.summary.Sequences++
		if !res.Known {
			s.summary.Unknown++
		}
		if s.observe != nil {
			s.observe(tok, res)
		}

		switch res.Entry.Action {
		case seq.ActionMacroStart:
			s.depth++
			s.summary.MaxDepth = max(s.summary.MaxDepth, s.depth)
		case seq.ActionMacroStop:
			if s.depth > 0 {
				s.depth--
			}
		}

		if res.Entry.Flags.Has(seq.FlagValueIsLen) && tok.Value > 0 {
			if err := s.scanner.Skip(int64(tok.Value)); err != nil {
				return err
			}
			s.summary.Payloads += int64(tok.Value)
		}
	}
}

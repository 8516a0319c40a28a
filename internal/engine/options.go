package engine

import (
	"github.com/dshills/anchorage/internal/engine/text"
)

// Logger is the logging surface the session uses.
type Logger interface {
	Debug(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}

// Option configures a Session during creation.
type Option func(*Session)

// WithLogger sets the logger for lifecycle messages.
func WithLogger(l Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTextOptions sets options applied to every text the session opens.
func WithTextOptions(opts ...text.Option) Option {
	return func(s *Session) {
		s.textOpts = append(s.textOpts, opts...)
	}
}

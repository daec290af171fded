package logging

import (
	"context"

	log "github.com/sirupsen/logrus"
)

type loggerKeyType int

const LoggerKey loggerKeyType = iota

// WithLogger returns a new context with the provided logger. Use in
// combination with logger.WithField(s) for great effect.
func WithLogger(ctx context.Context, logger *log.Entry) context.Context {
	l := logger.WithContext(ctx)
	return context.WithValue(ctx, LoggerKey, l)
}

// FromContext retrieves the current logger from the context. If no logger is
// available, fallback is returned, or an entry of the standard logger when
// fallback is nil.
func FromContext(ctx context.Context, fallback *log.Entry) *log.Entry {
	if ctx != nil {
		if logger, ok := ctx.Value(LoggerKey).(*log.Entry); ok && logger != nil {
			return logger
		}
	}
	if fallback != nil {
		return fallback
	}
	return log.NewEntry(log.StandardLogger())
}

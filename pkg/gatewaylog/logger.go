package gatewaylog

import (
	"strings"

	"go.uber.org/zap"
)

// Fields carries structured context for one log entry.
type Fields map[string]any

// Logger is the observability seam injected into every gateway component.
// Implementations must tolerate nil field maps. Secrets are redacted before
// they reach the sink, see sanitize.
type Logger interface {
	Info(action string, fields Fields)
	Warn(action string, fields Fields)
	Error(action string, fields Fields)
}

// Field keys containing any of these fragments are redacted. Matches the
// Paystack key prefixes (sk_/pk_) on top of the generic ones.
var blockedKeyFragments = []string{"authorization", "secret", "sk_", "pk_"}

func sanitize(fields Fields) Fields {
	if len(fields) == 0 {
		return fields
	}
	out := make(Fields, len(fields))
	for k, v := range fields {
		out[k] = v
		lower := strings.ToLower(k)
		for _, blocked := range blockedKeyFragments {
			if strings.Contains(lower, blocked) {
				out[k] = "[REDACTED]"
				break
			}
		}
	}
	return out
}

func toZapFields(fields Fields) []zap.Field {
	zf := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zf = append(zf, zap.Any(k, v))
	}
	return zf
}

type zapLogger struct {
	l *zap.Logger
}

// NewZapLogger wraps a zap logger into the gateway Logger interface.
func NewZapLogger(l *zap.Logger) Logger {
	return &zapLogger{l: l}
}

func (z *zapLogger) Info(action string, fields Fields) {
	z.l.Info(action, toZapFields(sanitize(fields))...)
}

func (z *zapLogger) Warn(action string, fields Fields) {
	z.l.Warn(action, toZapFields(sanitize(fields))...)
}

func (z *zapLogger) Error(action string, fields Fields) {
	z.l.Error(action, toZapFields(sanitize(fields))...)
}

type nopLogger struct{}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	return nopLogger{}
}

func (nopLogger) Info(string, Fields)  {}
func (nopLogger) Warn(string, Fields)  {}
func (nopLogger) Error(string, Fields) {}

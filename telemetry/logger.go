// Package telemetry provides optional, caller-injected logging and
// metrics for code built on top of the wire decoders/encoders. Nothing in
// internal/wire or the core of pkg/http calls into this package directly
// — the decoders take no logger and emit no side effects on their own,
// per the no-hidden-I/O requirement on the wire core. Callers that want
// observability wire a Logger/Metrics into their own request-handling
// loop, driving it from the event log a decoder already returns.
package telemetry

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field is a single structured logging key/value pair.
type Field = zap.Field

// String, Int, and Err construct Fields, mirroring the subset of
// zap.Field constructors this package's callers need.
func String(key, value string) Field      { return zap.String(key, value) }
func Int(key string, value int) Field     { return zap.Int(key, value) }
func Int64(key string, value int64) Field { return zap.Int64(key, value) }
func Err(err error) Field                 { return zap.Error(err) }

// Logger is the logging surface this package's callers depend on. It is
// never invoked by internal/wire or pkg/http's decoders/encoders
// directly — only by code built on top of them, such as
// cmd/httpwire-probe.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

type zapLogger struct {
	z *zap.Logger
}

// NewLogger returns a Logger backed by a zap production console encoder
// writing to stdout at the given minimum level ("debug", "info", "warn",
// "error"; anything else defaults to "info").
func NewLogger(level string) Logger {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewConsoleEncoder(cfg)
	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), toZapLevel(level))
	return &zapLogger{z: zap.New(core, zap.AddCaller())}
}

func toZapLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l *zapLogger) Debug(msg string, fields ...Field) { l.z.Debug(msg, fields...) }
func (l *zapLogger) Info(msg string, fields ...Field)  { l.z.Info(msg, fields...) }
func (l *zapLogger) Warn(msg string, fields ...Field)  { l.z.Warn(msg, fields...) }
func (l *zapLogger) Error(msg string, fields ...Field) { l.z.Error(msg, fields...) }
func (l *zapLogger) With(fields ...Field) Logger       { return &zapLogger{z: l.z.With(fields...)} }

type noopLogger struct{}

// NewNoopLogger returns a Logger that discards everything — the default
// for a caller that hasn't opted into observability.
func NewNoopLogger() Logger { return noopLogger{} }

func (noopLogger) Debug(string, ...Field) {}
func (noopLogger) Info(string, ...Field)  {}
func (noopLogger) Warn(string, ...Field)  {}
func (noopLogger) Error(string, ...Field) {}
func (l noopLogger) With(...Field) Logger { return l }

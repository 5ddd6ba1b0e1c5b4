package logger

import (
	"context"
)

type nopLogger struct{}

// NewNop returns a Logger that discards all output. Intended for
// tests, in the spirit of zap.NewNop.
func NewNop() Logger {
	return nopLogger{}
}

func (nopLogger) Debugw(string, ...any) {}
func (nopLogger) Infow(string, ...any)  {}
func (nopLogger) Warnw(string, ...any)  {}
func (nopLogger) Errorw(string, ...any) {}

func (l nopLogger) Ctx(context.Context) Logger { return l }
func (l nopLogger) With(...any) Logger         { return l }

func (nopLogger) WithRequestID(ctx context.Context, _ string) context.Context { return ctx }
func (nopLogger) GenerateRequestID() string                                   { return "" }
func (nopLogger) GetRequestID(context.Context) string                         { return "" }

func (nopLogger) LogAttrs(context.Context, Level, string, ...Attr) {}

package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger adapts a zap sugared logger to the Logger interface.
type ZapLogger struct {
	l *zap.SugaredLogger
}

// NewZapLogger builds a JSON-encoded zap logger at the given level.
// Unknown level strings fall back to info.
func NewZapLogger(level string) (*ZapLogger, error) {
	lvl := zapcore.InfoLevel
	if err := lvl.Set(strings.ToLower(level)); err != nil {
		lvl = zapcore.InfoLevel
	}

	cfg := zap.Config{
		Level:    zap.NewAtomicLevelAt(lvl),
		Encoding: "json",
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey: "message",
			LevelKey:   "level",
			TimeKey:    "ts",
			EncodeLevel: func(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
				enc.AppendString(l.String())
			},
			EncodeTime: zapcore.ISO8601TimeEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return &ZapLogger{l: logger.Sugar()}, nil
}

// NewZap wraps an existing zap logger. Useful in tests with zaptest/observer.
func NewZap(l *zap.Logger) *ZapLogger {
	return &ZapLogger{l: l.Sugar()}
}

func (z *ZapLogger) Debug(msg string, args ...any) { z.l.Debugw(msg, args...) }
func (z *ZapLogger) Info(msg string, args ...any)  { z.l.Infow(msg, args...) }
func (z *ZapLogger) Warn(msg string, args ...any)  { z.l.Warnw(msg, args...) }
func (z *ZapLogger) Error(msg string, args ...any) { z.l.Errorw(msg, args...) }

func (z *ZapLogger) With(args ...any) Logger {
	return &ZapLogger{l: z.l.With(args...)}
}

// Nop returns a logger that discards everything.
func Nop() Logger {
	return &ZapLogger{l: zap.NewNop().Sugar()}
}

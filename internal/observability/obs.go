package observability

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger writes JSON lines to stderr, leaving stdout to the console session.
type Logger struct {
	*zap.SugaredLogger
}

func New(level string) *Logger {
	return NewWithWriter(level, os.Stderr)
}

func NewWithWriter(level string, w io.Writer) *Logger {
	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.AddSync(w), parseLevel(level))
	return &Logger{SugaredLogger: zap.New(core).Sugar()}
}

func FromZap(l *zap.Logger) *Logger {
	return &Logger{SugaredLogger: l.Sugar()}
}

func Nop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}

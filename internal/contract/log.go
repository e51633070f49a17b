package contract

import (
	"sync"

	"github.com/huangsam/scorecard/schema"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	loggerMu sync.RWMutex
	logger   = zap.NewNop().Sugar()
)

// ParseLogLevel maps a configured level onto zap. Unknown levels fall back to warn.
func ParseLogLevel(level schema.LogLevel) zapcore.Level {
	switch level {
	case schema.DebugLevel:
		return zapcore.DebugLevel
	case schema.InfoLevel:
		return zapcore.InfoLevel
	case schema.ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}

// InitLogger replaces the process logger with a console logger on stderr.
// Stdout stays reserved for rendered output and the MCP stdio stream.
func InitLogger(level schema.LogLevel) error {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(ParseLogLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    encoderCfg,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	l, err := cfg.Build()
	if err != nil {
		return err
	}
	SetLogger(l.Sugar())
	return nil
}

// SetLogger installs l as the process logger. A nil logger discards everything.
func SetLogger(l *zap.SugaredLogger) {
	if l == nil {
		l = zap.NewNop().Sugar()
	}
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = l
}

// Logger returns the process logger.
func Logger() *zap.SugaredLogger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

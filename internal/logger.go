package internal

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// The TUI owns the terminal, so logs go to a file in the data directory.
// Until InitLogger is called (or if it fails) the logger is a nop, which
// also keeps tests quiet.
var logger = zap.NewNop().Sugar()

// InitLogger configures file-based logging. Verbose enables debug level.
func InitLogger(path string, verbose bool) error {
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build()
	if err != nil {
		return err
	}
	logger = l.Sugar()
	return nil
}

// Logger returns the shared application logger.
func Logger() *zap.SugaredLogger {
	return logger
}

// SyncLogger flushes buffered log entries. Safe to call on shutdown.
func SyncLogger() {
	_ = logger.Sync()
}

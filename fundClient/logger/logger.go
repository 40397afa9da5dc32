package logger

import (
	"io"
	"os"
	"time"

	"cosmossdk.io/log"
	"github.com/rs/zerolog"

	"github.com/pushchain/fund-distributor/fundClient/config"
)

// New creates a new zerolog logger writing to w.
// Supports console/json format, level filtering, and optional sampling.
func New(w io.Writer, logLevel int, logFormat string, logSampler bool) zerolog.Logger {
	writer := w
	if logFormat != "json" {
		writer = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}
	}

	logger := zerolog.New(writer).
		Level(zerolog.Level(logLevel)).
		With().
		Timestamp().
		Logger()

	if logSampler {
		logger = logger.Sample(&zerolog.BasicSampler{N: 5})
	}
	return logger
}

// Init builds the process logger from cfg. Logs go to stderr so command output stays clean.
func Init(cfg config.Config) zerolog.Logger {
	return New(os.Stderr, cfg.LogLevel, cfg.LogFormat, cfg.LogSampler)
}

// ForSDK adapts a zerolog logger to the cosmossdk.io/log interface used by the keeper and the store.
func ForSDK(l zerolog.Logger) log.Logger {
	return log.NewCustomLogger(l)
}

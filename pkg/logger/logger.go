// Package logger holds the package level Default logger used by the containers
// that were not given a logger of their own.
package logger

import (
	"os"

	"go.llib.dev/dsa/pkg/logging"
)

// Default level can be set through the LOG_LEVEL environment variable.
var Default = &logging.Logger{Level: levelFromENV()}

func levelFromENV() logging.Level {
	for _, envKey := range []string{"LOG_LEVEL", "LOGGER_LEVEL", "LOGGING_LEVEL"} {
		if raw, ok := os.LookupEnv(envKey); ok {
			if level, ok := logging.ParseLevel(raw); ok {
				return level
			}
		}
	}
	return logging.LevelInfo
}

type testingTB interface {
	Helper()
	Cleanup(func())
}

// Stub the logger.Default and return the buffer where the logging output will be recorded.
// Stub will restore the logger.Default after the test.
func Stub(tb testingTB) logging.StubOutput {
	tb.Helper()
	og := Default
	tb.Cleanup(func() { Default = og })
	l, out := logging.Stub(tb)
	Default = l
	return out
}

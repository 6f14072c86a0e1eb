package cargo

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the package logger. It is a no-op logger unless
// SetLogger was called.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger installs a logger for registry and engine boundary events.
// Call it during startup, before component registration runs. The pure
// codec and framing paths never log.
func SetLogger(l *zap.Logger) {
	logger = l
}

func componentField(c Component) zap.Field {
	return zap.String("component", c.TypeName())
}

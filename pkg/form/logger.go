package form

import (
	"sync"

	"go.uber.org/zap"
)

var (
	loggerMu sync.RWMutex
	logger   = zap.NewNop()
)

// SetLogger configures the package's diagnostic logger. Usage warnings, such
// as change or blur events that carry no field name, are reported here.
// Passing nil restores the no-op default.
func SetLogger(l *zap.Logger) {
	loggerMu.Lock()
	if l == nil {
		logger = zap.NewNop()
	} else {
		logger = l
	}
	loggerMu.Unlock()
}

// Logger returns the package's diagnostic logger.
func Logger() *zap.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

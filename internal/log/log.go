// Package log holds the library-wide logger for GoFit.
//
// The logger is a no-op by default: a library must stay silent unless the
// application opts in. Applications enable logging by installing their own
// zerolog logger:
//
//	log.SetLogger(zerolog.New(os.Stderr).With().Timestamp().Logger())
package log

import (
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	logger = zerolog.Nop()
)

// Logger returns the current library logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// SetLogger installs the library logger.
func SetLogger(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

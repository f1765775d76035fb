// Copyright 2025 GoFit ML Library. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package log configures GoFit's library-wide logging.
//
// GoFit is silent by default. Applications that want to see fit progress
// install a zerolog logger:
//
//	gofitlog.SetLogger(zerolog.New(os.Stderr).With().Timestamp().Logger())
package log

import (
	"github.com/rs/zerolog"

	"github.com/gofit-ml/gofit/internal/log"
)

// Logger returns the current library logger.
func Logger() zerolog.Logger {
	return log.Logger()
}

// SetLogger installs the library logger.
func SetLogger(l zerolog.Logger) {
	log.SetLogger(l)
}

package testutil

import (
	"io"

	"github.com/dtroode/gophfeed/internal/logger"
)

// MakeNoopLogger returns a logger that discards every record.
func MakeNoopLogger() *logger.Logger {
	return logger.NewWriter(io.Discard, 0)
}

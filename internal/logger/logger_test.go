package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWriter_Level(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, 4)

	l.Info("hidden")
	l.Warn("Feed writer: shown", "post_id", "p1")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `msg="Feed writer: shown"`)
	assert.Contains(t, out, "post_id=p1")
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, 0).With("server", "localhost:50051")

	l.Info("dialing")
	assert.Contains(t, buf.String(), "server=localhost:50051")
}

package logger

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf)

	log.Info("booking confirmed: reference=%s", "REF-1")
	log.Warn("slot sold out: %d", 42)

	out := buf.String()
	assert.Contains(t, out, "booking confirmed: reference=REF-1")
	assert.Contains(t, out, "level=warning")
}

func TestNew(t *testing.T) {
	_, err := New("", "verbose")
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "logs", "gateway.log")
	log, err := New(file, "debug")
	require.NoError(t, err)

	log.Debug("started")
	assert.NoError(t, log.Close())
	assert.FileExists(t, file)
}

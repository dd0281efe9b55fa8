package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(&buf, "warn")
	require.NoError(t, err)

	l.Info("hidden")
	l.Warn("shown", "key", "value")
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "key=value")
	assert.Contains(t, out, "devhub")
}

func TestNew_BadLevel(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "loud")
	assert.Error(t, err)
}

func TestOpen_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hub.log")
	l, closer, err := Open(path, "info")
	require.NoError(t, err)
	l.Info("started")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "started")
}

func TestOpen_EmptyPathDiscards(t *testing.T) {
	l, closer, err := Open("", "debug")
	require.NoError(t, err)
	l.Debug("nowhere")
	assert.NoError(t, closer.Close())
}

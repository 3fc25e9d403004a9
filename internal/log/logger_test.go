package log

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_CreatesLogFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	l, err := New(dir)
	require.NoError(t, err)
	defer func() { _ = l.Close() }()

	_, err = os.Stat(filepath.Join(dir, FileName))
	assert.NoError(t, err)
}

func TestLogger_WritesToFile(t *testing.T) {
	dir := t.TempDir()
	l, err := New(dir)
	require.NoError(t, err)

	var console, stderr bytes.Buffer
	l.writer = &console
	l.errOut = &stderr

	l.Errorf("failed: %s", "boom")
	l.Debugf("quiet %d", 1)
	l.SetVerbose(true)
	l.Debugf("loud %d", 2)
	require.NoError(t, l.Close())

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "failed: boom")
	assert.Contains(t, string(data), "quiet 1")
	assert.Contains(t, string(data), "loud 2")

	assert.Contains(t, stderr.String(), "failed: boom")
	assert.NotContains(t, stderr.String(), "quiet 1")
	assert.Contains(t, stderr.String(), "loud 2")
}

func TestGlobal_WithoutInit(t *testing.T) {
	assert.NotPanics(t, func() {
		Debugf("dropped")
		Errorf("to stderr %d", 1)
	})
	assert.NoError(t, Close())
}

func TestInitAndClose(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir, false))
	Debugf("hello %s", "file")
	require.NoError(t, Close())

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello file")
}

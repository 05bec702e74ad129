package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesSessionTaggedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "cppviz.log")
	logger, err := New(path, "debug")
	require.NoError(t, err)

	logger.Debug("dispatch")
	_ = logger.Sync()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"msg":"dispatch"`)
	assert.Contains(t, string(raw), `"session":`)
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "x.log"), "loud")
	assert.Error(t, err)
}

package logseqio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n        int64
		expected string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{1024 * 1024, "1.0 MiB"},
		{1024 * 1024 * 1024, "1.0 GiB"},
	}
	for _, tc := range tests {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatBytes(tc.n))
		})
	}
}

func TestOutputDirectoryStartupCleansExisting(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out")
	require.NoError(t, os.MkdirAll(out, 0o755))
	stale := filepath.Join(out, "stale.txt")
	require.NoError(t, os.WriteFile(stale, []byte("x"), 0o644))

	entry := NewOutputDirectory(out)
	require.NoError(t, entry.Startup())

	_, err := os.Stat(stale)
	assert.True(t, os.IsNotExist(err))
	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestGraphDirectoryStartupFailsWhenMissing(t *testing.T) {
	entry := NewGraphDirectory(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, entry.Startup())
}

func TestGraphDirectoryStartupSucceedsWhenPresent(t *testing.T) {
	dir := t.TempDir()
	entry := NewGraphDirectory(dir)
	assert.NoError(t, entry.Startup())
}

func TestNewFileCreatesAndValidates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "file.txt")
	entry := NewFile(path)
	require.NoError(t, entry.Startup())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}

func TestValidateRejectsWrongKind(t *testing.T) {
	dir := t.TempDir()
	entry := NewConfigFile(dir) // a directory, but ConfigFile expects a file
	assert.Error(t, entry.Validate())
}

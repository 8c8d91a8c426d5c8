package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureParentDirCreatesMissingDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "state.db")

	got, err := EnsureParentDir(path)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestEnsureParentDirExistingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	got, err := EnsureParentDir(path)
	require.NoError(t, err)
	assert.Equal(t, path, got)
}

func TestEnsureParentDirBareFilename(t *testing.T) {
	got, err := EnsureParentDir("state.db")
	require.NoError(t, err)
	assert.Equal(t, "state.db", got)
}

package watcher

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchesPath(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "vote.arff")
	require.NoError(t, os.WriteFile(target, []byte("@relation vote"), 0o644))

	other := filepath.Join(dir, "other.arff")
	require.NoError(t, os.WriteFile(other, []byte("@relation other"), 0o644))

	link := filepath.Join(dir, "link.arff")
	require.NoError(t, os.Symlink(target, link))

	assert.True(t, matchesPath(target, target))
	assert.False(t, matchesPath(target, other))
	assert.True(t, matchesPath(target, link), "symlink to the watched file")
	assert.False(t, matchesPath(target, filepath.Join(dir, "missing.arff")))
}

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootResolver_ResolveRoot(t *testing.T) {
	t.Run("from a nested directory", func(t *testing.T) {
		root, _ := newTestRepo(t, "")
		nested := filepath.Join(root, "module", "sensor", "test")
		require.NoError(t, os.MkdirAll(nested, 0755))

		resolved, err := NewRootResolver(nested).ResolveRoot()
		require.NoError(t, err)
		assert.Equal(t, root, resolved)
	})

	t.Run("from the working directory", func(t *testing.T) {
		root, _ := newTestRepo(t, "")

		originalDir, err := os.Getwd()
		require.NoError(t, err)
		defer os.Chdir(originalDir)
		require.NoError(t, os.Chdir(filepath.Join(root, "framework")))

		resolved, err := NewRootResolver("").ResolveRoot()
		require.NoError(t, err)

		// the temp dir may sit behind a symlink, compare resolved paths
		expected, err := filepath.EvalSymlinks(root)
		require.NoError(t, err)
		actual, err := filepath.EvalSymlinks(resolved)
		require.NoError(t, err)
		assert.Equal(t, expected, actual)
	})

	t.Run("unit_test without cfg.yml is skipped", func(t *testing.T) {
		root, _ := newTestRepo(t, "")
		inner := filepath.Join(root, "product", "juno")
		require.NoError(t, os.MkdirAll(filepath.Join(inner, "unit_test"), 0755))

		resolved, err := NewRootResolver(inner).ResolveRoot()
		require.NoError(t, err)
		assert.Equal(t, root, resolved)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := NewRootResolver(t.TempDir()).ResolveRoot()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "repository root not found")
	})
}

func TestRootResolver_Defaults(t *testing.T) {
	root, _ := newTestRepo(t, "")
	resolver := NewRootResolver(root)

	cfg, err := resolver.DefaultConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "unit_test", "cfg.yml"), cfg)

	cmockPath, err := resolver.DefaultCMockPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "contrib", "cmock", "git"), cmockPath)

	_, err = NewRootResolver(t.TempDir()).DefaultCMockPath()
	assert.Error(t, err)
}

package fileops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/cmockgen/internal/errors"
)

func TestFileOps_WriteFile(t *testing.T) {
	fo := NewFileOps()
	dir := t.TempDir()

	t.Run("creates and truncates", func(t *testing.T) {
		path := filepath.Join(dir, "out.txt")
		require.NoError(t, fo.WriteFile(path, []byte("first content"), 0644))
		require.NoError(t, fo.WriteFile(path, []byte("second"), 0644))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "second", string(content))
	})

	t.Run("empty path", func(t *testing.T) {
		err := fo.WriteFile("", []byte("x"), 0644)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "file path cannot be empty")
	})

	t.Run("missing parent directory", func(t *testing.T) {
		path := filepath.Join(dir, "missing", "out.txt")
		err := fo.WriteFile(path, []byte("x"), 0644)
		require.Error(t, err)
		assert.True(t, errors.HasCode(err, errors.FileSystemErrorCode))
		assert.Contains(t, err.Error(), "failed to write file")
	})
}

func TestFileOps_EnsureDir(t *testing.T) {
	fo := NewFileOps()
	dir := filepath.Join(t.TempDir(), "mocks", "internal")

	require.NoError(t, fo.EnsureDir(dir))
	assert.True(t, fo.IsDir(dir))
	require.NoError(t, fo.EnsureDir(dir))

	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))
	err := fo.EnsureDir(filepath.Join(blocker, "sub"))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.FileSystemErrorCode))
}

func TestFileOps_ReadAndRemove(t *testing.T) {
	fo := NewFileOps()
	path := filepath.Join(t.TempDir(), "Mockfoo.c")
	require.NoError(t, os.WriteFile(path, []byte("/* mock */"), 0644))

	content, err := fo.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/* mock */", string(content))
	assert.True(t, fo.IsFile(path))
	assert.True(t, fo.Exists(path))

	require.NoError(t, fo.RemoveFile(path))
	assert.False(t, fo.Exists(path))

	err = fo.RemoveFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file does not exist")

	_, err = fo.ReadFile(path)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.FileSystemErrorCode))
}

func TestPathValidator(t *testing.T) {
	pv := NewPathValidator()

	clean, err := pv.ValidateAndCleanOptional("mocks//internal/../Mockfoo.h")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("mocks", "Mockfoo.h"), clean)

	_, err = pv.ValidateAndCleanOptional("   ")
	assert.Error(t, err)

	_, err = pv.ValidateAndCleanOptional("bad\x00path")
	assert.Error(t, err)

	abs, err := pv.GetAbsolutePath("mocks")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(abs))

	dir := t.TempDir()
	assert.True(t, pv.IsDir(dir))
	assert.False(t, pv.IsFile(dir))
}

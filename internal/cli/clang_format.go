package cli

import (
	"path/filepath"

	"github.com/toyz/cmockgen/internal/utils/fileops"
)

const (
	// ClangFormatFileName is written next to the generated mocks
	ClangFormatFileName = ".clang-format"

	// ClangFormatContent keeps clang-format away from generated mocks
	ClangFormatContent = "{\n    \"DisableFormat\": true,\n    \"SortIncludes\": false\n}\n"
)

// WriteClangFormat writes the formatting exclusion file into mockPath and returns its path
func WriteClangFormat(fo *fileops.FileOps, mockPath string) (string, error) {
	if err := fo.EnsureDir(mockPath); err != nil {
		return "", err
	}

	path := filepath.Join(mockPath, ClangFormatFileName)
	if err := fo.WriteFile(path, []byte(ClangFormatContent), 0644); err != nil {
		return "", err
	}
	return path, nil
}

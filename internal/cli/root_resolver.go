package cli

import (
	"os"
	"path/filepath"

	"github.com/toyz/cmockgen/internal/errors"
	"github.com/toyz/cmockgen/internal/utils/fileops"
)

var (
	// defaultConfigFile is the configuration path relative to the repository root
	defaultConfigFile = filepath.Join("unit_test", "cfg.yml")

	// defaultCMockCheckout is the CMock checkout relative to the repository root
	defaultCMockCheckout = filepath.Join("contrib", "cmock", "git")
)

// RootResolver locates the firmware repository root
type RootResolver struct {
	startDir string
	fileOps  *fileops.FileOps
}

// NewRootResolver creates a resolver searching upwards from startDir,
// or from the working directory when startDir is empty
func NewRootResolver(startDir string) *RootResolver {
	return &RootResolver{
		startDir: startDir,
		fileOps:  fileops.NewFileOps(),
	}
}

// ResolveRoot returns the nearest ancestor directory containing unit_test/cfg.yml
func (r *RootResolver) ResolveRoot() (string, error) {
	currentDir := r.startDir
	if currentDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", r.fileOps.ErrorWrapper().WrapPathResolutionError(".", err)
		}
		currentDir = wd
	}

	currentDir, err := r.fileOps.PathValidator().GetAbsolutePath(currentDir)
	if err != nil {
		return "", r.fileOps.ErrorWrapper().WrapPathResolutionError(r.startDir, err)
	}

	for {
		if r.fileOps.IsFile(filepath.Join(currentDir, defaultConfigFile)) {
			return currentDir, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", errors.Newf(errors.ConfigurationErrorCode, "repository root not found: no %s in any parent directory", defaultConfigFile).
		WithSuggestion("Run cmockgen from inside the firmware repository").
		WithSuggestion("Pass the configuration explicitly with --cmock_option_cfg")
}

// DefaultConfigPath returns <repo_root>/unit_test/cfg.yml
func (r *RootResolver) DefaultConfigPath() (string, error) {
	root, err := r.ResolveRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, defaultConfigFile), nil
}

// DefaultCMockPath returns <repo_root>/contrib/cmock/git
func (r *RootResolver) DefaultCMockPath() (string, error) {
	root, err := r.ResolveRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, defaultCMockCheckout), nil
}

package cmock

import (
	"path/filepath"
	"strings"
)

// MockDir returns the directory generated mocks land in, including the subdirectory
func MockDir(opts Options) string {
	dir := opts.MockPath()
	if subdir := opts.String(KeySubdir, ""); subdir != "" {
		dir = filepath.Join(dir, subdir)
	}
	return dir
}

// MockName returns the base name CMock gives the mock of a header
func MockName(opts Options, header string) string {
	base := filepath.Base(header)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return opts.String(KeyMockPrefix, DefaultMockPrefix) + base + opts.String(KeyMockSuffix, "")
}

// MockFiles returns the source and header paths CMock generates for a header
func MockFiles(opts Options, header string) []string {
	dir := MockDir(opts)
	name := MockName(opts, header)
	return []string{
		filepath.Join(dir, name+".c"),
		filepath.Join(dir, name+".h"),
	}
}

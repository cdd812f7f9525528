package cmock

import (
	"fmt"
	"sort"
	"strings"
)

// Option keys cmockgen sets or reads; every other key is passed through untouched.
const (
	KeyVerbosity  = "verbosity"
	KeyMockPath   = "mock_path"
	KeyMockPrefix = "mock_prefix"
	KeyMockSuffix = "mock_suffix"
	KeySubdir     = "subdir"
)

// CMock's own defaults for the naming options.
const (
	DefaultVerbosity  = 3
	DefaultMockPath   = "mocks"
	DefaultMockPrefix = "Mock"
)

// Options maps CMock option names, without the leading symbol colon, to values.
type Options map[string]interface{}

// Defaults returns the options cmockgen starts from before any configuration is applied
func Defaults() Options {
	return Options{KeyVerbosity: DefaultVerbosity}
}

// Merge layers option sets left to right; keys in later layers win
func Merge(layers ...Options) Options {
	merged := make(Options)
	for _, layer := range layers {
		for key, value := range layer {
			merged[key] = value
		}
	}
	return merged
}

// String returns the option as a string, or fallback when it is unset or empty
func (o Options) String(key, fallback string) string {
	value, ok := o[key]
	if !ok || value == nil {
		return fallback
	}
	s, ok := value.(string)
	if !ok {
		s = fmt.Sprint(value)
	}
	if s == "" {
		return fallback
	}
	return s
}

// Keys returns the option names in sorted order
func (o Options) Keys() []string {
	keys := make([]string, 0, len(o))
	for key := range o {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// MockPath returns the directory CMock writes mocks under
func (o Options) MockPath() string {
	return o.String(KeyMockPath, DefaultMockPath)
}

// normalizeKey turns a Ruby symbol key such as ":mock_path" into "mock_path"
func normalizeKey(key string) string {
	return strings.TrimPrefix(key, ":")
}

// symbolKey turns "mock_path" back into the ":mock_path" form CMock reads
func symbolKey(key string) string {
	return ":" + normalizeKey(key)
}

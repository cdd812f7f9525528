package cmock

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge(t *testing.T) {
	yamlOpts := Options{KeyMockPath: "unit_test/mocks", KeyMockSuffix: "_yaml", "plugins": []interface{}{":ignore"}}
	flagOpts := Options{KeyMockSuffix: "_flag"}

	merged := Merge(Defaults(), yamlOpts, flagOpts)

	assert.Equal(t, Options{
		KeyVerbosity:  DefaultVerbosity,
		KeyMockPath:   "unit_test/mocks",
		KeyMockSuffix: "_flag",
		"plugins":     []interface{}{":ignore"},
	}, merged)

	// inputs are left untouched
	assert.Equal(t, "_yaml", yamlOpts[KeyMockSuffix])
	assert.NotContains(t, flagOpts, KeyVerbosity)
}

func TestMerge_YAMLOverridesDefaults(t *testing.T) {
	merged := Merge(Defaults(), Options{KeyVerbosity: 1})
	assert.Equal(t, 1, merged[KeyVerbosity])
}

func TestOptions_String(t *testing.T) {
	opts := Options{
		"text":  "value",
		"num":   3,
		"empty": "",
		"nil":   nil,
	}

	assert.Equal(t, "value", opts.String("text", "x"))
	assert.Equal(t, "3", opts.String("num", "x"))
	assert.Equal(t, "x", opts.String("empty", "x"))
	assert.Equal(t, "x", opts.String("nil", "x"))
	assert.Equal(t, "x", opts.String("missing", "x"))
}

func TestOptions_Keys(t *testing.T) {
	opts := Options{KeySubdir: "a", KeyMockPath: "b", KeyVerbosity: 3}
	assert.Equal(t, []string{KeyMockPath, KeySubdir, KeyVerbosity}, opts.Keys())
}

func TestKeyNormalization(t *testing.T) {
	assert.Equal(t, "mock_path", normalizeKey(":mock_path"))
	assert.Equal(t, "mock_path", normalizeKey("mock_path"))
	assert.Equal(t, ":mock_path", symbolKey("mock_path"))
	assert.Equal(t, ":mock_path", symbolKey(":mock_path"))
}

func TestMockFiles(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		header   string
		expected []string
	}{
		{
			name:   "defaults",
			opts:   Options{},
			header: "framework/include/fwk_id.h",
			expected: []string{
				filepath.Join("mocks", "Mockfwk_id.c"),
				filepath.Join("mocks", "Mockfwk_id.h"),
			},
		},
		{
			name: "subdir and suffix",
			opts: Options{
				KeyMockPath:   "unit_test/unity_mocks/mocks",
				KeySubdir:     "internal",
				KeyMockSuffix: "_extra",
			},
			header: "framework/include/internal/fwk_core_internal.h",
			expected: []string{
				filepath.Join("unit_test", "unity_mocks", "mocks", "internal", "Mockfwk_core_internal_extra.c"),
				filepath.Join("unit_test", "unity_mocks", "mocks", "internal", "Mockfwk_core_internal_extra.h"),
			},
		},
		{
			name:   "custom prefix",
			opts:   Options{KeyMockPrefix: "Fake", KeyMockPath: "out"},
			header: "mod_sensor.h",
			expected: []string{
				filepath.Join("out", "Fakemod_sensor.c"),
				filepath.Join("out", "Fakemod_sensor.h"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MockFiles(tt.opts, tt.header))
		})
	}
}

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/cmockgen/internal/cmock"
	"github.com/toyz/cmockgen/internal/errors"
)

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			Files: []string{"framework/include/fwk_id.h"},
			Ruby:  "ruby",
		}
	}

	tests := []struct {
		name     string
		modify   func(*Config)
		contains string
	}{
		{"valid", func(*Config) {}, ""},
		{"no headers", func(c *Config) { c.Files = nil }, ""},
		{"valid overrides", func(c *Config) {
			c.Overrides = cmock.Options{cmock.KeyMockPath: "mocks", cmock.KeyMockSuffix: "_ut", cmock.KeySubdir: "internal"}
		}, ""},
		{"empty subdir override", func(c *Config) { c.Overrides = cmock.Options{cmock.KeySubdir: ""} }, ""},
		{"blank header", func(c *Config) { c.Files = append(c.Files, "") }, "invalid file_name[1]"},
		{"empty ruby", func(c *Config) { c.Ruby = " " }, "invalid ruby"},
		{"empty mock path", func(c *Config) { c.Overrides = cmock.Options{cmock.KeyMockPath: ""} }, "invalid mock_path"},
		{"suffix with separator", func(c *Config) { c.Overrides = cmock.Options{cmock.KeyMockSuffix: "a/b"} }, "invalid mock_suffix"},
		{"absolute subdir", func(c *Config) { c.Overrides = cmock.Options{cmock.KeySubdir: "/tmp"} }, "invalid subdir"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := valid()
			tt.modify(&config)

			err := config.Validate()
			if tt.contains == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
			assert.True(t, errors.HasCode(err, errors.UsageErrorCode))
		})
	}
}

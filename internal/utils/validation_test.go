package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	withField := ValidationError{Field: "mock_suffix", Value: "a/b", Message: "must not contain a path separator"}
	assert.Equal(t, "invalid mock_suffix: must not contain a path separator", withField.Error())

	withoutField := ValidationError{Message: "bad input"}
	assert.Equal(t, "validation error: bad input", withoutField.Error())
}

func TestNotBlank(t *testing.T) {
	validator := NotBlank("file_name")

	assert.NoError(t, validator("fwk_id.h"))
	assert.Error(t, validator(""))
	assert.Error(t, validator("   "))
}

func TestNoPathSeparator(t *testing.T) {
	validator := NoPathSeparator("mock_suffix")

	assert.NoError(t, validator("_ut"))
	assert.NoError(t, validator(""))
	assert.Error(t, validator("ut/x"))
	assert.Error(t, validator(`ut\x`))
}

func TestRelativePath(t *testing.T) {
	validator := RelativePath("subdir")

	tests := []struct {
		value   string
		wantErr bool
	}{
		{"", false},
		{"internal", false},
		{"a/b", false},
		{"a/../b", false},
		{"/abs", true},
		{"..", true},
		{"../escape", true},
		{"a/../../escape", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			err := validator(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEach(t *testing.T) {
	validator := ValidateEach("file_name", NotBlank("file_name"))

	assert.NoError(t, validator(nil))
	assert.NoError(t, validator([]string{"a.h", "b.h"}))

	err := validator([]string{"a.h", " "})
	require.Error(t, err)

	var ve ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "file_name[1]", ve.Field)
	assert.Equal(t, "invalid file_name[1]: cannot be empty", err.Error())
}

func TestValidatorChain(t *testing.T) {
	chain := NewValidatorChain(NotBlank("mock_suffix")).Add(NoPathSeparator("mock_suffix"))

	assert.NoError(t, chain.Validate("_ut"))
	assert.EqualError(t, chain.Validate(""), "invalid mock_suffix: cannot be empty")
	assert.EqualError(t, chain.Validate("a/b"), "invalid mock_suffix: must not contain a path separator")
}

package cli

import (
	"github.com/toyz/cmockgen/internal/cmock"
	"github.com/toyz/cmockgen/internal/errors"
	"github.com/toyz/cmockgen/internal/utils"
)

// Config holds the configuration for a single cmockgen invocation
type Config struct {
	// Files is the ordered list of headers to mock, passed to CMock verbatim
	Files []string

	// Overrides holds the options given explicitly on the command line.
	// They take precedence over values from the configuration file.
	Overrides cmock.Options

	// ConfigPath is the CMock YAML configuration file
	// If empty, <repo_root>/unit_test/cfg.yml is used
	ConfigPath string

	// CMockPath is the CMock checkout used to generate mocks
	// If empty, <repo_root>/contrib/cmock/git is used
	CMockPath string

	// Ruby is the interpreter CMock runs under
	Ruby string

	// Clean removes generated mocks instead of generating them
	Clean bool
}

var (
	validateFiles      = utils.ValidateEach("file_name", utils.NotBlank("file_name"))
	validateMockPath   = utils.NotBlank(cmock.KeyMockPath)
	validateMockSuffix = utils.NoPathSeparator(cmock.KeyMockSuffix)
	validateSubdir     = utils.RelativePath(cmock.KeySubdir)
	validateRuby       = utils.NotBlank("ruby")
)

// Validate checks the values that come straight from the command line
func (c Config) Validate() error {
	if err := validateFiles(c.Files); err != nil {
		return usageError(err)
	}
	if err := validateRuby(c.Ruby); err != nil {
		return usageError(err).WithSuggestion("Leave --ruby unset to use the ruby found in PATH")
	}

	checks := []struct {
		key      string
		validate utils.Validator[string]
	}{
		{cmock.KeyMockPath, validateMockPath},
		{cmock.KeyMockSuffix, validateMockSuffix},
		{cmock.KeySubdir, validateSubdir},
	}
	for _, check := range checks {
		if _, ok := c.Overrides[check.key]; !ok {
			continue
		}
		if err := check.validate(c.Overrides.String(check.key, "")); err != nil {
			return usageError(err)
		}
	}
	return nil
}

func usageError(cause error) *errors.BaseError {
	return errors.Wrap(errors.UsageErrorCode, "invalid command line", cause).
		WithSuggestion("Run cmockgen --help for the list of flags")
}

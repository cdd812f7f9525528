package cmock

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/toyz/cmockgen/internal/errors"
)

// sectionKeys are the root keys CMock looks its options up under
var sectionKeys = []string{":cmock", "cmock"}

// LoadConfigFile reads a CMock YAML configuration file
func LoadConfigFile(path string) (Options, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		wrapped := errors.WrapConfigurationError(path, "read", err)
		if os.IsNotExist(err) {
			wrapped.WithSuggestion("Pass the configuration explicitly with --cmock_option_cfg")
		}
		return nil, wrapped
	}

	opts, err := ParseConfig(content)
	if err != nil {
		return nil, errors.WrapConfigurationError(path, "parse", err).
			WithSuggestion("Check the file is valid YAML with a :cmock: section")
	}
	return opts, nil
}

// ParseConfig decodes CMock options from YAML. The options are taken from the
// :cmock: section when present, otherwise from the whole document.
func ParseConfig(content []byte) (Options, error) {
	var document map[string]interface{}
	if err := yaml.Unmarshal(content, &document); err != nil {
		return nil, err
	}

	section := document
	for _, key := range sectionKeys {
		raw, ok := document[key]
		if !ok {
			continue
		}
		if raw == nil {
			section = nil
			break
		}
		nested, ok := raw.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("section %q must be a mapping, got %T", key, raw)
		}
		section = nested
		break
	}

	opts := make(Options, len(section))
	for key, value := range section {
		opts[normalizeKey(key)] = value
	}
	return opts, nil
}

// RenderConfig encodes options as a CMock configuration document with symbol keys
func RenderConfig(opts Options) ([]byte, error) {
	section := make(map[string]interface{}, len(opts))
	for key, value := range opts {
		section[symbolKey(key)] = value
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(map[string]interface{}{sectionKeys[0]: section}); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

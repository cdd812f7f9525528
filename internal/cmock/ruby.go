package cmock

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/toyz/cmockgen/internal/errors"
)

// stderrTailLines bounds how much CMock stderr is attached to a failure
const stderrTailLines = 20

// RubyGenerator runs CMock's command-line entry point with a Ruby interpreter
type RubyGenerator struct {
	Ruby      string    // interpreter executable, "ruby" when empty
	CMockPath string    // CMock checkout containing lib/cmock.rb
	TempDir   string    // where the rendered options file is written, os.TempDir() when empty
	Stdout    io.Writer // receives CMock stdout, discarded when nil
	Stderr    io.Writer // receives CMock stderr, discarded when nil
}

// NewRubyGenerator creates a generator for the CMock checkout at cmockPath
func NewRubyGenerator(ruby, cmockPath string) *RubyGenerator {
	return &RubyGenerator{
		Ruby:      ruby,
		CMockPath: cmockPath,
	}
}

// LoadConfig reads a CMock YAML configuration file
func (g *RubyGenerator) LoadConfig(path string) (Options, error) {
	return LoadConfigFile(path)
}

// Script returns the path of CMock's entry point
func (g *RubyGenerator) Script() string {
	return filepath.Join(g.CMockPath, "lib", "cmock.rb")
}

// SetupMocks renders opts into a temporary configuration and runs
// `ruby cmock.rb -o<config> files...`.
func (g *RubyGenerator) SetupMocks(ctx context.Context, opts Options, files []string) error {
	script := g.Script()
	if info, err := os.Stat(script); err != nil || info.IsDir() {
		return errors.ConfigurationError(script, "CMock entry point not found").
			WithContext("cmock_path", g.CMockPath).
			WithSuggestion("Point --cmock_path at a CMock checkout").
			WithSuggestion("Run `git submodule update --init` if CMock is vendored as a submodule")
	}

	configPath, err := g.writeOptions(opts)
	if err != nil {
		return err
	}
	defer os.Remove(configPath)

	args := make([]string, 0, len(files)+2)
	args = append(args, script, "-o"+configPath)
	args = append(args, files...)

	ruby := g.Ruby
	if ruby == "" {
		ruby = "ruby"
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, ruby, args...)
	cmd.Stdout = writerOrDiscard(g.Stdout)
	cmd.Stderr = io.MultiWriter(writerOrDiscard(g.Stderr), &stderr)

	if err := cmd.Run(); err != nil {
		genErr := errors.WrapGenerationError("generate mocks", err).
			WithContext("command", strings.Join(append([]string{ruby}, args...), " ")).
			WithContext("files", files)
		if tail := lastLines(stderr.String(), stderrTailLines); tail != "" {
			genErr.WithContext("stderr", tail)
		}
		if ctx.Err() != nil {
			genErr.WithCause(fmt.Errorf("%w: %v", ctx.Err(), err))
		}
		var notFound *exec.Error
		if stderrors.As(err, &notFound) || stderrors.Is(err, fs.ErrNotExist) {
			genErr.WithSuggestion("Install Ruby or pass its location with --ruby")
		}
		return genErr
	}
	return nil
}

// writeOptions stores the rendered options in a temporary file and returns its path
func (g *RubyGenerator) writeOptions(opts Options) (string, error) {
	content, err := RenderConfig(opts)
	if err != nil {
		return "", errors.WrapConfigurationError("<merged options>", "render", err)
	}

	file, err := os.CreateTemp(g.TempDir, "cmock-options-*.yml")
	if err != nil {
		return "", errors.WrapFileSystemError("create", filepath.Join(g.TempDir, "cmock-options-*.yml"), err)
	}
	_, err = file.Write(content)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(file.Name())
		return "", errors.WrapFileSystemError("write", file.Name(), err)
	}
	return file.Name(), nil
}

func writerOrDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}

// lastLines returns at most n trailing non-empty lines of s
func lastLines(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

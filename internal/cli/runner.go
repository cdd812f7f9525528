package cli

import (
	"context"
	"time"

	"github.com/toyz/cmockgen/internal/cmock"
	"github.com/toyz/cmockgen/internal/utils"
	"github.com/toyz/cmockgen/internal/utils/fileops"
)

// Summary describes what a run did
type Summary struct {
	ConfigPath       string
	Options          cmock.Options
	HeadersProcessed int
	MockPath         string
	MockFiles        []string
	ClangFormatPath  string
	RemovedFiles     []string
	Duration         time.Duration
}

// Runner coordinates configuration loading, mock generation and the
// formatting exclusion file
type Runner struct {
	generator   cmock.MockGenerator
	resolver    *RootResolver
	fileOps     *fileops.FileOps
	diagnostics *utils.DiagnosticSystem
	summary     Summary
}

// NewRunner creates a runner delegating mock generation to generator
func NewRunner(generator cmock.MockGenerator, resolver *RootResolver, diagnostics *utils.DiagnosticSystem) *Runner {
	if resolver == nil {
		resolver = NewRootResolver("")
	}
	if diagnostics == nil {
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticSilent)
	}
	return &Runner{
		generator:   generator,
		resolver:    resolver,
		fileOps:     fileops.NewFileOps(),
		diagnostics: diagnostics,
	}
}

// GetSummary returns the summary of the last run
func (r *Runner) GetSummary() Summary {
	return r.summary
}

// Run loads the configuration, merges the command-line overrides over it,
// generates mocks for config.Files and writes <mock_path>/.clang-format.
func (r *Runner) Run(ctx context.Context, config Config) error {
	startTime := time.Now()
	r.summary = Summary{}

	opts, err := r.loadOptions(config)
	if err != nil {
		return err
	}

	if len(config.Files) == 0 {
		r.diagnostics.Warn("No header files given with -f; CMock has nothing to mock")
	}

	r.diagnostics.StartProgress("Generating mocks")
	if err := r.generator.SetupMocks(ctx, opts, config.Files); err != nil {
		r.diagnostics.EndProgress(false, "")
		return err
	}
	r.diagnostics.EndProgress(true, "")

	mockPath := opts.MockPath()
	r.diagnostics.StartProgress("Writing " + ClangFormatFileName)
	clangFormatPath, err := WriteClangFormat(r.fileOps, mockPath)
	if err != nil {
		r.diagnostics.EndProgress(false, "")
		return err
	}
	r.diagnostics.EndProgress(true, clangFormatPath)

	r.summary.HeadersProcessed = len(config.Files)
	r.summary.MockPath = mockPath
	r.summary.ClangFormatPath = clangFormatPath
	for _, header := range config.Files {
		r.summary.MockFiles = append(r.summary.MockFiles, cmock.MockFiles(opts, header)...)
	}
	r.summary.Duration = time.Since(startTime)

	return nil
}

// Clean resolves the options the same way Run does and removes the mocks
// generated for config.Files together with the .clang-format file.
func (r *Runner) Clean(config Config) error {
	startTime := time.Now()
	r.summary = Summary{}

	opts, err := r.loadOptions(config)
	if err != nil {
		return err
	}

	r.diagnostics.StartProgress("Removing generated mocks")
	removed, err := NewCleaner(r.fileOps).CleanGeneratedFiles(opts, config.Files)
	r.summary.RemovedFiles = removed
	r.summary.HeadersProcessed = len(config.Files)
	r.summary.MockPath = opts.MockPath()
	r.summary.Duration = time.Since(startTime)
	if err != nil {
		r.diagnostics.EndProgress(false, "")
		return err
	}
	r.diagnostics.EndProgress(true, "")

	for _, path := range removed {
		r.diagnostics.Verbose("Removed %s", path)
	}
	return nil
}

// loadOptions resolves the configuration path, loads it and applies the overrides
func (r *Runner) loadOptions(config Config) (cmock.Options, error) {
	configPath := config.ConfigPath
	if configPath == "" {
		r.diagnostics.StartProgress("Resolving repository root")
		defaultPath, err := r.resolver.DefaultConfigPath()
		if err != nil {
			r.diagnostics.EndProgress(false, "")
			return nil, err
		}
		r.diagnostics.EndProgress(true, "")
		configPath = defaultPath
	}
	r.summary.ConfigPath = configPath

	r.diagnostics.StartProgress("Loading configuration")
	fileOpts, err := r.generator.LoadConfig(configPath)
	if err != nil {
		r.diagnostics.EndProgress(false, "")
		return nil, err
	}
	r.diagnostics.EndProgress(true, configPath)

	opts := cmock.Merge(cmock.Defaults(), fileOpts, config.Overrides)
	r.summary.Options = opts

	r.diagnostics.Debug("Merged CMock options:")
	r.diagnostics.Indent()
	for _, key := range opts.Keys() {
		r.diagnostics.Debug("%s = %v", key, opts[key])
	}
	r.diagnostics.Unindent()

	return opts, nil
}

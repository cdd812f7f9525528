package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/toyz/cmockgen/internal/cli"
	"github.com/toyz/cmockgen/internal/cmock"
	"github.com/toyz/cmockgen/internal/errors"
	"github.com/toyz/cmockgen/internal/utils"
)

// generatorFactory builds the mock generator for an invocation
type generatorFactory func(config cli.Config, resolver *cli.RootResolver, diagnostics *utils.DiagnosticSystem) cmock.MockGenerator

// app carries what a command invocation writes to and depends on
type app struct {
	stdout       io.Writer
	stderr       io.Writer
	workDir      string
	newGenerator generatorFactory
}

// flagValues are the raw command-line values before they become a cli.Config
type flagValues struct {
	mockPath   string
	files      []string
	configPath string
	mockSuffix string
	subdir     string
	cmockPath  string
	ruby       string
	clean      bool
	verbose    bool
	quiet      bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	a := &app{
		stdout:       os.Stdout,
		stderr:       os.Stderr,
		newGenerator: newRubyGenerator,
	}
	code := a.execute(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}

// execute runs the command and returns the process exit status
func (a *app) execute(ctx context.Context, args []string) int {
	var diagnostics *utils.DiagnosticSystem
	var verbose bool

	cmd := a.newRootCommand(func(d *utils.DiagnosticSystem, v bool) {
		diagnostics = d
		verbose = v
	})
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		// errors raised before RunE come from flag parsing and validation
		var coded errors.CodedError
		if diagnostics == nil && !stderrors.As(err, &coded) {
			err = errors.Wrap(errors.UsageErrorCode, "invalid command line", err).
				WithSuggestion("Run cmockgen --help for the list of flags")
		}
		if diagnostics == nil || diagnostics.Level() >= utils.DiagnosticError {
			cli.NewDiagnosticReporter(a.stderr, verbose).ReportError(err)
		}
		return 1
	}
	return 0
}

// newRootCommand builds the cobra command; onStart receives the diagnostics
// chosen from the flags before any work happens
func (a *app) newRootCommand(onStart func(*utils.DiagnosticSystem, bool)) *cobra.Command {
	values := &flagValues{}

	cmd := &cobra.Command{
		Use:   "cmockgen -f <header> [-f <header>...] [flags]",
		Short: "Generate CMock mocks for firmware headers",
		Long: `cmockgen loads the CMock options from a YAML file, applies the command-line
overrides on top of them, runs CMock for every header given with -f and
writes a .clang-format file into the mock directory so formatting tools
leave the generated mocks alone.

The configuration defaults to <repo_root>/unit_test/cfg.yml, where the
repository root is the nearest parent directory containing that file.`,
		Example: `  cmockgen -f framework/include/fwk_id.h
  cmockgen -m unit_test/unity_mocks/mocks -d internal -f framework/include/internal/fwk_core_internal.h
  cmockgen -o module/scmi/test/config_scmi.yml -s _ut -f module/scmi/include/mod_scmi.h
  cmockgen --clean -f framework/include/fwk_id.h`,
		Args:          noPositionalArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			diagnostics := newDiagnostics(values, a.stdout, a.stderr)
			onStart(diagnostics, values.verbose)
			return a.run(cmd, values, diagnostics)
		},
	}
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	flags := cmd.Flags()
	flags.StringVarP(&values.mockPath, "mock_path", "m", "", "directory the mocks are written to (CMock :mock_path:)")
	flags.StringArrayVarP(&values.files, "file_name", "f", nil, "header file to mock; repeat for more headers")
	flags.StringVarP(&values.configPath, "cmock_option_cfg", "o", "", "CMock YAML configuration (default <repo_root>/unit_test/cfg.yml)")
	flags.StringVarP(&values.mockSuffix, "mock_suffix", "s", "", "suffix appended to mock file names (CMock :mock_suffix:)")
	flags.StringVarP(&values.subdir, "subdir", "d", "", "subdirectory of the mock path for the generated files (CMock :subdir:)")
	flags.StringVar(&values.cmockPath, "cmock_path", "", "CMock checkout containing lib/cmock.rb (default <repo_root>/contrib/cmock/git)")
	flags.StringVar(&values.ruby, "ruby", "ruby", "Ruby interpreter used to run CMock")
	flags.BoolVar(&values.clean, "clean", false, "remove previously generated mocks for the given headers instead of generating")
	flags.BoolVar(&values.verbose, "verbose", false, "enable verbose output and detailed error reporting")
	flags.BoolVar(&values.quiet, "quiet", false, "only show errors")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	return cmd
}

// noPositionalArgs rejects bare arguments; headers are always given with -f
func noPositionalArgs(_ *cobra.Command, args []string) error {
	if len(args) > 0 {
		return errors.UsageError("unexpected argument %q", args[0]).
			WithSuggestion(fmt.Sprintf("Pass headers with -f, for example: cmockgen -f %s", args[0]))
	}
	return nil
}

// run turns the parsed flags into a cli.Config and executes it
func (a *app) run(cmd *cobra.Command, values *flagValues, diagnostics *utils.DiagnosticSystem) error {
	config := cli.Config{
		Files:      values.files,
		Overrides:  overridesFromFlags(cmd.Flags(), values),
		ConfigPath: values.configPath,
		CMockPath:  values.cmockPath,
		Ruby:       values.ruby,
		Clean:      values.clean,
	}
	if err := config.Validate(); err != nil {
		return err
	}

	resolver := cli.NewRootResolver(a.workDir)
	runner := cli.NewRunner(a.newGenerator(config, resolver, diagnostics), resolver, diagnostics)

	diagnostics.Section("CMock Mock Generator")
	if values.verbose {
		diagnostics.Subsection("Configuration")
		diagnostics.List("Headers: %s", strings.Join(config.Files, ", "))
		if config.ConfigPath != "" {
			diagnostics.List("Configuration file: %s", config.ConfigPath)
		}
		for _, key := range config.Overrides.Keys() {
			diagnostics.List("Override %s: %v", key, config.Overrides[key])
		}
	}

	if config.Clean {
		if err := runner.Clean(config); err != nil {
			return err
		}
		summary := runner.GetSummary()
		diagnostics.Success("Removed %d generated file(s) from %s", len(summary.RemovedFiles), summary.MockPath)
		return nil
	}

	diagnostics.Subsection("Mock Generation")
	if err := runner.Run(cmd.Context(), config); err != nil {
		return err
	}

	summary := runner.GetSummary()
	diagnostics.Summary("Mock generation complete", map[string]interface{}{
		"Configuration":     summary.ConfigPath,
		"Headers processed": summary.HeadersProcessed,
		"Mock path":         summary.MockPath,
		"Duration":          summary.Duration.Round(time.Millisecond),
	})
	if values.verbose && len(summary.MockFiles) > 0 {
		diagnostics.Subsection("Expected Mock Files")
		for _, file := range summary.MockFiles {
			diagnostics.List("%s", file)
		}
	}
	return nil
}

// overridesFromFlags collects only the option flags the user actually set,
// so unset flags never mask values from the configuration file
func overridesFromFlags(flags *pflag.FlagSet, values *flagValues) cmock.Options {
	overrides := cmock.Options{}
	if flags.Changed("mock_path") {
		overrides[cmock.KeyMockPath] = values.mockPath
	}
	if flags.Changed("mock_suffix") {
		overrides[cmock.KeyMockSuffix] = values.mockSuffix
	}
	if flags.Changed("subdir") {
		overrides[cmock.KeySubdir] = values.subdir
	}
	return overrides
}

func newDiagnostics(values *flagValues, stdout, stderr io.Writer) *utils.DiagnosticSystem {
	level := utils.DiagnosticInfo
	switch {
	case values.quiet:
		level = utils.DiagnosticError
	case values.verbose:
		level = utils.DiagnosticVerbose
	}
	return utils.NewDiagnosticSystemWithWriters(level, stdout, stderr)
}

// newRubyGenerator runs CMock from --cmock_path, or from the checkout under
// the repository root; CMock output goes through the diagnostic writers
func newRubyGenerator(config cli.Config, resolver *cli.RootResolver, diagnostics *utils.DiagnosticSystem) cmock.MockGenerator {
	cmockPath := config.CMockPath
	if cmockPath == "" {
		if defaultPath, err := resolver.DefaultCMockPath(); err == nil {
			cmockPath = defaultPath
		}
	}

	generator := cmock.NewRubyGenerator(config.Ruby, cmockPath)
	generator.Stdout = diagnostics.Output()
	generator.Stderr = diagnostics.ErrorOutput()
	return generator
}

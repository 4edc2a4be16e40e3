package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tungetti/checkup/internal/cli"
	"github.com/tungetti/checkup/internal/config"
	"github.com/tungetti/checkup/internal/constants"
	"github.com/tungetti/checkup/internal/exec"
	"github.com/tungetti/checkup/internal/logging"
	"github.com/tungetti/checkup/internal/manifest"
	"github.com/tungetti/checkup/internal/pkgmgr"
	"github.com/tungetti/checkup/internal/probe"
	"github.com/tungetti/checkup/internal/ui"
)

// CLI encapsulates the command-line interface for checkup.
type CLI struct {
	parser *cli.Parser
	config *config.Config
	logger logging.Logger
}

// NewCLI creates a new CLI instance.
func NewCLI() *CLI {
	return &CLI{
		parser: cli.NewParser(constants.AppName, Version, BuildTime, GitCommit),
	}
}

// Run parses arguments and executes the appropriate command.
// It returns an exit code suitable for os.Exit().
func (c *CLI) Run(args []string) int {
	result, err := c.parser.Parse(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Run '%s help' for usage.\n", constants.AppName)
		return constants.ExitValidation.Int()
	}

	if err := c.loadConfig(result); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return constants.ExitError.Int()
	}

	c.applyGlobalFlags(result.GlobalFlags)
	c.logger = c.buildLogger()

	if result.ShowHelp {
		return c.showHelp(result)
	}

	return c.executeCommand(result)
}

// loadConfig loads configuration from file and environment.
func (c *CLI) loadConfig(result *cli.ParseResult) error {
	configPath := result.GlobalFlags.ConfigFile
	if configPath == "" {
		configPath = config.DefaultConfig().ConfigPath()
	}

	loader := config.NewLoader(configPath)
	cfg, err := loader.Load()
	if err != nil {
		return err
	}

	c.config = cfg
	return nil
}

// applyGlobalFlags applies CLI global flags to the configuration.
// CLI flags take precedence over config file values.
func (c *CLI) applyGlobalFlags(flags cli.GlobalFlags) {
	if flags.Verbose {
		c.config.Verbose = true
	}
	if flags.Quiet {
		c.config.Quiet = true
	}
	if flags.NoColor {
		c.config.NoColor = true
	}
	if flags.LogFile != "" {
		c.config.LogFile = flags.LogFile
	}
	if flags.LogLevel != "" {
		c.config.LogLevel = flags.LogLevel
	}
}

// buildLogger creates the logger from the effective configuration.
// Logs go to stderr (or the configured file) so the report on stdout
// stays machine-readable.
func (c *CLI) buildLogger() logging.Logger {
	if c.config.LogFile != "" {
		logger, err := logging.NewFileLogger(c.config.LogFile, c.effectiveLevel())
		if err == nil {
			return logger
		}
		fmt.Fprintf(os.Stderr, "Warning: cannot open log file: %v\n", err)
	}

	opts := logging.DefaultOptions()
	opts.Level = c.effectiveLevel()
	opts.NoColor = c.config.NoColor
	return logging.New(opts)
}

func (c *CLI) effectiveLevel() logging.Level {
	switch {
	case c.config.Quiet:
		return logging.LevelError
	case c.config.Verbose:
		return logging.LevelDebug
	default:
		return logging.ParseLevel(c.config.LogLevel)
	}
}

// showHelp displays help information and returns an exit code.
func (c *CLI) showHelp(result *cli.ParseResult) int {
	if result.HelpCommand != "" {
		fmt.Print(c.parser.CommandUsage(result.HelpCommand))
	} else {
		fmt.Print(c.parser.Usage())
	}
	return constants.ExitSuccess.Int()
}

// executeCommand runs the appropriate command handler.
func (c *CLI) executeCommand(result *cli.ParseResult) int {
	switch result.Command {
	case cli.CommandVersion:
		return c.cmdVersion()
	case cli.CommandCheck:
		return c.cmdCheck(result)
	case cli.CommandList:
		return c.cmdList(result)
	case cli.CommandUI:
		return c.cmdUI(result)
	default:
		fmt.Print(c.parser.Usage())
		return constants.ExitSuccess.Int()
	}
}

// cmdVersion displays version information.
func (c *CLI) cmdVersion() int {
	fmt.Print(c.parser.VersionString())
	return constants.ExitSuccess.Int()
}

// cmdCheck probes every manifest entry and reports one line per entry.
// A missing dependency is a result, not an error: once the probes have
// run, the exit code is success regardless of how many came up missing.
func (c *CLI) cmdCheck(result *cli.ParseResult) int {
	entries, code := c.loadEntries(result.CheckFlags.Manifest)
	if code != constants.ExitSuccess {
		return code.Int()
	}

	probes, err := c.buildProbes(entries)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return constants.ExitValidation.Int()
	}

	runner := probe.NewRunner(c.logger, c.config.ProbeTimeout)
	results := runner.Run(context.Background(), probes)

	var opts []probe.ReporterOption
	if !c.config.NoColor {
		opts = append(opts, probe.WithColor())
	}
	if result.CheckFlags.Detail || c.config.IsVerbose() {
		opts = append(opts, probe.WithVerbose())
	}

	reporter := probe.NewReporter(os.Stdout, opts...)

	if result.CheckFlags.JSON || c.config.Format == config.FormatJSON {
		err = reporter.ReportJSON(results)
	} else {
		err = reporter.Report(results)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		return constants.ExitError.Int()
	}

	return constants.ExitSuccess.Int()
}

// cmdList prints the manifest entries without probing them.
func (c *CLI) cmdList(result *cli.ParseResult) int {
	entries, code := c.loadEntries(result.ListFlags.Manifest)
	if code != constants.ExitSuccess {
		return code.Int()
	}

	if result.ListFlags.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(entries); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing list: %v\n", err)
			return constants.ExitError.Int()
		}
		return constants.ExitSuccess.Int()
	}

	for _, e := range entries {
		fmt.Printf("%s (%s)\n", e.Name, e.Kind)
	}
	return constants.ExitSuccess.Int()
}

// cmdUI runs the checks in the interactive terminal interface.
func (c *CLI) cmdUI(result *cli.ParseResult) int {
	entries, code := c.loadEntries(result.UIFlags.Manifest)
	if code != constants.ExitSuccess {
		return code.Int()
	}

	probes, err := c.buildProbes(entries)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return constants.ExitValidation.Int()
	}

	runner := probe.NewRunner(c.logger, c.config.ProbeTimeout)
	model := ui.New(runner, probes)
	defer model.Shutdown()

	program := tea.NewProgram(model)
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return constants.ExitError.Int()
	}
	return constants.ExitSuccess.Int()
}

// loadEntries resolves the manifest to probe: the command-line flag wins,
// then the configured manifest path, then the built-in default list.
func (c *CLI) loadEntries(flagPath string) ([]manifest.Entry, constants.ExitCode) {
	path := flagPath
	if path == "" {
		path = c.config.ManifestPath
	}
	if path == "" {
		return manifest.Default(), constants.ExitSuccess
	}

	entries, err := manifest.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading manifest: %v\n", err)
		return nil, constants.ExitValidation
	}
	return entries, constants.ExitSuccess
}

// buildProbes assembles the probe set for the manifest entries.
func (c *CLI) buildProbes(entries []manifest.Entry) ([]probe.Probe, error) {
	executor := exec.NewExecutor(exec.Options{Timeout: c.config.CommandTimeout})

	// A system without a supported package manager still probes
	// everything else; package entries report Missing.
	manager, err := pkgmgr.Detect(executor)
	if err != nil {
		c.logger.Debug("no supported package manager detected", "err", err)
		manager = nil
	}

	return probe.FromEntries(entries, probe.Deps{
		Executor: executor,
		Manager:  manager,
	})
}

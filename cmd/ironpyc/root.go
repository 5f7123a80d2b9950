// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"ironpyc/internal/config"
	"ironpyc/internal/detect"
	"ironpyc/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// Verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// cfg holds the loaded configuration, populated by initRootConfig.
	cfg = config.DefaultConfig()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "ironpyc",
		Short: "Compile IronPython scripts into .NET assemblies",
		Long: TitleStyle.Render("ironpyc") + SubtitleStyle.Render(" - Compile IronPython scripts into .NET assemblies") + `

ironpyc drives the pyc.py compiler bundled with IronPython. It locates
an installation, analyzes your script's pure-Python dependencies with
CPython's modulefinder, and compiles everything into a DLL or EXE.

` + SubtitleStyle.Render("Examples:") + `
  ironpyc compile app.py                 Compile app.py into app.dll
  ironpyc compile -t exe -s app.py       Build a standalone executable
  ironpyc analyze --format json app.py   Inspect dependencies without compiling
  ironpyc detect                         List IronPython installations`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/ironpyc/config.cue)")

	// Add subcommands
	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig reads in config file and ENV variables if set.
func initRootConfig() {
	// Set custom config file path if provided via --config flag
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	loaded, err := config.Load()
	if err != nil {
		// Always surface config loading errors to the user
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}
	if loaded != nil {
		cfg = loaded
	}

	// Apply verbose from config if not set via flag
	if !verbose {
		verbose = cfg.UI.Verbose
	}
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// issueStyle maps the configured color scheme to a glamour style name.
func issueStyle() string {
	switch cfg.UI.ColorScheme {
	case config.ColorSchemeDark:
		return "dark"
	case config.ColorSchemeLight:
		return "light"
	default:
		return "auto"
	}
}

// renderIssue writes the rendered issue catalog entry to stderr, falling
// back to the raw markdown when rendering fails.
func renderIssue(id issue.Id) {
	entry := issue.Get(id)
	if entry == nil {
		return
	}
	rendered, err := entry.Render(issueStyle())
	if err != nil {
		rendered = string(entry.MarkdownMsg())
	}
	fmt.Fprint(os.Stderr, rendered)
}

// detectOptions assembles detection hints from flags and configuration.
// The flag overrides win over their config counterparts.
func detectOptions(dirFlag, pycFlag string) detect.Options {
	dir := dirFlag
	if dir == "" {
		dir = cfg.IronPython.Dir
	}
	pyc := pycFlag
	if pyc == "" {
		pyc = cfg.IronPython.PycPath
	}
	return detect.Options{
		DirOverride:    dir,
		PycOverride:    pyc,
		ExecutableName: cfg.IronPython.Executable,
		SearchPaths:    cfg.IronPython.SearchPaths,
	}
}

// GetVerbose returns the verbose flag value
func GetVerbose() bool {
	return verbose
}

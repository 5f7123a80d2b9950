// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"ironpyc/internal/detect"
	"ironpyc/internal/finder"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

var (
	analyzeFormat string
	analyzeStrict bool

	analyzeCmd = &cobra.Command{
		Use:   "analyze <script>...",
		Short: "Show script dependencies without compiling",
		Long: `Show script dependencies without compiling.

Runs the same dependency analysis the compile command uses and prints
the resulting manifest: compilable module files, builtin modules, and
modules that cannot be bundled.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAnalyze,
	}
)

// analysisReport is the serializable shape of a dependency manifest.
type analysisReport struct {
	Scripts      []string `json:"scripts" toml:"scripts"`
	Compilable   []string `json:"compilable" toml:"compilable"`
	Builtin      []string `json:"builtin" toml:"builtin"`
	Uncompilable []string `json:"uncompilable" toml:"uncompilable"`
}

func init() {
	flags := analyzeCmd.Flags()
	flags.StringVar(&analyzeFormat, "format", "text", "output format: text, json, or toml")
	flags.BoolVar(&analyzeStrict, "strict", false, "exit non-zero when required modules cannot be resolved")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	scripts, err := orderScripts(args, "")
	if err != nil {
		return err
	}

	// A missing installation only costs the Lib directory on the module
	// search path; analysis itself runs under CPython.
	install, err := detect.Detect(detectOptions("", ""))
	if err != nil {
		log.Debug("no IronPython installation for analysis", "error", err)
		install = nil
	}

	manifest, err := collectDependencies(cmd.Context(), install, scripts, analyzeStrict)
	if err != nil {
		return err
	}

	return printManifest(scripts, manifest)
}

func printManifest(scripts []string, manifest *finder.Manifest) error {
	report := analysisReport{
		Scripts:      scripts,
		Compilable:   manifest.Compilable,
		Builtin:      manifest.Builtin,
		Uncompilable: manifest.Uncompilable,
	}

	switch analyzeFormat {
	case "text":
		printManifestText(report)
		return nil
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	case "toml":
		return toml.NewEncoder(os.Stdout).Encode(report)
	default:
		return fmt.Errorf("unknown format %q (must be text, json, or toml)", analyzeFormat)
	}
}

func printManifestText(report analysisReport) {
	fmt.Println(TitleStyle.Render("Dependency analysis"))
	fmt.Println()

	printSection("Entry scripts", report.Scripts)
	printSection("Compilable modules", report.Compilable)
	printSection("Builtin modules", report.Builtin)
	printSection("Uncompilable modules", report.Uncompilable)
}

func printSection(title string, items []string) {
	fmt.Printf("%s:\n", SubtitleStyle.Render(title))
	if len(items) == 0 {
		fmt.Printf("  %s\n", SubtitleStyle.Render("(none)"))
	}
	for _, item := range items {
		fmt.Printf("  - %s\n", PathStyle.Render(item))
	}
	fmt.Println()
}

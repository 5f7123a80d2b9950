// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"ironpyc/internal/compiler"
	"ironpyc/internal/detect"
	"ironpyc/internal/finder"
	"ironpyc/internal/issue"

	"github.com/spf13/cobra"
)

var (
	compileOutput       string
	compileTarget       string
	compileMain         string
	compilePlatform     string
	compileEmbed        bool
	compileStandalone   bool
	compileMTA          bool
	compileStrict       bool
	compileIpyDir       string
	compilePyc          string
	compileCopyDLLs     bool
	compileKeepResponse bool

	compileCmd = &cobra.Command{
		Use:   "compile <script>...",
		Short: "Compile Python scripts into a .NET assembly",
		Long: `Compile Python scripts into a .NET assembly.

Dependencies are discovered automatically: every pure-Python module the
entry scripts import is compiled into the assembly alongside them.
Builtin modules are provided by the IronPython runtime; missing or
native modules produce a warning (or abort the build with --strict).`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCompile,
	}
)

func init() {
	flags := compileCmd.Flags()
	flags.StringVarP(&compileOutput, "output", "o", "", "output assembly path (default: first script with .dll/.exe extension)")
	flags.StringVarP(&compileTarget, "target", "t", "dll", "output kind: dll, exe, or winexe")
	flags.StringVarP(&compileMain, "main", "m", "", "main script for executable targets (default: first script)")
	flags.StringVarP(&compilePlatform, "platform", "p", "", "target platform: x86 or x64")
	flags.BoolVarP(&compileEmbed, "embed", "e", false, "embed the generated DLL into the executable")
	flags.BoolVarP(&compileStandalone, "standalone", "s", false, "embed the IronPython assemblies into the executable")
	flags.BoolVarP(&compileMTA, "mta", "M", false, "set MTAThreadAttribute (winexe only)")
	flags.BoolVar(&compileStrict, "strict", false, "abort when required modules cannot be resolved")
	flags.StringVar(&compileIpyDir, "ipy-dir", "", "IronPython installation directory")
	flags.StringVar(&compilePyc, "pyc", "", "path to pyc.py (default: <install>/Tools/Scripts/pyc.py)")
	flags.BoolVar(&compileCopyDLLs, "copy-runtime-dlls", false, "copy the IronPython runtime DLLs next to the output")
	flags.BoolVar(&compileKeepResponse, "keep-response", false, "keep the pyc response file for inspection")
}

func runCompile(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	scripts, err := orderScripts(args, compileMain)
	if err != nil {
		return err
	}

	install, err := detect.Detect(detectOptions(compileIpyDir, compilePyc))
	if err != nil {
		renderIssue(issueForDetectError(err))
		return &ExitError{Code: exitNotFound, Err: err}
	}

	manifest, err := collectDependencies(ctx, install, scripts, compileStrict)
	if err != nil {
		return err
	}

	result, err := compiler.Compile(ctx, &compiler.CompileRequest{
		Scripts:          scripts,
		Manifest:         manifest,
		Install:          install,
		Output:           compileOutput,
		Target:           compiler.TargetKind(compileTarget),
		Platform:         compiler.TargetPlatform(compilePlatform),
		Embed:            compileEmbed,
		Standalone:       compileStandalone,
		MTA:              compileMTA,
		KeepResponseFile: compileKeepResponse,
		CopyRuntimeDLLs:  compileCopyDLLs,
	})
	if err != nil {
		var failure *compiler.CompileFailureError
		if errors.As(err, &failure) {
			fmt.Fprint(os.Stderr, failure.Output)
			renderIssue(issue.CompilationFailedId)
			return &ExitError{Code: exitCompileFailed, Err: err}
		}
		return err
	}

	if verbose && result.PycOutput != "" {
		fmt.Print(result.PycOutput)
	}
	fmt.Printf("%s Compiled %d script(s) and %d dependency module(s) to %s\n",
		SuccessStyle.Render("✓"), len(scripts), len(manifest.Compilable),
		PathStyle.Render(result.OutputPath))
	for _, dll := range result.GatheredDLLs {
		fmt.Printf("  copied %s\n", PathStyle.Render(dll))
	}
	if result.ResponseFile != "" {
		fmt.Printf("  response file kept at %s\n", PathStyle.Render(result.ResponseFile))
	}
	return nil
}

// collectDependencies runs dependency analysis for the entry scripts,
// warning (or failing in strict mode) on unresolvable modules. The
// installation's Lib directory, when present, joins the module search
// path so stdlib imports resolve against the IronPython distribution.
func collectDependencies(ctx context.Context, install *detect.Installation, scripts []string, strict bool) (*finder.Manifest, error) {
	moduleDirs := append([]string{}, cfg.Python.ModuleDirs...)
	if install != nil {
		libDir := filepath.Join(install.Dir, "Lib")
		if info, err := os.Stat(libDir); err == nil && info.IsDir() {
			moduleDirs = append(moduleDirs, libDir)
		}
	}

	collector := &finder.Collector{
		PythonExecutable: cfg.Python.Executable,
		ModuleDirs:       moduleDirs,
		Strict:           strict,
	}

	manifest, err := collector.Collect(ctx, scripts)
	switch {
	case errors.Is(err, finder.ErrInterpreterNotFound):
		renderIssue(issue.AnalysisInterpreterMissingId)
		return nil, &ExitError{Code: exitUnresolvable, Err: err}
	case errors.Is(err, finder.ErrUnresolvable):
		for _, module := range manifest.Uncompilable {
			fmt.Fprintln(os.Stderr, ErrorStyle.Render("unresolvable: ")+module)
		}
		renderIssue(issue.UnresolvableModulesId)
		return nil, &ExitError{Code: exitUnresolvable, Err: err}
	case err != nil:
		return nil, err
	}

	for _, module := range manifest.Uncompilable {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+
			fmt.Sprintf("module %s cannot be compiled and will not be bundled", module))
	}
	return manifest, nil
}

// issueForDetectError maps a detection failure to its catalog entry.
func issueForDetectError(err error) issue.Id {
	if errors.Is(err, detect.ErrCompilerScriptMissing) {
		return issue.CompilerScriptMissingId
	}
	return issue.IronPythonNotFoundId
}

// orderScripts resolves the entry scripts to absolute paths and moves the
// main script, when named, to the front where executable targets expect it.
func orderScripts(scripts []string, main string) ([]string, error) {
	ordered := make([]string, 0, len(scripts))
	for _, script := range scripts {
		abs, err := filepath.Abs(script)
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", script, err)
		}
		ordered = append(ordered, abs)
	}

	if main == "" {
		return ordered, nil
	}

	absMain, err := filepath.Abs(main)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", main, err)
	}
	for i, script := range ordered {
		if script == absMain {
			ordered[0], ordered[i] = ordered[i], ordered[0]
			return ordered, nil
		}
	}
	return nil, fmt.Errorf("main script %s is not among the entry scripts", main)
}

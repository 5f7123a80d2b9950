// SPDX-License-Identifier: MPL-2.0

package finder

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"ironpyc/internal/ipyproc"

	"github.com/charmbracelet/log"
)

// DefaultPythonExecutable is the CPython binary used for analysis when the
// configuration does not name one.
const DefaultPythonExecutable = "python3"

//go:embed findmods.py
var helperScript string

// ErrInterpreterNotFound is returned when no CPython interpreter is
// available to run the analysis under.
var ErrInterpreterNotFound = errors.New("analysis interpreter not found")

type (
	// Collector runs the standard-library modulefinder facility under a
	// separate CPython interpreter and gathers the results.
	Collector struct {
		// PythonExecutable is the CPython binary name or path.
		// Empty means DefaultPythonExecutable resolved via PATH.
		PythonExecutable string
		// ModuleDirs are the directories searched for pure-Python
		// modules, typically <install>/Lib plus configured extras.
		ModuleDirs []string
		// Strict aborts with UnresolvableError when any required module
		// is missing or native instead of warning and continuing.
		Strict bool
	}

	// helperReport mirrors the JSON document findmods.py emits.
	helperReport struct {
		Modules []helperModule `json:"modules"`
		Missing []string       `json:"missing"`
	}

	helperModule struct {
		Name string  `json:"name"`
		File *string `json:"file"`
	}
)

// Collect analyzes the entry scripts and builds their dependency manifest.
// In strict mode an UnresolvableError is returned alongside the manifest so
// callers can still render what was found.
func (c *Collector) Collect(ctx context.Context, scripts []string) (*Manifest, error) {
	python, err := c.resolveInterpreter()
	if err != nil {
		return nil, err
	}

	absScripts := make([]string, 0, len(scripts))
	for _, script := range scripts {
		abs, err := filepath.Abs(script)
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", script, err)
		}
		if _, err := os.Stat(abs); err != nil {
			return nil, fmt.Errorf("entry script %s: %w", script, err)
		}
		absScripts = append(absScripts, abs)
	}

	report, err := c.runHelper(ctx, python, absScripts)
	if err != nil {
		return nil, err
	}

	manifest := c.buildManifest(report, absScripts)
	if c.Strict && len(manifest.Uncompilable) > 0 {
		return manifest, &UnresolvableError{Modules: manifest.Uncompilable}
	}
	return manifest, nil
}

// resolveInterpreter finds the CPython binary to run the helper under.
func (c *Collector) resolveInterpreter() (string, error) {
	name := c.PythonExecutable
	if name == "" {
		name = DefaultPythonExecutable
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %s", ErrInterpreterNotFound, name, err)
	}
	return path, nil
}

// runHelper writes the embedded helper to a temp file, runs it under
// python, and decodes its JSON report.
func (c *Collector) runHelper(ctx context.Context, python string, scripts []string) (*helperReport, error) {
	helperFile, err := os.CreateTemp("", "ironpyc-findmods-*.py")
	if err != nil {
		return nil, fmt.Errorf("creating helper script: %w", err)
	}
	helperPath := helperFile.Name()
	defer os.Remove(helperPath)

	if _, err := helperFile.WriteString(helperScript); err != nil {
		helperFile.Close()
		return nil, fmt.Errorf("writing helper script: %w", err)
	}
	if err := helperFile.Close(); err != nil {
		return nil, fmt.Errorf("closing helper script: %w", err)
	}

	args := []string{helperPath}
	for _, dir := range c.ModuleDirs {
		args = append(args, "--path", dir)
	}
	args = append(args, scripts...)

	result := ipyproc.Execute(ctx, ipyproc.Invocation{Executable: python, Args: args})
	if result.Error != nil {
		return nil, result.Error
	}
	if !result.ExitCode.IsSuccess() {
		return nil, fmt.Errorf("dependency analysis exited with status %s: %s",
			result.ExitCode, strings.TrimSpace(result.ErrOutput))
	}

	var report helperReport
	if err := json.Unmarshal([]byte(result.Output), &report); err != nil {
		return nil, fmt.Errorf("decoding analysis report: %w", err)
	}
	return &report, nil
}

// buildManifest classifies the helper's findings the way the bundled
// compiler expects them: builtins have no file, native extensions cannot be
// bundled, and everything else is a compilable source path. Entry scripts
// never appear in the manifest.
func (c *Collector) buildManifest(report *helperReport, entryScripts []string) *Manifest {
	entries := make(map[string]bool, len(entryScripts))
	for _, script := range entryScripts {
		entries[script] = true
	}

	compilable := make(map[string]bool)
	builtin := make(map[string]bool)
	uncompilable := make(map[string]bool)

	for _, name := range report.Missing {
		uncompilable[name] = true
	}

	for _, module := range report.Modules {
		if module.File == nil || *module.File == "" {
			builtin[module.Name] = true
			continue
		}
		path, err := filepath.Abs(*module.File)
		if err != nil {
			log.Debug("skipping module with unresolvable path", "module", module.Name, "error", err)
			continue
		}
		switch filepath.Ext(path) {
		case ".pyd", ".so":
			uncompilable[module.Name] = true
			continue
		}
		if entries[path] {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			log.Debug("skipping module whose file vanished", "module", module.Name, "path", path)
			continue
		}
		compilable[path] = true
	}

	return &Manifest{
		Compilable:   sortedKeys(compilable),
		Builtin:      sortedKeys(builtin),
		Uncompilable: sortedKeys(uncompilable),
	}
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

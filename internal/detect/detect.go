// SPDX-License-Identifier: MPL-2.0

package detect

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

const (
	// EnvInstallDir is the environment variable naming an IronPython
	// installation directory, checked after the explicit flag override.
	EnvInstallDir = "IRONPYC_IPY_DIR"

	// defaultExecutableUnix is the IronPython launcher name on POSIX systems.
	defaultExecutableUnix = "ipy"
	// defaultExecutableWindows is the IronPython launcher name on Windows.
	defaultExecutableWindows = "ipy.exe"
)

var (
	// ErrNotFound is the sentinel error wrapped by NotFoundError.
	ErrNotFound = errors.New("ironpython installation not found")
	// ErrCompilerScriptMissing is the sentinel error wrapped by CompilerScriptMissingError.
	ErrCompilerScriptMissing = errors.New("compiler script missing")
)

type (
	// Installation is a validated IronPython installation: the directory,
	// the interpreter executable inside it, and the bundled pyc.py script.
	Installation struct {
		// Dir is the absolute installation directory.
		Dir string
		// Executable is the absolute path to the interpreter binary.
		Executable string
		// PycPath is the absolute path to the companion compiler script.
		PycPath string
	}

	// Options carries the detection hints, in precedence order: DirOverride,
	// the EnvInstallDir environment variable, SearchPaths, PATH, and on
	// Windows the registry.
	Options struct {
		// DirOverride pins detection to a single directory. Validation
		// failures on an explicit override are surfaced, not skipped.
		DirOverride string
		// PycOverride replaces the default Tools/Scripts/pyc.py location.
		PycOverride string
		// ExecutableName overrides the interpreter binary name.
		ExecutableName string
		// SearchPaths are extra candidate directories from configuration.
		SearchPaths []string
	}

	// NotFoundError is returned when no candidate directory holds a valid
	// installation. It wraps ErrNotFound for errors.Is() compatibility.
	NotFoundError struct {
		Executable string
		Searched   []string
	}

	// CompilerScriptMissingError is returned when a directory contains the
	// interpreter but not pyc.py. It wraps ErrCompilerScriptMissing.
	CompilerScriptMissingError struct {
		Dir     string
		PycPath string
	}
)

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if len(e.Searched) == 0 {
		return fmt.Sprintf("IronPython (%s) cannot be found", e.Executable)
	}
	return fmt.Sprintf("IronPython (%s) cannot be found (searched %s)",
		e.Executable, strings.Join(e.Searched, ", "))
}

// Unwrap returns ErrNotFound so callers can use errors.Is for detection.
func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// Error implements the error interface.
func (e *CompilerScriptMissingError) Error() string {
	return fmt.Sprintf("%s: expected compiler script at %s", e.Dir, e.PycPath)
}

// Unwrap returns ErrCompilerScriptMissing for errors.Is() compatibility.
func (e *CompilerScriptMissingError) Unwrap() error { return ErrCompilerScriptMissing }

// DefaultExecutableName returns the platform's IronPython launcher name.
func DefaultExecutableName() string {
	if runtime.GOOS == "windows" {
		return defaultExecutableWindows
	}
	return defaultExecutableUnix
}

// DefaultPycPath returns the conventional location of pyc.py inside an
// installation directory.
func DefaultPycPath(dir string) string {
	return filepath.Join(dir, "Tools", "Scripts", "pyc.py")
}

// Detect returns the preferred installation: the first entry of DetectAll.
func Detect(opts Options) (*Installation, error) {
	installs, err := DetectAll(opts)
	if err != nil {
		return nil, err
	}
	return installs[0], nil
}

// DetectAll returns every valid installation found for the given hints,
// de-duplicated and sorted in descending directory order so that newer
// versioned install directories sort first. It fails with NotFoundError
// when no candidate validates; an explicit DirOverride that fails
// validation surfaces its own validation error instead.
func DetectAll(opts Options) ([]*Installation, error) {
	exe := opts.ExecutableName
	if exe == "" {
		exe = DefaultExecutableName()
	}

	if opts.DirOverride != "" {
		install, err := validateDir(opts.DirOverride, exe, opts.PycOverride)
		if err != nil {
			return nil, err
		}
		return []*Installation{install}, nil
	}

	var searched []string
	seen := make(map[string]bool)
	var installs []*Installation

	consider := func(dir string) {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return
		}
		if seen[abs] {
			return
		}
		seen[abs] = true
		searched = append(searched, abs)

		install, err := validateDir(abs, exe, opts.PycOverride)
		if err != nil {
			log.Debug("candidate rejected", "dir", abs, "reason", err)
			return
		}
		installs = append(installs, install)
	}

	if envDir := os.Getenv(EnvInstallDir); envDir != "" {
		consider(envDir)
	}
	for _, dir := range opts.SearchPaths {
		consider(dir)
	}
	for _, dir := range pathCandidates(exe) {
		consider(dir)
	}
	for _, dir := range registryCandidates() {
		consider(dir)
	}

	if len(installs) == 0 {
		return nil, &NotFoundError{Executable: exe, Searched: searched}
	}

	sort.Slice(installs, func(i, j int) bool {
		return installs[i].Dir > installs[j].Dir
	})
	return installs, nil
}

// validateDir checks that dir holds the interpreter executable and the
// companion compiler script, returning the resulting Installation.
func validateDir(dir, exe, pycOverride string) (*Installation, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", dir, err)
	}

	exePath := filepath.Join(abs, exe)
	if !isExecutableFile(exePath) {
		return nil, &NotFoundError{Executable: exe, Searched: []string{abs}}
	}

	pycPath := pycOverride
	if pycPath == "" {
		pycPath = DefaultPycPath(abs)
	} else if pycPath, err = filepath.Abs(pycPath); err != nil {
		return nil, fmt.Errorf("resolving %s: %w", pycOverride, err)
	}
	if !isRegularFile(pycPath) {
		return nil, &CompilerScriptMissingError{Dir: abs, PycPath: pycPath}
	}

	return &Installation{Dir: abs, Executable: exePath, PycPath: pycPath}, nil
}

// pathCandidates returns every PATH directory that contains the executable.
func pathCandidates(exe string) []string {
	var dirs []string
	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		if dir == "" {
			continue
		}
		if isExecutableFile(filepath.Join(dir, exe)) {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func isExecutableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode().Perm()&0o111 != 0
}

// SPDX-License-Identifier: MPL-2.0

package ipyproc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"ironpyc/pkg/pyver"

	"github.com/charmbracelet/log"
)

// versionProbe asks an interpreter to print its sys.version banner.
// IronPython prints something like
// "2.7.9 (IronPython 2.7.9 (2.7.9.0) on .NET 4.0.30319.42000 (64-bit))".
const versionProbe = "import sys; print(sys.version)"

// ErrNotIronPython is returned when a probed executable runs but does not
// identify itself as IronPython.
var ErrNotIronPython = errors.New("executable is not IronPython")

// Invocation describes one subprocess run.
type Invocation struct {
	// Executable is the binary to run.
	Executable string
	// Args are the command-line arguments.
	Args []string
	// WorkDir is the working directory; empty inherits the current one.
	WorkDir string
}

// NotIronPythonError reports a version probe whose banner did not mention
// IronPython. It wraps ErrNotIronPython for errors.Is() compatibility.
type NotIronPythonError struct {
	Path   string
	Banner string
}

// Error implements the error interface.
func (e *NotIronPythonError) Error() string {
	return fmt.Sprintf("%s does not identify as IronPython (reported %q)", e.Path, e.Banner)
}

// Unwrap returns ErrNotIronPython for errors.Is() compatibility.
func (e *NotIronPythonError) Unwrap() error { return ErrNotIronPython }

// Execute runs the invocation to completion, capturing stdout and stderr
// separately. A non-zero exit status is reported through Result.ExitCode;
// Result.Error is reserved for failures to run the process at all.
func Execute(ctx context.Context, inv Invocation) *Result {
	cmd := exec.CommandContext(ctx, inv.Executable, inv.Args...)
	if inv.WorkDir != "" {
		cmd.Dir = inv.WorkDir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Debug("executing", "executable", inv.Executable, "args", inv.Args, "workdir", inv.WorkDir)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return NewExitCodeResult(ExitCode(exitErr.ExitCode()), stdout.String(), stderr.String())
		}
		return NewErrorResult(fmt.Errorf("failed to execute %s: %w", inv.Executable, err))
	}

	return NewSuccessResult(stdout.String(), stderr.String())
}

// ValidateExecutable probes path with a short version query and verifies
// it is an IronPython interpreter, returning the reported version.
func ValidateExecutable(ctx context.Context, path string) (pyver.Version, error) {
	result := Execute(ctx, Invocation{Executable: path, Args: []string{"-c", versionProbe}})
	if result.Error != nil {
		return pyver.Version{}, result.Error
	}
	if !result.ExitCode.IsSuccess() {
		return pyver.Version{}, fmt.Errorf("version probe of %s exited with status %s: %s",
			path, result.ExitCode, strings.TrimSpace(result.ErrOutput))
	}

	banner := firstLine(result.Output)
	if !strings.Contains(banner, "IronPython") {
		return pyver.Version{}, &NotIronPythonError{Path: path, Banner: banner}
	}

	fields := strings.Fields(banner)
	if len(fields) == 0 {
		return pyver.Version{}, &NotIronPythonError{Path: path, Banner: banner}
	}
	version, err := pyver.Parse(fields[0])
	if err != nil {
		return pyver.Version{}, fmt.Errorf("parsing version of %s: %w", path, err)
	}

	log.Debug("validated interpreter", "path", path, "version", version)
	return version, nil
}

// firstLine returns s up to the first line break, trimmed.
func firstLine(s string) string {
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// SPDX-License-Identifier: MPL-2.0

package ipyproc

// Result holds the outcome of a subprocess invocation. A non-zero
// ExitCode is an ordinary outcome, not an Error; Error is set only when
// the process could not be run at all.
type Result struct {
	// ExitCode is the process exit status.
	ExitCode ExitCode
	// Output is the captured standard output.
	Output string
	// ErrOutput is the captured standard error.
	ErrOutput string
	// Error is set when the process failed to start or was interrupted.
	Error error
}

// NewSuccessResult builds a Result for a zero exit status.
func NewSuccessResult(output, errOutput string) *Result {
	return &Result{ExitCode: ExitSuccess, Output: output, ErrOutput: errOutput}
}

// NewExitCodeResult builds a Result for a process that ran to completion
// with the given status.
func NewExitCodeResult(code ExitCode, output, errOutput string) *Result {
	return &Result{ExitCode: code, Output: output, ErrOutput: errOutput}
}

// NewErrorResult builds a Result for a process that could not be run.
func NewErrorResult(err error) *Result {
	return &Result{ExitCode: 1, Error: err}
}

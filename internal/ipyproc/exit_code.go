// SPDX-License-Identifier: MPL-2.0

package ipyproc

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidExitCode is returned when an ExitCode value is outside the
// range a process can actually report.
var ErrInvalidExitCode = errors.New("invalid exit code")

// ExitCode is a process exit status. Valid values are 0-255; 0 means
// success.
type ExitCode int

const (
	// ExitSuccess is the conventional success status.
	ExitSuccess ExitCode = 0

	minExitCode = 0
	maxExitCode = 255
)

// InvalidExitCodeError reports an out-of-range ExitCode. It wraps
// ErrInvalidExitCode for errors.Is() compatibility.
type InvalidExitCodeError struct {
	Code ExitCode
}

// Error implements the error interface.
func (e *InvalidExitCodeError) Error() string {
	return fmt.Sprintf("exit code %d is outside the valid range %d-%d",
		int(e.Code), minExitCode, maxExitCode)
}

// Unwrap returns ErrInvalidExitCode for errors.Is() compatibility.
func (e *InvalidExitCodeError) Unwrap() error { return ErrInvalidExitCode }

// IsValid returns whether the ExitCode is within the representable range,
// and a list of validation errors if it is not.
func (c ExitCode) IsValid() (bool, []error) {
	if c < minExitCode || c > maxExitCode {
		return false, []error{&InvalidExitCodeError{Code: c}}
	}
	return true, nil
}

// IsSuccess reports whether the code is the success status.
func (c ExitCode) IsSuccess() bool { return c == ExitSuccess }

// String returns the decimal representation.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }

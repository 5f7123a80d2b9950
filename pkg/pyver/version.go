// SPDX-License-Identifier: MPL-2.0

// Package pyver provides a value type for dotted Python version strings
// such as the ones IronPython reports via sys.version.
package pyver

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidVersion is the sentinel error wrapped by InvalidVersionError.
var ErrInvalidVersion = errors.New("invalid python version")

type (
	// Version represents a Python version as a Major.Minor.Patch triple.
	// The zero value is "0.0.0".
	Version struct {
		Major int
		Minor int
		Patch int
	}

	// InvalidVersionError is returned when a version string cannot be parsed.
	InvalidVersionError struct {
		Value string
	}
)

// Error implements the error interface.
func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("invalid python version %q (want MAJOR.MINOR or MAJOR.MINOR.PATCH)", e.Value)
}

// Unwrap returns ErrInvalidVersion so callers can use errors.Is for detection.
func (e *InvalidVersionError) Unwrap() error { return ErrInvalidVersion }

// Parse parses a dotted version string ("2.7", "2.7.8") into a Version.
// A missing patch component defaults to zero.
func Parse(s string) (Version, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) < 2 || len(parts) > 3 {
		return Version{}, &InvalidVersionError{Value: s}
	}

	nums := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return Version{}, &InvalidVersionError{Value: s}
		}
		nums[i] = n
	}

	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// Compare returns -1, 0, or 1 depending on whether v is older than, equal
// to, or newer than other.
func (v Version) Compare(other Version) int {
	pairs := [][2]int{
		{v.Major, other.Major},
		{v.Minor, other.Minor},
		{v.Patch, other.Patch},
	}
	for _, p := range pairs {
		if p[0] < p[1] {
			return -1
		}
		if p[0] > p[1] {
			return 1
		}
	}
	return 0
}

// String returns the dotted representation of the Version.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// SPDX-License-Identifier: MPL-2.0

package finder

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnresolvable is the sentinel error wrapped by UnresolvableError.
var ErrUnresolvable = errors.New("unresolvable modules")

type (
	// Manifest is the result of dependency analysis: three disjoint,
	// sorted, duplicate-free sets describing what the entry scripts need.
	Manifest struct {
		// Compilable holds absolute paths of pure-Python module files
		// that must be handed to pyc.py. Entry scripts are excluded.
		Compilable []string
		// Builtin holds names of modules with no backing file.
		Builtin []string
		// Uncompilable holds names of modules that cannot be bundled:
		// modules the finder could not import plus native extensions.
		Uncompilable []string
	}

	// UnresolvableError is returned in strict mode when the manifest
	// contains uncompilable modules. It wraps ErrUnresolvable.
	UnresolvableError struct {
		Modules []string
	}
)

// Error implements the error interface.
func (e *UnresolvableError) Error() string {
	return fmt.Sprintf("cannot resolve required modules: %s", strings.Join(e.Modules, ", "))
}

// Unwrap returns ErrUnresolvable so callers can use errors.Is for detection.
func (e *UnresolvableError) Unwrap() error { return ErrUnresolvable }

// IsEmpty reports whether the manifest carries no compilable dependencies.
func (m *Manifest) IsEmpty() bool {
	return len(m.Compilable) == 0
}

// SPDX-License-Identifier: MPL-2.0

package compiler

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"ironpyc/internal/detect"
	"ironpyc/internal/finder"
)

const (
	// TargetDLL produces a .NET class library.
	TargetDLL TargetKind = "dll"
	// TargetEXE produces a console executable.
	TargetEXE TargetKind = "exe"
	// TargetWinEXE produces a windowed executable.
	TargetWinEXE TargetKind = "winexe"

	// PlatformAny lets pyc.py pick the default platform.
	PlatformAny TargetPlatform = ""
	// PlatformX86 targets 32-bit assemblies.
	PlatformX86 TargetPlatform = "x86"
	// PlatformX64 targets 64-bit assemblies.
	PlatformX64 TargetPlatform = "x64"
)

var (
	// ErrInvalidTarget is the sentinel error wrapped by InvalidTargetError.
	ErrInvalidTarget = errors.New("invalid target kind")
	// ErrInvalidPlatform is the sentinel error wrapped by InvalidPlatformError.
	ErrInvalidPlatform = errors.New("invalid target platform")
)

type (
	// TargetKind is the kind of assembly pyc.py should produce.
	TargetKind string

	// InvalidTargetError is returned when a TargetKind value is not
	// recognized. It wraps ErrInvalidTarget for errors.Is() compatibility.
	InvalidTargetError struct {
		Value TargetKind
	}

	// TargetPlatform selects the CPU platform for executable targets.
	// The zero value means "no /platform argument".
	TargetPlatform string

	// InvalidPlatformError is returned when a TargetPlatform value is not
	// recognized. It wraps ErrInvalidPlatform.
	InvalidPlatformError struct {
		Value TargetPlatform
	}

	// CompileRequest is the immutable tuple handed to the invoker: entry
	// scripts, their dependency manifest, the located installation, and
	// the output target with its options.
	CompileRequest struct {
		// Scripts are absolute entry script paths. For executable
		// targets the first element is the main script.
		Scripts []string
		// Manifest lists the dependencies discovered for Scripts.
		Manifest *finder.Manifest
		// Install is the validated IronPython installation.
		Install *detect.Installation
		// Output is the output assembly path. Empty derives the name
		// from the first script, placed in the current directory.
		Output string
		// Target selects dll, exe, or winexe output.
		Target TargetKind
		// Platform optionally pins x86 or x64 (exe/winexe only).
		Platform TargetPlatform
		// Embed embeds the generated DLL into the executable.
		Embed bool
		// Standalone embeds the IronPython assemblies into the executable.
		Standalone bool
		// MTA sets MTAThreadAttribute (winexe only).
		MTA bool
		// KeepResponseFile retains the pyc response file for inspection.
		KeepResponseFile bool
		// CopyRuntimeDLLs copies the installation's DLLs next to the
		// output assembly after a successful compile.
		CopyRuntimeDLLs bool
	}
)

// Error implements the error interface.
func (e *InvalidTargetError) Error() string {
	return fmt.Sprintf("invalid target kind %q (must be dll, exe, or winexe)", string(e.Value))
}

// Unwrap returns ErrInvalidTarget for errors.Is() compatibility.
func (e *InvalidTargetError) Unwrap() error { return ErrInvalidTarget }

// Error implements the error interface.
func (e *InvalidPlatformError) Error() string {
	return fmt.Sprintf("invalid target platform %q (must be x86 or x64)", string(e.Value))
}

// Unwrap returns ErrInvalidPlatform for errors.Is() compatibility.
func (e *InvalidPlatformError) Unwrap() error { return ErrInvalidPlatform }

// IsValid returns whether the TargetKind is recognized, and a list of
// validation errors if it is not.
func (k TargetKind) IsValid() (bool, []error) {
	switch k {
	case TargetDLL, TargetEXE, TargetWinEXE:
		return true, nil
	}
	return false, []error{&InvalidTargetError{Value: k}}
}

// IsExecutable reports whether the target produces an executable rather
// than a library.
func (k TargetKind) IsExecutable() bool {
	return k == TargetEXE || k == TargetWinEXE
}

// Extension returns the filename extension for assemblies of this kind.
func (k TargetKind) Extension() string {
	if k.IsExecutable() {
		return ".exe"
	}
	return ".dll"
}

// IsValid returns whether the TargetPlatform is recognized, and a list of
// validation errors if it is not. The zero value is valid.
func (p TargetPlatform) IsValid() (bool, []error) {
	switch p {
	case PlatformAny, PlatformX86, PlatformX64:
		return true, nil
	}
	return false, []error{&InvalidPlatformError{Value: p}}
}

// Validate checks the request invariants before invocation.
func (r *CompileRequest) Validate() error {
	if len(r.Scripts) == 0 {
		return errors.New("compile request has no entry scripts")
	}
	if r.Manifest == nil {
		return errors.New("compile request has no dependency manifest")
	}
	if r.Install == nil {
		return errors.New("compile request has no installation")
	}
	if ok, errs := r.Target.IsValid(); !ok {
		return errs[0]
	}
	if ok, errs := r.Platform.IsValid(); !ok {
		return errs[0]
	}
	return nil
}

// OutputPath resolves the output assembly path, deriving the default name
// from the first entry script when none was requested.
func (r *CompileRequest) OutputPath() (string, error) {
	if r.Output != "" {
		return filepath.Abs(r.Output)
	}
	base := filepath.Base(r.Scripts[0])
	base = strings.TrimSuffix(base, filepath.Ext(base)) + r.Target.Extension()
	return filepath.Abs(base)
}

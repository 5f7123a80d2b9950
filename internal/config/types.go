// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
var ErrInvalidColorScheme = errors.New("invalid color scheme")

type (
	// Config is the full ironpyc configuration.
	Config struct {
		IronPython IronPythonConfig `mapstructure:"ironpython"`
		Python     PythonConfig     `mapstructure:"python"`
		Analysis   AnalysisConfig   `mapstructure:"analysis"`
		UI         UIConfig         `mapstructure:"ui"`
	}

	// IronPythonConfig controls how the IronPython installation is located.
	IronPythonConfig struct {
		// Dir pins detection to a single installation directory.
		Dir string `mapstructure:"dir"`
		// Executable overrides the interpreter binary name.
		Executable string `mapstructure:"executable"`
		// PycPath overrides the location of pyc.py.
		PycPath string `mapstructure:"pyc_path"`
		// SearchPaths are extra candidate directories checked before PATH.
		SearchPaths []string `mapstructure:"search_paths"`
	}

	// PythonConfig controls the CPython interpreter used for analysis.
	PythonConfig struct {
		// Executable is the CPython binary name or path.
		Executable string `mapstructure:"executable"`
		// ModuleDirs are extra directories searched for pure-Python modules.
		ModuleDirs []string `mapstructure:"module_dirs"`
	}

	// AnalysisConfig controls dependency analysis policy.
	AnalysisConfig struct {
		// Strict aborts on unresolvable modules instead of warning.
		Strict bool `mapstructure:"strict"`
	}

	// UIConfig controls CLI output behavior.
	UIConfig struct {
		Verbose     bool        `mapstructure:"verbose"`
		ColorScheme ColorScheme `mapstructure:"color_scheme"`
	}

	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not
	// recognized. It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}
)

// Error implements the error interface.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (must be auto, dark, or light)", string(e.Value))
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

// IsValid returns whether the ColorScheme is recognized, and a list of
// validation errors if it is not.
func (s ColorScheme) IsValid() (bool, []error) {
	switch s {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	}
	return false, []error{&InvalidColorSchemeError{Value: s}}
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Python: PythonConfig{
			Executable: "python3",
		},
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
		},
	}
}

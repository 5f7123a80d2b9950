// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"testing"
)

func TestColorSchemeIsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		scheme ColorScheme
		want   bool
	}{
		{name: "auto", scheme: ColorSchemeAuto, want: true},
		{name: "dark", scheme: ColorSchemeDark, want: true},
		{name: "light", scheme: ColorSchemeLight, want: true},
		{name: "empty", scheme: ColorScheme(""), want: false},
		{name: "unknown", scheme: ColorScheme("blue"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ok, errs := tt.scheme.IsValid()
			if ok != tt.want {
				t.Errorf("IsValid() = %v, want %v", ok, tt.want)
			}
			if !tt.want {
				if len(errs) != 1 {
					t.Fatalf("IsValid() returned %d errors, want 1", len(errs))
				}
				if !errors.Is(errs[0], ErrInvalidColorScheme) {
					t.Errorf("error %v does not wrap ErrInvalidColorScheme", errs[0])
				}
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Python.Executable != "python3" {
		t.Errorf("Python.Executable = %q, want %q", cfg.Python.Executable, "python3")
	}
	if cfg.UI.ColorScheme != ColorSchemeAuto {
		t.Errorf("UI.ColorScheme = %q, want %q", cfg.UI.ColorScheme, ColorSchemeAuto)
	}
	if ok, _ := cfg.UI.ColorScheme.IsValid(); !ok {
		t.Error("default color scheme should be valid")
	}
}

// SPDX-License-Identifier: MPL-2.0

package ipyproc

import (
	"errors"
	"testing"
)

func TestExitCodeIsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		code ExitCode
		want bool
	}{
		{name: "success", code: ExitSuccess, want: true},
		{name: "generic failure", code: 1, want: true},
		{name: "upper bound", code: 255, want: true},
		{name: "negative", code: -1, want: false},
		{name: "too large", code: 256, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ok, errs := tt.code.IsValid()
			if ok != tt.want {
				t.Errorf("IsValid() = %v, want %v", ok, tt.want)
			}
			if !tt.want {
				if len(errs) != 1 {
					t.Fatalf("IsValid() returned %d errors, want 1", len(errs))
				}
				if !errors.Is(errs[0], ErrInvalidExitCode) {
					t.Errorf("error %v does not wrap ErrInvalidExitCode", errs[0])
				}
			}
		})
	}
}

func TestExitCodeIsSuccess(t *testing.T) {
	t.Parallel()

	if !ExitSuccess.IsSuccess() {
		t.Error("ExitSuccess.IsSuccess() = false, want true")
	}
	if ExitCode(2).IsSuccess() {
		t.Error("ExitCode(2).IsSuccess() = true, want false")
	}
}

func TestExitCodeString(t *testing.T) {
	t.Parallel()

	if got := ExitCode(42).String(); got != "42" {
		t.Errorf("String() = %q, want %q", got, "42")
	}
}

// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableErrorError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *ActionableError
		want string
	}{
		{
			name: "operation only",
			err:  &ActionableError{Operation: "locate IronPython"},
			want: "failed to locate IronPython",
		},
		{
			name: "operation and resource",
			err:  &ActionableError{Operation: "analyze script", Resource: "app.py"},
			want: "failed to analyze script: app.py",
		},
		{
			name: "operation, resource and cause",
			err: &ActionableError{
				Operation: "compile scripts",
				Resource:  "out.dll",
				Cause:     errors.New("pyc.py exited 1"),
			},
			want: "failed to compile scripts: out.dll: pyc.py exited 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestActionableErrorUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("root cause")
	err := NewErrorContext().
		WithOperation("locate IronPython").
		Wrap(cause).
		BuildError()

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}

	var ae *ActionableError
	if !errors.As(err, &ae) {
		t.Fatal("errors.As should find the ActionableError")
	}
	if ae.Operation != "locate IronPython" {
		t.Errorf("Operation = %q", ae.Operation)
	}
}

func TestActionableErrorFormat(t *testing.T) {
	t.Parallel()

	inner := errors.New("inner")
	err := NewErrorContext().
		WithOperation("load configuration").
		WithResource("config.cue").
		WithSuggestion("Check CUE syntax").
		WithSuggestion("Run 'ironpyc config init'").
		Wrap(inner).
		Build()

	short := err.Format(false)
	if !strings.Contains(short, "• Check CUE syntax") {
		t.Errorf("Format(false) missing suggestion: %q", short)
	}
	if strings.Contains(short, "Error chain") {
		t.Errorf("Format(false) should not include the error chain: %q", short)
	}

	long := err.Format(true)
	if !strings.Contains(long, "Error chain:") || !strings.Contains(long, "inner") {
		t.Errorf("Format(true) missing error chain: %q", long)
	}
}

func TestBuildRequiresOperation(t *testing.T) {
	t.Parallel()

	if got := NewErrorContext().WithResource("x").Build(); got != nil {
		t.Errorf("Build without operation = %v, want nil", got)
	}
	if got := NewErrorContext().WithResource("x").BuildError(); got != nil {
		t.Errorf("BuildError without operation = %v, want nil", got)
	}
}

func TestWrapWithOperation(t *testing.T) {
	t.Parallel()

	if got := WrapWithOperation(nil, "anything"); got != nil {
		t.Errorf("WrapWithOperation(nil) = %v, want nil", got)
	}

	cause := errors.New("boom")
	got := WrapWithOperation(cause, "analyze script")
	if got == nil || !errors.Is(got, cause) {
		t.Fatalf("WrapWithOperation did not wrap the cause: %v", got)
	}
}

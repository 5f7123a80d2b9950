// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"path/filepath"
	"testing"

	"ironpyc/internal/detect"
	"ironpyc/internal/issue"
)

func TestOrderScriptsResolvesToAbsolutePaths(t *testing.T) {
	t.Parallel()

	got, err := orderScripts([]string{"app.py", "lib.py"}, "")
	if err != nil {
		t.Fatalf("orderScripts failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d scripts, want 2", len(got))
	}
	for _, script := range got {
		if !filepath.IsAbs(script) {
			t.Errorf("script %q is not absolute", script)
		}
	}
}

func TestOrderScriptsMovesMainToFront(t *testing.T) {
	t.Parallel()

	got, err := orderScripts([]string{"a.py", "b.py", "c.py"}, "b.py")
	if err != nil {
		t.Fatalf("orderScripts failed: %v", err)
	}

	wantFirst, err := filepath.Abs("b.py")
	if err != nil {
		t.Fatalf("Abs failed: %v", err)
	}
	if got[0] != wantFirst {
		t.Errorf("first script = %q, want %q", got[0], wantFirst)
	}
	if len(got) != 3 {
		t.Errorf("got %d scripts, want 3", len(got))
	}
}

func TestOrderScriptsMainNotListed(t *testing.T) {
	t.Parallel()

	if _, err := orderScripts([]string{"a.py"}, "other.py"); err == nil {
		t.Fatal("orderScripts accepted a main script outside the entry list")
	}
}

func TestIssueForDetectError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want issue.Id
	}{
		{
			name: "not found",
			err:  &detect.NotFoundError{Executable: "ipy"},
			want: issue.IronPythonNotFoundId,
		},
		{
			name: "pyc missing",
			err:  &detect.CompilerScriptMissingError{Dir: "/opt/ipy", PycPath: "/opt/ipy/Tools/Scripts/pyc.py"},
			want: issue.CompilerScriptMissingId,
		},
		{
			name: "unrelated",
			err:  errors.New("boom"),
			want: issue.IronPythonNotFoundId,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := issueForDetectError(tt.err); got != tt.want {
				t.Errorf("issueForDetectError() = %v, want %v", got, tt.want)
			}
		})
	}
}

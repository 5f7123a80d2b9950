// SPDX-License-Identifier: MPL-2.0

package compiler

import (
	"os"
	"path/filepath"
	"testing"

	"ironpyc/internal/testutil"
)

func TestGatherRuntimeDLLs(t *testing.T) {
	t.Parallel()

	installDir := t.TempDir()
	testutil.WriteFile(t, installDir, "IronPython.dll", "dll-a")
	testutil.WriteFile(t, installDir, "Microsoft.Scripting.dll", "dll-b")
	testutil.WriteFile(t, installDir, "ipy.exe", "not a dll")

	destDir := t.TempDir()
	copied, err := GatherRuntimeDLLs(installDir, destDir)
	if err != nil {
		t.Fatalf("GatherRuntimeDLLs returned error: %v", err)
	}

	want := []string{
		filepath.Join(destDir, "IronPython.dll"),
		filepath.Join(destDir, "Microsoft.Scripting.dll"),
	}
	if len(copied) != len(want) {
		t.Fatalf("copied %d files, want %d: %v", len(copied), len(want), copied)
	}
	for i, path := range want {
		if copied[i] != path {
			t.Errorf("copied[%d] = %q, want %q", i, copied[i], path)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("copied DLL missing on disk: %v", err)
		}
	}

	data, err := os.ReadFile(filepath.Join(destDir, "IronPython.dll"))
	if err != nil {
		t.Fatalf("reading copied DLL: %v", err)
	}
	if string(data) != "dll-a" {
		t.Errorf("copied content = %q, want %q", data, "dll-a")
	}
}

func TestGatherRuntimeDLLsEmptyInstall(t *testing.T) {
	t.Parallel()

	copied, err := GatherRuntimeDLLs(t.TempDir(), t.TempDir())
	if err != nil {
		t.Fatalf("GatherRuntimeDLLs returned error: %v", err)
	}
	if len(copied) != 0 {
		t.Errorf("copied = %v, want none", copied)
	}
}

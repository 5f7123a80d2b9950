// SPDX-License-Identifier: MPL-2.0

// Package testutil provides shared test fixtures: fake IronPython
// installation trees and stub interpreter scripts, so tests never depend
// on a real IronPython or CPython being installed.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// WriteInstallTree creates a fake IronPython installation under root and
// returns its directory. The tree contains an executable launcher named
// exeName and, when withPyc is true, the Tools/Scripts/pyc.py script.
func WriteInstallTree(t *testing.T, root, exeName string, withPyc bool) string {
	t.Helper()

	dir := filepath.Join(root, "IronPython")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("creating install dir: %v", err)
	}

	exePath := filepath.Join(dir, exeName)
	if err := os.WriteFile(exePath, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("writing launcher: %v", err)
	}

	if withPyc {
		scriptsDir := filepath.Join(dir, "Tools", "Scripts")
		if err := os.MkdirAll(scriptsDir, 0o755); err != nil {
			t.Fatalf("creating Tools/Scripts: %v", err)
		}
		pycPath := filepath.Join(scriptsDir, "pyc.py")
		if err := os.WriteFile(pycPath, []byte("# pyc stub\n"), 0o644); err != nil {
			t.Fatalf("writing pyc.py: %v", err)
		}
	}

	return dir
}

// WriteFile writes a file with the given content inside dir and returns
// its path, creating parent directories as needed.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating parent dirs for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

// WriteStubInterpreter creates an executable POSIX shell script that stands
// in for an interpreter binary. Tests on Windows are skipped because the
// stub needs /bin/sh.
func WriteStubInterpreter(t *testing.T, dir, name, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub interpreter scripts require a POSIX shell")
	}

	path := filepath.Join(dir, name)
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("writing stub interpreter: %v", err)
	}
	return path
}

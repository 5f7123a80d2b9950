// SPDX-License-Identifier: MPL-2.0

package finder

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"ironpyc/internal/testutil"
)

// stubAnalyzer creates a fake CPython binary that emits the given report
// as JSON, regardless of arguments.
func stubAnalyzer(t *testing.T, report helperReport) string {
	t.Helper()

	payload, err := json.Marshal(report)
	if err != nil {
		t.Fatalf("marshaling stub report: %v", err)
	}
	body := "cat <<'EOF'\n" + string(payload) + "\nEOF"
	return testutil.WriteStubInterpreter(t, t.TempDir(), "python3", body)
}

func strptr(s string) *string { return &s }

func TestCollectNoExternalImports(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	entry := testutil.WriteFile(t, dir, "hello.py", "print(\"hi\")\n")

	python := stubAnalyzer(t, helperReport{
		Modules: []helperModule{
			{Name: "__main__", File: strptr(entry)},
			{Name: "sys", File: nil},
		},
	})

	c := &Collector{PythonExecutable: python}
	manifest, err := c.Collect(context.Background(), []string{entry})
	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}
	if !manifest.IsEmpty() {
		t.Errorf("Compilable = %v, want empty", manifest.Compilable)
	}
	if len(manifest.Builtin) != 1 || manifest.Builtin[0] != "sys" {
		t.Errorf("Builtin = %v, want [sys]", manifest.Builtin)
	}
	if len(manifest.Uncompilable) != 0 {
		t.Errorf("Uncompilable = %v, want empty", manifest.Uncompilable)
	}
}

func TestCollectTransitiveModulesOnce(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	entry := testutil.WriteFile(t, dir, "main.py", "import a\n")
	modA := testutil.WriteFile(t, dir, "a.py", "import b\n")
	modB := testutil.WriteFile(t, dir, "b.py", "")

	python := stubAnalyzer(t, helperReport{
		Modules: []helperModule{
			{Name: "__main__", File: strptr(entry)},
			{Name: "a", File: strptr(modA)},
			{Name: "b", File: strptr(modB)},
			// modulefinder reports per-script; a second script would
			// repeat shared modules.
			{Name: "a", File: strptr(modA)},
		},
	})

	c := &Collector{PythonExecutable: python}
	manifest, err := c.Collect(context.Background(), []string{entry})
	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}
	want := []string{modA, modB}
	if len(manifest.Compilable) != 2 || manifest.Compilable[0] != want[0] || manifest.Compilable[1] != want[1] {
		t.Errorf("Compilable = %v, want %v", manifest.Compilable, want)
	}
}

func TestCollectClassifiesNativeExtensions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	entry := testutil.WriteFile(t, dir, "main.py", "import fast\n")
	native := testutil.WriteFile(t, dir, "fast.pyd", "")

	python := stubAnalyzer(t, helperReport{
		Modules: []helperModule{
			{Name: "__main__", File: strptr(entry)},
			{Name: "fast", File: strptr(native)},
		},
	})

	c := &Collector{PythonExecutable: python}
	manifest, err := c.Collect(context.Background(), []string{entry})
	if err != nil {
		t.Fatalf("Collect returned error: %v", err)
	}
	if len(manifest.Compilable) != 0 {
		t.Errorf("Compilable = %v, want empty", manifest.Compilable)
	}
	if len(manifest.Uncompilable) != 1 || manifest.Uncompilable[0] != "fast" {
		t.Errorf("Uncompilable = %v, want [fast]", manifest.Uncompilable)
	}
}

func TestCollectMissingModuleDefaultPolicyWarns(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	entry := testutil.WriteFile(t, dir, "main.py", "import nope\n")

	python := stubAnalyzer(t, helperReport{
		Modules: []helperModule{{Name: "__main__", File: strptr(entry)}},
		Missing: []string{"nope"},
	})

	c := &Collector{PythonExecutable: python}
	manifest, err := c.Collect(context.Background(), []string{entry})
	if err != nil {
		t.Fatalf("Collect without strict returned error: %v", err)
	}
	if len(manifest.Uncompilable) != 1 || manifest.Uncompilable[0] != "nope" {
		t.Errorf("Uncompilable = %v, want [nope]", manifest.Uncompilable)
	}
}

func TestCollectMissingModuleStrictAborts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	entry := testutil.WriteFile(t, dir, "main.py", "import nope\n")

	python := stubAnalyzer(t, helperReport{
		Modules: []helperModule{{Name: "__main__", File: strptr(entry)}},
		Missing: []string{"nope"},
	})

	c := &Collector{PythonExecutable: python, Strict: true}
	manifest, err := c.Collect(context.Background(), []string{entry})
	if !errors.Is(err, ErrUnresolvable) {
		t.Fatalf("error = %v, want ErrUnresolvable", err)
	}
	if manifest == nil {
		t.Fatal("strict failure should still return the manifest for display")
	}

	var unresolvable *UnresolvableError
	if !errors.As(err, &unresolvable) {
		t.Fatal("error is not an UnresolvableError")
	}
	if len(unresolvable.Modules) != 1 || unresolvable.Modules[0] != "nope" {
		t.Errorf("Modules = %v, want [nope]", unresolvable.Modules)
	}
}

func TestCollectInterpreterNotFound(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	entry := testutil.WriteFile(t, dir, "main.py", "")

	c := &Collector{PythonExecutable: filepath.Join(dir, "no-such-python")}
	_, err := c.Collect(context.Background(), []string{entry})
	if !errors.Is(err, ErrInterpreterNotFound) {
		t.Fatalf("error = %v, want ErrInterpreterNotFound", err)
	}
}

func TestCollectHelperFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	entry := testutil.WriteFile(t, dir, "main.py", "")
	python := testutil.WriteStubInterpreter(t, t.TempDir(), "python3", "echo \"boom\" >&2\nexit 1")

	c := &Collector{PythonExecutable: python}
	_, err := c.Collect(context.Background(), []string{entry})
	if err == nil {
		t.Fatal("Collect should fail when the helper exits non-zero")
	}
}

func TestCollectMissingEntryScript(t *testing.T) {
	t.Parallel()

	python := stubAnalyzer(t, helperReport{})

	c := &Collector{PythonExecutable: python}
	_, err := c.Collect(context.Background(), []string{filepath.Join(t.TempDir(), "absent.py")})
	if err == nil {
		t.Fatal("Collect should fail for a missing entry script")
	}
}

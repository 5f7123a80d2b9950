// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	IronPythonNotFoundId Id = iota + 1
	CompilerScriptMissingId
	AnalysisInterpreterMissingId
	UnresolvableModulesId
	CompilationFailedId
	ConfigLoadFailedId
)

type MarkdownMsg string

type Issue struct {
	id    Id          // ID used to look up the issue
	mdMsg MarkdownMsg // Markdown text that will be rendered
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	ironPythonNotFoundIssue = &Issue{
		id: IronPythonNotFoundId,
		mdMsg: `
# No IronPython installation found!

We searched for an IronPython installation but none of the candidate
locations contained a usable one.

## Search locations (in order of precedence):
1. The --ipy-dir flag
2. The IRONPYC_IPY_DIR environment variable
3. ironpython.search_paths in your config file
4. Every PATH directory containing the IronPython executable
5. The Windows registry (SOFTWARE\IronPython)

## Things you can try:
- Point the tool at your installation directly:
~~~
$ ironpyc compile --ipy-dir /opt/ironpython app.py
~~~

- Add the installation directory to PATH
- Set the environment variable:
~~~
$ export IRONPYC_IPY_DIR=/opt/ironpython
~~~`,
	}

	compilerScriptMissingIssue = &Issue{
		id: CompilerScriptMissingId,
		mdMsg: `
# pyc.py not found in the installation!

An IronPython directory was found, but it does not contain the bundled
compiler script (Tools/Scripts/pyc.py), so it cannot produce assemblies.

## Things you can try:
- Install a full IronPython distribution (the zip/installer that ships
  the Tools directory), not a trimmed-down runtime
- If pyc.py lives elsewhere, pass its location explicitly:
~~~
$ ironpyc compile --pyc /path/to/pyc.py app.py
~~~`,
	}

	analysisInterpreterMissingIssue = &Issue{
		id: AnalysisInterpreterMissingId,
		mdMsg: `
# CPython interpreter not found!

Dependency analysis runs the standard-library modulefinder under a
separate CPython interpreter, and none was found on PATH.

## Things you can try:
- Install CPython 3 and make sure it is on PATH
- Configure the interpreter explicitly in your config file:
~~~cue
python: executable: "/usr/local/bin/python3"
~~~`,
	}

	unresolvableModulesIssue = &Issue{
		id: UnresolvableModulesId,
		mdMsg: `
# Some required modules cannot be compiled!

Dependency analysis found modules that are missing or native (.pyd),
and strict mode is enabled.

## Things you can try:
- Install the missing pure-Python modules into a directory listed in
  python.module_dirs
- Native extension modules cannot be bundled; remove the import or
  ship the extension alongside the assembly
- Run without --strict to compile anyway with a warning`,
	}

	compilationFailedIssue = &Issue{
		id: CompilationFailedId,
		mdMsg: `
# pyc.py exited with an error!

The bundled compiler script was invoked but reported a failure. Its
output is shown above.

## Things you can try:
- Re-run with --verbose to see the exact pyc.py invocation
- Re-run with --keep-response and inspect the response file
- Check that the entry script runs cleanly under ipy before compiling`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Configuration could not be loaded!

Your config file exists but could not be parsed or validated.

## Things you can try:
- Check the file for CUE syntax errors
- Compare against the default config:
~~~
$ ironpyc config init
~~~

- See where the file is expected to live:
~~~
$ ironpyc config path
~~~`,
	}

	issues = map[Id]*Issue{
		ironPythonNotFoundIssue.Id():         ironPythonNotFoundIssue,
		compilerScriptMissingIssue.Id():      compilerScriptMissingIssue,
		analysisInterpreterMissingIssue.Id(): analysisInterpreterMissingIssue,
		unresolvableModulesIssue.Id():        unresolvableModulesIssue,
		compilationFailedIssue.Id():          compilationFailedIssue,
		configLoadFailedIssue.Id():           configLoadFailedIssue,
	}
)

func Values() []*Issue {
	vals := maps.Values(issues)
	slices.SortFunc(vals, func(a, b *Issue) int { return int(a.Id() - b.Id()) })
	return vals
}

func Get(id Id) *Issue {
	return issues[id]
}

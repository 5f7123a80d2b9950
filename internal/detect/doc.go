// SPDX-License-Identifier: MPL-2.0

// Package detect locates IronPython installations on the host. Candidates
// come from an explicit override, the environment, configured search paths,
// PATH, and (on Windows) the registry; a candidate is only accepted when it
// contains both the interpreter executable and the bundled pyc.py compiler
// script. Detection performs filesystem reads only.
package detect

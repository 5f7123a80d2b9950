// SPDX-License-Identifier: MPL-2.0

// Package compiler turns a dependency manifest into a .NET assembly by
// driving the pyc.py script bundled with IronPython. It assembles the pyc
// argument list, hands it over through a response file, and surfaces the
// subprocess outcome; the actual compilation is entirely pyc.py's job.
package compiler

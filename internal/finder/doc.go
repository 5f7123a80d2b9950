// SPDX-License-Identifier: MPL-2.0

// Package finder discovers which modules an IronPython script transitively
// requires. The actual dependency resolution is delegated to the CPython
// standard library's modulefinder, driven through an embedded helper
// program; this package only classifies and collects what it reports.
package finder

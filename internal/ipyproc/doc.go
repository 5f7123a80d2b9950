// SPDX-License-Identifier: MPL-2.0

// Package ipyproc runs external interpreter processes and captures their
// results. Both the CPython analysis helper and the IronPython pyc.py
// compiler go through this package so exit handling and output capture
// behave the same way everywhere.
package ipyproc

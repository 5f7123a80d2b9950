// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared helpers for working with CUE files:
// size limits and user-friendly formatting of CUE validation errors.
package cueutil

// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error context. ActionableError wraps
// failures with operation/resource/suggestion metadata, and the issue
// catalog holds markdown help texts rendered when a run fails terminally.
package issue

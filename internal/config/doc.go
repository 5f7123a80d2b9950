// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as
// the file format.
//
// Configuration is loaded from ~/.config/ironpyc/config.cue (or the XDG
// equivalent on Linux, ~/Library/Application Support/ironpyc/config.cue on
// macOS, %APPDATA%\ironpyc\config.cue on Windows) and validated against an
// embedded CUE schema (config_schema.cue) so invalid files produce clear
// error messages instead of silently wrong behavior.
package config

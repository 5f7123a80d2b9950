// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ironpyc/internal/config"
	"ironpyc/internal/issue"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage ironpyc configuration",
	Long: `Manage ironpyc configuration.

Configuration is stored in:
  - Linux: ~/.config/ironpyc/config.cue
  - macOS: ~/Library/Application Support/ironpyc/config.cue
  - Windows: %APPDATA%\ironpyc\config.cue`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath()
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfigFile()
		},
	})
}

func showConfig() error {
	loaded, err := config.Load()
	if err != nil {
		renderIssue(issue.ConfigLoadFailedId)
		return err
	}

	keyStyle := PathStyle
	valueStyle := SuccessStyle

	fmt.Println(TitleStyle.Render("Current Configuration"))
	fmt.Println()

	cfgPath, pathErr := config.ConfigFilePath()
	if pathErr == nil && fileExistsCheck(cfgPath) {
		fmt.Printf("%s: %s\n", keyStyle.Render("Config file"), cfgPath)
	} else {
		fmt.Printf("%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}
	fmt.Println()

	fmt.Printf("%s:\n", keyStyle.Render("ironpython"))
	fmt.Printf("  dir: %s\n", orNone(valueStyle.Render(loaded.IronPython.Dir), loaded.IronPython.Dir))
	fmt.Printf("  executable: %s\n", orNone(valueStyle.Render(loaded.IronPython.Executable), loaded.IronPython.Executable))
	fmt.Printf("  pyc_path: %s\n", orNone(valueStyle.Render(loaded.IronPython.PycPath), loaded.IronPython.PycPath))
	fmt.Printf("  search_paths: %s\n", orNone(
		valueStyle.Render(strings.Join(loaded.IronPython.SearchPaths, ", ")),
		strings.Join(loaded.IronPython.SearchPaths, "")))

	fmt.Println()
	fmt.Printf("%s:\n", keyStyle.Render("python"))
	fmt.Printf("  executable: %s\n", valueStyle.Render(loaded.Python.Executable))
	fmt.Printf("  module_dirs: %s\n", orNone(
		valueStyle.Render(strings.Join(loaded.Python.ModuleDirs, ", ")),
		strings.Join(loaded.Python.ModuleDirs, "")))

	fmt.Println()
	fmt.Printf("%s:\n", keyStyle.Render("analysis"))
	fmt.Printf("  strict: %s\n", valueStyle.Render(fmt.Sprintf("%v", loaded.Analysis.Strict)))

	fmt.Println()
	fmt.Printf("%s:\n", keyStyle.Render("ui"))
	fmt.Printf("  color_scheme: %s\n", valueStyle.Render(string(loaded.UI.ColorScheme)))
	fmt.Printf("  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", loaded.UI.Verbose)))

	return nil
}

func showConfigPath() error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	cfgPath, err := config.ConfigFilePath()
	if err != nil {
		return err
	}

	fmt.Printf("Config directory: %s\n", cfgDir)
	fmt.Printf("Config file: %s\n", cfgPath)
	return nil
}

func initConfigFile() error {
	cfgPath, err := config.ConfigFilePath()
	if err != nil {
		return err
	}
	if fileExistsCheck(cfgPath) {
		return fmt.Errorf("config file already exists at %s", cfgPath)
	}

	if err := os.MkdirAll(filepath.Dir(cfgPath), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(cfgPath, []byte(config.DefaultConfigCUE()), 0o644); err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}

	fmt.Printf("%s Created default configuration at %s\n", SuccessStyle.Render("✓"), cfgPath)
	return nil
}

// orNone substitutes a muted placeholder for empty values.
func orNone(rendered, raw string) string {
	if raw == "" {
		return SubtitleStyle.Render("(not set)")
	}
	return rendered
}

// fileExistsCheck checks if a file exists and is not a directory.
func fileExistsCheck(path string) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}

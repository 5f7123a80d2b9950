// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"ironpyc/internal/detect"
	"ironpyc/internal/ipyproc"

	"github.com/spf13/cobra"
)

var (
	detectValidate bool

	detectCmd = &cobra.Command{
		Use:   "detect",
		Short: "List IronPython installations",
		Long: `List IronPython installations.

Candidates come from the IRONPYC_IPY_DIR environment variable, the
configured search paths, every PATH directory containing the
interpreter, and (on Windows) the registry. Only directories holding
both the interpreter and pyc.py are listed, newest directory first.`,
		RunE: runDetect,
	}
)

func init() {
	detectCmd.Flags().BoolVar(&detectValidate, "validate", false, "run each interpreter and report its version")
}

func runDetect(cmd *cobra.Command, args []string) error {
	installs, err := detect.DetectAll(detectOptions("", ""))
	if err != nil {
		renderIssue(issueForDetectError(err))
		return &ExitError{Code: exitNotFound, Err: err}
	}

	fmt.Printf("%s\n\n", TitleStyle.Render("IronPython installations"))
	for _, install := range installs {
		fmt.Printf("%s\n", PathStyle.Render(install.Dir))
		fmt.Printf("  interpreter: %s\n", install.Executable)
		fmt.Printf("  pyc.py:      %s\n", install.PycPath)

		if detectValidate {
			version, err := ipyproc.ValidateExecutable(cmd.Context(), install.Executable)
			if err != nil {
				fmt.Fprintf(os.Stderr, "  %s %v\n", ErrorStyle.Render("✗"), err)
			} else {
				fmt.Printf("  version:     %s %s\n", version, SuccessStyle.Render("✓"))
			}
		}
		fmt.Println()
	}
	return nil
}

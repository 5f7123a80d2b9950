// SPDX-License-Identifier: MPL-2.0

package compiler

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
)

// GatherRuntimeDLLs copies every *.dll from the installation directory into
// destDir so the produced assembly can run without IronPython on the
// machine. It returns the destination paths of the copied files, sorted.
func GatherRuntimeDLLs(installDir, destDir string) ([]string, error) {
	dlls, err := filepath.Glob(filepath.Join(installDir, "*.dll"))
	if err != nil {
		return nil, fmt.Errorf("listing runtime DLLs: %w", err)
	}

	var copied []string
	for _, dll := range dlls {
		dest := filepath.Join(destDir, filepath.Base(dll))
		if err := copyFile(dll, dest); err != nil {
			return nil, fmt.Errorf("copying %s: %w", filepath.Base(dll), err)
		}
		copied = append(copied, dest)
	}

	sort.Strings(copied)
	return copied, nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

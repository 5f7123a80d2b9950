// SPDX-License-Identifier: MPL-2.0

//go:build windows

package detect

import (
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/sys/windows/registry"
)

// registryKeys are the HKLM keys under which IronPython installers record
// per-version InstallPath values.
var registryKeys = []string{
	`SOFTWARE\IronPython`,
	`SOFTWARE\Wow6432Node\IronPython`,
}

// registryCandidates enumerates installation directories recorded in the
// Windows registry. Failures are logged and skipped; registry state is a
// hint, not a requirement.
func registryCandidates() []string {
	var dirs []string

	for _, keyPath := range registryKeys {
		key, err := registry.OpenKey(registry.LOCAL_MACHINE, keyPath, registry.ENUMERATE_SUB_KEYS)
		if err != nil {
			continue
		}

		versions, err := key.ReadSubKeyNames(-1)
		if err != nil {
			log.Debug("cannot enumerate registry versions", "key", keyPath, "error", err)
			key.Close()
			continue
		}

		for _, version := range versions {
			pathKey, err := registry.OpenKey(registry.LOCAL_MACHINE,
				keyPath+`\`+version+`\InstallPath`, registry.QUERY_VALUE)
			if err != nil {
				continue
			}
			installPath, _, err := pathKey.GetStringValue("")
			pathKey.Close()
			if err != nil || installPath == "" {
				continue
			}
			// InstallPath points at the executable; keep its directory.
			dirs = append(dirs, filepath.Dir(installPath))
		}

		key.Close()
	}

	return dirs
}

// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package detect

// registryCandidates is a no-op outside Windows; the registry probe only
// exists there.
func registryCandidates() []string {
	return nil
}

// SPDX-License-Identifier: Unlicense OR MIT

package app

import "github.com/pkg/browser"

// LaunchURL opens url in an external browser, if available. It
// reports whether the OS accepted the launch request; it does not
// guarantee the target resource is reachable.
func LaunchURL(url string) bool {
	return browser.OpenURL(url) == nil
}

// SPDX-License-Identifier: Unlicense OR MIT

//go:build !(darwin || freebsd || linux || windows)

package app

import "errors"

func newDriver(p *Platform, cfg *Config) (driver, error) {
	return nil, errors.New("no windowing backend for this platform")
}

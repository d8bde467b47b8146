// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"errors"
	"log"
	"strings"

	"github.com/sqweek/dialog"
)

// DialogMode selects between an open and a save file dialog.
type DialogMode uint8

const (
	DialogOpen DialogMode = iota
	DialogSave
)

// DisplayFileDialog shows a native open or save dialog and returns
// the chosen path. filterExtensions is a semicolon separated list
// such as "png;jpg;bmp". An empty return means the user cancelled;
// it is not an error.
func DisplayFileDialog(mode DialogMode, title, filterDescription, filterExtensions, initialDirectory string) string {
	b := dialog.File().Title(title)
	if filterDescription != "" && filterExtensions != "" {
		b = b.Filter(filterDescription, strings.Split(filterExtensions, ";")...)
	}
	if initialDirectory != "" {
		b = b.SetStartDir(initialDirectory)
	}
	var (
		path string
		err  error
	)
	switch mode {
	case DialogSave:
		path, err = b.Save()
	default:
		path, err = b.Load()
	}
	if err != nil {
		if !errors.Is(err, dialog.ErrCancelled) {
			log.Printf("app: file dialog: %v", err)
		}
		return ""
	}
	return path
}

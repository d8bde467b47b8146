// SPDX-License-Identifier: Unlicense OR MIT

// Package system contains events usually handled at the top-level
// program level.
package system

import "image"

// ResizeEvent reports a new window size, in pixels.
type ResizeEvent struct {
	Size image.Point
}

// CloseEvent is delivered when the system requests the window to
// close on a platform that does not permit programmatic exit. The
// application decides how to react; the pump keeps running.
type CloseEvent struct{}

// DestroyEvent is the last event delivered before the message pump
// stops.
type DestroyEvent struct {
	// Err is nil for normal shutdown. If the pump is stopped
	// prematurely, Err is the cause.
	Err error
}

func (ResizeEvent) ImplementsEvent()  {}
func (CloseEvent) ImplementsEvent()   {}
func (DestroyEvent) ImplementsEvent() {}

// SPDX-License-Identifier: Unlicense OR MIT

/*
Package app implements the platform abstraction for an interactive
real-time application: window creation, the message pump, input
normalization and device capability queries.

A Platform is created for exactly one application Handler and drives
it from EnterMessagePump until shutdown. All events and frame
callbacks are delivered on the pump goroutine, never concurrently
with the handler's own per-frame logic.
*/
package app

import (
	"os"
	"time"

	"github.com/kyuty/GamePlay/io/event"
)

// Handler is the application collaborator driven by the message
// pump.
type Handler interface {
	// HandleEvent is called on the pump goroutine for each input
	// event, in arrival order. The final call delivers
	// system.DestroyEvent, after which no further callbacks occur.
	HandleEvent(e event.Event)

	// Frame is the per-frame update and render hook, called once per
	// pump cycle after event dispatch. dt is the time elapsed since
	// the previous frame.
	Frame(dt time.Duration)
}

// Arguments returns the process command line. Platforms without a
// process command line report no arguments.
func Arguments() []string {
	return append([]string(nil), os.Args...)
}

// Sleep blocks the calling goroutine for the given duration.
func Sleep(d time.Duration) {
	time.Sleep(d)
}

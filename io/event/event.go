// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains the types for input event handling.
package event

// Event is the marker interface for events.
type Event interface {
	ImplementsEvent()
}

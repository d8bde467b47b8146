// SPDX-License-Identifier: Unlicense OR MIT

// Package pointer implements mouse and touch events.
package pointer

import (
	"strings"
	"time"

	"github.com/kyuty/GamePlay/f32"
	"github.com/kyuty/GamePlay/io/key"
)

// Event is a pointer event. Mouse and touch input share the
// representation; Source tells them apart.
type Event struct {
	Kind   Kind
	Source Source
	// ContactIndex identifies a touch contact and can be used to
	// track a particular contact from Press to Release. It is zero
	// for mouse events.
	ContactIndex int
	// Time is when the event was received. The timestamp is
	// relative to the start of the message pump.
	Time time.Duration
	// Buttons are the set of pressed mouse buttons for this event.
	Buttons Buttons
	// Position is the coordinates of the event in pixels, origin in
	// the top left corner with the y axis extending down, regardless
	// of the source platform.
	Position f32.Point
	// Scroll is the normalized scroll amount, if any. Positive Y
	// means the wheel was rotated away from the user.
	Scroll f32.Point
	// Modifiers is the set of active modifiers when
	// the event was fired.
	Modifiers key.Modifiers
	// Emulated is set on touch events synthesized from mouse input
	// on platforms without touch hardware. Hardware touch events
	// never have it set.
	Emulated bool
}

// Kind of an Event.
type Kind uint8

// Source of an Event.
type Source uint8

// Buttons is a set of mouse buttons.
type Buttons uint8

const (
	// Cancel is generated when the current gesture is
	// interrupted by the system.
	Cancel Kind = 1 << iota
	// Press of a pointer.
	Press
	// Release of a pointer.
	Release
	// Move of a pointer.
	Move
	// Drag of a pointer with a button or contact held.
	Drag
	// Scroll of a mouse wheel.
	Scroll
)

const (
	// Mouse generated event.
	Mouse Source = iota
	// Touch generated event.
	Touch
)

const (
	// ButtonPrimary is the primary button, usually the left button for a
	// right-handed user.
	ButtonPrimary Buttons = 1 << iota
	// ButtonSecondary is the secondary button, usually the right button for a
	// right-handed user.
	ButtonSecondary
	// ButtonTertiary is the tertiary button, usually the middle button.
	ButtonTertiary
)

func (k Kind) String() string {
	switch k {
	case Cancel:
		return "Cancel"
	case Press:
		return "Press"
	case Release:
		return "Release"
	case Move:
		return "Move"
	case Drag:
		return "Drag"
	case Scroll:
		return "Scroll"
	default:
		panic("unknown Kind")
	}
}

func (s Source) String() string {
	switch s {
	case Mouse:
		return "Mouse"
	case Touch:
		return "Touch"
	default:
		panic("unknown Source")
	}
}

// Contain reports whether the set b contains
// all of the buttons.
func (b Buttons) Contain(buttons Buttons) bool {
	return b&buttons == buttons
}

func (b Buttons) String() string {
	var strs []string
	if b.Contain(ButtonPrimary) {
		strs = append(strs, "ButtonPrimary")
	}
	if b.Contain(ButtonSecondary) {
		strs = append(strs, "ButtonSecondary")
	}
	if b.Contain(ButtonTertiary) {
		strs = append(strs, "ButtonTertiary")
	}
	return strings.Join(strs, "|")
}

func (Event) ImplementsEvent() {}

// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gesture defines the recognized high-level touch gestures and
tracks which kinds are registered for recognition.

Recognition itself happens in the platform backend; this package owns
the registration state machine. A raw gesture signal produces an
application-visible event only when its kind is both supported by the
backend and currently registered.
*/
package gesture

import (
	"strings"
	"time"

	"github.com/kyuty/GamePlay/f32"
)

// Kind is a recognized gesture category.
type Kind uint8

const (
	Swipe Kind = iota
	Pinch
	Tap
	LongTap
	Drag
	Drop
	kindCount
)

// Set is a bitmask of gesture kinds, used for capability masks.
type Set uint8

// Direction is a bitmask of swipe directions.
type Direction uint8

const (
	DirectionUp Direction = 1 << iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

// SwipeEvent is a swipe in one or two directions.
type SwipeEvent struct {
	Position  f32.Point
	Direction Direction
}

// PinchEvent is a two contact zoom. Scale is relative to the
// distance between the contacts when the pinch began.
type PinchEvent struct {
	Position f32.Point
	Scale    float32
}

// TapEvent is a quick press and release.
type TapEvent struct {
	Position f32.Point
}

// LongTapEvent is a press held for Duration.
type LongTapEvent struct {
	Position f32.Point
	Duration time.Duration
}

// DragEvent is a press followed by movement.
type DragEvent struct {
	Position f32.Point
}

// DropEvent is the release ending a drag.
type DropEvent struct {
	Position f32.Point
}

// NewSet returns the set containing kinds.
func NewSet(kinds ...Kind) Set {
	var s Set
	for _, k := range kinds {
		if k < kindCount {
			s |= 1 << k
		}
	}
	return s
}

// AllGestures is the set of every gesture kind.
func AllGestures() Set {
	return 1<<kindCount - 1
}

// Contains reports whether k is in the set.
func (s Set) Contains(k Kind) bool {
	return k < kindCount && s&(1<<k) != 0
}

// Registry tracks the registration state of each gesture kind
// against the set of kinds the backend supports. The zero state has
// every kind unregistered.
type Registry struct {
	supported  Set
	registered [kindCount]bool
}

// NewRegistry returns a registry for a backend supporting the given
// kinds.
func NewRegistry(supported Set) *Registry {
	return &Registry{supported: supported}
}

// Register enables recognition of k. Registering a kind twice has the
// same effect as registering it once. Unsupported or unknown kinds
// are ignored.
func (r *Registry) Register(k Kind) {
	if r.supported.Contains(k) {
		r.registered[k] = true
	}
}

// Unregister disables recognition of k. It is idempotent.
func (r *Registry) Unregister(k Kind) {
	if k < kindCount {
		r.registered[k] = false
	}
}

// Registered reports whether k is currently registered.
func (r *Registry) Registered(k Kind) bool {
	return k < kindCount && r.registered[k]
}

// Supported reports whether the backend can recognize k at all,
// independent of registration state.
func (r *Registry) Supported(k Kind) bool {
	return r.supported.Contains(k)
}

// Recognize reports whether a raw signal of kind k should produce an
// event. Signals for unsupported kinds should not occur; if one
// does, it is treated as unregistered.
func (r *Registry) Recognize(k Kind) bool {
	return r.Supported(k) && r.Registered(k)
}

func (k Kind) String() string {
	switch k {
	case Swipe:
		return "Swipe"
	case Pinch:
		return "Pinch"
	case Tap:
		return "Tap"
	case LongTap:
		return "LongTap"
	case Drag:
		return "Drag"
	case Drop:
		return "Drop"
	default:
		return "Unknown"
	}
}

func (d Direction) String() string {
	var strs []string
	if d&DirectionUp != 0 {
		strs = append(strs, "DirectionUp")
	}
	if d&DirectionDown != 0 {
		strs = append(strs, "DirectionDown")
	}
	if d&DirectionLeft != 0 {
		strs = append(strs, "DirectionLeft")
	}
	if d&DirectionRight != 0 {
		strs = append(strs, "DirectionRight")
	}
	return strings.Join(strs, "|")
}

func (SwipeEvent) ImplementsEvent()   {}
func (PinchEvent) ImplementsEvent()   {}
func (TapEvent) ImplementsEvent()     {}
func (LongTapEvent) ImplementsEvent() {}
func (DragEvent) ImplementsEvent()    {}
func (DropEvent) ImplementsEvent()    {}

// SPDX-License-Identifier: Unlicense OR MIT

/*
Package router normalizes raw platform input into canonical events.

Backends queue raw device callbacks through the Queue* methods; the
message pump drains the resulting events with Events once per cycle.
Arrival order is preserved per device class, and every queued raw
input yields exactly one event, with two exceptions: gesture signals
whose kind is not registered are discarded, and primary-button mouse
input is rewritten into emulated touch events when touch emulation is
enabled.

A Router is single-producer/single-consumer. Backends that capture
input on a thread other than the pump thread must hand events off to
the pump thread themselves.
*/
package router

import (
	"image"
	"time"

	"github.com/kyuty/GamePlay/f32"
	"github.com/kyuty/GamePlay/gamepad"
	"github.com/kyuty/GamePlay/gesture"
	"github.com/kyuty/GamePlay/io/event"
	"github.com/kyuty/GamePlay/io/key"
	"github.com/kyuty/GamePlay/io/pointer"
	"github.com/kyuty/GamePlay/io/system"
)

// Router queues raw input callbacks as canonical events.
type Router struct {
	gestures *gesture.Registry

	emulateTouch bool
	// emulating tracks a primary-button press currently being
	// rewritten as a touch contact.
	emulating bool

	events []event.Event
}

// New returns a router filtering gesture signals against reg.
func New(reg *gesture.Registry) *Router {
	return &Router{gestures: reg}
}

// SetTouchEmulation enables or disables synthesizing touch events
// from primary-button mouse input.
func (r *Router) SetTouchEmulation(on bool) {
	r.emulateTouch = on
	if !on {
		r.emulating = false
	}
}

// TouchEmulation reports whether touch emulation is enabled.
func (r *Router) TouchEmulation() bool {
	return r.emulateTouch
}

// Events returns the queued events in arrival order and clears the
// queue.
func (r *Router) Events() []event.Event {
	evts := r.events
	r.events = nil
	return evts
}

// Pending returns the number of queued events.
func (r *Router) Pending() int {
	return len(r.events)
}

// QueueTouch queues a hardware touch event.
func (r *Router) QueueTouch(kind pointer.Kind, pos f32.Point, contact int, t time.Duration) {
	r.events = append(r.events, pointer.Event{
		Kind:         kind,
		Source:       pointer.Touch,
		ContactIndex: contact,
		Position:     pos,
		Time:         t,
	})
}

// QueueMouse queues a mouse event. A Move with buttons held is
// normalized to a Drag. With touch emulation enabled, primary-button
// presses, releases and drags become touch events carrying the
// emulation flag; one raw input still yields exactly one event.
func (r *Router) QueueMouse(kind pointer.Kind, pos f32.Point, btns pointer.Buttons, scroll f32.Point, mods key.Modifiers, t time.Duration) {
	if kind == pointer.Move && btns != 0 {
		kind = pointer.Drag
	}
	if r.emulateTouch {
		if e, ok := r.emulatedTouch(kind, pos, btns, t); ok {
			r.events = append(r.events, e)
			return
		}
	}
	r.events = append(r.events, pointer.Event{
		Kind:      kind,
		Source:    pointer.Mouse,
		Position:  pos,
		Buttons:   btns,
		Scroll:    scroll,
		Modifiers: mods,
		Time:      t,
	})
}

// emulatedTouch rewrites primary-button mouse input as a single
// touch contact. Non-primary input falls through to the mouse path.
func (r *Router) emulatedTouch(kind pointer.Kind, pos f32.Point, btns pointer.Buttons, t time.Duration) (pointer.Event, bool) {
	switch kind {
	case pointer.Press:
		if !btns.Contain(pointer.ButtonPrimary) {
			return pointer.Event{}, false
		}
		r.emulating = true
	case pointer.Release:
		if !r.emulating {
			return pointer.Event{}, false
		}
		r.emulating = false
	case pointer.Drag:
		if !r.emulating {
			return pointer.Event{}, false
		}
	default:
		return pointer.Event{}, false
	}
	return pointer.Event{
		Kind:     kind,
		Source:   pointer.Touch,
		Position: pos,
		Time:     t,
		Emulated: true,
	}, true
}

// QueueKey queues a key press or release.
func (r *Router) QueueKey(name key.Name, state key.State, mods key.Modifiers) {
	r.events = append(r.events, key.Event{
		Name:      name,
		State:     state,
		Modifiers: mods,
	})
}

// QueueEdit queues entered text.
func (r *Router) QueueEdit(text string) {
	r.events = append(r.events, key.EditEvent{Text: text})
}

// QueueGestureSwipe queues a swipe signal, discarded unless the
// swipe gesture is registered.
func (r *Router) QueueGestureSwipe(pos f32.Point, dir gesture.Direction) {
	if !r.gestures.Recognize(gesture.Swipe) {
		return
	}
	r.events = append(r.events, gesture.SwipeEvent{Position: pos, Direction: dir})
}

// QueueGesturePinch queues a pinch signal, discarded unless the
// pinch gesture is registered.
func (r *Router) QueueGesturePinch(pos f32.Point, scale float32) {
	if !r.gestures.Recognize(gesture.Pinch) {
		return
	}
	r.events = append(r.events, gesture.PinchEvent{Position: pos, Scale: scale})
}

// QueueGestureTap queues a tap signal, discarded unless the tap
// gesture is registered.
func (r *Router) QueueGestureTap(pos f32.Point) {
	if !r.gestures.Recognize(gesture.Tap) {
		return
	}
	r.events = append(r.events, gesture.TapEvent{Position: pos})
}

// QueueGestureLongTap queues a long-tap signal, discarded unless the
// long-tap gesture is registered.
func (r *Router) QueueGestureLongTap(pos f32.Point, duration time.Duration) {
	if !r.gestures.Recognize(gesture.LongTap) {
		return
	}
	r.events = append(r.events, gesture.LongTapEvent{Position: pos, Duration: duration})
}

// QueueGestureDrag queues a drag signal, discarded unless the drag
// gesture is registered.
func (r *Router) QueueGestureDrag(pos f32.Point) {
	if !r.gestures.Recognize(gesture.Drag) {
		return
	}
	r.events = append(r.events, gesture.DragEvent{Position: pos})
}

// QueueGestureDrop queues a drop signal, discarded unless the drop
// gesture is registered.
func (r *Router) QueueGestureDrop(pos f32.Point) {
	if !r.gestures.Recognize(gesture.Drop) {
		return
	}
	r.events = append(r.events, gesture.DropEvent{Position: pos})
}

// QueueResize queues a window resize.
func (r *Router) QueueResize(size image.Point) {
	r.events = append(r.events, system.ResizeEvent{Size: size})
}

// QueueClose queues a system close request.
func (r *Router) QueueClose() {
	r.events = append(r.events, system.CloseEvent{})
}

// QueueGamepadConnection queues a gamepad connect or disconnect
// notification.
func (r *Router) QueueGamepadConnection(h gamepad.Handle, connected bool) {
	r.events = append(r.events, gamepad.ConnectionEvent{Handle: h, Connected: connected})
}

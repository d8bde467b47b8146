// SPDX-License-Identifier: Unlicense OR MIT

package router

import (
	"image"
	"testing"
	"time"

	"github.com/kyuty/GamePlay/f32"
	"github.com/kyuty/GamePlay/gesture"
	"github.com/kyuty/GamePlay/io/event"
	"github.com/kyuty/GamePlay/io/key"
	"github.com/kyuty/GamePlay/io/pointer"
	"github.com/kyuty/GamePlay/io/system"
)

func TestGestureSuppression(t *testing.T) {
	reg := gesture.NewRegistry(gesture.AllGestures())
	r := New(reg)

	reg.Register(gesture.Pinch)
	r.QueueGesturePinch(f32.Pt(10, 10), 1.5)
	r.QueueGestureSwipe(f32.Pt(5, 5), gesture.DirectionLeft)

	evts := r.Events()
	if got, want := len(evts), 1; got != want {
		t.Fatalf("got %d events, want %d", got, want)
	}
	pinch, ok := evts[0].(gesture.PinchEvent)
	if !ok {
		t.Fatalf("got %T, want gesture.PinchEvent", evts[0])
	}
	if pinch.Scale != 1.5 {
		t.Errorf("pinch scale = %v, want 1.5", pinch.Scale)
	}
}

func TestGestureRegistrationInterleaving(t *testing.T) {
	reg := gesture.NewRegistry(gesture.AllGestures())
	r := New(reg)

	r.QueueGestureTap(f32.Pt(1, 1)) // unregistered: dropped
	reg.Register(gesture.Tap)
	r.QueueGestureTap(f32.Pt(2, 2)) // registered: delivered
	reg.Unregister(gesture.Tap)
	r.QueueGestureTap(f32.Pt(3, 3)) // unregistered again: dropped
	reg.Register(gesture.Tap)
	r.QueueGestureTap(f32.Pt(4, 4)) // delivered

	evts := r.Events()
	if got, want := len(evts), 2; got != want {
		t.Fatalf("got %d tap events, want %d", got, want)
	}
	positions := []f32.Point{
		evts[0].(gesture.TapEvent).Position,
		evts[1].(gesture.TapEvent).Position,
	}
	if positions[0] != f32.Pt(2, 2) || positions[1] != f32.Pt(4, 4) {
		t.Errorf("delivered taps at %v, want [(2,2) (4,4)]", positions)
	}
}

func TestUnsupportedGestureDiscarded(t *testing.T) {
	reg := gesture.NewRegistry(gesture.NewSet(gesture.Tap))
	r := New(reg)
	reg.Register(gesture.Tap)

	// A raw signal for an unsupported kind should not occur; when it
	// does it behaves exactly like an unregistered one.
	r.QueueGestureDrop(f32.Pt(1, 1))
	if got := len(r.Events()); got != 0 {
		t.Errorf("unsupported drop produced %d events", got)
	}
}

func TestArrivalOrderPreserved(t *testing.T) {
	reg := gesture.NewRegistry(gesture.AllGestures())
	reg.Register(gesture.Tap)
	r := New(reg)

	r.QueueKey("A", key.Press, 0)
	r.QueueTouch(pointer.Press, f32.Pt(1, 1), 0, 0)
	r.QueueGestureTap(f32.Pt(1, 1))
	r.QueueResize(image.Pt(640, 480))
	r.QueueKey("A", key.Release, 0)

	evts := r.Events()
	wantTypes := []string{"key.Event", "pointer.Event", "gesture.TapEvent", "system.ResizeEvent", "key.Event"}
	if len(evts) != len(wantTypes) {
		t.Fatalf("got %d events, want %d", len(evts), len(wantTypes))
	}
	for i, e := range evts {
		var got string
		switch e.(type) {
		case key.Event:
			got = "key.Event"
		case pointer.Event:
			got = "pointer.Event"
		case gesture.TapEvent:
			got = "gesture.TapEvent"
		case system.ResizeEvent:
			got = "system.ResizeEvent"
		}
		if got != wantTypes[i] {
			t.Errorf("event %d: got %s, want %s", i, got, wantTypes[i])
		}
	}
	if r.Pending() != 0 {
		t.Error("Events did not clear the queue")
	}
}

func TestHardwareTouchNotFlagged(t *testing.T) {
	r := New(gesture.NewRegistry(0))
	r.QueueTouch(pointer.Press, f32.Pt(10, 20), 1, 30*time.Millisecond)

	evts := r.Events()
	e := evts[0].(pointer.Event)
	if e.Emulated {
		t.Error("hardware touch flagged as emulated")
	}
	if e.Source != pointer.Touch {
		t.Errorf("source = %s, want Touch", e.Source)
	}
	if e.ContactIndex != 1 {
		t.Errorf("contact index = %d, want 1", e.ContactIndex)
	}
}

func TestMouseTouchEmulation(t *testing.T) {
	r := New(gesture.NewRegistry(0))
	r.SetTouchEmulation(true)

	r.QueueMouse(pointer.Press, f32.Pt(1, 1), pointer.ButtonPrimary, f32.Point{}, 0, 0)
	r.QueueMouse(pointer.Move, f32.Pt(2, 2), pointer.ButtonPrimary, f32.Point{}, 0, 0)
	r.QueueMouse(pointer.Release, f32.Pt(3, 3), 0, f32.Point{}, 0, 0)

	evts := r.Events()
	if got, want := len(evts), 3; got != want {
		t.Fatalf("got %d events, want %d: one per raw input", got, want)
	}
	wantKinds := []pointer.Kind{pointer.Press, pointer.Drag, pointer.Release}
	for i, e := range evts {
		pe := e.(pointer.Event)
		if !pe.Emulated {
			t.Errorf("event %d: emulation flag not set", i)
		}
		if pe.Source != pointer.Touch {
			t.Errorf("event %d: source = %s, want Touch", i, pe.Source)
		}
		if pe.Kind != wantKinds[i] {
			t.Errorf("event %d: kind = %s, want %s", i, pe.Kind, wantKinds[i])
		}
	}
}

func TestEmulationLeavesSecondaryMouseAlone(t *testing.T) {
	r := New(gesture.NewRegistry(0))
	r.SetTouchEmulation(true)

	r.QueueMouse(pointer.Press, f32.Pt(1, 1), pointer.ButtonSecondary, f32.Point{}, 0, 0)
	r.QueueMouse(pointer.Scroll, f32.Pt(1, 1), pointer.ButtonSecondary, f32.Pt(0, 1), 0, 0)

	for i, e := range r.Events() {
		pe := e.(pointer.Event)
		if pe.Source != pointer.Mouse || pe.Emulated {
			t.Errorf("event %d: secondary-button input rewritten: %+v", i, pe)
		}
	}
}

func TestMouseEventsWithoutEmulation(t *testing.T) {
	r := New(gesture.NewRegistry(0))

	r.QueueMouse(pointer.Press, f32.Pt(7, 8), pointer.ButtonPrimary, f32.Point{}, key.ModCtrl, 0)
	r.QueueMouse(pointer.Move, f32.Pt(9, 9), pointer.ButtonPrimary, f32.Point{}, 0, 0)

	evts := r.Events()
	press := evts[0].(pointer.Event)
	if press.Source != pointer.Mouse || press.Emulated {
		t.Errorf("mouse press misrouted: %+v", press)
	}
	if !press.Modifiers.Contain(key.ModCtrl) {
		t.Error("modifiers dropped")
	}
	if drag := evts[1].(pointer.Event); drag.Kind != pointer.Drag {
		t.Errorf("move with held button = %s, want Drag", drag.Kind)
	}
}

func TestQueueCloseAndConnection(t *testing.T) {
	r := New(gesture.NewRegistry(0))
	r.QueueClose()
	r.QueueGamepadConnection(3, true)

	evts := r.Events()
	if _, ok := evts[0].(system.CloseEvent); !ok {
		t.Errorf("got %T, want system.CloseEvent", evts[0])
	}
	if len(evts) != 2 {
		t.Fatalf("got %d events, want 2", len(evts))
	}
}

var _ event.Event = pointer.Event{}

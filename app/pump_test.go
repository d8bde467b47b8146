// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"image"
	"strings"
	"testing"
	"time"

	"github.com/kyuty/GamePlay/f32"
	"github.com/kyuty/GamePlay/gesture"
	"github.com/kyuty/GamePlay/io/event"
	"github.com/kyuty/GamePlay/io/key"
	"github.com/kyuty/GamePlay/io/pointer"
	"github.com/kyuty/GamePlay/io/system"
)

// recorder is a Handler that records callbacks and shuts the pump
// down after a fixed number of frames.
type recorder struct {
	p         *Platform
	events    []event.Event
	frames    int
	stopAfter int
	onFrame   func(h *recorder)
}

func (h *recorder) HandleEvent(e event.Event) {
	h.events = append(h.events, e)
}

func (h *recorder) Frame(dt time.Duration) {
	h.frames++
	if h.onFrame != nil {
		h.onFrame(h)
	}
	if h.stopAfter > 0 && h.frames >= h.stopAfter {
		h.p.SignalShutdown()
	}
}

func newTestPlatform(t *testing.T, h *recorder, opts ...Option) (*Platform, *headlessDriver) {
	t.Helper()
	p, err := New(h, append([]Option{Headless()}, opts...)...)
	if err != nil {
		t.Fatal(err)
	}
	h.p = p
	return p, p.driver.(*headlessDriver)
}

func TestPumpShutdownFromFrameCallback(t *testing.T) {
	h := &recorder{stopAfter: 2}
	p, d := newTestPlatform(t, h)
	d.script = []func(*Platform){
		func(p *Platform) { p.input.QueueKey("A", key.Press, 0) },
		func(p *Platform) { p.input.QueueKey("A", key.Release, 0) },
		func(p *Platform) { t.Error("pump polled a cycle after shutdown") },
	}

	if code := p.EnterMessagePump(); code != 0 {
		t.Errorf("pump return code = %d, want 0", code)
	}
	// The shutdown cycle still completed its render and swap.
	if got, want := d.swapCount, 2; got != want {
		t.Errorf("swap count = %d, want %d", got, want)
	}
	if got, want := h.frames, 2; got != want {
		t.Errorf("frame count = %d, want %d", got, want)
	}
	// Both events arrived, and DestroyEvent came last.
	if got, want := len(h.events), 3; got != want {
		t.Fatalf("got %d events, want %d", got, want)
	}
	if _, ok := h.events[len(h.events)-1].(system.DestroyEvent); !ok {
		t.Errorf("last event = %T, want system.DestroyEvent", h.events[len(h.events)-1])
	}
	if p.state != stateStopped {
		t.Errorf("pump state = %s, want Stopped", p.state)
	}
}

func TestPumpReentryPanics(t *testing.T) {
	h := &recorder{stopAfter: 1}
	p, _ := newTestPlatform(t, h)
	p.EnterMessagePump()

	defer func() {
		if r := recover(); r == nil {
			t.Error("re-entering a stopped pump did not panic")
		}
	}()
	p.EnterMessagePump()
}

func TestSecondPumpInProcessPanics(t *testing.T) {
	inner := &recorder{stopAfter: 1}
	h := &recorder{stopAfter: 1}
	h.onFrame = func(outer *recorder) {
		p2, err := New(inner, Headless())
		if err != nil {
			t.Fatal(err)
		}
		inner.p = p2
		p2.EnterMessagePump()
	}
	p, _ := newTestPlatform(t, h)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("second concurrent pump did not panic")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "already running") {
			t.Errorf("unexpected panic: %v", r)
		}
	}()
	p.EnterMessagePump()
}

func TestCloseRequestWhenExitForbidden(t *testing.T) {
	h := &recorder{}
	p, d := newTestPlatform(t, h)
	// Emulate a platform that forbids programmatic exit.
	d.caps.CanExit = false
	p.caps.CanExit = false
	d.closeReq = true

	sawClose := false
	h.onFrame = func(h *recorder) {
		for _, e := range h.events {
			if _, ok := e.(system.CloseEvent); ok {
				sawClose = true
			}
		}
		if sawClose {
			h.p.SignalShutdown()
		}
	}
	p.EnterMessagePump()

	if !sawClose {
		t.Error("close request was not delivered as CloseEvent")
	}
	if d.closeReq {
		t.Error("close request left pending")
	}
}

func TestCloseRequestStopsPumpWhenExitAllowed(t *testing.T) {
	h := &recorder{}
	p, d := newTestPlatform(t, h)
	d.closeReq = true

	p.EnterMessagePump()
	if got, want := h.frames, 1; got != want {
		t.Errorf("frame count = %d, want %d", got, want)
	}
	if p.state != stateStopped {
		t.Errorf("pump state = %s, want Stopped", p.state)
	}
}

func TestResizeUpdatesDisplaySize(t *testing.T) {
	h := &recorder{stopAfter: 1}
	p, d := newTestPlatform(t, h, Size(640, 480))
	d.script = []func(*Platform){
		func(p *Platform) { p.input.QueueResize(image.Pt(1920, 1080)) },
	}
	p.EnterMessagePump()

	if p.DisplayWidth() != 1920 || p.DisplayHeight() != 1080 {
		t.Errorf("display size = %dx%d, want 1920x1080", p.DisplayWidth(), p.DisplayHeight())
	}
	if _, ok := h.events[0].(system.ResizeEvent); !ok {
		t.Errorf("first event = %T, want system.ResizeEvent", h.events[0])
	}
}

func TestGestureEndToEnd(t *testing.T) {
	h := &recorder{stopAfter: 1}
	p, d := newTestPlatform(t, h)
	p.RegisterGesture(gesture.Pinch)
	d.script = []func(*Platform){
		func(p *Platform) {
			p.input.QueueGesturePinch(f32.Pt(100, 100), 2)
			p.input.QueueGestureSwipe(f32.Pt(50, 50), gesture.DirectionUp)
		},
	}
	p.EnterMessagePump()

	var pinches, swipes int
	for _, e := range h.events {
		switch e.(type) {
		case gesture.PinchEvent:
			pinches++
		case gesture.SwipeEvent:
			swipes++
		}
	}
	if pinches != 1 || swipes != 0 {
		t.Errorf("got %d pinches and %d swipes, want 1 and 0", pinches, swipes)
	}
}

func TestAbsoluteTime(t *testing.T) {
	h := &recorder{stopAfter: 1}
	p, _ := newTestPlatform(t, h)

	p.SetAbsoluteTime(5 * time.Second)
	got := p.AbsoluteTime()
	if got < 5*time.Second || got > 5*time.Second+100*time.Millisecond {
		t.Errorf("AbsoluteTime after SetAbsoluteTime(5s) = %v", got)
	}
	prev := got
	for i := 0; i < 10; i++ {
		now := p.AbsoluteTime()
		if now < prev {
			t.Fatalf("time went backwards: %v after %v", now, prev)
		}
		prev = now
	}
	// Rebasing backwards is allowed, and time resumes monotonically
	// from the new base.
	p.SetAbsoluteTime(time.Second)
	if got := p.AbsoluteTime(); got < time.Second || got > prev {
		t.Errorf("AbsoluteTime after rebase = %v", got)
	}
}

func TestFacadeQueries(t *testing.T) {
	h := &recorder{stopAfter: 1}
	p, d := newTestPlatform(t, h, VSync(true), MultiTouch(true))

	if !p.IsVsync() {
		t.Error("vsync not enabled")
	}
	p.SetVsync(false)
	if p.IsVsync() || d.vsync {
		t.Error("SetVsync(false) not applied")
	}
	if !p.IsMultiTouch() {
		t.Error("multi-touch not enabled on supporting backend")
	}
	if !p.HasMouse() {
		t.Error("headless backend should report a mouse")
	}
	p.SetMouseCaptured(true)
	if !p.IsMouseCaptured() || !d.captured {
		t.Error("mouse capture not applied")
	}
	p.SetCursorVisible(false)
	if p.IsCursorVisible() || d.cursorVisible {
		t.Error("cursor visibility not applied")
	}
	p.DisplayKeyboard(true)
	if !d.keyboardShown {
		t.Error("virtual keyboard not shown")
	}
	if !p.HasAccelerometer() {
		t.Error("headless backend should report an accelerometer")
	}
	d.sensors = SensorData{AccelY: 1}
	if pitch, _ := p.AccelerometerValues(); pitch < 89 || pitch > 91 {
		t.Errorf("pitch = %v, want ~90", pitch)
	}
}

func TestTouchEmulationOption(t *testing.T) {
	h := &recorder{stopAfter: 1}
	p, err := New(h, Headless(), TouchEmulation(true))
	if err != nil {
		t.Fatal(err)
	}
	h.p = p
	// The headless backend has touch hardware, so emulation stays
	// off even when requested.
	if p.input.TouchEmulation() {
		t.Error("touch emulation enabled despite touch hardware")
	}
}

func TestEmulatedTouchThroughPump(t *testing.T) {
	h := &recorder{stopAfter: 1}
	p, d := newTestPlatform(t, h)
	p.input.SetTouchEmulation(true)
	d.script = []func(*Platform){
		func(p *Platform) {
			p.input.QueueMouse(pointer.Press, f32.Pt(1, 2), pointer.ButtonPrimary, f32.Point{}, 0, 0)
		},
	}
	p.EnterMessagePump()

	pe, ok := h.events[0].(pointer.Event)
	if !ok {
		t.Fatalf("got %T, want pointer.Event", h.events[0])
	}
	if !pe.Emulated || pe.Source != pointer.Touch {
		t.Errorf("emulated press misflagged: %+v", pe)
	}
}

func TestNilHandler(t *testing.T) {
	if _, err := New(nil, Headless()); err == nil {
		t.Error("New(nil) did not fail")
	}
}

// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/kyuty/GamePlay/gamepad"
	"github.com/kyuty/GamePlay/gesture"
	"github.com/kyuty/GamePlay/io/router"
	"github.com/kyuty/GamePlay/io/system"
)

// pumpActive guards the single-pump-per-process contract.
var pumpActive atomic.Bool

// Platform is the single entry point an application uses to create,
// run and query the platform. It composes the clock, the input
// router, the gamepad registry and the gesture registration state,
// and forwards normalized events to its Handler.
type Platform struct {
	handler Handler
	driver  driver
	caps    Capabilities
	config  Config

	clock    clock
	input    *router.Router
	gestures *gesture.Registry
	gamepads *gamepad.Registry

	width, height int
	vsync         bool
	multiSampling bool
	multiTouch    bool
	mouseCaptured bool
	cursorVisible bool

	state     pumpState
	shutdown  atomic.Bool
	exitCode  int
	lastFrame time.Duration
}

// New creates a Platform bound to the given handler. It fails when
// the backend cannot establish a window or graphics surface; that is
// the only recoverable failure in this package. The Platform never
// takes ownership of the handler's lifetime.
func New(h Handler, opts ...Option) (*Platform, error) {
	if h == nil {
		return nil, errors.New("app: nil handler")
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	p := &Platform{
		handler:       h,
		config:        cfg,
		gamepads:      gamepad.NewRegistry(),
		cursorVisible: true,
		state:         stateCreated,
	}
	p.clock.reset()
	var (
		d   driver
		err error
	)
	if cfg.headless {
		d = newHeadlessDriver(p, &cfg)
	} else {
		d, err = newDriver(p, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("app: create platform: %w", err)
	}
	p.driver = d
	p.caps = d.capabilities()
	p.gestures = gesture.NewRegistry(p.caps.Gestures)
	p.input = router.New(p.gestures)
	if cfg.TouchEmulation && !p.caps.Touch && p.caps.Mouse {
		p.input.SetTouchEmulation(true)
	}
	p.width, p.height = cfg.Width, cfg.Height
	p.vsync = cfg.VSync
	p.multiSampling = cfg.MultiSampling
	p.multiTouch = cfg.MultiTouch && p.caps.MultiTouch
	if po, ok := d.(gamepad.Poller); ok && p.caps.PolledGamepads {
		p.gamepads.SetPoller(po)
	}
	return p, nil
}

// EnterMessagePump runs the message pump until shutdown and returns
// the pump exit code. Each cycle drains the pending OS messages,
// dispatches the normalized events in arrival order, invokes the
// handler's Frame hook and requests a buffer swap.
//
// Exactly one pump may be running per process; starting a second one
// before the first has stopped is a programming error and panics.
func (p *Platform) EnterMessagePump() int {
	if p.state != stateCreated {
		panic("app: message pump already entered for this Platform")
	}
	if !pumpActive.CompareAndSwap(false, true) {
		panic("app: a message pump is already running in this process")
	}
	defer pumpActive.Store(false)
	// OS message retrieval and GL contexts are bound to one thread.
	runtime.LockOSThread()

	p.state = stateRunning
	p.clock.reset()
	p.lastFrame = 0
	for p.state == stateRunning {
		p.driver.pollEvents(false)
		if p.driver.shouldClose() {
			if p.caps.CanExit {
				p.shutdown.Store(true)
			} else {
				p.driver.clearShouldClose()
				p.input.QueueClose()
			}
		}
		for _, e := range p.input.Events() {
			if rz, ok := e.(system.ResizeEvent); ok {
				p.width, p.height = rz.Size.X, rz.Size.Y
			}
			p.handler.HandleEvent(e)
		}
		now := p.clock.now()
		p.handler.Frame(now - p.lastFrame)
		p.lastFrame = now
		if err := p.driver.swapBuffers(); err != nil {
			panic(fmt.Sprintf("app: buffer swap failed: %v", err))
		}
		// Shutdown requests take effect here, at the end of a full
		// cycle, never mid-dispatch.
		if p.shutdown.Load() {
			p.state = stateShuttingDown
		}
	}
	p.handler.HandleEvent(system.DestroyEvent{})
	p.driver.destroy()
	p.state = stateStopped
	return p.exitCode
}

// SignalShutdown requests a clean stop of the message pump. It is
// safe to call from handler callbacks on the pump goroutine; the
// current cycle completes its render and swap, and no further events
// are dispatched afterwards.
func (p *Platform) SignalShutdown() {
	p.shutdown.Store(true)
}

// CanExit reports whether a programmatic exit is allowed on this
// platform.
func (p *Platform) CanExit() bool {
	return p.caps.CanExit
}

// AbsoluteTime returns the absolute platform time since the message
// pump was started. It is non-decreasing except across an explicit
// SetAbsoluteTime.
func (p *Platform) AbsoluteTime() time.Duration {
	return p.clock.now()
}

// SetAbsoluteTime rebases the platform clock so that the next
// AbsoluteTime call returns t.
func (p *Platform) SetAbsoluteTime(t time.Duration) {
	p.clock.setNow(t)
}

// DisplayWidth returns the display width in pixels.
func (p *Platform) DisplayWidth() int {
	return p.width
}

// DisplayHeight returns the display height in pixels.
func (p *Platform) DisplayHeight() int {
	return p.height
}

// IsVsync reports whether buffer swaps are synchronized to the
// display refresh.
func (p *Platform) IsVsync() bool {
	return p.vsync
}

// SetVsync enables or disables vertical sync for the display.
func (p *Platform) SetVsync(enabled bool) {
	p.vsync = enabled
	p.driver.setVSync(enabled)
}

// IsMultiSampling reports whether multi-sampling is enabled.
func (p *Platform) IsMultiSampling() bool {
	return p.multiSampling
}

// SetMultiSampling records the multi-sampling mode. The mode is
// applied when the graphics surface is created.
func (p *Platform) SetMultiSampling(enabled bool) {
	p.multiSampling = enabled
}

// IsMultiTouch reports whether multi-touch delivery is enabled.
func (p *Platform) IsMultiTouch() bool {
	return p.multiTouch
}

// SetMultiTouch enables or disables multi-touch delivery. It does
// nothing on platforms without multi-touch support.
func (p *Platform) SetMultiTouch(enabled bool) {
	if p.caps.MultiTouch {
		p.multiTouch = enabled
	}
}

// HasMouse reports whether the platform has mouse support.
func (p *Platform) HasMouse() bool {
	return p.caps.Mouse
}

// SetMouseCaptured enables or disables mouse capture. While
// captured, the cursor is hidden and mouse positions are delivered
// as deltas. It does nothing on platforms without a mouse.
func (p *Platform) SetMouseCaptured(captured bool) {
	if !p.caps.Mouse {
		return
	}
	p.mouseCaptured = captured
	p.driver.setMouseCaptured(captured)
}

// IsMouseCaptured reports whether mouse capture is enabled.
func (p *Platform) IsMouseCaptured() bool {
	return p.mouseCaptured
}

// SetCursorVisible shows or hides the platform cursor.
func (p *Platform) SetCursorVisible(visible bool) {
	if !p.caps.Mouse {
		return
	}
	p.cursorVisible = visible
	p.driver.setCursorVisible(visible)
}

// IsCursorVisible reports whether the platform cursor is visible.
func (p *Platform) IsCursorVisible() bool {
	return p.cursorVisible
}

// HasAccelerometer reports whether the platform has accelerometer
// support.
func (p *Platform) HasAccelerometer() bool {
	return p.caps.Accelerometer
}

// AccelerometerValues returns the device orientation as pitch and
// roll in degrees, both zero without accelerometer support.
func (p *Platform) AccelerometerValues() (pitch, roll float32) {
	if !p.caps.Accelerometer {
		return 0, 0
	}
	s := p.driver.sensorValues()
	ax, ay, az := float64(s.AccelX), float64(s.AccelY), float64(s.AccelZ)
	pitch = float32(math.Atan2(ay, math.Sqrt(ax*ax+az*az)) * 180 / math.Pi)
	roll = float32(math.Atan2(ax, math.Sqrt(ay*ay+az*az)) * 180 / math.Pi)
	return pitch, roll
}

// SensorValues returns one raw read of the accelerometer and
// gyroscope, zero on platforms without the corresponding hardware.
func (p *Platform) SensorValues() SensorData {
	if !p.caps.Accelerometer {
		return SensorData{}
	}
	return p.driver.sensorValues()
}

// DisplayKeyboard shows or hides the virtual keyboard, if the
// platform has one.
func (p *Platform) DisplayKeyboard(show bool) {
	p.driver.showKeyboard(show)
}

// IsGestureSupported reports whether the backend can recognize the
// gesture kind at all, independent of registration.
func (p *Platform) IsGestureSupported(k gesture.Kind) bool {
	return p.gestures.Supported(k)
}

// RegisterGesture starts recognition of the gesture kind. It is
// idempotent.
func (p *Platform) RegisterGesture(k gesture.Kind) {
	p.gestures.Register(k)
}

// UnregisterGesture stops recognition of the gesture kind. It is
// idempotent.
func (p *Platform) UnregisterGesture(k gesture.Kind) {
	p.gestures.Unregister(k)
}

// IsGestureRegistered reports whether the gesture kind is currently
// registered.
func (p *Platform) IsGestureRegistered(k gesture.Kind) bool {
	return p.gestures.Registered(k)
}

// Gamepads returns the gamepad registry. References to descriptors
// or state must not be held past the disconnect of their handle.
func (p *Platform) Gamepads() *gamepad.Registry {
	return p.gamepads
}

// ReadClipboard returns the current clipboard content.
func (p *Platform) ReadClipboard() (string, error) {
	return p.driver.readClipboard()
}

// WriteClipboard replaces the clipboard content.
func (p *Platform) WriteClipboard(s string) {
	p.driver.writeClipboard(s)
}

// SPDX-License-Identifier: Unlicense OR MIT

/*
Package gamepad tracks connected gamepads, their capability
descriptors and their live input state.

State is updated either by push-style events delivered by the
platform backend or by explicit polling, one authoritative path per
backend. The registry clamps anomalies originating in the OS layer
(duplicate connects, stale handles, out-of-range indices) to no-ops;
the application has no actionable remedy for them.
*/
package gamepad

import (
	"log"
	"sort"
	"sync"

	"github.com/kyuty/GamePlay/f32"
)

// Handle is an opaque identifier for a connected gamepad. A handle
// is unique among simultaneously connected devices for the lifetime
// of the connection; its value may be reused after a disconnect.
type Handle uint32

// Descriptor describes the capabilities of a connected gamepad. It
// is immutable after the connect event that created it.
type Descriptor struct {
	Handle        Handle
	ButtonCount   int
	JoystickCount int
	TriggerCount  int
	Name          string
}

// Buttons is the pressed set, one bit per button index.
type Buttons uint32

// State is a snapshot of the live input state of one gamepad.
type State struct {
	Buttons   Buttons
	Joysticks []f32.Point
	Triggers  []float32
}

// ConnectionEvent reports a gamepad connect or disconnect.
type ConnectionEvent struct {
	Handle    Handle
	Connected bool
}

// Poller pulls the OS for the complete current state of a gamepad.
// One call must produce one consistent snapshot; it must not mix two
// OS reads. Backends without push-style gamepad events implement it.
type Poller interface {
	PollGamepad(h Handle, dst *State) bool
}

// Registry owns the descriptor and live state of every connected
// gamepad. References to either must not be retained past the
// disconnect of the handle.
type Registry struct {
	mu     sync.Mutex
	pads   map[Handle]*pad
	poller Poller
}

type pad struct {
	desc  Descriptor
	state State
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{pads: make(map[Handle]*pad)}
}

// SetPoller installs the explicit polling path. When a poller is
// set, Poll refreshes the live state from the OS before reporting
// it; push-style updates for the same handle are not expected.
func (r *Registry) SetPoller(p Poller) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.poller = p
}

// Connect records a newly connected gamepad with a zeroed live
// state. A connect for a handle already present indicates a platform
// bug; it is logged and ignored without touching the existing state.
func (r *Registry) Connect(h Handle, buttons, joysticks, triggers int, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.pads[h]; ok {
		log.Printf("gamepad: duplicate connect for handle %d (%q) ignored", h, name)
		return
	}
	p := &pad{
		desc: Descriptor{
			Handle:        h,
			ButtonCount:   buttons,
			JoystickCount: joysticks,
			TriggerCount:  triggers,
			Name:          name,
		},
	}
	p.state.Joysticks = make([]f32.Point, joysticks)
	p.state.Triggers = make([]float32, triggers)
	r.pads[h] = p
}

// Disconnect destroys the descriptor and live state for h. Unknown
// handles are ignored.
func (r *Registry) Disconnect(h Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.pads, h)
}

// Connected reports whether h refers to a connected gamepad.
func (r *Registry) Connected(h Handle) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.pads[h]
	return ok
}

// Descriptor returns the capability descriptor for h.
func (r *Registry) Descriptor(h Handle) (Descriptor, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pads[h]
	if !ok {
		return Descriptor{}, false
	}
	return p.desc, true
}

// Count returns the number of connected gamepads.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pads)
}

// Handles returns the connected handles in ascending order.
func (r *Registry) Handles() []Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	hs := make([]Handle, 0, len(r.pads))
	for h := range r.pads {
		hs = append(hs, h)
	}
	sort.Slice(hs, func(i, j int) bool { return hs[i] < hs[j] })
	return hs
}

// ButtonPressed records a button press. Stale handles and indices
// outside [0, ButtonCount) are ignored.
func (r *Registry) ButtonPressed(h Handle, index int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.pads[h]; ok && index >= 0 && index < p.desc.ButtonCount {
		p.state.Buttons |= 1 << index
	}
}

// ButtonReleased records a button release. Stale handles and indices
// outside [0, ButtonCount) are ignored.
func (r *Registry) ButtonReleased(h Handle, index int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.pads[h]; ok && index >= 0 && index < p.desc.ButtonCount {
		p.state.Buttons &^= 1 << index
	}
}

// TriggerChanged records a new trigger value. Stale handles and
// indices outside [0, TriggerCount) are ignored.
func (r *Registry) TriggerChanged(h Handle, index int, value float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.pads[h]; ok && index >= 0 && index < p.desc.TriggerCount {
		p.state.Triggers[index] = value
	}
}

// JoystickChanged records a new joystick axis pair. Stale handles
// and indices outside [0, JoystickCount) are ignored.
func (r *Registry) JoystickChanged(h Handle, index int, x, y float32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.pads[h]; ok && index >= 0 && index < p.desc.JoystickCount {
		p.state.Joysticks[index] = f32.Point{X: x, Y: y}
	}
}

// Poll copies one consistent snapshot of the live state of h into
// dst, reusing dst's buffers where possible. With a poller installed
// the live state is first refreshed from the OS in a single atomic
// overwrite. Polling a disconnected handle is a no-op and reports
// false.
func (r *Registry) Poll(h Handle, dst *State) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pads[h]
	if !ok {
		return false
	}
	if r.poller != nil {
		var snap State
		snap.Joysticks = make([]f32.Point, p.desc.JoystickCount)
		snap.Triggers = make([]float32, p.desc.TriggerCount)
		if r.poller.PollGamepad(h, &snap) {
			p.state = snap
		}
	}
	copyState(dst, &p.state)
	return true
}

func copyState(dst, src *State) {
	dst.Buttons = src.Buttons
	if cap(dst.Joysticks) < len(src.Joysticks) {
		dst.Joysticks = make([]f32.Point, len(src.Joysticks))
	}
	dst.Joysticks = dst.Joysticks[:len(src.Joysticks)]
	copy(dst.Joysticks, src.Joysticks)
	if cap(dst.Triggers) < len(src.Triggers) {
		dst.Triggers = make([]float32, len(src.Triggers))
	}
	dst.Triggers = dst.Triggers[:len(src.Triggers)]
	copy(dst.Triggers, src.Triggers)
}

// Pressed reports whether the button at index is in the set.
func (b Buttons) Pressed(index int) bool {
	return index >= 0 && index < 32 && b&(1<<index) != 0
}

func (ConnectionEvent) ImplementsEvent() {}

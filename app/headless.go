// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"log"

	"github.com/atotto/clipboard"

	"github.com/kyuty/GamePlay/gesture"
)

// headlessDriver is the windowless backend selected by the Headless
// option. No OS window or graphics surface exists; input arrives
// through callbacks injected by a per-cycle script. It reports every
// capability so the full event surface can be exercised.
type headlessDriver struct {
	p    *Platform
	caps Capabilities

	vsync         bool
	cursorVisible bool
	captured      bool
	keyboardShown bool
	closeReq      bool
	swapCount     int
	sensors       SensorData

	// script is consumed one entry per pump cycle; each entry
	// injects raw input through the platform's router and
	// registries.
	script []func(*Platform)
}

func newHeadlessDriver(p *Platform, cfg *Config) *headlessDriver {
	return &headlessDriver{
		p:             p,
		vsync:         cfg.VSync,
		cursorVisible: true,
		caps: Capabilities{
			Mouse:         true,
			Touch:         true,
			MultiTouch:    true,
			Accelerometer: true,
			Gestures:      gesture.AllGestures(),
			CanExit:       true,
		},
	}
}

func (d *headlessDriver) capabilities() Capabilities {
	return d.caps
}

func (d *headlessDriver) pollEvents(wait bool) {
	if len(d.script) == 0 {
		return
	}
	step := d.script[0]
	d.script = d.script[1:]
	if step != nil {
		step(d.p)
	}
}

func (d *headlessDriver) swapBuffers() error {
	d.swapCount++
	return nil
}

func (d *headlessDriver) setVSync(enabled bool) {
	d.vsync = enabled
}

func (d *headlessDriver) setCursorVisible(visible bool) {
	d.cursorVisible = visible
}

func (d *headlessDriver) setMouseCaptured(captured bool) {
	d.captured = captured
}

func (d *headlessDriver) showKeyboard(show bool) {
	d.keyboardShown = show
}

func (d *headlessDriver) readClipboard() (string, error) {
	return clipboard.ReadAll()
}

func (d *headlessDriver) writeClipboard(s string) {
	if err := clipboard.WriteAll(s); err != nil {
		log.Printf("app: clipboard write: %v", err)
	}
}

func (d *headlessDriver) sensorValues() SensorData {
	return d.sensors
}

func (d *headlessDriver) shouldClose() bool {
	return d.closeReq
}

func (d *headlessDriver) clearShouldClose() {
	d.closeReq = false
}

func (d *headlessDriver) destroy() {}

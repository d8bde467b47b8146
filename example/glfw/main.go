// SPDX-License-Identifier: Unlicense OR MIT

// A minimal interactive program: logs normalized input, clears the
// frame, exits on Escape or window close.
package main

import (
	"log"
	"os"
	"time"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/kyuty/GamePlay/app"
	"github.com/kyuty/GamePlay/gamepad"
	"github.com/kyuty/GamePlay/gesture"
	"github.com/kyuty/GamePlay/io/event"
	"github.com/kyuty/GamePlay/io/key"
	"github.com/kyuty/GamePlay/io/pointer"
	"github.com/kyuty/GamePlay/io/system"
)

type demo struct {
	platform *app.Platform
	padState gamepad.State
}

func main() {
	d := &demo{}
	opts := []app.Option{
		app.Title("GamePlay demo"),
		app.Size(800, 600),
	}
	if cfg, err := app.LoadConfig("game.yml"); err == nil {
		opts = []app.Option{app.WithConfig(cfg)}
	}
	p, err := app.New(d, opts...)
	if err != nil {
		log.Fatal(err)
	}
	d.platform = p
	p.RegisterGesture(gesture.Tap)
	os.Exit(p.EnterMessagePump())
}

func (d *demo) HandleEvent(e event.Event) {
	switch e := e.(type) {
	case key.Event:
		if e.Name == key.NameEscape && e.State == key.Press {
			d.platform.SignalShutdown()
			return
		}
		log.Printf("key %s %s", e.Name, e.State)
	case pointer.Event:
		if e.Kind == pointer.Press || e.Kind == pointer.Release {
			log.Printf("%s %s at %s", e.Source, e.Kind, e.Position)
		}
	case gesture.TapEvent:
		log.Printf("tap at %s", e.Position)
	case gamepad.ConnectionEvent:
		if e.Connected {
			desc, _ := d.platform.Gamepads().Descriptor(e.Handle)
			log.Printf("gamepad connected: %s (%d buttons)", desc.Name, desc.ButtonCount)
		} else {
			log.Printf("gamepad %d disconnected", e.Handle)
		}
	case system.ResizeEvent:
		log.Printf("resized to %v", e.Size)
	case system.DestroyEvent:
		log.Printf("shutting down")
	}
}

func (d *demo) Frame(dt time.Duration) {
	reg := d.platform.Gamepads()
	for _, h := range reg.Handles() {
		if !reg.Poll(h, &d.padState) {
			continue
		}
		if d.padState.Buttons != 0 {
			log.Printf("gamepad %d buttons %b", h, d.padState.Buttons)
		}
	}
	gl.ClearColor(0.1, 0.1, 0.15, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

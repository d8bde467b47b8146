// SPDX-License-Identifier: Unlicense OR MIT

//go:build darwin || freebsd || linux || windows

package app

import (
	"image"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/kyuty/GamePlay/f32"
	"github.com/kyuty/GamePlay/gamepad"
	"github.com/kyuty/GamePlay/io/key"
	"github.com/kyuty/GamePlay/io/pointer"
)

// glfwDriver is the desktop backend. GLFW owns the window, the GL
// context, the input callbacks and the joystick state; gamepad state
// is available through explicit polling only.
type glfwDriver struct {
	p   *Platform
	win *glfw.Window

	buttons  pointer.Buttons
	mods     key.Modifiers
	captured bool
	visible  bool
}

func newDriver(p *Platform, cfg *Config) (driver, error) {
	if err := glfw.Init(); err != nil {
		return nil, err
	}
	if cfg.MultiSampling {
		samples := cfg.Samples
		if samples == 0 {
			samples = 4
		}
		glfw.WindowHint(glfw.Samples, samples)
	}
	var monitor *glfw.Monitor
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}
	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, err
	}
	win.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, err
	}
	d := &glfwDriver{p: p, win: win, visible: true}
	d.setVSync(cfg.VSync)
	d.registerCallbacks()
	glfw.SetJoystickCallback(func(joy glfw.Joystick, event glfw.PeripheralEvent) {
		switch event {
		case glfw.Connected:
			d.connectJoystick(joy, true)
		case glfw.Disconnected:
			h := gamepad.Handle(joy)
			p.gamepads.Disconnect(h)
			p.input.QueueGamepadConnection(h, false)
		}
	})
	// Joysticks present before the pump starts are registered
	// without a connection event.
	for joy := glfw.Joystick1; joy <= glfw.JoystickLast; joy++ {
		if joy.Present() {
			d.connectJoystick(joy, false)
		}
	}
	return d, nil
}

func (d *glfwDriver) capabilities() Capabilities {
	return Capabilities{
		Mouse:          true,
		CanExit:        true,
		PolledGamepads: true,
	}
}

func (d *glfwDriver) registerCallbacks() {
	d.win.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		d.p.input.QueueMouse(pointer.Move, f32.Pt(float32(x), float32(y)),
			d.buttons, f32.Point{}, d.mods, d.p.clock.now())
	})
	d.win.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		var btn pointer.Buttons
		switch button {
		case glfw.MouseButtonLeft:
			btn = pointer.ButtonPrimary
		case glfw.MouseButtonRight:
			btn = pointer.ButtonSecondary
		case glfw.MouseButtonMiddle:
			btn = pointer.ButtonTertiary
		default:
			return
		}
		d.mods = glfwMods(mods)
		var kind pointer.Kind
		switch action {
		case glfw.Press:
			d.buttons |= btn
			kind = pointer.Press
		case glfw.Release:
			d.buttons &^= btn
			kind = pointer.Release
		default:
			return
		}
		x, y := w.GetCursorPos()
		d.p.input.QueueMouse(kind, f32.Pt(float32(x), float32(y)),
			d.buttons, f32.Point{}, d.mods, d.p.clock.now())
	})
	d.win.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		// GLFW reports positive Y for a wheel rotated away from the
		// user, which is already the normalized convention.
		x, y := w.GetCursorPos()
		d.p.input.QueueMouse(pointer.Scroll, f32.Pt(float32(x), float32(y)),
			d.buttons, f32.Pt(float32(xoff), float32(yoff)), d.mods, d.p.clock.now())
	})
	d.win.SetKeyCallback(func(w *glfw.Window, k glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		name := glfwKeyName(k)
		if name == "" {
			return
		}
		d.mods = glfwMods(mods)
		switch action {
		case glfw.Press, glfw.Repeat:
			d.p.input.QueueKey(name, key.Press, d.mods)
		case glfw.Release:
			d.p.input.QueueKey(name, key.Release, d.mods)
		}
	})
	d.win.SetCharCallback(func(w *glfw.Window, char rune) {
		d.p.input.QueueEdit(string(char))
	})
	d.win.SetSizeCallback(func(w *glfw.Window, width, height int) {
		d.p.input.QueueResize(image.Pt(width, height))
	})
	d.win.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
	})
}

func (d *glfwDriver) connectJoystick(joy glfw.Joystick, notify bool) {
	h := gamepad.Handle(joy)
	name := joy.GetName()
	buttons := len(joy.GetButtons())
	joysticks := len(joy.GetAxes()) / 2
	triggers := 0
	if joy.IsGamepad() {
		name = joy.GetGamepadName()
		buttons = len(glfw.GamepadState{}.Buttons)
		joysticks = 2
		triggers = 2
	}
	d.p.gamepads.Connect(h, buttons, joysticks, triggers, name)
	if notify {
		d.p.input.QueueGamepadConnection(h, true)
	}
}

// PollGamepad reads one full snapshot of the joystick state. Mapped
// gamepads come from a single GetGamepadState read; raw joysticks
// are sampled by GLFW during the same pollEvents batch.
func (d *glfwDriver) PollGamepad(h gamepad.Handle, dst *gamepad.State) bool {
	joy := glfw.Joystick(h)
	if !joy.Present() {
		return false
	}
	if joy.IsGamepad() {
		gs := joy.GetGamepadState()
		if gs == nil {
			return false
		}
		var btns gamepad.Buttons
		for i, a := range gs.Buttons {
			if a == glfw.Press {
				btns |= 1 << i
			}
		}
		dst.Buttons = btns
		if len(dst.Joysticks) >= 2 {
			dst.Joysticks[0] = f32.Pt(gs.Axes[glfw.AxisLeftX], gs.Axes[glfw.AxisLeftY])
			dst.Joysticks[1] = f32.Pt(gs.Axes[glfw.AxisRightX], gs.Axes[glfw.AxisRightY])
		}
		if len(dst.Triggers) >= 2 {
			dst.Triggers[0] = gs.Axes[glfw.AxisLeftTrigger]
			dst.Triggers[1] = gs.Axes[glfw.AxisRightTrigger]
		}
		return true
	}
	var btns gamepad.Buttons
	for i, a := range joy.GetButtons() {
		if i >= 32 {
			break
		}
		if a == glfw.Press {
			btns |= 1 << i
		}
	}
	dst.Buttons = btns
	axes := joy.GetAxes()
	for i := range dst.Joysticks {
		if 2*i+1 < len(axes) {
			dst.Joysticks[i] = f32.Pt(axes[2*i], axes[2*i+1])
		}
	}
	return true
}

func (d *glfwDriver) pollEvents(wait bool) {
	if wait {
		glfw.WaitEvents()
	} else {
		glfw.PollEvents()
	}
}

func (d *glfwDriver) swapBuffers() error {
	d.win.SwapBuffers()
	return nil
}

func (d *glfwDriver) setVSync(enabled bool) {
	if enabled {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
}

func (d *glfwDriver) setCursorVisible(visible bool) {
	d.visible = visible
	d.applyCursorMode()
}

func (d *glfwDriver) setMouseCaptured(captured bool) {
	d.captured = captured
	d.applyCursorMode()
}

func (d *glfwDriver) applyCursorMode() {
	switch {
	case d.captured:
		d.win.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	case !d.visible:
		d.win.SetInputMode(glfw.CursorMode, glfw.CursorHidden)
	default:
		d.win.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

func (d *glfwDriver) showKeyboard(show bool) {
	// No virtual keyboard on desktop.
}

func (d *glfwDriver) readClipboard() (string, error) {
	return d.win.GetClipboardString(), nil
}

func (d *glfwDriver) writeClipboard(s string) {
	d.win.SetClipboardString(s)
}

func (d *glfwDriver) sensorValues() SensorData {
	return SensorData{}
}

func (d *glfwDriver) shouldClose() bool {
	return d.win.ShouldClose()
}

func (d *glfwDriver) clearShouldClose() {
	d.win.SetShouldClose(false)
}

func (d *glfwDriver) destroy() {
	d.win.Destroy()
	glfw.Terminate()
}

func glfwMods(mods glfw.ModifierKey) key.Modifiers {
	var m key.Modifiers
	if mods&glfw.ModShift != 0 {
		m |= key.ModShift
	}
	if mods&glfw.ModControl != 0 {
		m |= key.ModCtrl
	}
	if mods&glfw.ModAlt != 0 {
		m |= key.ModAlt
	}
	if mods&glfw.ModSuper != 0 {
		m |= key.ModSuper
	}
	return m
}

var fKeyNames = [12]key.Name{
	key.NameF1, key.NameF2, key.NameF3, key.NameF4,
	key.NameF5, key.NameF6, key.NameF7, key.NameF8,
	key.NameF9, key.NameF10, key.NameF11, key.NameF12,
}

func glfwKeyName(k glfw.Key) key.Name {
	switch {
	case k >= glfw.KeyA && k <= glfw.KeyZ:
		return key.Name(rune('A' + k - glfw.KeyA))
	case k >= glfw.Key0 && k <= glfw.Key9:
		return key.Name(rune('0' + k - glfw.Key0))
	case k >= glfw.KeyF1 && k <= glfw.KeyF12:
		return fKeyNames[k-glfw.KeyF1]
	}
	switch k {
	case glfw.KeySpace:
		return key.NameSpace
	case glfw.KeyEscape:
		return key.NameEscape
	case glfw.KeyEnter:
		return key.NameReturn
	case glfw.KeyKPEnter:
		return key.NameEnter
	case glfw.KeyTab:
		return key.NameTab
	case glfw.KeyBackspace:
		return key.NameDeleteBackward
	case glfw.KeyDelete:
		return key.NameDeleteForward
	case glfw.KeyHome:
		return key.NameHome
	case glfw.KeyEnd:
		return key.NameEnd
	case glfw.KeyPageUp:
		return key.NamePageUp
	case glfw.KeyPageDown:
		return key.NamePageDown
	case glfw.KeyLeft:
		return key.NameLeftArrow
	case glfw.KeyRight:
		return key.NameRightArrow
	case glfw.KeyUp:
		return key.NameUpArrow
	case glfw.KeyDown:
		return key.NameDownArrow
	case glfw.KeyLeftShift, glfw.KeyRightShift:
		return key.NameShift
	case glfw.KeyLeftControl, glfw.KeyRightControl:
		return key.NameCtrl
	case glfw.KeyLeftAlt, glfw.KeyRightAlt:
		return key.NameAlt
	case glfw.KeyLeftSuper, glfw.KeyRightSuper:
		return key.NameSuper
	}
	return ""
}

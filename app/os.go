// SPDX-License-Identifier: Unlicense OR MIT

package app

import "github.com/kyuty/GamePlay/gesture"

// Capabilities are the static device facts of a platform backend,
// fixed at creation time.
type Capabilities struct {
	// Mouse reports real mouse hardware.
	Mouse bool
	// Touch reports real touch hardware.
	Touch bool
	// MultiTouch reports support for more than one simultaneous
	// touch contact.
	MultiTouch bool
	// Accelerometer reports accelerometer/gyroscope hardware.
	Accelerometer bool
	// Gestures is the set of gesture kinds the backend can
	// recognize.
	Gestures gesture.Set
	// CanExit reports whether a programmatic exit is allowed. Some
	// platforms (eg. iOS) forbid it; there a close request becomes a
	// CloseEvent instead of terminating the pump.
	CanExit bool
	// PolledGamepads reports that gamepad state is only available
	// through explicit polling, not push events.
	PolledGamepads bool
}

// SensorData is one read of the raw motion sensors. Values are zero
// on platforms without the corresponding hardware.
type SensorData struct {
	AccelX, AccelY, AccelZ float32
	GyroX, GyroY, GyroZ    float32
}

// driver is the interface for the platform backend of a Platform.
// All methods are called on the pump goroutine.
type driver interface {
	capabilities() Capabilities

	// pollEvents drains the pending OS messages, invoking the
	// router and registry callbacks for each. It must not block
	// when wait is false; with wait set it may block until at least
	// one message arrives.
	pollEvents(wait bool)

	// swapBuffers presents the current frame. A failure leaves the
	// presentation surface unusable and is fatal to the pump.
	swapBuffers() error

	setVSync(enabled bool)
	setCursorVisible(visible bool)
	setMouseCaptured(captured bool)
	showKeyboard(show bool)

	readClipboard() (string, error)
	writeClipboard(s string)

	sensorValues() SensorData

	// shouldClose reports a pending OS close request.
	shouldClose() bool
	// clearShouldClose withdraws a pending close request, used when
	// programmatic exit is not permitted.
	clearShouldClose()

	destroy()
}

// pumpState is the lifecycle state of the message pump.
type pumpState uint8

const (
	stateCreated pumpState = iota
	stateRunning
	stateShuttingDown
	stateStopped
)

func (s pumpState) String() string {
	switch s {
	case stateCreated:
		return "Created"
	case stateRunning:
		return "Running"
	case stateShuttingDown:
		return "ShuttingDown"
	case stateStopped:
		return "Stopped"
	default:
		panic("invalid pumpState")
	}
}

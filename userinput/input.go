// This file is part of Mact.
//
// Mact is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Mact is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Mact.  If not, see <https://www.gnu.org/licenses/>.


package userinput

import (
	"github.com/jetsetilly/mact/control"
	"github.com/jetsetilly/mact/logger"
)

// the four hat directions follow the last button and the control package
// reads at most MaxJoyButtons bits. buttons past the limit are ignored
const maxButtons = control.MaxJoyButtons - 4

// Input implements the control.Source interface on top of a Platform.
type Input struct {
	plt Platform
	joy Joystick

	// Quit is set when an EventQuit has been seen by PollEvents()
	Quit bool

	keyDown    [control.NumScancodes]bool
	keyPressed [control.NumScancodes]bool

	mousePresent bool
	mouseButtons uint32
	mouseCleared uint32
	mouseWheel   uint32
	mouseDX      int32
	mouseDY      int32

	// joystick values sampled once per frame
	numAxes     int
	numButtons  int
	numHats     int
	axes        []int32
	joyButtons  uint64
	ctrlButtons uint32

	devicesChanged bool
}

// NewInput is the preferred method of initialisation for the Input type.
func NewInput(plt Platform) *Input {
	return &Input{
		plt:  plt,
		axes: make([]int32, 0, control.MaxJoyAxes),
	}
}

// Startup implements the control.Source interface.
func (in *Input) Startup() error {
	if err := in.plt.Startup(); err != nil {
		return err
	}
	in.mousePresent = in.plt.MousePresent()
	in.ScanDevices()
	return nil
}

// Shutdown implements the control.Source interface.
func (in *Input) Shutdown() {
	in.closeJoystick()
	in.plt.Shutdown()
}

func (in *Input) closeJoystick() {
	if in.joy != nil {
		in.joy.Close()
		in.joy = nil
	}
	in.numAxes = 0
	in.numButtons = 0
	in.numHats = 0
	in.axes = in.axes[:0]
	in.joyButtons = 0
	in.ctrlButtons = 0
}

// ScanDevices implements the control.Source interface.
func (in *Input) ScanDevices() {
	in.closeJoystick()

	in.joy = in.plt.OpenJoystick()
	if in.joy == nil {
		logger.Log(logger.Allow, "userinput", "no joystick")
		return
	}

	in.numAxes = min(in.joy.NumAxes(), control.MaxJoyAxes)
	in.numButtons = min(in.joy.NumButtons(), maxButtons)
	in.numHats = in.joy.NumHats()

	if in.joy.IsGameController() {
		logger.Logf(logger.Allow, "userinput", "game controller: %s", in.joy.Name())
	} else {
		logger.Logf(logger.Allow, "userinput", "joystick: %s", in.joy.Name())
	}
}

// PollEvents implements the control.Source interface.
func (in *Input) PollEvents() {
	clear(in.keyPressed[:])
	in.mouseWheel = 0
	in.mouseDX = 0
	in.mouseDY = 0

	in.plt.Service(in.HandleEvent)
	in.sampleJoystick()
}

// DevicesChanged returns true if a joystick has been connected or
// disconnected since the previous call to DevicesChanged(). The joystick in
// use does not change until ScanDevices() is called, normally through
// control.ScanForControllers().
func (in *Input) DevicesChanged() bool {
	c := in.devicesChanged
	in.devicesChanged = false
	return c
}

// HandleEvent updates the input state with the event. It is called by
// PollEvents() for every event in the platform queue.
func (in *Input) HandleEvent(ev Event) {
	switch ev := ev.(type) {
	case EventQuit:
		in.Quit = true

	case EventKeyboard:
		sc := TranslateHID(ev.Key)
		if sc == control.ScNone {
			return
		}

		// a repeat event reasserts the key. the key may have been cleared
		// with ClearKeyDown() since the original press
		if ev.Down {
			in.keyDown[sc] = true
			in.keyPressed[sc] = true
		} else {
			in.keyDown[sc] = false
		}

	case EventMouseButton:
		mask := ev.Button.mask()
		if ev.Down {
			in.mouseButtons |= mask
			in.mouseCleared &^= mask
		} else {
			in.mouseButtons &^= mask
		}

	case EventMouseWheel:
		var mask uint32
		switch {
		case ev.Delta > 0:
			mask = control.MouseWheelUp
		case ev.Delta < 0:
			mask = control.MouseWheelDown
		}
		in.mouseWheel |= mask
		in.mouseCleared &^= mask

	case EventMouseMotion:
		in.mouseDX += ev.X
		in.mouseDY += ev.Y

	case EventDevice:
		in.devicesChanged = true

	default:
		logger.Logf(logger.Allow, "userinput", "unhandled event type: %T", ev)
	}
}

// clampAxis keeps the axis value in the range expected by the control
// package. The most negative value of a signed 16 bit value is one further
// from zero than the most positive.
func clampAxis(v int16) int32 {
	return max(int32(v), -control.MaxScaledControlValue)
}

func (in *Input) sampleJoystick() {
	if in.joy == nil {
		return
	}

	in.axes = in.axes[:0]
	for i := range in.numAxes {
		in.axes = append(in.axes, clampAxis(in.joy.Axis(i)))
	}

	in.joyButtons = 0
	for i := range in.numButtons {
		if in.joy.Button(i) {
			in.joyButtons |= 1 << i
		}
	}
	if in.numHats > 0 {
		in.joyButtons |= uint64(in.joy.Hat(0)&0x0f) << in.numButtons
	}

	in.ctrlButtons = 0
	if in.joy.IsGameController() {
		for b := range control.NumControllerButtons {
			if in.joy.ControllerButton(b) {
				in.ctrlButtons |= 1 << b
			}
		}
	}
}

// MousePresent implements the control.Source interface.
func (in *Input) MousePresent() bool {
	return in.mousePresent
}

// MouseButtons implements the control.Source interface.
func (in *Input) MouseButtons() uint32 {
	return (in.mouseButtons | in.mouseWheel) &^ in.mouseCleared
}

// MouseDelta implements the control.Source interface.
func (in *Input) MouseDelta() (int32, int32) {
	return in.mouseDX, in.mouseDY
}

// ClearMouseButton implements the control.Source interface.
func (in *Input) ClearMouseButton(mask uint32) {
	in.mouseCleared |= mask
}

// JoystickPresent implements the control.Source interface.
func (in *Input) JoystickPresent() bool {
	return in.joy != nil
}

// JoystickLayout implements the control.Source interface.
func (in *Input) JoystickLayout() (int, int, int) {
	return in.numAxes, in.numButtons, in.numHats
}

// JoystickAxes implements the control.Source interface.
func (in *Input) JoystickAxes() []int32 {
	return in.axes
}

// JoystickButtons implements the control.Source interface.
func (in *Input) JoystickButtons() uint64 {
	return in.joyButtons
}

// ControllerButtons implements the control.Source interface.
func (in *Input) ControllerButtons() uint32 {
	return in.ctrlButtons
}

// IsGameController implements the control.Source interface.
func (in *Input) IsGameController() bool {
	return in.joy != nil && in.joy.IsGameController()
}

// KeyDown implements the control.Source interface.
func (in *Input) KeyDown(sc control.Scancode) bool {
	return in.keyDown[sc]
}

// KeyPressed implements the control.Source interface.
func (in *Input) KeyPressed(sc control.Scancode) bool {
	return in.keyPressed[sc]
}

// ClearKeyDown implements the control.Source interface.
func (in *Input) ClearKeyDown(sc control.Scancode) {
	in.keyDown[sc] = false
}

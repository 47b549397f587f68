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

package control

// Function is the identifier of a logical function. Valid functions are in
// the range 0 to NumFunctions-1.
type Function int

// NumFunctions is the number of logical functions that can be defined.
const NumFunctions = 64

func (fn Function) valid() bool {
	return fn >= 0 && fn < NumFunctions
}

// ToggleMode specifies how the active state of a function follows the state
// of its inputs.
type ToggleMode int

// List of valid ToggleMode values.
const (
	// InstantOnOff functions are active for as long as an input is pressed.
	InstantOnOff ToggleMode = iota

	// Toggle functions flip their active state once for every press of an
	// input, regardless of how long the input is held.
	Toggle
)

func (m ToggleMode) String() string {
	switch m {
	case InstantOnOff:
		return "instant"
	case Toggle:
		return "toggle"
	}
	return "unknown"
}

// Device identifies a class of input device.
type Device int

// List of valid Device values.
const (
	DeviceKeyboard Device = iota
	DeviceMouse
	DeviceJoystick
)

func (d Device) String() string {
	switch d {
	case DeviceKeyboard:
		return "keyboard"
	case DeviceMouse:
		return "mouse"
	case DeviceJoystick:
		return "joystick"
	}
	return "unknown"
}

// AnalogFunction is the component of the motion intent that an analog axis
// contributes to.
type AnalogFunction int

// List of valid AnalogFunction values.
const (
	AnalogNone AnalogFunction = iota - 1
	AnalogTurning
	AnalogStrafing
	AnalogLookingUpAndDown
	AnalogElevation
	AnalogRolling
	AnalogMoving

	numAnalogFunctions
)

func (a AnalogFunction) String() string {
	switch a {
	case AnalogNone:
		return "none"
	case AnalogTurning:
		return "turning"
	case AnalogStrafing:
		return "strafing"
	case AnalogLookingUpAndDown:
		return "looking"
	case AnalogElevation:
		return "elevation"
	case AnalogRolling:
		return "rolling"
	case AnalogMoving:
		return "moving"
	}
	return "unknown"
}

// AxisDirection is used when mapping the digital reading of an axis to a
// function. Up and left are the negative direction of an axis, down and right
// the positive direction.
type AxisDirection int

// List of valid AxisDirection values.
const (
	AxisUp AxisDirection = iota
	AxisRight
	AxisDown
	AxisLeft
)

// Info is the motion intent for a single frame.
type Info struct {
	DX     int32
	DY     int32
	DZ     int32
	DYaw   int32
	DPitch int32
	DRoll  int32

	MouseX int32
	MouseY int32
}

// LastSeen indicates the class of device that most recently produced
// meaningful input.
type LastSeen int

// List of valid LastSeen values.
const (
	LastSeenKeyboard LastSeen = iota
	LastSeenJoystick
)

func (l LastSeen) String() string {
	if l == LastSeenJoystick {
		return "joystick"
	}
	return "keyboard"
}

// Direction of the simplified menu input.
type Direction int

// List of valid Direction values.
const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "none"
}

// UserInput is the simplified snapshot of the input devices used by menus.
type UserInput struct {
	Dir     Direction
	Advance bool
	Return  bool
	Escape  bool
}

// optFunction is a reference to a function that may be unset.
type optFunction struct {
	fn Function
	ok bool
}

func someFunction(fn Function) optFunction {
	if !fn.valid() {
		return optFunction{}
	}
	return optFunction{fn: fn, ok: true}
}

// optKey is a reference to a key that may be unset.
type optKey struct {
	sc Scancode
	ok bool
}

func someKey(sc Scancode) optKey {
	if sc == 0 {
		return optKey{}
	}
	return optKey{sc: sc, ok: true}
}

// device maxima.
const (
	MaxMouseButtons = 10

	// thirty two buttons and the four directions of the first hat.
	MaxJoyButtons = 36

	MaxJoyAxes = 9

	// number of mouse axes with a sensitivity setting.
	numMouseAxes = 2
)

// conditioning constants.
const (
	MaxScaledControlValue   = 32767
	DigitalAxisThreshold    = 16384
	MinDigitalAxisThreshold = 8192

	JoySensitivityMultiplier   = 1.0
	MouseSensitivityMultiplier = 1.0

	DefaultMouseSensitivity = 7.0
	DefaultAxisSensitivity  = 1.0

	DefaultAxisDeadzone   = 1000
	DefaultAxisSaturation = 9500
)

// menu repeat delays in milliseconds.
const (
	userInputDelay     = 500
	userInputFastDelay = 60
)

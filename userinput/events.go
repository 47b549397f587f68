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

import "github.com/jetsetilly/mact/control"

// Event represents all the different type of events that can occur in the
// platform event queue.
type Event interface{}

// EventQuit is sent when the platform wants the application to end.
type EventQuit struct{}

// EventKeyboard is the event for a key press, key repeat or key release. The
// Key field is a USB HID keyboard usage code.
type EventKeyboard struct {
	Key    int
	Down   bool
	Repeat bool
}

// MouseButton identifies a mouse button in EventMouseButton.
type MouseButton int

// List of valid MouseButton values.
const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonThumb
)

func (b MouseButton) mask() uint32 {
	switch b {
	case MouseButtonLeft:
		return control.MouseLeftButton
	case MouseButtonRight:
		return control.MouseRightButton
	case MouseButtonMiddle:
		return control.MouseMiddleButton
	case MouseButtonThumb:
		return control.MouseThumbButton
	}
	return 0
}

// EventMouseButton is the event for a press or release of a mouse button.
type EventMouseButton struct {
	Button MouseButton
	Down   bool
}

// EventMouseMotion is relative mouse motion, in mickeys.
type EventMouseMotion struct {
	X int32
	Y int32
}

// EventMouseWheel is sent when the mouse wheel has moved. A positive delta is
// away from the user.
type EventMouseWheel struct {
	Delta int32
}

// EventDevice is sent when a joystick has been connected or disconnected.
type EventDevice struct {
	Added bool
}

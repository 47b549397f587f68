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

// Source is the provider of raw input samples. All functions must return
// without blocking. The values returned by the sampling functions must not
// change between calls to PollEvents().
type Source interface {
	// Startup prepares the devices. Called once by Control.Startup().
	Startup() error

	// Shutdown releases the devices.
	Shutdown()

	// ScanDevices looks for new or removed joysticks.
	ScanDevices()

	// PollEvents drains the platform event queue. Called once per frame
	// before any device is sampled.
	PollEvents()

	MousePresent() bool

	// MouseButtons returns the mask of mouse buttons currently down. Bit
	// zero is the left button.
	MouseButtons() uint32

	// MouseDelta returns the relative motion of the mouse since the
	// previous call to PollEvents().
	MouseDelta() (int32, int32)

	// ClearMouseButton masks the buttons in the mask from MouseButtons()
	// until they are next pressed.
	ClearMouseButton(mask uint32)

	JoystickPresent() bool

	// JoystickLayout returns the number of axes, buttons and hats of the
	// current joystick.
	JoystickLayout() (axes int, buttons int, hats int)

	// JoystickAxes returns the current value of every axis, in the range
	// -32767 to 32767.
	JoystickAxes() []int32

	// JoystickButtons returns the mask of joystick buttons currently down.
	// If the joystick has a hat, the four directions of the first hat follow
	// the last button, in the order up, right, down, left.
	JoystickButtons() uint64

	// ControllerButtons returns the mask of game controller buttons
	// currently down. See the ControllerButton constants for bit positions.
	ControllerButtons() uint32

	// IsGameController is true if the joystick has a game controller
	// mapping, meaning that the layout of the axes and buttons is known.
	IsGameController() bool

	// KeyDown returns the state of the key in the key down table. The entry
	// is set by a press or by the typematic repeat of the platform and is
	// unset by a release or by ClearKeyDown().
	KeyDown(sc Scancode) bool

	// KeyPressed returns true if a press or repeat of the key was seen by
	// the most recent call to PollEvents(). Unlike KeyDown() a press that
	// is released before the end of the frame is still reported.
	KeyPressed(sc Scancode) bool

	// ClearKeyDown unsets the entry for the key in the key down table.
	ClearKeyDown(sc Scancode)
}

// Dispatcher runs the command strings bound to keys and mouse buttons.
type Dispatcher interface {
	Dispatch(cmd string) error
}

// Timer returns the current time in tics. The value must never decrease.
type Timer func() int32

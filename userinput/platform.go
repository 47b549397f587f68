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

// Platform is the owner of the input hardware.
type Platform interface {
	// Startup and Shutdown of the input subsystems of the platform.
	Startup() error
	Shutdown()

	// Service drains the platform event queue, calling push for every event
	// that is of interest to the userinput package. Must not block.
	Service(push func(Event))

	// MousePresent returns true if the platform has a mouse that can be put
	// into relative motion mode.
	MousePresent() bool

	// OpenJoystick opens the first available joystick. Returns nil if there
	// is no joystick attached.
	OpenJoystick() Joystick
}

// Joystick is an open joystick or game controller.
type Joystick interface {
	Name() string

	NumAxes() int
	NumButtons() int
	NumHats() int

	// Axis returns the raw value of the axis. If the device is a game
	// controller the axes are in the order of the ControllerAxis constants in
	// the control package.
	Axis(i int) int16

	Button(i int) bool

	// Hat returns the value of the hat as a mask of directions: up is bit
	// zero, followed by right, down and left.
	Hat(i int) uint8

	IsGameController() bool

	// ControllerButton returns the state of the game controller button. The
	// argument is one of the ControllerButton constants in the control
	// package. Always returns false if the device is not a game controller.
	ControllerButton(b int) bool

	Close()
}

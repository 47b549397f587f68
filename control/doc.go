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

// Package control turns the raw per-frame state of the keyboard, mouse and
// joystick into the model used by the game: logical functions, motion intent
// and the simplified direction and button snapshot used by menus.
//
// The Control type owns all state. It is created with NewControl() and a
// Source, which provides raw device samples, and a Dispatcher, which receives
// the command strings bound to keys and mouse buttons. Startup() must be
// called before the first frame:
//
//	c := control.NewControl(src, console)
//	err := c.Startup(nil, 120)
//
// Logical functions are defined and then mapped to keys and device inputs:
//
//	c.DefineFunction(fnFire, control.InstantOnOff)
//	c.MapKey(fnFire, control.ScLeftControl, control.ScRightControl)
//	c.MapButton(fnFire, 0, false, control.DeviceMouse)
//
// Once per frame the host game loop calls GetInput(), which polls the devices
// and resolves the set of active functions, and ProcessBinds(), which
// dispatches bound commands. The state of a function is then queried with
// ButtonPressed() and friends.
//
// Menus use UserInput() and ClearUserInput() instead. These provide a typematic
// repeat for joystick directions and latch buttons until they are released.
//
// Control is not safe for concurrent use. All methods should be called from
// the same goroutine as the one that called Startup(). The ThreadCheck field
// can be set to log any calls from other goroutines.
//
// Out of range arguments to any function are ignored. Control never returns an
// error during a frame.
package control

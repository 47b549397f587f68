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


package main

import (
	"strings"

	"github.com/jetsetilly/mact/control"
)

// the logical functions of the demonstration game
const (
	fnForward control.Function = iota
	fnBackward
	fnTurnLeft
	fnTurnRight
	fnStrafeLeft
	fnStrafeRight
	fnFire
	fnUse
	fnJump
	fnRun
	fnAutomap

	numGameFunctions
)

var functionNames = [numGameFunctions]string{
	"forward", "backward", "turnleft", "turnright", "strafeleft",
	"straferight", "fire", "use", "jump", "run", "automap",
}

// defineFunctions registers the game functions and gives them a default
// mapping. Must be called after control.Startup().
func defineFunctions(c *control.Control) {
	for fn := range numGameFunctions {
		mode := control.InstantOnOff
		if fn == fnRun || fn == fnAutomap {
			mode = control.Toggle
		}
		c.DefineFunction(fn, mode)
	}

	c.MapKey(fnForward, control.ScW, control.ScUpArrow)
	c.MapKey(fnBackward, control.ScS, control.ScDownArrow)
	c.MapKey(fnTurnLeft, control.ScLeftArrow, control.ScNone)
	c.MapKey(fnTurnRight, control.ScRightArrow, control.ScNone)
	c.MapKey(fnStrafeLeft, control.ScA, control.ScNone)
	c.MapKey(fnStrafeRight, control.ScD, control.ScNone)
	c.MapKey(fnFire, control.ScLeftControl, control.ScRightControl)
	c.MapKey(fnUse, control.ScE, control.ScSpace)
	c.MapKey(fnJump, control.ScSpace, control.ScNone)
	c.MapKey(fnRun, control.ScCapsLock, control.ScNone)
	c.MapKey(fnAutomap, control.ScTab, control.ScNone)

	c.MapButton(fnFire, 0, false, control.DeviceMouse)
	c.MapButton(fnUse, 1, false, control.DeviceMouse)
	c.MapButton(fnJump, 1, true, control.DeviceMouse)

	c.MapButton(fnFire, 0, false, control.DeviceJoystick)
	c.MapButton(fnUse, 1, false, control.DeviceJoystick)
	c.MapButton(fnJump, 2, false, control.DeviceJoystick)
	c.MapButton(fnAutomap, 3, false, control.DeviceJoystick)

	c.MapAnalogAxis(control.ControllerAxisLeftX, control.AnalogStrafing, control.DeviceJoystick)
	c.MapAnalogAxis(control.ControllerAxisLeftY, control.AnalogMoving, control.DeviceJoystick)
	c.MapAnalogAxis(control.ControllerAxisRightX, control.AnalogTurning, control.DeviceJoystick)
	c.MapAnalogAxis(control.ControllerAxisRightY, control.AnalogLookingUpAndDown, control.DeviceJoystick)
	c.MapDigitalAxis(control.ControllerAxisTriggerRight, fnFire, control.AxisDown, control.DeviceJoystick)

	c.BindKey(control.ScF1, "help", false, "f1")
	c.BindKey(control.ScF10, "quit", false, "f10")
}

// describeMask returns the names of the functions in the mask.
func describeMask(mask uint64) string {
	var s []string
	for fn := range numGameFunctions {
		if mask&(1<<fn) != 0 {
			s = append(s, functionNames[fn])
		}
	}
	if len(s) == 0 {
		return "-"
	}
	return strings.Join(s, " ")
}

// describeChange returns the functions that have become active and inactive
// between the two masks.
func describeChange(prev uint64, curr uint64) string {
	var s []string
	for fn := range numGameFunctions {
		bit := uint64(1) << fn
		switch {
		case curr&bit != 0 && prev&bit == 0:
			s = append(s, "+"+functionNames[fn])
		case curr&bit == 0 && prev&bit != 0:
			s = append(s, "-"+functionNames[fn])
		}
	}
	return strings.Join(s, " ")
}

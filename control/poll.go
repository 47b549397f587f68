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

import (
	"math"
)

// GetInput polls the devices and resolves the state of every function for the
// frame. The motion intent for the frame is written to info, which must not
// be nil.
func (c *Control) GetInput(info *Info) {
	c.checkThread("GetInput")
	c.pollDevices(info)
	c.getFunctionInput()
}

func (c *Control) pollDevices(info *Info) {
	*info = Info{}

	c.src.PollEvents()

	if c.mouseEnabled {
		c.getMouseDelta(info)
	}

	if c.joystickEnabled {
		c.lastJoyAxes = c.joyAxes
		c.joyAxes = [MaxJoyAxes]axisState{}

		raw := c.src.JoystickAxes()
		isGameController := c.src.IsGameController()

		for axis := min(len(raw), MaxJoyAxes) - 1; axis >= 0; axis-- {
			c.joyAxes[axis].analog = c.conditionAxis(axis, raw, isGameController)

			if c.digitizeAxis(axis) {
				c.lastSeen = LastSeenJoystick
			}

			c.scaleAxis(axis)
			c.applyAxis(axis, info)
		}
	}

	c.getDeviceButtons()
}

func clampScaled(v float64) int32 {
	return int32(math.RoundToEven(max(-MaxScaledControlValue, min(MaxScaledControlValue, v))))
}

func (c *Control) getMouseDelta(info *Info) {
	x, y := c.src.MouseDelta()

	fx := float64(x) * float64(c.mouseSensitivity) * float64(c.mouseAxesSensitivity[0]) * MouseSensitivityMultiplier
	fy := float64(y) * float64(c.mouseSensitivity) * float64(c.mouseAxesSensitivity[1]) * MouseSensitivityMultiplier

	info.MouseX = clampScaled(fx)
	info.MouseY = clampScaled(fy)
}

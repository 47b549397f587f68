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

	"github.com/jetsetilly/mact/logger"
)

// the maximum value of the saturation/deadzone scale
const scaled10kMax = 10000

type axisState struct {
	analog  int32
	digital int32

	// digitalCleared suppresses the digital reading returned by
	// ControllerDigitalAxis() until the axis is released
	digitalCleared bool
}

type axisMapping struct {
	analog AnalogFunction

	// functions for the negative and positive digital directions
	min optFunction
	max optFunction
}

func sign(v int32) int32 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// scaled10k converts the magnitude of a raw axis value to the range 0 to 10000.
func scaled10k(raw int32) int32 {
	v := int64(raw)
	if v < 0 {
		v = -v
	}
	return int32(min(scaled10kMax, (v*scaled10kMax+MaxScaledControlValue/2)/MaxScaledControlValue))
}

// stickScaled10k is the distance of a stick from its centre in the range 0 to
// 10000.
func stickScaled10k(x, y int32) int32 {
	d := math.Sqrt(float64(x)*float64(x) + float64(y)*float64(y))
	return scaled10k(int32(min(d, math.MaxInt32)))
}

// pairedAxis returns true if the axis is one of the axes of a stick. The left
// stick is always a stick. The right stick is only known to be a stick if the
// device is a game controller.
func pairedAxis(axis int, isGameController bool) bool {
	return axis <= ControllerAxisLeftY || (isGameController && axis <= ControllerAxisRightY)
}

// conditionAxis applies the saturation and deadzone of the axis to the raw
// value.
func (c *Control) conditionAxis(axis int, raw []int32, isGameController bool) int32 {
	input := raw[axis]
	scaled := scaled10k(input)
	saturation := int32(c.joySaturation[axis])
	deadzone := int32(c.joyDeadzone[axis])

	if scaled >= saturation {
		logger.Logf(c.spam, "control", "controller axis %d saturated", axis)
		return MaxScaledControlValue * sign(input)
	}

	// the deadzone of a stick is circular
	if pairedAxis(axis, isGameController) {
		var x, y int32
		x = raw[axis&^1]
		if axis|1 < len(raw) {
			y = raw[axis|1]
		}
		scaled = stickScaled10k(x, y)
	}

	if scaled < deadzone {
		return 0
	}

	analog := int32(int64(input) * int64(scaled-deadzone) / int64(saturation))
	logger.Logf(c.spam, "control", "controller axis %d input %d scaled %d output %d", axis, input, scaled, analog)

	return analog
}

// digitizeAxis sets the digital reading of the axis. The reading is only set
// when the analog value passes DigitalAxisThreshold but once set it remains
// set until the value drops below MinDigitalAxisThreshold.
//
// Returns true if the analog value is not zero.
func (c *Control) digitizeAxis(axis int) bool {
	cur := &c.joyAxes[axis]
	last := c.lastJoyAxes[axis]

	cur.digitalCleared = last.digitalCleared

	switch {
	case cur.analog > 0:
		if cur.analog > DigitalAxisThreshold || (cur.analog > MinDigitalAxisThreshold && last.digital == 1) {
			cur.digital = 1
		} else {
			cur.digitalCleared = false
		}
		return true

	case cur.analog < 0:
		if cur.analog < -DigitalAxisThreshold || (cur.analog < -MinDigitalAxisThreshold && last.digital == -1) {
			cur.digital = -1
		} else {
			cur.digitalCleared = false
		}
		return true
	}

	cur.digitalCleared = false
	return false
}

// scaleAxis applies the sensitivity and inversion of the axis.
func (c *Control) scaleAxis(axis int) {
	cur := &c.joyAxes[axis]

	cur.analog = clampScaled(float64(cur.analog) * float64(c.joyAxesSensitivity[axis]) * JoySensitivityMultiplier)

	if c.joyAxesInvert[axis] {
		cur.analog = -cur.analog
	}
}

// applyAxis adds the analog value of the axis to the motion intent.
func (c *Control) applyAxis(axis int, info *Info) {
	v := c.joyAxes[axis].analog

	switch c.joyAxesMap[axis].analog {
	case AnalogTurning:
		info.DYaw += v
	case AnalogStrafing:
		info.DX += v
	case AnalogLookingUpAndDown:
		info.DPitch += v
	case AnalogElevation:
		info.DY += v
	case AnalogRolling:
		info.DRoll += v
	case AnalogMoving:
		info.DZ += v
	}
}

// axisFunctionState sets the function for the direction of every axis with a
// digital reading.
func (c *Control) axisFunctionState() bool {
	var active bool

	for axis := c.numJoyAxes - 1; axis >= 0; axis-- {
		digital := c.joyAxes[axis].digital
		if digital == 0 {
			continue
		}

		fn := c.joyAxesMap[axis].max
		if digital < 0 {
			fn = c.joyAxesMap[axis].min
		}

		if fn.ok {
			c.buttonFlags[fn.fn] = true
			active = true
		}
	}

	return active
}

// ControllerDigitalAxis returns the digital reading of the axis, bypassing the
// function mapping. Always returns zero if the device is not a game
// controller or if the axis has been cleared with ClearControllerDigitalAxis()
// and not yet released.
func (c *Control) ControllerDigitalAxis(axis int) int {
	if axis < 0 || axis >= MaxJoyAxes || !c.src.IsGameController() {
		return 0
	}

	a := c.joyAxes[axis]
	if a.digitalCleared || a.digital == 0 {
		return 0
	}
	return int(sign(a.digital))
}

// ClearControllerDigitalAxis suppresses the digital reading of the axis until
// the axis is released.
func (c *Control) ClearControllerDigitalAxis(axis int) {
	if axis < 0 || axis >= MaxJoyAxes || !c.src.IsGameController() {
		return
	}
	c.joyAxes[axis].digitalCleared = true
}

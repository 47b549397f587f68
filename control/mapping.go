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

// MapButton maps the single or double click of a device button to the
// function. A function outside the valid range unmaps the button.
func (c *Control) MapButton(fn Function, button int, doubleClicked bool, dev Device) {
	c.mapButton(someFunction(fn), button, doubleClicked, dev)
}

// UnmapButton removes the function from the single or double click of a
// device button.
func (c *Control) UnmapButton(button int, doubleClicked bool, dev Device) {
	c.mapButton(optFunction{}, button, doubleClicked, dev)
}

func (c *Control) mapButton(fn optFunction, button int, doubleClicked bool, dev Device) {
	set := c.buttonSetForDevice(dev)
	if set == nil || !set.valid(button) {
		return
	}

	if doubleClicked {
		set.mapping[button].double = fn
	} else {
		set.mapping[button].single = fn
	}
}

// MapAnalogAxis sets the component of the motion intent that the joystick
// axis contributes to.
func (c *Control) MapAnalogAxis(axis int, analog AnalogFunction, dev Device) {
	if analog < AnalogNone || analog >= numAnalogFunctions {
		return
	}
	if dev != DeviceJoystick || axis < 0 || axis >= MaxJoyAxes {
		return
	}
	c.joyAxesMap[axis].analog = analog
}

// MapDigitalAxis maps a direction of the joystick axis to the function. Up
// and left are the negative direction of the axis, down and right the positive
// direction. A function outside the valid range unmaps the direction.
func (c *Control) MapDigitalAxis(axis int, fn Function, dir AxisDirection, dev Device) {
	c.mapDigitalAxis(axis, someFunction(fn), dir, dev)
}

// UnmapDigitalAxis removes the function from a direction of the joystick axis.
func (c *Control) UnmapDigitalAxis(axis int, dir AxisDirection, dev Device) {
	c.mapDigitalAxis(axis, optFunction{}, dir, dev)
}

func (c *Control) mapDigitalAxis(axis int, fn optFunction, dir AxisDirection, dev Device) {
	if dev != DeviceJoystick || axis < 0 || axis >= MaxJoyAxes {
		return
	}

	switch dir {
	case AxisUp, AxisLeft:
		c.joyAxesMap[axis].min = fn
	case AxisDown, AxisRight:
		c.joyAxesMap[axis].max = fn
	}
}

// SetAnalogAxisScale sets the sensitivity of the axis as an integer scale
// where 8192 is a sensitivity of one.
func (c *Control) SetAnalogAxisScale(axis int, scale int32, dev Device) {
	c.SetAnalogAxisSensitivity(axis, float32(scale)/8192.0, dev)
}

// SetAnalogAxisSensitivity sets the sensitivity of a mouse or joystick axis.
func (c *Control) SetAnalogAxisSensitivity(axis int, sensitivity float32, dev Device) {
	switch dev {
	case DeviceMouse:
		if axis < 0 || axis >= numMouseAxes {
			return
		}
		c.mouseAxesSensitivity[axis] = sensitivity
	case DeviceJoystick:
		if axis < 0 || axis >= MaxJoyAxes {
			return
		}
		c.joyAxesSensitivity[axis] = sensitivity
	}
}

// AnalogAxisSensitivity returns the sensitivity of a mouse or joystick axis.
func (c *Control) AnalogAxisSensitivity(axis int, dev Device) float32 {
	switch dev {
	case DeviceMouse:
		if axis >= 0 && axis < numMouseAxes {
			return c.mouseAxesSensitivity[axis]
		}
	case DeviceJoystick:
		if axis >= 0 && axis < MaxJoyAxes {
			return c.joyAxesSensitivity[axis]
		}
	}
	return 0
}

// SetAnalogAxisInvert sets whether the joystick axis is inverted.
func (c *Control) SetAnalogAxisInvert(axis int, invert bool, dev Device) {
	if dev != DeviceJoystick || axis < 0 || axis >= MaxJoyAxes {
		return
	}
	c.joyAxesInvert[axis] = invert
}

// SetJoystickDeadzone sets the deadzone and saturation of the joystick axis.
// Both values are in the range 0 to 10000.
func (c *Control) SetJoystickDeadzone(axis int, deadzone uint16, saturation uint16) {
	if axis < 0 || axis >= MaxJoyAxes {
		return
	}
	c.joyDeadzone[axis] = deadzone
	c.joySaturation[axis] = saturation
}

// JoystickDeadzone returns the deadzone and saturation of the joystick axis.
func (c *Control) JoystickDeadzone(axis int) (uint16, uint16) {
	if axis < 0 || axis >= MaxJoyAxes {
		return 0, 0
	}
	return c.joyDeadzone[axis], c.joySaturation[axis]
}

// SetMouseSensitivity sets the overall sensitivity of the mouse.
func (c *Control) SetMouseSensitivity(sensitivity float32) {
	c.mouseSensitivity = sensitivity
}

// MouseSensitivity returns the overall sensitivity of the mouse.
func (c *Control) MouseSensitivity() float32 {
	return c.mouseSensitivity
}

// ClearAssignments unmaps every key, button and axis and resets the axis
// sensitivities and inversions. Deadzones are not changed.
func (c *Control) ClearAssignments() {
	c.joyAxes = [MaxJoyAxes]axisState{}
	c.lastJoyAxes = [MaxJoyAxes]axisState{}
	c.joyAxesInvert = [MaxJoyAxes]bool{}

	for i := range c.joyAxesMap {
		c.joyAxesMap[i] = axisMapping{analog: AnalogNone}
	}

	c.keyMapping = [NumFunctions]keyMapping{}
	c.mouse.clearMapping()
	c.joystick.clearMapping()

	for i := range c.mouseAxesSensitivity {
		c.mouseAxesSensitivity[i] = DefaultAxisSensitivity
	}
	for i := range c.joyAxesSensitivity {
		c.joyAxesSensitivity[i] = DefaultAxisSensitivity
	}
}

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

// menuDirection returns the direction of the left stick or the dpad. The stick
// must be at saturation to count.
func (c *Control) menuDirection(ctrl uint32) Direction {
	if !c.joystickEnabled {
		return DirNone
	}

	scaled := func(axis int) int32 {
		return c.joyAxes[axis].analog * scaled10kMax / MaxScaledControlValue
	}
	saturation := func(axis int) int32 {
		return int32(c.joySaturation[axis])
	}
	dpad := func(button int) bool {
		return ctrl&(1<<button) != 0
	}

	lx := c.joyAxes[ControllerAxisLeftX].digital
	ly := c.joyAxes[ControllerAxisLeftY].digital

	switch {
	case (ly == -1 && scaled(ControllerAxisLeftY) <= -saturation(ControllerAxisLeftY)) || dpad(ControllerButtonDpadUp):
		return DirUp
	case (ly == 1 && scaled(ControllerAxisLeftY) >= saturation(ControllerAxisLeftY)) || dpad(ControllerButtonDpadDown):
		return DirDown
	case (lx == -1 && scaled(ControllerAxisLeftX) <= -saturation(ControllerAxisLeftX)) || dpad(ControllerButtonDpadLeft):
		return DirLeft
	case (lx == 1 && scaled(ControllerAxisLeftX) >= saturation(ControllerAxisLeftX)) || dpad(ControllerButtonDpadRight):
		return DirRight
	}

	return DirNone
}

// UserInput returns the simplified snapshot of the input devices used by
// menus. If the argument is nil an internal UserInput instance is used and
// returned.
//
// A joystick direction that has been consumed with ClearUserInput() is
// repeated after a short delay if it is held. A button that has been consumed
// is not reported again until it is released.
func (c *Control) UserInput(in *UserInput) *UserInput {
	c.checkThread("UserInput")

	if in == nil {
		in = &c.userInput
	}

	var ctrl, mouse uint32
	if c.joystickEnabled {
		ctrl = c.src.ControllerButtons()
	}
	if c.mouseEnabled {
		mouse = c.src.MouseButtons()
	}

	newdir := c.menuDirection(ctrl)

	// releasing the direction removes the repeat delay so that the dpad can
	// be pressed as quickly as the user likes
	if newdir == DirNone {
		c.userInputDelay = -1
		c.lastUserInputDirection = DirNone
	}

	if c.time() >= c.userInputDelay {
		in.Dir = newdir
	} else {
		in.Dir = DirNone
	}

	// keyboard direction keys take priority and rely on the typematic repeat
	// of the platform
	switch {
	case c.src.KeyDown(ScKpad8) || c.src.KeyDown(ScUpArrow):
		in.Dir = DirUp
	case c.src.KeyDown(ScKpad2) || c.src.KeyDown(ScDownArrow):
		in.Dir = DirDown
	case c.src.KeyDown(ScKpad4) || c.src.KeyDown(ScLeftArrow):
		in.Dir = DirLeft
	case c.src.KeyDown(ScKpad6) || c.src.KeyDown(ScRightArrow):
		in.Dir = DirRight
	}

	in.Advance = c.src.KeyDown(ScEnter) || c.src.KeyDown(ScKpadEnter) ||
		mouse&MouseLeftButton != 0 || ctrl&(1<<ControllerButtonA) != 0
	in.Return = c.src.KeyDown(ScEscape) ||
		mouse&MouseRightButton != 0 || ctrl&(1<<ControllerButtonB) != 0
	in.Escape = c.src.KeyDown(ScEscape) || ctrl&(1<<ControllerButtonStart) != 0

	latch(&c.advanceCleared, &in.Advance)
	latch(&c.returnCleared, &in.Return)
	latch(&c.escapeCleared, &in.Escape)

	return in
}

// latch suppresses the value while the cleared flag is set. The flag is unset
// once the value is seen to be false.
func latch(cleared *bool, v *bool) {
	if !*cleared {
		return
	}
	if *v {
		*v = false
	} else {
		*cleared = false
	}
}

// ClearUserInput consumes the input in the UserInput instance. If the argument
// is nil the internal UserInput instance is used.
func (c *Control) ClearUserInput(in *UserInput) {
	if in == nil {
		in = &c.userInput
	}

	for _, sc := range []Scancode{
		ScUpArrow, ScKpad8,
		ScDownArrow, ScKpad2,
		ScLeftArrow, ScKpad4,
		ScRightArrow, ScKpad6,
	} {
		c.src.ClearKeyDown(sc)
	}

	if in.Dir != DirNone {
		clk := c.time()

		if c.lastUserInputDirection == in.Dir {
			c.userInputDelay = clk + (c.ticRate*userInputFastDelay)/1000
		} else {
			c.lastUserInputDirection = in.Dir
			c.userInputDelay = clk + (c.ticRate*userInputDelay)/1000
		}
	}

	if in.Advance {
		c.src.ClearKeyDown(ScKpadEnter)
		c.src.ClearKeyDown(ScEnter)
		c.src.ClearMouseButton(MouseLeftButton)
		c.advanceCleared = true
	}

	if in.Return {
		c.src.ClearKeyDown(ScEscape)
		c.src.ClearMouseButton(MouseRightButton)
		c.returnCleared = true
	}

	if in.Escape {
		c.src.ClearKeyDown(ScEscape)
		c.escapeCleared = true
	}
}

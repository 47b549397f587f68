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

// flag is the state of a logical function.
type flag struct {
	used   bool
	toggle ToggleMode
	active bool

	// buttonHeld prevents a held input from flipping a Toggle function more
	// than once
	buttonHeld bool

	// cleared suppresses the function in the button state until it is seen
	// to be inactive
	cleared bool
}

type keyMapping struct {
	primary   optKey
	secondary optKey
}

func bit(fn Function) uint64 {
	return uint64(1) << uint(fn)
}

// DefineFunction registers the function and resets its state.
func (c *Control) DefineFunction(fn Function, mode ToggleMode) {
	if !fn.valid() {
		return
	}

	c.flags[fn] = flag{
		used:   true,
		toggle: mode,
	}
}

// FunctionDefined returns true if the function has been registered with
// DefineFunction() since Startup().
func (c *Control) FunctionDefined(fn Function) bool {
	if !fn.valid() {
		return false
	}
	return c.flags[fn].used
}

// FunctionActive returns the active state of the function. Unlike
// ButtonPressed() the result is not affected by ClearButton().
func (c *Control) FunctionActive(fn Function) bool {
	if !fn.valid() {
		return false
	}
	return c.flags[fn].active
}

// MapKey maps two keys to the function. A scancode of zero leaves that key
// unmapped.
func (c *Control) MapKey(fn Function, primary Scancode, secondary Scancode) {
	if !fn.valid() {
		return
	}

	c.keyMapping[fn] = keyMapping{
		primary:   someKey(primary),
		secondary: someKey(secondary),
	}
}

// KeyMapping returns the keys mapped to the function. Unmapped keys are
// returned as zero.
func (c *Control) KeyMapping(fn Function) (Scancode, Scancode) {
	if !fn.valid() {
		return ScNone, ScNone
	}
	m := c.keyMapping[fn]
	return m.primary.sc, m.secondary.sc
}

// KeyboardFunctionPressed returns true if a key mapped to the function is
// down. Keys that are bound to a command do not count.
func (c *Control) KeyboardFunctionPressed(fn Function) bool {
	if !fn.valid() || !c.flags[fn].used {
		return false
	}

	var pressed bool

	m := c.keyMapping[fn]
	if m.primary.ok && c.binds[m.primary.sc].Command == "" {
		pressed = c.src.KeyDown(m.primary.sc)
	}
	if m.secondary.ok && c.binds[m.secondary.sc].Command == "" {
		pressed = pressed || c.src.KeyDown(m.secondary.sc)
	}

	return pressed
}

// setFlag updates the active state of the function from the state of its
// inputs.
func (c *Control) setFlag(fn Function, pressed bool) {
	f := &c.flags[fn]

	if f.toggle == InstantOnOff {
		f.active = pressed
		return
	}

	if pressed {
		if !f.buttonHeld {
			f.buttonHeld = true
			f.active = !f.active
		}
	} else {
		f.buttonHeld = false
	}
}

// getFunctionInput resolves the state of every function for the frame.
func (c *Control) getFunctionInput() {
	c.buttonFunctionState()
	if c.axisFunctionState() {
		c.lastSeen = LastSeenJoystick
	}

	c.buttonHeldState = c.buttonState
	c.buttonState = 0

	for i := NumFunctions - 1; i >= 0; i-- {
		fn := Function(i)
		c.setFlag(fn, c.KeyboardFunctionPressed(fn) || c.buttonFlags[fn])

		f := &c.flags[fn]
		if !f.cleared {
			if f.active {
				c.buttonState |= bit(fn)
			}
		} else if !f.active {
			f.cleared = false
		}
	}

	c.buttonFlags = [NumFunctions]bool{}
}

// ButtonState returns the mask of functions active in the current frame.
func (c *Control) ButtonState() uint64 {
	return c.buttonState
}

// ButtonHeldState returns the mask of functions active in the previous frame.
func (c *Control) ButtonHeldState() uint64 {
	return c.buttonHeldState
}

// ButtonPressed returns true if the function is active in the current frame.
func (c *Control) ButtonPressed(fn Function) bool {
	if !fn.valid() {
		return false
	}
	return c.buttonState&bit(fn) != 0
}

// ButtonHeld returns true if the function was active in the previous frame.
func (c *Control) ButtonHeld(fn Function) bool {
	if !fn.valid() {
		return false
	}
	return c.buttonHeldState&bit(fn) != 0
}

// ButtonJustPressed returns true if the function is active in the current
// frame but was not active in the previous frame.
func (c *Control) ButtonJustPressed(fn Function) bool {
	return c.ButtonPressed(fn) && !c.ButtonHeld(fn)
}

// ButtonReleased returns true if the function was active in the previous frame
// but is not active in the current frame.
func (c *Control) ButtonReleased(fn Function) bool {
	return !c.ButtonPressed(fn) && c.ButtonHeld(fn)
}

// ClearButton removes the function from the button state. The function will
// not be reported as pressed again until its inputs have been released.
func (c *Control) ClearButton(fn Function) {
	if !fn.valid() {
		return
	}
	c.buttonState &^= bit(fn)
	c.flags[fn].cleared = true
}

// ClearAllButtons clears every function. See ClearButton().
func (c *Control) ClearAllButtons() {
	c.buttonState = 0
	c.buttonHeldState = 0
	for i := range c.flags {
		c.flags[i].cleared = true
	}
}

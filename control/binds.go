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

// Bind is a command string bound to a key or mouse button.
type Bind struct {
	Command string

	// Repeat causes the command to be dispatched on every frame that the
	// key is down. Otherwise the command is dispatched once per press.
	Repeat bool

	// KeyName is the name of the key as given to BindKey() or BindMouse().
	KeyName string

	lastState bool
}

// Bound returns true if a command is bound.
func (b Bind) Bound() bool {
	return b.Command != ""
}

func (c *Control) bind(i int, cmd string, repeat bool, keyName string) {
	b := &c.binds[i]
	b.Command = cmd
	b.Repeat = repeat
	b.KeyName = keyName
}

// BindKey binds the command to the key. Any existing bind for the key is
// replaced. Keys that are bound to a command are not used by the function
// mapping.
func (c *Control) BindKey(sc Scancode, cmd string, repeat bool, keyName string) {
	c.bind(int(sc), cmd, repeat, keyName)
}

// BindMouse binds the command to the mouse button. Any existing bind for the
// button is replaced. Mouse buttons that are bound to a command are not used
// by the function mapping.
func (c *Control) BindMouse(button int, cmd string, repeat bool, keyName string) {
	if button < 0 || button >= MaxMouseButtons {
		return
	}
	c.bind(MaxBoundKeys+button, cmd, repeat, keyName)
}

// FreeKeyBind removes the bind for the key.
func (c *Control) FreeKeyBind(sc Scancode) {
	c.bind(int(sc), "", false, "")
}

// FreeMouseBind removes the bind for the mouse button.
func (c *Control) FreeMouseBind(button int) {
	if button < 0 || button >= MaxMouseButtons {
		return
	}
	c.bind(MaxBoundKeys+button, "", false, "")
}

// ClearAllBinds removes the binds for every key and mouse button.
func (c *Control) ClearAllBinds() {
	for i := range MaxBoundKeys {
		c.FreeKeyBind(Scancode(i))
	}
	for i := range MaxMouseButtons {
		c.FreeMouseBind(i)
	}
}

// KeyBind returns a copy of the bind for the key.
func (c *Control) KeyBind(sc Scancode) Bind {
	return c.binds[sc]
}

// MouseBind returns a copy of the bind for the mouse button.
func (c *Control) MouseBind(button int) Bind {
	if button < 0 || button >= MaxMouseButtons {
		return Bind{}
	}
	return c.binds[MaxBoundKeys+button]
}

// SetBindsEnabled enables or disables the dispatch of bound commands.
func (c *Control) SetBindsEnabled(enabled bool) {
	c.bindsEnabled = enabled
}

// BindsEnabled returns true if bound commands are dispatched.
func (c *Control) BindsEnabled() bool {
	return c.bindsEnabled
}

// ProcessBinds dispatches the commands bound to keys and mouse buttons that are
// down. Should be called once per frame after GetInput().
func (c *Control) ProcessBinds() {
	c.checkThread("ProcessBinds")

	if !c.bindsEnabled {
		return
	}

	for i := MaxBoundKeys - 1; i >= 0; i-- {
		b := &c.binds[i]
		if b.Command == "" {
			continue // for loop
		}

		sc := Scancode(i)
		pressed := c.src.KeyDown(sc) || c.src.KeyPressed(sc)

		if pressed && (b.Repeat || !b.lastState) {
			c.lastSeen = LastSeenKeyboard
			c.dispatch(b.Command)
		}

		b.lastState = pressed
	}

	for i := c.mouse.num - 1; i >= 0; i-- {
		b := &c.binds[MaxBoundKeys+i]
		if b.Command == "" {
			continue // for loop
		}

		pressed := c.mouse.state[i]

		if pressed && (b.Repeat || !b.lastState) {
			c.dispatch(b.Command)
		}

		b.lastState = pressed
	}
}

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

// buttonMapping is the function for the single and double click of a button.
type buttonMapping struct {
	single optFunction
	double optFunction
}

// buttonSet is the click state and mapping of all the buttons of a device. The
// same type is used for both the mouse and the joystick.
type buttonSet struct {
	// the number of buttons on the device. never more than len(state)
	num int

	state        []bool
	clicked      []bool
	clickedState []bool
	clickedTime  []int32
	clickedCount []uint8

	mapping []buttonMapping
}

func newButtonSet(size int) *buttonSet {
	return &buttonSet{
		state:        make([]bool, size),
		clicked:      make([]bool, size),
		clickedState: make([]bool, size),
		clickedTime:  make([]int32, size),
		clickedCount: make([]uint8, size),
		mapping:      make([]buttonMapping, size),
	}
}

func (b *buttonSet) valid(button int) bool {
	return button >= 0 && button < len(b.state)
}

// release forgets the state of every button as though every button had been
// released before the double click window closed. The mapping is kept.
func (b *buttonSet) release() {
	clear(b.state)
	clear(b.clicked)
	clear(b.clickedState)
	clear(b.clickedTime)
	clear(b.clickedCount)
}

// update the state of every button from the device mask. A second press of a
// button inside the double click window sets the clickedState of the button
// for as long as the button remains held.
//
// Returns true if any button is down.
func (b *buttonSet) update(buttons uint64, now int32, doubleClickSpeed int32) bool {
	var down bool

	for i := b.num - 1; i >= 0; i-- {
		bs := (buttons>>i)&1 == 1

		b.state[i] = bs
		b.clickedState[i] = false

		if bs {
			down = true

			if !b.clicked[i] {
				b.clicked[i] = true

				if b.clickedCount[i] == 0 || now > b.clickedTime[i] {
					b.clickedTime[i] = now + doubleClickSpeed
					b.clickedCount[i] = 1
				} else if now < b.clickedTime[i] {
					b.clickedState[i] = true
					b.clickedTime[i] = 0
					b.clickedCount[i] = 2
				}
			} else if b.clickedCount[i] == 2 {
				b.clickedState[i] = true
			}

			continue // for loop
		}

		if b.clickedCount[i] == 2 {
			b.clickedCount[i] = 0
		}
		b.clicked[i] = false
	}

	return down
}

// functionState sets the function flag for every mapped button that is down.
// The skip function is used to exclude buttons. It can be nil.
//
// Returns true if a mapped button is down.
func (b *buttonSet) functionState(flags *[NumFunctions]bool, skip func(button int) bool) bool {
	var active bool

	for i := b.num - 1; i >= 0; i-- {
		if skip != nil && skip(i) {
			continue
		}

		m := b.mapping[i]

		if m.double.ok && b.clickedState[i] {
			flags[m.double.fn] = true
			active = true
		}

		if m.single.ok && b.state[i] {
			flags[m.single.fn] = true
			active = true
		}
	}

	return active
}

// clearMapping unmaps every button.
func (b *buttonSet) clearMapping() {
	clear(b.mapping)
}

// getDeviceButtons updates the button sets of the mouse and joystick.
func (c *Control) getDeviceButtons() {
	t := c.time()

	if c.mouseEnabled {
		c.mouse.update(uint64(c.src.MouseButtons()), t, c.doubleClickSpeed)
	}

	if c.joystickEnabled {
		if c.joystick.update(c.src.JoystickButtons(), t, c.doubleClickSpeed) {
			c.lastSeen = LastSeenJoystick
		}
	}
}

// buttonFunctionState sets the function flags for the buttons of the mouse and
// joystick. Mouse buttons that are bound to a command are not used.
func (c *Control) buttonFunctionState() {
	c.mouse.functionState(&c.buttonFlags, func(button int) bool {
		return c.binds[MaxBoundKeys+button].Command != ""
	})

	if c.joystick.functionState(&c.buttonFlags, nil) {
		c.lastSeen = LastSeenJoystick
	}
}

func (c *Control) buttonSetForDevice(dev Device) *buttonSet {
	switch dev {
	case DeviceMouse:
		return c.mouse
	case DeviceJoystick:
		return c.joystick
	}
	return nil
}

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

package control_test

import (
	"testing"

	"github.com/jetsetilly/mact/control"
	"github.com/jetsetilly/mact/test"
)

// newMenuControl starts a Control with a keyboard, a mouse and a game
// controller.
func newMenuControl(t *testing.T) (*control.Control, *fakeSource, *fakeClock) {
	t.Helper()
	src := &fakeSource{
		mousePresent:   true,
		joyPresent:     true,
		axes:           make([]int32, 6),
		numButtons:     15,
		gameController: true,
	}
	clk := &fakeClock{}
	c := control.NewControl(src, nil)
	test.DemandSuccess(t, c.Startup(clk.now, 120))
	return c, src, clk
}

func TestUserInputRepeat(t *testing.T) {
	c, src, clk := newMenuControl(t)
	src.ctrlButtons = 1 << control.ControllerButtonDpadUp

	steps := []struct {
		tm    int32
		dir   control.Direction
		clear bool
	}{
		// first press is immediate
		{tm: 0, dir: control.DirUp, clear: true},

		// the initial delay is five hundred milliseconds
		{tm: 30, dir: control.DirNone},
		{tm: 59, dir: control.DirNone},
		{tm: 60, dir: control.DirUp, clear: true},

		// the repeat delay is sixty milliseconds
		{tm: 64, dir: control.DirNone},
		{tm: 67, dir: control.DirUp, clear: true},
		{tm: 74, dir: control.DirUp, clear: true},
	}

	for _, s := range steps {
		clk.t = s.tm
		in := c.UserInput(nil)
		test.ExpectEquality(t, in.Dir, s.dir, s.tm)
		if s.clear {
			c.ClearUserInput(nil)
		}
	}

	// releasing resets the delay
	src.ctrlButtons = 0
	clk.t = 75
	test.ExpectEquality(t, c.UserInput(nil).Dir, control.DirNone)
	src.ctrlButtons = 1 << control.ControllerButtonDpadUp
	clk.t = 76
	test.ExpectEquality(t, c.UserInput(nil).Dir, control.DirUp)
	c.ClearUserInput(nil)

	// changing direction while held is subject to the delay. once the delay
	// has passed the new direction arms the initial delay again
	src.ctrlButtons = 1 << control.ControllerButtonDpadRight
	clk.t = 77
	test.ExpectEquality(t, c.UserInput(nil).Dir, control.DirNone)
	clk.t = 136
	test.ExpectEquality(t, c.UserInput(nil).Dir, control.DirRight)
	c.ClearUserInput(nil)
	clk.t = 150
	test.ExpectEquality(t, c.UserInput(nil).Dir, control.DirNone)
	clk.t = 196
	test.ExpectEquality(t, c.UserInput(nil).Dir, control.DirRight)
}

func TestUserInputPriority(t *testing.T) {
	c, src, clk := newMenuControl(t)
	clk.t = 0

	src.ctrlButtons = 1<<control.ControllerButtonDpadLeft | 1<<control.ControllerButtonDpadDown
	test.ExpectEquality(t, c.UserInput(nil).Dir, control.DirDown)

	src.ctrlButtons = 1<<control.ControllerButtonDpadLeft | 1<<control.ControllerButtonDpadRight
	test.ExpectEquality(t, c.UserInput(nil).Dir, control.DirLeft)

	// keyboard overrides the controller
	src.keys[control.ScRightArrow] = true
	test.ExpectEquality(t, c.UserInput(nil).Dir, control.DirRight)

	src.keys[control.ScKpad8] = true
	test.ExpectEquality(t, c.UserInput(nil).Dir, control.DirUp)
}

func TestUserInputKeyboard(t *testing.T) {
	c, src, _ := newMenuControl(t)

	src.keys[control.ScDownArrow] = true
	in := c.UserInput(nil)
	test.ExpectEquality(t, in.Dir, control.DirDown)

	// clearing removes the key from the key down table. the key is only
	// seen again on the next press or platform repeat
	c.ClearUserInput(nil)
	test.ExpectFailure(t, src.keys[control.ScDownArrow])
	test.ExpectEquality(t, c.UserInput(nil).Dir, control.DirNone)

	src.keys[control.ScDownArrow] = true
	test.ExpectEquality(t, c.UserInput(nil).Dir, control.DirDown)
}

func TestUserInputStick(t *testing.T) {
	c, src, clk := newJoystickControl(t, 6, true)

	// stick must be at saturation
	src.axes[control.ControllerAxisLeftY] = -20000
	frame(c, clk, 0)
	test.ExpectEquality(t, c.UserInput(nil).Dir, control.DirNone)

	src.axes[control.ControllerAxisLeftY] = -32767
	frame(c, clk, 10)
	test.ExpectEquality(t, c.UserInput(nil).Dir, control.DirUp)

	src.axes[control.ControllerAxisLeftY] = 0
	src.axes[control.ControllerAxisLeftX] = 32767
	frame(c, clk, 20)
	test.ExpectEquality(t, c.UserInput(nil).Dir, control.DirRight)
}

func TestUserInputButtonLatch(t *testing.T) {
	c, src, _ := newMenuControl(t)

	src.ctrlButtons = 1 << control.ControllerButtonA
	in := c.UserInput(nil)
	test.ExpectSuccess(t, in.Advance)
	test.ExpectFailure(t, in.Return)
	c.ClearUserInput(nil)

	// held button is not seen again
	test.ExpectFailure(t, c.UserInput(nil).Advance)
	test.ExpectFailure(t, c.UserInput(nil).Advance)

	// release is observed
	src.ctrlButtons = 0
	test.ExpectFailure(t, c.UserInput(nil).Advance)

	src.ctrlButtons = 1 << control.ControllerButtonA
	test.ExpectSuccess(t, c.UserInput(nil).Advance)
}

func TestUserInputEscape(t *testing.T) {
	c, src, _ := newMenuControl(t)

	// escape is both return and escape
	src.keys[control.ScEscape] = true
	in := c.UserInput(nil)
	test.ExpectSuccess(t, in.Return)
	test.ExpectSuccess(t, in.Escape)
	test.ExpectFailure(t, in.Advance)

	c.ClearUserInput(nil)
	test.ExpectFailure(t, src.keys[control.ScEscape])

	// start is escape only
	src.ctrlButtons = 1 << control.ControllerButtonStart
	in = c.UserInput(nil)
	test.ExpectFailure(t, in.Escape)
	test.ExpectFailure(t, in.Return)

	src.ctrlButtons = 0
	c.UserInput(nil)
	src.ctrlButtons = 1 << control.ControllerButtonStart
	in = c.UserInput(nil)
	test.ExpectSuccess(t, in.Escape)
	test.ExpectFailure(t, in.Return)

	// B is return only
	src.ctrlButtons = 1 << control.ControllerButtonB
	in = c.UserInput(nil)
	test.ExpectSuccess(t, in.Return)
	test.ExpectFailure(t, in.Escape)
}

func TestUserInputMouse(t *testing.T) {
	c, src, _ := newMouseControl(t)

	src.mouseButtons = control.MouseLeftButton | control.MouseRightButton
	in := c.UserInput(nil)
	test.ExpectSuccess(t, in.Advance)
	test.ExpectSuccess(t, in.Return)
	test.ExpectFailure(t, in.Escape)

	c.ClearUserInput(nil)
	test.ExpectEquality(t, src.mouseButtons, uint32(0))
}

func TestUserInputInstance(t *testing.T) {
	c, src, _ := newMenuControl(t)

	p1 := c.UserInput(nil)
	p2 := c.UserInput(nil)
	test.ExpectSuccess(t, p1 == p2)

	var own control.UserInput
	src.keys[control.ScEnter] = true
	p3 := c.UserInput(&own)
	test.ExpectSuccess(t, p3 == &own)
	test.ExpectSuccess(t, own.Advance)

	// the internal instance is not touched
	test.ExpectFailure(t, p1.Advance)

	c.ClearUserInput(&own)
	test.ExpectFailure(t, src.keys[control.ScEnter])
}

func TestUserInputUnplugged(t *testing.T) {
	c, src, clk := newMenuControl(t)

	src.axes[control.ControllerAxisLeftY] = -32767
	src.ctrlButtons = 1 << control.ControllerButtonA
	frame(c, clk, 0)
	in := c.UserInput(nil)
	test.ExpectEquality(t, in.Dir, control.DirUp)
	test.ExpectSuccess(t, in.Advance)
	c.ClearUserInput(nil)

	// controller removed with the stick held. the source still reports the
	// last values but they are not used
	src.joyPresent = false
	c.ScanForControllers()

	for tm := int32(100); tm < 300; tm += 50 {
		frame(c, clk, tm)
		in = c.UserInput(nil)
		test.ExpectEquality(t, in.Dir, control.DirNone, tm)
		test.ExpectFailure(t, in.Advance, tm)
	}
}

func TestUserInputJoystickDisabled(t *testing.T) {
	c, src, clk := newMenuControl(t)

	src.axes[control.ControllerAxisLeftX] = 32767
	frame(c, clk, 0)
	test.ExpectEquality(t, c.UserInput(nil).Dir, control.DirRight)

	c.SetJoystickEnabled(false)
	frame(c, clk, 100)
	test.ExpectEquality(t, c.UserInput(nil).Dir, control.DirNone)
	test.ExpectEquality(t, c.ControllerDigitalAxis(control.ControllerAxisLeftX), 0)

	// the mouse is ignored in the same way
	src.mouseButtons = control.MouseRightButton
	c.SetMouseEnabled(false)
	test.ExpectFailure(t, c.UserInput(nil).Return)
}

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


package sdlplatform

import (
	"github.com/jetsetilly/mact/control"
	"github.com/veandco/go-sdl2/sdl"
)

// joystick implements the userinput.Joystick interface for a device that SDL
// has no game controller mapping for.
type joystick struct {
	joy *sdl.Joystick
}

func (j *joystick) Name() string {
	return j.joy.Name()
}

func (j *joystick) NumAxes() int {
	return j.joy.NumAxes()
}

func (j *joystick) NumButtons() int {
	return j.joy.NumButtons()
}

func (j *joystick) NumHats() int {
	return j.joy.NumHats()
}

func (j *joystick) Axis(i int) int16 {
	return j.joy.Axis(i)
}

func (j *joystick) Button(i int) bool {
	return j.joy.Button(i) != 0
}

// the bit layout of SDL hat values is the same as the layout required by the
// userinput.Joystick interface
func (j *joystick) Hat(i int) uint8 {
	return j.joy.Hat(i)
}

func (j *joystick) IsGameController() bool {
	return false
}

func (j *joystick) ControllerButton(_ int) bool {
	return false
}

func (j *joystick) Close() {
	j.joy.Close()
}

// gameController implements the userinput.Joystick interface for a device
// with a game controller mapping. The axes are reported in SDL game
// controller order, which is the order of the ControllerAxis constants in the
// control package.
type gameController struct {
	pad *sdl.GameController
}

func (g *gameController) Name() string {
	return g.pad.Name()
}

func (g *gameController) NumAxes() int {
	return control.ControllerAxisTriggerRight + 1
}

func (g *gameController) NumButtons() int {
	return g.pad.Joystick().NumButtons()
}

func (g *gameController) NumHats() int {
	return g.pad.Joystick().NumHats()
}

func (g *gameController) Axis(i int) int16 {
	return g.pad.Axis(sdl.GameControllerAxis(i))
}

func (g *gameController) Button(i int) bool {
	return g.pad.Joystick().Button(i) != 0
}

func (g *gameController) Hat(i int) uint8 {
	return g.pad.Joystick().Hat(i)
}

func (g *gameController) IsGameController() bool {
	return true
}

// the ControllerButton constants in the control package are in SDL game
// controller button order
func (g *gameController) ControllerButton(b int) bool {
	return g.pad.Button(sdl.GameControllerButton(b)) != 0
}

func (g *gameController) Close() {
	g.pad.Close()
}

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
	"errors"

	"github.com/jetsetilly/mact/control"
)

// fakeSource is a scripted implementation of control.Source.
type fakeSource struct {
	startupErr error
	startups   int
	shutdowns  int
	scans      int
	polls      int

	mousePresent bool
	mouseButtons uint32
	dx, dy       int32

	joyPresent     bool
	axes           []int32
	numButtons     int
	hats           int
	joyButtons     uint64
	ctrlButtons    uint32
	gameController bool

	keys    [control.NumScancodes]bool
	pressed [control.NumScancodes]bool
}

func (s *fakeSource) Startup() error {
	s.startups++
	return s.startupErr
}

func (s *fakeSource) Shutdown() {
	s.shutdowns++
}

func (s *fakeSource) ScanDevices() {
	s.scans++
}

func (s *fakeSource) PollEvents() {
	s.polls++
}

func (s *fakeSource) MousePresent() bool {
	return s.mousePresent
}

func (s *fakeSource) MouseButtons() uint32 {
	return s.mouseButtons
}

func (s *fakeSource) MouseDelta() (int32, int32) {
	return s.dx, s.dy
}

func (s *fakeSource) ClearMouseButton(mask uint32) {
	s.mouseButtons &^= mask
}

func (s *fakeSource) JoystickPresent() bool {
	return s.joyPresent
}

func (s *fakeSource) JoystickLayout() (int, int, int) {
	return len(s.axes), s.numButtons, s.hats
}

func (s *fakeSource) JoystickAxes() []int32 {
	return s.axes
}

func (s *fakeSource) JoystickButtons() uint64 {
	return s.joyButtons
}

func (s *fakeSource) ControllerButtons() uint32 {
	return s.ctrlButtons
}

func (s *fakeSource) IsGameController() bool {
	return s.gameController
}

func (s *fakeSource) KeyDown(sc control.Scancode) bool {
	return s.keys[sc]
}

func (s *fakeSource) KeyPressed(sc control.Scancode) bool {
	return s.pressed[sc]
}

func (s *fakeSource) ClearKeyDown(sc control.Scancode) {
	s.keys[sc] = false
}

// fakeDispatcher records every dispatched command.
type fakeDispatcher struct {
	commands []string
	fail     bool
}

func (d *fakeDispatcher) Dispatch(cmd string) error {
	d.commands = append(d.commands, cmd)
	if d.fail {
		return errors.New("dispatch failed")
	}
	return nil
}

// fakeClock is a manually advanced control.Timer.
type fakeClock struct {
	t int32
}

func (c *fakeClock) now() int32 {
	return c.t
}

// frame advances the clock to the time and polls the devices.
func frame(c *control.Control, clk *fakeClock, t int32) control.Info {
	clk.t = t
	var info control.Info
	c.GetInput(&info)
	return info
}

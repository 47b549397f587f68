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


package recorder_test

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/jetsetilly/mact/control"
	"github.com/jetsetilly/mact/curated"
	"github.com/jetsetilly/mact/recorder"
	"github.com/jetsetilly/mact/test"
)

// state is the input for one frame of a scriptedSource.
type state struct {
	keys       []control.Scancode
	mouse      uint32
	dx, dy     int32
	axes       []int32
	joyButtons uint64
	ctrl       uint32
}

// scriptedSource is a control.Source that changes state on every call to
// PollEvents(). A game controller with two axes, four buttons and a hat is
// present throughout.
type scriptedSource struct {
	script []state
	next   int
	curr   state

	keys    [control.NumScancodes]bool
	pressed [control.NumScancodes]bool
}

func (s *scriptedSource) Startup() error { return nil }
func (s *scriptedSource) Shutdown()      {}
func (s *scriptedSource) ScanDevices()   {}

func (s *scriptedSource) PollEvents() {
	s.curr = state{axes: []int32{0, 0}}
	if s.next < len(s.script) {
		s.curr = s.script[s.next]
		if s.curr.axes == nil {
			s.curr.axes = []int32{0, 0}
		}
	}
	s.next++

	clear(s.keys[:])
	clear(s.pressed[:])
	for _, sc := range s.curr.keys {
		s.keys[sc] = true
		s.pressed[sc] = true
	}
}

func (s *scriptedSource) MousePresent() bool              { return true }
func (s *scriptedSource) MouseButtons() uint32            { return s.curr.mouse }
func (s *scriptedSource) MouseDelta() (int32, int32)      { return s.curr.dx, s.curr.dy }
func (s *scriptedSource) ClearMouseButton(mask uint32)    { s.curr.mouse &^= mask }
func (s *scriptedSource) JoystickPresent() bool           { return true }
func (s *scriptedSource) JoystickLayout() (int, int, int) { return 2, 4, 1 }
func (s *scriptedSource) JoystickAxes() []int32           { return s.curr.axes }
func (s *scriptedSource) JoystickButtons() uint64         { return s.curr.joyButtons }
func (s *scriptedSource) ControllerButtons() uint32       { return s.curr.ctrl }
func (s *scriptedSource) IsGameController() bool          { return true }
func (s *scriptedSource) KeyDown(sc control.Scancode) bool {
	return s.keys[sc]
}
func (s *scriptedSource) KeyPressed(sc control.Scancode) bool {
	return s.pressed[sc]
}
func (s *scriptedSource) ClearKeyDown(sc control.Scancode) {
	s.keys[sc] = false
}

// transcript is an in memory io.WriteCloser.
type transcript struct {
	bytes.Buffer
	closed bool
}

func (tr *transcript) Close() error {
	tr.closed = true
	return nil
}

type failingWriter struct{}

func (failingWriter) Write(_ []byte) (int, error) { return 0, errors.New("disk full") }
func (failingWriter) Close() error                { return nil }

type commands []string

func (cmds *commands) Dispatch(cmd string) error {
	*cmds = append(*cmds, cmd)
	return nil
}

// result is everything the control package reports for one frame.
type result struct {
	info     control.Info
	state    uint64
	held     uint64
	menu     control.UserInput
	commands int
}

func configure(c *control.Control) {
	c.DefineFunction(0, control.InstantOnOff)
	c.DefineFunction(1, control.Toggle)
	c.DefineFunction(2, control.InstantOnOff)
	c.DefineFunction(3, control.InstantOnOff)
	c.MapKey(0, control.ScA, control.ScNone)
	c.MapKey(1, control.ScSpace, control.ScNone)
	c.MapButton(2, 0, true, control.DeviceMouse)
	c.MapAnalogAxis(0, control.AnalogTurning, control.DeviceJoystick)
	c.MapDigitalAxis(1, 3, control.AxisUp, control.DeviceJoystick)
	c.BindKey(control.ScF1, "save", false, "f1")
	c.SetBindsEnabled(true)
}

func run(c *control.Control, frames int, cmds *commands, tick func(int)) []result {
	var results []result
	for i := range frames {
		tick(i)

		var r result
		c.GetInput(&r.info)
		c.ProcessBinds()
		r.state = c.ButtonState()
		r.held = c.ButtonHeldState()
		r.menu = *c.UserInput(nil)
		if r.menu.Advance || r.menu.Dir != control.DirNone {
			c.ClearUserInput(nil)
		}
		r.commands = len(*cmds)
		results = append(results, r)
	}
	return results
}

var script = []state{
	{},
	{keys: []control.Scancode{control.ScA}},
	{keys: []control.Scancode{control.ScA, control.ScSpace}},
	{keys: []control.Scancode{control.ScSpace}},
	{},
	{mouse: control.MouseLeftButton},
	{},
	{mouse: control.MouseLeftButton, dx: 12, dy: -3},
	{},
	{axes: []int32{20000, -30000}},
	{axes: []int32{-20000, 32767}, keys: []control.Scancode{control.ScF1}},
	{keys: []control.Scancode{control.ScF1}},
	{keys: []control.Scancode{control.ScEnter}},
	{keys: []control.Scancode{control.ScEnter}},
	{ctrl: 1 << control.ControllerButtonDpadUp},
	{ctrl: 1 << control.ControllerButtonDpadUp},
	{ctrl: 1 << control.ControllerButtonDpadUp},
	{},
}

func TestRoundTrip(t *testing.T) {
	const ticRate = 35
	const frames = 20

	// recording
	var clk int32
	timer := func() int32 { return clk }

	src := &scriptedSource{script: script}
	tr := &transcript{}
	rec, err := recorder.NewRecorder(src, tr, timer)
	test.DemandSuccess(t, err)

	var recCmds commands
	c := control.NewControl(rec, &recCmds)
	test.DemandSuccess(t, c.Startup(timer, ticRate))
	configure(c)

	recorded := run(c, frames, &recCmds, func(i int) {
		clk = int32(i * 5)
	})
	test.ExpectSuccess(t, rec.End())
	test.ExpectSuccess(t, tr.closed)
	test.ExpectEquality(t, rec.Frames(), frames)

	// the scenario must have produced some output for the comparison to mean
	// anything
	test.ExpectEquality(t, len(recCmds), 1)
	test.ExpectEquality(t, recorded[1].state, uint64(1))

	// playback
	plb, err := recorder.NewPlayback(strings.NewReader(tr.String()))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, plb.Frames(), frames)

	var plbCmds commands
	p := control.NewControl(plb, &plbCmds)
	test.DemandSuccess(t, p.Startup(plb.Timer, ticRate))
	configure(p)
	test.ExpectSuccess(t, p.MousePresent())
	test.ExpectSuccess(t, p.JoystickPresent())

	played := run(p, frames, &plbCmds, func(int) {})
	test.ExpectFailure(t, plb.EndOfPlayback())

	test.DemandEquality(t, len(played), len(recorded))
	for i := range recorded {
		test.ExpectEquality(t, played[i], recorded[i], i)
	}

	// one more frame passes the end of the transcript
	var info control.Info
	p.GetInput(&info)
	test.ExpectSuccess(t, plb.EndOfPlayback())
	test.ExpectEquality(t, info, control.Info{})
	test.ExpectEquality(t, plb.Timer(), int32((frames-1)*5))
}

func TestRecorderErrors(t *testing.T) {
	_, err := recorder.NewRecorder(nil, &transcript{}, func() int32 { return 0 })
	test.ExpectSuccess(t, curated.Is(err, recorder.RecordingError))
	_, err = recorder.NewRecorder(&scriptedSource{}, nil, func() int32 { return 0 })
	test.ExpectSuccess(t, curated.Is(err, recorder.RecordingError))
	_, err = recorder.NewRecorder(&scriptedSource{}, &transcript{}, nil)
	test.ExpectSuccess(t, curated.Is(err, recorder.RecordingError))
}

func TestWriteFailure(t *testing.T) {
	src := &scriptedSource{script: script}
	rec, err := recorder.NewRecorder(src, failingWriter{}, func() int32 { return 0 })
	test.DemandSuccess(t, err)

	c := control.NewControl(rec, nil)
	test.DemandSuccess(t, c.Startup(nil, 35))
	configure(c)

	// input is unaffected by the failure to record
	var info control.Info
	c.GetInput(&info)
	c.GetInput(&info)
	test.ExpectSuccess(t, c.FunctionActive(0))

	test.ExpectSuccess(t, curated.Is(rec.Err(), recorder.RecordingError))
	test.ExpectSuccess(t, curated.Is(rec.End(), recorder.RecordingError))
	test.ExpectEquality(t, rec.Frames(), 0)
}

func TestPlaybackFormatErrors(t *testing.T) {
	const header = "mact transcript 1\n1\n"
	const good = "0, 0, 0, 0, 0:0:0, 0, 0:0, 0, 0, -, -, -\n"

	for _, tc := range []struct {
		transcript string
		line       int
	}{
		{"", 1},
		{"not a transcript\n1\n", 1},
		{"mact transcript 1\n", 2},
		{"mact transcript 1\nyes\n", 2},
		{header + good + "0, 0, 0, 0, 0:0:0, 0, 0:0, 0, 0, -, -, -\n", 4},
		{header + "0, 10, 0, 0, 0:0:0, 0, 0:0, 0, 0, -, -, -\n" + "1, 5, 0, 0, 0:0:0, 0, 0:0, 0, 0, -, -, -\n", 4},
		{header + good + "\n" + "1, 0, 0, 0\n", 5},
	} {
		_, err := recorder.NewPlayback(strings.NewReader(tc.transcript))
		test.ExpectSuccess(t, curated.Is(err, recorder.PlaybackFormatError), tc.transcript)
		if err != nil {
			test.ExpectSuccess(t, strings.Contains(err.Error(), "line "+strconv.Itoa(tc.line)+":"), err.Error())
		}
	}
}

func TestPlaybackDevicesChanged(t *testing.T) {
	const transcript = "mact transcript 1\n0\n" +
		"0, 0, 0, 0, 0:0:0, 0, 0:0, 0, 0, -, -, -\n" +
		"1, 5, 1, 1, 2:4:0, 0, 0:0, 0, 0, 100:-100, -, -\n" +
		"2, 10, 1, 1, 2:4:0, 0, 0:0, 0, 0, 100:-100, -, -\n"

	plb, err := recorder.NewPlayback(strings.NewReader(transcript))
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, plb.MousePresent())

	plb.PollEvents()
	test.ExpectFailure(t, plb.DevicesChanged())
	test.ExpectFailure(t, plb.JoystickPresent())

	plb.PollEvents()
	test.ExpectSuccess(t, plb.DevicesChanged())
	test.ExpectFailure(t, plb.DevicesChanged())
	test.ExpectSuccess(t, plb.JoystickPresent())
	test.ExpectEquality(t, plb.JoystickAxes()[1], int32(-100))

	plb.PollEvents()
	test.ExpectFailure(t, plb.DevicesChanged())
	test.ExpectEquality(t, plb.Timer(), int32(10))
}

func TestPlaybackClears(t *testing.T) {
	const transcript = "mact transcript 1\n1\n" +
		"0, 0, 0, 0, 0:0:0, 3, 0:0, 0, 0, -, 1e, 1e\n" +
		"1, 5, 0, 0, 0:0:0, 3, 0:0, 0, 0, -, 1e, -\n"

	plb, err := recorder.NewPlayback(strings.NewReader(transcript))
	test.DemandSuccess(t, err)

	plb.PollEvents()
	test.ExpectSuccess(t, plb.KeyDown(control.ScA))
	test.ExpectSuccess(t, plb.KeyPressed(control.ScA))
	plb.ClearKeyDown(control.ScA)
	plb.ClearMouseButton(control.MouseLeftButton)
	test.ExpectFailure(t, plb.KeyDown(control.ScA))
	test.ExpectEquality(t, plb.MouseButtons(), control.MouseRightButton)

	// clears apply to the current frame only. the transcript records the
	// state of the source after its own clears have been applied
	plb.PollEvents()
	test.ExpectSuccess(t, plb.KeyDown(control.ScA))
	test.ExpectFailure(t, plb.KeyPressed(control.ScA))
	test.ExpectEquality(t, plb.MouseButtons(), control.MouseLeftButton|control.MouseRightButton)
}

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


package recorder

import (
	"bufio"
	"fmt"
	"io"

	"github.com/jetsetilly/mact/control"
	"github.com/jetsetilly/mact/curated"
	"github.com/jetsetilly/mact/logger"
)

// Sentinal errors returned by NewPlayback().
const (
	PlaybackError       = "playback: %v"
	PlaybackFormatError = "playback: line %d: %v"
)

// Playback reperforms the input in a previously recorded transcript. It
// implements the control.Source interface.
type Playback struct {
	mousePresent bool

	frames []frame
	next   int

	// the frame most recently loaded by PollEvents(). the key and mouse
	// button tables are copies that can be altered by ClearKeyDown() and
	// ClearMouseButton()
	curr         frame
	keyDown      [control.NumScancodes]bool
	keyPressed   [control.NumScancodes]bool
	mouseButtons uint32

	devicesChanged bool
}

// NewPlayback is the preferred method of initialisation for the Playback
// type. The entire transcript is read and validated before returning.
func NewPlayback(r io.Reader) (*Playback, error) {
	plb := &Playback{}

	scanner := bufio.NewScanner(r)
	lineNum := 0

	next := func() (string, bool) {
		if !scanner.Scan() {
			return "", false
		}
		lineNum++
		return scanner.Text(), true
	}

	// header
	line, ok := next()
	if !ok || line != formatID {
		if err := scanner.Err(); err != nil {
			return nil, curated.Errorf(PlaybackError, err)
		}
		return nil, curated.Errorf(PlaybackFormatError, 1, "not a transcript")
	}

	line, ok = next()
	if !ok {
		return nil, curated.Errorf(PlaybackFormatError, lineNum+1, "missing header line")
	}
	var err error
	plb.mousePresent, err = parseBool(line)
	if err != nil {
		return nil, curated.Errorf(PlaybackFormatError, lineNum, fmt.Errorf("mouse present: %w", err))
	}

	// frames
	for line, ok = next(); ok; line, ok = next() {
		if line == "" {
			continue // for loop
		}

		f, err := parseFrame(line)
		if err != nil {
			return nil, curated.Errorf(PlaybackFormatError, lineNum, err)
		}

		if f.number != len(plb.frames) {
			return nil, curated.Errorf(PlaybackFormatError, lineNum,
				fmt.Sprintf("frame %d out of sequence (expected %d)", f.number, len(plb.frames)))
		}

		if len(plb.frames) > 0 && f.clock < plb.frames[len(plb.frames)-1].clock {
			return nil, curated.Errorf(PlaybackFormatError, lineNum, "clock decreased")
		}

		plb.frames = append(plb.frames, f)
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(PlaybackError, err)
	}

	// the joystick layout and clock are available before the first frame has
	// been loaded so that control.Startup() sees the correct layout
	if len(plb.frames) > 0 {
		plb.curr = layoutOnly(plb.frames[0])
	}

	logger.Logf(logger.Allow, "recorder", "playback of %d frames", len(plb.frames))

	return plb, nil
}

// layoutOnly returns a frame with the device layout and clock of the frame and
// no input.
func layoutOnly(f frame) frame {
	return frame{
		number:          f.number,
		clock:           f.clock,
		joystickPresent: f.joystickPresent,
		gameController:  f.gameController,
		numAxes:         f.numAxes,
		numButtons:      f.numButtons,
		numHats:         f.numHats,
		axes:            make([]int32, len(f.axes)),
	}
}

func (plb *Playback) String() string {
	return fmt.Sprintf("%d/%d", plb.next, len(plb.frames))
}

// Frames returns the number of frames in the transcript.
func (plb *Playback) Frames() int {
	return len(plb.frames)
}

// EndOfPlayback returns true once every frame in the transcript has been
// loaded by PollEvents() and a further call has been made. From that point
// no input is reported.
func (plb *Playback) EndOfPlayback() bool {
	return plb.next > len(plb.frames)
}

// Timer returns the clock of the current frame. It is suitable for use as a
// control.Timer.
func (plb *Playback) Timer() int32 {
	return plb.curr.clock
}

// DevicesChanged returns true if the joystick layout of the frame loaded by
// the most recent call to PollEvents() differs from the previous frame.
func (plb *Playback) DevicesChanged() bool {
	c := plb.devicesChanged
	plb.devicesChanged = false
	return c
}

// Startup implements the control.Source interface.
func (plb *Playback) Startup() error {
	return nil
}

// Shutdown implements the control.Source interface.
func (plb *Playback) Shutdown() {
}

// ScanDevices implements the control.Source interface. The joystick layout
// is part of every frame so there is nothing to do.
func (plb *Playback) ScanDevices() {
}

// PollEvents implements the control.Source interface.
func (plb *Playback) PollEvents() {
	prev := plb.curr

	if plb.next < len(plb.frames) {
		plb.curr = plb.frames[plb.next]
	} else {
		plb.curr = layoutOnly(prev)
	}
	plb.next = min(plb.next+1, len(plb.frames)+1)

	if prev.joystickPresent != plb.curr.joystickPresent ||
		prev.gameController != plb.curr.gameController ||
		prev.numAxes != plb.curr.numAxes ||
		prev.numButtons != plb.curr.numButtons ||
		prev.numHats != plb.curr.numHats {
		plb.devicesChanged = true
	}

	clear(plb.keyDown[:])
	clear(plb.keyPressed[:])
	for _, sc := range plb.curr.keysDown {
		plb.keyDown[sc] = true
	}
	for _, sc := range plb.curr.keysPressed {
		plb.keyPressed[sc] = true
	}
	plb.mouseButtons = plb.curr.mouseButtons
}

// MousePresent implements the control.Source interface.
func (plb *Playback) MousePresent() bool {
	return plb.mousePresent
}

// MouseButtons implements the control.Source interface.
func (plb *Playback) MouseButtons() uint32 {
	return plb.mouseButtons
}

// MouseDelta implements the control.Source interface.
func (plb *Playback) MouseDelta() (int32, int32) {
	return plb.curr.dx, plb.curr.dy
}

// ClearMouseButton implements the control.Source interface.
func (plb *Playback) ClearMouseButton(mask uint32) {
	plb.mouseButtons &^= mask
}

// JoystickPresent implements the control.Source interface.
func (plb *Playback) JoystickPresent() bool {
	return plb.curr.joystickPresent
}

// JoystickLayout implements the control.Source interface.
func (plb *Playback) JoystickLayout() (int, int, int) {
	return plb.curr.numAxes, plb.curr.numButtons, plb.curr.numHats
}

// JoystickAxes implements the control.Source interface.
func (plb *Playback) JoystickAxes() []int32 {
	return plb.curr.axes
}

// JoystickButtons implements the control.Source interface.
func (plb *Playback) JoystickButtons() uint64 {
	return plb.curr.joyButtons
}

// ControllerButtons implements the control.Source interface.
func (plb *Playback) ControllerButtons() uint32 {
	return plb.curr.ctrlButtons
}

// IsGameController implements the control.Source interface.
func (plb *Playback) IsGameController() bool {
	return plb.curr.gameController
}

// KeyDown implements the control.Source interface.
func (plb *Playback) KeyDown(sc control.Scancode) bool {
	return plb.keyDown[sc]
}

// KeyPressed implements the control.Source interface.
func (plb *Playback) KeyPressed(sc control.Scancode) bool {
	return plb.keyPressed[sc]
}

// ClearKeyDown implements the control.Source interface.
func (plb *Playback) ClearKeyDown(sc control.Scancode) {
	plb.keyDown[sc] = false
}

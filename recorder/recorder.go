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
	"fmt"
	"io"

	"github.com/jetsetilly/mact/control"
	"github.com/jetsetilly/mact/curated"
	"github.com/jetsetilly/mact/logger"
)

// Sentinal error returned by the Recorder.
const (
	RecordingError = "recorder: %v"
)

// Recorder wraps a control.Source and writes a transcript of the input. It
// implements the control.Source interface.
//
// Errors writing the transcript do not interrupt the input. The first error
// stops the recording and is returned by Err() and End().
type Recorder struct {
	src    control.Source
	output io.WriteCloser
	timer  control.Timer

	frame  int
	header bool
	ended  bool
	err    error
}

// NewRecorder is the preferred method of initialisation for the Recorder type.
// The header of the transcript is written when Startup() is called.
func NewRecorder(src control.Source, output io.WriteCloser, timer control.Timer) (*Recorder, error) {
	if src == nil {
		return nil, curated.Errorf(RecordingError, "no input source")
	}
	if output == nil {
		return nil, curated.Errorf(RecordingError, "no output")
	}
	if timer == nil {
		return nil, curated.Errorf(RecordingError, "no timer")
	}

	return &Recorder{
		src:    src,
		output: output,
		timer:  timer,
	}, nil
}

func (rec *Recorder) write(s string) {
	if rec.err != nil || rec.ended {
		return
	}

	n, err := io.WriteString(rec.output, s)
	if err == nil && n != len(s) {
		err = fmt.Errorf("output truncated")
	}

	if err != nil {
		rec.err = curated.Errorf(RecordingError, err)
		logger.Log(logger.Allow, "recorder", rec.err)
	}
}

func (rec *Recorder) writeHeader() {
	lines := make([]string, numHeaderLines)
	lines[lineFormatID] = formatID
	lines[lineMousePresent] = formatBool(rec.src.MousePresent())

	for _, l := range lines {
		rec.write(l + "\n")
	}
	rec.header = true
}

// Err returns the first error encountered while writing the transcript.
func (rec *Recorder) Err() error {
	return rec.err
}

// Frames returns the number of frames recorded.
func (rec *Recorder) Frames() int {
	return rec.frame
}

// End the recording and close the output. Subsequent frames are not recorded
// but the Recorder still passes input through from the wrapped Source.
func (rec *Recorder) End() error {
	if rec.ended {
		return rec.err
	}
	rec.ended = true

	err := rec.output.Close()
	if err != nil && rec.err == nil {
		rec.err = curated.Errorf(RecordingError, err)
	}

	logger.Logf(logger.Allow, "recorder", "recorded %d frames", rec.frame)

	return rec.err
}

// Startup implements the control.Source interface.
func (rec *Recorder) Startup() error {
	if err := rec.src.Startup(); err != nil {
		return err
	}
	if !rec.header {
		rec.writeHeader()
	}
	return nil
}

// Shutdown implements the control.Source interface.
func (rec *Recorder) Shutdown() {
	rec.src.Shutdown()
}

// ScanDevices implements the control.Source interface.
func (rec *Recorder) ScanDevices() {
	rec.src.ScanDevices()
}

// PollEvents implements the control.Source interface.
func (rec *Recorder) PollEvents() {
	rec.src.PollEvents()

	if !rec.header || rec.ended || rec.err != nil {
		return
	}

	f := frame{
		number:          rec.frame,
		clock:           rec.timer(),
		joystickPresent: rec.src.JoystickPresent(),
		gameController:  rec.src.IsGameController(),
		mouseButtons:    rec.src.MouseButtons(),
		joyButtons:      rec.src.JoystickButtons(),
		ctrlButtons:     rec.src.ControllerButtons(),
	}
	f.axes = rec.src.JoystickAxes()
	f.axes = f.axes[:min(len(f.axes), control.MaxJoyAxes)]
	f.numAxes, f.numButtons, f.numHats = rec.src.JoystickLayout()
	f.dx, f.dy = rec.src.MouseDelta()

	for i := 1; i < control.NumScancodes; i++ {
		sc := control.Scancode(i)
		if rec.src.KeyDown(sc) {
			f.keysDown = append(f.keysDown, sc)
		}
		if rec.src.KeyPressed(sc) {
			f.keysPressed = append(f.keysPressed, sc)
		}
	}

	rec.write(f.String() + "\n")
	rec.frame++
}

// MousePresent implements the control.Source interface.
func (rec *Recorder) MousePresent() bool {
	return rec.src.MousePresent()
}

// MouseButtons implements the control.Source interface.
func (rec *Recorder) MouseButtons() uint32 {
	return rec.src.MouseButtons()
}

// MouseDelta implements the control.Source interface.
func (rec *Recorder) MouseDelta() (int32, int32) {
	return rec.src.MouseDelta()
}

// ClearMouseButton implements the control.Source interface.
func (rec *Recorder) ClearMouseButton(mask uint32) {
	rec.src.ClearMouseButton(mask)
}

// JoystickPresent implements the control.Source interface.
func (rec *Recorder) JoystickPresent() bool {
	return rec.src.JoystickPresent()
}

// JoystickLayout implements the control.Source interface.
func (rec *Recorder) JoystickLayout() (int, int, int) {
	return rec.src.JoystickLayout()
}

// JoystickAxes implements the control.Source interface.
func (rec *Recorder) JoystickAxes() []int32 {
	return rec.src.JoystickAxes()
}

// JoystickButtons implements the control.Source interface.
func (rec *Recorder) JoystickButtons() uint64 {
	return rec.src.JoystickButtons()
}

// ControllerButtons implements the control.Source interface.
func (rec *Recorder) ControllerButtons() uint32 {
	return rec.src.ControllerButtons()
}

// IsGameController implements the control.Source interface.
func (rec *Recorder) IsGameController() bool {
	return rec.src.IsGameController()
}

// KeyDown implements the control.Source interface.
func (rec *Recorder) KeyDown(sc control.Scancode) bool {
	return rec.src.KeyDown(sc)
}

// KeyPressed implements the control.Source interface.
func (rec *Recorder) KeyPressed(sc control.Scancode) bool {
	return rec.src.KeyPressed(sc)
}

// ClearKeyDown implements the control.Source interface.
func (rec *Recorder) ClearKeyDown(sc control.Scancode) {
	rec.src.ClearKeyDown(sc)
}

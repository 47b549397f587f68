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


package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/jetsetilly/mact/control"
	"github.com/jetsetilly/mact/logger"
	"github.com/jetsetilly/mact/modalflag"
	"github.com/jetsetilly/mact/recorder"
	"github.com/jetsetilly/mact/userinput"
	"github.com/jetsetilly/mact/userinput/sdlplatform"
	"github.com/jetsetilly/mact/version"
)

// SDL event handling must happen on the main thread
func init() {
	runtime.LockOSThread()
}

// #mainthread
func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch parses the arguments and runs the selected mode. Returns the value
// to use with os.Exit().
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "RECORD", "PLAYBACK")

	v, rev, _ := version.Version()
	md.AdditionalHelp(fmt.Sprintf("%s %s (%s)", version.ApplicationName, v, rev))

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = live(md, output, false)

	case "RECORD":
		err = live(md, output, true)

	case "PLAYBACK":
		err = playback(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// options common to all modes.
type options struct {
	tics   *int
	frames *int
	spam   *bool
	log    *bool
}

func addOptions(md *modalflag.Modes) options {
	return options{
		tics:   md.AddInt("tics", 35, "number of tics per second"),
		frames: md.AddInt("frames", 0, "stop after number of frames (zero for no limit)"),
		spam:   md.AddBool("spam", false, "log joystick axis conditioning"),
		log:    md.AddBool("log", false, "echo debugging log to stdout"),
	}
}

func (opts options) apply(output io.Writer) error {
	if *opts.tics <= 0 {
		return fmt.Errorf("tics must be greater than zero")
	}
	if *opts.frames < 0 {
		return fmt.Errorf("frames must not be negative")
	}

	if *opts.log {
		logger.SetEcho(output, true)
	} else {
		logger.SetEcho(nil, false)
	}

	return nil
}

// frameClock is a control.Timer that only changes between frames. The same
// clock is seen by the Control instance and by the Recorder.
type frameClock struct {
	start time.Time
	tics  int
	now   int32
}

func (clk *frameClock) advance() {
	clk.now = int32(time.Since(clk.start) * time.Duration(clk.tics) / time.Second)
}

func (clk *frameClock) timer() int32 {
	return clk.now
}

// live runs the pipeline with input from SDL. If record is true the input is
// written to the transcript file named by the first argument.
func live(md *modalflag.Modes, output io.Writer, record bool) error {
	md.NewMode()
	opts := addOptions(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	err = opts.apply(output)
	if err != nil {
		return err
	}

	clk := &frameClock{start: time.Now(), tics: *opts.tics}

	in := userinput.NewInput(sdlplatform.NewPlatform())
	var src control.Source = in

	var rec *recorder.Recorder
	if record {
		if len(md.RemainingArgs()) != 1 {
			return fmt.Errorf("%s mode requires a transcript file", md)
		}

		f, err := os.Create(md.GetArg(0))
		if err != nil {
			return err
		}

		rec, err = recorder.NewRecorder(in, f, clk.timer)
		if err != nil {
			f.Close()
			return err
		}
		src = rec
	} else if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	s, err := newSession(src, md, output)
	if err != nil {
		return err
	}

	err = s.start(clk.timer, *opts.tics)
	if err != nil {
		if rec != nil {
			rec.End()
		}
		return err
	}
	defer s.end()

	// the watcher is the Input instance regardless of whether the input is
	// being recorded
	s.watcher = in

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	ticker := time.NewTicker(time.Second / time.Duration(*opts.tics))
	defer ticker.Stop()

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Fprintln(output, "\r")
			done = true

		case <-ticker.C:
			clk.advance()
			s.step()

			done = in.Quit || s.quit || (*opts.frames > 0 && s.frame >= *opts.frames)
		}
	}

	if rec != nil {
		err = rec.End()
		if err != nil {
			return err
		}
		fmt.Fprintf(output, "! recorded %d frames\n", rec.Frames())
	}

	return nil
}

// playback runs the pipeline with input from the transcript file named by the
// first argument. The function mask of every frame is printed.
func playback(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	opts := addOptions(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	err = opts.apply(output)
	if err != nil {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("%s mode requires a transcript file", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	f, err := os.Open(md.GetArg(0))
	if err != nil {
		return err
	}
	defer f.Close()

	plb, err := recorder.NewPlayback(f)
	if err != nil {
		return err
	}

	s, err := newSession(plb, md, output)
	if err != nil {
		return err
	}
	s.verbose = true

	err = s.start(plb.Timer, *opts.tics)
	if err != nil {
		return err
	}
	defer s.end()

	for !s.quit && s.frame < plb.Frames() {
		if *opts.frames > 0 && s.frame >= *opts.frames {
			break // for loop
		}
		s.step()
	}

	return nil
}

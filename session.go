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
	"strconv"
	"strings"

	"github.com/jetsetilly/mact/console"
	"github.com/jetsetilly/mact/control"
	"github.com/jetsetilly/mact/curated"
	"github.com/jetsetilly/mact/modalflag"
)

// deviceWatcher is implemented by sources that know when a joystick has been
// connected or disconnected.
type deviceWatcher interface {
	DevicesChanged() bool
}

// session is the control pipeline shared by every mode. The Source given to
// newSession() decides where the input comes from.
type session struct {
	c     *control.Control
	prefs *control.Preferences
	con   *console.Console
	out   io.Writer

	watcher deviceWatcher

	frame     int
	lastState uint64
	quit      bool

	// print every frame, rather than only the frames where something has
	// changed
	verbose bool
}

func newSession(src control.Source, md *modalflag.Modes, out io.Writer) (*session, error) {
	s := &session{
		out: out,
		con: console.NewConsole(out),
	}

	if w, ok := src.(deviceWatcher); ok {
		s.watcher = w
	}

	s.c = control.NewControl(src, s.con)

	var err error
	s.prefs, err = control.NewPreferences(s.c)
	if err != nil {
		return nil, err
	}

	err = s.prefs.BindFlag("control.joystick.spam", md.Lookup("spam"))
	if err != nil {
		return nil, err
	}

	// reload so that the bound flag takes effect
	err = s.prefs.Load()
	if err != nil {
		return nil, err
	}

	err = s.addCommands()
	if err != nil {
		return nil, err
	}

	return s, nil
}

// start the Control instance and define the game functions.
func (s *session) start(timer control.Timer, tics int) error {
	err := s.c.Startup(timer, int32(tics))
	if err != nil {
		return err
	}
	defineFunctions(s.c)
	return nil
}

func (s *session) end() {
	s.c.Shutdown()
	s.con.Destroy()
}

func (s *session) addCommands() error {
	commands := map[string]console.Command{
		"quit": func(_ *console.Console, _ *console.Tokens) error {
			s.quit = true
			return nil
		},
		"bind": func(con *console.Console, tk *console.Tokens) error {
			sc, err := scancodeArg(tk)
			if err != nil {
				return err
			}
			cmd := tk.Remainder()
			if cmd == "" {
				b := s.c.KeyBind(sc)
				con.Printf("%#02x: %q\n", uint8(sc), b.Command)
				return nil
			}
			s.c.BindKey(sc, cmd, false, fmt.Sprintf("%#02x", uint8(sc)))
			return nil
		},
		"unbind": func(_ *console.Console, tk *console.Tokens) error {
			sc, err := scancodeArg(tk)
			if err != nil {
				return err
			}
			s.c.FreeKeyBind(sc)
			return nil
		},
		"prefs": func(con *console.Console, _ *console.Tokens) error {
			con.Printf("%s", s.prefs.String())
			return nil
		},
		"saveprefs": func(_ *console.Console, _ *console.Tokens) error {
			return s.prefs.Save()
		},
		"sensitivity": func(con *console.Console, tk *console.Tokens) error {
			arg, ok := tk.Get()
			if !ok {
				con.Printf("%.2f\n", s.c.MouseSensitivity())
				return nil
			}
			v, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return curated.Errorf("sensitivity: %v", err)
			}
			return s.prefs.MouseSensitivity.Set(v)
		},
	}

	for name, cmd := range commands {
		if err := s.con.Add(name, cmd); err != nil {
			return err
		}
	}

	return nil
}

// scancodeArg reads a scancode from the tokens. The scancode can be decimal
// or hexadecimal (with a leading 0x).
func scancodeArg(tk *console.Tokens) (control.Scancode, error) {
	arg, ok := tk.Get()
	if !ok {
		return control.ScNone, curated.Errorf("scancode required")
	}
	v, err := strconv.ParseUint(arg, 0, 8)
	if err != nil || v == 0 {
		return control.ScNone, curated.Errorf("invalid scancode: %s", arg)
	}
	return control.Scancode(v), nil
}

// step runs one frame of the control pipeline and reports the result.
func (s *session) step() {
	var info control.Info
	s.c.GetInput(&info)

	if s.watcher != nil && s.watcher.DevicesChanged() {
		s.c.ScanForControllers()
	}

	s.c.ProcessBinds()

	state := s.c.ButtonState()
	menu := s.c.UserInput(nil)

	if s.verbose {
		fmt.Fprintf(s.out, "%6d %016x %s\n", s.frame, state, describeMask(state))
	} else {
		var line []string

		if state != s.lastState {
			line = append(line, describeChange(s.lastState, state))
		}
		if info != (control.Info{}) {
			line = append(line, fmt.Sprintf("[%+v]", info))
		}
		if *menu != (control.UserInput{}) {
			line = append(line, fmt.Sprintf("menu %s", describeMenu(*menu)))
		}

		if len(line) > 0 {
			fmt.Fprintf(s.out, "%6d %s\n", s.frame, strings.Join(line, " "))
		}
	}

	if *menu != (control.UserInput{}) {
		s.c.ClearUserInput(nil)
	}

	s.lastState = state
	s.frame++
}

func describeMenu(in control.UserInput) string {
	s := []string{in.Dir.String()}
	if in.Advance {
		s = append(s, "advance")
	}
	if in.Return {
		s = append(s, "return")
	}
	if in.Escape {
		s = append(s, "escape")
	}
	return strings.Join(s, " ")
}

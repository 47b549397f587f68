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
	"os"
	"testing"

	"github.com/jetsetilly/mact/control"
	"github.com/jetsetilly/mact/test"
	"github.com/spf13/pflag"
)

// inResourceDir runs the test in a temporary directory with a local resource
// directory.
func inResourceDir(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(wd) })
	test.DemandSuccess(t, os.Mkdir(".mact", 0o700))
}

func TestPreferencesDefaults(t *testing.T) {
	inResourceDir(t)

	c := control.NewControl(&fakeSource{}, nil)
	p, err := control.NewPreferences(c)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, c.MouseSensitivity(), float32(control.DefaultMouseSensitivity))
	test.ExpectSuccess(t, c.BindsEnabled())
	test.ExpectFailure(t, c.JoystickConsoleSpam)

	dz, sat := c.JoystickDeadzone(3)
	test.ExpectEquality(t, dz, uint16(control.DefaultAxisDeadzone))
	test.ExpectEquality(t, sat, uint16(control.DefaultAxisSaturation))

	test.ExpectSuccess(t, len(p.String()) > 0)
}

func TestPreferencesHooks(t *testing.T) {
	inResourceDir(t)

	c := control.NewControl(&fakeSource{}, nil)
	p, err := control.NewPreferences(c)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, p.MouseSensitivity.Set(3.5))
	test.ExpectEquality(t, c.MouseSensitivity(), float32(3.5))

	test.ExpectSuccess(t, p.MouseAxisSensitivity[1].Set(0.5))
	test.ExpectEquality(t, c.AnalogAxisSensitivity(1, control.DeviceMouse), float32(0.5))

	test.ExpectSuccess(t, p.AxisDeadzone[2].Set(1500))
	test.ExpectSuccess(t, p.AxisSaturation[2].Set(8000))
	dz, sat := c.JoystickDeadzone(2)
	test.ExpectEquality(t, dz, uint16(1500))
	test.ExpectEquality(t, sat, uint16(8000))

	// values outside of the scale are refused
	test.ExpectFailure(t, p.AxisDeadzone[2].Set(10001))
	test.ExpectFailure(t, p.AxisSaturation[2].Set(-1))
	dz, sat = c.JoystickDeadzone(2)
	test.ExpectEquality(t, dz, uint16(1500))
	test.ExpectEquality(t, sat, uint16(8000))

	test.ExpectSuccess(t, p.AxisSensitivity[5].Set(2.0))
	test.ExpectEquality(t, c.AnalogAxisSensitivity(5, control.DeviceJoystick), float32(2.0))

	test.ExpectSuccess(t, p.BindsEnabled.Set(false))
	test.ExpectFailure(t, c.BindsEnabled())

	test.ExpectSuccess(t, p.JoystickConsoleSpam.Set(true))
	test.ExpectSuccess(t, c.JoystickConsoleSpam)
}

func TestPreferencesInvert(t *testing.T) {
	inResourceDir(t)

	src := &fakeSource{joyPresent: true, axes: make([]int32, 6)}
	c := control.NewControl(src, nil)
	p, err := control.NewPreferences(c)
	test.DemandSuccess(t, err)

	clk := &fakeClock{}
	test.DemandSuccess(t, c.Startup(clk.now, 120))
	c.MapAnalogAxis(4, control.AnalogTurning, control.DeviceJoystick)

	src.axes[4] = 32767
	test.ExpectEquality(t, frame(c, clk, 0).DYaw, int32(control.MaxScaledControlValue))

	test.ExpectSuccess(t, p.AxisInvert[4].Set(true))
	test.ExpectEquality(t, frame(c, clk, 10).DYaw, int32(-control.MaxScaledControlValue))
}

func TestPreferencesSaveLoad(t *testing.T) {
	inResourceDir(t)

	c := control.NewControl(&fakeSource{}, nil)
	p, err := control.NewPreferences(c)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, p.MouseSensitivity.Set(2.5))
	test.ExpectSuccess(t, p.AxisDeadzone[0].Set(3000))
	test.ExpectSuccess(t, p.AxisInvert[1].Set(true))
	test.DemandSuccess(t, p.Save())

	// a new control instance picks up the saved values
	c2 := control.NewControl(&fakeSource{}, nil)
	p2, err := control.NewPreferences(c2)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c2.MouseSensitivity(), float32(2.5))
	dz, _ := c2.JoystickDeadzone(0)
	test.ExpectEquality(t, dz, uint16(3000))
	test.ExpectSuccess(t, p2.AxisInvert[1].Get().(bool))

	// reverting to defaults changes the live instance but not the file
	test.DemandSuccess(t, p2.SetDefaults())
	test.ExpectEquality(t, c2.MouseSensitivity(), float32(control.DefaultMouseSensitivity))
	test.DemandSuccess(t, p2.Load())
	test.ExpectEquality(t, c2.MouseSensitivity(), float32(2.5))
}

func TestPreferencesFlag(t *testing.T) {
	inResourceDir(t)

	c := control.NewControl(&fakeSource{}, nil)
	p, err := control.NewPreferences(c)
	test.DemandSuccess(t, err)

	flgs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flgs.Bool("spam", false, "joystick console spam")
	test.DemandSuccess(t, flgs.Parse([]string{"--spam"}))

	test.ExpectSuccess(t, p.BindFlag("control.joystick.spam", flgs.Lookup("spam")))
	test.ExpectSuccess(t, p.BindFlag("control.joystick.spam", nil))
	test.DemandSuccess(t, p.Load())
	test.ExpectSuccess(t, c.JoystickConsoleSpam)
}

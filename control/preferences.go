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

import (
	"fmt"

	"github.com/jetsetilly/mact/paths"
	"github.com/jetsetilly/mact/prefs"
	"github.com/spf13/pflag"
)

// Preferences for the Control type. Changing a value changes the live Control
// instance.
type Preferences struct {
	c   *Control
	dsk *prefs.Disk

	MouseSensitivity     prefs.Float
	MouseAxisSensitivity [numMouseAxes]prefs.Float

	AxisDeadzone    [MaxJoyAxes]prefs.Int
	AxisSaturation  [MaxJoyAxes]prefs.Int
	AxisSensitivity [MaxJoyAxes]prefs.Float
	AxisInvert      [MaxJoyAxes]prefs.Bool

	BindsEnabled        prefs.Bool
	JoystickConsoleSpam prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the preferences file in the
// resource directory.
func NewPreferences(c *Control) (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p := &Preferences{c: c}

	p.MouseSensitivity.SetHookPost(func(v prefs.Value) error {
		c.SetMouseSensitivity(float32(v.(float64)))
		return nil
	})

	for i := range numMouseAxes {
		p.MouseAxisSensitivity[i].SetHookPost(func(v prefs.Value) error {
			c.SetAnalogAxisSensitivity(i, float32(v.(float64)), DeviceMouse)
			return nil
		})
	}

	for i := range MaxJoyAxes {
		p.AxisDeadzone[i].SetHookPre(checkScaled10k)
		p.AxisDeadzone[i].SetHookPost(func(v prefs.Value) error {
			_, sat := c.JoystickDeadzone(i)
			c.SetJoystickDeadzone(i, uint16(v.(int)), sat)
			return nil
		})
		p.AxisSaturation[i].SetHookPre(checkScaled10k)
		p.AxisSaturation[i].SetHookPost(func(v prefs.Value) error {
			dz, _ := c.JoystickDeadzone(i)
			c.SetJoystickDeadzone(i, dz, uint16(v.(int)))
			return nil
		})
		p.AxisSensitivity[i].SetHookPost(func(v prefs.Value) error {
			c.SetAnalogAxisSensitivity(i, float32(v.(float64)), DeviceJoystick)
			return nil
		})
		p.AxisInvert[i].SetHookPost(func(v prefs.Value) error {
			c.SetAnalogAxisInvert(i, v.(bool), DeviceJoystick)
			return nil
		})
	}

	p.BindsEnabled.SetHookPost(func(v prefs.Value) error {
		c.SetBindsEnabled(v.(bool))
		return nil
	})

	p.JoystickConsoleSpam.SetHookPost(func(v prefs.Value) error {
		c.JoystickConsoleSpam = v.(bool)
		return nil
	})

	if err := p.SetDefaults(); err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Add("control.mouse.sensitivity", &p.MouseSensitivity); err != nil {
		return nil, err
	}
	for i := range numMouseAxes {
		if err := p.dsk.Add(fmt.Sprintf("control.mouse.axis%d.sensitivity", i), &p.MouseAxisSensitivity[i]); err != nil {
			return nil, err
		}
	}
	for i := range MaxJoyAxes {
		key := fmt.Sprintf("control.joystick.axis%d", i)
		if err := p.dsk.Add(key+".deadzone", &p.AxisDeadzone[i]); err != nil {
			return nil, err
		}
		if err := p.dsk.Add(key+".saturation", &p.AxisSaturation[i]); err != nil {
			return nil, err
		}
		if err := p.dsk.Add(key+".sensitivity", &p.AxisSensitivity[i]); err != nil {
			return nil, err
		}
		if err := p.dsk.Add(key+".invert", &p.AxisInvert[i]); err != nil {
			return nil, err
		}
	}
	if err := p.dsk.Add("control.binds", &p.BindsEnabled); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("control.joystick.spam", &p.JoystickConsoleSpam); err != nil {
		return nil, err
	}

	if err := p.dsk.Load(true); err != nil {
		return nil, err
	}

	return p, nil
}

func checkScaled10k(v prefs.Value) error {
	if n := v.(int); n < 0 || n > scaled10kMax {
		return fmt.Errorf("value must be between 0 and %d", scaled10kMax)
	}
	return nil
}

// SetDefaults reverts all preferences to the default values.
func (p *Preferences) SetDefaults() error {
	if err := p.MouseSensitivity.Set(DefaultMouseSensitivity); err != nil {
		return err
	}
	for i := range numMouseAxes {
		if err := p.MouseAxisSensitivity[i].Set(DefaultAxisSensitivity); err != nil {
			return err
		}
	}
	for i := range MaxJoyAxes {
		if err := p.AxisDeadzone[i].Set(DefaultAxisDeadzone); err != nil {
			return err
		}
		if err := p.AxisSaturation[i].Set(DefaultAxisSaturation); err != nil {
			return err
		}
		if err := p.AxisSensitivity[i].Set(DefaultAxisSensitivity); err != nil {
			return err
		}
		if err := p.AxisInvert[i].Set(false); err != nil {
			return err
		}
	}
	if err := p.BindsEnabled.Set(true); err != nil {
		return err
	}
	return p.JoystickConsoleSpam.Set(false)
}

// Load preferences from disk. A missing preferences file is not an error.
func (p *Preferences) Load() error {
	return p.dsk.Load(true)
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// BindFlag causes the value of the command line flag to be used in preference
// to the value in the preferences file, if the flag has been set.
func (p *Preferences) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return nil
	}
	return p.dsk.BindFlag(key, flag)
}

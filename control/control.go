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
	"github.com/jetsetilly/mact/assert"
	"github.com/jetsetilly/mact/curated"
	"github.com/jetsetilly/mact/logger"
)

// Error pattern returned by Control.Startup() if the Source could not be
// started.
const StartupError = "control: startup: %v"

// Control is the input state for a single game session.
type Control struct {
	src Source
	dsp Dispatcher

	started bool

	timer Timer
	clock int32

	// the number of tics per second as given to Startup(). used to convert
	// the menu repeat delays into tics
	ticRate int32

	// the window in which a second click of a button is considered to be a
	// double click
	doubleClickSpeed int32

	mousePresent    bool
	mouseEnabled    bool
	joyPresent      bool
	joystickEnabled bool

	// JoystickConsoleSpam causes the conditioning of every joystick axis to be
	// logged
	JoystickConsoleSpam bool

	// ThreadCheck causes calls from a goroutine other than the one that
	// called Startup() to be logged
	ThreadCheck bool
	goroutine   assert.Goroutine

	// the active set of functions for the current frame and the active set
	// of the previous frame
	buttonState     uint64
	buttonHeldState uint64

	lastSeen LastSeen

	flags      [NumFunctions]flag
	keyMapping [NumFunctions]keyMapping

	// scratch space for the function state of the mapped device inputs.
	// cleared at the end of every frame
	buttonFlags [NumFunctions]bool

	mouseSensitivity     float32
	mouseAxesSensitivity [numMouseAxes]float32

	numJoyAxes         int
	joyAxesMap         [MaxJoyAxes]axisMapping
	joyAxes            [MaxJoyAxes]axisState
	lastJoyAxes        [MaxJoyAxes]axisState
	joyAxesSensitivity [MaxJoyAxes]float32
	joyAxesInvert      [MaxJoyAxes]bool
	joyDeadzone        [MaxJoyAxes]uint16
	joySaturation      [MaxJoyAxes]uint16

	mouse    *buttonSet
	joystick *buttonSet

	binds        [MaxBoundKeys + MaxMouseButtons]Bind
	bindsEnabled bool

	userInput              UserInput
	userInputDelay         int32
	lastUserInputDirection Direction
	advanceCleared         bool
	returnCleared          bool
	escapeCleared          bool

	spam logger.Permission
}

// NewControl is the preferred method of initialisation for the Control type.
// The Dispatcher can be nil, in which case bound commands are ignored.
func NewControl(src Source, dsp Dispatcher) *Control {
	c := &Control{
		src:              src,
		dsp:              dsp,
		mouseSensitivity: DefaultMouseSensitivity,
		userInputDelay:   -1,
		mouse:            newButtonSet(MaxMouseButtons),
		joystick:         newButtonSet(MaxJoyButtons),
	}
	c.timer = c.internalTimer
	c.spam = spamPermission{c: c}

	for i := range MaxJoyAxes {
		c.joyDeadzone[i] = DefaultAxisDeadzone
		c.joySaturation[i] = DefaultAxisSaturation
	}

	c.ClearAssignments()

	return c
}

// internalTimer is used when no Timer is given to Startup(). Every call
// advances the clock by five tics.
func (c *Control) internalTimer() int32 {
	c.clock += 5
	return c.clock
}

func (c *Control) time() int32 {
	return c.timer()
}

// Startup prepares the Source and resets the state of all functions. The
// timer argument can be nil, in which case an internal counter is used.
//
// Calling Startup() when Control has already been started does nothing and
// returns no error.
func (c *Control) Startup(timer Timer, ticsPerSecond int32) error {
	if c.started {
		return nil
	}

	if timer != nil {
		c.timer = timer
	} else {
		c.timer = c.internalTimer
	}

	c.ticRate = ticsPerSecond
	c.doubleClickSpeed = (ticsPerSecond * 57) / 100
	if c.doubleClickSpeed <= 0 {
		c.doubleClickSpeed = 1
	}

	if err := c.src.Startup(); err != nil {
		return curated.Errorf(StartupError, err)
	}

	c.mouse.num = MaxMouseButtons
	c.mousePresent = c.src.MousePresent()
	c.mouseEnabled = c.mousePresent

	c.resetJoystickValues()

	c.buttonState = 0
	c.buttonHeldState = 0
	for i := range c.flags {
		c.flags[i].used = false
	}

	c.started = true
	c.goroutine.Record()

	logger.Logf(logger.Allow, "control", "started: double click speed %d tics", c.doubleClickSpeed)
	if c.mousePresent {
		logger.Log(logger.Allow, "control", "mouse present")
	}
	if c.joyPresent {
		logger.Logf(logger.Allow, "control", "joystick present: %d axes, %d buttons", c.numJoyAxes, c.joystick.num)
	}

	return nil
}

// Shutdown frees all binds and shuts down the Source. Does nothing if Control
// has not been started.
func (c *Control) Shutdown() {
	if !c.started {
		return
	}

	c.ClearAllBinds()
	c.src.Shutdown()

	c.started = false
	c.goroutine.Forget()

	logger.Log(logger.Allow, "control", "shutdown")
}

// Started returns true if Startup() has been called successfully and
// Shutdown() has not been called since.
func (c *Control) Started() bool {
	return c.started
}

// DoubleClickSpeed returns the double click window in tics.
func (c *Control) DoubleClickSpeed() int32 {
	return c.doubleClickSpeed
}

// ScanForControllers asks the Source to look for new joysticks and updates
// the number of axes and buttons.
func (c *Control) ScanForControllers() {
	c.src.ScanDevices()
	c.resetJoystickValues()
	logger.Logf(logger.Allow, "control", "joystick scan: %d axes, %d buttons", c.numJoyAxes, c.joystick.num)
}

func (c *Control) resetJoystickValues() {
	axes, buttons, hats := c.src.JoystickLayout()

	// the four directions of the first hat are treated as buttons
	if hats > 0 {
		buttons += 4
	}

	c.numJoyAxes = max(0, min(MaxJoyAxes, axes))
	c.joystick.num = max(0, min(MaxJoyButtons, buttons))
	c.joyPresent = c.src.JoystickPresent()
	c.joystickEnabled = c.joyPresent

	if !c.joystickEnabled {
		c.releaseJoystick()
	}
}

// releaseJoystick forgets the axis and button state of the joystick. Used when
// the joystick is disabled or disappears so that its last reading does not
// persist.
func (c *Control) releaseJoystick() {
	c.joyAxes = [MaxJoyAxes]axisState{}
	c.lastJoyAxes = [MaxJoyAxes]axisState{}
	c.joystick.release()
}

// MousePresent returns true if the Source reported a mouse at startup.
func (c *Control) MousePresent() bool {
	return c.mousePresent
}

// JoystickPresent returns true if the Source reported a joystick at startup or
// during the most recent call to ScanForControllers().
func (c *Control) JoystickPresent() bool {
	return c.joyPresent
}

// SetMouseEnabled enables or disables the mouse. The mouse can only be enabled
// if it is present.
func (c *Control) SetMouseEnabled(enabled bool) {
	c.mouseEnabled = enabled && c.mousePresent
	if !c.mouseEnabled {
		c.mouse.release()
	}
}

// SetJoystickEnabled enables or disables the joystick. The joystick can only
// be enabled if it is present.
func (c *Control) SetJoystickEnabled(enabled bool) {
	c.joystickEnabled = enabled && c.joyPresent
	if !c.joystickEnabled {
		c.releaseJoystick()
	}
}

// LastSeenInput returns the class of device that most recently produced
// meaningful input.
func (c *Control) LastSeenInput() LastSeen {
	return c.lastSeen
}

func (c *Control) checkThread(caller string) {
	if c.ThreadCheck && !c.goroutine.Check() {
		logger.Logf(logger.Allow, "control", "%s: called from goroutine %d", caller, assert.GetGoRoutineID())
	}
}

func (c *Control) dispatch(cmd string) {
	if c.dsp == nil {
		return
	}
	if err := c.dsp.Dispatch(cmd); err != nil {
		logger.Log(logger.Allow, "control", err)
	}
}

// spamPermission allows logging when JoystickConsoleSpam is set.
type spamPermission struct {
	c *Control
}

func (p spamPermission) AllowLogging() bool {
	return p.c.JoystickConsoleSpam
}

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
	"strconv"
	"strings"

	"github.com/jetsetilly/mact/control"
)

// transcript file format
// ----------------------
//
// mact transcript 1
// <mouse present>
// <frame>, <clock>, <joystick present>, <game controller>, <layout>, <mouse buttons>, <mouse delta>, <joystick buttons>, <controller buttons>, <axes>, <keys down>, <keys pressed>
// ...
//
// booleans are 0 or 1. the layout is axes:buttons:hats and the mouse delta is
// dx:dy. button masks and scancodes are hexadecimal. lists are separated by
// colons and an empty list is written as a hyphen.

const formatID = "mact transcript 1"

const (
	lineFormatID int = iota
	lineMousePresent
	numHeaderLines
)

const (
	fieldFrame int = iota
	fieldClock
	fieldJoystickPresent
	fieldGameController
	fieldLayout
	fieldMouseButtons
	fieldMouseDelta
	fieldJoystickButtons
	fieldControllerButtons
	fieldAxes
	fieldKeysDown
	fieldKeysPressed
	numFields
)

const (
	fieldSep  = ", "
	listSep   = ":"
	emptyList = "-"
)

// frame is the state of the devices after one call to PollEvents().
type frame struct {
	number int
	clock  int32

	joystickPresent bool
	gameController  bool
	numAxes         int
	numButtons      int
	numHats         int

	mouseButtons uint32
	dx, dy       int32
	joyButtons   uint64
	ctrlButtons  uint32
	axes         []int32

	keysDown    []control.Scancode
	keysPressed []control.Scancode
}

func formatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func formatList[T any](l []T, f func(T) string) string {
	if len(l) == 0 {
		return emptyList
	}
	s := make([]string, len(l))
	for i := range l {
		s[i] = f(l[i])
	}
	return strings.Join(s, listSep)
}

func formatScancode(sc control.Scancode) string {
	return strconv.FormatUint(uint64(sc), 16)
}

func formatAxis(v int32) string {
	return strconv.FormatInt(int64(v), 10)
}

func (f *frame) String() string {
	fields := make([]string, numFields)
	fields[fieldFrame] = strconv.Itoa(f.number)
	fields[fieldClock] = strconv.FormatInt(int64(f.clock), 10)
	fields[fieldJoystickPresent] = formatBool(f.joystickPresent)
	fields[fieldGameController] = formatBool(f.gameController)
	fields[fieldLayout] = fmt.Sprintf("%d%s%d%s%d", f.numAxes, listSep, f.numButtons, listSep, f.numHats)
	fields[fieldMouseButtons] = strconv.FormatUint(uint64(f.mouseButtons), 16)
	fields[fieldMouseDelta] = fmt.Sprintf("%d%s%d", f.dx, listSep, f.dy)
	fields[fieldJoystickButtons] = strconv.FormatUint(f.joyButtons, 16)
	fields[fieldControllerButtons] = strconv.FormatUint(uint64(f.ctrlButtons), 16)
	fields[fieldAxes] = formatList(f.axes, formatAxis)
	fields[fieldKeysDown] = formatList(f.keysDown, formatScancode)
	fields[fieldKeysPressed] = formatList(f.keysPressed, formatScancode)
	return strings.Join(fields, fieldSep)
}

var fieldNames = [numFields]string{
	"frame", "clock", "joystick present", "game controller", "layout",
	"mouse buttons", "mouse delta", "joystick buttons", "controller buttons",
	"axes", "keys down", "keys pressed",
}

func parseBool(s string) (bool, error) {
	switch s {
	case "0":
		return false, nil
	case "1":
		return true, nil
	}
	return false, fmt.Errorf("not a boolean: %q", s)
}

func parseList[T any](s string, f func(string) (T, error)) ([]T, error) {
	if s == emptyList {
		return nil, nil
	}
	p := strings.Split(s, listSep)
	l := make([]T, len(p))
	for i := range p {
		var err error
		l[i], err = f(p[i])
		if err != nil {
			return nil, err
		}
	}
	return l, nil
}

func parseScancode(s string) (control.Scancode, error) {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return control.ScNone, err
	}
	if v == 0 {
		return control.ScNone, fmt.Errorf("scancode zero is not valid")
	}
	return control.Scancode(v), nil
}

func parseAxis(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, err
	}
	if v < -control.MaxScaledControlValue || v > control.MaxScaledControlValue {
		return 0, fmt.Errorf("axis value out of range: %d", v)
	}
	return int32(v), nil
}

func parseInt32Pair(s string) (int32, int32, error) {
	p := strings.Split(s, listSep)
	if len(p) != 2 {
		return 0, 0, fmt.Errorf("expected two values: %q", s)
	}
	a, err := strconv.ParseInt(p[0], 10, 32)
	if err != nil {
		return 0, 0, err
	}
	b, err := strconv.ParseInt(p[1], 10, 32)
	if err != nil {
		return 0, 0, err
	}
	return int32(a), int32(b), nil
}

func parseFrame(line string) (frame, error) {
	var f frame

	toks := strings.Split(line, fieldSep)
	if len(toks) != numFields {
		return f, fmt.Errorf("expected %d fields, found %d", numFields, len(toks))
	}

	// wrap errors with the name of the field
	var field int
	wrap := func(err error) error {
		return fmt.Errorf("%s: %w", fieldNames[field], err)
	}

	var err error
	var v uint64

	field = fieldFrame
	f.number, err = strconv.Atoi(toks[field])
	if err != nil {
		return f, wrap(err)
	}

	field = fieldClock
	v64, err := strconv.ParseInt(toks[field], 10, 32)
	if err != nil {
		return f, wrap(err)
	}
	f.clock = int32(v64)

	field = fieldJoystickPresent
	f.joystickPresent, err = parseBool(toks[field])
	if err != nil {
		return f, wrap(err)
	}

	field = fieldGameController
	f.gameController, err = parseBool(toks[field])
	if err != nil {
		return f, wrap(err)
	}

	field = fieldLayout
	layout, err := parseList(toks[field], strconv.Atoi)
	if err != nil {
		return f, wrap(err)
	}
	if len(layout) != 3 {
		return f, wrap(fmt.Errorf("expected three values: %q", toks[field]))
	}
	f.numAxes, f.numButtons, f.numHats = layout[0], layout[1], layout[2]

	field = fieldMouseButtons
	v, err = strconv.ParseUint(toks[field], 16, 32)
	if err != nil {
		return f, wrap(err)
	}
	f.mouseButtons = uint32(v)

	field = fieldMouseDelta
	f.dx, f.dy, err = parseInt32Pair(toks[field])
	if err != nil {
		return f, wrap(err)
	}

	field = fieldJoystickButtons
	f.joyButtons, err = strconv.ParseUint(toks[field], 16, 64)
	if err != nil {
		return f, wrap(err)
	}

	field = fieldControllerButtons
	v, err = strconv.ParseUint(toks[field], 16, 32)
	if err != nil {
		return f, wrap(err)
	}
	f.ctrlButtons = uint32(v)

	field = fieldAxes
	f.axes, err = parseList(toks[field], parseAxis)
	if err != nil {
		return f, wrap(err)
	}
	if len(f.axes) > control.MaxJoyAxes {
		return f, wrap(fmt.Errorf("too many axes: %d", len(f.axes)))
	}

	field = fieldKeysDown
	f.keysDown, err = parseList(toks[field], parseScancode)
	if err != nil {
		return f, wrap(err)
	}

	field = fieldKeysPressed
	f.keysPressed, err = parseList(toks[field], parseScancode)
	if err != nil {
		return f, wrap(err)
	}

	return f, nil
}

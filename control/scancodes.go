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

// Scancode identifies a key on the keyboard. Values follow the numbering of
// the PC keyboard scan code set 1, with extended keys having the high bit set.
// Scancode zero is never a valid key.
type Scancode uint8

// NumScancodes is the size of the keyboard state tables. It is also the number
// of keys that can have a command bound to them.
const NumScancodes = 256

// MaxBoundKeys is the number of keyboard keys that can be bound to a command.
const MaxBoundKeys = NumScancodes

// List of named scancodes.
const (
	ScNone         Scancode = 0x00
	ScEscape       Scancode = 0x01
	Sc1            Scancode = 0x02
	Sc2            Scancode = 0x03
	Sc3            Scancode = 0x04
	Sc4            Scancode = 0x05
	Sc5            Scancode = 0x06
	Sc6            Scancode = 0x07
	Sc7            Scancode = 0x08
	Sc8            Scancode = 0x09
	Sc9            Scancode = 0x0a
	Sc0            Scancode = 0x0b
	ScMinus        Scancode = 0x0c
	ScEquals       Scancode = 0x0d
	ScBackSpace    Scancode = 0x0e
	ScTab          Scancode = 0x0f
	ScQ            Scancode = 0x10
	ScW            Scancode = 0x11
	ScE            Scancode = 0x12
	ScR            Scancode = 0x13
	ScT            Scancode = 0x14
	ScY            Scancode = 0x15
	ScU            Scancode = 0x16
	ScI            Scancode = 0x17
	ScO            Scancode = 0x18
	ScP            Scancode = 0x19
	ScOpenBracket  Scancode = 0x1a
	ScCloseBracket Scancode = 0x1b
	ScEnter        Scancode = 0x1c
	ScLeftControl  Scancode = 0x1d
	ScA            Scancode = 0x1e
	ScS            Scancode = 0x1f
	ScD            Scancode = 0x20
	ScF            Scancode = 0x21
	ScG            Scancode = 0x22
	ScH            Scancode = 0x23
	ScJ            Scancode = 0x24
	ScK            Scancode = 0x25
	ScL            Scancode = 0x26
	ScSemiColon    Scancode = 0x27
	ScQuote        Scancode = 0x28
	ScTilde        Scancode = 0x29
	ScLeftShift    Scancode = 0x2a
	ScBackSlash    Scancode = 0x2b
	ScZ            Scancode = 0x2c
	ScX            Scancode = 0x2d
	ScC            Scancode = 0x2e
	ScV            Scancode = 0x2f
	ScB            Scancode = 0x30
	ScN            Scancode = 0x31
	ScM            Scancode = 0x32
	ScComma        Scancode = 0x33
	ScPeriod       Scancode = 0x34
	ScSlash        Scancode = 0x35
	ScRightShift   Scancode = 0x36
	ScKpadStar     Scancode = 0x37
	ScLeftAlt      Scancode = 0x38
	ScSpace        Scancode = 0x39
	ScCapsLock     Scancode = 0x3a
	ScF1           Scancode = 0x3b
	ScF2           Scancode = 0x3c
	ScF3           Scancode = 0x3d
	ScF4           Scancode = 0x3e
	ScF5           Scancode = 0x3f
	ScF6           Scancode = 0x40
	ScF7           Scancode = 0x41
	ScF8           Scancode = 0x42
	ScF9           Scancode = 0x43
	ScF10          Scancode = 0x44
	ScNumLock      Scancode = 0x45
	ScScrollLock   Scancode = 0x46
	ScKpad7        Scancode = 0x47
	ScKpad8        Scancode = 0x48
	ScKpad9        Scancode = 0x49
	ScKpadMinus    Scancode = 0x4a
	ScKpad4        Scancode = 0x4b
	ScKpad5        Scancode = 0x4c
	ScKpad6        Scancode = 0x4d
	ScKpadPlus     Scancode = 0x4e
	ScKpad1        Scancode = 0x4f
	ScKpad2        Scancode = 0x50
	ScKpad3        Scancode = 0x51
	ScKpad0        Scancode = 0x52
	ScKpadPeriod   Scancode = 0x53
	ScF11          Scancode = 0x57
	ScF12          Scancode = 0x58
	ScPause        Scancode = 0x59
	ScKpadEnter    Scancode = 0x9c
	ScRightControl Scancode = 0x9d
	ScKpadSlash    Scancode = 0xb5
	ScPrintScreen  Scancode = 0xb7
	ScRightAlt     Scancode = 0xb8
	ScHome         Scancode = 0xc7
	ScUpArrow      Scancode = 0xc8
	ScPgUp         Scancode = 0xc9
	ScLeftArrow    Scancode = 0xcb
	ScRightArrow   Scancode = 0xcd
	ScEnd          Scancode = 0xcf
	ScDownArrow    Scancode = 0xd0
	ScPgDn         Scancode = 0xd1
	ScInsert       Scancode = 0xd2
	ScDelete       Scancode = 0xd3
	ScLeftGui      Scancode = 0xdb
	ScRightGui     Scancode = 0xdc
	ScApplication  Scancode = 0xdd
)

// Game controller buttons as reported by Source.ControllerButtons(). The
// value of each constant is the bit number in the mask.
const (
	ControllerButtonA = iota
	ControllerButtonB
	ControllerButtonX
	ControllerButtonY
	ControllerButtonBack
	ControllerButtonGuide
	ControllerButtonStart
	ControllerButtonLeftStick
	ControllerButtonRightStick
	ControllerButtonLeftShoulder
	ControllerButtonRightShoulder
	ControllerButtonDpadUp
	ControllerButtonDpadDown
	ControllerButtonDpadLeft
	ControllerButtonDpadRight

	NumControllerButtons
)

// Game controller axes. The left stick is always the first pair of axes. When
// the device is a game controller the right stick is the second pair.
const (
	ControllerAxisLeftX = iota
	ControllerAxisLeftY
	ControllerAxisRightX
	ControllerAxisRightY
	ControllerAxisTriggerLeft
	ControllerAxisTriggerRight
)

// Mouse button masks as reported by Source.MouseButtons().
const (
	MouseLeftButton   uint32 = 1 << 0
	MouseRightButton  uint32 = 1 << 1
	MouseMiddleButton uint32 = 1 << 2
	MouseThumbButton  uint32 = 1 << 3
	MouseWheelUp      uint32 = 1 << 4
	MouseWheelDown    uint32 = 1 << 5
)

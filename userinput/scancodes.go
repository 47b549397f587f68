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


package userinput

import "github.com/jetsetilly/mact/control"

// hidKeys translates USB HID keyboard usage codes (page 0x07) to the scan
// code set 1 numbering used by the control package. A zero entry means the
// key has no set 1 equivalent.
var hidKeys = [...]control.Scancode{
	0x04: control.ScA,
	0x05: control.ScB,
	0x06: control.ScC,
	0x07: control.ScD,
	0x08: control.ScE,
	0x09: control.ScF,
	0x0a: control.ScG,
	0x0b: control.ScH,
	0x0c: control.ScI,
	0x0d: control.ScJ,
	0x0e: control.ScK,
	0x0f: control.ScL,
	0x10: control.ScM,
	0x11: control.ScN,
	0x12: control.ScO,
	0x13: control.ScP,
	0x14: control.ScQ,
	0x15: control.ScR,
	0x16: control.ScS,
	0x17: control.ScT,
	0x18: control.ScU,
	0x19: control.ScV,
	0x1a: control.ScW,
	0x1b: control.ScX,
	0x1c: control.ScY,
	0x1d: control.ScZ,
	0x1e: control.Sc1,
	0x1f: control.Sc2,
	0x20: control.Sc3,
	0x21: control.Sc4,
	0x22: control.Sc5,
	0x23: control.Sc6,
	0x24: control.Sc7,
	0x25: control.Sc8,
	0x26: control.Sc9,
	0x27: control.Sc0,
	0x28: control.ScEnter,
	0x29: control.ScEscape,
	0x2a: control.ScBackSpace,
	0x2b: control.ScTab,
	0x2c: control.ScSpace,
	0x2d: control.ScMinus,
	0x2e: control.ScEquals,
	0x2f: control.ScOpenBracket,
	0x30: control.ScCloseBracket,
	0x31: control.ScBackSlash,
	0x32: control.ScBackSlash, // non-US hash
	0x33: control.ScSemiColon,
	0x34: control.ScQuote,
	0x35: control.ScTilde,
	0x36: control.ScComma,
	0x37: control.ScPeriod,
	0x38: control.ScSlash,
	0x39: control.ScCapsLock,
	0x3a: control.ScF1,
	0x3b: control.ScF2,
	0x3c: control.ScF3,
	0x3d: control.ScF4,
	0x3e: control.ScF5,
	0x3f: control.ScF6,
	0x40: control.ScF7,
	0x41: control.ScF8,
	0x42: control.ScF9,
	0x43: control.ScF10,
	0x44: control.ScF11,
	0x45: control.ScF12,
	0x46: control.ScPrintScreen,
	0x47: control.ScScrollLock,
	0x48: control.ScPause,
	0x49: control.ScInsert,
	0x4a: control.ScHome,
	0x4b: control.ScPgUp,
	0x4c: control.ScDelete,
	0x4d: control.ScEnd,
	0x4e: control.ScPgDn,
	0x4f: control.ScRightArrow,
	0x50: control.ScLeftArrow,
	0x51: control.ScDownArrow,
	0x52: control.ScUpArrow,
	0x53: control.ScNumLock,
	0x54: control.ScKpadSlash,
	0x55: control.ScKpadStar,
	0x56: control.ScKpadMinus,
	0x57: control.ScKpadPlus,
	0x58: control.ScKpadEnter,
	0x59: control.ScKpad1,
	0x5a: control.ScKpad2,
	0x5b: control.ScKpad3,
	0x5c: control.ScKpad4,
	0x5d: control.ScKpad5,
	0x5e: control.ScKpad6,
	0x5f: control.ScKpad7,
	0x60: control.ScKpad8,
	0x61: control.ScKpad9,
	0x62: control.ScKpad0,
	0x63: control.ScKpadPeriod,
	0x64: control.ScBackSlash, // non-US backslash
	0x65: control.ScApplication,
	0xe0: control.ScLeftControl,
	0xe1: control.ScLeftShift,
	0xe2: control.ScLeftAlt,
	0xe3: control.ScLeftGui,
	0xe4: control.ScRightControl,
	0xe5: control.ScRightShift,
	0xe6: control.ScRightAlt,
	0xe7: control.ScRightGui,
}

// TranslateHID returns the scancode for the USB HID keyboard usage code.
// Returns control.ScNone if there is no equivalent.
func TranslateHID(code int) control.Scancode {
	if code < 0 || code >= len(hidKeys) {
		return control.ScNone
	}
	return hidKeys[code]
}

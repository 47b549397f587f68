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


// Package userinput is the translation layer between the platform that owns
// the real input hardware and the control package. It keeps the keyboard
// tables, the mouse button mask and the per-frame mouse motion, and it samples
// the joystick once per frame so that the values seen by the control package
// never change between calls to PollEvents().
//
// The platform is abstracted by the Platform and Joystick interfaces. The
// platform in use during development was SDL (see the sdlplatform package)
// and so there will be a bias towards that system. In particular, keyboard
// events identify keys with USB HID usage codes, which is what SDL scancodes
// are, and hat values use the SDL bit layout.
package userinput

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


// Package sdlplatform implements the userinput.Platform and
// userinput.Joystick interfaces with SDL.
//
// SDL only delivers keyboard events to a window with input focus so the
// platform opens a small window. Mouse motion is read in relative mode, which
// SDL will only enable while the window has focus.
//
// All functions must be called from the main thread.
package sdlplatform

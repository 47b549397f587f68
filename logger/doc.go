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

// Package logger is the logging package used throughout Mact. There is a
// single central log for the whole application, accessed through the
// package level functions, but private logs can be created with NewLogger().
//
// Log entries are tagged with a short string, usually the name of the
// package making the entry. Consecutive identical entries are collapsed into
// one entry with a repeat count. This is important for the control package
// because a fault in a device can otherwise produce an entry every frame.
//
// Every logging call requires a Permission. The Allow value should be used
// when logging is always appropriate. Implementations of Permission allow a
// component to decide at the time of the call whether an entry should be
// made. For example, per-axis diagnostic output from the control package is
// only logged when the joystick console spam option is set.
package logger

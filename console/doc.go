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


// Package console runs the command strings that are bound to keys and mouse
// buttons. The Console type implements the control.Dispatcher interface.
//
// A command string is one or more statements separated by semicolons. Each
// statement is a command name followed by arguments, separated by white
// space. Double quotes group words containing white space or semicolons into
// a single argument. Command names are not case sensitive.
//
//	echo "hello world"; lua "x = 1 + 2; echo('x is', x)"
//
// The built-in lua command runs the remainder of the statement as a chunk of
// Lua. Lua strings in a chunk should use single quotes. Two functions are
// available to the chunk: dispatch() runs a command string with the console
// and echo() writes its arguments to the console output.
//
// Only the base, table, string and math libraries are opened and the base
// functions that load code (dofile, loadfile, load and loadstring) are
// removed. A chunk that runs for longer than the LuaTimeout field of the
// Console is stopped with an error.
package console

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

// Package modalflag is a wrapper for the pflag package. It adds the notion of
// program modes to command line processing.
//
// Whereas with pflag.FlagSet you call Parse() with the array of strings as the
// only argument, with modalflag you first call NewArgs() with the array of
// arguments and then Parse() with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	_, _ = md.Parse()
//
// Non-flag arguments can be retrieved after parsing with the RemainingArgs()
// or GetArg() function.
//
// Modes are added with AddSubModes(). The first sub-mode in the list is the
// default mode and is selected when the first remaining argument does not
// match any of the sub-modes. Mode names are case insensitive:
//
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "RECORD", "PLAYBACK")
//	p, err := md.Parse()
//	...
//	switch md.Mode() {
//	case "RECORD":
//		md.NewMode()
//		tics := md.AddInt("tics", 120, "tics per second")
//		p, err := md.Parse()
//		...
//	}
//
// Calling NewMode() prepares a new set of flags for the selected mode. The
// path through the modes is available with the Path() function, for example
// "RECORD" or "RUN/SUBMODE".
//
// Flags follow the GNU conventions of the pflag package. Long flags are
// prefixed with two dashes and single character shorthands with one dash.
// Interspersed arguments are not allowed: the first non-flag argument ends the
// flag list for the current mode.
//
// The pflag.Flag for a named flag can be retrieved with Lookup(). This allows
// a flag to be bound to a preferences value from the prefs package.
package modalflag

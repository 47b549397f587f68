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

// Package curated wraps the plain Go error type so that errors can be
// identified by the pattern they were created with rather than by the text
// they produce.
//
// Errors are created with Errorf(), which has the same signature as the
// function of the same name in the fmt package. The formatting is deferred
// until the Error() function is called.
//
// Is() answers whether an error was created with a particular pattern. The
// pattern should be stored as an exported const string by the package that
// creates the error:
//
//	const StartupError = "control: startup: %v"
//
//	err := curated.Errorf(StartupError, sdlErr)
//	if curated.Is(err, control.StartupError) {
//		...
//	}
//
// Has() answers whether the pattern appears anywhere in the chain of curated
// errors. A curated error that is a value of another curated error is part of
// the chain:
//
//	e := curated.Errorf("recorder: line %d: %v", 10, curated.Errorf("bad field"))
//	curated.Has(e, "bad field") == true
//	curated.Is(e, "bad field") == false
//
// The Error() function normalises the message so that adjacent duplicate
// parts are removed. Parts are separated by the sub-string ": ". This means
// that a function can wrap an error with its own prefix without worrying
// whether the error it received already carries the same prefix:
//
//	prefs: prefs: file not found
//
// is reported as:
//
//	prefs: file not found
//
// Curated errors also implement Unwrap() so that they can be inspected with
// errors.Is() and errors.As() from the standard library when they wrap an
// uncurated error.
package curated

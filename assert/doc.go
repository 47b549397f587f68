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

// Package assert contains functions that help verify assumptions about the
// running program. The control package is single-threaded by design and uses
// this package to detect when it is being serviced from more than one
// goroutine.
package assert

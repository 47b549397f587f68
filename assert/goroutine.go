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

package assert

import (
	"bytes"
	"runtime"
	"strconv"
)

// GetGoRoutineID returns an identifier for the calling goroutine. The value
// is parsed from the first line of the stack trace and is only suitable for
// diagnostic checks.
func GetGoRoutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Goroutine remembers a goroutine so that later calls can be checked against
// it. The zero value is usable and considers every goroutine to be correct
// until Record() is called.
type Goroutine struct {
	id uint64
}

// Record the calling goroutine.
func (g *Goroutine) Record() {
	g.id = GetGoRoutineID()
}

// Forget the recorded goroutine.
func (g *Goroutine) Forget() {
	g.id = 0
}

// Check returns false if a goroutine has been recorded and it is not the
// calling goroutine.
func (g *Goroutine) Check() bool {
	return g.id == 0 || g.id == GetGoRoutineID()
}

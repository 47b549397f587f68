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


package console

import (
	"testing"

	"github.com/jetsetilly/mact/test"
)

func TestTokeniser(t *testing.T) {
	tk := TokeniseInput(`  bind  "key a"   jump `)
	test.ExpectEquality(t, tk.String(), `bind  "key a"   jump`)
	test.ExpectEquality(t, tk.Remaining(), 3)

	s, ok := tk.Get()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "bind")

	s, ok = tk.Peek()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "key a")
	test.ExpectEquality(t, tk.Remainder(), "key a jump")

	tk.Get()
	tk.Get()
	test.ExpectSuccess(t, tk.IsEnd())
	_, ok = tk.Get()
	test.ExpectFailure(t, ok)

	tk.Reset()
	test.ExpectEquality(t, tk.Remaining(), 3)
}

func TestTokeniserQuotes(t *testing.T) {
	test.ExpectEquality(t, len(tokeniseInput(`""`)), 1)
	test.ExpectEquality(t, len(tokeniseInput(``)), 0)

	tokens := tokeniseInput(`a"b c"d "unterminated quote`)
	test.DemandEquality(t, len(tokens), 2)
	test.ExpectEquality(t, tokens[0], "ab cd")
	test.ExpectEquality(t, tokens[1], "unterminated quote")
}

func TestStatements(t *testing.T) {
	s := splitStatements(`echo a; echo "b;c" ;;  `)
	test.DemandEquality(t, len(s), 2)
	test.ExpectEquality(t, s[0], "echo a")
	test.ExpectEquality(t, s[1], `echo "b;c"`)

	test.ExpectEquality(t, len(splitStatements(" ; ")), 0)
}

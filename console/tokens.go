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
	"strings"
	"unicode"
)

// Tokens represents tokenised input. This can be used to walk through the
// input string (using Get()) for eas(ier) parsing.
type Tokens struct {
	input  string
	tokens []string
	curr   int
}

func (tk *Tokens) String() string {
	return tk.input
}

// Reset begins the token traversal process from the beginning.
func (tk *Tokens) Reset() {
	tk.curr = 0
}

// IsEnd returns true if we're at the end of the token list.
func (tk *Tokens) IsEnd() bool {
	return tk.curr >= len(tk.tokens)
}

// Remainder returns the remaining tokens as a string. Quoted tokens are
// returned without their quotes.
func (tk *Tokens) Remainder() string {
	return strings.Join(tk.tokens[tk.curr:], " ")
}

// Remaining returns the count of reminaing tokens in the token list.
func (tk *Tokens) Remaining() int {
	return len(tk.tokens) - tk.curr
}

// Get returns the next token in the list, and a success boolean - if the end
// of the token list has been reached, the function returns false instead of
// true.
func (tk *Tokens) Get() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	tk.curr++
	return tk.tokens[tk.curr-1], true
}

// Peek returns the next token in the list (without advancing the list), and a
// success boolean.
func (tk *Tokens) Peek() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	return tk.tokens[tk.curr], true
}

// TokeniseInput creates and returns a new Tokens instance.
func TokeniseInput(input string) *Tokens {
	input = strings.TrimSpace(input)
	return &Tokens{
		input:  input,
		tokens: tokeniseInput(input),
	}
}

// tokeniseInput divides the input on white space. Double quotes group
// characters, including white space, into a single token. An unterminated
// quote runs to the end of the input.
func tokeniseInput(input string) []string {
	var tokens []string
	var sb strings.Builder

	inToken := false
	quoted := false

	for _, r := range input {
		switch {
		case r == '"':
			quoted = !quoted
			inToken = true
		case unicode.IsSpace(r) && !quoted:
			if inToken {
				tokens = append(tokens, sb.String())
				sb.Reset()
				inToken = false
			}
		default:
			sb.WriteRune(r)
			inToken = true
		}
	}

	if inToken {
		tokens = append(tokens, sb.String())
	}

	return tokens
}

// splitStatements divides the input on semicolons that are not inside a
// quoted string. Empty statements are removed.
func splitStatements(input string) []string {
	var statements []string

	quoted := false
	start := 0

	add := func(s string) {
		s = strings.TrimSpace(s)
		if s != "" {
			statements = append(statements, s)
		}
	}

	for i, r := range input {
		switch r {
		case '"':
			quoted = !quoted
		case ';':
			if !quoted {
				add(input[start:i])
				start = i + 1
			}
		}
	}
	add(input[start:])

	return statements
}

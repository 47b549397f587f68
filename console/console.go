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
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/jetsetilly/mact/curated"
	lua "github.com/yuin/gopher-lua"
)

// Error patterns returned by the console.
const (
	UnknownCommand   = "console: unknown command: %s"
	DuplicateCommand = "console: command already defined: %s"
	InvalidName      = "console: invalid command name: %q"
	RecursionLimit   = "console: recursion limit reached: %s"
	LuaError         = "console: lua: %v"
)

// maxDepth is the number of nested calls to Dispatch() allowed. Nesting
// happens when a Lua chunk calls dispatch().
const maxDepth = 8

// DefaultLuaTimeout is the initial value of the LuaTimeout field of a new
// Console.
const DefaultLuaTimeout = 50 * time.Millisecond

// Command is the function run for a command name. The tokens are positioned
// after the command name.
type Command func(con *Console, tk *Tokens) error

// Console runs command strings. It implements the control.Dispatcher
// interface.
//
// Console is not safe for concurrent use.
type Console struct {
	out      io.Writer
	commands map[string]Command
	depth    int

	// LuaTimeout is how long a chunk run by the lua command is allowed to run
	// before it is stopped with an error. Commands are run from inside the
	// frame loop so this should be short
	LuaTimeout time.Duration

	L *lua.LState
}

// NewConsole is the preferred method of initialisation for the Console type.
// Output from commands is written to out.
func NewConsole(out io.Writer) *Console {
	if out == nil {
		out = io.Discard
	}

	con := &Console{
		out:        out,
		commands:   make(map[string]Command),
		LuaTimeout: DefaultLuaTimeout,
	}

	con.L = lua.NewState(lua.Options{SkipOpenLibs: true})
	openLibraries(con.L)
	con.L.SetGlobal("dispatch", con.L.NewFunction(con.luaDispatch))
	con.L.SetGlobal("echo", con.L.NewFunction(con.luaEcho))
	con.L.SetGlobal("print", con.L.NewFunction(con.luaEcho))

	con.commands["echo"] = echo
	con.commands["help"] = help
	con.commands["lua"] = runLua

	return con
}

// the functions in the base library that load code from files or from
// strings. they are removed after the library is opened
var unsafeBaseFunctions = []string{
	"dofile",
	"loadfile",
	"load",
	"loadstring",
	"require",
	"module",
}

// openLibraries opens the Lua libraries that can not reach outside of the
// Lua state.
func openLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range unsafeBaseFunctions {
		L.SetGlobal(name, lua.LNil)
	}
}

// Destroy closes the Lua state. The console should not be used afterwards.
func (con *Console) Destroy() {
	if con.L != nil {
		con.L.Close()
		con.L = nil
	}
}

// Add a command to the console. It is an error to add a command with the same
// name as an existing command.
func (con *Console) Add(name string, cmd Command) error {
	name = strings.ToLower(name)

	if name == "" || strings.ContainsAny(name, " \t\n\";") {
		return curated.Errorf(InvalidName, name)
	}

	if _, ok := con.commands[name]; ok {
		return curated.Errorf(DuplicateCommand, name)
	}

	con.commands[name] = cmd

	return nil
}

// Commands returns the sorted list of command names.
func (con *Console) Commands() []string {
	names := make([]string, 0, len(con.commands))
	for n := range con.commands {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Printf writes formatted output to the console output.
func (con *Console) Printf(format string, args ...any) {
	fmt.Fprintf(con.out, format, args...)
}

// Dispatch implements the control.Dispatcher interface. Every statement in the
// command string is run even if an earlier statement fails. The first error is
// returned. Errors are not logged by the console.
func (con *Console) Dispatch(cmd string) error {
	if con.depth >= maxDepth {
		return curated.Errorf(RecursionLimit, cmd)
	}
	con.depth++
	defer func() { con.depth-- }()

	var first error

	for _, s := range splitStatements(cmd) {
		err := con.run(s)
		if err != nil && first == nil {
			first = err
		}
	}

	return first
}

func (con *Console) run(statement string) error {
	tk := TokeniseInput(statement)

	name, ok := tk.Get()
	if !ok {
		return nil
	}

	cmd, ok := con.commands[strings.ToLower(name)]
	if !ok {
		return curated.Errorf(UnknownCommand, name)
	}

	return cmd(con, tk)
}

func echo(con *Console, tk *Tokens) error {
	con.Printf("%s\n", tk.Remainder())
	return nil
}

func help(con *Console, _ *Tokens) error {
	con.Printf("%s\n", strings.Join(con.Commands(), " "))
	return nil
}

func runLua(con *Console, tk *Tokens) error {
	if con.L == nil {
		return curated.Errorf(LuaError, "state has been destroyed")
	}

	chunk := tk.Remainder()
	if chunk == "" {
		return nil
	}

	// a chunk run by dispatch() from inside another chunk is covered by the
	// deadline of the outer chunk
	if con.L.Context() == nil {
		ctx, cancel := context.WithTimeout(context.Background(), con.LuaTimeout)
		defer cancel()
		con.L.SetContext(ctx)
		defer con.L.RemoveContext()
	}

	if err := con.L.DoString(chunk); err != nil {
		return curated.Errorf(LuaError, err)
	}

	return nil
}

// luaDispatch is the Lua dispatch() function. Errors are raised in the Lua
// state.
func (con *Console) luaDispatch(L *lua.LState) int {
	cmd := L.CheckString(1)
	if err := con.Dispatch(cmd); err != nil {
		L.RaiseError("%s", err.Error())
	}
	return 0
}

// luaEcho is the Lua echo() and print() function. Arguments are converted to
// strings and separated by a space.
func (con *Console) luaEcho(L *lua.LState) int {
	n := L.GetTop()
	s := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		s = append(s, L.ToStringMeta(L.Get(i)).String())
	}
	con.Printf("%s\n", strings.Join(s, " "))
	return 0
}

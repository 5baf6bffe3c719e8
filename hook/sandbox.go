package hook

import (
	"errors"
	"log/slog"

	lua "github.com/yuin/gopher-lua"
)

// ErrClosed is returned when loading into a closed runner.
var ErrClosed = errors.New("hook runner closed")

// removed from the base library
var unsafeGlobals = []string{"dofile", "loadfile", "load", "loadstring", "require", "module"}

func newState(log *slog.Logger) *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
	for _, name := range unsafeGlobals {
		L.SetGlobal(name, lua.LNil)
	}

	logFn := func(L *lua.LState) int {
		log.Info(L.CheckString(1))
		return 0
	}
	L.SetGlobal("log", L.NewFunction(logFn))
	L.SetGlobal("print", L.NewFunction(logFn))
	return L
}

// Package hook runs Lua scripts that react to player input.
//
// Every script gets its own interpreter with only the base, table, string
// and math libraries. A script may define
//
//	function input(action, press) ... end
//	function mouse(button) ... end
//
// and may call log(msg) to write to the game log.
package hook

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"skyhaul/input"
)

// DefaultTimeout bounds a single hook call.
const DefaultTimeout = 50 * time.Millisecond

type script struct {
	name string
	L    *lua.LState
}

// Runner holds the loaded scripts. It implements input.Notifier.
type Runner struct {
	mu      sync.Mutex
	log     *slog.Logger
	timeout time.Duration
	scripts []*script
	closed  bool
}

// New returns a runner with no scripts.
func New(log *slog.Logger) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{log: log.With("component", "hook"), timeout: DefaultTimeout}
}

// SetTimeout changes the per-call time limit. Zero disables it.
func (r *Runner) SetTimeout(d time.Duration) {
	r.mu.Lock()
	r.timeout = d
	r.mu.Unlock()
}

// LoadDir loads every *.lua file of dir in name order. A missing directory
// loads nothing. A script that fails to load is logged and skipped.
func (r *Runner) LoadDir(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("reading hooks: %w", err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".lua") {
			names = append(names, e.Name())
		}
	}
	slices.Sort(names)

	n := 0
	for _, name := range names {
		code, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			r.log.Warn("skipping hook", "file", name, "error", err)
			continue
		}
		if err := r.LoadString(name, string(code)); err != nil {
			r.log.Warn("skipping hook", "file", name, "error", err)
			continue
		}
		n++
	}
	return n, nil
}

// LoadString runs code as a new script called name.
func (r *Runner) LoadString(name, code string) error {
	L := newState(r.log.With("script", name))
	if err := L.DoString(code); err != nil {
		L.Close()
		return fmt.Errorf("loading %s: %w", name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		L.Close()
		return ErrClosed
	}
	r.scripts = append(r.scripts, &script{name: name, L: L})
	r.log.Debug("hook loaded", "script", name)
	return nil
}

// Len returns the number of loaded scripts.
func (r *Runner) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.scripts)
}

// Notify calls input(action, press) in every script that defines it.
func (r *Runner) Notify(action string, press bool) {
	r.call("input", lua.LString(action), lua.LBool(press))
}

// NotifyMouse calls mouse(button) in every script that defines it.
func (r *Runner) NotifyMouse(button input.MouseButton) {
	r.call("mouse", lua.LNumber(button))
}

func (r *Runner) call(fn string, args ...lua.LValue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	for _, s := range r.scripts {
		if err := r.callScript(s, fn, args); err != nil {
			r.log.Warn("hook failed", "script", s.name, "func", fn, "error", err)
		}
	}
}

func (r *Runner) callScript(s *script, fn string, args []lua.LValue) (err error) {
	f, ok := s.L.GetGlobal(fn).(*lua.LFunction)
	if !ok {
		return nil
	}
	if r.timeout > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
		defer cancel()
		s.L.SetContext(ctx)
		defer s.L.RemoveContext()
	}

	top := s.L.GetTop()
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("lua panic: %v", p)
		}
		s.L.SetTop(top)
	}()
	s.L.Push(f)
	for _, a := range args {
		s.L.Push(a)
	}
	return s.L.PCall(len(args), 0, nil)
}

// Close shuts every interpreter down. Later notifications are ignored.
func (r *Runner) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.closed = true
	for _, s := range r.scripts {
		s.L.Close()
	}
	r.scripts = nil
}

var _ input.Notifier = (*Runner)(nil)

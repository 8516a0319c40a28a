package script

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/anchorage/internal/engine"
	"github.com/dshills/anchorage/internal/engine/view"
)

// DefaultTimeout bounds a single script run.
const DefaultTimeout = 5 * time.Second

// Logger receives debug output about script runs.
type Logger interface {
	Debug(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}

// State wraps a gopher-lua state bound to a session.
//
// gopher-lua's LState is not goroutine-safe. The mutex serializes runs
// started from Go.
type State struct {
	L *lua.LState

	mu      sync.Mutex
	editor  *Editor
	timeout time.Duration
	output  io.Writer
	logger  Logger
	closed  bool
}

// Option configures a State.
type Option func(*State)

// WithTimeout sets the time limit for each run. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(s *State) {
		s.timeout = d
	}
}

// WithOutput redirects Lua's print. The default is stderr.
func WithOutput(w io.Writer) Option {
	return func(s *State) {
		s.output = w
	}
}

// WithLogger sets the logger for run tracing.
func WithLogger(l Logger) Option {
	return func(s *State) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewState creates a sandboxed Lua state whose "ed" module edits v.
func NewState(sess *engine.Session, v *view.View, opts ...Option) (*State, error) {
	if v == nil {
		return nil, ErrNoView
	}

	s := &State{
		timeout: DefaultTimeout,
		output:  os.Stderr,
		logger:  nopLogger{},
	}
	for _, opt := range opts {
		opt(s)
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(L)
	s.L = L
	s.installPrint()

	s.editor = NewEditor(sess, v)
	if err := s.editor.Register(L); err != nil {
		L.Close()
		return nil, err
	}
	return s, nil
}

// openSafeLibraries opens base, table, string and math, then removes the
// base functions that reach the file system or compile arbitrary chunks.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		L.SetGlobal(name, lua.LNil)
	}
}

func (s *State) installPrint() {
	s.L.SetGlobal("print", s.L.NewFunction(func(L *lua.LState) int {
		top := L.GetTop()
		parts := make([]string, 0, top)
		for i := 1; i <= top; i++ {
			parts = append(parts, L.ToStringMeta(L.Get(i)).String())
		}
		fmt.Fprintln(s.output, strings.Join(parts, "\t"))
		return 0
	}))
}

// Editor returns the "ed" module.
func (s *State) Editor() *Editor {
	return s.editor
}

// View returns the view the script currently edits.
func (s *State) View() *view.View {
	return s.editor.View()
}

// DoString executes a Lua chunk.
func (s *State) DoString(code string) error {
	return s.run("<string>", func() error {
		return s.L.DoString(code)
	})
}

// DoFile executes a Lua file.
func (s *State) DoFile(path string) error {
	return s.run(path, func() error {
		return s.L.DoFile(path)
	})
}

func (s *State) run(name string, fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStateClosed
	}

	var ctx context.Context
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		s.L.SetContext(ctx)
		defer s.L.RemoveContext()
	}

	start := time.Now()
	err := s.doWithRecovery(fn)
	s.logger.Debug("script %s finished in %s", name, time.Since(start))

	if err != nil && ctx != nil && ctx.Err() != nil {
		return fmt.Errorf("%w after %s: %s", ErrTimeout, s.timeout, name)
	}
	return err
}

// doWithRecovery executes fn, turning panics into errors.
func (s *State) doWithRecovery(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}

// Close releases the interpreter. Further runs return ErrStateClosed.
func (s *State) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.L.Close()
}

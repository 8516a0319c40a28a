package app

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/dshills/anchorage/internal/config"
	"github.com/dshills/anchorage/internal/engine"
	"github.com/dshills/anchorage/internal/engine/text"
	"github.com/dshills/anchorage/internal/engine/view"
	"github.com/dshills/anchorage/internal/script"
)

// Options configures application startup. Non-zero fields override the
// loaded configuration.
type Options struct {
	// ConfigPath is the TOML or YAML configuration file.
	ConfigPath string

	// LogLevel overrides logging.level.
	LogLevel string

	// ReadOnly forces editor.read_only.
	ReadOnly bool

	// LogOutput replaces the configured log destination.
	LogOutput io.Writer

	// ScriptOutput receives Lua print output. Defaults to stderr.
	ScriptOutput io.Writer
}

// Application ties one session and its script runtime to a single file.
type Application struct {
	cfg     *config.Config
	logger  *Logger
	logFile *os.File
	session *engine.Session
	state   *script.State
	path    string
	opts    Options
	closed  bool
}

// New loads configuration and creates the logger and session.
func New(opts Options) (*Application, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, NewOperationError("load config", opts.ConfigPath, err)
	}
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}
	if opts.ReadOnly {
		cfg.Editor.ReadOnly = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, NewOperationError("load config", opts.ConfigPath, err)
	}

	a := &Application{cfg: cfg, opts: opts}
	if err := a.initLogger(); err != nil {
		return nil, err
	}

	var textOpts []text.Option
	if cfg.Editor.ReadOnly {
		textOpts = append(textOpts, text.WithReadOnly())
	}
	if cfg.Editor.NormalizeLineEndings {
		textOpts = append(textOpts, text.WithNormalizedLineEndings())
	}
	a.session = engine.New(
		engine.WithLogger(a.logger.WithComponent("engine")),
		engine.WithTextOptions(textOpts...),
	)

	a.logger.Debug("configuration: %s", cfg)
	return a, nil
}

func (a *Application) initLogger() error {
	level, _ := ParseLogLevel(a.cfg.Logging.Level)
	out := a.opts.LogOutput
	if out == nil && a.cfg.Logging.File != "" {
		f, err := os.OpenFile(a.cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return NewOperationError("open log", a.cfg.Logging.File, err)
		}
		a.logFile = f
		out = f
	}

	cfg := DefaultLoggerConfig()
	cfg.Level = level
	if out != nil {
		cfg.Output = out
	}
	a.logger = NewLogger(cfg)
	return nil
}

// Config returns the resolved configuration.
func (a *Application) Config() *config.Config {
	return a.cfg
}

// Logger returns the application logger.
func (a *Application) Logger() *Logger {
	return a.logger
}

// Session returns the editing session.
func (a *Application) Session() *engine.Session {
	return a.session
}

// Path returns the name of the open document.
func (a *Application) Path() string {
	return a.path
}

// View returns the view scripts currently edit, or nil before Open.
func (a *Application) View() *view.View {
	if a.state == nil {
		return nil
	}
	return a.state.View()
}

// Open loads path into the session and runs the configured init script.
// A missing file opens as an empty text.
func (a *Application) Open(path string) error {
	f, err := os.Open(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		a.logger.Info("%s does not exist, starting empty", path)
		return a.OpenBytes(path, nil)
	case err != nil:
		return NewOperationError("open", path, err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return NewOperationError("open", path, err)
	}
	return a.OpenBytes(path, content)
}

// OpenBytes opens content under name and runs the configured init script.
func (a *Application) OpenBytes(name string, content []byte) error {
	if a.closed {
		return ErrShutdown
	}
	if a.state != nil {
		return NewOperationError("open", name, ErrAlreadyOpen)
	}

	v, err := a.session.Open(name, content)
	if err != nil {
		return NewOperationError("open", name, err)
	}

	scriptOut := a.opts.ScriptOutput
	if scriptOut == nil {
		scriptOut = os.Stderr
	}
	state, err := script.NewState(a.session, v,
		script.WithTimeout(a.cfg.ScriptTimeout()),
		script.WithOutput(scriptOut),
		script.WithLogger(a.logger.WithComponent("script")),
	)
	if err != nil {
		return NewOperationError("open", name, err)
	}
	a.state = state
	a.path = name
	a.logger.Info("opened %s (%d bytes)", name, v.Len())

	if init := a.cfg.Script.Init; init != "" {
		return a.RunFile(init)
	}
	return nil
}

// RunString runs a Lua chunk against the open document.
func (a *Application) RunString(code string) error {
	if err := a.ready(); err != nil {
		return err
	}
	if err := a.state.DoString(code); err != nil {
		return NewOperationError("run script", "<string>", err)
	}
	return nil
}

// RunFile runs a Lua file against the open document.
func (a *Application) RunFile(path string) error {
	if err := a.ready(); err != nil {
		return err
	}
	a.logger.Debug("running %s", path)
	if err := a.state.DoFile(path); err != nil {
		return NewOperationError("run script", path, err)
	}
	return nil
}

// WriteTo writes the current text to w.
func (a *Application) WriteTo(w io.Writer) (int64, error) {
	if err := a.ready(); err != nil {
		return 0, err
	}
	return a.state.View().Text().WriteTo(w)
}

// Save writes the current text to path.
func (a *Application) Save(path string) error {
	if err := a.ready(); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return NewOperationError("write", path, err)
	}
	n, err := a.WriteTo(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return NewOperationError("write", path, err)
	}
	a.logger.Info("wrote %s (%d bytes)", path, n)
	return nil
}

func (a *Application) ready() error {
	if a.closed {
		return ErrShutdown
	}
	if a.state == nil {
		return ErrNoDocument
	}
	return nil
}

// Shutdown closes the script runtime, the session and the log file.
// It is safe to call more than once.
func (a *Application) Shutdown() {
	if a.closed {
		return
	}
	a.closed = true

	if a.state != nil {
		a.state.Close()
	}
	a.session.Close()
	a.logger.Debug("shutdown complete")

	if a.logFile != nil {
		_ = a.logFile.Close()
	}
}

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/idilsaglam/classboard/internal/config"
	"github.com/idilsaglam/classboard/internal/logger"
	"github.com/idilsaglam/classboard/internal/roster"
	"github.com/idilsaglam/classboard/internal/store"
	"github.com/idilsaglam/classboard/internal/store/jsonstore"
	"github.com/idilsaglam/classboard/internal/store/sqlitestore"
	"github.com/idilsaglam/classboard/internal/theme"
	"github.com/idilsaglam/classboard/internal/todo"
	"github.com/idilsaglam/classboard/internal/ui"
)

// session is everything one command invocation needs, built from config.
type session struct {
	cfg    config.Config
	log    *logger.Logger
	theme  *theme.Provider
	styles ui.Styles
	store  store.Store
	watch  func(ctx context.Context, onChange func()) error
	close  []func() error
}

// openSession loads config and opens the store. logOut receives logs unless
// the config names a log file.
func openSession(flags *rootFlags, logOut io.Writer) (*session, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}
	if flags.theme != "" {
		cfg.Theme = flags.theme
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	mode, err := theme.ParseMode(cfg.Theme)
	if err != nil {
		return nil, usageErrorf("%v", err)
	}

	s := &session{cfg: cfg, theme: theme.NewProvider(mode), styles: ui.StylesFor(mode)}

	if cfg.Log.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0o755); err != nil {
			return nil, fmt.Errorf("log dir: %w", err)
		}
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		s.close = append(s.close, f.Close)
		logOut = f
	}
	s.log, err = logger.New(logger.Options{Level: cfg.Log.Level, HumanReadable: cfg.Log.Human, Writer: logOut})
	if err != nil {
		s.Close()
		return nil, usageErrorf("log level: %v", err)
	}

	switch cfg.Store.Backend {
	case config.BackendMemory:
		s.store = store.NewMemory()
	case config.BackendSQLite:
		db, err := sqlitestore.Open(cfg.Store.Path)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.store = db
		s.close = append(s.close, db.Close)
	default:
		js := jsonstore.New(cfg.Store.Path)
		s.store = js
		s.watch = js.Watch
	}
	s.log.WithFields(map[string]any{"backend": cfg.Store.Backend, "path": cfg.Store.Path}).Debug("store opened")
	return s, nil
}

func (s *session) todos() (*todo.Panel, error) {
	p, err := todo.Open(s.store, todo.WithKey(s.cfg.Store.Key), todo.WithLogger(s.log))
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	return p, nil
}

func (s *session) roster() *roster.Panel { return roster.NewPanel(s.cfg.Roster) }

// Close releases the store and log file.
func (s *session) Close() error {
	var first error
	for i := len(s.close) - 1; i >= 0; i-- {
		if err := s.close[i](); err != nil && first == nil {
			first = err
		}
	}
	s.close = nil
	return first
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

package tables

import (
	"log/slog"
	"sync"
	"time"

	"github.com/xtding233/cricket-sim/internal/cricket"
)

// Store holds the active rules of one competition and swaps them when the
// tables change on disk. Readers always see a complete, validated set.
type Store struct {
	loader      *Loader
	competition string
	logger      *slog.Logger

	mu    sync.RWMutex
	rules cricket.Rules

	watcher *FileWatcher
}

// NewStore loads the competition's rules once; a broken table fails here.
func NewStore(loader *Loader, competition string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	rules, err := loader.Load(competition)
	if err != nil {
		return nil, err
	}
	return &Store{loader: loader, competition: competition, logger: logger, rules: rules}, nil
}

// Rules returns the active rules.
func (s *Store) Rules() cricket.Rules {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rules
}

// Reload re-reads the tables. On failure the previous rules stay active.
func (s *Store) Reload() error {
	s.loader.Invalidate()
	rules, err := s.loader.Load(s.competition)
	if err != nil {
		s.logger.Error("tables reload failed, keeping previous rules",
			"competition", s.competition, "error", err)
		return err
	}
	s.mu.Lock()
	s.rules = rules
	s.mu.Unlock()
	s.logger.Info("tables reloaded", "competition", s.competition, "version", rules.Version)
	return nil
}

// Watch reloads whenever a table file changes. It is a no-op when the
// loader only serves the embedded defaults.
func (s *Store) Watch(interval time.Duration) error {
	paths := s.loader.Paths().Watched(s.competition)
	if len(paths) == 0 {
		return nil
	}
	w, err := NewFileWatcher(paths, interval, func(path string) {
		s.logger.Debug("table file changed", "path", path)
		_ = s.Reload()
	})
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}
	s.watcher = w
	return nil
}

// Close stops the watcher, if any.
func (s *Store) Close() error {
	if s.watcher == nil {
		return nil
	}
	return s.watcher.Stop()
}

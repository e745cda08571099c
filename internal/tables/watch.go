package tables

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// FileWatcher polls file modification times on a scheduler job and calls
// onChange for each file that changed since the previous scan.
type FileWatcher struct {
	paths    []string
	interval time.Duration
	onChange func(string)

	s gocron.Scheduler

	mu        sync.Mutex
	lastMTime map[string]time.Time
}

// NewFileWatcher creates a watcher for given paths and interval.
func NewFileWatcher(paths []string, interval time.Duration, onChange func(string)) (*FileWatcher, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("watch interval must be positive, got %s", interval)
	}
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}
	return &FileWatcher{
		paths:     paths,
		interval:  interval,
		onChange:  onChange,
		s:         s,
		lastMTime: make(map[string]time.Time),
	}, nil
}

// Start primes the mtime cache and begins polling.
func (w *FileWatcher) Start() error {
	w.Scan(true)
	_, err := w.s.NewJob(
		gocron.DurationJob(w.interval),
		gocron.NewTask(func() { w.Scan(false) }),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to create watch job: %w", err)
	}
	w.s.Start()
	return nil
}

// Stop terminates the watcher.
func (w *FileWatcher) Stop() error {
	return w.s.Shutdown()
}

// Scan checks mtimes once. With prime set it only records them. Files that
// appear after the first scan count as changed.
func (w *FileWatcher) Scan(prime bool) {
	var changed []string

	w.mu.Lock()
	for _, p := range w.paths {
		fi, err := os.Stat(p)
		if err != nil {
			// missing files are skipped until they appear
			continue
		}
		mt := fi.ModTime()
		last, ok := w.lastMTime[p]
		w.lastMTime[p] = mt
		if prime {
			continue
		}
		if !ok || mt.After(last) {
			changed = append(changed, p)
		}
	}
	w.mu.Unlock()

	if w.onChange == nil {
		return
	}
	for _, p := range changed {
		w.onChange(p)
	}
}

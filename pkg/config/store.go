package config

import (
	"sync"

	"github.com/devicelab-dev/e2e-helpers/pkg/localize"
)

// Options are applied by Init. Unset options leave the stored value as is.
type Options struct {
	// RunOnly names the test files to run, e.g. []string{"home", "settings"}.
	// Empty means every file runs.
	RunOnly []string

	// Translations is the table used to resolve localized strings.
	Translations localize.Table
}

// Store holds the run-only list and translation table for a test run.
// It is written during setup and read by the filter and resolver on
// every call.
type Store struct {
	mu           sync.RWMutex
	runOnly      []string
	translations localize.Table
}

// NewStore returns an empty store: every file runs, no translations.
func NewStore() *Store {
	return &Store{}
}

// Init overwrites the options that are set. A later call wins; values are
// replaced, never merged.
func (s *Store) Init(opts Options) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(opts.RunOnly) > 0 {
		s.runOnly = append([]string(nil), opts.RunOnly...)
	}
	if opts.Translations != nil {
		s.translations = opts.Translations
	}
}

// RunOnly returns a copy of the current run-only list.
func (s *Store) RunOnly() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.runOnly...)
}

// Translations returns the current translation table.
func (s *Store) Translations() localize.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.translations
}

var (
	defaultOnce  sync.Once
	defaultStore *Store
)

// Default returns the process-wide store.
func Default() *Store {
	defaultOnce.Do(func() {
		defaultStore = NewStore()
	})
	return defaultStore
}

// Init applies opts to the process-wide store.
func Init(opts Options) {
	Default().Init(opts)
}

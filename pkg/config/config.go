// Package config holds the run-only list and translation table used by the
// e2e helpers, and loads them from a workspace e2e.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/devicelab-dev/e2e-helpers/pkg/localize"
	"gopkg.in/yaml.v3"
)

// EnvRunOnly overrides the runOnly list of a loaded config (comma-separated).
const EnvRunOnly = "E2E_RUN_ONLY"

// File represents the workspace configuration (e2e.yaml).
type File struct {
	// Test file selection
	RunOnly []string `yaml:"runOnly"` // Bare test file names; empty runs all

	// Translations
	Locale           string         `yaml:"locale"`           // BCP 47 tag used with TranslationsDir
	TranslationsFile string         `yaml:"translationsFile"` // Single table file
	TranslationsDir  string         `yaml:"translationsDir"`  // One <tag>.yaml per locale
	Translations     localize.Table `yaml:"translations"`     // Inline entries, applied last

	// Logging
	LogFile string `yaml:"logFile"`

	dir string
}

// Load loads configuration from a file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- user-provided config file
	if err != nil {
		return nil, err
	}

	var cfg File
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.dir = filepath.Dir(path)
	cfg.applyEnv()

	return &cfg, nil
}

// LoadFromDir looks for e2e.yaml or e2e.yml in the directory.
func LoadFromDir(dir string) (*File, error) {
	for _, name := range FileNames {
		configPath := filepath.Join(dir, name)
		if _, err := os.Stat(configPath); err == nil {
			return Load(configPath)
		}
	}

	// No config file found, return empty config
	cfg := &File{dir: dir}
	cfg.applyEnv()
	return cfg, nil
}

func (f *File) applyEnv() {
	env := os.Getenv(EnvRunOnly)
	if env == "" {
		return
	}
	var names []string
	for _, name := range strings.Split(env, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	f.RunOnly = names
}

// Path resolves p against the config file's directory.
func (f *File) Path(p string) string {
	if p == "" || filepath.IsAbs(p) || f.dir == "" {
		return p
	}
	return filepath.Join(f.dir, p)
}

// Options builds store options, loading any referenced translation files.
// Translations stay nil when the file configures none.
func (f *File) Options() (Options, error) {
	opts := Options{RunOnly: f.RunOnly}

	var table localize.Table
	if f.TranslationsDir != "" {
		t, _, err := localize.LoadDir(f.Path(f.TranslationsDir), f.Locale)
		if err != nil {
			return Options{}, err
		}
		table = t
	}
	if f.TranslationsFile != "" {
		t, err := localize.LoadFile(f.Path(f.TranslationsFile))
		if err != nil {
			return Options{}, err
		}
		table = localize.Merge(table, t)
	}
	if f.Translations != nil {
		table = localize.Merge(table, f.Translations)
	}

	opts.Translations = table
	return opts, nil
}

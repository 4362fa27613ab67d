package config

import (
	"os"
	"path/filepath"
)

// FileNames are the config file names looked up in a directory, in order.
var FileNames = []string{"e2e.yaml", "e2e.yml"}

// Find returns the nearest config file, searching dir and then its parents.
// ok is false when no directory up to the filesystem root has one.
func Find(dir string) (path string, ok bool) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}

	for {
		for _, name := range FileNames {
			candidate := filepath.Join(abs, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, true
			}
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return "", false
		}
		abs = parent
	}
}

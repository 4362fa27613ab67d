package localize

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Parse decodes a translation table from YAML or JSON content.
func Parse(data []byte) (Table, error) {
	table := Table{}
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("invalid translations: %w", err)
	}
	return table, nil
}

// LoadFile reads a translation table from a YAML or JSON file.
func LoadFile(path string) (Table, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- user-provided translations file
	if err != nil {
		return nil, fmt.Errorf("failed to read translations: %w", err)
	}
	table, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// LoadDir picks the translation file in dir that best matches locale and
// loads it. Files are named by BCP 47 tag: en.yaml, pt-BR.json, ...
// An empty locale selects English when available.
func LoadDir(dir, locale string) (Table, language.Tag, error) {
	files, err := localeFiles(dir)
	if err != nil {
		return nil, language.Und, err
	}
	if len(files) == 0 {
		return nil, language.Und, fmt.Errorf("no translation files in %s", dir)
	}

	tags := make([]language.Tag, 0, len(files))
	for tag := range files {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].String() < tags[j].String() })

	// English first so it wins ties when nothing matches.
	for i, tag := range tags {
		if tag == language.English {
			tags[0], tags[i] = tags[i], tags[0]
			break
		}
	}

	want := language.English
	if locale != "" {
		if want, err = language.Parse(locale); err != nil {
			return nil, language.Und, fmt.Errorf("invalid locale %q: %w", locale, err)
		}
	}

	_, idx, _ := language.NewMatcher(tags).Match(want)
	tag := tags[idx]

	table, err := LoadFile(files[tag])
	if err != nil {
		return nil, language.Und, err
	}
	return table, tag, nil
}

func localeFiles(dir string) (map[language.Tag]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read translations dir: %w", err)
	}

	files := make(map[language.Tag]string)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		switch ext {
		case ".yaml", ".yml", ".json":
		default:
			continue
		}
		tag, err := language.Parse(strings.TrimSuffix(e.Name(), ext))
		if err != nil {
			continue
		}
		files[tag] = filepath.Join(dir, e.Name())
	}
	return files, nil
}

// Merge returns a new table holding base overlaid with overlay, key by key.
func Merge(base, overlay Table) Table {
	out := make(Table, len(base)+len(overlay))
	for _, src := range []Table{base, overlay} {
		for ctx, entries := range src {
			dst, ok := out[ctx]
			if !ok {
				dst = make(map[string]Entry, len(entries))
				out[ctx] = dst
			}
			for k, v := range entries {
				dst[k] = v
			}
		}
	}
	return out
}

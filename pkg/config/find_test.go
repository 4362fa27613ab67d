package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFind_SameDir(t *testing.T) {
	dir := t.TempDir()
	want := filepath.Join(dir, "e2e.yaml")
	if err := os.WriteFile(want, []byte("runOnly: [home]\n"), 0644); err != nil {
		t.Fatal(err)
	}

	got, ok := Find(dir)
	if !ok {
		t.Fatal("expected config to be found")
	}
	if got != want {
		t.Errorf("Find() = %q, want %q", got, want)
	}
}

func TestFind_Parent(t *testing.T) {
	root := t.TempDir()
	want := filepath.Join(root, "e2e.yml")
	if err := os.WriteFile(want, []byte("runOnly: [home]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "e2e", "flows")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	got, ok := Find(nested)
	if !ok {
		t.Fatal("expected config in parent to be found")
	}
	if got != want {
		t.Errorf("Find() = %q, want %q", got, want)
	}
}

func TestFind_YamlBeforeYml(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"e2e.yaml", "e2e.yml"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}

	got, _ := Find(dir)
	if filepath.Base(got) != "e2e.yaml" {
		t.Errorf("Find() = %q, want e2e.yaml", got)
	}
}

func TestFind_IgnoresDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "e2e.yaml"), 0755); err != nil {
		t.Fatal(err)
	}

	if got, ok := Find(dir); ok && filepath.Dir(got) == dir {
		t.Errorf("directory named e2e.yaml should not match, got %q", got)
	}
}

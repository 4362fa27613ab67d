package localize

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestFromValue(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want Entry
	}{
		{"string", "Hello", Plain("Hello")},
		{"pair", []interface{}{"Pick @@x@@", "x"}, Templated("Pick @@x@@", "x")},
		{"string pair", []string{"Pick @@x@@", "x"}, Templated("Pick @@x@@", "x")},
		{"single element", []interface{}{"Only"}, Templated("Only", "")},
		{"empty first element", []interface{}{"", "x"}, Entry{}},
		{"empty slice", []interface{}{}, Entry{}},
		{"number", 42, Entry{}},
		{"map", map[string]interface{}{"a": "b"}, Entry{}},
		{"nil", nil, Entry{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromValue(tt.in))
		})
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
home:
  title: "Welcome *home*"
  inbox: ["You have @@n@@ new", "count"]
  broken: 12
settings:
  greeting: Hello {{name}}
`)

	table, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, Plain("Welcome *home*"), table["home"]["title"])
	assert.Equal(t, Templated("You have @@n@@ new", "count"), table["home"]["inbox"])
	assert.Equal(t, Entry{}, table["home"]["broken"])
	assert.Equal(t, Plain("Hello {{name}}"), table["settings"]["greeting"])
}

func TestParse_JSON(t *testing.T) {
	table, err := Parse([]byte(`{"home": {"inbox": ["@@n@@ unread", "count"], "title": "Home"}}`))
	require.NoError(t, err)

	assert.Equal(t, "3 unread", Resolve(table, Key("home", "inbox"), Values{"count": "3"}))
	assert.Equal(t, "Home", Resolve(table, Key("home", "title"), nil))
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte(`home: [unclosed`))
	assert.Error(t, err)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "en.yaml", "home:\n  title: Home\n")

	table, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Plain("Home"), table["home"]["title"])

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "en.yaml", "home:\n  title: Home\n")
	writeFile(t, dir, "pt-BR.json", `{"home": {"title": "Início"}}`)
	writeFile(t, dir, "fr.yml", "home:\n  title: Accueil\n")
	writeFile(t, dir, "README.md", "not a locale")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0755))

	tests := []struct {
		locale string
		tag    language.Tag
		title  string
	}{
		{"", language.English, "Home"},
		{"en-GB", language.English, "Home"},
		{"pt-BR", language.MustParse("pt-BR"), "Início"},
		{"fr-CA", language.French, "Accueil"},
		{"ja", language.English, "Home"},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			table, tag, err := LoadDir(dir, tt.locale)
			require.NoError(t, err)
			assert.Equal(t, tt.tag, tag)
			assert.Equal(t, tt.title, table["home"]["title"].Template)
		})
	}
}

func TestLoadDir_Errors(t *testing.T) {
	_, _, err := LoadDir(filepath.Join(t.TempDir(), "absent"), "en")
	assert.Error(t, err)

	_, _, err = LoadDir(t.TempDir(), "en")
	assert.Error(t, err)

	dir := t.TempDir()
	writeFile(t, dir, "en.yaml", "home: {}\n")
	_, _, err = LoadDir(dir, "not a tag!")
	assert.Error(t, err)
}

func TestMerge(t *testing.T) {
	base := Table{"home": {"a": Plain("1"), "b": Plain("2")}}
	overlay := Table{"home": {"b": Plain("3")}, "settings": {"c": Plain("4")}}

	merged := Merge(base, overlay)

	assert.Equal(t, Plain("1"), merged["home"]["a"])
	assert.Equal(t, Plain("3"), merged["home"]["b"])
	assert.Equal(t, Plain("4"), merged["settings"]["c"])
	assert.Equal(t, Plain("2"), base["home"]["b"], "base must not change")
}

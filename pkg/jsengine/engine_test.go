package jsengine

import (
	"strings"
	"testing"

	"github.com/devicelab-dev/e2e-helpers/pkg/config"
	"github.com/devicelab-dev/e2e-helpers/pkg/core"
	"github.com/devicelab-dev/e2e-helpers/pkg/driver/mock"
	"github.com/devicelab-dev/e2e-helpers/pkg/flow"
	"github.com/devicelab-dev/e2e-helpers/pkg/localize"
)

func newStore() *config.Store {
	s := config.NewStore()
	s.Init(config.Options{
		RunOnly: []string{"home"},
		Translations: localize.Table{
			"home": {
				"greeting": localize.Plain("Hello {{name}}"),
				"inbox":    localize.Templated("You have **@@n@@** new", "count"),
			},
		},
	})
	return s
}

func TestNew(t *testing.T) {
	engine := New(nil, nil)
	defer engine.Close()

	if engine == nil {
		t.Fatal("expected engine to be created")
	}
	if engine.runtime == nil {
		t.Fatal("expected runtime to be initialized")
	}
}

func TestEval(t *testing.T) {
	engine := New(config.NewStore(), nil)
	defer engine.Close()

	tests := []struct {
		name     string
		script   string
		expected interface{}
	}{
		{"simple number", "1 + 2", int64(3)},
		{"string concat", "'hello' + ' ' + 'world'", "hello world"},
		{"helpers object", "typeof helpers", "object"},
		{"no actions without driver", "typeof helpers.tapElement", "undefined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.Eval(tt.script)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("expected %v (%T), got %v (%T)", tt.expected, tt.expected, result, result)
			}
		})
	}
}

func TestGetLocalizedString(t *testing.T) {
	engine := New(newStore(), nil)
	defer engine.Close()

	tests := []struct {
		name   string
		script string
		want   string
	}{
		{"table entry", `helpers.getLocalizedString(t => t.home.greeting, {name: 'Ann'})`, "Hello Ann"},
		{"templated table entry", `helpers.getLocalizedString(t => t.home.inbox, {count: 3})`, "You have 3 new"},
		{"inline string", `helpers.getLocalizedString(() => 'Hi {{missing}}')`, "Hi {{missing}}"},
		{"inline tuple", `helpers.getLocalizedString(() => ['Pick @@one@@', 'one'], {})`, "Pick " + localize.MissingVariable},
		{"tuple with empty template", `helpers.getLocalizedString(() => ['', 'one'], {one: 'x'})`, ""},
		{"unexpected shape", `helpers.getLocalizedString(() => 42)`, ""},
		{"missing key", `helpers.getLocalizedString(t => t.home.nope)`, ""},
		{"missing context", `helpers.getLocalizedString(t => t.settings.title)`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.EvalString(tt.script)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetLocalizedString_RequiresFunction(t *testing.T) {
	engine := New(newStore(), nil)
	defer engine.Close()

	if _, err := engine.Eval(`helpers.getLocalizedString('home.greeting')`); err == nil {
		t.Error("expected TypeError for non-function selector")
	}
}

func TestDescribe(t *testing.T) {
	engine := New(newStore(), nil)
	defer engine.Close()

	got, err := engine.EvalString(`[helpers.describe('e2e/home.e2e.js'), helpers.describe('e2e/settings.e2e.js')].join(',')`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "run,skip" {
		t.Errorf("got %q, want run,skip", got)
	}
}

func TestSleepFor(t *testing.T) {
	engine := New(newStore(), nil)
	defer engine.Close()

	if err := engine.RunScript(`helpers.sleepFor(0)`); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestActions(t *testing.T) {
	driver := mock.New(mock.Config{})
	engine := New(newStore(), driver)
	defer engine.Close()

	script := `
helpers.reloadApp()
helpers.tapElement('login')
helpers.tapText('Sign in')
helpers.assertElementIsVisible('home')
helpers.assertElementExists('home')
helpers.assertElementIsNotVisible('modal')
helpers.assertToggleValue('dark', true)
helpers.textIsVisible(helpers.getLocalizedString(t => t.home.greeting, {name: 'Ann'}))
helpers.elementHasText('title', 'Home')
helpers.clearText('email')
helpers.typeText('email', 'a@b.c')
helpers.replaceText('email', 'x')
helpers.tapReturnKey('email')
helpers.swipe('list', 'left')
helpers.swipe('list', 'down', 120)
helpers.waitForElement('home', 1500)
helpers.scrollTo('list', 'bottom')
helpers.addValueToInputField('code', '1234', {doNotTapReturnKey: true})
`
	if err := engine.RunScript(script); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"reloadApp",
		"tapOn #login",
		"tapOn Sign in",
		"assertVisible #home",
		"assertExists #home",
		"assertNotVisible #modal",
		"assertToggleValue #dark true",
		"assertVisible label:Hello Ann",
		`assertText #title "Home"`,
		"clearText #email",
		"inputText #email",
		"replaceText #email",
		"tapReturnKey #email",
		"swipe #list left",
		"scroll #list 120 down",
		"waitUntilVisible #home 1.5s",
		"scrollToEdge #list bottom",
		"assertVisible #code",
		"tapOn #code",
		"clearText #code",
		"inputText #code",
	}
	got := driver.Descriptions()
	if len(got) != len(want) {
		t.Fatalf("got %d steps, want %d:\n%s", len(got), len(want), strings.Join(got, "\n"))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("step %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestGetPlatform(t *testing.T) {
	for _, platform := range []string{"ios", "android"} {
		t.Run(platform, func(t *testing.T) {
			engine := New(newStore(), mock.New(mock.Config{Platform: platform}))
			defer engine.Close()

			got, err := engine.EvalString(`helpers.getPlatform()`)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != platform {
				t.Errorf("getPlatform() = %q, want %q", got, platform)
			}
		})
	}

	engine := New(newStore(), nil)
	defer engine.Close()
	if got, _ := engine.EvalString(`typeof helpers.getPlatform`); got != "undefined" {
		t.Errorf("getPlatform without a driver: typeof = %q, want undefined", got)
	}
}

func TestActions_FailureThrows(t *testing.T) {
	driver := mock.New(mock.Config{Fail: func(step flow.Step) error {
		return core.ErrElementNotFound
	}})
	engine := New(newStore(), driver)
	defer engine.Close()

	got, err := engine.EvalString(`
let caught = ''
try { helpers.tapElement('ghost') } catch (e) { caught = String(e) }
caught`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "element not found") {
		t.Errorf("expected thrown error to mention element not found, got %q", got)
	}

	if err := engine.RunScript(`helpers.tapElement('ghost')`); err == nil {
		t.Error("uncaught action failure should fail the script")
	}
}

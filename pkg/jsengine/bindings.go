package jsengine

import (
	"time"

	"github.com/dop251/goja"

	"github.com/devicelab-dev/e2e-helpers/pkg/filter"
	"github.com/devicelab-dev/e2e-helpers/pkg/flow"
	"github.com/devicelab-dev/e2e-helpers/pkg/helpers"
	"github.com/devicelab-dev/e2e-helpers/pkg/localize"
	"github.com/devicelab-dev/e2e-helpers/pkg/logger"
)

// helpersObject returns the helpers global object
func (e *Engine) helpersObject() *goja.Object {
	obj := e.runtime.NewObject()

	obj.Set("getLocalizedString", e.getLocalizedString)
	obj.Set("describe", func(call goja.FunctionCall) goja.Value {
		return e.runtime.ToValue(filter.Decide(e.store, call.Argument(0).String()).String())
	})
	obj.Set("sleepFor", func(call goja.FunctionCall) goja.Value {
		helpers.SleepFor(time.Duration(call.Argument(0).ToInteger()) * time.Millisecond)
		return goja.Undefined()
	})

	if e.driver != nil {
		e.setupActions(obj, helpers.New(e.driver, e.store))
	}
	return obj
}

// getLocalizedString calls the selector with the translation table and
// resolves whatever it returns: a string, or a [template, variable] array.
func (e *Engine) getLocalizedString(call goja.FunctionCall) goja.Value {
	fn, ok := goja.AssertFunction(call.Argument(0))
	if !ok {
		panic(e.runtime.NewTypeError("getLocalizedString requires a selector function"))
	}

	table := e.store.Translations()
	picked, err := fn(goja.Undefined(), e.runtime.ToValue(tableToJS(table)))
	if err != nil {
		// A selector reaching into a missing context resolves to "".
		logger.Warn("getLocalizedString selector failed: %v", err)
		picked = nil
	}

	var entry localize.Entry
	if picked != nil && !goja.IsUndefined(picked) && !goja.IsNull(picked) {
		entry = localize.FromValue(picked.Export())
	}

	values := e.exportValues(call.Argument(1))
	sel := func(localize.Table) localize.Entry { return entry }
	return e.runtime.ToValue(localize.Resolve(table, sel, values))
}

// exportValues converts a JS object into substitution values.
func (e *Engine) exportValues(v goja.Value) localize.Values {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil
	}
	obj := v.ToObject(e.runtime)
	values := make(localize.Values)
	for _, key := range obj.Keys() {
		values[key] = obj.Get(key).String()
	}
	return values
}

// tableToJS exposes entries the way translation files spell them: plain
// strings or [template, variable] pairs.
func tableToJS(t localize.Table) map[string]interface{} {
	out := make(map[string]interface{}, len(t))
	for ctx, entries := range t {
		m := make(map[string]interface{}, len(entries))
		for key, entry := range entries {
			if entry.IsTemplated() {
				m[key] = []interface{}{entry.Template, entry.Variable}
			} else {
				m[key] = entry.Template
			}
		}
		out[ctx] = m
	}
	return out
}

// setupActions installs getPlatform and the pass-through actions. A failing
// action throws.
func (e *Engine) setupActions(obj *goja.Object, h *helpers.Helpers) {
	str := func(call goja.FunctionCall, i int) string { return call.Argument(i).String() }
	bind := func(name string, action func(call goja.FunctionCall) error) {
		obj.Set(name, func(call goja.FunctionCall) goja.Value {
			if err := action(call); err != nil {
				panic(e.runtime.NewGoError(err))
			}
			return goja.Undefined()
		})
	}

	obj.Set("getPlatform", func(goja.FunctionCall) goja.Value {
		return e.runtime.ToValue(h.Platform())
	})

	bind("reloadApp", func(goja.FunctionCall) error { return h.ReloadApp() })
	bind("tapElement", func(c goja.FunctionCall) error { return h.TapElement(str(c, 0)) })
	bind("tapText", func(c goja.FunctionCall) error { return h.TapText(str(c, 0)) })
	bind("assertElementIsVisible", func(c goja.FunctionCall) error { return h.AssertElementIsVisible(str(c, 0)) })
	bind("assertElementExists", func(c goja.FunctionCall) error { return h.AssertElementExists(str(c, 0)) })
	bind("assertElementIsNotVisible", func(c goja.FunctionCall) error { return h.AssertElementIsNotVisible(str(c, 0)) })
	bind("assertToggleValue", func(c goja.FunctionCall) error { return h.AssertToggleValue(str(c, 0), c.Argument(1).ToBoolean()) })
	bind("textIsVisible", func(c goja.FunctionCall) error { return h.TextIsVisible(str(c, 0)) })
	bind("elementHasText", func(c goja.FunctionCall) error { return h.ElementHasText(str(c, 0), str(c, 1)) })
	bind("clearText", func(c goja.FunctionCall) error { return h.ClearText(str(c, 0)) })
	bind("typeText", func(c goja.FunctionCall) error { return h.TypeText(str(c, 0), str(c, 1)) })
	bind("replaceText", func(c goja.FunctionCall) error { return h.ReplaceText(str(c, 0), str(c, 1)) })
	bind("tapReturnKey", func(c goja.FunctionCall) error { return h.TapReturnKey(str(c, 0)) })
	bind("swipe", func(c goja.FunctionCall) error {
		return h.Swipe(str(c, 0), flow.Direction(str(c, 1)), int(c.Argument(2).ToInteger()))
	})
	bind("waitForElement", func(c goja.FunctionCall) error {
		return h.WaitForElement(str(c, 0), time.Duration(c.Argument(1).ToInteger())*time.Millisecond)
	})
	bind("scrollTo", func(c goja.FunctionCall) error { return h.ScrollTo(str(c, 0), flow.Edge(str(c, 1))) })
	bind("addValueToInputField", func(c goja.FunctionCall) error {
		var opts helpers.InputOptions
		if o := c.Argument(2); !goja.IsUndefined(o) && !goja.IsNull(o) {
			if v := o.ToObject(e.runtime).Get("doNotTapReturnKey"); v != nil {
				opts.DoNotTapReturnKey = v.ToBoolean()
			}
		}
		return h.AddValueToInputField(str(c, 0), str(c, 1), opts)
	})
}

// Package jsengine runs JavaScript test scripts against the e2e helpers.
//
// Scripts get a global helpers object mirroring the Go API:
//
//	const title = helpers.getLocalizedString(t => t.home.title, {name: 'Ann'})
//	if (helpers.describe('home.e2e.js') === 'run') {
//	  helpers.tapElement('login')
//	  helpers.textIsVisible(title)
//	}
package jsengine

import (
	"fmt"
	"sync"

	"github.com/dop251/goja"

	"github.com/devicelab-dev/e2e-helpers/pkg/config"
	"github.com/devicelab-dev/e2e-helpers/pkg/core"
	"github.com/devicelab-dev/e2e-helpers/pkg/logger"
)

// Engine wraps a goja runtime with the helpers bindings.
type Engine struct {
	runtime *goja.Runtime
	store   *config.Store
	driver  core.Driver
	mu      sync.Mutex
}

// New creates an engine reading configuration from store. Action bindings
// (tapElement, typeText, getPlatform, ...) are only installed when driver
// is non-nil.
// A nil store uses config.Default().
func New(store *config.Store, driver core.Driver) *Engine {
	if store == nil {
		store = config.Default()
	}
	e := &Engine{
		runtime: goja.New(),
		store:   store,
		driver:  driver,
	}

	e.setupBuiltins()
	return e
}

// setupBuiltins registers all built-in functions and objects
func (e *Engine) setupBuiltins() {
	e.setupConsole()
	e.runtime.Set("helpers", e.helpersObject())
}

// setupConsole adds console.log, console.error, etc.
func (e *Engine) setupConsole() {
	makeConsoleFunc := func(prefix string, log func(string, ...interface{})) func(goja.FunctionCall) goja.Value {
		return func(call goja.FunctionCall) goja.Value {
			args := make([]interface{}, len(call.Arguments))
			for i, arg := range call.Arguments {
				args[i] = arg.Export()
			}
			msg := fmt.Sprintln(args...)
			msg = msg[:len(msg)-1]
			log("console: %s", msg)
			if prefix != "" {
				fmt.Println(prefix, msg)
			} else {
				fmt.Println(msg)
			}
			return goja.Undefined()
		}
	}

	console := e.runtime.NewObject()
	console.Set("log", makeConsoleFunc("", logger.Info))
	console.Set("error", makeConsoleFunc("ERROR:", logger.Error))
	console.Set("warn", makeConsoleFunc("WARN:", logger.Warn))
	e.runtime.Set("console", console)
}

// Eval evaluates a JavaScript expression and returns the result
func (e *Engine) Eval(script string) (interface{}, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	result, err := e.runtime.RunString(script)
	if err != nil {
		return nil, fmt.Errorf("JS eval error: %w", err)
	}

	return result.Export(), nil
}

// EvalString evaluates a JavaScript expression and returns string result
func (e *Engine) EvalString(script string) (string, error) {
	result, err := e.Eval(script)
	if err != nil {
		return "", err
	}

	if result == nil {
		return "", nil
	}

	return fmt.Sprintf("%v", result), nil
}

// RunScript runs a JavaScript file/script
func (e *Engine) RunScript(script string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, err := e.runtime.RunString(script)
	if err != nil {
		return fmt.Errorf("JS runtime error: %w", err)
	}

	return nil
}

// SetVariable sets a variable accessible in JS as a global
func (e *Engine) SetVariable(name string, value interface{}) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.runtime.Set(name, value)
}

// Close interrupts any running script. Safe to call multiple times.
func (e *Engine) Close() {
	e.runtime.Interrupt("engine closed")
}

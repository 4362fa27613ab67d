package helpers

import (
	"runtime"
	"testing"

	"github.com/devicelab-dev/e2e-helpers/pkg/filter"
)

// Decide reports whether the test file filename should run under the
// store's current run-only list.
func (h *Helpers) Decide(filename string) filter.Decision {
	return filter.Decide(h.store, filename)
}

// Describe runs fn as the subtest name when filename passes the run-only
// filter, and registers name as a skipped subtest otherwise.
//
//	func TestHome(t *testing.T) {
//		h.Describe(t, "home_e2e_test.go", "Home screen", func(t *testing.T) { ... })
//	}
func (h *Helpers) Describe(t *testing.T, filename, name string, fn func(t *testing.T)) bool {
	t.Helper()
	if h.Decide(filename) == filter.Skip {
		bare := filter.BareName(filename)
		return t.Run(name, func(t *testing.T) {
			t.Skipf("%s is not in the run-only list", bare)
		})
	}
	return t.Run(name, fn)
}

// DescribeFile is Describe using the caller's source file as filename.
func (h *Helpers) DescribeFile(t *testing.T, name string, fn func(t *testing.T)) bool {
	t.Helper()
	_, file, _, ok := runtime.Caller(1)
	if !ok {
		file = t.Name()
	}
	return h.Describe(t, file, name, fn)
}

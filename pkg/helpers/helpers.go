// Package helpers provides one-line UI actions, assertions and test-group
// filtering for mobile end-to-end tests.
//
//	h := helpers.New(driver, config.Default())
//	h.DescribeFile(t, "Home screen", func(t *testing.T) {
//		require.NoError(t, h.TapElement("login-button"))
//		require.NoError(t, h.TextIsVisible(h.Localized(localize.Key("home", "title"), nil)))
//	})
package helpers

import (
	"time"

	"github.com/devicelab-dev/e2e-helpers/pkg/config"
	"github.com/devicelab-dev/e2e-helpers/pkg/core"
	"github.com/devicelab-dev/e2e-helpers/pkg/flow"
	"github.com/devicelab-dev/e2e-helpers/pkg/logger"
)

// DefaultWaitTimeout is used by WaitForElement when no timeout is given.
const DefaultWaitTimeout = 5 * time.Second

// Helpers forwards actions to a driver and reads filtering and translation
// settings from a store.
type Helpers struct {
	driver core.Driver
	store  *config.Store
}

// New returns helpers bound to driver and store. A nil store uses
// config.Default().
func New(driver core.Driver, store *config.Store) *Helpers {
	if store == nil {
		store = config.Default()
	}
	return &Helpers{driver: driver, store: store}
}

// Driver returns the underlying driver.
func (h *Helpers) Driver() core.Driver { return h.driver }

// Store returns the configuration store.
func (h *Helpers) Store() *config.Store { return h.store }

// run forwards one step and returns the driver's error unchanged.
func (h *Helpers) run(step flow.Step) error {
	logger.Debug("%s", step.Describe())
	err := h.driver.Execute(step).Err()
	if err != nil {
		logger.Debug("%s failed (%s): %v", step.Describe(), core.CategoryOf(err), err)
	}
	return err
}

// Platform returns the platform reported by the driver ("ios", "android"),
// or "" when it reports none.
func (h *Helpers) Platform() string {
	if info := h.driver.GetPlatformInfo(); info != nil {
		return info.Platform
	}
	return ""
}

package helpers

import (
	"strings"

	"github.com/devicelab-dev/e2e-helpers/pkg/localize"
	"github.com/devicelab-dev/e2e-helpers/pkg/logger"
)

// Localized resolves sel against the store's current translations.
// Misses never fail; output containing localize.MissingVariable is logged
// as a warning.
func (h *Helpers) Localized(sel localize.Selector, values localize.Values) string {
	s := localize.Resolver{Source: h.store}.Resolve(sel, values)
	if strings.Contains(s, localize.MissingVariable) {
		logger.Warn("localized string has no variable value: %q", s)
	}
	return s
}

// LocalizedKey resolves translations[context][key].
func (h *Helpers) LocalizedKey(context, key string, values localize.Values) string {
	return h.Localized(localize.Key(context, key), values)
}

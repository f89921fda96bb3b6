// Package presets is the shared catalog of named workbench configurations.
// A preset is a snapshot of one session's workbench state saved under a
// slug; applying it replaces the current session's state with the snapshot.
// Presets store form input only, never generated artifacts.
package presets

import (
	"strings"
	"time"

	"github.com/forgelabs/pluginforge/internal/plugins/workbench"
)

// Preset is one saved workbench configuration.
type Preset struct {
	ID          int64            `json:"id"`
	Slug        string           `json:"slug"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	State       *workbench.State `json:"state"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// CreatePresetInput is the form submission for saving the current session's
// workbench state as a preset.
type CreatePresetInput struct {
	Name        string
	Description string
}

// Slugify derives a URL-safe slug from a preset name: lowercase, runs of
// anything outside [a-z0-9] collapsed to single hyphens.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

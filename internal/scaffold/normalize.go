package scaffold

import (
	"fmt"
	"strings"

	"github.com/forgelabs/pluginforge/internal/identifier"
)

// The context parameter synthesized into every callable that does not
// already declare one. Generated functions use it to resolve the world
// they execute in.
const (
	WorldContextName = "WorldContextObject"
	WorldContextType = "UObject*"
)

// NormalizedEndpoint is the generatable form of an EndpointSpec: a valid
// display identifier, a defaulted return type, a collision-free parameter
// list guaranteed to contain the world-context parameter, and the metadata
// tags emitted on the UFUNCTION line. It is always derived, never stored.
type NormalizedEndpoint struct {
	Name        string
	ReturnType  string
	Description string
	Params      []Param

	// Tags are the specifier fragments joined onto the UFUNCTION line.
	Tags []string

	// HasWorldContext records that the context parameter is present. After
	// normalization this is invariantly true; it exists (and is tested) so
	// the WorldContext meta tag is emitted from observed state rather than
	// by assumption.
	HasWorldContext bool
}

// Normalize converts each spec, in order, into its generatable form. The
// friendly name feeds the Category tag attached to every endpoint. Input
// order is preserved: it drives both UI display order and declaration order
// in generated sources.
func Normalize(specs []EndpointSpec, friendlyName string) []NormalizedEndpoint {
	out := make([]NormalizedEndpoint, 0, len(specs))
	for i, spec := range specs {
		out = append(out, normalizeOne(spec, i, friendlyName))
	}
	return out
}

// normalizeOne sanitizes one endpoint at its list position. The position
// feeds the placeholder name for unnameable parameters so placeholders never
// collide across endpoints.
func normalizeOne(spec EndpointSpec, index int, friendlyName string) NormalizedEndpoint {
	seen := make(map[string]bool, len(spec.Params)+1)
	params := make([]Param, 0, len(spec.Params)+1)
	hasContext := false

	for _, p := range spec.Params {
		name := identifier.Sanitize(p.Name)
		if name == "" {
			name = fmt.Sprintf("Param%d", index)
		}

		// De-duplicate within the endpoint by numeric suffixing:
		// Target, Target1, Target2, ...
		base := name
		for n := 1; seen[name]; n++ {
			name = fmt.Sprintf("%s%d", base, n)
		}
		seen[name] = true

		if name == WorldContextName {
			hasContext = true
		}
		params = append(params, Param{Name: name, Type: strings.TrimSpace(p.Type)})
	}

	// Inject the world-context parameter first unless the user already
	// declared one by exact name.
	if !hasContext {
		params = append([]Param{{Name: WorldContextName, Type: WorldContextType}}, params...)
		hasContext = true
	}

	ret := strings.TrimSpace(spec.ReturnType)
	if ret == "" {
		ret = "void"
	}

	name := capitalize(identifier.Sanitize(spec.Name))
	if name == "" {
		name = fmt.Sprintf("Endpoint%d", index)
	}

	category := strings.TrimSpace(friendlyName)
	if category == "" {
		category = "Plugin"
	}

	tags := []string{fmt.Sprintf("Category = %q", category)}
	if hasContext {
		tags = append(tags, fmt.Sprintf("meta = (WorldContext = %q)", WorldContextName))
	}

	return NormalizedEndpoint{
		Name:            name,
		ReturnType:      ret,
		Description:     strings.TrimSpace(spec.Description),
		Params:          params,
		Tags:            tags,
		HasWorldContext: hasContext,
	}
}

// capitalize uppercases the first byte of an already-sanitized identifier.
func capitalize(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

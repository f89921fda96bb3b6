// Package scaffold is the code-generation core: it turns a plugin metadata
// record and a list of user-described endpoints into a deterministic bundle
// of text artifacts (the .uplugin descriptor, C++ module/library/async/editor
// sources, and the Build.cs build script). Every function in this package is
// pure; identical inputs always produce byte-identical output.
package scaffold

import "strings"

// LoadPhase is the point in engine startup at which the runtime module is
// initialized. Values mirror the engine's loading-phase enumeration.
type LoadPhase string

const (
	PhaseDefault          LoadPhase = "Default"
	PhasePostDefault      LoadPhase = "PostDefault"
	PhasePostEngineInit   LoadPhase = "PostEngineInit"
	PhasePostSplashScreen LoadPhase = "PostSplashScreen"
)

// LoadPhases lists the accepted load phases in the order the workbench
// form presents them.
var LoadPhases = []LoadPhase{
	PhaseDefault,
	PhasePostDefault,
	PhasePostEngineInit,
	PhasePostSplashScreen,
}

// ValidLoadPhases enumerates the accepted load phases for input validation.
var ValidLoadPhases = func() map[LoadPhase]bool {
	m := make(map[LoadPhase]bool, len(LoadPhases))
	for _, p := range LoadPhases {
		m[p] = true
	}
	return m
}()

// PluginMetadata is the identity and feature-flag record behind every
// generated artifact. All derived identifiers are pure functions of this
// record and are recomputed on every render -- nothing derived is stored.
type PluginMetadata struct {
	// CodeName is the free-form base name; its PascalCase form becomes the
	// module identifier everything else derives from.
	CodeName string `json:"code_name"`

	// FriendlyName is the human-readable plugin name shown in the editor
	// and used as the Category tag on generated callables.
	FriendlyName string `json:"friendly_name"`

	Version     string `json:"version"`
	Description string `json:"description"`
	Category    string `json:"category"`

	// LoadPhase selects when the runtime module loads.
	LoadPhase LoadPhase `json:"load_phase"`

	// Platforms is a comma-separated target platform list ("Win64, Linux").
	Platforms string `json:"platforms"`

	// Feature flags. Each gates one artifact pair plus flag-dependent
	// fields inside the descriptor and build script.
	EditorModule    bool `json:"editor_module"`
	FunctionLibrary bool `json:"function_library"`
	AsyncAction     bool `json:"async_action"`
	EditorMenu      bool `json:"editor_menu"`
}

// Param is a single (name, type) parameter pair, free text as entered.
type Param struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// EndpointSpec is a user-entered callable description, exactly as submitted.
// Normalization into a generatable form happens on every render; the raw
// spec is the only thing stored.
type EndpointSpec struct {
	Name        string  `json:"name"`
	ReturnType  string  `json:"return_type"`
	Description string  `json:"description"`
	Params      []Param `json:"params"`
}

// ParseParamDraft parses the flat "Name:Type, Name:Type" draft string from
// the endpoint sub-form into parameter pairs. Entries missing either a name
// or a type are dropped without feedback -- the form stays total, matching
// the no-fatal-errors contract of the rest of the core.
func ParseParamDraft(draft string) []Param {
	var params []Param
	for _, entry := range strings.Split(draft, ",") {
		name, typ, ok := strings.Cut(entry, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		typ = strings.TrimSpace(typ)
		if name == "" || typ == "" {
			continue
		}
		params = append(params, Param{Name: name, Type: typ})
	}
	return params
}

// splitPlatforms splits the comma-separated platform list, trims each entry,
// and drops blanks. Order is preserved as entered.
func splitPlatforms(platforms string) []string {
	var out []string
	for _, p := range strings.Split(platforms, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

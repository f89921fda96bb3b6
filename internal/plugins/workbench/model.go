// Package workbench owns the mutable state behind the plugin scaffolding
// form: one metadata record plus an ordered endpoint list per browser
// session. Every edit operation stores the new state and lets the scaffold
// package recompute identifiers, normalized endpoints, and artifacts from
// scratch -- derived values are never stored, so they can never go stale.
package workbench

import (
	"strings"

	"github.com/forgelabs/pluginforge/internal/scaffold"
)

// State is the complete workbench state for one session: the only mutable
// data in the system. Serialized as JSON into Redis under the session key.
type State struct {
	Metadata  scaffold.PluginMetadata `json:"metadata"`
	Endpoints []scaffold.EndpointSpec `json:"endpoints"`
}

// DefaultState returns the state a fresh session starts from.
func DefaultState() *State {
	return &State{
		Metadata: scaffold.PluginMetadata{
			CodeName:     "MyPlugin",
			FriendlyName: "My Plugin",
			Version:      "1.0.0",
			Description:  "A new engine plugin.",
			Category:     "Other",
			LoadPhase:    scaffold.PhaseDefault,
			Platforms:    "Win64",
		},
	}
}

// Metadata field names accepted by UpdateMetadataField. These match the
// input names on the workbench form.
const (
	FieldCodeName        = "code_name"
	FieldFriendlyName    = "friendly_name"
	FieldVersion         = "version"
	FieldDescription     = "description"
	FieldCategory        = "category"
	FieldLoadPhase       = "load_phase"
	FieldPlatforms       = "platforms"
	FieldEditorModule    = "editor_module"
	FieldFunctionLibrary = "function_library"
	FieldAsyncAction     = "async_action"
	FieldEditorMenu      = "editor_menu"
)

// AddEndpointInput is the raw endpoint sub-form submission. ParamDraft is
// the flat "Name:Type, Name:Type" string; malformed entries are dropped
// during parsing, never reported.
type AddEndpointInput struct {
	Name        string
	ReturnType  string
	Description string
	ParamDraft  string
}

// endpointFromInput builds the stored spec from a form submission.
func endpointFromInput(input AddEndpointInput) scaffold.EndpointSpec {
	return scaffold.EndpointSpec{
		Name:        strings.TrimSpace(input.Name),
		ReturnType:  strings.TrimSpace(input.ReturnType),
		Description: strings.TrimSpace(input.Description),
		Params:      scaffold.ParseParamDraft(input.ParamDraft),
	}
}

// parseFlag interprets checkbox-style form values. Checked boxes post "on";
// unchecked boxes post nothing, which reads as false.
func parseFlag(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on", "true", "1", "yes":
		return true
	default:
		return false
	}
}

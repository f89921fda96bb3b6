package scaffold

import "encoding/json"

// descriptorModule is one entry in the descriptor's Modules list.
type descriptorModule struct {
	Name         string `json:"Name"`
	Type         string `json:"Type"`
	LoadingPhase string `json:"LoadingPhase"`

	// AdditionalDependencies is present only on the runtime module, and only
	// when async actions are enabled (the generated action needs Engine).
	AdditionalDependencies []string `json:"AdditionalDependencies,omitempty"`
}

// descriptorFile is the .uplugin document. Field order here is the canonical
// serialization order; encoding/json preserves struct order, which is what
// makes the descriptor byte-stable across renders.
type descriptorFile struct {
	FileVersion              int                `json:"FileVersion"`
	Version                  int                `json:"Version"`
	VersionName              string             `json:"VersionName"`
	FriendlyName             string             `json:"FriendlyName"`
	Description              string             `json:"Description"`
	Category                 string             `json:"Category"`
	CanContainContent        bool               `json:"CanContainContent"`
	Modules                  []descriptorModule `json:"Modules"`
	SupportedTargetPlatforms []string           `json:"SupportedTargetPlatforms,omitempty"`
}

// Descriptor generates the .uplugin plugin descriptor. The runtime module
// uses the selected load phase; the editor sub-module, when enabled, always
// loads at Default regardless of the runtime phase.
func Descriptor(meta PluginMetadata, ids Derived) Artifact {
	phase := meta.LoadPhase
	if !ValidLoadPhases[phase] {
		phase = PhaseDefault
	}

	runtime := descriptorModule{
		Name:         ids.ModuleName,
		Type:         "Runtime",
		LoadingPhase: string(phase),
	}
	if meta.AsyncAction {
		runtime.AdditionalDependencies = []string{"Engine"}
	}

	doc := descriptorFile{
		FileVersion:              3,
		Version:                  1,
		VersionName:              meta.Version,
		FriendlyName:             meta.FriendlyName,
		Description:              meta.Description,
		Category:                 meta.Category,
		CanContainContent:        true,
		Modules:                  []descriptorModule{runtime},
		SupportedTargetPlatforms: splitPlatforms(meta.Platforms),
	}

	if meta.EditorModule {
		doc.Modules = append(doc.Modules, descriptorModule{
			Name:         ids.EditorModuleName,
			Type:         "Editor",
			LoadingPhase: string(PhaseDefault),
		})
	}

	// MarshalIndent cannot fail on this struct; the fallback keeps the
	// generator total anyway.
	body, err := json.MarshalIndent(doc, "", "\t")
	if err != nil {
		body = []byte("{}")
	}

	return Artifact{
		Title:    "Plugin Descriptor",
		Path:     ids.ModuleName + ".uplugin",
		Language: LangJSON,
		Body:     string(body) + "\n",
	}
}

package scaffold

import (
	"encoding/json"
	"strings"
	"testing"
)

// baseMeta returns a fully-populated metadata record tests mutate per case.
func baseMeta() PluginMetadata {
	return PluginMetadata{
		CodeName:     "Nebula Toolkit!",
		FriendlyName: "Nebula Toolkit",
		Version:      "1.0.0",
		Description:  "Utilities for nebula rendering.",
		Category:     "Rendering",
		LoadPhase:    PhasePostEngineInit,
		Platforms:    "Win64, Linux , Mac",
	}
}

func TestDescriptor(t *testing.T) {
	meta := baseMeta()
	art := Descriptor(meta, Derive(meta))

	if art.Path != "NebulaToolkit.uplugin" {
		t.Errorf("path = %q", art.Path)
	}
	if art.Language != LangJSON {
		t.Errorf("language = %q", art.Language)
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(art.Body), &doc); err != nil {
		t.Fatalf("descriptor is not valid JSON: %v", err)
	}
	if doc["FriendlyName"] != "Nebula Toolkit" {
		t.Errorf("FriendlyName = %v", doc["FriendlyName"])
	}

	platforms, _ := doc["SupportedTargetPlatforms"].([]any)
	if len(platforms) != 3 || platforms[1] != "Linux" {
		t.Errorf("platforms = %v, want trimmed [Win64 Linux Mac]", platforms)
	}

	modules, _ := doc["Modules"].([]any)
	if len(modules) != 1 {
		t.Fatalf("modules = %v, want only the runtime module", modules)
	}
	runtime := modules[0].(map[string]any)
	if runtime["LoadingPhase"] != "PostEngineInit" {
		t.Errorf("runtime LoadingPhase = %v", runtime["LoadingPhase"])
	}
	if _, ok := runtime["AdditionalDependencies"]; ok {
		t.Error("AdditionalDependencies present with async actions disabled")
	}
}

// The editor sub-module always loads at Default, regardless of the runtime
// module's configured phase.
func TestDescriptorEditorModulePhase(t *testing.T) {
	meta := baseMeta()
	meta.EditorModule = true
	meta.LoadPhase = PhasePostSplashScreen

	art := Descriptor(meta, Derive(meta))

	var doc struct {
		Modules []struct {
			Name         string
			Type         string
			LoadingPhase string
		}
	}
	if err := json.Unmarshal([]byte(art.Body), &doc); err != nil {
		t.Fatal(err)
	}
	if len(doc.Modules) != 2 {
		t.Fatalf("modules = %+v", doc.Modules)
	}
	if doc.Modules[0].LoadingPhase != "PostSplashScreen" {
		t.Errorf("runtime phase = %q", doc.Modules[0].LoadingPhase)
	}
	ed := doc.Modules[1]
	if ed.Name != "NebulaToolkitEditor" || ed.Type != "Editor" || ed.LoadingPhase != "Default" {
		t.Errorf("editor module = %+v", ed)
	}
}

func TestDescriptorAsyncDependency(t *testing.T) {
	meta := baseMeta()
	meta.AsyncAction = true

	art := Descriptor(meta, Derive(meta))
	if !strings.Contains(art.Body, `"AdditionalDependencies"`) {
		t.Error("async dependency entry missing with async actions enabled")
	}

	meta.AsyncAction = false
	art = Descriptor(meta, Derive(meta))
	if strings.Contains(art.Body, `"AdditionalDependencies"`) {
		t.Error("async dependency entry present with async actions disabled")
	}
}

func TestDescriptorInvalidPhaseFallsBack(t *testing.T) {
	meta := baseMeta()
	meta.LoadPhase = "NotAPhase"

	art := Descriptor(meta, Derive(meta))
	if !strings.Contains(art.Body, `"LoadingPhase": "Default"`) {
		t.Error("invalid load phase did not fall back to Default")
	}
}

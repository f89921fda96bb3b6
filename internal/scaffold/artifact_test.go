package scaffold

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func allFlagsMeta() PluginMetadata {
	meta := baseMeta()
	meta.EditorModule = true
	meta.FunctionLibrary = true
	meta.AsyncAction = true
	meta.EditorMenu = true
	return meta
}

func sampleSpecs() []EndpointSpec {
	return []EndpointSpec{
		{Name: "Sample", ReturnType: "float", Description: "Samples a value.",
			Params: []Param{{Name: "Target", Type: "AActor*"}}},
		{Name: "Reset"},
	}
}

func TestBundlePanelSet(t *testing.T) {
	got := Bundle(allFlagsMeta(), sampleSpecs())

	want := []string{
		"Plugin Descriptor",
		"Module Header",
		"Module Source",
		"Build Script",
		"Function Library Header",
		"Function Library Source",
		"Async Action Header",
		"Async Action Source",
		"Editor Module Header",
		"Editor Module Source",
	}
	if len(got) != len(want) {
		t.Fatalf("bundle has %d artifacts, want %d", len(got), len(want))
	}
	for i, art := range got {
		if art.Title != want[i] {
			t.Errorf("artifact %d = %q, want %q", i, art.Title, want[i])
		}
		if art.Body == "" {
			t.Errorf("artifact %q has empty body", art.Title)
		}
		if art.Path == "" || art.Language == "" {
			t.Errorf("artifact %q missing path or language", art.Title)
		}
	}
}

// Regenerating from identical inputs must yield byte-identical artifacts.
func TestBundleDeterministic(t *testing.T) {
	meta := allFlagsMeta()
	specs := sampleSpecs()

	first := Bundle(meta, specs)
	second := Bundle(meta, specs)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("bundle not deterministic (-first +second):\n%s", diff)
	}
}

// Toggling one feature flag off removes exactly its artifact pair; the
// untouched artifacts change only in their flag-dependent fields.
func TestBundleFlagToggle(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*PluginMetadata)
		removed []string
	}{
		{"function library off", func(m *PluginMetadata) { m.FunctionLibrary = false },
			[]string{"Function Library Header", "Function Library Source"}},
		{"async action off", func(m *PluginMetadata) { m.AsyncAction = false },
			[]string{"Async Action Header", "Async Action Source"}},
		{"editor module off", func(m *PluginMetadata) { m.EditorModule = false },
			[]string{"Editor Module Header", "Editor Module Source"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			full := Bundle(allFlagsMeta(), sampleSpecs())

			meta := allFlagsMeta()
			tt.mutate(&meta)
			reduced := Bundle(meta, sampleSpecs())

			if len(reduced) != len(full)-2 {
				t.Fatalf("expected exactly one pair removed: %d -> %d", len(full), len(reduced))
			}
			titles := map[string]bool{}
			for _, art := range reduced {
				titles[art.Title] = true
			}
			for _, gone := range tt.removed {
				if titles[gone] {
					t.Errorf("%q still present", gone)
				}
			}
		})
	}
}

// Disabling async actions must also drop the descriptor's dependency entry
// and the build script's GameplayTasks dependency, and nothing else about
// unrelated artifacts may change.
func TestBundleAsyncSideEffects(t *testing.T) {
	meta := allFlagsMeta()
	meta.AsyncAction = false

	byTitle := map[string]Artifact{}
	for _, art := range Bundle(meta, sampleSpecs()) {
		byTitle[art.Title] = art
	}

	if body := byTitle["Plugin Descriptor"].Body; strings.Contains(body, "AdditionalDependencies") {
		t.Error("descriptor still lists the async dependency")
	}
	if body := byTitle["Build Script"].Body; strings.Contains(body, "GameplayTasks") {
		t.Error("build script still lists GameplayTasks")
	}

	// The library artifacts do not reference the async flag at all, so they
	// must be byte-identical with and without it.
	withAsync := map[string]Artifact{}
	for _, art := range Bundle(allFlagsMeta(), sampleSpecs()) {
		withAsync[art.Title] = art
	}
	if diff := cmp.Diff(withAsync["Function Library Source"], byTitle["Function Library Source"]); diff != "" {
		t.Errorf("library source changed by the async flag:\n%s", diff)
	}
}

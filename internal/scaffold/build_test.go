package scaffold

import (
	"strings"
	"testing"
)

func TestBuildScriptBase(t *testing.T) {
	meta := baseMeta()
	art := BuildScript(meta, Derive(meta))

	if art.Path != "Source/NebulaToolkit/NebulaToolkit.Build.cs" {
		t.Errorf("path = %q", art.Path)
	}
	if art.Language != LangCSharp {
		t.Errorf("language = %q", art.Language)
	}
	for _, name := range []string{`"Core"`, `"CoreUObject"`, `"Slate"`, `"SlateCore"`, `"Projects"`} {
		if !strings.Contains(art.Body, name) {
			t.Errorf("base dependency %s missing", name)
		}
	}
	if strings.Contains(art.Body, "bBuildEditor") {
		t.Error("editor gate emitted without the editor module flag")
	}
	for _, name := range []string{`"Engine"`, `"GameplayTasks"`, `"UnrealEd"`} {
		if strings.Contains(art.Body, name) {
			t.Errorf("flag-gated dependency %s present with all flags off", name)
		}
	}
}

func TestBuildScriptFlagDependencies(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PluginMetadata)
		want   []string
	}{
		{"function library", func(m *PluginMetadata) { m.FunctionLibrary = true }, []string{`"Engine"`}},
		{"async action", func(m *PluginMetadata) { m.AsyncAction = true }, []string{`"GameplayTasks"`}},
		{"editor module", func(m *PluginMetadata) { m.EditorModule = true },
			[]string{"if (Target.bBuildEditor)", `"LevelEditor"`, `"ToolMenus"`, `"UnrealEd"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := baseMeta()
			tt.mutate(&meta)
			body := BuildScript(meta, Derive(meta)).Body
			for _, want := range tt.want {
				if !strings.Contains(body, want) {
					t.Errorf("missing %s in:\n%s", want, body)
				}
			}
		})
	}
}

// Dependency names within each set render sorted, so the script text does
// not depend on the order flags were toggled in.
func TestBuildScriptSorted(t *testing.T) {
	meta := baseMeta()
	meta.FunctionLibrary = true
	meta.AsyncAction = true

	body := BuildScript(meta, Derive(meta)).Body
	core := strings.Index(body, `"Core"`)
	engine := strings.Index(body, `"Engine"`)
	tasks := strings.Index(body, `"GameplayTasks"`)
	if !(core < engine && engine < tasks) {
		t.Errorf("public set not sorted: Core@%d Engine@%d GameplayTasks@%d", core, engine, tasks)
	}
}

package scaffold

import "testing"

func TestDerive(t *testing.T) {
	meta := PluginMetadata{CodeName: "Nebula Toolkit!"}

	got := Derive(meta)
	want := Derived{
		ModuleName:        "NebulaToolkit",
		EditorModuleName:  "NebulaToolkitEditor",
		APIMacro:          "NEBULA_TOOLKIT_API",
		LogCategory:       "LogNebulaToolkit",
		ModuleClass:       "FNebulaToolkitModule",
		EditorModuleClass: "FNebulaToolkitEditorModule",
		LibraryClass:      "UNebulaToolkitLibrary",
		AsyncClass:        "UNebulaToolkitAsyncAction",
		AsyncDelegate:     "FNebulaToolkitAsyncPin",
	}

	if got != want {
		t.Errorf("Derive() = %+v, want %+v", got, want)
	}
}

// A symbol-free code name degrades to empty identifiers; nothing panics and
// nothing invents a name.
func TestDeriveEmptyCodeName(t *testing.T) {
	got := Derive(PluginMetadata{CodeName: "!!!"})
	if got.ModuleName != "" {
		t.Errorf("ModuleName = %q, want empty", got.ModuleName)
	}
	if got.LogCategory != "Log" {
		t.Errorf("LogCategory = %q", got.LogCategory)
	}
}

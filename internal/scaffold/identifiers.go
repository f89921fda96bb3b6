package scaffold

import "github.com/forgelabs/pluginforge/internal/identifier"

// Derived holds every identifier computed from the plugin metadata. It has no
// independent storage: Derive is called on every render so the identifiers
// can never go stale relative to the code name.
//
// An empty or symbol-free code name degrades to empty identifiers instead of
// failing; the workbench renders the degenerate artifacts as-is.
type Derived struct {
	// ModuleName is the PascalCase runtime module name ("NebulaToolkit").
	ModuleName string

	// EditorModuleName is the editor counterpart ("NebulaToolkitEditor").
	EditorModuleName string

	// APIMacro is the DLL export macro ("NEBULA_TOOLKIT_API").
	APIMacro string

	// LogCategory is the log category identifier ("LogNebulaToolkit").
	LogCategory string

	// Class names for the generated types.
	ModuleClass       string // FNebulaToolkitModule
	EditorModuleClass string // FNebulaToolkitEditorModule
	LibraryClass      string // UNebulaToolkitLibrary
	AsyncClass        string // UNebulaToolkitAsyncAction
	AsyncDelegate     string // FNebulaToolkitAsyncPin
}

// Derive computes all identifiers from the metadata record.
func Derive(meta PluginMetadata) Derived {
	name := identifier.PascalCase(meta.CodeName)
	editorName := name + "Editor"

	return Derived{
		ModuleName:        name,
		EditorModuleName:  editorName,
		APIMacro:          identifier.ExportMacro(name),
		LogCategory:       "Log" + name,
		ModuleClass:       "F" + name + "Module",
		EditorModuleClass: "F" + editorName + "Module",
		LibraryClass:      "U" + name + "Library",
		AsyncClass:        "U" + name + "AsyncAction",
		AsyncDelegate:     "F" + name + "AsyncPin",
	}
}

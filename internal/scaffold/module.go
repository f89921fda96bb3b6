package scaffold

import (
	"fmt"
	"strings"
)

// ModuleHeader generates the runtime module's public header: the log
// category declaration and the IModuleInterface lifecycle pair, plus an
// editor-utility hook when the editor module is enabled.
func ModuleHeader(meta PluginMetadata, ids Derived) Artifact {
	var b strings.Builder

	b.WriteString("#pragma once\n\n")
	b.WriteString("#include \"CoreMinimal.h\"\n")
	b.WriteString("#include \"Modules/ModuleManager.h\"\n\n")
	fmt.Fprintf(&b, "DECLARE_LOG_CATEGORY_EXTERN(%s, Log, All);\n\n", ids.LogCategory)
	fmt.Fprintf(&b, "class %s : public IModuleInterface\n", ids.ModuleClass)
	b.WriteString("{\npublic:\n")
	b.WriteString("\tvirtual void StartupModule() override;\n")
	b.WriteString("\tvirtual void ShutdownModule() override;\n")
	if meta.EditorModule {
		b.WriteString("\n\t/** Hook for utilities that must exist in both runtime and editor builds. */\n")
		b.WriteString("\tvoid RegisterEditorUtilities();\n")
	}
	b.WriteString("};\n")

	return Artifact{
		Title:    "Module Header",
		Path:     fmt.Sprintf("Source/%s/Public/%s.h", ids.ModuleName, ids.ModuleName),
		Language: LangCPP,
		Body:     b.String(),
	}
}

// ModuleSource generates the runtime module's source: log category
// definition, startup/shutdown logging, and the module registration macro.
func ModuleSource(meta PluginMetadata, ids Derived) Artifact {
	var b strings.Builder

	fmt.Fprintf(&b, "#include \"%s.h\"\n\n", ids.ModuleName)
	fmt.Fprintf(&b, "DEFINE_LOG_CATEGORY(%s);\n\n", ids.LogCategory)

	fmt.Fprintf(&b, "void %s::StartupModule()\n{\n", ids.ModuleClass)
	fmt.Fprintf(&b, "\tUE_LOG(%s, Log, TEXT(\"%s module started\"));\n", ids.LogCategory, ids.ModuleName)
	if meta.EditorModule {
		b.WriteString("\tRegisterEditorUtilities();\n")
	}
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "void %s::ShutdownModule()\n{\n", ids.ModuleClass)
	fmt.Fprintf(&b, "\tUE_LOG(%s, Log, TEXT(\"%s module shut down\"));\n", ids.LogCategory, ids.ModuleName)
	b.WriteString("}\n\n")

	if meta.EditorModule {
		fmt.Fprintf(&b, "void %s::RegisterEditorUtilities()\n{\n", ids.ModuleClass)
		b.WriteString("\t// Editor-side registration happens in the editor module; utilities\n")
		b.WriteString("\t// needed by both build targets belong here.\n")
		b.WriteString("}\n\n")
	}

	fmt.Fprintf(&b, "IMPLEMENT_MODULE(%s, %s)\n", ids.ModuleClass, ids.ModuleName)

	return Artifact{
		Title:    "Module Source",
		Path:     fmt.Sprintf("Source/%s/Private/%s.cpp", ids.ModuleName, ids.ModuleName),
		Language: LangCPP,
		Body:     b.String(),
	}
}

package scaffold

import (
	"fmt"
	"strings"
)

// EditorHeader generates the editor module header. The level-viewport
// extension hook is always declared; the menu hook only when the editor-menu
// flag is also set.
func EditorHeader(meta PluginMetadata, ids Derived) Artifact {
	var b strings.Builder

	b.WriteString("#pragma once\n\n")
	b.WriteString("#include \"CoreMinimal.h\"\n")
	b.WriteString("#include \"Modules/ModuleManager.h\"\n\n")
	fmt.Fprintf(&b, "class %s : public IModuleInterface\n", ids.EditorModuleClass)
	b.WriteString("{\npublic:\n")
	b.WriteString("\tvirtual void StartupModule() override;\n")
	b.WriteString("\tvirtual void ShutdownModule() override;\n\n")
	b.WriteString("private:\n")
	if meta.EditorMenu {
		b.WriteString("\tvoid RegisterMenus();\n")
	}
	b.WriteString("\tvoid RegisterViewportExtension();\n")
	b.WriteString("};\n")

	return Artifact{
		Title:    "Editor Module Header",
		Path:     fmt.Sprintf("Source/%s/Public/%s.h", ids.EditorModuleName, ids.EditorModuleName),
		Language: LangCPP,
		Body:     b.String(),
	}
}

// EditorSource generates the editor module source. Startup registers the
// ToolMenus callback only under the menu flag and the viewport extension
// unconditionally; shutdown unregisters the menu owner only under the menu
// flag.
func EditorSource(meta PluginMetadata, ids Derived) Artifact {
	var b strings.Builder

	fmt.Fprintf(&b, "#include \"%s.h\"\n\n", ids.EditorModuleName)
	if meta.EditorMenu {
		b.WriteString("#include \"ToolMenus.h\"\n\n")
	}

	fmt.Fprintf(&b, "void %s::StartupModule()\n{\n", ids.EditorModuleClass)
	if meta.EditorMenu {
		fmt.Fprintf(&b, "\tUToolMenus::RegisterStartupCallback(FSimpleMulticastDelegate::FDelegate::CreateRaw(this, &%s::RegisterMenus));\n",
			ids.EditorModuleClass)
	}
	b.WriteString("\tRegisterViewportExtension();\n}\n\n")

	fmt.Fprintf(&b, "void %s::ShutdownModule()\n{\n", ids.EditorModuleClass)
	if meta.EditorMenu {
		b.WriteString("\tUToolMenus::UnRegisterStartupCallback(this);\n")
		b.WriteString("\tUToolMenus::UnregisterOwner(this);\n")
	}
	b.WriteString("}\n\n")

	if meta.EditorMenu {
		fmt.Fprintf(&b, "void %s::RegisterMenus()\n{\n", ids.EditorModuleClass)
		b.WriteString("\tFToolMenuOwnerScoped OwnerScoped(this);\n")
		b.WriteString("\tUToolMenu* Menu = UToolMenus::Get()->ExtendMenu(\"LevelEditor.MainMenu.Window\");\n")
		fmt.Fprintf(&b, "\tMenu->AddSection(\"%s\", NSLOCTEXT(\"%s\", \"%sSection\", \"%s\"));\n",
			ids.ModuleName, ids.EditorModuleName, ids.ModuleName, menuLabel(meta, ids))
		b.WriteString("}\n\n")
	}

	fmt.Fprintf(&b, "void %s::RegisterViewportExtension()\n{\n", ids.EditorModuleClass)
	b.WriteString("\t// Level viewport extension point; wired through the LevelEditor module.\n")
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "IMPLEMENT_MODULE(%s, %s)\n", ids.EditorModuleClass, ids.EditorModuleName)

	return Artifact{
		Title:    "Editor Module Source",
		Path:     fmt.Sprintf("Source/%s/Private/%s.cpp", ids.EditorModuleName, ids.EditorModuleName),
		Language: LangCPP,
		Body:     b.String(),
	}
}

// menuLabel is the human-readable section label for the editor menu entry.
func menuLabel(meta PluginMetadata, ids Derived) string {
	name := strings.TrimSpace(meta.FriendlyName)
	if name == "" {
		return ids.ModuleName
	}
	return name
}

package scaffold

import (
	"fmt"
	"sort"
	"strings"
)

// BuildScript generates the module's Build.cs. Dependency sets start from a
// fixed base and grow per feature flag; each set is rendered sorted so the
// script is stable no matter which order flags were toggled in. Editor-only
// modules are additionally gated behind Target.bBuildEditor so shipping
// builds never link them.
func BuildScript(meta PluginMetadata, ids Derived) Artifact {
	public := []string{"Core"}
	private := []string{"CoreUObject", "Projects", "Slate", "SlateCore"}

	if meta.FunctionLibrary {
		public = append(public, "Engine")
	}
	if meta.AsyncAction {
		public = append(public, "GameplayTasks")
	}

	var editorOnly []string
	if meta.EditorModule {
		editorOnly = []string{"LevelEditor", "ToolMenus", "UnrealEd"}
	}

	sort.Strings(public)
	sort.Strings(private)
	sort.Strings(editorOnly)

	var b strings.Builder
	b.WriteString("using UnrealBuildTool;\n\n")
	fmt.Fprintf(&b, "public class %s : ModuleRules\n{\n", ids.ModuleName)
	fmt.Fprintf(&b, "\tpublic %s(ReadOnlyTargetRules Target) : base(Target)\n\t{\n", ids.ModuleName)
	b.WriteString("\t\tPCHUsage = ModuleRules.PCHUsageMode.UseExplicitOrSharedPCHs;\n\n")

	writeDependencyBlock(&b, "PublicDependencyModuleNames", public, 2)
	b.WriteString("\n")
	writeDependencyBlock(&b, "PrivateDependencyModuleNames", private, 2)

	if len(editorOnly) > 0 {
		b.WriteString("\n\t\tif (Target.bBuildEditor)\n\t\t{\n")
		writeDependencyBlock(&b, "PrivateDependencyModuleNames", editorOnly, 3)
		b.WriteString("\t\t}\n")
	}

	b.WriteString("\t}\n}\n")

	return Artifact{
		Title:    "Build Script",
		Path:     fmt.Sprintf("Source/%s/%s.Build.cs", ids.ModuleName, ids.ModuleName),
		Language: LangCSharp,
		Body:     b.String(),
	}
}

// writeDependencyBlock renders one AddRange call at the given tab depth.
func writeDependencyBlock(b *strings.Builder, set string, names []string, depth int) {
	indent := strings.Repeat("\t", depth)
	fmt.Fprintf(b, "%s%s.AddRange(new string[]\n%s{\n", indent, set, indent)
	for _, name := range names {
		fmt.Fprintf(b, "%s\t%q,\n", indent, name)
	}
	fmt.Fprintf(b, "%s});\n", indent)
}

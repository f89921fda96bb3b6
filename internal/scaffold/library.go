package scaffold

import (
	"fmt"
	"strings"

	"github.com/forgelabs/pluginforge/internal/identifier"
)

// LibraryHeader generates the blueprint function library header: one static
// UFUNCTION declaration per normalized endpoint, carrying the endpoint's
// metadata tags.
func LibraryHeader(meta PluginMetadata, ids Derived, endpoints []NormalizedEndpoint) Artifact {
	var b strings.Builder

	b.WriteString("#pragma once\n\n")
	b.WriteString("#include \"CoreMinimal.h\"\n")
	b.WriteString("#include \"Kismet/BlueprintFunctionLibrary.h\"\n")
	fmt.Fprintf(&b, "#include \"%sLibrary.generated.h\"\n\n", ids.ModuleName)

	b.WriteString("UCLASS()\n")
	fmt.Fprintf(&b, "class %s %s : public UBlueprintFunctionLibrary\n", ids.APIMacro, ids.LibraryClass)
	b.WriteString("{\n\tGENERATED_BODY()\n\npublic:\n")

	for i, ep := range endpoints {
		if i > 0 {
			b.WriteString("\n")
		}
		if ep.Description != "" {
			fmt.Fprintf(&b, "\t/** %s */\n", ep.Description)
		}
		fmt.Fprintf(&b, "\tUFUNCTION(BlueprintCallable, %s)\n", strings.Join(ep.Tags, ", "))
		fmt.Fprintf(&b, "\tstatic %s %s(%s);\n", ep.ReturnType, ep.Name, paramList(ep.Params))
	}

	b.WriteString("};\n")

	return Artifact{
		Title:    "Function Library Header",
		Path:     fmt.Sprintf("Source/%s/Public/%sLibrary.h", ids.ModuleName, ids.ModuleName),
		Language: LangCPP,
		Body:     b.String(),
	}
}

// LibrarySource generates the library definitions. Every function opens with
// a guard on the world-context parameter (warning log plus default return)
// and closes with a placeholder body returning the same default expression.
func LibrarySource(meta PluginMetadata, ids Derived, endpoints []NormalizedEndpoint) Artifact {
	var b strings.Builder

	fmt.Fprintf(&b, "#include \"%sLibrary.h\"\n\n", ids.ModuleName)
	fmt.Fprintf(&b, "#include \"%s.h\"\n", ids.ModuleName)

	for _, ep := range endpoints {
		ret := identifier.DefaultReturn(ep.ReturnType)

		b.WriteString("\n")
		fmt.Fprintf(&b, "%s %s::%s(%s)\n{\n", ep.ReturnType, ids.LibraryClass, ep.Name, paramList(ep.Params))
		fmt.Fprintf(&b, "\tif (!IsValid(%s))\n\t{\n", WorldContextName)
		fmt.Fprintf(&b, "\t\tUE_LOG(%s, Warning, TEXT(\"%s called without a valid world context\"));\n",
			ids.LogCategory, ep.Name)
		fmt.Fprintf(&b, "\t\t%s\n\t}\n\n", returnStatement(ret))
		fmt.Fprintf(&b, "\t// Implementation goes here.\n")
		fmt.Fprintf(&b, "\t%s\n}\n", returnStatement(ret))
	}

	return Artifact{
		Title:    "Function Library Source",
		Path:     fmt.Sprintf("Source/%s/Private/%sLibrary.cpp", ids.ModuleName, ids.ModuleName),
		Language: LangCPP,
		Body:     b.String(),
	}
}

// paramList renders "Type Name, Type Name" for a signature.
func paramList(params []Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = strings.TrimSpace(p.Type + " " + p.Name)
	}
	return strings.Join(parts, ", ")
}

// returnStatement renders the guard/placeholder return for a default
// expression; void returns bare.
func returnStatement(expr string) string {
	if expr == "" {
		return "return;"
	}
	return "return " + expr + ";"
}

package scaffold

import (
	"strings"
	"testing"
)

func TestLibraryHeader(t *testing.T) {
	meta := baseMeta()
	meta.FunctionLibrary = true
	ids := Derive(meta)
	endpoints := Normalize([]EndpointSpec{
		{Name: "sample rate", ReturnType: "float", Description: "Returns the sample rate."},
	}, meta.FriendlyName)

	body := LibraryHeader(meta, ids, endpoints).Body

	for _, want := range []string{
		"class NEBULA_TOOLKIT_API UNebulaToolkitLibrary : public UBlueprintFunctionLibrary",
		`#include "NebulaToolkitLibrary.generated.h"`,
		"/** Returns the sample rate. */",
		`UFUNCTION(BlueprintCallable, Category = "Nebula Toolkit", meta = (WorldContext = "WorldContextObject"))`,
		"static float Samplerate(UObject* WorldContextObject);",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("missing %q in:\n%s", want, body)
		}
	}
}

// An endpoint returning float with no declared parameters gets exactly the
// injected context parameter and a "return 0.f;" guard default.
func TestLibrarySourceGuardClause(t *testing.T) {
	meta := baseMeta()
	meta.FunctionLibrary = true
	ids := Derive(meta)
	endpoints := Normalize([]EndpointSpec{
		{Name: "Sample", ReturnType: "float"},
	}, meta.FriendlyName)

	body := LibrarySource(meta, ids, endpoints).Body

	for _, want := range []string{
		"float UNebulaToolkitLibrary::Sample(UObject* WorldContextObject)",
		"if (!IsValid(WorldContextObject))",
		`UE_LOG(LogNebulaToolkit, Warning, TEXT("Sample called without a valid world context"));`,
		"return 0.f;",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("missing %q in:\n%s", want, body)
		}
	}
}

func TestLibrarySourceVoidReturn(t *testing.T) {
	meta := baseMeta()
	meta.FunctionLibrary = true
	ids := Derive(meta)
	endpoints := Normalize([]EndpointSpec{{Name: "Reset"}}, meta.FriendlyName)

	body := LibrarySource(meta, ids, endpoints).Body
	if !strings.Contains(body, "void UNebulaToolkitLibrary::Reset(") {
		t.Errorf("missing void definition in:\n%s", body)
	}
	if !strings.Contains(body, "\t\treturn;\n") {
		t.Errorf("void guard should use a bare return:\n%s", body)
	}
	if strings.Contains(body, "return ;") {
		t.Errorf("malformed return statement in:\n%s", body)
	}
}

func TestLibraryDeclarationOrder(t *testing.T) {
	meta := baseMeta()
	meta.FunctionLibrary = true
	ids := Derive(meta)
	endpoints := Normalize([]EndpointSpec{
		{Name: "alpha"}, {Name: "beta"}, {Name: "gamma"},
	}, meta.FriendlyName)

	body := LibraryHeader(meta, ids, endpoints).Body
	a := strings.Index(body, "Alpha(")
	b := strings.Index(body, "Beta(")
	g := strings.Index(body, "Gamma(")
	if !(a >= 0 && a < b && b < g) {
		t.Errorf("declarations out of input order: Alpha@%d Beta@%d Gamma@%d", a, b, g)
	}
}

package scaffold

import (
	"strings"
	"testing"
)

func TestNormalizeInjectsWorldContext(t *testing.T) {
	specs := []EndpointSpec{
		{Name: "Sample", ReturnType: "float"},
	}

	got := Normalize(specs, "Nebula Toolkit")
	if len(got) != 1 {
		t.Fatalf("expected 1 endpoint, got %d", len(got))
	}

	ep := got[0]
	if len(ep.Params) != 1 {
		t.Fatalf("expected exactly the injected context param, got %v", ep.Params)
	}
	if ep.Params[0].Name != WorldContextName || ep.Params[0].Type != WorldContextType {
		t.Errorf("injected param = %+v", ep.Params[0])
	}
	if !ep.HasWorldContext {
		t.Error("HasWorldContext = false after injection")
	}
}

func TestNormalizeKeepsUserWorldContext(t *testing.T) {
	specs := []EndpointSpec{
		{Name: "Sample", Params: []Param{
			{Name: "WorldContextObject", Type: "UObject*"},
			{Name: "Amount", Type: "float"},
		}},
	}

	ep := Normalize(specs, "X")[0]
	if len(ep.Params) != 2 {
		t.Fatalf("context param injected despite user-supplied one: %v", ep.Params)
	}
	if ep.Params[0].Name != WorldContextName {
		t.Errorf("user context param not first: %v", ep.Params)
	}
}

func TestNormalizeDeduplicatesParams(t *testing.T) {
	specs := []EndpointSpec{
		{Name: "Move", Params: []Param{
			{Name: "Target!", Type: "AActor*"},
			{Name: "Target", Type: "FVector"},
		}},
	}

	ep := Normalize(specs, "X")[0]
	// Context param is prepended, then the two user params in order.
	names := []string{ep.Params[1].Name, ep.Params[2].Name}
	if names[0] != "Target" || names[1] != "Target1" {
		t.Errorf("dedup got %v, want [Target Target1]", names)
	}
}

func TestNormalizeNoDuplicateNames(t *testing.T) {
	specs := []EndpointSpec{
		{Name: "A", Params: []Param{
			{Name: "x"}, {Name: "x"}, {Name: "x"}, {Name: "!!"}, {Name: "??"},
		}},
		{Name: "B", Params: []Param{{Name: "!!"}}},
	}

	for _, ep := range Normalize(specs, "X") {
		seen := map[string]bool{}
		for _, p := range ep.Params {
			if seen[p.Name] {
				t.Errorf("endpoint %s has duplicate param %q", ep.Name, p.Name)
			}
			seen[p.Name] = true
		}
		if len(ep.Params) == 0 {
			t.Errorf("endpoint %s has no params at all", ep.Name)
		}
	}
}

// Placeholder names carry the endpoint index, so unnameable parameters from
// different endpoints never produce the same identifier.
func TestNormalizePlaceholderPerEndpoint(t *testing.T) {
	specs := []EndpointSpec{
		{Name: "A", Params: []Param{{Name: "!!!", Type: "int32"}}},
		{Name: "B", Params: []Param{{Name: "???", Type: "int32"}}},
	}

	got := Normalize(specs, "X")
	a := got[0].Params[1].Name
	b := got[1].Params[1].Name
	if a == b {
		t.Errorf("placeholders collide across endpoints: %q", a)
	}
	if a != "Param0" || b != "Param1" {
		t.Errorf("placeholders = %q, %q, want Param0, Param1", a, b)
	}
}

func TestNormalizeDefaultsReturnType(t *testing.T) {
	specs := []EndpointSpec{
		{Name: "A", ReturnType: "  "},
		{Name: "B", ReturnType: "FString"},
	}

	got := Normalize(specs, "X")
	if got[0].ReturnType != "void" {
		t.Errorf("blank return type = %q, want void", got[0].ReturnType)
	}
	if got[1].ReturnType != "FString" {
		t.Errorf("return type = %q, want FString", got[1].ReturnType)
	}
}

func TestNormalizeTags(t *testing.T) {
	specs := []EndpointSpec{{Name: "Sample"}}

	ep := Normalize(specs, "Nebula Toolkit")[0]
	joined := strings.Join(ep.Tags, ", ")
	if !strings.Contains(joined, `Category = "Nebula Toolkit"`) {
		t.Errorf("missing category tag in %q", joined)
	}
	// Post-injection the context tag must always be present; emit it from
	// observed state, never by assumption.
	if !strings.Contains(joined, `WorldContext = "WorldContextObject"`) {
		t.Errorf("missing world-context tag in %q", joined)
	}
}

func TestNormalizePreservesOrder(t *testing.T) {
	specs := []EndpointSpec{
		{Name: "first"}, {Name: "second"}, {Name: "third"},
	}

	got := Normalize(specs, "X")
	want := []string{"First", "Second", "Third"}
	for i, ep := range got {
		if ep.Name != want[i] {
			t.Errorf("endpoint %d = %q, want %q", i, ep.Name, want[i])
		}
	}
}

func TestParseParamDraft(t *testing.T) {
	tests := []struct {
		name  string
		draft string
		want  []Param
	}{
		{
			"two pairs",
			"Target:AActor*, Amount:float",
			[]Param{{Name: "Target", Type: "AActor*"}, {Name: "Amount", Type: "float"}},
		},
		{
			"malformed entries dropped",
			"Target, :float, Name:, Good:int32",
			[]Param{{Name: "Good", Type: "int32"}},
		},
		{"empty draft", "", nil},
		{"only commas", ",,,", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseParamDraft(tt.draft)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseParamDraft(%q) = %v, want %v", tt.draft, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("param %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

package identifier

import (
	"strings"
	"testing"
)

func TestPascalCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"spaces and punctuation", "Nebula Toolkit!", "NebulaToolkit"},
		{"already pascal", "NebulaToolkit", "NebulaToolkit"},
		{"lowercase words", "my cool plugin", "MyCoolPlugin"},
		{"leading junk", "--hello--world--", "HelloWorld"},
		{"digits kept", "mod2 loader", "Mod2Loader"},
		{"empty", "", ""},
		{"no alphanumerics", "!!! ---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PascalCase(tt.input); got != tt.want {
				t.Errorf("PascalCase(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// PascalCase must be idempotent over its own output alphabet: running it
// twice never changes the result.
func TestPascalCaseIdempotent(t *testing.T) {
	inputs := []string{"Nebula Toolkit!", "my cool plugin", "mod2 loader", "X", ""}
	for _, in := range inputs {
		once := PascalCase(in)
		twice := PascalCase(once)
		if once != twice {
			t.Errorf("PascalCase not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestExportMacro(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"NebulaToolkit", "NEBULA_TOOLKIT_API"},
		{"nebula toolkit", "NEBULA_TOOLKIT_API"},
		{"My-Plugin", "MY_PLUGIN_API"},
		{"HTTPServer", "HTTPSERVER_API"},
		{"a__b", "A_B_API"},
		{"_trimmed_", "TRIMMED_API"},
		{"", "_API"},
	}

	for _, tt := range tests {
		if got := ExportMacro(tt.input); got != tt.want {
			t.Errorf("ExportMacro(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestExportMacroShape(t *testing.T) {
	inputs := []string{"NebulaToolkit", "weird!!input", "camelCaseName", "x"}
	for _, in := range inputs {
		got := ExportMacro(in)
		if !strings.HasSuffix(got, "_API") {
			t.Errorf("ExportMacro(%q) = %q, missing _API suffix", in, got)
		}
		if got != strings.ToUpper(got) {
			t.Errorf("ExportMacro(%q) = %q, contains lowercase", in, got)
		}
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Target", "Target"},
		{"my param", "myparam"},
		{"9Lives", "_9Lives"},
		{"!!!bad***name", "badname"},
		{"_private", "_private"},
		{"", ""},
		{"!!!", ""},
	}

	for _, tt := range tests {
		if got := Sanitize(tt.input); got != tt.want {
			t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

// Sanitize output may only contain [A-Za-z0-9_] and, when non-empty, must
// start with a letter or underscore.
func TestSanitizeAlphabet(t *testing.T) {
	inputs := []string{"Target", "9Lives", "über param", "a b c", "なまえ", "1 2 3"}
	for _, in := range inputs {
		got := Sanitize(in)
		for i := 0; i < len(got); i++ {
			c := got[i]
			valid := c == '_' ||
				(c >= 'a' && c <= 'z') ||
				(c >= 'A' && c <= 'Z') ||
				(c >= '0' && c <= '9')
			if !valid {
				t.Errorf("Sanitize(%q) = %q, invalid byte %q", in, got, c)
			}
		}
		if len(got) > 0 {
			c := got[0]
			if !(c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')) {
				t.Errorf("Sanitize(%q) = %q, starts with %q", in, got, c)
			}
		}
	}
}

func TestDefaultReturn(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"void", ""},
		{"", ""},
		{"  void  ", ""},
		{"bool", "false"},
		{"Bool", "false"},
		{"float", "0.f"},
		{"double", "0.f"},
		{"int", "0"},
		{"int32", "0"},
		{"int64", "0"},
		{"uint32", "0"},
		{"FString", `TEXT("")`},
		{"FVector", "{}"},
		{"UObject*", "{}"},
	}

	for _, tt := range tests {
		if got := DefaultReturn(tt.input); got != tt.want {
			t.Errorf("DefaultReturn(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

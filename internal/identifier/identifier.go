// Package identifier converts free-form user text into symbols that are safe
// to embed in generated C++ and C# sources: PascalCase type names, SCREAMING
// export macros, and bare identifiers. Every function is total -- bad input
// degrades to an empty or fallback value, it never errors.
package identifier

import (
	"strings"
	"unicode"
)

// PascalCase splits text on runs of non-alphanumeric characters, capitalizes
// the first letter of each segment, and concatenates the segments. Input with
// no alphanumeric characters yields an empty string; callers must supply
// their own fallback.
func PascalCase(text string) string {
	var b strings.Builder
	startOfSegment := true

	for _, r := range text {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			startOfSegment = true
			continue
		}
		if startOfSegment {
			b.WriteRune(unicode.ToUpper(r))
			startOfSegment = false
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ExportMacro derives a DLL-export macro name from a module name: non
// alphanumerics become underscores, an underscore is inserted at every
// lower-to-upper camel boundary, runs of underscores collapse, and the result
// is uppercased with an "_API" suffix appended.
//
// "NebulaToolkit" -> "NEBULA_TOOLKIT_API".
func ExportMacro(text string) string {
	var b strings.Builder
	prev := rune(0)

	for _, r := range text {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			b.WriteRune('_')
		case unicode.IsUpper(r) && unicode.IsLower(prev):
			b.WriteRune('_')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
		prev = r
	}

	s := b.String()
	for strings.Contains(s, "__") {
		s = strings.ReplaceAll(s, "__", "_")
	}
	s = strings.Trim(s, "_")
	return strings.ToUpper(s) + "_API"
}

// Sanitize strips every character outside [A-Za-z0-9_] and prefixes an
// underscore if the first surviving character is a digit. The result is
// either empty or a syntactically valid bare identifier in C-family
// languages: leading junk is removed by the filter, a leading digit is
// rescued rather than dropped.
func Sanitize(text string) string {
	var b strings.Builder
	for _, r := range text {
		if r == '_' || (r < 128 && (unicode.IsLetter(r) || unicode.IsDigit(r))) {
			b.WriteRune(r)
		}
	}

	s := b.String()
	if len(s) > 0 && s[0] >= '0' && s[0] <= '9' {
		s = "_" + s
	}
	return s
}

// DefaultReturn maps a return-type token to the canonical "empty" C++ value
// expression used by generated guard clauses and placeholder bodies. The
// function is total: unrecognized types fall back to brace initialization.
func DefaultReturn(returnType string) string {
	token := strings.ToLower(strings.TrimSpace(returnType))
	switch {
	case token == "" || token == "void":
		return ""
	case token == "bool":
		return "false"
	case token == "float" || token == "double":
		return "0.f"
	case strings.HasPrefix(token, "int") || strings.HasSuffix(token, "32") || strings.HasSuffix(token, "64"):
		return "0"
	case token == "fstring":
		return `TEXT("")`
	default:
		return "{}"
	}
}

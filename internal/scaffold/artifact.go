package scaffold

// Artifact languages, used by the presentation layer for syntax hints.
const (
	LangJSON   = "json"
	LangCPP    = "cpp"
	LangCSharp = "csharp"
)

// Artifact is one generated text document: a display title, the relative
// path it belongs at inside the plugin directory, a language tag, and the
// full text body. Artifacts are stateless values, fully regenerated from the
// metadata and endpoint list on every change and never patched in place.
type Artifact struct {
	Title    string `json:"title"`
	Path     string `json:"path"`
	Language string `json:"language"`
	Body     string `json:"body"`
}

// Bundle generates every artifact for the current state, in the fixed panel
// order: descriptor, module pair, build script, then the flag-gated pairs
// (function library, async action, editor module). Each generator sees the
// same derived identifiers and normalized endpoints, so the artifacts of one
// bundle always cross-reference consistently.
func Bundle(meta PluginMetadata, specs []EndpointSpec) []Artifact {
	ids := Derive(meta)
	endpoints := Normalize(specs, meta.FriendlyName)

	artifacts := []Artifact{
		Descriptor(meta, ids),
		ModuleHeader(meta, ids),
		ModuleSource(meta, ids),
		BuildScript(meta, ids),
	}

	if meta.FunctionLibrary {
		artifacts = append(artifacts, LibraryHeader(meta, ids, endpoints), LibrarySource(meta, ids, endpoints))
	}
	if meta.AsyncAction {
		artifacts = append(artifacts, AsyncHeader(meta, ids), AsyncSource(meta, ids))
	}
	if meta.EditorModule {
		artifacts = append(artifacts, EditorHeader(meta, ids), EditorSource(meta, ids))
	}

	return artifacts
}

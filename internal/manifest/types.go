package manifest

// FileName is the manifest file expected at the root of a template directory.
// It is never copied into generated projects.
const FileName = "template.yaml"

// TemplateManifest describes a project template.
type TemplateManifest struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Version     string `yaml:"version" json:"version"`

	// Requires is a semver constraint on the CLI version, e.g. ">= 0.2.0".
	Requires string `yaml:"requires,omitempty" json:"requires,omitempty"`

	// Variables holds default values for substitution variables. Values
	// supplied by the caller take precedence.
	Variables map[string]string `yaml:"variables,omitempty" json:"variables,omitempty"`

	// CopyWithoutRender lists glob patterns of files copied verbatim. They
	// are matched against slash-separated paths relative to the project
	// directory, before any path segment is rendered.
	CopyWithoutRender []string `yaml:"copy_without_render,omitempty" json:"copy_without_render,omitempty"`
}

package scaffold

import "strings"

// Variable names every template can rely on.
const (
	VarProjectName     = "project_name"
	VarProjectSlug     = "project_slug"
	VarPhoenixEndpoint = "phoenix_endpoint"
)

// Context maps substitution variable names to their values.
type Context map[string]string

// Slugify lowercases name and replaces spaces and hyphens with underscores.
// Other characters are kept as-is, so the result is not guaranteed to be a
// valid Python identifier.
func Slugify(name string) string {
	slug := strings.ToLower(name)
	slug = strings.ReplaceAll(slug, " ", "_")
	return strings.ReplaceAll(slug, "-", "_")
}

// NewContext builds the rendering context for projectName. extra supplies
// additional variables; project_name and project_slug always win over it.
func NewContext(projectName string, extra map[string]string) Context {
	ctx := make(Context, len(extra)+2)
	for k, v := range extra {
		ctx[k] = v
	}
	ctx[VarProjectName] = projectName
	ctx[VarProjectSlug] = Slugify(projectName)
	return ctx
}

// ProjectName returns the verbatim project name.
func (c Context) ProjectName() string { return c[VarProjectName] }

// ProjectSlug returns the derived slug.
func (c Context) ProjectSlug() string { return c[VarProjectSlug] }

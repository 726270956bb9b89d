package manifest

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"
)

// InvalidManifestError is returned by Load when a manifest fails schema validation.
type InvalidManifestError struct {
	Source string
	Issues []ValidationIssue
}

func (e *InvalidManifestError) Error() string {
	msgs := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		msg := issue.Message
		if issue.Path != "" {
			msg = issue.Path + ": " + msg
		}
		msgs = append(msgs, msg)
	}
	return fmt.Sprintf("invalid manifest %s: %s", e.Source, strings.Join(msgs, "; "))
}

// IncompatibleError is returned when the running CLI does not satisfy a
// template's Requires constraint.
type IncompatibleError struct {
	Template   string
	Requires   string
	CLIVersion string
}

func (e *IncompatibleError) Error() string {
	return fmt.Sprintf("template %q requires CLI version %s, running %s", e.Template, e.Requires, e.CLIVersion)
}

// Parse unmarshals manifest YAML without validating it.
func Parse(data []byte, source string) (*TemplateManifest, error) {
	var m TemplateManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", source, err)
	}
	return &m, nil
}

// Load reads the manifest at name inside fsys, validates it against the
// schema, and returns the parsed manifest.
func Load(fsys fs.FS, name string) (*TemplateManifest, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", name, err)
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating manifest %s: %w", name, err)
	}
	if !result.Valid {
		return nil, &InvalidManifestError{Source: name, Issues: result.Issues}
	}

	return Parse(data, name)
}

// CheckCompatible verifies cliVersion against the Requires constraint.
// Development builds whose version is not valid semver are always accepted.
func (m *TemplateManifest) CheckCompatible(cliVersion string) error {
	if m.Requires == "" {
		return nil
	}

	constraint, err := semver.NewConstraint(m.Requires)
	if err != nil {
		return fmt.Errorf("parsing requires constraint %q: %w", m.Requires, err)
	}

	v, err := semver.NewVersion(strings.TrimPrefix(cliVersion, "v"))
	if err != nil {
		return nil
	}

	if !constraint.Check(v) {
		return &IncompatibleError{Template: m.Name, Requires: m.Requires, CLIVersion: cliVersion}
	}
	return nil
}

// CopyWithoutRenderMatch reports whether the slash-separated project-relative
// path matches one of the CopyWithoutRender patterns. Patterns without a slash
// also match against the base name.
func (m *TemplateManifest) CopyWithoutRenderMatch(rel string) bool {
	for _, pattern := range m.CopyWithoutRender {
		if ok, _ := path.Match(pattern, rel); ok {
			return true
		}
		if !strings.Contains(pattern, "/") {
			if ok, _ := path.Match(pattern, path.Base(rel)); ok {
				return true
			}
		}
	}
	return false
}

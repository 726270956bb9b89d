package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrTemplateNotFound matches any *TemplateNotFoundError.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrNoProjectDir means the template has no directory whose name
	// contains a substitution marker.
	ErrNoProjectDir = errors.New("template has no project directory")

	// ErrProjectExists means the rendered project directory is already present
	// in the output directory.
	ErrProjectExists = errors.New("project directory already exists")
)

// TemplateNotFoundError reports a template name with no backing directory.
type TemplateNotFoundError struct {
	Name string
	Path string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("template '%s' not found at %s", e.Name, e.Path)
}

func (e *TemplateNotFoundError) Is(target error) bool {
	return target == ErrTemplateNotFound
}

// RenderError wraps a failure that happened while rendering a template that
// was found. Path is the template-relative path being processed, if any.
type RenderError struct {
	Template string
	Path     string
	Err      error
}

func (e *RenderError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("rendering template %s: %s: %v", e.Template, e.Path, e.Err)
	}
	return fmt.Sprintf("rendering template %s: %v", e.Template, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

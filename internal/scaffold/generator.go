package scaffold

import (
	"fmt"

	"github.com/phoenix-kits/phoenix-kits/internal/engine"
	"go.uber.org/zap"
)

// Generator prepares the context for a project and generates it through a
// Renderer.
type Generator struct {
	renderer engine.Renderer
	extra    map[string]string
	logger   *zap.Logger
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithVariables adds variables to every context the generator builds.
// Later calls override earlier ones key by key.
func WithVariables(vars map[string]string) GeneratorOption {
	return func(g *Generator) {
		for k, v := range vars {
			g.extra[k] = v
		}
	}
}

// WithLogger sets the generator's logger.
func WithLogger(logger *zap.Logger) GeneratorOption {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewGenerator returns a Generator delegating rendering to r.
func NewGenerator(r engine.Renderer, opts ...GeneratorOption) *Generator {
	g := &Generator{
		renderer: r,
		extra:    make(map[string]string),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// CreateProject generates templateName for projectName inside destination
// and returns the absolute path of the new project directory. Renderer errors
// are returned unchanged so callers can match engine.ErrTemplateNotFound.
func (g *Generator) CreateProject(templateName, projectName, destination string) (string, error) {
	ctx := g.Context(projectName)

	g.logger.Debug("creating project",
		zap.String("template", templateName),
		zap.String("project_name", ctx.ProjectName()),
		zap.String("project_slug", ctx.ProjectSlug()),
		zap.String("destination", destination),
	)

	path, err := g.renderer.Render(templateName, ctx, destination)
	if err != nil {
		return "", err
	}
	if path == "" {
		return "", fmt.Errorf("renderer returned no project path for template %s", templateName)
	}
	return path, nil
}

// Context returns the rendering context CreateProject would use.
func (g *Generator) Context(projectName string) Context {
	return NewContext(projectName, g.extra)
}

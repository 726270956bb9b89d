package engine

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/phoenix-kits/phoenix-kits/internal/manifest"
	"github.com/phoenix-kits/phoenix-kits/internal/platform"
	"github.com/phoenix-kits/phoenix-kits/internal/templates"
	"go.uber.org/zap"
)

// Renderer renders the named template with vars into outputDir and returns
// the absolute path of the generated project directory.
type Renderer interface {
	Render(templateName string, vars map[string]string, outputDir string) (string, error)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(templateName string, vars map[string]string, outputDir string) (string, error)

// Render calls f.
func (f RendererFunc) Render(templateName string, vars map[string]string, outputDir string) (string, error) {
	return f(templateName, vars, outputDir)
}

// binarySniffLen is how much of a file is inspected for NUL bytes.
const binarySniffLen = 8000

// projectMarker identifies the project directory at the top of a template.
const projectMarker = "{{"

// Option configures a TemplateEngine.
type Option func(*TemplateEngine)

// WithLogger sets the logger used for rendering diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(e *TemplateEngine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithCLIVersion sets the version checked against manifest requirements.
func WithCLIVersion(version string) Option {
	return func(e *TemplateEngine) {
		e.cliVersion = version
	}
}

// TemplateEngine renders templates from a store with text/template.
type TemplateEngine struct {
	store      *templates.Store
	logger     *zap.Logger
	cliVersion string
}

var _ Renderer = (*TemplateEngine)(nil)

// New returns an engine reading templates from store.
func New(store *templates.Store, opts ...Option) *TemplateEngine {
	e := &TemplateEngine{
		store:      store,
		logger:     zap.NewNop(),
		cliVersion: "dev",
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Render implements Renderer. Generation is non-interactive: every variable
// must come from vars or from the manifest defaults.
func (e *TemplateEngine) Render(templateName string, vars map[string]string, outputDir string) (string, error) {
	log := e.logger.With(zap.String("template", templateName))

	p, err := e.prepare(templateName)
	if err != nil {
		return "", err
	}
	log.Debug("template resolved", zap.String("location", e.store.Location(templateName)))

	data := mergeVars(p.manifest.Variables, vars)

	projectName, err := renderSegment(p.projectDir, data)
	if err != nil {
		return "", &RenderError{Template: templateName, Path: p.projectDir, Err: err}
	}

	absOut, err := filepath.Abs(outputDir)
	if err != nil {
		return "", &RenderError{Template: templateName, Err: fmt.Errorf("resolving output directory: %w", err)}
	}
	target := filepath.Join(absOut, projectName)

	if _, err := os.Lstat(target); err == nil {
		return "", &RenderError{Template: templateName, Err: fmt.Errorf("%w: %s", ErrProjectExists, target)}
	}

	if err := os.MkdirAll(absOut, 0755); err != nil {
		return "", &RenderError{Template: templateName, Err: fmt.Errorf("creating output directory: %w", err)}
	}

	log.Debug("rendering project", zap.String("target", target), zap.Int("variables", len(data)))

	r := &treeRenderer{
		tree:       p.tree,
		projectDir: p.projectDir,
		target:     target,
		data:       data,
		manifest:   p.manifest,
		logger:     log,
	}
	files, err := r.run()
	if err != nil {
		return "", &RenderError{Template: templateName, Path: r.current, Err: err}
	}

	log.Info("project generated", zap.String("path", target), zap.Int("files", files))
	return target, nil
}

// Check runs every validation Render performs before writing: the template
// exists, its manifest is valid and compatible, and it has exactly one
// project directory. It returns the template's manifest.
func (e *TemplateEngine) Check(templateName string) (*manifest.TemplateManifest, error) {
	p, err := e.prepare(templateName)
	if err != nil {
		return nil, err
	}
	return p.manifest, nil
}

// prepared is a resolved template ready to be rendered.
type prepared struct {
	tree       fs.FS
	manifest   *manifest.TemplateManifest
	projectDir string
}

func (e *TemplateEngine) prepare(templateName string) (*prepared, error) {
	tree, err := e.store.Open(templateName)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &TemplateNotFoundError{Name: templateName, Path: e.store.Location(templateName)}
		}
		return nil, &RenderError{Template: templateName, Err: err}
	}

	m, err := loadManifest(tree)
	if err != nil {
		return nil, &RenderError{Template: templateName, Path: manifest.FileName, Err: err}
	}
	if err := m.CheckCompatible(e.cliVersion); err != nil {
		return nil, &RenderError{Template: templateName, Err: err}
	}

	projectDir, err := findProjectDir(tree)
	if err != nil {
		return nil, &RenderError{Template: templateName, Err: err}
	}

	return &prepared{tree: tree, manifest: m, projectDir: projectDir}, nil
}

// loadManifest returns the template manifest, or an empty one when the
// template does not carry a manifest file.
func loadManifest(tree fs.FS) (*manifest.TemplateManifest, error) {
	if _, err := fs.Stat(tree, manifest.FileName); errors.Is(err, fs.ErrNotExist) {
		return &manifest.TemplateManifest{}, nil
	}
	return manifest.Load(tree, manifest.FileName)
}

// mergeVars layers vars over the manifest defaults.
func mergeVars(defaults, vars map[string]string) map[string]string {
	data := make(map[string]string, len(defaults)+len(vars))
	for k, v := range defaults {
		data[k] = v
	}
	for k, v := range vars {
		data[k] = v
	}
	return data
}

// findProjectDir returns the single top-level directory whose name carries a
// substitution marker.
func findProjectDir(tree fs.FS) (string, error) {
	entries, err := fs.ReadDir(tree, ".")
	if err != nil {
		return "", fmt.Errorf("reading template root: %w", err)
	}

	var candidates []string
	for _, entry := range entries {
		if entry.IsDir() && strings.Contains(entry.Name(), projectMarker) {
			candidates = append(candidates, entry.Name())
		}
	}

	switch len(candidates) {
	case 0:
		return "", ErrNoProjectDir
	case 1:
		return candidates[0], nil
	default:
		return "", fmt.Errorf("template has %d project directories (%s), want exactly one",
			len(candidates), strings.Join(candidates, ", "))
	}
}

// renderSegment renders a single path element. The result must be a
// non-empty name without separators or surrounding whitespace, so the
// directory on disk matches the variable value exactly.
func renderSegment(segment string, data map[string]string) (string, error) {
	out, err := renderText(segment, segment, data)
	if err != nil {
		return "", err
	}
	name := string(out)
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) || strings.TrimSpace(name) != name {
		return "", fmt.Errorf("path segment %q rendered to invalid name %q", segment, name)
	}
	return name, nil
}

// renderText executes text as a Go template over data. Unknown variables are
// an error so no marker survives into the output.
func renderText(name, text string, data map[string]string) ([]byte, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}
	return buf.Bytes(), nil
}

// isBinary reports whether content looks like a binary file.
func isBinary(content []byte) bool {
	if len(content) > binarySniffLen {
		content = content[:binarySniffLen]
	}
	return bytes.IndexByte(content, 0) >= 0
}

// treeRenderer writes one project directory tree.
type treeRenderer struct {
	tree       fs.FS
	projectDir string
	target     string
	data       map[string]string
	manifest   *manifest.TemplateManifest
	logger     *zap.Logger

	current string
	files   int
}

func (r *treeRenderer) run() (int, error) {
	err := fs.WalkDir(r.tree, r.projectDir, func(p string, d fs.DirEntry, walkErr error) error {
		r.current = p
		if walkErr != nil {
			return walkErr
		}

		rel := strings.TrimPrefix(strings.TrimPrefix(p, r.projectDir), "/")
		dst, err := r.destination(rel)
		if err != nil {
			return err
		}

		switch {
		case d.IsDir():
			if err := os.MkdirAll(dst, 0755); err != nil {
				return fmt.Errorf("creating directory: %w", err)
			}
			return nil
		case d.Type().IsRegular():
			return r.writeFile(p, rel, dst)
		default:
			r.logger.Debug("skipping special file", zap.String("path", p))
			return nil
		}
	})
	return r.files, err
}

// destination renders every segment of rel below the target directory.
func (r *treeRenderer) destination(rel string) (string, error) {
	if rel == "" {
		return r.target, nil
	}

	segments := strings.Split(rel, "/")
	for i, seg := range segments {
		if !strings.Contains(seg, projectMarker) {
			continue
		}
		rendered, err := renderSegment(seg, r.data)
		if err != nil {
			return "", err
		}
		segments[i] = rendered
	}
	return filepath.Join(r.target, filepath.FromSlash(path.Join(segments...))), nil
}

func (r *treeRenderer) writeFile(src, rel, dst string) error {
	content, err := fs.ReadFile(r.tree, src)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	info, err := fs.Stat(r.tree, src)
	if err != nil {
		return fmt.Errorf("stat file: %w", err)
	}
	perm := info.Mode().Perm() | 0600

	verbatim := isBinary(content) || r.manifest.CopyWithoutRenderMatch(rel)
	if !verbatim {
		content, err = renderText(rel, string(content), r.data)
		if err != nil {
			return err
		}
	}

	if err := platform.WriteFile(dst, content, perm); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}

	r.files++
	r.logger.Debug("wrote file", zap.String("path", dst), zap.Bool("verbatim", verbatim))
	return nil
}

package templates

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/phoenix-kits/phoenix-kits/internal/manifest"
)

//go:embed all:builtin
var builtinFS embed.FS

const builtinRoot = "builtin"

// Store is a read-only collection of template directories, one per name.
type Store struct {
	fsys     fs.FS
	location string
}

// Entry describes a template present in a store.
type Entry struct {
	Name     Name
	Location string
	Manifest *manifest.TemplateManifest // nil when the template has no manifest
}

// NewStore wraps fsys, whose top-level directories are templates. location is
// used in messages to tell the user where templates were searched for.
func NewStore(fsys fs.FS, location string) *Store {
	return &Store{fsys: fsys, location: location}
}

// Builtin returns the store embedded in the binary.
func Builtin() *Store {
	sub, err := fs.Sub(builtinFS, builtinRoot)
	if err != nil {
		panic(fmt.Sprintf("embedded templates: %v", err))
	}
	return NewStore(sub, "embedded:"+builtinRoot)
}

// FromDir returns a store reading templates from dir on disk.
func FromDir(dir string) *Store {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return NewStore(os.DirFS(dir), dir)
}

// Resolve returns the on-disk override store when dir is set and the
// embedded store otherwise.
func Resolve(dir string) *Store {
	if dir == "" {
		return Builtin()
	}
	return FromDir(dir)
}

// Location returns the path searched for the template called name.
func (s *Store) Location(name string) string {
	if strings.HasPrefix(s.location, "embedded:") {
		return s.location + "/" + name
	}
	return filepath.Join(s.location, name)
}

// Open returns the directory tree of the template called name. The error
// wraps fs.ErrNotExist when the name is malformed or has no directory.
func (s *Store) Open(name string) (fs.FS, error) {
	if !validName(name) {
		return nil, fmt.Errorf("template %q: %w", name, fs.ErrNotExist)
	}

	info, err := fs.Stat(s.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("template %q: %w", name, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("template %q is not a directory: %w", name, fs.ErrNotExist)
	}

	return fs.Sub(s.fsys, name)
}

// List returns the known templates present in the store, with their
// manifests loaded.
func (s *Store) List() ([]Entry, error) {
	var entries []Entry
	for _, n := range Names() {
		tree, err := s.Open(string(n))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}

		entry := Entry{Name: n, Location: s.Location(string(n))}
		if _, err := fs.Stat(tree, manifest.FileName); err == nil {
			m, err := manifest.Load(tree, manifest.FileName)
			if err != nil {
				return nil, fmt.Errorf("template %s: %w", n, err)
			}
			entry.Manifest = m
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// validName rejects names that are not a single path element.
func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) {
		return false
	}
	return fs.ValidPath(name) && path.Clean(name) == name
}

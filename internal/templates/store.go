package templates

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	oerrors "github.com/locko/rtools/internal/errors"
)

//go:embed files
var bundledFS embed.FS

const (
	templateExt = ".tmpl"

	// styledFile lives at the template root and is shared by kinds.
	styledFile = "styled" + templateExt
)

// Store resolves templates under a template root.
type Store struct {
	fsys fs.FS
	root string
}

// NewStore creates a store over fsys.
func NewStore(fsys fs.FS) *Store {
	return &Store{fsys: fsys, root: "<fs>"}
}

// Embedded returns the store over the templates bundled with the binary.
func Embedded() *Store {
	sub, err := fs.Sub(bundledFS, "files")
	if err != nil {
		panic(fmt.Sprintf("bundled templates: %v", err))
	}
	return &Store{fsys: sub, root: "<bundled>"}
}

// Open returns a store over a template root directory on disk.
func Open(root string) (*Store, error) {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, oerrors.NewNotFoundError(
				"template root does not exist", root,
				"Run 'rtools templates eject "+root+"' or unset the templates setting.")
		}
		return nil, fmt.Errorf("checking template root: %w", err)
	}
	if !info.IsDir() {
		return nil, oerrors.NewValidationError("template root is not a directory", root, "")
	}
	return &Store{fsys: os.DirFS(root), root: root}, nil
}

// Root describes where the templates come from.
func (s *Store) Root() string {
	return s.root
}

// Path returns the slash-separated path of a template within the root.
func (s *Store) Path(kind Kind, role Role) (string, error) {
	switch role {
	case Primary:
		return path.Join(string(kind), string(kind)+templateExt), nil
	case Index:
		return path.Join(string(kind), "index"+templateExt), nil
	case Styled:
		if !kind.HasStyled() {
			return "", oerrors.NewValidationError(
				fmt.Sprintf("%s templates have no styled file", kind), "", "")
		}
		if _, err := fs.Stat(s.fsys, styledFile); err == nil {
			return styledFile, nil
		}
		// Layout used by older template roots.
		return path.Join(string(Component), styledFile), nil
	default:
		return "", fmt.Errorf("unknown template role %q", role)
	}
}

// Read returns the text of a template.
func (s *Store) Read(kind Kind, role Role) (string, error) {
	p, err := s.Path(kind, role)
	if err != nil {
		return "", err
	}

	data, err := fs.ReadFile(s.fsys, p)
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", p, err)
	}
	return string(data), nil
}

// Files lists every template file in the store.
func (s *Store) Files() ([]string, error) {
	var files []string

	err := fs.WalkDir(s.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, templateExt) {
			return nil
		}
		files = append(files, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing templates in %s: %w", s.root, err)
	}

	sort.Strings(files)
	return files, nil
}

// Eject copies every template of the store into dir so it can be customised
// and used as a template root. Existing files are kept unless force is set.
func (s *Store) Eject(dir string, force bool) ([]string, error) {
	files, err := s.Files()
	if err != nil {
		return nil, err
	}

	if !force {
		for _, f := range files {
			target := filepath.Join(dir, filepath.FromSlash(f))
			if _, err := os.Stat(target); err == nil {
				return nil, oerrors.NewExistsError(
					"template file already exists", target,
					"Use --force to overwrite existing templates.")
			}
		}
	}

	written := make([]string, 0, len(files))
	for _, f := range files {
		data, err := fs.ReadFile(s.fsys, f)
		if err != nil {
			return written, fmt.Errorf("reading template %s: %w", f, err)
		}

		target := filepath.Join(dir, filepath.FromSlash(f))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return written, fmt.Errorf("creating directory for %s: %w", target, err)
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return written, fmt.Errorf("writing %s: %w", target, err)
		}
		written = append(written, f)
	}

	return written, nil
}

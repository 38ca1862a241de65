package fsproject

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/raji2203030/livebot/internal/domain"
	"github.com/raji2203030/livebot/internal/ports"
)

//go:embed templates
var templatesFS embed.FS

// Initializer writes the embedded templates to disk.
type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

var _ ports.ProjectInitializer = (*Initializer)(nil)

// Init writes the project templates under spec.Root. Existing files are kept
// unless force is set.
func (i *Initializer) Init(spec domain.ProjectSpec, force bool) ([]string, error) {
	root := filepath.Clean(spec.Root)

	if err := os.MkdirAll(filepath.Join(root, ".livebot", "logs"), 0o755); err != nil {
		return nil, err
	}

	if err := ensureGitignore(root); err != nil {
		return nil, err
	}

	var written []string
	err := fs.WalkDir(templatesFS, "templates", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel := strings.TrimPrefix(p, "templates/")
		dst := filepath.Join(root, filepath.FromSlash(rel))

		if !force {
			if _, statErr := os.Stat(dst); statErr == nil {
				return nil
			}
		}

		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return err
		}

		b, err := fs.ReadFile(templatesFS, p)
		if err != nil {
			return err
		}

		if err := os.WriteFile(dst, b, 0o644); err != nil {
			return err
		}
		written = append(written, dst)
		return nil
	})
	return written, err
}

func ensureGitignore(root string) error {
	const header = "# livebot"
	entries := []string{
		".livebot/",
		".env",
		"credentials.json",
	}

	path := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lines := append([]string{header}, entries...)
			lines = append(lines, "")
			return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
		}
		return err
	}

	existing := string(b)
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			present[trimmed] = true
		}
	}

	var missing []string
	for _, e := range entries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out strings.Builder
	out.Grow(len(existing) + 64)

	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteByte('\n')
	}
	out.WriteByte('\n')
	if !present[header] {
		out.WriteString(header)
		out.WriteByte('\n')
	}
	for _, e := range missing {
		out.WriteString(e)
		out.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(out.String()), 0o644)
}

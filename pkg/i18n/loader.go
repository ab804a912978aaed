package i18n

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// WithYAML loads message files from fsys. Two layouts are accepted and may be
// mixed:
//
//	en.yaml            keys used as written
//	de/interval.yaml   keys prefixed with the file name ("interval.day.one")
//
// Both .yaml and .yml are read; other files are ignored.
func WithYAML(fsys fs.FS) Option {
	return func(c *Catalog) error {
		return fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if ext := strings.ToLower(path.Ext(p)); ext != ".yaml" && ext != ".yml" {
				return nil
			}

			lang, prefix, err := splitCatalogPath(p)
			if err != nil {
				return err
			}

			data, err := fs.ReadFile(fsys, p)
			if err != nil {
				return fmt.Errorf("reading %q: %w", p, err)
			}

			var messages map[string]any
			if err := yaml.Unmarshal(data, &messages); err != nil {
				return fmt.Errorf("%w: parsing %q: %s", ErrInvalidFile, p, err)
			}
			if prefix != "" {
				messages = map[string]any{prefix: messages}
			}

			c.add(Canonical(lang), messages)
			return nil
		})
	}
}

func splitCatalogPath(p string) (lang, prefix string, err error) {
	stem := strings.TrimSuffix(path.Base(p), path.Ext(p))
	dir := path.Dir(p)
	switch {
	case dir == ".":
		return stem, "", nil
	case path.Dir(dir) == ".":
		return dir, stem, nil
	}
	return "", "", fmt.Errorf("%w: %q is nested too deep", ErrInvalidFile, p)
}

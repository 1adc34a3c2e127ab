package catalog

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// LoadDir collects raw language resources from the root of an fs.FS.
// File convention: {lang}{ext}, e.g. "en.yaml" becomes the resource for
// language "en". Files with other extensions and subdirectories are skipped.
// The ".yaml" extension also matches ".yml".
//
// Example:
//
//	//go:embed locales
//	var localesFS embed.FS
//
//	subFS, _ := fs.Sub(localesFS, "locales")
//	resources, err := catalog.LoadDir(subFS, ".yaml")
func LoadDir(fsys fs.FS, ext string) (map[string][]byte, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("reading resource directory: %w", err)
	}

	resources := make(map[string][]byte)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		fileExt := strings.ToLower(path.Ext(name))

		var matches bool
		if ext == ".yaml" {
			matches = fileExt == ".yaml" || fileExt == ".yml"
		} else {
			matches = fileExt == ext
		}
		if !matches {
			continue
		}

		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", name, err)
		}

		lang := strings.TrimSuffix(name, path.Ext(name))
		resources[lang] = data
	}

	return resources, nil
}

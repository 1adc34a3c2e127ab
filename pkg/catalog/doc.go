// Package catalog stores parsed language resources and resolves localized
// strings from them by dot-separated path.
//
// A Catalog is built once from raw resource bytes (YAML by default, JSON and
// TOML decoders included) and is immutable afterwards, making it safe for
// concurrent use. Reconfiguration means building a new Catalog and swapping
// the reference.
//
// # Building a Catalog
//
//	cat, err := catalog.New(map[string][]byte{
//		"en": []byte(`greeting: "Hi ${name}"` + "\n" + `name: Bob`),
//		"de": []byte(`greeting: Hallo`),
//	}, "en")
//
// # Resolution
//
// Resolve walks the document by dot-separated path and expands ${path}
// template references recursively against the same language:
//
//	s, _ := cat.Resolve("en", "greeting") // "Hi Bob"
//
// A path missing from the requested language falls back to the default
// language; the default language itself is terminal and a miss there yields
// the empty string. A leaf that is not a string also yields the empty string,
// without fallback. Reference cycles are cut off at a configurable depth and
// reported as ErrCyclicReference.
//
// Path segments are separated by '.' with no escaping mechanism, so keys
// containing literal dots cannot be addressed.
//
// # Loading resources
//
// LoadDir reads {lang}{ext} files from an fs.FS, which pairs well with
// go:embed for shipping resources inside the binary.
package catalog

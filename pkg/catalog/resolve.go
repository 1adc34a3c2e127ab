package catalog

import (
	"fmt"
	"regexp"
)

// refPattern matches a ${path} template reference. The inner path cannot
// contain braces or '$', so references do not nest.
var refPattern = regexp.MustCompile(`\$\{([^${}]+)\}`)

// Resolve returns the string at the dot-separated path in the given
// language, with template references expanded.
//
// Resolution rules:
//   - A failed walk (unknown language, missing key, non-object intermediate)
//     falls back to the default language. The default language is terminal:
//     a miss there resolves to the empty string.
//   - A leaf that is not string-typed resolves to the empty string without
//     fallback.
//   - Each ${path} reference in the leaf is replaced by resolving that path
//     against the same language, and the result is rescanned from the start,
//     so substituted text containing further references is expanded too.
//
// Expansion depth is bounded; a reference cycle returns ErrCyclicReference
// instead of recursing forever.
func (c *Catalog) Resolve(lang, path string) (string, error) {
	return c.resolve(lang, path, 0)
}

// Exists reports whether the path resolves to a string leaf in the given
// language or, failing that, in the default language. It lets callers
// distinguish a missing entry from one that is present but empty, since
// Resolve maps both to "".
func (c *Catalog) Exists(lang, path string) bool {
	if val, ok := c.lookup(lang, path); ok {
		_, isString := val.(string)
		return isString
	}
	if lang != c.defaultLang {
		return c.Exists(c.defaultLang, path)
	}
	return false
}

func (c *Catalog) resolve(lang, path string, depth int) (string, error) {
	if depth >= c.maxDepth {
		return "", fmt.Errorf("%w: %q in language %q", ErrCyclicReference, path, lang)
	}

	val, found := c.lookup(lang, path)
	if !found {
		if lang == c.defaultLang {
			return "", nil
		}
		return c.resolve(c.defaultLang, path, depth+1)
	}

	s, ok := val.(string)
	if !ok {
		return "", nil
	}

	return c.expand(lang, s, depth)
}

// expand substitutes template references one at a time, rescanning from the
// start after each substitution. References are resolved against the same
// language; nested expansion inside those resolutions carries the depth
// counter, so cycles surface as ErrCyclicReference.
func (c *Catalog) expand(lang, s string, depth int) (string, error) {
	for {
		loc := refPattern.FindStringSubmatchIndex(s)
		if loc == nil {
			return s, nil
		}

		resolved, err := c.resolve(lang, s[loc[2]:loc[3]], depth+1)
		if err != nil {
			return "", err
		}

		s = s[:loc[0]] + resolved + s[loc[1]:]
	}
}

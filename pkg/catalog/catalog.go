package catalog

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultMaxDepth bounds recursive template expansion. Well-formed resources
// never come close to this limit; exceeding it means a reference cycle.
const DefaultMaxDepth = 32

// Catalog holds the decoded language documents for one configuration.
// It is immutable after creation, making it safe for concurrent use.
// Reconfiguration is done by building a new Catalog and swapping it in
// wholesale.
type Catalog struct {
	// Decoded document per language name. Nested objects form the
	// dot-separated path hierarchy.
	docs map[string]map[string]any

	// Terminal fallback language. Always a key of docs.
	defaultLang string

	// Pre-computed list of language names: default first, rest sorted.
	languages []string

	decoder  Decoder
	maxDepth int
}

// Option configures the Catalog during construction.
type Option func(*Catalog) error

// WithDecoder sets the decoder used to parse raw resource bytes.
// Default: DecodeYAML.
func WithDecoder(d Decoder) Option {
	return func(c *Catalog) error {
		if d == nil {
			return ErrNilDecoder
		}
		c.decoder = d
		return nil
	}
}

// WithMaxDepth sets the recursion limit for template expansion.
// Values below 1 are ignored.
// Default: DefaultMaxDepth.
func WithMaxDepth(n int) Option {
	return func(c *Catalog) error {
		if n > 0 {
			c.maxDepth = n
		}
		return nil
	}
}

// New decodes the given raw resources and builds an immutable Catalog.
// Each resource must decode into a single object-rooted document; a decode
// failure for any language rejects the whole call. The default language must
// be a key of resources.
func New(resources map[string][]byte, defaultLang string, opts ...Option) (*Catalog, error) {
	if defaultLang == "" {
		return nil, ErrEmptyLanguage
	}

	c := &Catalog{
		docs:        make(map[string]map[string]any, len(resources)),
		defaultLang: defaultLang,
		decoder:     DecodeYAML,
		maxDepth:    DefaultMaxDepth,
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if _, ok := resources[defaultLang]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrDefaultLanguageMissing, defaultLang)
	}

	for lang, raw := range resources {
		doc, err := c.decoder(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: language %q: %w", ErrInvalidResource, lang, err)
		}
		c.docs[lang] = doc
	}

	c.languages = buildLanguagesList(c.docs, defaultLang)

	return c, nil
}

// DefaultLanguage returns the terminal fallback language.
func (c *Catalog) DefaultLanguage() string {
	return c.defaultLang
}

// Languages returns the configured language names: the default language
// first, the rest sorted alphabetically.
func (c *Catalog) Languages() []string {
	out := make([]string, len(c.languages))
	copy(out, c.languages)
	return out
}

// Has reports whether the given language is configured.
func (c *Catalog) Has(lang string) bool {
	_, ok := c.docs[lang]
	return ok
}

// lookup walks the language's document along the dot-separated path.
// The walk fails on an unknown language, a missing key, or an intermediate
// value that is not an object.
func (c *Catalog) lookup(lang, path string) (any, bool) {
	doc, ok := c.docs[lang]
	if !ok {
		return nil, false
	}

	segments := strings.Split(path, ".")
	node := doc
	for i, seg := range segments {
		val, ok := node[seg]
		if !ok {
			return nil, false
		}
		if i == len(segments)-1 {
			return val, true
		}
		node, ok = val.(map[string]any)
		if !ok {
			return nil, false
		}
	}

	return nil, false
}

func buildLanguagesList(docs map[string]map[string]any, defaultLang string) []string {
	others := make([]string, 0, len(docs))
	for lang := range docs {
		if lang != defaultLang {
			others = append(others, lang)
		}
	}
	sort.Strings(others)

	return append([]string{defaultLang}, others...)
}

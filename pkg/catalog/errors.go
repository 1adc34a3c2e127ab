package catalog

import "errors"

var (
	// ErrDefaultLanguageMissing is returned when the default language is not
	// among the supplied resources.
	ErrDefaultLanguageMissing = errors.New("catalog: default language not in resource set")

	// ErrInvalidResource is returned when a resource buffer does not decode
	// into a single object-rooted document.
	ErrInvalidResource = errors.New("catalog: invalid language resource")

	// ErrCyclicReference is returned when template expansion exceeds the
	// configured depth limit, which indicates a reference cycle.
	ErrCyclicReference = errors.New("catalog: cyclic template reference")

	// ErrEmptyLanguage is returned when a language name is empty.
	ErrEmptyLanguage = errors.New("catalog: language cannot be empty")

	// ErrNilDecoder is returned when a nil decoder is supplied.
	ErrNilDecoder = errors.New("catalog: decoder cannot be nil")
)

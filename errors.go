package lingua

import (
	"errors"

	"github.com/dmitrymomot/lingua/pkg/catalog"
)

// ErrUnknownLanguage is returned by SetActiveLanguage when the requested
// language is not configured.
var ErrUnknownLanguage = errors.New("lingua: unknown language")

// Configuration errors for checking Configure return values.
var (
	ErrDefaultLanguageMissing = catalog.ErrDefaultLanguageMissing
	ErrInvalidResource        = catalog.ErrInvalidResource
	ErrEmptyLanguage          = catalog.ErrEmptyLanguage
	ErrCyclicReference        = catalog.ErrCyclicReference
)

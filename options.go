package lingua

import (
	"log/slog"

	"github.com/dmitrymomot/lingua/pkg/catalog"
)

// Option configures the Service during construction.
type Option func(*Service) error

// WithLogger sets the logger used for configuration changes, language
// switches, subscriber panics, and aborted template expansions.
// Default: a no-op logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) error {
		if log != nil {
			s.log = log
		}
		return nil
	}
}

// WithDecoder sets the decoder used to parse raw resource bytes in
// Configure. The package ships DecodeYAML, DecodeJSON, and DecodeTOML.
// Default: DecodeYAML.
func WithDecoder(d Decoder) Option {
	return func(s *Service) error {
		if d == nil {
			return catalog.ErrNilDecoder
		}
		s.decoder = d
		return nil
	}
}

// WithCacheSize sets the lookup cache capacity. Once full, the
// oldest-inserted entry is evicted first. Non-positive values fall back to
// the default.
// Default: 20.
func WithCacheSize(n int) Option {
	return func(s *Service) error {
		s.cacheSize = n
		return nil
	}
}

// WithMaxDepth sets the recursion limit for ${path} template expansion.
// A lookup that exceeds it (a reference cycle) resolves to the empty string
// and logs a warning. Values below 1 are ignored.
// Default: 32.
func WithMaxDepth(n int) Option {
	return func(s *Service) error {
		if n > 0 {
			s.maxDepth = n
		}
		return nil
	}
}

// Decoders re-exported for use with WithDecoder.
var (
	DecodeYAML = catalog.DecodeYAML
	DecodeJSON = catalog.DecodeJSON
	DecodeTOML = catalog.DecodeTOML
)

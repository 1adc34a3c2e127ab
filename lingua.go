package lingua

import (
	"fmt"
	"io/fs"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/lingua/pkg/cache"
	"github.com/dmitrymomot/lingua/pkg/catalog"
	"github.com/dmitrymomot/lingua/pkg/logger"
	"github.com/dmitrymomot/lingua/pkg/registry"
)

// Subscriber is notified whenever the active language changes.
type Subscriber = registry.Subscriber

// Decoder parses raw resource bytes into a single object-rooted document.
type Decoder = catalog.Decoder

// Service resolves localized strings from configured language resources,
// caches recent lookups for the active language, and pushes language changes
// to registered subscribers.
//
// Construct it once at startup, pass it by reference to consumers, and call
// Close at shutdown to clear the subscriber registry. One read-write lock
// guards the catalog, the active language, and the cache as a unit, so a
// configuration change or language switch excludes concurrent lookups.
type Service struct {
	cat      *catalog.Catalog
	cache    *cache.FIFO[string]
	registry *registry.Registry
	log      *slog.Logger

	// Active language override. Empty means unset: single-argument lookups
	// use the catalog's default language.
	active string

	decoder   Decoder
	cacheSize int
	maxDepth  int

	mu sync.RWMutex
}

// New creates an unconfigured Service. Call Configure to load language
// resources before looking anything up; until then every lookup resolves to
// the empty string.
func New(opts ...Option) (*Service, error) {
	s := &Service{
		log:       logger.NewNope(),
		decoder:   catalog.DecodeYAML,
		cacheSize: cache.DefaultCapacity,
		maxDepth:  catalog.DefaultMaxDepth,
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	s.cache = cache.NewFIFO[string](s.cacheSize)
	s.registry = registry.New(s.log)

	return s, nil
}

// Configure decodes the given resources and replaces the entire language set
// atomically. defaultLang must be a key of resources; a decode failure for
// any single language rejects the whole call and the prior configuration
// stays in effect.
//
// If the previously active language is absent from the new set, the active
// language resets to unset and lookups fall back to the new default. The
// lookup cache is cleared in the same step. Subscribers are not notified;
// call NotifyAll if consumers should re-pull after reconfiguration.
func (s *Service) Configure(resources map[string][]byte, defaultLang string) error {
	cat, err := catalog.New(resources, defaultLang,
		catalog.WithDecoder(s.decoder),
		catalog.WithMaxDepth(s.maxDepth),
	)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.cat = cat
	if s.active != "" && !cat.Has(s.active) {
		s.active = ""
	}
	s.cache.Clear()
	s.mu.Unlock()

	s.log.Info("language resources configured",
		slog.Int("languages", len(resources)),
		slog.String("default", defaultLang),
	)

	return nil
}

// ConfigureFS loads {lang}{ext} resource files from the root of fsys and
// configures them via Configure, with the same atomicity guarantees. The
// ".yaml" extension also matches ".yml". Pairs well with go:embed:
//
//	//go:embed locales
//	var localesFS embed.FS
//
//	subFS, _ := fs.Sub(localesFS, "locales")
//	err := svc.ConfigureFS(subFS, ".yaml", "en")
func (s *Service) ConfigureFS(fsys fs.FS, ext, defaultLang string) error {
	resources, err := catalog.LoadDir(fsys, ext)
	if err != nil {
		return err
	}
	return s.Configure(resources, defaultLang)
}

// ActiveLanguage returns the language used by single-argument lookups: the
// explicitly set active language, or the default language when unset.
// Returns "" before the first Configure.
func (s *Service) ActiveLanguage() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeLocked()
}

// DefaultLanguage returns the configured default language, or "" before the
// first Configure.
func (s *Service) DefaultLanguage() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.cat == nil {
		return ""
	}
	return s.cat.DefaultLanguage()
}

// Languages returns the configured language names, default first and the
// rest sorted.
func (s *Service) Languages() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.cat == nil {
		return nil
	}
	return s.cat.Languages()
}

// HasLanguage reports whether the given language is configured.
func (s *Service) HasLanguage(lang string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cat != nil && s.cat.Has(lang)
}

// SetActiveLanguage switches the active language. The requested name must be
// configured; otherwise ErrUnknownLanguage is returned and nothing changes.
//
// On success the lookup cache is cleared and every registered subscriber is
// notified with the new language, in registration order. Notification runs
// after the internal lock is released, so subscribers can look strings up
// from their update callbacks.
func (s *Service) SetActiveLanguage(lang string) error {
	s.mu.Lock()
	if s.cat == nil || !s.cat.Has(lang) {
		s.mu.Unlock()
		return fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
	}
	s.active = lang
	s.cache.Clear()
	s.mu.Unlock()

	s.log.Info("active language changed", slog.String("language", lang))
	s.registry.Notify(lang)

	return nil
}

// Lookup resolves the dot-separated path in the active language. It never
// fails: a missing path, a non-string leaf, or a reference cycle all resolve
// to the empty string, so a missing entry renders blank instead of breaking
// the consumer. Use Exists to distinguish "absent" from "present but empty".
//
// Results are cached per path until the active language changes or the
// service is reconfigured.
func (s *Service) Lookup(path string) string {
	s.mu.RLock()
	cat, active := s.cat, s.activeLocked()
	s.mu.RUnlock()

	if cat == nil {
		return ""
	}

	return s.cachedResolve(cat, active, path)
}

// LookupIn resolves the path in an explicitly named language. Like Lookup it
// never fails. When lang differs from the active language the cache is
// bypassed entirely: the resolver runs directly and the result is not
// cached.
//
// An unknown lang is not an error here: the resolver treats it as "not
// found" and falls back to the default language.
func (s *Service) LookupIn(lang, path string) string {
	s.mu.RLock()
	cat, active := s.cat, s.activeLocked()
	s.mu.RUnlock()

	if cat == nil {
		return ""
	}

	if lang == active {
		return s.cachedResolve(cat, active, path)
	}

	return s.resolve(cat, lang, path)
}

// Exists reports whether the path resolves to a string leaf in the active
// language or its fallback. It complements Lookup, which cannot distinguish
// a missing entry from one that is present but empty.
func (s *Service) Exists(path string) bool {
	s.mu.RLock()
	cat, active := s.cat, s.activeLocked()
	s.mu.RUnlock()

	return cat != nil && cat.Exists(active, path)
}

// ExistsIn reports whether the path resolves to a string leaf in the given
// language or its fallback.
func (s *Service) ExistsIn(lang, path string) bool {
	s.mu.RLock()
	cat := s.cat
	s.mu.RUnlock()

	return cat != nil && cat.Exists(lang, path)
}

// Match returns the configured language best matching an Accept-Language
// header, or the default language when nothing matches. Returns "" before
// the first Configure.
func (s *Service) Match(acceptLanguage string) string {
	s.mu.RLock()
	cat := s.cat
	s.mu.RUnlock()

	if cat == nil {
		return ""
	}
	return cat.Match(acceptLanguage)
}

// Register appends the subscriber and immediately pushes the current active
// language to it, synchronously, before returning.
//
// Subscribers are tracked by identity and never garbage-collected: a
// consumer that goes away must call Unregister, or it stays registered.
func (s *Service) Register(sub Subscriber) {
	s.registry.Add(sub, s.ActiveLanguage())
}

// RegisterSlot registers the subscriber under a logical slot key, replacing
// any previous occupant of that slot. Use it when only one live instance of
// a component kind should be tracked. Otherwise it behaves like Register.
func (s *Service) RegisterSlot(slot string, sub Subscriber) {
	s.registry.AddSlot(slot, sub, s.ActiveLanguage())
}

// Unregister removes the subscriber by identity. It is a no-op when the
// subscriber is not registered.
func (s *Service) Unregister(sub Subscriber) {
	s.registry.Remove(sub)
}

// NotifyAll pushes the current active language to every registered
// subscriber, in registration order. A subscriber that panics is recovered
// and logged; the rest are still notified.
func (s *Service) NotifyAll() {
	s.registry.Notify(s.ActiveLanguage())
}

// Close tears the service down: the subscriber registry and the lookup cache
// are cleared. The service remains usable for lookups afterwards, but no
// subscribers are tracked.
func (s *Service) Close() error {
	s.registry.Clear()

	s.mu.Lock()
	s.cache.Clear()
	s.mu.Unlock()

	return nil
}

// activeLocked returns the effective active language.
// Caller must hold the mutex.
func (s *Service) activeLocked() string {
	if s.active != "" {
		return s.active
	}
	if s.cat != nil {
		return s.cat.DefaultLanguage()
	}
	return ""
}

// cachedResolve serves the path from the cache, invoking the resolver on a
// miss and caching the result. Only lookups against the active language go
// through here; the cache is scoped to it implicitly because every language
// switch clears the cache.
func (s *Service) cachedResolve(cat *catalog.Catalog, lang, path string) string {
	if val, err := s.cache.Get(path); err == nil {
		return val
	}

	val, err := cat.Resolve(lang, path)
	if err != nil {
		s.logResolveErr(lang, path, err)
		return ""
	}

	// Insert only while the snapshot is still current. The read lock is
	// held across the insert: a language switch clears the cache under the
	// write lock, so it cannot interleave between the check and the insert,
	// and a result resolved against a stale snapshot is never cached.
	s.mu.RLock()
	if s.cat == cat && s.activeLocked() == lang {
		s.cache.Set(path, val)
	}
	s.mu.RUnlock()

	return val
}

// resolve invokes the resolver directly, bypassing the cache.
func (s *Service) resolve(cat *catalog.Catalog, lang, path string) string {
	val, err := cat.Resolve(lang, path)
	if err != nil {
		s.logResolveErr(lang, path, err)
		return ""
	}
	return val
}

func (s *Service) logResolveErr(lang, path string, err error) {
	s.log.Warn("template expansion aborted",
		slog.String("language", lang),
		slog.String("path", path),
		slog.Any("error", err),
	)
}

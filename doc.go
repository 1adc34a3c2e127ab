// Package lingua resolves localized text strings from structured language
// resources, with runtime language switching, cross-reference templates, a
// bounded lookup cache, and change notifications for subscribed consumers.
//
// # Basic Usage
//
// Create a Service, configure it with raw language resources (YAML by
// default), and look strings up by dot-separated path:
//
//	svc, err := lingua.New()
//	if err != nil {
//		// ...
//	}
//
//	err = svc.Configure(map[string][]byte{
//		"en": []byte("greeting: \"Hi ${name}\"\nname: Bob"),
//		"de": []byte("greeting: Hallo"),
//	}, "en")
//
//	svc.Lookup("greeting") // "Hi Bob"
//
// # Template References
//
// A string leaf may reference other entries with ${path}. References are
// resolved against the same language and expanded recursively; reference
// cycles are cut off at a configurable depth and resolve to "".
//
// # Language Switching and Fallback
//
// SetActiveLanguage switches the language used by Lookup. Paths missing from
// the active language fall back to the default language; the default
// language is terminal and a miss there yields "". Lookups never fail:
// missing strings render blank rather than breaking the consumer. Exists
// distinguishes "absent" from "present but empty".
//
//	_ = svc.SetActiveLanguage("de")
//	svc.Lookup("greeting")       // "Hallo"
//	svc.LookupIn("de", "name")   // "Bob" (falls back to en)
//
// # Subscribers
//
// Components that render localized text register a Subscriber and are
// invoked with the active language on every switch, in registration order.
// RegisterSlot keeps at most one subscriber per logical slot.
//
//	svc.Register(myMenu)            // pushes the current language immediately
//	svc.RegisterSlot("statusbar", bar)
//	defer svc.Unregister(myMenu)
//
// Subscribers are tracked until explicitly unregistered; a destroyed
// consumer that never unregisters stays in the registry.
//
// # Caching
//
// Lookups in the active language are cached per path in a small FIFO cache
// (20 entries by default, oldest-inserted evicted first). The cache is
// cleared on every language switch and reconfiguration, so results always
// reflect the active language.
//
// # Resource Files
//
// Resources embed well with go:embed via catalog.LoadDir:
//
//	//go:embed locales
//	var localesFS embed.FS
//
//	subFS, _ := fs.Sub(localesFS, "locales")
//	resources, _ := catalog.LoadDir(subFS, ".yaml")
//	_ = svc.Configure(resources, "en")
package lingua

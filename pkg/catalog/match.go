package catalog

import "golang.org/x/text/language"

// Match returns the configured language best matching an Accept-Language
// header. Language names that do not parse as BCP 47 tags are skipped; when
// nothing matches, the header is empty or malformed, or no configured name
// is a valid tag, the default language is returned.
//
// Example header: "de-AT,de;q=0.9,en;q=0.8"
func (c *Catalog) Match(acceptLanguage string) string {
	tags := make([]language.Tag, 0, len(c.languages))
	names := make([]string, 0, len(c.languages))
	for _, name := range c.languages {
		tag, err := language.Parse(name)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		names = append(names, name)
	}

	if len(tags) == 0 || acceptLanguage == "" {
		return c.defaultLang
	}

	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return c.defaultLang
	}

	_, idx, conf := language.NewMatcher(tags).Match(prefs...)
	if conf == language.No {
		return c.defaultLang
	}

	return names[idx]
}

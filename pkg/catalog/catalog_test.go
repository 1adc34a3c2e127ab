package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lingua/pkg/catalog"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("builds catalog from yaml resources", func(t *testing.T) {
		t.Parallel()
		cat, err := catalog.New(map[string][]byte{
			"en": []byte("greeting: Hello"),
			"de": []byte("greeting: Hallo"),
		}, "en")
		require.NoError(t, err)
		require.NotNil(t, cat)
		require.Equal(t, "en", cat.DefaultLanguage())
	})

	t.Run("returns error when default language is absent", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.New(map[string][]byte{
			"de": []byte("greeting: Hallo"),
		}, "en")
		require.Error(t, err)
		require.ErrorIs(t, err, catalog.ErrDefaultLanguageMissing)
	})

	t.Run("returns error for empty default language", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.New(map[string][]byte{}, "")
		require.Error(t, err)
		require.ErrorIs(t, err, catalog.ErrEmptyLanguage)
	})

	t.Run("rejects whole call when one resource fails to decode", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.New(map[string][]byte{
			"en": []byte("greeting: Hello"),
			"de": []byte("{unterminated"),
		}, "en")
		require.Error(t, err)
		require.ErrorIs(t, err, catalog.ErrInvalidResource)
	})

	t.Run("rejects scalar-rooted document", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.New(map[string][]byte{
			"en": []byte(`"just a string"`),
		}, "en")
		require.Error(t, err)
		require.ErrorIs(t, err, catalog.ErrInvalidResource)
	})

	t.Run("rejects empty document", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.New(map[string][]byte{
			"en": []byte(""),
		}, "en")
		require.Error(t, err)
		require.ErrorIs(t, err, catalog.ErrInvalidResource)
	})

	t.Run("returns error for nil decoder", func(t *testing.T) {
		t.Parallel()
		_, err := catalog.New(map[string][]byte{
			"en": []byte("greeting: Hello"),
		}, "en", catalog.WithDecoder(nil))
		require.Error(t, err)
		require.ErrorIs(t, err, catalog.ErrNilDecoder)
	})

	t.Run("decodes json resources", func(t *testing.T) {
		t.Parallel()
		cat, err := catalog.New(map[string][]byte{
			"en": []byte(`{"greeting": "Hello"}`),
		}, "en", catalog.WithDecoder(catalog.DecodeJSON))
		require.NoError(t, err)
		s, err := cat.Resolve("en", "greeting")
		require.NoError(t, err)
		require.Equal(t, "Hello", s)
	})

	t.Run("decodes toml resources", func(t *testing.T) {
		t.Parallel()
		cat, err := catalog.New(map[string][]byte{
			"en": []byte(`greeting = "Hello"`),
		}, "en", catalog.WithDecoder(catalog.DecodeTOML))
		require.NoError(t, err)
		s, err := cat.Resolve("en", "greeting")
		require.NoError(t, err)
		require.Equal(t, "Hello", s)
	})
}

func TestLanguages(t *testing.T) {
	t.Parallel()

	cat, err := catalog.New(map[string][]byte{
		"en": []byte("greeting: Hello"),
		"pl": []byte("greeting: Czesc"),
		"de": []byte("greeting: Hallo"),
	}, "en")
	require.NoError(t, err)

	t.Run("default first then sorted", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, []string{"en", "de", "pl"}, cat.Languages())
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		t.Parallel()
		langs := cat.Languages()
		langs[0] = "mutated"
		require.Equal(t, []string{"en", "de", "pl"}, cat.Languages())
	})

	t.Run("has reports membership", func(t *testing.T) {
		t.Parallel()
		require.True(t, cat.Has("de"))
		require.False(t, cat.Has("fr"))
	})
}

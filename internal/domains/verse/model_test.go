package verse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"corpus-backend/internal/domains/verse"
	"corpus-backend/internal/domains/work"
)

func strPtr(s string) *string { return &s }

func TestNormalizeKeySetsEqualExpected(t *testing.T) {
	w := &work.Work{WorkID: "w", CanonicalLang: "bn", Langs: []string{"bn", "en"}}
	expected := w.ExpectedLanguages()

	v := verse.Verse{
		Texts:    map[string]*string{"bn": strPtr("text"), "fr": strPtr("dropped")},
		Segments: map[string][]string{"bn": {"a", "b"}},
		Hash:     map[string]*string{},
	}
	v.Normalize(expected)

	for _, m := range []int{len(v.Texts), len(v.Segments), len(v.Hash)} {
		assert.Equal(t, len(expected), m)
	}
	for _, lang := range expected {
		_, ok := v.Texts[lang]
		assert.True(t, ok, "texts missing %s", lang)
		assert.NotNil(t, v.Segments[lang], "segments for %s must be a sequence", lang)
	}

	// Values preserved, unknown languages dropped, missing ones nulled.
	assert.Equal(t, "text", *v.Texts["bn"])
	assert.NotContains(t, v.Texts, "fr")
	assert.Nil(t, v.Texts["en"])
	assert.Equal(t, []string{"a", "b"}, v.Segments["bn"])
	assert.Equal(t, []string{}, v.Segments["en"])
}

func TestExpectedLanguagesOrderAndDedup(t *testing.T) {
	w := &work.Work{Langs: []string{"or", "en", "or"}}

	// Declared order first, then fallbacks minus duplicates.
	assert.Equal(t, []string{"or", "en", "bn", "hi", "as"}, w.ExpectedLanguages())
}

func TestExpectedLanguagesNoDeclared(t *testing.T) {
	w := &work.Work{}
	assert.Equal(t, []string{"bn", "en", "or", "hi", "as"}, w.ExpectedLanguages())
}

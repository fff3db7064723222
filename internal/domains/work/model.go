package work

// SourceEdition is one physical/critical edition a work's text derives from.
// Verses cite these by edition id in their origin entries.
type SourceEdition struct {
	ID         string  `json:"id"`
	Lang       string  `json:"lang"`
	Type       string  `json:"type"`
	Provenance *string `json:"provenance"`
}

// Work là root entity: một titled text chứa Verses và Commentary.
// Created/updated via explicit replace; there is no partial patch.
type Work struct {
	WorkID         string             `json:"work_id"`
	Title          map[string]*string `json:"title"`
	Author         *string            `json:"author"`
	CanonicalLang  string             `json:"canonical_lang"`
	Langs          []string           `json:"langs"`
	Structure      map[string]*string `json:"structure"`
	SourceEditions []SourceEdition    `json:"source_editions"`
	Policy         map[string]*string `json:"policy"`
}

// langFallbacks is appended after a work's declared languages when building
// the expected language set. Fixed regional sequence; never reordered.
var langFallbacks = []string{"bn", "en", "or", "hi", "as"}

// ExpectedLanguages returns the work's expected language set: declared langs
// in author order, de-duplicated, followed by the fixed fallbacks minus any
// already included. This ordered set is the required key set for every
// multilingual field on the work's verses.
func (w *Work) ExpectedLanguages() []string {
	seen := make(map[string]bool, len(w.Langs)+len(langFallbacks))
	languages := make([]string, 0, len(w.Langs)+len(langFallbacks))

	for _, lang := range w.Langs {
		if lang != "" && !seen[lang] {
			seen[lang] = true
			languages = append(languages, lang)
		}
	}
	for _, lang := range langFallbacks {
		if !seen[lang] {
			seen[lang] = true
			languages = append(languages, lang)
		}
	}
	return languages
}

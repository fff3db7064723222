package verse

import (
	"corpus-backend/internal/domains/review"
)

// TypeVerse is the discriminator written into every verse record.
const TypeVerse = "verse"

// OriginEntry ties a verse's content to a source edition, page, paragraph.
type OriginEntry struct {
	Edition   string `json:"edition"`
	Page      *int   `json:"page"`
	ParaIndex *int   `json:"para_index"`
}

// Verse là một ordered unit của canonical text, multilingual.
//
// Invariant: the key sets of Texts, Segments and Hash always equal the
// owning work's expected language set; Normalize enforces this on every
// read and write path.
type Verse struct {
	Type    string `json:"type"`
	WorkID  string `json:"work_id"`
	VerseID string `json:"verse_id"`

	// NumberManual is the human-assigned display number, unique per work.
	// Order is the monotonic assignment key used for display ordering; the
	// two are not necessarily equal.
	NumberManual    *string `json:"number_manual"`
	Order           int     `json:"order"`
	NumberGenerated *string `json:"number_generated"`

	Texts    map[string]*string  `json:"texts"`
	Segments map[string][]string `json:"segments"`
	Origin   []OriginEntry       `json:"origin"`
	Tags     []string            `json:"tags"`
	Hash     map[string]*string  `json:"hash"`
	Meta     map[string]*string  `json:"meta"`

	Review review.Block `json:"review"`
}

// Normalize rewrites the multilingual maps so their key sets exactly equal
// expected: values under matching keys are preserved, missing segments
// default to an empty sequence, missing texts/hashes to null. Keys outside
// the expected set are dropped.
func (v *Verse) Normalize(expected []string) {
	texts := make(map[string]*string, len(expected))
	segments := make(map[string][]string, len(expected))
	hashes := make(map[string]*string, len(expected))

	for _, lang := range expected {
		texts[lang] = v.Texts[lang]
		if segs, ok := v.Segments[lang]; ok && segs != nil {
			segments[lang] = segs
		} else {
			segments[lang] = []string{}
		}
		hashes[lang] = v.Hash[lang]
	}

	v.Texts = texts
	v.Segments = segments
	v.Hash = hashes
}

package commentary

import (
	"corpus-backend/internal/domains/review"
)

// TypeCommentary is the discriminator written into every commentary record.
const TypeCommentary = "commentary"

// Target references the records a commentary speaks about.
type Target struct {
	Kind string   `json:"kind"`
	IDs  []string `json:"ids"`
}

// Commentary là interpretive text gắn với một verse hoặc cả work.
// VerseID nil means work-scoped; the physical location follows the scope.
// Unlike verses, commentary enters the workflow in review_pending.
type Commentary struct {
	Type         string  `json:"type"`
	CommentaryID string  `json:"commentary_id"`
	WorkID       string  `json:"work_id"`
	VerseID      *string `json:"verse_id"`

	Targets []Target `json:"targets"`

	Speaker *string            `json:"speaker"`
	Source  *string            `json:"source"`
	Date    map[string]*string `json:"date"`
	Genre   *string            `json:"genre"`
	Tags    []string           `json:"tags"`

	Texts map[string]*string `json:"texts"`

	// Authenticity mixes string and numeric values ({"status": "attested",
	// "confidence": 1.0}); Priority carries numeric weights only.
	Authenticity map[string]interface{} `json:"authenticity"`
	Priority     map[string]*float64    `json:"priority"`

	Review review.Block `json:"review"`
}

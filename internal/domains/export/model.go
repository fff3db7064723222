package export

import (
	"corpus-backend/internal/domains/commentary"
	"corpus-backend/internal/domains/verse"
	"corpus-backend/internal/domains/work"
)

// MergeResult là composite artifact của một work: the work record plus
// every live verse (display order) and every live commentary.
type MergeResult struct {
	Work       work.Work               `json:"work"`
	Verses     []verse.Verse           `json:"verses"`
	Commentary []commentary.Commentary `json:"commentary"`
}

// One flattened training record per (record, language) pair with non-null
// text. The two record kinds carry different trailing fields, so each gets
// its own line shape; tags and genre stay present even when empty or null.
type VerseTrainLine struct {
	Type    string   `json:"type"`
	WorkID  string   `json:"work_id"`
	VerseID string   `json:"verse_id"`
	Lang    string   `json:"lang"`
	Text    string   `json:"text"`
	Tags    []string `json:"tags"`
}

type CommentaryTrainLine struct {
	Type         string  `json:"type"`
	WorkID       string  `json:"work_id"`
	CommentaryID string  `json:"commentary_id"`
	Lang         string  `json:"lang"`
	Text         string  `json:"text"`
	Genre        *string `json:"genre"`
}

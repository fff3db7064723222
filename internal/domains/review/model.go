package review

import "time"

// State là trạng thái hiện tại trong editorial lifecycle
type State string

const (
	StateDraft         State = "draft"
	StateReviewPending State = "review_pending"
	StateApproved      State = "approved"
	StateLocked        State = "locked"
	StateRejected      State = "rejected"
	StateFlagged       State = "flagged"
)

// IsValid kiểm tra state hợp lệ
func (s State) IsValid() bool {
	switch s {
	case StateDraft, StateReviewPending, StateApproved, StateLocked, StateRejected, StateFlagged:
		return true
	}
	return false
}

func (s State) String() string {
	return string(s)
}

// DefaultReviewers is the informational list of reviewer roles still required.
// Not enforced by the workflow; kept on every new block for the editors.
func DefaultReviewers() []string {
	return []string{"editor", "linguist", "final"}
}

// Issue is one reported problem attached to a reject action. All fields are
// caller-supplied and nullable; they serialize with explicit nulls so the
// persisted shape is stable.
type Issue struct {
	Path       *string `json:"path"`
	Lang       *string `json:"lang"`
	Problem    *string `json:"problem"`
	Found      *string `json:"found"`
	Expected   *string `json:"expected"`
	Suggestion *string `json:"suggestion"`
	Severity   *string `json:"severity"`
}

// HistoryEntry is one append-only audit record inside a ReviewBlock.
// Entries are never edited or removed once appended.
type HistoryEntry struct {
	TS         time.Time `json:"ts"`
	Actor      string    `json:"actor"`
	Action     string    `json:"action"`
	From       State     `json:"from"`
	To         State     `json:"to"`
	Issues     []Issue   `json:"issues"`
	HashBefore *string   `json:"hash_before"`
	HashAfter  *string   `json:"hash_after"`
}

// Block embeds the workflow state in a verse or commentary record.
// Only ever mutated by appending a history entry and advancing State.
type Block struct {
	State             State          `json:"state"`
	RequiredReviewers []string       `json:"required_reviewers"`
	History           []HistoryEntry `json:"history"`
}

// NewBlock returns a fresh block in the given initial state. Verses start
// in draft; commentary starts in review_pending.
func NewBlock(initial State) Block {
	return Block{
		State:             initial,
		RequiredReviewers: DefaultReviewers(),
		History:           []HistoryEntry{},
	}
}

// Advance appends one history entry and overwrites State. This is the only
// mutation a Block supports.
func (b *Block) Advance(entry HistoryEntry) {
	b.History = append(b.History, entry)
	b.State = entry.To
}

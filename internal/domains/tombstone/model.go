package tombstone

import "time"

// Kind phân loại record bị xóa; matches the trash sub-area names.
type Kind string

const (
	KindVerses     Kind = "verses"
	KindCommentary Kind = "commentary"
)

// Status tracks the two-phase delete. A tombstone is written pending before
// the file moves and committed after; anything left pending marks an
// interrupted delete that an operator can resolve from the receipt alone.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCommitted Status = "committed"
)

// Tombstone là deletion receipt, immutable once committed.
// Paths are relative to the work directory so the receipt stays valid if
// the corpus root moves.
type Tombstone struct {
	Kind         Kind      `json:"kind"`
	ID           string    `json:"id"`
	WorkID       string    `json:"work_id"`
	DeletedAt    time.Time `json:"deleted_at"`
	Actor        string    `json:"actor"`
	OriginalPath string    `json:"original_path"`
	TrashPath    string    `json:"trash_path"`
	Status       Status    `json:"status"`
}

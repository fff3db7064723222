// Package audit writes the external review trail: one JSON line per
// successful workflow transition, appended to a date-partitioned log. This
// duplicates the history embedded in each record on purpose: the embedded
// history travels with the record, the audit log survives record deletion.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const reviewDir = "review"

// Entry is one audit line. Issues holds whatever the review action reported,
// serialized verbatim.
type Entry struct {
	Kind     string      `json:"kind"` // "verse" or "commentary"
	WorkID   string      `json:"work_id"`
	RecordID string      `json:"record_id"`
	Actor    string      `json:"actor"`
	Action   string      `json:"action"`
	From     string      `json:"from"`
	To       string      `json:"to"`
	Issues   interface{} `json:"issues"`
	TS       time.Time   `json:"ts"`
}

// Logger appends entries under <logsDir>/review/<YYYY-MM-DD>.jsonl.
type Logger struct {
	logsDir string

	// now is swappable in tests; defaults to time.Now.
	now func() time.Time
}

func New(logsDir string) *Logger {
	return &Logger{logsDir: logsDir, now: time.Now}
}

// Append writes one entry to today's partition. The file is opened with
// O_APPEND so each line lands as a single write; entries are never edited
// or removed.
func (l *Logger) Append(e Entry) error {
	if e.TS.IsZero() {
		e.TS = l.now().UTC()
	}

	line, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal audit entry: %w", err)
	}

	dir := filepath.Join(l.logsDir, reviewDir)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create audit dir: %w", err)
	}

	path := filepath.Join(dir, e.TS.Format("2006-01-02")+".jsonl")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
	if err != nil {
		return fmt.Errorf("open audit log %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("append audit log %s: %w", path, err)
	}
	return nil
}

package audit_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"corpus-backend/internal/infrastructure/audit"
)

func TestAppendWritesToDatePartition(t *testing.T) {
	dir := t.TempDir()
	logger := audit.New(dir)

	ts := time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC)
	require.NoError(t, logger.Append(audit.Entry{
		Kind:     "verse",
		WorkID:   "satyanusaran",
		RecordID: "V0001",
		Actor:    "editor@example.org",
		Action:   "state_change",
		From:     "draft",
		To:       "approved",
		Issues:   []string{},
		TS:       ts,
	}))

	path := filepath.Join(dir, "review", "2026-08-29.jsonl")
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &line))
	assert.Equal(t, "verse", line["kind"])
	assert.Equal(t, "V0001", line["record_id"])
	assert.Equal(t, "approved", line["to"])
}

func TestAppendIsAppendOnly(t *testing.T) {
	dir := t.TempDir()
	logger := audit.New(dir)
	ts := time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		require.NoError(t, logger.Append(audit.Entry{
			Kind: "commentary", WorkID: "w", RecordID: "C-1", Actor: "a",
			Action: "flag", From: "draft", To: "flagged", TS: ts,
		}))
	}

	data, err := os.ReadFile(filepath.Join(dir, "review", "2026-08-29.jsonl"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	assert.Len(t, lines, 3)
}

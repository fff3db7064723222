package service_test

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"corpus-backend/internal/domains/commentary"
	commentaryrepo "corpus-backend/internal/domains/commentary/repository"
	"corpus-backend/internal/domains/export"
	exportservice "corpus-backend/internal/domains/export/service"
	"corpus-backend/internal/domains/review"
	"corpus-backend/internal/domains/verse"
	verserepo "corpus-backend/internal/domains/verse/repository"
	"corpus-backend/internal/domains/work"
	workrepo "corpus-backend/internal/domains/work/repository"
	"corpus-backend/internal/infrastructure/fsstore"
)

const workID = "satyanusaran"

func strPtr(s string) *string { return &s }

func setup(t *testing.T) (export.Service, *fsstore.Store) {
	t.Helper()

	store, err := fsstore.New(t.TempDir())
	require.NoError(t, err)

	w := work.Work{
		WorkID:        workID,
		Title:         map[string]*string{"en": strPtr("Satyanusaran")},
		CanonicalLang: "bn",
		Langs:         []string{"bn", "en"},
	}
	require.NoError(t, store.WriteJSON(store.WorkPath(workID), &w))

	writeVerse := func(id string, order int, texts map[string]*string, meta map[string]*string, tags []string) {
		v := verse.Verse{
			Type: verse.TypeVerse, WorkID: workID, VerseID: id, Order: order,
			Texts: texts, Meta: meta, Tags: tags,
			Review: review.NewBlock(review.StateDraft),
		}
		require.NoError(t, store.WriteJSON(store.VersePath(workID, id), &v))
	}
	writeVerse("V0001", 1,
		map[string]*string{"bn": strPtr("প্রথম"), "en": strPtr("first")},
		map[string]*string{"entered_by": strPtr("editor@example.org"), "chapter": strPtr("1")},
		[]string{"core"},
	)
	writeVerse("V0002", 2, map[string]*string{"bn": strPtr("দ্বিতীয়")}, nil, nil)

	c := commentary.Commentary{
		Type:         commentary.TypeCommentary,
		CommentaryID: "C-SATYAN-V0001-0001",
		WorkID:       workID,
		VerseID:      strPtr("V0001"),
		Targets:      []commentary.Target{{Kind: "verse", IDs: []string{"V0001"}}},
		Genre:        strPtr("upadesh"),
		Texts:        map[string]*string{"bn": strPtr("ভাষ্য"), "en": nil},
		Authenticity: map[string]interface{}{"status": "attested"},
		Priority:     map[string]*float64{},
		Review:       review.NewBlock(review.StateReviewPending),
	}
	require.NoError(t, store.WriteJSON(store.CommentaryPath(workID, c.CommentaryID, "V0001"), &c))

	svc := exportservice.NewExportService(
		store,
		workrepo.NewFSRepository(store),
		verserepo.NewFSRepository(store),
		commentaryrepo.NewFSRepository(store),
	)
	return svc, store
}

func TestMergeWritesCompositeArtifact(t *testing.T) {
	svc, store := setup(t)

	path, err := svc.Merge(context.Background(), workID)
	require.NoError(t, err)
	assert.Equal(t, store.BuildPath(workID), path)

	var merged export.MergeResult
	require.NoError(t, store.ReadJSON(path, &merged))
	assert.Equal(t, workID, merged.Work.WorkID)
	require.Len(t, merged.Verses, 2)
	assert.Equal(t, "V0001", merged.Verses[0].VerseID)
	require.Len(t, merged.Commentary, 1)

	// Merged verses carry the normalized language key set.
	assert.Len(t, merged.Verses[0].Texts, 5)
}

func TestCleanStripsEditorialFields(t *testing.T) {
	svc, store := setup(t)

	path, err := svc.Clean(context.Background(), workID)
	require.NoError(t, err)
	assert.Equal(t, store.CleanExportPath(workID), path)

	var doc map[string]interface{}
	require.NoError(t, store.ReadJSON(path, &doc))

	verses := doc["verses"].([]interface{})
	for _, item := range verses {
		v := item.(map[string]interface{})
		assert.NotContains(t, v, "review")
		if meta, ok := v["meta"].(map[string]interface{}); ok {
			assert.NotContains(t, meta, "entered_by")
			assert.NotContains(t, meta, "reviewer")
			assert.NotContains(t, meta, "date_reviewed")
		}
	}
	// Non-editorial meta keys survive.
	first := verses[0].(map[string]interface{})
	assert.Equal(t, "1", first["meta"].(map[string]interface{})["chapter"])

	for _, item := range doc["commentary"].([]interface{}) {
		c := item.(map[string]interface{})
		assert.NotContains(t, c, "review")
		assert.NotContains(t, c, "priority")
		assert.NotContains(t, c, "authenticity")
	}

	// Stored originals untouched.
	var v verse.Verse
	require.NoError(t, store.ReadJSON(store.VersePath(workID, "V0001"), &v))
	assert.Equal(t, review.StateDraft, v.Review.State)
	assert.Equal(t, strPtr("editor@example.org"), v.Meta["entered_by"])
}

func TestTrainFlattensNonNullTexts(t *testing.T) {
	svc, store := setup(t)

	path, err := svc.Train(context.Background(), workID)
	require.NoError(t, err)
	assert.Equal(t, store.TrainExportPath(workID), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")

	// V0001 bn+en, V0002 bn only, commentary bn only: exactly 4 lines.
	require.Len(t, lines, 4)

	var first map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "verse", first["type"])
	assert.Equal(t, "V0001", first["verse_id"])
	assert.Equal(t, "bn", first["lang"])
	assert.Equal(t, "প্রথম", first["text"])
	assert.Equal(t, []interface{}{"core"}, first["tags"])

	var last map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[3]), &last))
	assert.Equal(t, "commentary", last["type"])
	assert.Equal(t, "C-SATYAN-V0001-0001", last["commentary_id"])
	assert.Equal(t, "upadesh", last["genre"])
}

func TestExportUnknownWork(t *testing.T) {
	svc, _ := setup(t)

	_, err := svc.Merge(context.Background(), "missing")
	assert.ErrorIs(t, err, work.ErrWorkNotFound)
}

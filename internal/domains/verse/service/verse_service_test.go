package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"corpus-backend/internal/domains/review"
	"corpus-backend/internal/domains/tombstone"
	"corpus-backend/internal/domains/verse"
	verserepo "corpus-backend/internal/domains/verse/repository"
	verseservice "corpus-backend/internal/domains/verse/service"
	"corpus-backend/internal/domains/work"
	workrepo "corpus-backend/internal/domains/work/repository"
	"corpus-backend/internal/infrastructure/fsstore"
)

const workID = "satyanusaran"

func strPtr(s string) *string { return &s }

func setup(t *testing.T) (verse.Service, *fsstore.Store) {
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

	locks := fsstore.NewLocks()
	svc := verseservice.NewVerseService(
		verserepo.NewFSRepository(store),
		workrepo.NewFSRepository(store),
		tombstone.NewManager(store),
		locks,
	)
	return svc, store
}

func create(t *testing.T, svc verse.Service, numberManual string) *verse.Verse {
	t.Helper()
	v, err := svc.CreateVerse(context.Background(), workID, verse.CreateRequest{
		NumberManual: numberManual,
		Texts:        map[string]*string{"bn": strPtr("প্রথম")},
		Origin:       []verse.OriginEntry{{Edition: "ed-1"}},
	}, "editor@example.org")
	require.NoError(t, err)
	return v
}

func TestCreateVerseMintsSequentialIDs(t *testing.T) {
	svc, _ := setup(t)

	first := create(t, svc, "1")
	second := create(t, svc, "2")

	assert.Equal(t, "V0001", first.VerseID)
	assert.Equal(t, 1, first.Order)
	assert.Equal(t, "V0002", second.VerseID)
	assert.Equal(t, 2, second.Order)
}

func TestCreateVerseDefaults(t *testing.T) {
	svc, _ := setup(t)

	v := create(t, svc, "1")

	assert.Equal(t, review.StateDraft, v.Review.State)
	assert.Equal(t, review.DefaultReviewers(), v.Review.RequiredReviewers)
	assert.Empty(t, v.Review.History)
	assert.Equal(t, strPtr("editor@example.org"), v.Meta["entered_by"])
	assert.Equal(t, []string{}, v.Tags)

	// Normalized to the full expected language set.
	assert.Len(t, v.Texts, 5)
	assert.Equal(t, "প্রথম", *v.Texts["bn"])
	assert.Nil(t, v.Texts["en"])
}

func TestCreateVerseDuplicateManualNumber(t *testing.T) {
	svc, _ := setup(t)
	create(t, svc, "1")

	_, err := svc.CreateVerse(context.Background(), workID, verse.CreateRequest{
		NumberManual: "1",
		Texts:        map[string]*string{},
		Origin:       []verse.OriginEntry{},
	}, "editor@example.org")
	assert.ErrorIs(t, err, verse.ErrDuplicateManualNumber)
}

func TestUpdateVersePatchSemantics(t *testing.T) {
	svc, _ := setup(t)
	v := create(t, svc, "1")

	updated, err := svc.UpdateVerse(context.Background(), workID, v.VerseID, verse.UpdateRequest{
		Texts: map[string]*string{"en": strPtr("first")},
		Meta:  map[string]*string{"reviewer": strPtr("linguist@example.org")},
	})
	require.NoError(t, err)

	// Texts replace wholesale (then normalize), meta merges key-wise.
	assert.Equal(t, "first", *updated.Texts["en"])
	assert.Nil(t, updated.Texts["bn"])
	assert.Equal(t, strPtr("editor@example.org"), updated.Meta["entered_by"])
	assert.Equal(t, strPtr("linguist@example.org"), updated.Meta["reviewer"])

	// Untouched fields survive.
	assert.Equal(t, strPtr("1"), updated.NumberManual)
}

func TestUpdateVerseNumberConflict(t *testing.T) {
	svc, _ := setup(t)
	create(t, svc, "1")
	second := create(t, svc, "2")

	_, err := svc.UpdateVerse(context.Background(), workID, second.VerseID, verse.UpdateRequest{
		NumberManual: strPtr("1"),
	})
	assert.ErrorIs(t, err, verse.ErrDuplicateManualNumber)

	// Keeping its own number is not a conflict.
	_, err = svc.UpdateVerse(context.Background(), workID, second.VerseID, verse.UpdateRequest{
		NumberManual: strPtr("2"),
	})
	assert.NoError(t, err)
}

func TestListVersesPagination(t *testing.T) {
	svc, _ := setup(t)
	for i := 1; i <= 5; i++ {
		create(t, svc, string(rune('0'+i)))
	}

	page, err := svc.ListVerses(context.Background(), workID, 0, 2)
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 5, page.Total)
	require.NotNil(t, page.Next)
	assert.Equal(t, 2, page.Next.Offset)

	last, err := svc.ListVerses(context.Background(), workID, 4, 2)
	require.NoError(t, err)
	assert.Len(t, last.Items, 1)
	assert.Nil(t, last.Next)
}

func TestDeleteVerseMovesToTrashWithTombstone(t *testing.T) {
	svc, store := setup(t)
	v := create(t, svc, "1")

	require.NoError(t, svc.DeleteVerse(context.Background(), workID, v.VerseID, "editor@example.org"))

	_, err := svc.GetVerse(context.Background(), workID, v.VerseID)
	assert.ErrorIs(t, err, verse.ErrVerseNotFound)

	assert.True(t, store.Exists(store.TrashPath(workID, "verses/"+v.VerseID+".json")))

	var ts tombstone.Tombstone
	require.NoError(t, store.ReadJSON(store.TombstonePath(workID, "verses", v.VerseID), &ts))
	assert.Equal(t, tombstone.StatusCommitted, ts.Status)
	assert.Equal(t, "verses/"+v.VerseID+".json", ts.OriginalPath)
	assert.Equal(t, "trash/verses/"+v.VerseID+".json", ts.TrashPath)
	assert.Equal(t, "editor@example.org", ts.Actor)

	// Second delete is a no-op, not an error.
	assert.NoError(t, svc.DeleteVerse(context.Background(), workID, v.VerseID, "editor@example.org"))
}

func TestDeletedVerseInvisibleToListing(t *testing.T) {
	svc, _ := setup(t)
	v := create(t, svc, "1")
	create(t, svc, "2")

	require.NoError(t, svc.DeleteVerse(context.Background(), workID, v.VerseID, "editor@example.org"))

	page, err := svc.ListVerses(context.Background(), workID, 0, 20)
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, "V0002", page.Items[0].VerseID)
}

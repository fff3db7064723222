package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"corpus-backend/internal/domains/commentary"
	commentaryrepo "corpus-backend/internal/domains/commentary/repository"
	commentaryservice "corpus-backend/internal/domains/commentary/service"
	"corpus-backend/internal/domains/review"
	"corpus-backend/internal/domains/tombstone"
	"corpus-backend/internal/domains/verse"
	verserepo "corpus-backend/internal/domains/verse/repository"
	"corpus-backend/internal/infrastructure/fsstore"
)

const (
	workID  = "satyanusaran"
	verseID = "V0001"
)

func strPtr(s string) *string { return &s }

func setup(t *testing.T) (commentary.Service, *fsstore.Store) {
	t.Helper()

	store, err := fsstore.New(t.TempDir())
	require.NoError(t, err)

	v := verse.Verse{Type: verse.TypeVerse, WorkID: workID, VerseID: verseID, Order: 1}
	require.NoError(t, store.WriteJSON(store.VersePath(workID, verseID), &v))

	svc := commentaryservice.NewCommentaryService(
		commentaryrepo.NewFSRepository(store),
		verserepo.NewFSRepository(store),
		tombstone.NewManager(store),
		fsstore.NewLocks(),
	)
	return svc, store
}

func create(t *testing.T, svc commentary.Service) *commentary.Commentary {
	t.Helper()
	c, err := svc.CreateCommentary(context.Background(), workID, verseID, commentary.CreateRequest{
		Texts:   map[string]*string{"bn": strPtr("ভাষ্য")},
		Speaker: strPtr("Thakur"),
	})
	require.NoError(t, err)
	return c
}

func TestCreateCommentaryMintsScopedIDs(t *testing.T) {
	svc, _ := setup(t)

	first := create(t, svc)
	second := create(t, svc)

	assert.Equal(t, "C-SATYAN-V0001-0001", first.CommentaryID)
	assert.Equal(t, "C-SATYAN-V0001-0002", second.CommentaryID)
}

func TestCreateCommentaryDefaults(t *testing.T) {
	svc, _ := setup(t)

	c := create(t, svc)

	assert.Equal(t, commentary.TypeCommentary, c.Type)
	assert.Equal(t, strPtr(verseID), c.VerseID)
	require.Len(t, c.Targets, 1)
	assert.Equal(t, "verse", c.Targets[0].Kind)
	assert.Equal(t, []string{verseID}, c.Targets[0].IDs)
	assert.Equal(t, "attested", c.Authenticity["status"])
	assert.Equal(t, 1.0, *c.Priority["lineage_bias"])
	assert.Equal(t, review.StateReviewPending, c.Review.State)
	assert.Empty(t, c.Review.History)
}

func TestCreateCommentaryRequiresVerse(t *testing.T) {
	svc, _ := setup(t)

	_, err := svc.CreateCommentary(context.Background(), workID, "V0099", commentary.CreateRequest{
		Texts: map[string]*string{},
	})
	assert.ErrorIs(t, err, verse.ErrVerseNotFound)
}

func TestGetCommentaryFindsAcrossScopes(t *testing.T) {
	svc, store := setup(t)
	c := create(t, svc)

	// Plant a work-scoped record too; the area-wide lookup must see both.
	workScoped := commentary.Commentary{
		Type:         commentary.TypeCommentary,
		CommentaryID: "C-SATYAN-V0001-0099",
		WorkID:       workID,
		Targets:      []commentary.Target{{Kind: "work", IDs: []string{workID}}},
		Texts:        map[string]*string{},
		Review:       review.NewBlock(review.StateReviewPending),
	}
	require.NoError(t, store.WriteJSON(store.CommentaryPath(workID, workScoped.CommentaryID, ""), &workScoped))

	got, err := svc.GetCommentary(context.Background(), workID, c.CommentaryID)
	require.NoError(t, err)
	assert.Equal(t, strPtr(verseID), got.VerseID)

	gotWork, err := svc.GetCommentary(context.Background(), workID, workScoped.CommentaryID)
	require.NoError(t, err)
	assert.Nil(t, gotWork.VerseID)

	_, err = svc.GetCommentary(context.Background(), workID, "C-SATYAN-V0001-1234")
	assert.ErrorIs(t, err, commentary.ErrCommentaryNotFound)
}

func TestUpdateCommentaryPatchSemantics(t *testing.T) {
	svc, _ := setup(t)
	c := create(t, svc)

	updated, err := svc.UpdateCommentary(context.Background(), workID, c.CommentaryID, commentary.UpdateRequest{
		Genre: strPtr("upadesh"),
		Texts: map[string]*string{"en": strPtr("commentary")},
	})
	require.NoError(t, err)

	assert.Equal(t, strPtr("upadesh"), updated.Genre)
	assert.Equal(t, strPtr("commentary"), updated.Texts["en"])
	// Untouched fields survive the patch.
	assert.Equal(t, strPtr("Thakur"), updated.Speaker)
	assert.Equal(t, review.StateReviewPending, updated.Review.State)
}

func TestDeleteCommentaryIdempotent(t *testing.T) {
	svc, store := setup(t)
	c := create(t, svc)

	require.NoError(t, svc.DeleteCommentary(context.Background(), workID, c.CommentaryID, "editor@example.org"))

	_, err := svc.GetCommentary(context.Background(), workID, c.CommentaryID)
	assert.ErrorIs(t, err, commentary.ErrCommentaryNotFound)

	var ts tombstone.Tombstone
	require.NoError(t, store.ReadJSON(store.TombstonePath(workID, "commentary", c.CommentaryID), &ts))
	assert.Equal(t, tombstone.StatusCommitted, ts.Status)
	assert.Equal(t, "commentary/"+verseID+"/"+c.CommentaryID+".json", ts.OriginalPath)

	// Second delete: no error, no duplicate receipt.
	assert.NoError(t, svc.DeleteCommentary(context.Background(), workID, c.CommentaryID, "editor@example.org"))
}

func TestListForVerseSkipsOtherScopes(t *testing.T) {
	svc, store := setup(t)
	create(t, svc)

	other := commentary.Commentary{
		Type:         commentary.TypeCommentary,
		CommentaryID: "C-SATYAN-V0002-0001",
		WorkID:       workID,
		VerseID:      strPtr("V0002"),
		Targets:      []commentary.Target{{Kind: "verse", IDs: []string{"V0002"}}},
		Texts:        map[string]*string{},
		Review:       review.NewBlock(review.StateReviewPending),
	}
	require.NoError(t, store.WriteJSON(store.CommentaryPath(workID, other.CommentaryID, "V0002"), &other))

	items, err := svc.ListForVerse(context.Background(), workID, verseID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "C-SATYAN-V0001-0001", items[0].CommentaryID)
}

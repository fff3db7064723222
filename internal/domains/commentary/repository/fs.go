package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"corpus-backend/internal/domains/commentary"
	"corpus-backend/internal/infrastructure/fsstore"
)

// fsRepository implement commentary.Repository trên document store
type fsRepository struct {
	store *fsstore.Store
}

// NewFSRepository - Constructor
func NewFSRepository(store *fsstore.Store) commentary.Repository {
	return &fsRepository{store: store}
}

func (r *fsRepository) ListAll(ctx context.Context, workID string) ([]commentary.Commentary, error) {
	scopes, err := r.scopeDirs(workID)
	if err != nil {
		return nil, err
	}

	var out []commentary.Commentary
	for _, scope := range scopes {
		items, err := r.readScope(workID, scope)
		if err != nil {
			return nil, err
		}
		out = append(out, items...)
	}
	return out, nil
}

func (r *fsRepository) ListForVerse(ctx context.Context, workID, verseID string) ([]commentary.Commentary, error) {
	return r.readScope(workID, verseID)
}

func (r *fsRepository) FindByID(ctx context.Context, workID, commentaryID string) (*commentary.Commentary, error) {
	path, err := r.LivePath(ctx, workID, commentaryID)
	if err != nil {
		return nil, err
	}
	var c commentary.Commentary
	if err := r.store.ReadJSON(path, &c); err != nil {
		if errors.Is(err, fsstore.ErrNotFound) {
			return nil, commentary.ErrCommentaryNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *fsRepository) ExistingIDs(_ context.Context, workID, verseID string) ([]string, error) {
	names, err := r.commentaryFiles(workID, scopeOf(verseID))
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(names))
	for _, name := range names {
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}
	return ids, nil
}

// LivePath searches every sub-scope for <commentaryID>.json, since the
// physical location depends on the record's target.
func (r *fsRepository) LivePath(_ context.Context, workID, commentaryID string) (string, error) {
	scopes, err := r.scopeDirs(workID)
	if err != nil {
		return "", err
	}
	for _, scope := range scopes {
		path := filepath.Join(r.store.CommentaryRoot(workID), scope, commentaryID+".json")
		if r.store.Exists(path) {
			return path, nil
		}
	}
	return "", commentary.ErrCommentaryNotFound
}

func (r *fsRepository) Save(_ context.Context, c *commentary.Commentary) error {
	verseID := ""
	if c.VerseID != nil {
		verseID = *c.VerseID
	}
	return r.store.WriteJSON(r.store.CommentaryPath(c.WorkID, c.CommentaryID, verseID), c)
}

// scopeDirs lists the sub-scope directory names of the commentary area,
// verse scopes first in lexical order, the work scope last. A missing area
// means a work with no commentary yet, not an error.
func (r *fsRepository) scopeDirs(workID string) ([]string, error) {
	entries, err := os.ReadDir(r.store.CommentaryRoot(workID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read commentary of %s: %w", workID, err)
	}

	var verseScopes []string
	hasWorkScope := false
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if entry.Name() == fsstore.WorkScopeDir {
			hasWorkScope = true
			continue
		}
		verseScopes = append(verseScopes, entry.Name())
	}
	sort.Strings(verseScopes)
	if hasWorkScope {
		verseScopes = append(verseScopes, fsstore.WorkScopeDir)
	}
	return verseScopes, nil
}

func (r *fsRepository) readScope(workID, scope string) ([]commentary.Commentary, error) {
	names, err := r.commentaryFiles(workID, scope)
	if err != nil {
		return nil, err
	}

	items := make([]commentary.Commentary, 0, len(names))
	for _, name := range names {
		var c commentary.Commentary
		path := filepath.Join(r.store.CommentaryRoot(workID), scope, name)
		if err := r.store.ReadJSON(path, &c); err != nil {
			if errors.Is(err, fsstore.ErrNotFound) {
				continue
			}
			return nil, err
		}
		items = append(items, c)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CommentaryID < items[j].CommentaryID
	})
	return items, nil
}

// commentaryFiles lists C-*.json filenames in one scope directory.
func (r *fsRepository) commentaryFiles(workID, scope string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(r.store.CommentaryRoot(workID), scope))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read commentary scope %s/%s: %w", workID, scope, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, "C-") && strings.HasSuffix(name, ".json") {
			names = append(names, name)
		}
	}
	return names, nil
}

func scopeOf(verseID string) string {
	if verseID == "" {
		return fsstore.WorkScopeDir
	}
	return verseID
}

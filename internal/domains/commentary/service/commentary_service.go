package service

import (
	"context"
	"errors"
	"fmt"

	"corpus-backend/internal/domains/commentary"
	"corpus-backend/internal/domains/review"
	"corpus-backend/internal/domains/tombstone"
	"corpus-backend/internal/domains/verse"
	"corpus-backend/internal/infrastructure/fsstore"
)

// commentaryService implement commentary.Service interface
type commentaryService struct {
	repo      commentary.Repository
	verseRepo verse.Repository // Cross-domain: creation requires the target verse to exist
	trash     tombstone.Manager
	locks     *fsstore.Locks
}

// NewCommentaryService tạo service instance
func NewCommentaryService(
	repo commentary.Repository,
	verseRepo verse.Repository,
	trash tombstone.Manager,
	locks *fsstore.Locks,
) commentary.Service {
	return &commentaryService{
		repo:      repo,
		verseRepo: verseRepo,
		trash:     trash,
		locks:     locks,
	}
}

func (s *commentaryService) ListForVerse(ctx context.Context, workID, verseID string) ([]commentary.Commentary, error) {
	if !s.verseRepo.Exists(ctx, workID, verseID) {
		return nil, verse.ErrVerseNotFound
	}
	items, err := s.repo.ListForVerse(ctx, workID, verseID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []commentary.Commentary{}
	}
	return items, nil
}

func (s *commentaryService) GetCommentary(ctx context.Context, workID, commentaryID string) (*commentary.Commentary, error) {
	return s.repo.FindByID(ctx, workID, commentaryID)
}

func (s *commentaryService) CreateCommentary(ctx context.Context, workID, verseID string, req commentary.CreateRequest) (*commentary.Commentary, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if !s.verseRepo.Exists(ctx, workID, verseID) {
		return nil, verse.ErrVerseNotFound
	}

	// Id generation scans the scope's current files; the work lock makes
	// scan→mint→save one logical unit.
	defer s.locks.Lock(workID)()

	existing, err := s.repo.ExistingIDs(ctx, workID, verseID)
	if err != nil {
		return nil, err
	}
	commentaryID := commentary.NextID(workID, verseID, existing)

	vid := verseID
	confidence := 1.0
	lineageBias := 1.0
	c := &commentary.Commentary{
		Type:         commentary.TypeCommentary,
		CommentaryID: commentaryID,
		WorkID:       workID,
		VerseID:      &vid,
		Targets: []commentary.Target{
			{Kind: "verse", IDs: []string{verseID}},
		},
		Speaker: req.Speaker,
		Source:  req.Source,
		Date:    map[string]*string{},
		Genre:   req.Genre,
		Tags:    req.Tags,
		Texts:   req.Texts,
		Authenticity: map[string]interface{}{
			"status":     "attested",
			"confidence": confidence,
		},
		Priority: map[string]*float64{
			"lineage_bias": &lineageBias,
		},
		Review: review.NewBlock(review.StateReviewPending),
	}
	if c.Tags == nil {
		c.Tags = []string{}
	}

	if err := s.repo.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("save commentary: %w", err)
	}
	return c, nil
}

func (s *commentaryService) UpdateCommentary(ctx context.Context, workID, commentaryID string, req commentary.UpdateRequest) (*commentary.Commentary, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	defer s.locks.Lock(workID)()

	c, err := s.repo.FindByID(ctx, workID, commentaryID)
	if err != nil {
		return nil, err
	}

	if req.Texts != nil {
		c.Texts = req.Texts
	}
	if req.Speaker != nil {
		c.Speaker = req.Speaker
	}
	if req.Source != nil {
		c.Source = req.Source
	}
	if req.Genre != nil {
		c.Genre = req.Genre
	}
	if req.Tags != nil {
		c.Tags = req.Tags
	}

	if err := s.repo.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("save commentary: %w", err)
	}
	return c, nil
}

func (s *commentaryService) DeleteCommentary(ctx context.Context, workID, commentaryID, actor string) error {
	defer s.locks.Lock(workID)()

	livePath, err := s.repo.LivePath(ctx, workID, commentaryID)
	if err != nil {
		if errors.Is(err, commentary.ErrCommentaryNotFound) {
			// Already deleted; no second tombstone.
			return nil
		}
		return err
	}
	return s.trash.Delete(ctx, workID, tombstone.KindCommentary, commentaryID, livePath, actor)
}

package service

import (
	"context"
	"fmt"

	"corpus-backend/internal/domains/review"
	"corpus-backend/internal/domains/tombstone"
	"corpus-backend/internal/domains/verse"
	"corpus-backend/internal/domains/work"
	"corpus-backend/internal/infrastructure/fsstore"
)

// verseService implement verse.Service interface
type verseService struct {
	repo     verse.Repository
	workRepo work.Repository // Cross-domain: expected-language set lives on the work
	trash    tombstone.Manager
	locks    *fsstore.Locks
}

// NewVerseService tạo service instance
func NewVerseService(
	repo verse.Repository,
	workRepo work.Repository,
	trash tombstone.Manager,
	locks *fsstore.Locks,
) verse.Service {
	return &verseService{
		repo:     repo,
		workRepo: workRepo,
		trash:    trash,
		locks:    locks,
	}
}

func (s *verseService) ListVerses(ctx context.Context, workID string, offset, limit int) (*verse.ListResponse, error) {
	w, err := s.workRepo.Load(ctx, workID)
	if err != nil {
		return nil, err
	}

	verses, err := s.repo.List(ctx, workID)
	if err != nil {
		return nil, err
	}

	expected := w.ExpectedLanguages()
	for i := range verses {
		verses[i].Normalize(expected)
	}

	total := len(verses)
	if offset < 0 {
		offset = 0
	}
	if limit < 1 {
		limit = 20
	}
	end := offset + limit
	if end > total {
		end = total
	}
	if offset > total {
		offset = total
	}

	resp := &verse.ListResponse{
		Items: verses[offset:end],
		Total: total,
	}
	if end < total {
		resp.Next = &verse.Cursor{Offset: end, Limit: limit}
	}
	return resp, nil
}

func (s *verseService) GetVerse(ctx context.Context, workID, verseID string) (*verse.Verse, error) {
	w, err := s.workRepo.Load(ctx, workID)
	if err != nil {
		return nil, err
	}
	v, err := s.repo.Load(ctx, workID, verseID)
	if err != nil {
		return nil, err
	}
	v.Normalize(w.ExpectedLanguages())
	return v, nil
}

func (s *verseService) CreateVerse(ctx context.Context, workID string, req verse.CreateRequest, actor string) (*verse.Verse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	w, err := s.workRepo.Load(ctx, workID)
	if err != nil {
		return nil, err
	}

	// Id generation and the conflict check both scan current store state;
	// the work lock makes scan→mint→save one logical unit.
	defer s.locks.Lock(workID)()

	taken, err := s.manualNumberExists(ctx, workID, req.NumberManual, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, verse.ErrDuplicateManualNumber
	}

	existing, err := s.repo.ExistingIDs(ctx, workID)
	if err != nil {
		return nil, err
	}
	verseID, order := verse.NextID(existing)

	meta := req.Meta
	if meta == nil {
		meta = map[string]*string{}
	}
	if _, ok := meta["entered_by"]; !ok {
		enteredBy := actor
		meta["entered_by"] = &enteredBy
	}

	numberManual := req.NumberManual
	v := &verse.Verse{
		Type:         verse.TypeVerse,
		WorkID:       workID,
		VerseID:      verseID,
		NumberManual: &numberManual,
		Order:        order,
		Texts:        req.Texts,
		Segments:     req.Segments,
		Origin:       req.Origin,
		Tags:         req.Tags,
		Hash:         map[string]*string{},
		Meta:         meta,
		Review:       review.NewBlock(review.StateDraft),
	}
	if v.Tags == nil {
		v.Tags = []string{}
	}

	v.Normalize(w.ExpectedLanguages())

	if err := s.repo.Save(ctx, v); err != nil {
		return nil, fmt.Errorf("save verse: %w", err)
	}
	return v, nil
}

func (s *verseService) UpdateVerse(ctx context.Context, workID, verseID string, req verse.UpdateRequest) (*verse.Verse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	w, err := s.workRepo.Load(ctx, workID)
	if err != nil {
		return nil, err
	}

	defer s.locks.Lock(workID)()

	v, err := s.repo.Load(ctx, workID, verseID)
	if err != nil {
		return nil, err
	}

	if req.NumberManual != nil {
		current := ""
		if v.NumberManual != nil {
			current = *v.NumberManual
		}
		if *req.NumberManual != current {
			taken, err := s.manualNumberExists(ctx, workID, *req.NumberManual, verseID)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, verse.ErrDuplicateManualNumber
			}
		}
		v.NumberManual = req.NumberManual
	}
	if req.Texts != nil {
		v.Texts = req.Texts
	}
	if req.Origin != nil {
		v.Origin = req.Origin
	}
	if req.Tags != nil {
		v.Tags = req.Tags
	}
	if req.Segments != nil {
		v.Segments = req.Segments
	}
	if req.Meta != nil {
		if v.Meta == nil {
			v.Meta = map[string]*string{}
		}
		for k, val := range req.Meta {
			v.Meta[k] = val
		}
	}

	v.Normalize(w.ExpectedLanguages())

	if err := s.repo.Save(ctx, v); err != nil {
		return nil, fmt.Errorf("save verse: %w", err)
	}
	return v, nil
}

func (s *verseService) DeleteVerse(ctx context.Context, workID, verseID, actor string) error {
	defer s.locks.Lock(workID)()

	return s.trash.Delete(ctx, workID, tombstone.KindVerses, verseID, s.repo.LivePath(workID, verseID), actor)
}

// manualNumberExists scans live verses for a manual number already in use.
// excludeID lets an update keep its own number.
func (s *verseService) manualNumberExists(ctx context.Context, workID, number, excludeID string) (bool, error) {
	if number == "" {
		return false, nil
	}
	verses, err := s.repo.List(ctx, workID)
	if err != nil {
		return false, err
	}
	for _, v := range verses {
		if v.VerseID == excludeID {
			continue
		}
		if v.NumberManual != nil && *v.NumberManual == number {
			return true, nil
		}
	}
	return false, nil
}

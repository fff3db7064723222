package service

import (
	"context"
	"fmt"

	"corpus-backend/internal/domains/work"
	"corpus-backend/internal/infrastructure/fsstore"
)

// workService implement work.Service interface
type workService struct {
	repo  work.Repository
	locks *fsstore.Locks
}

// NewWorkService tạo service instance
func NewWorkService(repo work.Repository, locks *fsstore.Locks) work.Service {
	return &workService{repo: repo, locks: locks}
}

func (s *workService) ListWorks(ctx context.Context) ([]work.Summary, error) {
	ids, err := s.repo.ListIDs(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]work.Summary, 0, len(ids))
	for _, id := range ids {
		w, err := s.repo.Load(ctx, id)
		if err != nil {
			// A work directory that lost its work.json between the scan and
			// the load is skipped, not fatal for the listing.
			continue
		}
		summaries = append(summaries, work.Summary{
			WorkID: w.WorkID,
			Title:  w.Title,
			Langs:  w.Langs,
		})
	}
	return summaries, nil
}

func (s *workService) GetWork(ctx context.Context, workID string) (*work.Work, error) {
	return s.repo.Load(ctx, workID)
}

func (s *workService) ReplaceWork(ctx context.Context, workID string, req work.ReplaceRequest) (*work.Work, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.WorkID != workID {
		return nil, work.ErrMismatchedWorkID
	}

	defer s.locks.Lock(workID)()

	w := req.Work
	if err := s.repo.Save(ctx, &w); err != nil {
		return nil, fmt.Errorf("save work: %w", err)
	}
	return &w, nil
}

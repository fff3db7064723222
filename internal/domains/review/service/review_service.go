// Package service drives the editorial workflow over verse and commentary
// records. It lives outside package review because the record models embed
// review.Block; keeping the orchestration here avoids an import cycle.
package service

import (
	"context"
	"fmt"
	"time"

	"corpus-backend/internal/domains/commentary"
	"corpus-backend/internal/domains/review"
	"corpus-backend/internal/domains/verse"
	"corpus-backend/internal/domains/work"
	"corpus-backend/internal/infrastructure/audit"
	"corpus-backend/internal/infrastructure/fsstore"
)

// Service định nghĩa business logic layer contract cho review workflow.
//
// Every successful transition appends one history entry to the record AND
// emits one external audit line. Verse approval is gated on canonical
// language text and at least one origin citation; commentary approval has
// no gate.
type Service interface {
	ApproveVerse(ctx context.Context, workID, verseID, actor string) (*verse.Verse, error)
	RejectVerse(ctx context.Context, workID, verseID string, issues []review.Issue, actor string) (*verse.Verse, error)
	FlagVerse(ctx context.Context, workID, verseID, actor string) (*verse.Verse, error)
	LockVerse(ctx context.Context, workID, verseID, actor string) (*verse.Verse, error)

	ApproveCommentary(ctx context.Context, workID, commentaryID, actor string) (*commentary.Commentary, error)
	RejectCommentary(ctx context.Context, workID, commentaryID string, issues []review.Issue, actor string) (*commentary.Commentary, error)
	FlagCommentary(ctx context.Context, workID, commentaryID, actor string) (*commentary.Commentary, error)
	LockCommentary(ctx context.Context, workID, commentaryID, actor string) (*commentary.Commentary, error)
}

// reviewService implement Service interface
type reviewService struct {
	verseRepo      verse.Repository
	commentaryRepo commentary.Repository
	workRepo       work.Repository
	auditLog       *audit.Logger
	locks          *fsstore.Locks

	// now is swappable in tests; defaults to time.Now.
	now func() time.Time
}

// NewReviewService tạo service instance
func NewReviewService(
	verseRepo verse.Repository,
	commentaryRepo commentary.Repository,
	workRepo work.Repository,
	auditLog *audit.Logger,
	locks *fsstore.Locks,
) Service {
	return &reviewService{
		verseRepo:      verseRepo,
		commentaryRepo: commentaryRepo,
		workRepo:       workRepo,
		auditLog:       auditLog,
		locks:          locks,
		now:            time.Now,
	}
}

// ========================================
// Verse actions
// ========================================

func (s *reviewService) ApproveVerse(ctx context.Context, workID, verseID, actor string) (*verse.Verse, error) {
	return s.transitionVerse(ctx, workID, verseID, review.ActionApprove, nil, actor)
}

func (s *reviewService) RejectVerse(ctx context.Context, workID, verseID string, issues []review.Issue, actor string) (*verse.Verse, error) {
	return s.transitionVerse(ctx, workID, verseID, review.ActionReject, issues, actor)
}

func (s *reviewService) FlagVerse(ctx context.Context, workID, verseID, actor string) (*verse.Verse, error) {
	return s.transitionVerse(ctx, workID, verseID, review.ActionFlag, nil, actor)
}

func (s *reviewService) LockVerse(ctx context.Context, workID, verseID, actor string) (*verse.Verse, error) {
	return s.transitionVerse(ctx, workID, verseID, review.ActionLock, nil, actor)
}

func (s *reviewService) transitionVerse(ctx context.Context, workID, verseID string, action review.Action, issues []review.Issue, actor string) (*verse.Verse, error) {
	w, err := s.workRepo.Load(ctx, workID)
	if err != nil {
		return nil, err
	}

	defer s.locks.Lock(workID)()

	v, err := s.verseRepo.Load(ctx, workID, verseID)
	if err != nil {
		return nil, err
	}

	// The gate runs before any mutation; a failed approve leaves both the
	// record and history untouched.
	if action == review.ActionApprove {
		if err := readyForApproval(w, v); err != nil {
			return nil, err
		}
	}

	entry, err := s.advance(&v.Review, action, issues, actor)
	if err != nil {
		return nil, err
	}

	v.Normalize(w.ExpectedLanguages())
	if err := s.verseRepo.Save(ctx, v); err != nil {
		return nil, fmt.Errorf("save verse: %w", err)
	}

	if err := s.appendAudit("verse", workID, verseID, entry); err != nil {
		return nil, err
	}
	return v, nil
}

// readyForApproval enforces the verse approval gate: non-empty text in the
// work's canonical language plus at least one origin citation.
func readyForApproval(w *work.Work, v *verse.Verse) error {
	text := v.Texts[w.CanonicalLang]
	if text == nil || *text == "" {
		return review.ErrCanonicalTextRequired
	}
	if len(v.Origin) == 0 {
		return review.ErrOriginRequired
	}
	return nil
}

// ========================================
// Commentary actions
// ========================================

func (s *reviewService) ApproveCommentary(ctx context.Context, workID, commentaryID, actor string) (*commentary.Commentary, error) {
	return s.transitionCommentary(ctx, workID, commentaryID, review.ActionApprove, nil, actor)
}

func (s *reviewService) RejectCommentary(ctx context.Context, workID, commentaryID string, issues []review.Issue, actor string) (*commentary.Commentary, error) {
	return s.transitionCommentary(ctx, workID, commentaryID, review.ActionReject, issues, actor)
}

func (s *reviewService) FlagCommentary(ctx context.Context, workID, commentaryID, actor string) (*commentary.Commentary, error) {
	return s.transitionCommentary(ctx, workID, commentaryID, review.ActionFlag, nil, actor)
}

func (s *reviewService) LockCommentary(ctx context.Context, workID, commentaryID, actor string) (*commentary.Commentary, error) {
	return s.transitionCommentary(ctx, workID, commentaryID, review.ActionLock, nil, actor)
}

func (s *reviewService) transitionCommentary(ctx context.Context, workID, commentaryID string, action review.Action, issues []review.Issue, actor string) (*commentary.Commentary, error) {
	defer s.locks.Lock(workID)()

	c, err := s.commentaryRepo.FindByID(ctx, workID, commentaryID)
	if err != nil {
		return nil, err
	}

	entry, err := s.advance(&c.Review, action, issues, actor)
	if err != nil {
		return nil, err
	}

	if err := s.commentaryRepo.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("save commentary: %w", err)
	}

	if err := s.appendAudit("commentary", workID, commentaryID, entry); err != nil {
		return nil, err
	}
	return c, nil
}

// ========================================
// Shared transition mechanics
// ========================================

func (s *reviewService) advance(block *review.Block, action review.Action, issues []review.Issue, actor string) (review.HistoryEntry, error) {
	target, historyAction, err := review.Resolve(block.State, action)
	if err != nil {
		return review.HistoryEntry{}, err
	}
	if issues == nil {
		issues = []review.Issue{}
	}

	entry := review.HistoryEntry{
		TS:     s.now().UTC(),
		Actor:  actor,
		Action: historyAction,
		From:   block.State,
		To:     target,
		Issues: issues,
	}
	block.Advance(entry)
	return entry, nil
}

func (s *reviewService) appendAudit(kind, workID, recordID string, entry review.HistoryEntry) error {
	return s.auditLog.Append(audit.Entry{
		Kind:     kind,
		WorkID:   workID,
		RecordID: recordID,
		Actor:    entry.Actor,
		Action:   entry.Action,
		From:     entry.From.String(),
		To:       entry.To.String(),
		Issues:   entry.Issues,
		TS:       entry.TS,
	})
}

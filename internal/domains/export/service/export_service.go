package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"corpus-backend/internal/domains/commentary"
	"corpus-backend/internal/domains/export"
	"corpus-backend/internal/domains/verse"
	"corpus-backend/internal/domains/work"
	"corpus-backend/internal/infrastructure/fsstore"
)

// Meta keys scrubbed from verses in the clean export.
var internalMetaKeys = []string{"reviewer", "date_reviewed", "entered_by"}

// exportService implement export.Service interface
type exportService struct {
	store          *fsstore.Store
	workRepo       work.Repository
	verseRepo      verse.Repository
	commentaryRepo commentary.Repository
}

// NewExportService tạo service instance
func NewExportService(
	store *fsstore.Store,
	workRepo work.Repository,
	verseRepo verse.Repository,
	commentaryRepo commentary.Repository,
) export.Service {
	return &exportService{
		store:          store,
		workRepo:       workRepo,
		verseRepo:      verseRepo,
		commentaryRepo: commentaryRepo,
	}
}

func (s *exportService) Merge(ctx context.Context, workID string) (string, error) {
	merged, err := s.merge(ctx, workID)
	if err != nil {
		return "", err
	}

	path := s.store.BuildPath(workID)
	if err := s.store.WriteJSON(path, merged); err != nil {
		return "", fmt.Errorf("write merge artifact: %w", err)
	}
	return path, nil
}

func (s *exportService) Clean(ctx context.Context, workID string) (string, error) {
	merged, err := s.merge(ctx, workID)
	if err != nil {
		return "", err
	}

	cleaned, err := scrub(merged)
	if err != nil {
		return "", err
	}

	path := s.store.CleanExportPath(workID)
	if err := s.store.WriteJSON(path, cleaned); err != nil {
		return "", fmt.Errorf("write clean artifact: %w", err)
	}
	return path, nil
}

func (s *exportService) Train(ctx context.Context, workID string) (string, error) {
	merged, err := s.merge(ctx, workID)
	if err != nil {
		return "", err
	}

	lines, err := trainingLines(merged)
	if err != nil {
		return "", err
	}

	path := s.store.TrainExportPath(workID)
	if err := s.store.WriteLines(path, lines); err != nil {
		return "", fmt.Errorf("write train artifact: %w", err)
	}
	return path, nil
}

// merge assembles the composite from live store state. Verses come back in
// display order and normalized to the expected language set; trashed
// records never appear.
func (s *exportService) merge(ctx context.Context, workID string) (*export.MergeResult, error) {
	w, err := s.workRepo.Load(ctx, workID)
	if err != nil {
		return nil, err
	}

	verses, err := s.verseRepo.List(ctx, workID)
	if err != nil {
		return nil, err
	}
	expected := w.ExpectedLanguages()
	for i := range verses {
		verses[i].Normalize(expected)
	}

	items, err := s.commentaryRepo.ListAll(ctx, workID)
	if err != nil {
		return nil, err
	}

	if verses == nil {
		verses = []verse.Verse{}
	}
	if items == nil {
		items = []commentary.Commentary{}
	}
	return &export.MergeResult{Work: *w, Verses: verses, Commentary: items}, nil
}

// scrub strips editorial-internal fields from a copy of the merge result.
// The copy is taken through a JSON round-trip so key removal is structural
// and cannot touch the typed originals.
func scrub(merged *export.MergeResult) (map[string]interface{}, error) {
	raw, err := json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("marshal merge result: %w", err)
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("copy merge result: %w", err)
	}

	if verses, ok := doc["verses"].([]interface{}); ok {
		for _, item := range verses {
			v, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			delete(v, "review")
			delete(v, "history")
			if meta, ok := v["meta"].(map[string]interface{}); ok {
				for _, key := range internalMetaKeys {
					delete(meta, key)
				}
			}
		}
	}
	if items, ok := doc["commentary"].([]interface{}); ok {
		for _, item := range items {
			c, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			delete(c, "review")
			delete(c, "priority")
			delete(c, "authenticity")
		}
	}
	return doc, nil
}

// trainingLines flattens the merge result, one compact JSON record per
// language with non-null non-empty text. Languages emit in expected-set
// order for verses; commentary texts are free-form maps, so those emit in
// sorted key order to keep reruns byte-stable.
func trainingLines(merged *export.MergeResult) ([][]byte, error) {
	var lines [][]byte
	workID := merged.Work.WorkID

	expected := merged.Work.ExpectedLanguages()
	for _, v := range merged.Verses {
		tags := v.Tags
		if tags == nil {
			tags = []string{}
		}
		for _, lang := range expected {
			text := v.Texts[lang]
			if text == nil || *text == "" {
				continue
			}
			line, err := json.Marshal(export.VerseTrainLine{
				Type:    "verse",
				WorkID:  workID,
				VerseID: v.VerseID,
				Lang:    lang,
				Text:    *text,
				Tags:    tags,
			})
			if err != nil {
				return nil, fmt.Errorf("marshal train line: %w", err)
			}
			lines = append(lines, line)
		}
	}

	for _, c := range merged.Commentary {
		langs := make([]string, 0, len(c.Texts))
		for lang := range c.Texts {
			langs = append(langs, lang)
		}
		sort.Strings(langs)
		for _, lang := range langs {
			text := c.Texts[lang]
			if text == nil || *text == "" {
				continue
			}
			line, err := json.Marshal(export.CommentaryTrainLine{
				Type:         "commentary",
				WorkID:       workID,
				CommentaryID: c.CommentaryID,
				Lang:         lang,
				Text:         *text,
				Genre:        c.Genre,
			})
			if err != nil {
				return nil, fmt.Errorf("marshal train line: %w", err)
			}
			lines = append(lines, line)
		}
	}
	return lines, nil
}

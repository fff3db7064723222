package work

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ========================================
// WORK DTOs
// ========================================

// Summary is the list-view projection returned by GET /works.
type Summary struct {
	WorkID string             `json:"work_id"`
	Title  map[string]*string `json:"title"`
	Langs  []string           `json:"langs"`
}

// ReplaceRequest là request body khi PUT /works/{id}.
// Explicit replace: the whole work record, no partial patch.
type ReplaceRequest struct {
	Work
}

func (r ReplaceRequest) Validate() error {
	return validation.ValidateStruct(&r.Work,
		validation.Field(&r.Work.WorkID,
			validation.Required.Error("work_id is required"),
			validation.Length(1, 128),
		),
		validation.Field(&r.Work.CanonicalLang,
			validation.Required.Error("canonical_lang is required"),
		),
		validation.Field(&r.Work.Langs,
			validation.Required.Error("langs is required"),
		),
	)
}

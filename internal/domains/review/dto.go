package review

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ========================================
// REVIEW DTOs
// ========================================

// ActionRequest là request body cho approve/flag/lock. The record id is in
// the path; the work id disambiguates which store directory to search.
type ActionRequest struct {
	WorkID string `json:"work_id"`
}

func (r ActionRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.WorkID,
			validation.Required.Error("work_id is required"),
		),
	)
}

// RejectRequest additionally carries the issues found by the reviewer.
// Issues default to empty; each is recorded verbatim in history.
type RejectRequest struct {
	WorkID string  `json:"work_id"`
	Issues []Issue `json:"issues"`
}

func (r RejectRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.WorkID,
			validation.Required.Error("work_id is required"),
		),
	)
}

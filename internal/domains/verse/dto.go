package verse

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ========================================
// VERSE DTOs
// ========================================

// CreateRequest là request body khi POST /works/{id}/verses.
// The verse id and order are generated server-side; callers supply content.
type CreateRequest struct {
	NumberManual string              `json:"number_manual"`
	Texts        map[string]*string  `json:"texts"`
	Origin       []OriginEntry       `json:"origin"`
	Tags         []string            `json:"tags"`
	Segments     map[string][]string `json:"segments"`
	Meta         map[string]*string  `json:"meta"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.NumberManual,
			validation.Required.Error("number_manual is required"),
			validation.Length(1, 64),
		),
		validation.Field(&r.Texts,
			validation.NotNil.Error("texts is required"),
		),
		validation.Field(&r.Origin,
			validation.NotNil.Error("origin is required"),
		),
	)
}

// UpdateRequest là request body khi PUT /works/{id}/verses/{vid}.
//
// Explicit patch: only fields the caller intends to change are set; nil
// means "leave alone", never "clear". Meta merges key-wise, everything else
// replaces wholesale. Applied to a loaded snapshot, then saved as a whole.
type UpdateRequest struct {
	NumberManual *string             `json:"number_manual"`
	Texts        map[string]*string  `json:"texts"`
	Origin       []OriginEntry       `json:"origin"`
	Tags         []string            `json:"tags"`
	Segments     map[string][]string `json:"segments"`
	Meta         map[string]*string  `json:"meta"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.NumberManual,
			validation.When(r.NumberManual != nil, validation.Length(1, 64)),
		),
	)
}

// Cursor points at the next page of a verse listing.
type Cursor struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ListResponse carries one page of verses in display order.
type ListResponse struct {
	Items []Verse `json:"items"`
	Next  *Cursor `json:"next"`
	Total int     `json:"total"`
}

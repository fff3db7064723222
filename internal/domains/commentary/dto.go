package commentary

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ========================================
// COMMENTARY DTOs
// ========================================

// CreateRequest là request body khi POST /works/{id}/verses/{vid}/commentary.
// The commentary id, targets, authenticity and priority defaults are filled
// in server-side.
type CreateRequest struct {
	Texts   map[string]*string `json:"texts"`
	Speaker *string            `json:"speaker"`
	Source  *string            `json:"source"`
	Genre   *string            `json:"genre"`
	Tags    []string           `json:"tags"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Texts,
			validation.NotNil.Error("texts is required"),
		),
	)
}

// UpdateRequest là request body khi PUT /works/{id}/commentary/{cid}.
// Nil fields are left alone; supplied fields replace wholesale.
type UpdateRequest struct {
	Texts   map[string]*string `json:"texts"`
	Speaker *string            `json:"speaker"`
	Source  *string            `json:"source"`
	Genre   *string            `json:"genre"`
	Tags    []string           `json:"tags"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Speaker,
			validation.When(r.Speaker != nil, validation.Length(0, 256)),
		),
	)
}

// CreatedResponse carries the server-assigned id back to the caller.
type CreatedResponse struct {
	CommentaryID string `json:"commentary_id"`
}

package export

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Request là request body cho build/export endpoints.
type Request struct {
	WorkID string `json:"work_id"`
}

func (r Request) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.WorkID,
			validation.Required.Error("work_id is required"),
		),
	)
}

// Response carries the artifact path written by the operation.
type Response struct {
	Output string `json:"output"`
}

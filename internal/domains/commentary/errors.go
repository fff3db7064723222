package commentary

import "errors"

// ========================================
// Repository-level errors
// ========================================

var (
	ErrCommentaryNotFound = errors.New("commentary not found")
)

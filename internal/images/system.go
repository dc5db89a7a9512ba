package images

import (
	"context"

	"github.com/google/uuid"
)

// System defines the image repository operations. Every error returned is
// classified; use KindOf to distinguish not-found, conflict and unavailable.
type System interface {
	// List returns every record ordered by position ascending.
	// An empty table yields an empty, non-nil slice.
	List(ctx context.Context) ([]ImageRecord, error)

	// Find retrieves a record by its ID.
	Find(ctx context.Context, id uuid.UUID) (*ImageRecord, error)

	// Create inserts a record and returns it with its assigned ID and CreatedAt.
	Create(ctx context.Context, in NewImageInput) (*ImageRecord, error)

	// Update applies the non-nil fields of in to the record and returns the result.
	// Returns ErrNotFound when no record has the ID.
	Update(ctx context.Context, id uuid.UUID, in UpdateImageInput) (*ImageRecord, error)

	// Delete removes the record. Deleting an unknown ID succeeds.
	// The record's file is not touched.
	Delete(ctx context.Context, id uuid.UUID) error

	// UploadFile stores data under a new timestamped key derived from fileName
	// and returns its public URL. Existing keys are never overwritten.
	UploadFile(ctx context.Context, data []byte, fileName, mimeType string) (string, error)

	// DeleteFile removes the file whose key is the last path segment of publicURL.
	// Returns ErrInvalidURL without contacting storage when there is no segment.
	DeleteFile(ctx context.Context, publicURL string) error

	// RemoveFile removes the file stored under key. Unknown keys succeed.
	RemoveFile(ctx context.Context, key string) error
}

package images

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// Gallery is the fail-soft face of a System. Every failure, including a
// panic inside the operation, is logged and replaced by a default result:
// an empty list, a nil record, false, or an empty URL.
type Gallery struct {
	sys    System
	logger *slog.Logger
}

// NewGallery wraps sys.
func NewGallery(sys System, logger *slog.Logger) *Gallery {
	return &Gallery{
		sys:    sys,
		logger: logger.With("system", "gallery"),
	}
}

// List returns every record ordered by position, or an empty slice on failure.
func (g *Gallery) List(ctx context.Context) (imgs []ImageRecord) {
	defer g.recover("list", func() { imgs = []ImageRecord{} })

	imgs, err := g.sys.List(ctx)
	if err != nil {
		g.fail("list", err)
		return []ImageRecord{}
	}
	return imgs
}

// Create inserts a record and returns it, or nil on failure.
func (g *Gallery) Create(ctx context.Context, in NewImageInput) (img *ImageRecord) {
	defer g.recover("create", func() { img = nil })

	img, err := g.sys.Create(ctx, in)
	if err != nil {
		g.fail("create", err)
		return nil
	}
	return img
}

// Update applies in to the record and returns the result.
// Returns nil on failure or when no record has the ID.
func (g *Gallery) Update(ctx context.Context, id uuid.UUID, in UpdateImageInput) (img *ImageRecord) {
	defer g.recover("update", func() { img = nil })

	img, err := g.sys.Update(ctx, id, in)
	if err != nil {
		g.fail("update", err, "id", id)
		return nil
	}
	return img
}

// Delete removes the record. It returns true when the record is gone,
// including when it never existed.
func (g *Gallery) Delete(ctx context.Context, id uuid.UUID) (ok bool) {
	defer g.recover("delete", func() { ok = false })

	if err := g.sys.Delete(ctx, id); err != nil {
		g.fail("delete", err, "id", id)
		return false
	}
	return true
}

// UploadFile stores data and returns its public URL, or "" on failure.
func (g *Gallery) UploadFile(ctx context.Context, data []byte, fileName, mimeType string) (url string) {
	defer g.recover("upload_file", func() { url = "" })

	url, err := g.sys.UploadFile(ctx, data, fileName, mimeType)
	if err != nil {
		g.fail("upload_file", err, "file_name", fileName)
		return ""
	}
	return url
}

// DeleteFile removes the file behind publicURL and reports success.
func (g *Gallery) DeleteFile(ctx context.Context, publicURL string) (ok bool) {
	defer g.recover("delete_file", func() { ok = false })

	if err := g.sys.DeleteFile(ctx, publicURL); err != nil {
		g.fail("delete_file", err, "url", publicURL)
		return false
	}
	return true
}

func (g *Gallery) fail(op string, err error, attrs ...any) {
	args := append([]any{"op", op, "kind", KindOf(err).String(), "error", err}, attrs...)
	g.logger.Error("gallery operation failed", args...)
}

func (g *Gallery) recover(op string, fallback func()) {
	if r := recover(); r != nil {
		g.logger.Error("gallery operation panicked", "op", op, "panic", r)
		fallback()
	}
}

package images_test

import (
	"context"
	"errors"
	"testing"

	"github.com/JaimeStill/gallery/internal/images"
	"github.com/google/uuid"
)

var errBackend = errors.New("backend rejected request")

func TestGallery_ReturnsValues(t *testing.T) {
	id := uuid.New()
	rec := &images.ImageRecord{ID: id, Title: "dawn", Position: 1}

	sys := &fakeSystem{
		list: func(ctx context.Context) ([]images.ImageRecord, error) {
			return []images.ImageRecord{*rec}, nil
		},
		create: func(ctx context.Context, in images.NewImageInput) (*images.ImageRecord, error) {
			return rec, nil
		},
		update: func(ctx context.Context, got uuid.UUID, in images.UpdateImageInput) (*images.ImageRecord, error) {
			return rec, nil
		},
		delete: func(ctx context.Context, got uuid.UUID) error {
			return nil
		},
		uploadFile: func(ctx context.Context, data []byte, fileName, mimeType string) (string, error) {
			return "https://x.co/files/1-cat.png", nil
		},
		deleteFile: func(ctx context.Context, publicURL string) error {
			return nil
		},
	}

	g := images.NewGallery(sys, testLogger())
	ctx := context.Background()

	if got := g.List(ctx); len(got) != 1 || got[0].ID != id {
		t.Errorf("List() = %v, want [%s]", got, id)
	}
	if got := g.Create(ctx, images.NewImageInput{Title: "dawn"}); got != rec {
		t.Errorf("Create() = %v, want %v", got, rec)
	}
	if got := g.Update(ctx, id, images.UpdateImageInput{}); got != rec {
		t.Errorf("Update() = %v, want %v", got, rec)
	}
	if !g.Delete(ctx, id) {
		t.Error("Delete() = false, want true")
	}
	if got := g.UploadFile(ctx, []byte("x"), "cat.png", "image/png"); got != "https://x.co/files/1-cat.png" {
		t.Errorf("UploadFile() = %q, want %q", got, "https://x.co/files/1-cat.png")
	}
	if !g.DeleteFile(ctx, "https://x.co/files/1-cat.png") {
		t.Error("DeleteFile() = false, want true")
	}
}

func TestGallery_FailuresReturnDefaults(t *testing.T) {
	sys := &fakeSystem{
		list: func(ctx context.Context) ([]images.ImageRecord, error) {
			return nil, errBackend
		},
		create: func(ctx context.Context, in images.NewImageInput) (*images.ImageRecord, error) {
			return nil, errBackend
		},
		update: func(ctx context.Context, id uuid.UUID, in images.UpdateImageInput) (*images.ImageRecord, error) {
			return nil, images.ErrNotFound
		},
		delete: func(ctx context.Context, id uuid.UUID) error {
			return images.ErrUnavailable
		},
		uploadFile: func(ctx context.Context, data []byte, fileName, mimeType string) (string, error) {
			return "", images.ErrConflict
		},
		deleteFile: func(ctx context.Context, publicURL string) error {
			return images.ErrInvalidURL
		},
	}

	g := images.NewGallery(sys, testLogger())
	ctx := context.Background()

	list := g.List(ctx)
	if list == nil || len(list) != 0 {
		t.Errorf("List() = %#v, want empty non-nil slice", list)
	}
	if got := g.Create(ctx, images.NewImageInput{}); got != nil {
		t.Errorf("Create() = %v, want nil", got)
	}
	if got := g.Update(ctx, uuid.New(), images.UpdateImageInput{}); got != nil {
		t.Errorf("Update() = %v, want nil", got)
	}
	if g.Delete(ctx, uuid.New()) {
		t.Error("Delete() = true, want false")
	}
	if got := g.UploadFile(ctx, nil, "cat.png", "image/png"); got != "" {
		t.Errorf("UploadFile() = %q, want empty", got)
	}
	if g.DeleteFile(ctx, "") {
		t.Error("DeleteFile() = true, want false")
	}
}

func TestGallery_RecoversPanics(t *testing.T) {
	boom := func() { panic("driver exploded") }

	sys := &fakeSystem{
		list: func(ctx context.Context) ([]images.ImageRecord, error) {
			boom()
			return nil, nil
		},
		create: func(ctx context.Context, in images.NewImageInput) (*images.ImageRecord, error) {
			boom()
			return nil, nil
		},
		update: func(ctx context.Context, id uuid.UUID, in images.UpdateImageInput) (*images.ImageRecord, error) {
			boom()
			return nil, nil
		},
		delete: func(ctx context.Context, id uuid.UUID) error {
			boom()
			return nil
		},
		uploadFile: func(ctx context.Context, data []byte, fileName, mimeType string) (string, error) {
			boom()
			return "", nil
		},
		deleteFile: func(ctx context.Context, publicURL string) error {
			boom()
			return nil
		},
	}

	g := images.NewGallery(sys, testLogger())
	ctx := context.Background()

	if list := g.List(ctx); list == nil || len(list) != 0 {
		t.Errorf("List() = %#v, want empty non-nil slice", list)
	}
	if g.Create(ctx, images.NewImageInput{}) != nil {
		t.Error("Create() != nil after panic")
	}
	if g.Update(ctx, uuid.New(), images.UpdateImageInput{}) != nil {
		t.Error("Update() != nil after panic")
	}
	if g.Delete(ctx, uuid.New()) {
		t.Error("Delete() = true after panic")
	}
	if g.UploadFile(ctx, nil, "cat.png", "image/png") != "" {
		t.Error("UploadFile() != \"\" after panic")
	}
	if g.DeleteFile(ctx, "https://x.co/files/1-cat.png") {
		t.Error("DeleteFile() = true after panic")
	}
}

func TestGallery_DeleteFileWithoutKeySkipsStorage(t *testing.T) {
	store := &recordingStorage{}
	g := images.NewGallery(images.New(nil, store, nil, "max-age=3600", testLogger()), testLogger())

	if g.DeleteFile(context.Background(), "") {
		t.Error("DeleteFile(\"\") = true, want false")
	}
	if store.calls() != 0 {
		t.Errorf("storage calls = %d, want 0", store.calls())
	}
}

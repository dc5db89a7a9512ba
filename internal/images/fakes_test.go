package images_test

import (
	"context"
	"log/slog"
	"os"
	"sync"

	"github.com/JaimeStill/gallery/internal/images"
	"github.com/JaimeStill/gallery/internal/lifecycle"
	"github.com/JaimeStill/gallery/internal/storage"
	"github.com/google/uuid"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// fakeSystem is an images.System whose behavior is set per test.
type fakeSystem struct {
	list       func(ctx context.Context) ([]images.ImageRecord, error)
	find       func(ctx context.Context, id uuid.UUID) (*images.ImageRecord, error)
	create     func(ctx context.Context, in images.NewImageInput) (*images.ImageRecord, error)
	update     func(ctx context.Context, id uuid.UUID, in images.UpdateImageInput) (*images.ImageRecord, error)
	delete     func(ctx context.Context, id uuid.UUID) error
	uploadFile func(ctx context.Context, data []byte, fileName, mimeType string) (string, error)
	deleteFile func(ctx context.Context, publicURL string) error
	removeFile func(ctx context.Context, key string) error
}

func (f *fakeSystem) List(ctx context.Context) ([]images.ImageRecord, error) {
	return f.list(ctx)
}

func (f *fakeSystem) Find(ctx context.Context, id uuid.UUID) (*images.ImageRecord, error) {
	return f.find(ctx, id)
}

func (f *fakeSystem) Create(ctx context.Context, in images.NewImageInput) (*images.ImageRecord, error) {
	return f.create(ctx, in)
}

func (f *fakeSystem) Update(ctx context.Context, id uuid.UUID, in images.UpdateImageInput) (*images.ImageRecord, error) {
	return f.update(ctx, id, in)
}

func (f *fakeSystem) Delete(ctx context.Context, id uuid.UUID) error {
	return f.delete(ctx, id)
}

func (f *fakeSystem) UploadFile(ctx context.Context, data []byte, fileName, mimeType string) (string, error) {
	return f.uploadFile(ctx, data, fileName, mimeType)
}

func (f *fakeSystem) DeleteFile(ctx context.Context, publicURL string) error {
	return f.deleteFile(ctx, publicURL)
}

func (f *fakeSystem) RemoveFile(ctx context.Context, key string) error {
	return f.removeFile(ctx, key)
}

type upload struct {
	key  string
	data []byte
	opts storage.UploadOptions
}

// recordingStorage is a storage.System that records calls and returns
// configured errors.
type recordingStorage struct {
	mu        sync.Mutex
	uploads   []upload
	removed   []string
	uploadErr error
	removeErr error
}

func (s *recordingStorage) Upload(ctx context.Context, key string, data []byte, opts storage.UploadOptions) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.uploadErr != nil {
		return s.uploadErr
	}
	s.uploads = append(s.uploads, upload{key: key, data: data, opts: opts})
	return nil
}

func (s *recordingStorage) PublicURL(key string) string {
	return "https://project.example.co/storage/v1/object/public/gallery-images/" + key
}

func (s *recordingStorage) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.removeErr != nil {
		return s.removeErr
	}
	s.removed = append(s.removed, key)
	return nil
}

func (s *recordingStorage) Start(lc *lifecycle.Coordinator) error {
	return nil
}

func (s *recordingStorage) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.uploads) + len(s.removed)
}

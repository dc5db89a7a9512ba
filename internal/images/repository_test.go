package images_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/JaimeStill/gallery/internal/config"
	"github.com/JaimeStill/gallery/internal/images"
	"github.com/JaimeStill/gallery/internal/storage"
)

const publicBase = "https://project.example.co/storage/v1/object/public/gallery-images/"

func TestRepository_UploadFile(t *testing.T) {
	store := &recordingStorage{}
	keys := images.NewKeyGenerator(fixedClock(1700000000000))
	sys := images.New(nil, store, keys, "max-age=3600", testLogger())

	url, err := sys.UploadFile(context.Background(), []byte("png"), "a b@c.png", "image/png")
	if err != nil {
		t.Fatalf("UploadFile() failed: %v", err)
	}

	if url != publicBase+"1700000000000-a_b_c.png" {
		t.Errorf("UploadFile() = %q, want %q", url, publicBase+"1700000000000-a_b_c.png")
	}

	if len(store.uploads) != 1 {
		t.Fatalf("uploads = %d, want 1", len(store.uploads))
	}
	got := store.uploads[0]
	if got.key != "1700000000000-a_b_c.png" {
		t.Errorf("key = %q, want %q", got.key, "1700000000000-a_b_c.png")
	}
	if got.opts.ContentType != "image/png" {
		t.Errorf("ContentType = %q, want %q", got.opts.ContentType, "image/png")
	}
	if got.opts.CacheControl != "max-age=3600" {
		t.Errorf("CacheControl = %q, want %q", got.opts.CacheControl, "max-age=3600")
	}
}

func TestRepository_UploadFile_SameNameTwice(t *testing.T) {
	store := &recordingStorage{}
	keys := images.NewKeyGenerator(fixedClock(1700000000000))
	sys := images.New(nil, store, keys, "max-age=3600", testLogger())
	ctx := context.Background()

	first, err := sys.UploadFile(ctx, []byte("1"), "cat.png", "image/png")
	if err != nil {
		t.Fatalf("first UploadFile() failed: %v", err)
	}
	second, err := sys.UploadFile(ctx, []byte("2"), "cat.png", "image/png")
	if err != nil {
		t.Fatalf("second UploadFile() failed: %v", err)
	}

	if first == second {
		t.Errorf("UploadFile() returned %q twice", first)
	}
	if store.uploads[0].key == store.uploads[1].key {
		t.Errorf("both uploads used key %q", store.uploads[0].key)
	}
}

func TestRepository_DeleteFile(t *testing.T) {
	store := &recordingStorage{}
	sys := images.New(nil, store, nil, "max-age=3600", testLogger())

	if err := sys.DeleteFile(context.Background(), publicBase+"1700000000000-cat.png"); err != nil {
		t.Fatalf("DeleteFile() failed: %v", err)
	}

	if len(store.removed) != 1 || store.removed[0] != "1700000000000-cat.png" {
		t.Errorf("removed = %v, want [1700000000000-cat.png]", store.removed)
	}
}

func TestRepository_DeleteFile_NoKey(t *testing.T) {
	for _, url := range []string{"", "https://project.example.co/files/"} {
		t.Run(url, func(t *testing.T) {
			store := &recordingStorage{}
			sys := images.New(nil, store, nil, "max-age=3600", testLogger())

			err := sys.DeleteFile(context.Background(), url)
			if !errors.Is(err, images.ErrInvalidURL) {
				t.Errorf("DeleteFile(%q) error = %v, want %v", url, err, images.ErrInvalidURL)
			}
			if store.calls() != 0 {
				t.Errorf("storage calls = %d, want 0", store.calls())
			}
		})
	}
}

func TestRepository_RemoveFile(t *testing.T) {
	store := &recordingStorage{}
	sys := images.New(nil, store, nil, "max-age=3600", testLogger())

	if err := sys.RemoveFile(context.Background(), "1700000000000-cat.png"); err != nil {
		t.Fatalf("RemoveFile() failed: %v", err)
	}
	if len(store.removed) != 1 || store.removed[0] != "1700000000000-cat.png" {
		t.Errorf("removed = %v, want [1700000000000-cat.png]", store.removed)
	}
}

// Upload and delete round trip against real filesystem storage.
func TestRepository_FilesystemRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewFilesystem(&config.StorageConfig{
		BasePath:  dir,
		PublicURL: "http://localhost:8080/files",
	}, testLogger())
	if err != nil {
		t.Fatalf("NewFilesystem() failed: %v", err)
	}

	sys := images.New(nil, store, images.NewKeyGenerator(nil), "max-age=3600", testLogger())
	g := images.NewGallery(sys, testLogger())
	ctx := context.Background()

	url := g.UploadFile(ctx, []byte("png"), "my photo.png", "image/png")
	if !strings.HasPrefix(url, "http://localhost:8080/files/") || !strings.HasSuffix(url, "-my_photo.png") {
		t.Fatalf("UploadFile() = %q, want http://localhost:8080/files/<millis>-my_photo.png", url)
	}

	key := images.KeyFromURL(url)
	if _, err := os.Stat(filepath.Join(dir, key)); err != nil {
		t.Fatalf("uploaded file missing: %v", err)
	}

	if !g.DeleteFile(ctx, url) {
		t.Fatal("DeleteFile() = false, want true")
	}
	if _, err := os.Stat(filepath.Join(dir, key)); !os.IsNotExist(err) {
		t.Errorf("file still present after DeleteFile(): %v", err)
	}

	if !g.DeleteFile(ctx, url) {
		t.Error("DeleteFile() of already removed file = false, want true")
	}
}

func TestRepository_DeleteFile_KeepsStorageRoot(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewFilesystem(&config.StorageConfig{
		BasePath:  dir,
		PublicURL: "http://localhost:8080/files",
	}, testLogger())
	if err != nil {
		t.Fatalf("NewFilesystem() failed: %v", err)
	}

	sys := images.New(nil, store, images.NewKeyGenerator(nil), "max-age=3600", testLogger())
	g := images.NewGallery(sys, testLogger())
	ctx := context.Background()

	for _, url := range []string{"http://localhost:8080/files/.", "http://localhost:8080/files/.."} {
		if g.DeleteFile(ctx, url) {
			t.Errorf("DeleteFile(%q) = true, want false", url)
		}
	}

	for _, key := range []string{"sub/..", "a/b.png"} {
		if err := sys.RemoveFile(ctx, key); !errors.Is(err, storage.ErrInvalidKey) {
			t.Errorf("RemoveFile(%q) error = %v, want %v", key, err, storage.ErrInvalidKey)
		}
	}

	if _, err := os.Stat(dir); err != nil {
		t.Errorf("storage root removed: %v", err)
	}
}

// A collision with a file stored by another writer is rejected, not overwritten.
func TestRepository_UploadFile_ExistingKeyRejected(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewFilesystem(&config.StorageConfig{
		BasePath:  dir,
		PublicURL: "http://localhost:8080/files",
	}, testLogger())
	if err != nil {
		t.Fatalf("NewFilesystem() failed: %v", err)
	}

	now := time.UnixMilli(1700000000000)
	if err := os.WriteFile(filepath.Join(dir, "1700000000000-cat.png"), []byte("other"), 0644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	sys := images.New(nil, store, images.NewKeyGenerator(func() time.Time { return now }), "", testLogger())

	_, err = sys.UploadFile(context.Background(), []byte("mine"), "cat.png", "image/png")
	if images.KindOf(err) != images.KindConflict {
		t.Fatalf("UploadFile() error = %v, want conflict", err)
	}

	data, _ := os.ReadFile(filepath.Join(dir, "1700000000000-cat.png"))
	if string(data) != "other" {
		t.Errorf("existing file = %q, want %q", data, "other")
	}
}

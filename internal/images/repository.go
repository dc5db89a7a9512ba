package images

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/gallery/internal/storage"
	"github.com/JaimeStill/gallery/pkg/query"
	"github.com/JaimeStill/gallery/pkg/repository"
	"github.com/google/uuid"
)

type repo struct {
	db           *sql.DB
	storage      storage.System
	keys         *KeyGenerator
	cacheControl string
	logger       *slog.Logger
}

// New creates an image repository over the images table and blob storage.
// Uploaded files are stored with the given Cache-Control value. A nil keys
// generator uses the system clock.
func New(db *sql.DB, storage storage.System, keys *KeyGenerator, cacheControl string, logger *slog.Logger) System {
	if keys == nil {
		keys = NewKeyGenerator(nil)
	}
	return &repo{
		db:           db,
		storage:      storage,
		keys:         keys,
		cacheControl: cacheControl,
		logger:       logger.With("system", "images"),
	}
}

func (r *repo) List(ctx context.Context) ([]ImageRecord, error) {
	q, args := query.NewBuilder(projection, displayOrder...).Build()

	imgs, err := repository.QueryMany(ctx, r.db, q, args, scanImage)
	if err != nil {
		return nil, classify(fmt.Errorf("query images: %w", err))
	}
	return imgs, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*ImageRecord, error) {
	q, args := query.NewBuilder(projection).BuildSingle("ID", id)

	img, err := repository.QueryOne(ctx, r.db, q, args, scanImage)
	if err != nil {
		return nil, classify(fmt.Errorf("find image %s: %w", id, err))
	}
	return &img, nil
}

func (r *repo) Create(ctx context.Context, in NewImageInput) (*ImageRecord, error) {
	q, args := query.NewBuilder(projection).BuildInsert(in.assignments()...)

	img, err := repository.QueryOne(ctx, r.db, q, args, scanImage)
	if err != nil {
		return nil, classify(fmt.Errorf("insert image: %w", err))
	}

	r.logger.Info("image created", "id", img.ID, "position", img.Position)
	return &img, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, in UpdateImageInput) (*ImageRecord, error) {
	if in.IsEmpty() {
		return r.Find(ctx, id)
	}

	q, args := query.
		NewBuilder(projection).
		WhereEquals("ID", id).
		BuildUpdate(in.assignments()...)

	img, err := repository.QueryOne(ctx, r.db, q, args, scanImage)
	if err != nil {
		return nil, classify(fmt.Errorf("update image %s: %w", id, err))
	}

	r.logger.Info("image updated", "id", img.ID)
	return &img, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	q, args := query.
		NewBuilder(projection).
		WhereEquals("ID", id).
		BuildDelete()

	n, err := repository.ExecRows(ctx, r.db, q, args...)
	if err != nil {
		return classify(fmt.Errorf("delete image %s: %w", id, err))
	}

	if n == 0 {
		r.logger.Debug("image already absent", "id", id)
		return nil
	}

	r.logger.Info("image deleted", "id", id)
	return nil
}

func (r *repo) UploadFile(ctx context.Context, data []byte, fileName, mimeType string) (string, error) {
	key := r.keys.Next(fileName)

	opts := storage.UploadOptions{
		ContentType:  mimeType,
		CacheControl: r.cacheControl,
	}

	if err := r.storage.Upload(ctx, key, data, opts); err != nil {
		return "", classify(fmt.Errorf("upload %s: %w", key, err))
	}

	url := r.storage.PublicURL(key)
	r.logger.Info("file uploaded", "key", key, "size", len(data), "content_type", mimeType)
	return url, nil
}

func (r *repo) DeleteFile(ctx context.Context, publicURL string) error {
	key := KeyFromURL(publicURL)
	if key == "" {
		return fmt.Errorf("%w: %q", ErrInvalidURL, publicURL)
	}
	return r.RemoveFile(ctx, key)
}

func (r *repo) RemoveFile(ctx context.Context, key string) error {
	if err := r.storage.Remove(ctx, key); err != nil {
		return classify(fmt.Errorf("remove %s: %w", key, err))
	}

	r.logger.Info("file removed", "key", key)
	return nil
}

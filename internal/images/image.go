package images

import (
	"time"

	"github.com/JaimeStill/gallery/pkg/query"
	"github.com/google/uuid"
)

// ImageRecord is one row of the images table.
// ID and CreatedAt are assigned by the database and never change.
type ImageRecord struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewImageInput is the payload for creating a record.
type NewImageInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Position    int    `json:"position"`
}

func (in NewImageInput) assignments() []query.Assignment {
	return []query.Assignment{
		{Field: "Title", Value: in.Title},
		{Field: "Description", Value: in.Description},
		{Field: "ImageURL", Value: in.ImageURL},
		{Field: "Position", Value: in.Position},
	}
}

// UpdateImageInput is a partial update. Nil fields are left unchanged.
type UpdateImageInput struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	Position    *int    `json:"position,omitempty"`
}

// IsEmpty reports whether the update sets no fields.
func (in UpdateImageInput) IsEmpty() bool {
	return in.Title == nil && in.Description == nil && in.ImageURL == nil && in.Position == nil
}

func (in UpdateImageInput) assignments() []query.Assignment {
	var a []query.Assignment
	if in.Title != nil {
		a = append(a, query.Assignment{Field: "Title", Value: *in.Title})
	}
	if in.Description != nil {
		a = append(a, query.Assignment{Field: "Description", Value: *in.Description})
	}
	if in.ImageURL != nil {
		a = append(a, query.Assignment{Field: "ImageURL", Value: *in.ImageURL})
	}
	if in.Position != nil {
		a = append(a, query.Assignment{Field: "Position", Value: *in.Position})
	}
	return a
}

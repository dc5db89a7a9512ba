package images

import (
	"github.com/JaimeStill/gallery/pkg/query"
	"github.com/JaimeStill/gallery/pkg/repository"
)

// projection maps database columns to ImageRecord fields for query building.
var projection = query.NewProjectionMap("public", "images", "i").
	Project("id", "ID").
	Project("title", "Title").
	Project("description", "Description").
	Project("image_url", "ImageURL").
	Project("position", "Position").
	Project("created_at", "CreatedAt")

// displayOrder sorts by position; created_at and id make the order total
// when positions repeat.
var displayOrder = []query.SortField{
	{Field: "Position"},
	{Field: "CreatedAt"},
	{Field: "ID"},
}

// scanImage reads an ImageRecord from a database row.
func scanImage(s repository.Scanner) (ImageRecord, error) {
	var img ImageRecord
	err := s.Scan(
		&img.ID,
		&img.Title,
		&img.Description,
		&img.ImageURL,
		&img.Position,
		&img.CreatedAt,
	)
	return img, err
}

package images

import "github.com/JaimeStill/gallery/pkg/openapi"

type spec struct {
	List       *openapi.Operation
	Find       *openapi.Operation
	Create     *openapi.Operation
	Update     *openapi.Operation
	Delete     *openapi.Operation
	UploadFile *openapi.Operation
	DeleteFile *openapi.Operation
}

// Spec holds the OpenAPI operations for the image endpoints.
var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List images",
		Description: "Returns every image record ordered by position",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSONArray("Image records", "ImageRecord"),
			503: openapi.ResponseRef("Unavailable"),
		},
	},
	Find: &openapi.Operation{
		Summary: "Get image by ID",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Image UUID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Image record", "ImageRecord"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Create: &openapi.Operation{
		Summary:     "Create image",
		Description: "Inserts a record; id and created_at are assigned by the database",
		RequestBody: openapi.RequestBodyJSON("NewImageInput", true),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Image created", "ImageRecord"),
			400: openapi.ResponseRef("BadRequest"),
			409: openapi.ResponseRef("Conflict"),
		},
	},
	Update: &openapi.Operation{
		Summary:     "Update image",
		Description: "Changes only the fields present in the body",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Image UUID"),
		},
		RequestBody: openapi.RequestBodyJSON("UpdateImageInput", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Image updated", "ImageRecord"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Delete: &openapi.Operation{
		Summary:     "Delete image",
		Description: "Removes the record. Unknown ids succeed. The stored file is left in place",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Image UUID"),
		},
		Responses: map[int]*openapi.Response{
			204: {Description: "Image deleted"},
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	UploadFile: &openapi.Operation{
		Summary:     "Upload file",
		Description: "Stores a file under a timestamped key and returns its public URL",
		RequestBody: openapi.RequestBodyMultipart("file", "File contents"),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("File stored", "UploadResult"),
			400: openapi.ResponseRef("BadRequest"),
			409: openapi.ResponseRef("Conflict"),
			413: openapi.ResponseRef("PayloadTooLarge"),
		},
	},
	DeleteFile: &openapi.Operation{
		Summary:     "Delete file",
		Description: "Removes a stored file addressed by public URL or storage key. Missing files succeed",
		Parameters: []*openapi.Parameter{
			openapi.QueryParam("url", "string", "Public URL returned by upload", false),
			openapi.QueryParam("key", "string", "Storage key returned by upload", false),
		},
		Responses: map[int]*openapi.Response{
			204: {Description: "File deleted"},
			400: openapi.ResponseRef("BadRequest"),
		},
	},
}

// Schemas returns the component schemas referenced by Spec.
func Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"ImageRecord": {
			Type: "object",
			Properties: map[string]*openapi.Property{
				"id":          {Type: "string", Format: "uuid", ReadOnly: true},
				"title":       {Type: "string"},
				"description": {Type: "string"},
				"image_url":   {Type: "string", Format: "uri"},
				"position":    {Type: "integer", Description: "Display order, ascending"},
				"created_at":  {Type: "string", Format: "date-time", ReadOnly: true},
			},
			Required: []string{"id", "title", "description", "image_url", "position", "created_at"},
		},
		"NewImageInput": {
			Type: "object",
			Properties: map[string]*openapi.Property{
				"title":       {Type: "string"},
				"description": {Type: "string"},
				"image_url":   {Type: "string", Format: "uri"},
				"position":    {Type: "integer"},
			},
			Required: []string{"title", "description", "image_url", "position"},
		},
		"UpdateImageInput": {
			Type:        "object",
			Description: "Omitted fields are left unchanged",
			Properties: map[string]*openapi.Property{
				"title":       {Type: "string"},
				"description": {Type: "string"},
				"image_url":   {Type: "string", Format: "uri"},
				"position":    {Type: "integer"},
			},
		},
		"UploadResult": {
			Type: "object",
			Properties: map[string]*openapi.Property{
				"url": {Type: "string", Format: "uri", Description: "Public URL of the stored file"},
				"key": {Type: "string", Description: "Storage key"},
			},
			Required: []string{"url", "key"},
		},
	}
}

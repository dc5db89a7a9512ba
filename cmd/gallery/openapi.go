package main

import (
	"github.com/JaimeStill/gallery/internal/config"
	"github.com/JaimeStill/gallery/internal/images"
	"github.com/JaimeStill/gallery/pkg/openapi"
	"github.com/JaimeStill/gallery/pkg/routes"
)

// generateSpec builds the OpenAPI document for groups. Paths are relative to
// the server base path, which is published as the document's server URL.
func generateSpec(cfg *config.Config, groups ...routes.Group) *openapi.Spec {
	components := openapi.NewComponents()
	components.AddSchemas(images.Schemas())

	spec := &openapi.Spec{
		OpenAPI: "3.1.0",
		Info: &openapi.Info{
			Title:       cfg.API.Title,
			Version:     cfg.API.Version,
			Description: cfg.API.Description,
		},
		Servers:    []*openapi.Server{{URL: cfg.Server.BasePath}},
		Components: components,
		Paths:      make(map[string]*openapi.PathItem),
	}

	for _, group := range groups {
		processGroup(spec, "", group)
	}

	return spec
}

func processGroup(spec *openapi.Spec, prefix string, group routes.Group) {
	prefix += group.Prefix

	for _, route := range group.Routes {
		if route.OpenAPI == nil {
			continue
		}

		op := *route.OpenAPI
		if len(op.Tags) == 0 {
			op.Tags = group.Tags
		}

		path := prefix + route.Pattern
		if spec.Paths[path] == nil {
			spec.Paths[path] = &openapi.PathItem{}
		}
		spec.Paths[path].Set(route.Method, &op)
	}

	for _, child := range group.Children {
		processGroup(spec, prefix, child)
	}
}

// Package routes registers grouped HTTP routes on a standard library ServeMux
// using method-qualified patterns.
package routes

import (
	"net/http"

	"github.com/JaimeStill/gallery/pkg/openapi"
)

// Route binds an HTTP method and pattern to a handler.
// Pattern is relative to the enclosing group's prefix. Routes without an
// OpenAPI operation are left out of the generated document.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}

// Register mounts every route of every group on mux beneath basePath.
func Register(mux *http.ServeMux, basePath string, groups ...Group) {
	for _, group := range groups {
		registerGroup(mux, basePath, group)
	}
}

func registerGroup(mux *http.ServeMux, prefix string, group Group) {
	fullPrefix := prefix + group.Prefix

	for _, route := range group.Routes {
		pattern := route.Method + " " + fullPrefix + route.Pattern
		mux.HandleFunc(pattern, route.Handler)
	}

	for _, child := range group.Children {
		registerGroup(mux, fullPrefix, child)
	}
}

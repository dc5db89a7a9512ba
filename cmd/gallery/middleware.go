package main

import (
	"github.com/JaimeStill/gallery/internal/config"
	"github.com/JaimeStill/gallery/internal/infrastructure"
	"github.com/JaimeStill/gallery/internal/middleware"
	"github.com/JaimeStill/gallery/pkg/routes"
)

// buildMiddleware creates the middleware stack. CORS advertises the methods
// registered by groups unless methods are configured explicitly.
func buildMiddleware(infra *infrastructure.Infrastructure, cfg *config.Config, groups []routes.Group) middleware.System {
	cors := cfg.CORS.WithMethods(routes.Methods(groups...))

	middlewareSys := middleware.New()
	middlewareSys.Use(middleware.TrimSlash())
	middlewareSys.Use(middleware.Logger(infra.Logger))
	middlewareSys.Use(middleware.CORS(&cors))
	return middlewareSys
}

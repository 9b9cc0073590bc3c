package handler

import "github.com/gin-gonic/gin"

// Router groups every resource handler so they can be mounted together.
type Router struct {
	Movies  *MovieHandler
	Actors  *ActorHandler
	Genres  *GenreHandler
	Cinemas *CinemaHandler
	Health  *HealthHandler
}

// Mount registers the catalog under /api and the health check at the root.
func (rt Router) Mount(r gin.IRouter, g Guards) {
	api := r.Group("/api")
	rt.Movies.RegisterRoutes(api.Group("/movies"), g)
	rt.Actors.RegisterRoutes(api.Group("/actors"), g)
	rt.Genres.RegisterRoutes(api.Group("/genres"), g)
	rt.Cinemas.RegisterRoutes(api.Group("/cinemas"), g)

	if rt.Health != nil {
		r.GET("/check-conn", rt.Health.Check)
		api.GET("/check-conn", rt.Health.Check)
	}
}

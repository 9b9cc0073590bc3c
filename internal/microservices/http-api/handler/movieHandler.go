package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"moviehub/internal/microservices/http-api/dto"
	"moviehub/internal/microservices/http-api/service"
)

type MovieHandler struct {
	svc    service.MovieService
	actors service.ActorService
}

func NewMovieHandler(svc service.MovieService, actors service.ActorService) *MovieHandler {
	return &MovieHandler{svc: svc, actors: actors}
}

func (h *MovieHandler) RegisterRoutes(rg *gin.RouterGroup, g Guards) {
	rg.GET("", g.cached(h.Landing)...)
	rg.GET("/filter", g.cached(h.Filter)...)
	rg.GET("/search-by-name", h.SearchActors)
	rg.GET("/create-support-data", g.cached(h.CreateSupportData)...)
	rg.GET("/edit-support-data/:id", h.EditSupportData)
	rg.GET("/:id", h.Get)

	rg.POST("", g.write(h.Create)...)
	rg.PUT("/:id", g.write(h.Update)...)
	rg.DELETE("/:id", g.write(h.Delete)...)
}

// Landing handles GET /api/movies
func (h *MovieHandler) Landing(c *gin.Context) {
	upcoming, inTheaters, err := h.svc.Landing(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.LandingPageDTO{
		UpcomingReleases: dto.MoviesFromModels(upcoming),
		InTheaters:       dto.MoviesFromModels(inTheaters),
	})
}

// Filter handles GET /api/movies/filter
func (h *MovieHandler) Filter(c *gin.Context) {
	var f dto.MovieFilterDTO
	if err := c.ShouldBindQuery(&f); err != nil {
		respondError(c, bindError(err))
		return
	}

	list, total, err := h.svc.Filter(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	setTotalCount(c, total)
	c.JSON(http.StatusOK, dto.MoviesFromModels(list))
}

// SearchActors is the cast lookup used by the movie form.
func (h *MovieHandler) SearchActors(c *gin.Context) {
	list, err := h.actors.SearchByName(c.Request.Context(), searchName(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CastCandidatesFromModels(list))
}

func (h *MovieHandler) CreateSupportData(c *gin.Context) {
	genres, cinemas, err := h.svc.SupportData(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MovieSupportDataDTO{
		Genres:  dto.GenresFromModels(genres),
		Cinemas: dto.CinemasFromModels(cinemas),
	})
}

func (h *MovieHandler) EditSupportData(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	m, genres, cinemas, err := h.svc.EditData(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMovieEditData(*m, genres, cinemas))
}

func (h *MovieHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	m, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MovieFromModel(*m))
}

func (h *MovieHandler) Create(c *gin.Context) {
	var in dto.MovieCreationDTO
	if err := bindMovieForm(c, &in); err != nil {
		respondError(c, err)
		return
	}

	id, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	created(c, id)
}

func (h *MovieHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var in dto.MovieCreationDTO
	if err := bindMovieForm(c, &in); err != nil {
		respondError(c, err)
		return
	}

	if err := h.svc.Update(c.Request.Context(), id, in); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *MovieHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

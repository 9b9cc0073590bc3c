package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"moviehub/internal/microservices/http-api/dto"
	"moviehub/internal/microservices/http-api/service"
)

type GenreHandler struct {
	svc service.GenreService
}

func NewGenreHandler(svc service.GenreService) *GenreHandler {
	return &GenreHandler{svc: svc}
}

func (h *GenreHandler) RegisterRoutes(rg *gin.RouterGroup, g Guards) {
	rg.GET("", h.List)
	rg.GET("/all", g.cached(h.All)...)
	rg.GET("/:id", h.Get)

	rg.POST("", g.write(h.Create)...)
	rg.PUT("/:id", g.write(h.Update)...)
	rg.DELETE("/:id", g.write(h.Delete)...)
}

func (h *GenreHandler) List(c *gin.Context) {
	var p dto.PaginationDTO
	if err := c.ShouldBindQuery(&p); err != nil {
		respondError(c, bindError(err))
		return
	}

	list, total, err := h.svc.List(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}
	setTotalCount(c, total)
	c.JSON(http.StatusOK, dto.GenresFromModels(list))
}

// All handles GET /api/genres/all, the unpaginated list used by pickers.
func (h *GenreHandler) All(c *gin.Context) {
	list, err := h.svc.All(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.GenresFromModels(list))
}

func (h *GenreHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	g, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.GenreFromModel(*g))
}

func (h *GenreHandler) Create(c *gin.Context) {
	var in dto.GenreCreationDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, bindError(err))
		return
	}

	id, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	created(c, id)
}

func (h *GenreHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var in dto.GenreCreationDTO
	if err := c.ShouldBindJSON(&in); err != nil {
		respondError(c, bindError(err))
		return
	}

	if err := h.svc.Update(c.Request.Context(), id, in); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *GenreHandler) Delete(c *gin.Context) {
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

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"moviehub/internal/microservices/http-api/dto"
	"moviehub/internal/microservices/http-api/service"
)

type ActorHandler struct {
	svc service.ActorService
}

func NewActorHandler(svc service.ActorService) *ActorHandler {
	return &ActorHandler{svc: svc}
}

func (h *ActorHandler) RegisterRoutes(rg *gin.RouterGroup, g Guards) {
	rg.GET("", h.List)
	rg.GET("/search-by-name", h.SearchByName)
	rg.GET("/:id", h.Get)

	rg.POST("", g.write(h.Create)...)
	rg.PUT("/:id", g.write(h.Update)...)
	rg.DELETE("/:id", g.write(h.Delete)...)
}

func (h *ActorHandler) List(c *gin.Context) {
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
	c.JSON(http.StatusOK, dto.ActorsFromModels(list))
}

func (h *ActorHandler) SearchByName(c *gin.Context) {
	list, err := h.svc.SearchByName(c.Request.Context(), searchName(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CastCandidatesFromModels(list))
}

func (h *ActorHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	a, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ActorFromModel(*a))
}

func (h *ActorHandler) Create(c *gin.Context) {
	var in dto.ActorCreationDTO
	if err := c.ShouldBindWith(&in, binding.FormMultipart); err != nil {
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

func (h *ActorHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var in dto.ActorCreationDTO
	if err := c.ShouldBindWith(&in, binding.FormMultipart); err != nil {
		respondError(c, bindError(err))
		return
	}

	if err := h.svc.Update(c.Request.Context(), id, in); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ActorHandler) Delete(c *gin.Context) {
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

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"moviehub/internal/microservices/http-api/dto"
	"moviehub/internal/microservices/http-api/service"
)

type CinemaHandler struct {
	svc service.CinemaService
}

func NewCinemaHandler(svc service.CinemaService) *CinemaHandler {
	return &CinemaHandler{svc: svc}
}

func (h *CinemaHandler) RegisterRoutes(rg *gin.RouterGroup, g Guards) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)

	rg.POST("", g.write(h.Create)...)
	rg.PUT("/:id", g.write(h.Update)...)
	rg.DELETE("/:id", g.write(h.Delete)...)
}

func (h *CinemaHandler) List(c *gin.Context) {
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
	c.JSON(http.StatusOK, dto.CinemasFromModels(list))
}

func (h *CinemaHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	cinema, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CinemaFromModel(*cinema))
}

func (h *CinemaHandler) Create(c *gin.Context) {
	var in dto.CinemaCreationDTO
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

func (h *CinemaHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err)
		return
	}

	var in dto.CinemaCreationDTO
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

func (h *CinemaHandler) Delete(c *gin.Context) {
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

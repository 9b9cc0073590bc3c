package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"moviehub/internal/microservices/http-api/dto"
	"moviehub/internal/microservices/http-api/middleware"
	"moviehub/internal/microservices/http-api/service"
)

// Guards are the middleware chains put in front of routes by kind.
type Guards struct {
	// Write runs before every POST, PUT and DELETE (auth, rate limit, cache purge).
	Write []gin.HandlerFunc
	// Cached runs before GETs whose responses may be served from the cache.
	Cached []gin.HandlerFunc
}

func (g Guards) write(h gin.HandlerFunc) []gin.HandlerFunc {
	return chain(g.Write, h)
}

func (g Guards) cached(h gin.HandlerFunc) []gin.HandlerFunc {
	return chain(g.Cached, h)
}

func chain(pre []gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	out := make([]gin.HandlerFunc, 0, len(pre)+1)
	out = append(out, pre...)
	return append(out, h)
}

// parseID treats an id that cannot name a row like an unknown one.
func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, service.ErrNotFound
	}
	return id, nil
}

func setTotalCount(c *gin.Context, total int64) {
	c.Header(middleware.HeaderTotalCount, strconv.FormatInt(total, 10))
}

// created answers 201 with the new id and its Location.
func created(c *gin.Context, id int64) {
	c.Header("Location", strings.TrimRight(c.Request.URL.Path, "/")+"/"+strconv.FormatInt(id, 10))
	c.JSON(http.StatusCreated, dto.CreatedResponse{ID: id})
}

// decodeFormJSON reads a multipart value holding JSON, e.g. genreIds=[1,3].
// A missing or empty value leaves dst untouched.
func decodeFormJSON(c *gin.Context, field string, dst any) error {
	raw := strings.TrimSpace(c.PostForm(field))
	if raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return service.NewValidationError(field, "must be valid JSON")
	}
	return nil
}

// bindMovieForm binds the multipart movie form including its JSON-valued
// fields, then validates the whole thing.
func bindMovieForm(c *gin.Context, in *dto.MovieCreationDTO) error {
	if err := c.ShouldBindWith(in, binding.FormMultipart); err != nil {
		return bindError(err)
	}
	if err := decodeFormJSON(c, "genreIds", &in.GenreIDs); err != nil {
		return err
	}
	if err := decodeFormJSON(c, "cinemaIds", &in.CinemaIDs); err != nil {
		return err
	}
	if err := decodeFormJSON(c, "actors", &in.Actors); err != nil {
		return err
	}
	if err := binding.Validator.ValidateStruct(in); err != nil {
		return bindError(err)
	}
	return nil
}

// searchName accepts ?name=, a bare JSON string body or {"name": "..."}.
func searchName(c *gin.Context) string {
	if name := c.Query("name"); name != "" {
		return name
	}
	if c.Request.Body == nil {
		return ""
	}
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, 4<<10))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var name string
	if err := json.Unmarshal(raw, &name); err == nil {
		return name
	}
	var obj dto.SearchByNameDTO
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.Name
	}
	return ""
}

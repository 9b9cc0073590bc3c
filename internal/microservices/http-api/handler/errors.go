package handler

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"moviehub/internal/logging"
	"moviehub/internal/microservices/http-api/dto"
	"moviehub/internal/microservices/http-api/middleware"
	"moviehub/internal/microservices/http-api/service"
)

// respondError is the single place where service errors become HTTP
// responses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.AbortWithStatus(http.StatusNotFound)

	case errors.Is(err, service.ErrValidation):
		p := dto.NewProblem(http.StatusBadRequest, "one or more fields are invalid", c.Request.URL.Path)
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			p.Errors = fieldErrors(verr.Fields)
		}
		middleware.AbortWithProblem(c, p)

	default:
		logging.FromContext(c.Request.Context()).Error("request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err,
		)
		middleware.AbortWithProblem(c, dto.NewProblem(http.StatusInternalServerError, "internal server error", c.Request.URL.Path))
	}
}

// bindError turns a gin binding failure into a validation error.
func bindError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fieldPath(fe)] = fieldMessage(fe)
		}
		return &service.ValidationError{Fields: fields}
	}
	return service.NewValidationError("body", err.Error())
}

// fieldPath drops the struct name: "MovieCreationDTO.actors[0].id" -> "actors[0].id".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "firstupper":
		return "first letter must be uppercase"
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "unique":
		return "must not contain duplicates"
	default:
		return fmt.Sprintf("failed the %q rule", fe.Tag())
	}
}

func fieldErrors(fields map[string]string) []dto.FieldError {
	out := make([]dto.FieldError, 0, len(fields))
	for f, msg := range fields {
		out = append(out, dto.FieldError{Field: f, Message: msg})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}

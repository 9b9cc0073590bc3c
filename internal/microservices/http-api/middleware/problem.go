package middleware

import (
	"github.com/gin-gonic/gin"

	"moviehub/internal/microservices/http-api/dto"
)

// AbortWithProblem writes p as application/problem+json and stops the chain.
func AbortWithProblem(c *gin.Context, p dto.ProblemDetails) {
	c.Header("Content-Type", "application/problem+json")
	c.AbortWithStatusJSON(p.Status, p)
}

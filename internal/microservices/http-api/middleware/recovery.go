package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"moviehub/internal/logging"
	"moviehub/internal/microservices/http-api/dto"
)

// Recovery turns a panic into the generic 500 problem body. The panic value
// and stack are logged, never sent to the client.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if v := recover(); v != nil {
				logging.FromContext(c.Request.Context()).Error("panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", c.Request.Method),
					slog.String("path", c.Request.URL.Path),
				)
				if c.Writer.Written() {
					c.Abort()
					return
				}
				AbortWithProblem(c, dto.NewProblem(http.StatusInternalServerError, "internal server error", c.Request.URL.Path))
			}
		}()
		c.Next()
	}
}

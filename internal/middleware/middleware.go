package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID propagates an incoming X-Request-ID or mints one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		inicio := time.Now()
		c.Next()

		log.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(inicio).Milliseconds(),
			"request_id", c.GetString("request_id"),
		)
	}
}

// ErrorHandler converts panics into the 500 JSON envelope. The stack trace
// is withheld in production.
func ErrorHandler(env string) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		slog.Error("panic recuperado",
			"error", fmt.Sprint(recovered),
			"request_id", c.GetString("request_id"),
		)

		resp := gin.H{"error": "Erro interno do servidor"}
		if env != "production" {
			resp["message"] = fmt.Sprint(recovered)
			resp["stack"] = string(debug.Stack())
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
	})
}

package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tieubaoca/pdfchat/logger"
	"github.com/tieubaoca/pdfchat/types"
)

// RequestLogger logs one line per request with its status and latency.
func RequestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()

	status := c.Writer.Status()
	level := slog.LevelInfo
	switch {
	case status >= 500:
		level = slog.LevelError
	case status >= 400:
		level = slog.LevelWarn
	}

	attrs := []any{
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", status,
		"latency", time.Since(start),
		"client_ip", c.ClientIP(),
	}
	if len(c.Errors) > 0 {
		attrs = append(attrs, "errors", c.Errors.String())
	}
	logger.Logger.Log(c.Request.Context(), level, "http_request", attrs...)
}

// Recovery turns a panic in a handler into a 500 and logs it through slog.
// Broken pipes are handled by gin.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, handlePanic)
}

func handlePanic(c *gin.Context, r any) {
	logger.Error("http_panic", "path", c.Request.URL.Path, "panic", r)
	if c.Writer.Written() {
		// headers and part of the body are already out
		c.Abort()
		return
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, types.ErrorResponse{Detail: "Internal Server Error"})
}

package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const corsAllowedMethods = "DELETE, GET, HEAD, OPTIONS, PATCH, POST, PUT"

// CorsHandler allows cross-origin requests, with credentials, from a single origin.
type CorsHandler struct {
	allowedOrigin string
}

func NewCorsHandler(allowedOrigin string) *CorsHandler {
	return &CorsHandler{
		allowedOrigin: strings.TrimSuffix(allowedOrigin, "/"),
	}
}

func (h *CorsHandler) CorsMiddleware(c *gin.Context) {
	origin := c.GetHeader("Origin")
	preflight := c.Request.Method == http.MethodOptions && c.GetHeader("Access-Control-Request-Method") != ""

	if origin == "" {
		c.Next()
		return
	}

	c.Writer.Header().Add("Vary", "Origin")
	if origin != h.allowedOrigin {
		if preflight {
			c.AbortWithStatus(http.StatusBadRequest)
			return
		}
		c.Next()
		return
	}

	c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
	c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")

	if preflight {
		c.Writer.Header().Set("Access-Control-Allow-Methods", corsAllowedMethods)
		if requested := c.GetHeader("Access-Control-Request-Headers"); requested != "" {
			c.Writer.Header().Set("Access-Control-Allow-Headers", requested)
		}
		c.Writer.Header().Set("Access-Control-Max-Age", "600")
		c.AbortWithStatus(http.StatusOK)
		return
	}
	c.Next()
}

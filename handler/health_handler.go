package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tieubaoca/pdfchat/types"
)

func HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, types.HealthResponse{
		OK:   true,
		Time: time.Now().Format(time.RFC3339),
	})
}

package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/tieubaoca/pdfchat/middleware"
)

// SetupRouter wires the HTTP routes and global middleware.
func SetupRouter(cors *CorsHandler, upload *UploadHandler, chat *ChatHandler) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Recovery(), middleware.RequestLogger)
	router.Use(cors.CorsMiddleware)

	router.GET("/health", HandleHealth)

	api := router.Group("/api")
	api.POST("/scrape", upload.UploadDocumentHandler)
	api.POST("/chat", chat.HandleChat)

	return router
}

package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tieubaoca/pdfchat/logger"
	"github.com/tieubaoca/pdfchat/service"
	"github.com/tieubaoca/pdfchat/types"
)

const (
	msgInvalidMediaType = "Invalid file type. Only PDF files are allowed."
	msgNoDocument       = "No PDF content has been processed yet."
	msgPDFProcessed     = "PDF processed successfully!"
)

func sendError(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, types.ErrorResponse{Detail: detail})
}

// sendServiceError maps a service error to its HTTP status and detail text.
// The underlying cause is passed through to the client.
func sendServiceError(c *gin.Context, err error) {
	var (
		extractionErr *service.ExtractionError
		generationErr *service.GenerationError
	)

	switch {
	case errors.Is(err, service.ErrInvalidMediaType):
		sendError(c, http.StatusBadRequest, msgInvalidMediaType)
	case errors.Is(err, service.ErrNoDocument):
		sendError(c, http.StatusBadRequest, msgNoDocument)
	case errors.As(err, &extractionErr):
		logger.Error("pdf_extraction_failed", "error", extractionErr.Err)
		sendError(c, http.StatusInternalServerError, "Error processing PDF: "+extractionErr.Err.Error())
	case errors.As(err, &generationErr):
		logger.Error("generation_failed", "error", generationErr.Err)
		sendError(c, http.StatusInternalServerError, "Error generating response: "+generationErr.Err.Error())
	default:
		logger.Error("unexpected_error", "error", err)
		sendError(c, http.StatusInternalServerError, err.Error())
	}
}

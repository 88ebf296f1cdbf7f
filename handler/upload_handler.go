package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tieubaoca/pdfchat/service"
	"github.com/tieubaoca/pdfchat/types"
)

const uploadFormField = "file"

type UploadHandler struct {
	documentService *service.DocumentService
}

func NewUploadHandler(documentService *service.DocumentService) *UploadHandler {
	return &UploadHandler{
		documentService: documentService,
	}
}

// UploadDocumentHandler accepts a multipart PDF upload and replaces the
// current document with its text.
func (h *UploadHandler) UploadDocumentHandler(c *gin.Context) {
	header, err := c.FormFile(uploadFormField)
	if err != nil {
		sendError(c, http.StatusUnprocessableEntity, "Field 'file' is required: "+err.Error())
		return
	}

	file, err := header.Open()
	if err != nil {
		sendServiceError(c, &service.ExtractionError{Err: err})
		return
	}
	defer file.Close()

	if _, err := h.documentService.Ingest(header.Filename, header.Header.Get("Content-Type"), file); err != nil {
		sendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.MessageResponse{Message: msgPDFProcessed})
}

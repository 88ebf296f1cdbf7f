package service

import (
	"fmt"
	"io"
	"time"

	"github.com/tieubaoca/pdfchat/logger"
	"github.com/tieubaoca/pdfchat/repository"
	"github.com/tieubaoca/pdfchat/types"
)

type DocumentService struct {
	documents  repository.DocumentRepo
	pdfService *PDFService
}

func NewDocumentService(documents repository.DocumentRepo, pdfService *PDFService) *DocumentService {
	return &DocumentService{
		documents:  documents,
		pdfService: pdfService,
	}
}

// Ingest extracts the text of an uploaded PDF and makes it the current
// document. contentType is the media type the client declared for the file;
// anything but application/pdf is rejected before the body is read.
func (s *DocumentService) Ingest(filename, contentType string, file io.Reader) (*types.Document, error) {
	if contentType != types.MEDIA_TYPE_PDF {
		return nil, ErrInvalidMediaType
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, &ExtractionError{Err: fmt.Errorf("failed to read upload: %w", err)}
	}

	extracted, err := s.pdfService.ExtractText(data)
	if err != nil {
		return nil, &ExtractionError{Err: err}
	}

	doc := &types.Document{
		Text:       extracted.Text,
		Filename:   filename,
		Pages:      extracted.TotalPages,
		IngestedAt: time.Now(),
	}
	s.documents.SaveDocument(doc)

	logger.Info("document_ingested",
		"filename", filename,
		"pages", doc.Pages,
		"chars", len(doc.Text),
	)
	return doc, nil
}

package service

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/tieubaoca/pdfchat/logger"
)

// PDFService extracts plain text from PDF documents
type PDFService struct{}

// ExtractedText is the result of reading every page of a PDF
type ExtractedText struct {
	Text       string
	TotalPages int
}

func NewPDFService() *PDFService {
	return &PDFService{}
}

// ExtractText reads every page of an in-memory PDF and concatenates the page
// texts in order, without a separator.
// Parameters:
//   - data: Raw PDF bytes
//
// Returns:
//   - *ExtractedText: Text and page count
//   - error: Error if the document or any page cannot be decoded
func (s *PDFService) ExtractText(data []byte) (result *ExtractedText, err error) {
	// ledongthuc/pdf panics on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("malformed PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	totalPages := reader.NumPage()
	logger.Debug("pdf_opened", "pages", totalPages, "bytes", len(data))

	var text strings.Builder
	for pageNum := 1; pageNum <= totalPages; pageNum++ {
		pageText, err := s.extractPage(reader, pageNum)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text from page %d: %w", pageNum, err)
		}
		text.WriteString(pageText)
	}

	return &ExtractedText{
		Text:       text.String(),
		TotalPages: totalPages,
	}, nil
}

// ExtractFile reads a PDF from disk and extracts its text
func (s *PDFService) ExtractFile(filePath string) (*ExtractedText, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return s.ExtractText(data)
}

func (s *PDFService) extractPage(reader *pdf.Reader, pageNum int) (string, error) {
	page := reader.Page(pageNum)
	if page.V.IsNull() {
		logger.Warn("pdf_page_missing", "page", pageNum)
		return "", nil
	}
	return page.GetPlainText(nil)
}

// GetFileNameWithoutExt extracts filename without extension from a file path
func GetFileNameWithoutExt(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

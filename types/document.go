package types

import "time"

// Document is the text extracted from the most recently ingested PDF
type Document struct {
	Text       string    // Concatenated page text, in page order
	Filename   string    // Name the client uploaded the file with
	Pages      int       // Number of pages in the PDF
	IngestedAt time.Time // When extraction finished
}

// HasText reports whether the document holds any extracted text
func (d *Document) HasText() bool {
	return d != nil && d.Text != ""
}

package repository

import (
	"sync/atomic"

	"github.com/tieubaoca/pdfchat/types"
)

type DocumentRepo interface {
	// SaveDocument replaces the current document.
	SaveDocument(doc *types.Document)
	// GetDocument returns the current document, or nil if nothing was saved yet.
	GetDocument() *types.Document
}

// documentRepo holds a single document slot. Readers get a snapshot of the
// pointer; writers swap in a fully built value and never mutate a stored one.
type documentRepo struct {
	current atomic.Pointer[types.Document]
}

func NewDocumentRepo() DocumentRepo {
	return &documentRepo{}
}

func (r *documentRepo) SaveDocument(doc *types.Document) {
	if doc == nil {
		return
	}
	cp := *doc
	r.current.Store(&cp)
}

func (r *documentRepo) GetDocument() *types.Document {
	return r.current.Load()
}

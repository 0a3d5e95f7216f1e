// api/model/document.go
package model

import (
	"time"
)

// DocumentRecord describes a document submitted for compliance validation.
// Only metadata and text are carried; rendering and storage live elsewhere.
type DocumentRecord struct {
	ID         string     `json:"id"`
	Content    string     `json:"content"`
	Hash       string     `json:"hash"`
	Format     string     `json:"format"` // e.g. "pdf", "docx"
	Size       int64      `json:"size"`
	CreatedAt  time.Time  `json:"created_at"`
	ModifiedAt *time.Time `json:"modified_at,omitempty"` // set only on content change
}

// Modified reports whether the document changed after creation.
func (d *DocumentRecord) Modified() bool {
	return d.ModifiedAt != nil && !d.ModifiedAt.Equal(d.CreatedAt)
}

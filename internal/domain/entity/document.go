package entity

import "time"

// Document is a PDF sitting in the incoming folder, addressed by its id
// (the filename without extension).
type Document struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	SizeBytes  int64     `json:"size_bytes"`
	PageCount  int       `json:"page_count,omitempty"`
	ModifiedAt time.Time `json:"modified_at"`
}

// DocumentGeometry bundles a document with the geometry of all of its pages.
type DocumentGeometry struct {
	DocumentID string         `json:"document_id"`
	Pages      []PageGeometry `json:"pages"`
}

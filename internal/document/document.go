// Package document stores template documents: a named, ordered element list.
//
// A document is a single file. Files ending in .yaml or .yml are read and
// written as YAML, everything else as JSON. Writes are atomic, and every
// read also reports the checksum of the bytes on disk so callers can detect
// concurrent edits.
//
// Key components:
//   - Document: the element list plus metadata
//   - Repo: interface for loading and saving documents
//   - FileRepo: Repo backed by an fsops.FS
package document

import (
	"time"

	"github.com/danieljhkim/elemlist/internal/element"
)

// SchemaVersion is the document format version written by this build.
const SchemaVersion = 1

// Document is a template's element list.
type Document struct {
	// SchemaVersion is the version of this schema
	SchemaVersion int `json:"schemaVersion" yaml:"schemaVersion"`

	// Name is the human-readable template name
	Name string `json:"name" yaml:"name"`

	// CreatedAt is when the document was created
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`

	// UpdatedAt is when the element list was last written
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt"`

	// Elements is the element list in rendered order
	Elements []element.Element `json:"elements" yaml:"elements"`
}

// New creates an empty document.
func New(name string, createdAt time.Time) *Document {
	return &Document{
		SchemaVersion: SchemaVersion,
		Name:          name,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
		Elements:      []element.Element{},
	}
}

// Keys returns the keys of all elements, in order.
func (d *Document) Keys() []string {
	return element.Keys(d.Elements)
}

package engine

// InitRequest represents a request to create a document.
type InitRequest struct {
	// Document is the document path (empty uses the configured default)
	Document string

	// Name is the template name stored in the document
	Name string

	// Force overwrites an existing document
	Force bool
}

// ListRequest represents a request to list a document's elements.
type ListRequest struct {
	Document string
}

// AddRequest represents a request to add an element.
type AddRequest struct {
	Document string

	// Key is the display name of the new element
	Key string

	// Type is the element kind
	Type string

	// Payload is an optional JSON object
	Payload string

	// After places the element after this reference instead of at the end
	After string
}

// RemoveRequest represents a request to remove elements.
type RemoveRequest struct {
	Document string

	// Refs are the elements to remove
	Refs []string
}

// RenameRequest represents a request to change an element's key.
type RenameRequest struct {
	Document string
	Ref      string
	Key      string
}

// DuplicateRequest represents a request to duplicate elements in one batch.
type DuplicateRequest struct {
	Document string

	// Refs are the elements to copy, in copy order. Empty means the
	// current selection, in list order.
	Refs []string

	// DryRun reports the names without writing the document
	DryRun bool
}

// SuggestNameRequest represents a request for the next copy name of a key.
type SuggestNameRequest struct {
	Document string

	// Key is the key being copied
	Key string

	// Pending are names already handed out in the same batch
	Pending []string
}

// SelectRequest represents a click on an element in the list.
type SelectRequest struct {
	Document string

	// Ref is the clicked element (ignored when Clear is set)
	Ref string

	// Extend toggles Ref in the selection instead of replacing it
	Extend bool

	// Clear empties the selection
	Clear bool
}

// DragStartRequest represents a request to pick up an element.
type DragStartRequest struct {
	Document string

	// Ref is the element being dragged
	Ref string
}

// DragEndRequest represents a request to drop the dragged element.
type DragEndRequest struct {
	Document string

	// Over is the drop target; empty means there is none
	Over string

	// Force writes the new order even if the document drifted
	Force bool
}

// DragCancelRequest represents a request to abandon the drag.
type DragCancelRequest struct {
	Document string
}

// DragStatusRequest represents a request for the drag state.
type DragStatusRequest struct {
	Document string
}

// MoveRequest is a complete drag in one call.
type MoveRequest struct {
	Document string

	// Ref is the element being moved
	Ref string

	// Over is the element it is dropped on
	Over string
}

// GetFieldRequest represents a request to read a payload field.
type GetFieldRequest struct {
	Document string
	Ref      string

	// Path is a gjson path; empty returns the whole payload
	Path string
}

// SetFieldRequest represents a request to write a payload field.
type SetFieldRequest struct {
	Document string
	Ref      string

	// Path is an sjson path
	Path string

	// Value is the new value
	Value string

	// Raw inserts Value as JSON instead of a string
	Raw bool

	// Delete removes the field instead of setting it
	Delete bool
}

// ExportRequest represents a request to write a document to another path.
type ExportRequest struct {
	Document string

	// Output is the destination; its extension picks the format
	Output string

	// Force overwrites an existing output file
	Force bool
}

// PruneSessionsRequest represents a request to delete stale sessions.
type PruneSessionsRequest struct {
	// DryRun reports what would be pruned
	DryRun bool
}

package engine

import (
	"encoding/json"
	"time"
)

// ElementInfo describes one element of a list.
type ElementInfo struct {
	Index    int             `json:"index"`
	ID       string          `json:"id"`
	Key      string          `json:"key"`
	Type     string          `json:"type,omitempty"`
	Selected bool            `json:"selected"`
	Payload  json.RawMessage `json:"payload,omitempty"`
}

// InitResult represents the result of creating a document.
type InitResult struct {
	Document string `json:"document"`
	Name     string `json:"name"`

	// Replaced is true when an existing document was overwritten
	Replaced bool `json:"replaced"`
}

// ListResult represents a document's elements and editing state.
type ListResult struct {
	Document  string        `json:"document"`
	Name      string        `json:"name"`
	Elements  []ElementInfo `json:"elements"`
	Selection []string      `json:"selection"`

	// Drag is set while a drag is in flight
	Drag *DragStatusResult `json:"drag,omitempty"`
}

// AddResult represents the result of adding an element.
type AddResult struct {
	Element ElementInfo `json:"element"`
}

// RemoveResult represents the result of removing elements.
type RemoveResult struct {
	Removed []ElementInfo `json:"removed"`
}

// RenameResult represents the result of renaming an element.
type RenameResult struct {
	ID     string `json:"id"`
	OldKey string `json:"oldKey"`
	NewKey string `json:"newKey"`
}

// CopyInfo pairs a duplicated element with its copy.
type CopyInfo struct {
	SourceID  string `json:"sourceId"`
	SourceKey string `json:"sourceKey"`
	ID        string `json:"id,omitempty"`
	Key       string `json:"key"`
}

// DuplicateResult represents the result of a batch duplicate.
type DuplicateResult struct {
	Copies []CopyInfo `json:"copies"`
	DryRun bool       `json:"dryRun"`
}

// SuggestNameResult represents the next copy name for a key.
type SuggestNameResult struct {
	Key       string `json:"key"`
	Root      string `json:"root"`
	Suggested string `json:"suggested"`
}

// SelectResult represents the selection after a click.
type SelectResult struct {
	Selection []ElementInfo `json:"selection"`
}

// DragStartResult represents the result of picking up an element.
type DragStartResult struct {
	ActiveID  string `json:"activeId"`
	ActiveKey string `json:"activeKey"`

	// Carried are the keys of the other selected elements travelling with it
	Carried []string `json:"carried"`

	// Working is the key order while dragging
	Working []string `json:"working"`
}

// DragEndResult represents the result of dropping the dragged element.
type DragEndResult struct {
	ActiveID string `json:"activeId"`
	OverID   string `json:"overId,omitempty"`

	// Moved is true when the committed order changed
	Moved bool `json:"moved"`

	// Order is the committed key order
	Order []string `json:"order"`
}

// DragCancelResult represents the result of abandoning a drag.
type DragCancelResult struct {
	ActiveID string `json:"activeId"`

	// Drifted is true when the document changed on disk during the drag
	Drifted bool `json:"drifted"`

	// Order is the restored key order
	Order []string `json:"order"`

	// Selection is the selection kept after cancelling
	Selection []string `json:"selection"`
}

// DragStatusResult represents the drag state of a document.
type DragStatusResult struct {
	Active    bool      `json:"active"`
	ActiveID  string    `json:"activeId,omitempty"`
	ActiveKey string    `json:"activeKey,omitempty"`
	Carried   []string  `json:"carried,omitempty"`
	Working   []string  `json:"working,omitempty"`
	StartedAt time.Time `json:"startedAt,omitempty"`
	Drifted   bool      `json:"drifted"`
}

// GetFieldResult represents a payload field value.
type GetFieldResult struct {
	ID     string `json:"id"`
	Key    string `json:"key"`
	Path   string `json:"path"`
	Exists bool   `json:"exists"`

	// Type is the JSON type of the value
	Type string `json:"type,omitempty"`

	// Value is the raw JSON of the value
	Value json.RawMessage `json:"value,omitempty"`
}

// SetFieldResult represents the payload after a field write.
type SetFieldResult struct {
	ID      string          `json:"id"`
	Key     string          `json:"key"`
	Path    string          `json:"path"`
	Payload json.RawMessage `json:"payload"`
}

// ExportResult represents the result of exporting a document.
type ExportResult struct {
	Output   string `json:"output"`
	Format   string `json:"format"`
	Elements int    `json:"elements"`
}

// SessionInfo summarizes one stored session.
type SessionInfo struct {
	ID           string    `json:"id"`
	DocumentPath string    `json:"documentPath"`
	Selected     int       `json:"selected"`
	Dragging     bool      `json:"dragging"`
	UpdatedAt    time.Time `json:"updatedAt"`

	// Stale is true when the session can be pruned
	Stale bool `json:"stale"`

	// Reason explains why a session is stale
	Reason string `json:"reason,omitempty"`
}

// SessionsResult lists stored sessions.
type SessionsResult struct {
	Sessions []SessionInfo `json:"sessions"`
}

// PruneSessionsResult represents the result of pruning sessions.
type PruneSessionsResult struct {
	Pruned []SessionInfo `json:"pruned"`
	DryRun bool          `json:"dryRun"`
}

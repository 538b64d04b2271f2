package state

import (
	"time"

	"github.com/danieljhkim/elemlist/internal/element"
)

// Session is the editing state of one document.
type Session struct {
	// DocumentPath is the absolute path of the document this session belongs to
	DocumentPath string `json:"documentPath"`

	// Selection is the selected element ids in click order
	Selection []string `json:"selection"`

	// Drag is the in-flight drag, nil when no drag is active
	Drag *DragState `json:"drag,omitempty"`

	// UpdatedAt is when the session was last written
	UpdatedAt time.Time `json:"updatedAt"`
}

// DragState is everything captured when a drag starts.
type DragState struct {
	// ActiveID is the element being dragged
	ActiveID string `json:"activeId"`

	// Baseline is the committed element order at drag start
	Baseline []element.Element `json:"baseline"`

	// Working is the element list after the start transition, the input to End
	Working []element.Element `json:"working"`

	// Selection is the selected elements carried through the drag
	Selection []element.Element `json:"selection,omitempty"`

	// Checksum is the document checksum at drag start
	Checksum string `json:"checksum"`

	// StartedAt is when the drag started
	StartedAt time.Time `json:"startedAt"`
}

// NewSession creates an empty session for the document at path.
func NewSession(documentPath string) *Session {
	return &Session{
		DocumentPath: documentPath,
		Selection:    []string{},
	}
}

// Dragging reports whether a drag is in flight.
func (s *Session) Dragging() bool {
	return s.Drag != nil
}

// IsSelected reports whether id is in the selection.
func (s *Session) IsSelected(id string) bool {
	for _, sel := range s.Selection {
		if sel == id {
			return true
		}
	}
	return false
}

// ResolveSelection maps the selected ids onto elements of list, keeping
// selection order. Ids no longer present in list are dropped.
func (s *Session) ResolveSelection(list []element.Element) []element.Element {
	out := make([]element.Element, 0, len(s.Selection))
	for _, id := range s.Selection {
		if i := element.IndexOf(list, id); i >= 0 {
			out = append(out, list[i])
		}
	}
	return out
}

// SetSelection replaces the selection with the ids of elems.
func (s *Session) SetSelection(elems []element.Element) {
	s.Selection = element.IDs(elems)
	if s.Selection == nil {
		s.Selection = []string{}
	}
}

// Forget removes ids from the selection.
func (s *Session) Forget(ids map[string]bool) {
	kept := s.Selection[:0]
	for _, id := range s.Selection {
		if !ids[id] {
			kept = append(kept, id)
		}
	}
	s.Selection = kept
}

// Empty reports whether the session carries no state worth keeping.
func (s *Session) Empty() bool {
	return len(s.Selection) == 0 && s.Drag == nil
}

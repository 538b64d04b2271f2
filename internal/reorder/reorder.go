package reorder

import (
	"github.com/danieljhkim/elemlist/internal/element"
)

// Kind identifies a drag lifecycle transition.
type Kind int

// Transition kinds.
const (
	KindStart Kind = iota + 1
	KindEnd
	KindCancel
)

// String returns the transition name.
func (k Kind) String() string {
	switch k {
	case KindStart:
		return "start"
	case KindEnd:
		return "end"
	case KindCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// Transition is one drag lifecycle event decoded into element ids.
type Transition struct {
	Kind Kind

	// ActiveID is the grabbed element (Start and End)
	ActiveID string

	// OverID is the drop target (End only); empty means no valid target
	OverID string
}

// Start begins dragging activeID.
func Start(activeID string) Transition {
	return Transition{Kind: KindStart, ActiveID: activeID}
}

// End drops activeID onto overID. An empty overID means there is no drop target.
func End(activeID, overID string) Transition {
	return Transition{Kind: KindEnd, ActiveID: activeID, OverID: overID}
}

// Cancel abandons the current drag.
func Cancel() Transition {
	return Transition{Kind: KindCancel}
}

// Gesture is the drag bookkeeping captured at Start.
type Gesture struct {
	// Baseline is the list order at Start, restored on Cancel
	Baseline []element.Element `json:"baseline,omitempty"`

	// ActiveID is the element being dragged
	ActiveID string `json:"activeId,omitempty"`
}

// InProgress reports whether the gesture belongs to a started drag.
func (g Gesture) InProgress() bool {
	return g.ActiveID != ""
}

// Outcome is the result of applying a transition.
type Outcome struct {
	// List is the next element order
	List []element.Element

	// Selection is the next selection, in selection order
	Selection []element.Element

	// Gesture is the bookkeeping to pass to the next transition
	Gesture Gesture

	// Changed reports whether List differs in order from the input list
	Changed bool
}

// Reorder applies tr to list. It never mutates list, selection or g.
func Reorder(list, selection []element.Element, g Gesture, tr Transition) Outcome {
	var out Outcome
	switch tr.Kind {
	case KindStart:
		out = start(list, selection, tr.ActiveID)
	case KindEnd:
		out = end(list, selection, g, tr.ActiveID, tr.OverID)
	case KindCancel:
		out = cancel(list, selection, g)
	default:
		out = Outcome{
			List:      element.Clone(list),
			Selection: element.Clone(selection),
			Gesture:   g,
		}
	}
	out.Changed = !element.SameOrder(out.List, list)
	return out
}

// start snapshots the baseline and, when the active element is selected,
// removes the other selected elements from the list.
func start(list, selection []element.Element, activeID string) Outcome {
	out := Outcome{
		List: element.Clone(list),
		Gesture: Gesture{
			Baseline: element.Clone(list),
			ActiveID: activeID,
		},
	}

	// Dragging an unselected element discards the selection.
	if !element.Contains(selection, activeID) {
		return out
	}

	out.Selection = element.Clone(selection)
	if !element.Contains(list, activeID) {
		return out
	}
	out.List = element.Without(list, element.IDSet(others(selection, activeID)))
	return out
}

// end drops the active element on the target and re-inserts the rest of the
// selection right after it. The selection is always cleared.
func end(list, selection []element.Element, g Gesture, activeID, overID string) Outcome {
	rest := others(selection, activeID)
	working := element.Without(list, element.IDSet(rest))

	activeIndex := element.IndexOf(working, activeID)
	overIndex := element.IndexOf(working, overID)
	if activeIndex < 0 || overIndex < 0 {
		return Outcome{List: settle(list, rest, g, activeID)}
	}

	if len(selection) == 0 {
		if activeIndex == overIndex {
			return Outcome{List: element.Clone(list)}
		}
		return Outcome{List: Move(working, activeIndex, overIndex)}
	}

	moved := Move(working, activeIndex, overIndex)
	return Outcome{List: insertAt(moved, overIndex+1, rest)}
}

// cancel restores the baseline. The selection survives a cancelled drag.
func cancel(list, selection []element.Element, g Gesture) Outcome {
	out := Outcome{Selection: element.Clone(selection)}
	if g.Baseline != nil {
		out.List = element.Clone(g.Baseline)
	} else {
		out.List = element.Clone(list)
	}
	return out
}

// settle resolves a drop without a valid target. A staged compaction is
// undone by returning the baseline; without a baseline any selected
// elements missing from list are put back after the active element.
func settle(list, rest []element.Element, g Gesture, activeID string) []element.Element {
	if len(rest) > 0 && g.Baseline != nil {
		return element.Clone(g.Baseline)
	}

	present := element.IDSet(list)
	var missing []element.Element
	for _, e := range rest {
		if !present[e.ID] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return element.Clone(list)
	}

	at := element.IndexOf(list, activeID)
	if at < 0 {
		return insertAt(list, len(list), missing)
	}
	return insertAt(list, at+1, missing)
}

// Move relocates the element at from to index to, shifting the elements in
// between by one. Out of range indices leave the order unchanged.
func Move(list []element.Element, from, to int) []element.Element {
	out := element.Clone(list)
	if from < 0 || from >= len(out) || to < 0 || to >= len(out) || from == to {
		return out
	}
	moving := out[from]
	if from < to {
		copy(out[from:to], out[from+1:to+1])
	} else {
		copy(out[to+1:from+1], out[to:from])
	}
	out[to] = moving
	return out
}

// others returns the selection without the active element, in selection order.
func others(selection []element.Element, activeID string) []element.Element {
	out := make([]element.Element, 0, len(selection))
	for _, e := range selection {
		if e.ID != activeID {
			out = append(out, e)
		}
	}
	return out
}

func insertAt(list []element.Element, at int, block []element.Element) []element.Element {
	if at > len(list) {
		at = len(list)
	}
	out := make([]element.Element, 0, len(list)+len(block))
	out = append(out, list[:at]...)
	out = append(out, block...)
	out = append(out, list[at:]...)
	return out
}

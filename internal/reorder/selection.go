package reorder

import "github.com/danieljhkim/elemlist/internal/element"

// Select applies a click on id to the selection.
//
// An extending click (shift-click) toggles id: a selected element is removed,
// an unselected one is appended so the selection keeps click order. A plain
// click clears the selection. Ids not present in list are ignored.
func Select(list, selection []element.Element, id string, extend bool) []element.Element {
	if !extend {
		return nil
	}

	if element.Contains(selection, id) {
		return element.Without(selection, map[string]bool{id: true})
	}

	i := element.IndexOf(list, id)
	if i < 0 {
		return element.Clone(selection)
	}
	out := element.Clone(selection)
	return append(out, list[i])
}

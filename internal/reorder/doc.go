// Package reorder computes element list orders for drag gestures.
//
// A gesture is a Start transition followed by exactly one End or Cancel.
// Dragging an element that belongs to the current selection moves the whole
// selection: the other selected elements are compacted out of the list at
// Start and re-inserted as a contiguous block right after the dropped element
// at End. Cancel restores the order captured at Start.
//
// Reorder is a pure function. The caller owns the list, the selection and the
// Gesture between transitions and passes them back in on every call.
//
// Key concepts:
//   - Transition: Start(active), End(active, over) or Cancel
//   - Gesture: baseline order and active id captured at Start
//   - Outcome: the next list, selection and gesture
//   - Move: single-element relocation used by End
package reorder

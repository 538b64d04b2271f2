package engine

import (
	"context"
	"fmt"

	"github.com/danieljhkim/elemlist/internal/element"
	"github.com/danieljhkim/elemlist/internal/log"
	"github.com/danieljhkim/elemlist/internal/reorder"
	"github.com/danieljhkim/elemlist/internal/state"
)

// DragStart picks up an element. The gesture and the working list are kept
// in the session; the document is not written until the drag ends.
func (e *Engine) DragStart(ctx context.Context, req *DragStartRequest) (*DragStartResult, error) {
	ws, err := e.openForEdit(ctx, req.Document)
	if err != nil {
		return nil, err
	}

	active, err := resolve(ws.doc.Elements, req.Ref)
	if err != nil {
		return nil, err
	}

	selection := ws.session.ResolveSelection(ws.doc.Elements)
	out := reorder.Reorder(ws.doc.Elements, selection, reorder.Gesture{}, reorder.Start(active.ID))

	ws.session.SetSelection(out.Selection)
	ws.session.Drag = &state.DragState{
		ActiveID:  active.ID,
		Baseline:  out.Gesture.Baseline,
		Working:   out.List,
		Selection: out.Selection,
		Checksum:  ws.checksum,
		StartedAt: e.clock.Now(),
	}
	if err := e.saveSession(ctx, ws); err != nil {
		return nil, err
	}

	carried := carriedKeys(out.Selection, active.ID)
	log.Debug(ctx, "drag started", "active", active.ID, "carried", len(carried), "selection_kept", len(out.Selection) > 0)
	return &DragStartResult{
		ActiveID:  active.ID,
		ActiveKey: active.Key,
		Carried:   carried,
		Working:   element.Keys(out.List),
	}, nil
}

// DragEnd drops the dragged element on Over and commits the new order.
// An empty or unknown Over leaves the committed order as it was.
func (e *Engine) DragEnd(ctx context.Context, req *DragEndRequest) (*DragEndResult, error) {
	ws, err := e.open(ctx, req.Document)
	if err != nil {
		return nil, err
	}
	drag := ws.session.Drag
	if drag == nil {
		return nil, ErrNoDrag
	}

	if ws.checksum != drag.Checksum {
		if e.settings.Drag.DriftCheck && !req.Force {
			return nil, fmt.Errorf("%w: %s changed since the drag started (use --force to drop anyway, or cancel)", ErrDrift, ws.path)
		}
		log.Warn(ctx, "ending drag over a drifted document", "path", ws.path, "forced", req.Force)
	}

	overID := ""
	if req.Over != "" {
		over, err := resolve(drag.Baseline, req.Over)
		if err != nil {
			return nil, err
		}
		overID = over.ID
	}

	gesture := reorder.Gesture{Baseline: drag.Baseline, ActiveID: drag.ActiveID}
	out := reorder.Reorder(drag.Working, drag.Selection, gesture, reorder.End(drag.ActiveID, overID))

	moved := !element.SameOrder(out.List, drag.Baseline)
	if moved {
		ws.doc.Elements = out.List
		if err := e.saveDocument(ctx, ws); err != nil {
			return nil, err
		}
	}

	ws.session.Drag = nil
	ws.session.SetSelection(out.Selection)
	if err := e.saveSession(ctx, ws); err != nil {
		return nil, err
	}

	log.Debug(ctx, "drag ended", "active", drag.ActiveID, "over", overID, "moved", moved)
	return &DragEndResult{
		ActiveID: drag.ActiveID,
		OverID:   overID,
		Moved:    moved,
		Order:    element.Keys(out.List),
	}, nil
}

// DragCancel abandons the drag. The committed order is the baseline, so the
// document is never written; the selection survives.
func (e *Engine) DragCancel(ctx context.Context, req *DragCancelRequest) (*DragCancelResult, error) {
	ws, err := e.open(ctx, req.Document)
	if err != nil {
		return nil, err
	}
	drag := ws.session.Drag
	if drag == nil {
		return nil, ErrNoDrag
	}

	gesture := reorder.Gesture{Baseline: drag.Baseline, ActiveID: drag.ActiveID}
	out := reorder.Reorder(drag.Working, drag.Selection, gesture, reorder.Cancel())

	// Selected elements deleted from a drifted document are dropped.
	present := element.IDSet(ws.doc.Elements)
	kept := make([]element.Element, 0, len(out.Selection))
	for _, el := range out.Selection {
		if present[el.ID] {
			kept = append(kept, el)
		}
	}
	ws.session.Drag = nil
	ws.session.SetSelection(kept)
	if err := e.saveSession(ctx, ws); err != nil {
		return nil, err
	}

	drifted := ws.checksum != drag.Checksum
	log.Debug(ctx, "drag cancelled", "active", drag.ActiveID, "drifted", drifted)
	return &DragCancelResult{
		ActiveID:  drag.ActiveID,
		Drifted:   drifted,
		Order:     element.Keys(ws.doc.Elements),
		Selection: append([]string{}, ws.session.Selection...),
	}, nil
}

// DragStatus reports the drag in flight, if any.
func (e *Engine) DragStatus(ctx context.Context, req *DragStatusRequest) (*DragStatusResult, error) {
	ws, err := e.open(ctx, req.Document)
	if err != nil {
		return nil, err
	}
	if !ws.session.Dragging() {
		return &DragStatusResult{Active: false}, nil
	}
	return dragStatus(ws), nil
}

// Move performs a whole drag of Ref onto Over in one call, carrying the
// current selection along.
func (e *Engine) Move(ctx context.Context, req *MoveRequest) (*DragEndResult, error) {
	ws, err := e.openForEdit(ctx, req.Document)
	if err != nil {
		return nil, err
	}

	active, err := resolve(ws.doc.Elements, req.Ref)
	if err != nil {
		return nil, err
	}
	over, err := resolve(ws.doc.Elements, req.Over)
	if err != nil {
		return nil, err
	}

	selection := ws.session.ResolveSelection(ws.doc.Elements)
	started := reorder.Reorder(ws.doc.Elements, selection, reorder.Gesture{}, reorder.Start(active.ID))
	out := reorder.Reorder(started.List, started.Selection, started.Gesture, reorder.End(active.ID, over.ID))

	moved := !element.SameOrder(out.List, ws.doc.Elements)
	if moved {
		ws.doc.Elements = out.List
		if err := e.saveDocument(ctx, ws); err != nil {
			return nil, err
		}
	}

	ws.session.SetSelection(out.Selection)
	if err := e.saveSession(ctx, ws); err != nil {
		return nil, err
	}

	log.Debug(ctx, "element moved", "active", active.ID, "over", over.ID, "moved", moved)
	return &DragEndResult{
		ActiveID: active.ID,
		OverID:   over.ID,
		Moved:    moved,
		Order:    element.Keys(out.List),
	}, nil
}

func dragStatus(ws *workspace) *DragStatusResult {
	drag := ws.session.Drag
	key := ""
	if i := element.IndexOf(drag.Baseline, drag.ActiveID); i >= 0 {
		key = drag.Baseline[i].Key
	}
	return &DragStatusResult{
		Active:    true,
		ActiveID:  drag.ActiveID,
		ActiveKey: key,
		Carried:   carriedKeys(drag.Selection, drag.ActiveID),
		Working:   element.Keys(drag.Working),
		StartedAt: drag.StartedAt,
		Drifted:   ws.checksum != drag.Checksum,
	}
}

// carriedKeys returns the keys of the selected elements other than the
// active one, in selection order.
func carriedKeys(selection []element.Element, activeID string) []string {
	keys := []string{}
	for _, el := range selection {
		if el.ID != activeID {
			keys = append(keys, el.Key)
		}
	}
	return keys
}

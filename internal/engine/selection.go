package engine

import (
	"context"

	"github.com/danieljhkim/elemlist/internal/element"
	"github.com/danieljhkim/elemlist/internal/log"
	"github.com/danieljhkim/elemlist/internal/reorder"
)

// Select applies a click to the selection. An extending click toggles the
// element; a plain click, or Clear, empties the selection.
func (e *Engine) Select(ctx context.Context, req *SelectRequest) (*SelectResult, error) {
	ws, err := e.openForEdit(ctx, req.Document)
	if err != nil {
		return nil, err
	}

	list := ws.doc.Elements
	selection := ws.session.ResolveSelection(list)

	if req.Clear {
		selection = nil
	} else {
		target, err := resolve(list, req.Ref)
		if err != nil {
			return nil, err
		}
		selection = reorder.Select(list, selection, target.ID, req.Extend)
	}

	ws.session.SetSelection(selection)
	if err := e.saveSession(ctx, ws); err != nil {
		return nil, err
	}

	log.Debug(ctx, "selection changed", "selected", len(selection))
	result := &SelectResult{Selection: make([]ElementInfo, 0, len(selection))}
	for _, el := range selection {
		result.Selection = append(result.Selection, infoOf(element.IndexOf(list, el.ID), el, true))
	}
	return result, nil
}

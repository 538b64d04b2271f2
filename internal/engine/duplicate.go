package engine

import (
	"context"
	"fmt"

	"github.com/danieljhkim/elemlist/internal/element"
	"github.com/danieljhkim/elemlist/internal/log"
	"github.com/danieljhkim/elemlist/internal/naming"
)

// Duplicate copies elements in one batch. Every copy gets a fresh id and a
// name that collides neither with the document's keys nor with the names
// handed out earlier in the same batch. Copies are appended in copy order.
func (e *Engine) Duplicate(ctx context.Context, req *DuplicateRequest) (*DuplicateResult, error) {
	ws, err := e.openForEdit(ctx, req.Document)
	if err != nil {
		return nil, err
	}

	var sources []element.Element
	if len(req.Refs) > 0 {
		sources, err = resolveAll(ws.doc.Elements, req.Refs)
		if err != nil {
			return nil, err
		}
	} else {
		for _, el := range ws.doc.Elements {
			if ws.session.IsSelected(el.ID) {
				sources = append(sources, el)
			}
		}
		if len(sources) == 0 {
			return nil, fmt.Errorf("%w: nothing to duplicate (give elements or select some first)", ErrValidation)
		}
	}

	batch := naming.NewBatch(ws.doc.Keys())
	result := &DuplicateResult{Copies: make([]CopyInfo, 0, len(sources)), DryRun: req.DryRun}
	copies := make([]element.Element, 0, len(sources))
	for _, src := range sources {
		key := batch.Next(src.Key)
		info := CopyInfo{SourceID: src.ID, SourceKey: src.Key, Key: key}
		if !req.DryRun {
			c := src.Duplicate(key)
			copies = append(copies, c)
			info.ID = c.ID
		}
		result.Copies = append(result.Copies, info)
		log.Debug(ctx, "copy named", "source", src.Key, "copy", key)
	}

	if req.DryRun {
		return result, nil
	}

	ws.doc.Elements = append(ws.doc.Elements, copies...)
	if err := e.saveDocument(ctx, ws); err != nil {
		return nil, err
	}
	return result, nil
}

// SuggestName previews the name the next copy of a key would get.
func (e *Engine) SuggestName(ctx context.Context, req *SuggestNameRequest) (*SuggestNameResult, error) {
	ws, err := e.open(ctx, req.Document)
	if err != nil {
		return nil, err
	}

	return &SuggestNameResult{
		Key:       req.Key,
		Root:      naming.Root(req.Key),
		Suggested: naming.Allocate(req.Key, ws.doc.Keys(), req.Pending),
	}, nil
}

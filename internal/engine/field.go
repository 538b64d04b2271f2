package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/danieljhkim/elemlist/internal/element"
)

// GetField reads a payload value by gjson path.
func (e *Engine) GetField(ctx context.Context, req *GetFieldRequest) (*GetFieldResult, error) {
	ws, err := e.open(ctx, req.Document)
	if err != nil {
		return nil, err
	}

	target, err := resolve(ws.doc.Elements, req.Ref)
	if err != nil {
		return nil, err
	}

	result := &GetFieldResult{ID: target.ID, Key: target.Key, Path: req.Path}
	if strings.TrimSpace(req.Path) == "" {
		if len(target.Payload) > 0 {
			result.Exists = true
			result.Type = "JSON"
			result.Value = target.Payload
		}
		return result, nil
	}

	value := target.Field(req.Path)
	if value.Exists() {
		result.Exists = true
		result.Type = value.Type.String()
		if value.Raw != "" {
			result.Value = json.RawMessage(value.Raw)
		} else {
			// Computed results (modifiers, multipaths) carry no raw text.
			data, err := json.Marshal(value.Value())
			if err != nil {
				return nil, fmt.Errorf("failed to encode field value: %w", err)
			}
			result.Value = data
		}
	}
	return result, nil
}

// SetField writes or deletes a payload value by sjson path.
func (e *Engine) SetField(ctx context.Context, req *SetFieldRequest) (*SetFieldResult, error) {
	if strings.TrimSpace(req.Path) == "" {
		return nil, fmt.Errorf("%w: field path is required", ErrValidation)
	}

	ws, err := e.openForEdit(ctx, req.Document)
	if err != nil {
		return nil, err
	}

	target, err := resolve(ws.doc.Elements, req.Ref)
	if err != nil {
		return nil, err
	}

	var updated element.Element
	if req.Delete {
		updated, err = target.WithoutField(req.Path)
	} else {
		updated, err = target.WithField(req.Path, req.Value, req.Raw)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	i := element.IndexOf(ws.doc.Elements, target.ID)
	ws.doc.Elements[i] = updated
	if err := e.saveDocument(ctx, ws); err != nil {
		return nil, err
	}

	return &SetFieldResult{
		ID:      updated.ID,
		Key:     updated.Key,
		Path:    req.Path,
		Payload: updated.Payload,
	}, nil
}

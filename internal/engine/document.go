package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/danieljhkim/elemlist/internal/document"
	"github.com/danieljhkim/elemlist/internal/element"
	"github.com/danieljhkim/elemlist/internal/log"
	"github.com/danieljhkim/elemlist/internal/state"
)

// Init creates a new, empty document.
func (e *Engine) Init(ctx context.Context, req *InitRequest) (*InitResult, error) {
	path, err := e.documentPath(req.Document)
	if err != nil {
		return nil, err
	}

	exists, err := e.docs.Exists(path)
	if err != nil {
		return nil, fmt.Errorf("failed to check document: %w", err)
	}
	if exists && !req.Force {
		return nil, fmt.Errorf("%w: document %s already exists (use --force to overwrite)", ErrConflict, path)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = documentName(path)
	}

	doc := document.New(name, e.clock.Now())
	if _, err := e.docs.Save(path, doc); err != nil {
		return nil, fmt.Errorf("failed to save document: %w", err)
	}

	// A replaced document starts without selection or drag.
	if err := e.sessions.Delete(state.ComputeSessionID(path)); err != nil {
		return nil, fmt.Errorf("failed to clear session: %w", err)
	}

	log.Debug(ctx, "document created", "path", path, "replaced", exists)
	return &InitResult{Document: path, Name: name, Replaced: exists}, nil
}

// List returns a document's elements in order along with its editing state.
func (e *Engine) List(ctx context.Context, req *ListRequest) (*ListResult, error) {
	ws, err := e.open(ctx, req.Document)
	if err != nil {
		return nil, err
	}

	result := &ListResult{
		Document:  ws.path,
		Name:      ws.doc.Name,
		Elements:  make([]ElementInfo, 0, len(ws.doc.Elements)),
		Selection: append([]string{}, ws.session.Selection...),
	}
	for i, el := range ws.doc.Elements {
		result.Elements = append(result.Elements, infoOf(i, el, ws.session.IsSelected(el.ID)))
	}
	if ws.session.Dragging() {
		result.Drag = dragStatus(ws)
	}
	return result, nil
}

// Add appends a new element, or inserts it after another one.
func (e *Engine) Add(ctx context.Context, req *AddRequest) (*AddResult, error) {
	if req.Key == "" {
		return nil, fmt.Errorf("%w: element key is required", ErrValidation)
	}

	var payload json.RawMessage
	if strings.TrimSpace(req.Payload) != "" {
		if !gjson.Valid(req.Payload) || !gjson.Parse(req.Payload).IsObject() {
			return nil, fmt.Errorf("%w: payload must be a JSON object", ErrValidation)
		}
		payload = json.RawMessage(req.Payload)
	}

	ws, err := e.openForEdit(ctx, req.Document)
	if err != nil {
		return nil, err
	}

	el := element.New(req.Key, req.Type, payload)
	at := len(ws.doc.Elements)
	if req.After != "" {
		after, err := resolve(ws.doc.Elements, req.After)
		if err != nil {
			return nil, err
		}
		at = element.IndexOf(ws.doc.Elements, after.ID) + 1
	}

	list := make([]element.Element, 0, len(ws.doc.Elements)+1)
	list = append(list, ws.doc.Elements[:at]...)
	list = append(list, el)
	list = append(list, ws.doc.Elements[at:]...)
	ws.doc.Elements = list

	if err := e.saveDocument(ctx, ws); err != nil {
		return nil, err
	}
	return &AddResult{Element: infoOf(at, el, false)}, nil
}

// Remove deletes elements and drops them from the selection.
func (e *Engine) Remove(ctx context.Context, req *RemoveRequest) (*RemoveResult, error) {
	if len(req.Refs) == 0 {
		return nil, fmt.Errorf("%w: no elements given", ErrValidation)
	}

	ws, err := e.openForEdit(ctx, req.Document)
	if err != nil {
		return nil, err
	}

	targets, err := resolveAll(ws.doc.Elements, req.Refs)
	if err != nil {
		return nil, err
	}

	drop := element.IDSet(targets)
	result := &RemoveResult{Removed: make([]ElementInfo, 0, len(targets))}
	for i, el := range ws.doc.Elements {
		if drop[el.ID] {
			result.Removed = append(result.Removed, infoOf(i, el, ws.session.IsSelected(el.ID)))
		}
	}

	ws.doc.Elements = element.Without(ws.doc.Elements, drop)
	ws.session.Forget(drop)

	if err := e.saveDocument(ctx, ws); err != nil {
		return nil, err
	}
	if err := e.saveSession(ctx, ws); err != nil {
		return nil, err
	}
	return result, nil
}

// Rename changes an element's key. Keys need not be unique.
func (e *Engine) Rename(ctx context.Context, req *RenameRequest) (*RenameResult, error) {
	if req.Key == "" {
		return nil, fmt.Errorf("%w: new key is required", ErrValidation)
	}

	ws, err := e.openForEdit(ctx, req.Document)
	if err != nil {
		return nil, err
	}

	target, err := resolve(ws.doc.Elements, req.Ref)
	if err != nil {
		return nil, err
	}

	i := element.IndexOf(ws.doc.Elements, target.ID)
	ws.doc.Elements[i].Key = req.Key

	if err := e.saveDocument(ctx, ws); err != nil {
		return nil, err
	}
	return &RenameResult{ID: target.ID, OldKey: target.Key, NewKey: req.Key}, nil
}

// Export writes the document to another path. The output extension picks
// the format, so this also converts between JSON and YAML.
func (e *Engine) Export(ctx context.Context, req *ExportRequest) (*ExportResult, error) {
	if req.Output == "" {
		return nil, fmt.Errorf("%w: output path is required", ErrValidation)
	}

	ws, err := e.open(ctx, req.Document)
	if err != nil {
		return nil, err
	}

	out, err := e.documentPath(req.Output)
	if err != nil {
		return nil, err
	}
	if out == ws.path {
		return nil, fmt.Errorf("%w: output is the document itself", ErrValidation)
	}

	exists, err := e.docs.Exists(out)
	if err != nil {
		return nil, fmt.Errorf("failed to check output: %w", err)
	}
	if exists && !req.Force {
		return nil, fmt.Errorf("%w: %s already exists (use --force to overwrite)", ErrConflict, out)
	}

	if _, err := e.docs.Save(out, ws.doc); err != nil {
		return nil, fmt.Errorf("failed to export document: %w", err)
	}

	log.Debug(ctx, "document exported", "from", ws.path, "to", out)
	return &ExportResult{
		Output:   out,
		Format:   string(document.FormatFor(out)),
		Elements: len(ws.doc.Elements),
	}, nil
}

func infoOf(i int, el element.Element, selected bool) ElementInfo {
	return ElementInfo{
		Index:    i,
		ID:       el.ID,
		Key:      el.Key,
		Type:     el.Type,
		Selected: selected,
		Payload:  el.Payload,
	}
}

// documentName derives a template name from a file name.
func documentName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Package engine provides the core business logic for elemlist operations.
//
// The engine package acts as the orchestration layer between CLI commands and
// the pure naming and reorder packages. It loads documents and their
// sessions, resolves element references, runs the requested transition and
// persists the result.
//
// Key components:
//   - Engine: Main orchestrator that coordinates all operations
//   - Documents: Init, List, Add, Remove, Rename, fields and export
//   - Duplicate/SuggestName: copy naming through naming.Batch
//   - Select/Drag/Move: selection handling and drag reordering
//   - Sessions: listing and pruning of per-document session state
package engine

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/danieljhkim/elemlist/internal/clock"
	"github.com/danieljhkim/elemlist/internal/config"
	"github.com/danieljhkim/elemlist/internal/document"
	"github.com/danieljhkim/elemlist/internal/log"
	"github.com/danieljhkim/elemlist/internal/state"
)

// Engine orchestrates all elemlist operations.
// It is the main API surface called by the CLI.
type Engine struct {
	docs     document.Repo
	sessions state.SessionStore
	clock    clock.Clock
	settings config.Settings
}

// New creates a new Engine with the given dependencies.
func New(
	docs document.Repo,
	sessions state.SessionStore,
	clk clock.Clock,
	settings config.Settings,
) *Engine {
	return &Engine{
		docs:     docs,
		sessions: sessions,
		clock:    clk,
		settings: settings,
	}
}

// workspace is one loaded document together with its session.
type workspace struct {
	path      string
	sessionID string
	doc       *document.Document
	checksum  string
	session   *state.Session
}

// documentPath resolves the document a request refers to, falling back to
// the configured default.
func (e *Engine) documentPath(p string) (string, error) {
	if p == "" {
		p = e.settings.Document
	}
	if p == "" {
		return "", fmt.Errorf("%w: no document given", ErrValidation)
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("failed to resolve document path: %w", err)
	}
	return abs, nil
}

// open loads the document at p and its session. A missing session is
// replaced by an empty one.
func (e *Engine) open(ctx context.Context, p string) (*workspace, error) {
	path, err := e.documentPath(p)
	if err != nil {
		return nil, err
	}

	doc, sum, err := e.docs.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: document %s does not exist (run 'elemlist init')", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	ws := &workspace{
		path:      path,
		sessionID: state.ComputeSessionID(path),
		doc:       doc,
		checksum:  sum,
	}

	ws.session, err = e.sessions.Load(ws.sessionID)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load session: %w", err)
		}
		ws.session = state.NewSession(path)
	}

	// Selected elements removed by someone else no longer count.
	if !ws.session.Dragging() {
		ws.session.SetSelection(ws.session.ResolveSelection(doc.Elements))
	}

	log.Debug(ctx, "document opened", "path", path, "elements", len(doc.Elements), "session", ws.sessionID)
	return ws, nil
}

// openForEdit is open for operations that change the document or selection.
func (e *Engine) openForEdit(ctx context.Context, p string) (*workspace, error) {
	ws, err := e.open(ctx, p)
	if err != nil {
		return nil, err
	}
	if ws.session.Dragging() {
		return nil, fmt.Errorf("%w: finish it with 'elemlist drag end' or 'elemlist drag cancel'", ErrDragActive)
	}
	return ws, nil
}

// saveDocument writes the document and records the new checksum.
func (e *Engine) saveDocument(ctx context.Context, ws *workspace) error {
	ws.doc.UpdatedAt = e.clock.Now()
	sum, err := e.docs.Save(ws.path, ws.doc)
	if err != nil {
		return fmt.Errorf("failed to save document: %w", err)
	}
	ws.checksum = sum
	log.Debug(ctx, "document saved", "path", ws.path, "elements", len(ws.doc.Elements))
	return nil
}

// saveSession persists the session, or removes it once it holds nothing.
func (e *Engine) saveSession(ctx context.Context, ws *workspace) error {
	if ws.session.Empty() {
		if err := e.sessions.Delete(ws.sessionID); err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}
		return nil
	}

	ws.session.DocumentPath = ws.path
	ws.session.UpdatedAt = e.clock.Now()
	if err := e.sessions.Save(ws.sessionID, ws.session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	log.Debug(ctx, "session saved", "session", ws.sessionID, "selected", len(ws.session.Selection), "dragging", ws.session.Dragging())
	return nil
}

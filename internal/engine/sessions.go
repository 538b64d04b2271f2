package engine

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/danieljhkim/elemlist/internal/log"
)

// Sessions enumerates all stored sessions and returns summary information.
// Algorithm steps:
// 1. List session IDs from the session store
// 2. Load each session; unreadable ones are reported as stale
// 3. Mark sessions whose document no longer exists as stale
// 4. Return sorted list by DocumentPath
func (e *Engine) Sessions(ctx context.Context) (*SessionsResult, error) {
	// Step 1: List session IDs
	ids, err := e.sessions.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	infos := make([]SessionInfo, 0, len(ids))
	for _, id := range ids {
		infos = append(infos, e.describeSession(id))
	}

	// Step 4: Sort by DocumentPath for consistency
	slices.SortFunc(infos, func(a, b SessionInfo) int {
		return strings.Compare(a.DocumentPath, b.DocumentPath)
	})

	return &SessionsResult{Sessions: infos}, nil
}

// PruneSessions deletes sessions that are unreadable or whose document is gone.
func (e *Engine) PruneSessions(ctx context.Context, req *PruneSessionsRequest) (*PruneSessionsResult, error) {
	listed, err := e.Sessions(ctx)
	if err != nil {
		return nil, err
	}

	result := &PruneSessionsResult{Pruned: []SessionInfo{}, DryRun: req.DryRun}
	for _, info := range listed.Sessions {
		if !info.Stale {
			continue
		}
		if !req.DryRun {
			if err := e.sessions.Delete(info.ID); err != nil {
				return nil, fmt.Errorf("failed to delete session %s: %w", info.ID, err)
			}
			log.Debug(ctx, "session pruned", "session", info.ID, "reason", info.Reason)
		}
		result.Pruned = append(result.Pruned, info)
	}
	return result, nil
}

func (e *Engine) describeSession(id string) SessionInfo {
	info := SessionInfo{ID: id}

	// Step 2: Load session
	s, err := e.sessions.Load(id)
	if err != nil {
		info.Stale = true
		info.Reason = "unreadable"
		return info
	}

	info.DocumentPath = s.DocumentPath
	info.Selected = len(s.Selection)
	info.Dragging = s.Dragging()
	info.UpdatedAt = s.UpdatedAt

	// Step 3: Check the document still exists
	exists, err := e.docs.Exists(s.DocumentPath)
	switch {
	case s.DocumentPath == "":
		info.Stale = true
		info.Reason = "no document"
	case err != nil:
		info.Reason = "unknown: " + err.Error()
	case !exists:
		info.Stale = true
		info.Reason = "document missing"
	}
	return info
}

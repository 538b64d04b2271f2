package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/danieljhkim/elemlist/internal/document"
	"github.com/danieljhkim/elemlist/internal/state"
)

func TestDrag_SingleElement(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.add(t, "A", "B", "C")

	start, err := env.eng.DragStart(ctx, &DragStartRequest{Ref: "A"})
	if err != nil {
		t.Fatalf("DragStart() error = %v", err)
	}
	assertKeys(t, start.Working, "A", "B", "C")
	assertKeys(t, start.Carried)

	end, err := env.eng.DragEnd(ctx, &DragEndRequest{Over: "C"})
	if err != nil {
		t.Fatalf("DragEnd() error = %v", err)
	}
	if !end.Moved {
		t.Error("DragEnd() should report a move")
	}
	assertKeys(t, end.Order, "B", "C", "A")
	assertKeys(t, env.keys(t), "B", "C", "A")

	status, err := env.eng.DragStatus(ctx, &DragStatusRequest{})
	if err != nil {
		t.Fatalf("DragStatus() error = %v", err)
	}
	if status.Active {
		t.Error("drag should be finished")
	}
}

func TestDrag_CarriesSelection(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.add(t, "A", "B", "C", "D")
	env.selectKeys(t, "A", "C")

	start, err := env.eng.DragStart(ctx, &DragStartRequest{Ref: "A"})
	if err != nil {
		t.Fatalf("DragStart() error = %v", err)
	}
	assertKeys(t, start.Carried, "C")
	assertKeys(t, start.Working, "A", "B", "D")

	// The document keeps its committed order until the drop.
	assertKeys(t, env.keys(t), "A", "B", "C", "D")

	status, err := env.eng.DragStatus(ctx, &DragStatusRequest{})
	if err != nil {
		t.Fatalf("DragStatus() error = %v", err)
	}
	if !status.Active || status.ActiveKey != "A" || !status.StartedAt.Equal(env.clock.Now()) {
		t.Errorf("DragStatus() = %+v", status)
	}

	end, err := env.eng.DragEnd(ctx, &DragEndRequest{Over: "D"})
	if err != nil {
		t.Fatalf("DragEnd() error = %v", err)
	}
	assertKeys(t, end.Order, "B", "D", "A", "C")
	assertKeys(t, env.keys(t), "B", "D", "A", "C")

	list, _ := env.eng.List(ctx, &ListRequest{})
	if len(list.Selection) != 0 {
		t.Errorf("selection after drop = %v, want empty", list.Selection)
	}
}

func TestDrag_UnselectedActiveClearsSelection(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.add(t, "A", "B", "C")
	env.selectKeys(t, "B")

	start, err := env.eng.DragStart(ctx, &DragStartRequest{Ref: "C"})
	if err != nil {
		t.Fatalf("DragStart() error = %v", err)
	}
	assertKeys(t, start.Carried)
	assertKeys(t, start.Working, "A", "B", "C")

	end, err := env.eng.DragEnd(ctx, &DragEndRequest{Over: "A"})
	if err != nil {
		t.Fatalf("DragEnd() error = %v", err)
	}
	assertKeys(t, end.Order, "C", "A", "B")
}

func TestDrag_NoTargetIsNoOp(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.add(t, "A", "B", "C")
	env.selectKeys(t, "A", "B")

	if _, err := env.eng.DragStart(ctx, &DragStartRequest{Ref: "A"}); err != nil {
		t.Fatalf("DragStart() error = %v", err)
	}
	end, err := env.eng.DragEnd(ctx, &DragEndRequest{})
	if err != nil {
		t.Fatalf("DragEnd() error = %v", err)
	}
	if end.Moved {
		t.Error("drop without a target should not move anything")
	}
	assertKeys(t, end.Order, "A", "B", "C")
	assertKeys(t, env.keys(t), "A", "B", "C")
}

func TestDrag_DropOnCarriedElementIsNoOp(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.add(t, "A", "B", "C")
	env.selectKeys(t, "A", "B")

	if _, err := env.eng.DragStart(ctx, &DragStartRequest{Ref: "A"}); err != nil {
		t.Fatalf("DragStart() error = %v", err)
	}
	end, err := env.eng.DragEnd(ctx, &DragEndRequest{Over: "B"})
	if err != nil {
		t.Fatalf("DragEnd() error = %v", err)
	}
	assertKeys(t, end.Order, "A", "B", "C")
}

func TestDrag_CancelKeepsSelection(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.add(t, "A", "B", "C")
	env.selectKeys(t, "C", "A")

	if _, err := env.eng.DragStart(ctx, &DragStartRequest{Ref: "A"}); err != nil {
		t.Fatalf("DragStart() error = %v", err)
	}
	res, err := env.eng.DragCancel(ctx, &DragCancelRequest{})
	if err != nil {
		t.Fatalf("DragCancel() error = %v", err)
	}
	assertKeys(t, res.Order, "A", "B", "C")
	if res.Drifted {
		t.Error("Drifted should be false")
	}
	if len(res.Selection) != 2 {
		t.Errorf("Selection = %v, want two elements", res.Selection)
	}

	list, _ := env.eng.List(ctx, &ListRequest{})
	if list.Drag != nil {
		t.Error("drag should be gone after cancel")
	}
	if list.Elements[0].Selected != true || list.Elements[2].Selected != true {
		t.Errorf("selection lost after cancel: %+v", list.Elements)
	}
}

func TestDrag_Lifecycle(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.add(t, "A", "B")

	if _, err := env.eng.DragEnd(ctx, &DragEndRequest{Over: "B"}); !errors.Is(err, ErrNoDrag) {
		t.Errorf("DragEnd() without drag error = %v, want ErrNoDrag", err)
	}
	if _, err := env.eng.DragCancel(ctx, &DragCancelRequest{}); !errors.Is(err, ErrNoDrag) {
		t.Errorf("DragCancel() without drag error = %v, want ErrNoDrag", err)
	}

	if _, err := env.eng.DragStart(ctx, &DragStartRequest{Ref: "A"}); err != nil {
		t.Fatalf("DragStart() error = %v", err)
	}
	if _, err := env.eng.DragStart(ctx, &DragStartRequest{Ref: "B"}); !errors.Is(err, ErrDragActive) {
		t.Errorf("second DragStart() error = %v, want ErrDragActive", err)
	}

	edits := map[string]func() error{
		"add":       func() error { _, err := env.eng.Add(ctx, &AddRequest{Key: "C"}); return err },
		"remove":    func() error { _, err := env.eng.Remove(ctx, &RemoveRequest{Refs: []string{"B"}}); return err },
		"rename":    func() error { _, err := env.eng.Rename(ctx, &RenameRequest{Ref: "B", Key: "b"}); return err },
		"duplicate": func() error { _, err := env.eng.Duplicate(ctx, &DuplicateRequest{Refs: []string{"B"}}); return err },
		"select":    func() error { _, err := env.eng.Select(ctx, &SelectRequest{Ref: "B", Extend: true}); return err },
		"move":      func() error { _, err := env.eng.Move(ctx, &MoveRequest{Ref: "B", Over: "A"}); return err },
		"set":       func() error { _, err := env.eng.SetField(ctx, &SetFieldRequest{Ref: "B", Path: "x", Value: "1"}); return err },
	}
	for name, edit := range edits {
		if err := edit(); !errors.Is(err, ErrDragActive) {
			t.Errorf("%s during drag error = %v, want ErrDragActive", name, err)
		}
	}

	if _, err := env.eng.DragEnd(ctx, &DragEndRequest{Over: "missing"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("DragEnd() onto unknown ref error = %v, want ErrNotFound", err)
	}
	if _, err := env.eng.DragEnd(ctx, &DragEndRequest{Over: "B"}); err != nil {
		t.Fatalf("DragEnd() error = %v", err)
	}
	assertKeys(t, env.keys(t), "B", "A")
}

// editBehindEngine rewrites the document the way another process would.
func editBehindEngine(t *testing.T, env *testEnv, mutate func(doc *document.Document)) {
	t.Helper()
	doc, _, err := env.docs.Load(env.doc)
	if err != nil {
		t.Fatal(err)
	}
	mutate(doc)
	doc.UpdatedAt = doc.UpdatedAt.Add(time.Minute)
	if _, err := env.docs.Save(env.doc, doc); err != nil {
		t.Fatal(err)
	}
}

func TestDrag_Drift(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.add(t, "A", "B", "C")

	if _, err := env.eng.DragStart(ctx, &DragStartRequest{Ref: "A"}); err != nil {
		t.Fatalf("DragStart() error = %v", err)
	}
	editBehindEngine(t, env, func(doc *document.Document) { doc.Name = "edited" })

	status, _ := env.eng.DragStatus(ctx, &DragStatusRequest{})
	if !status.Drifted {
		t.Error("DragStatus() should report drift")
	}

	if _, err := env.eng.DragEnd(ctx, &DragEndRequest{Over: "C"}); !errors.Is(err, ErrDrift) {
		t.Fatalf("DragEnd() error = %v, want ErrDrift", err)
	}
	assertKeys(t, env.keys(t), "A", "B", "C")

	end, err := env.eng.DragEnd(ctx, &DragEndRequest{Over: "C", Force: true})
	if err != nil {
		t.Fatalf("forced DragEnd() error = %v", err)
	}
	assertKeys(t, end.Order, "B", "C", "A")
	assertKeys(t, env.keys(t), "B", "C", "A")
}

func TestDrag_DriftCheckDisabled(t *testing.T) {
	env := newTestEnv(t)
	env.eng.settings.Drag.DriftCheck = false
	ctx := context.Background()
	env.add(t, "A", "B")

	if _, err := env.eng.DragStart(ctx, &DragStartRequest{Ref: "B"}); err != nil {
		t.Fatalf("DragStart() error = %v", err)
	}
	editBehindEngine(t, env, func(doc *document.Document) { doc.Name = "edited" })

	if _, err := env.eng.DragEnd(ctx, &DragEndRequest{Over: "A"}); err != nil {
		t.Fatalf("DragEnd() error = %v", err)
	}
	assertKeys(t, env.keys(t), "B", "A")
}

func TestDrag_CancelAfterDrift(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.add(t, "A", "B", "C")
	env.selectKeys(t, "A", "C")

	if _, err := env.eng.DragStart(ctx, &DragStartRequest{Ref: "A"}); err != nil {
		t.Fatalf("DragStart() error = %v", err)
	}
	editBehindEngine(t, env, func(doc *document.Document) { doc.Elements = doc.Elements[:2] })

	res, err := env.eng.DragCancel(ctx, &DragCancelRequest{})
	if err != nil {
		t.Fatalf("DragCancel() error = %v", err)
	}
	if !res.Drifted {
		t.Error("DragCancel() should report drift")
	}
	assertKeys(t, res.Order, "A", "B")
	if len(res.Selection) != 1 {
		t.Errorf("Selection = %v, want only the surviving element", res.Selection)
	}
	assertKeys(t, env.keys(t), "A", "B")
}

func TestDrag_UnknownTargetKeepsDrag(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.add(t, "A", "B", "C", "D")
	env.selectKeys(t, "A", "C")

	if _, err := env.eng.DragStart(ctx, &DragStartRequest{Ref: "A"}); err != nil {
		t.Fatalf("DragStart() error = %v", err)
	}

	if _, err := env.eng.DragEnd(ctx, &DragEndRequest{Over: "nope"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("DragEnd(unknown) error = %v, want ErrNotFound", err)
	}
	assertKeys(t, env.keys(t), "A", "B", "C", "D")

	status, err := env.eng.DragStatus(ctx, &DragStatusRequest{})
	if err != nil {
		t.Fatalf("DragStatus() error = %v", err)
	}
	if !status.Active {
		t.Fatal("drag should still be active after a missed target")
	}
	assertKeys(t, status.Carried, "C")
	assertKeys(t, status.Working, "A", "B", "D")

	// Retrying with a real target finishes the same gesture.
	end, err := env.eng.DragEnd(ctx, &DragEndRequest{Over: "D"})
	if err != nil {
		t.Fatalf("DragEnd() retry error = %v", err)
	}
	assertKeys(t, end.Order, "B", "D", "A", "C")
	assertKeys(t, env.keys(t), "B", "D", "A", "C")

	// A cancel after a miss restores the order and keeps the selection.
	env.selectKeys(t, "B", "C")
	if _, err := env.eng.DragStart(ctx, &DragStartRequest{Ref: "B"}); err != nil {
		t.Fatalf("DragStart() error = %v", err)
	}
	if _, err := env.eng.DragEnd(ctx, &DragEndRequest{Over: "zzzz"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("DragEnd(unknown) error = %v, want ErrNotFound", err)
	}
	res, err := env.eng.DragCancel(ctx, &DragCancelRequest{})
	if err != nil {
		t.Fatalf("DragCancel() error = %v", err)
	}
	assertKeys(t, res.Order, "B", "D", "A", "C")
	if len(res.Selection) != 2 {
		t.Errorf("Selection = %v, want two elements", res.Selection)
	}
	assertKeys(t, env.keys(t), "B", "D", "A", "C")
}

func TestMove(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.add(t, "A", "B", "C", "D")
	env.selectKeys(t, "B", "D")

	res, err := env.eng.Move(ctx, &MoveRequest{Ref: "B", Over: "A"})
	if err != nil {
		t.Fatalf("Move() error = %v", err)
	}
	assertKeys(t, res.Order, "B", "D", "A", "C")
	assertKeys(t, env.keys(t), "B", "D", "A", "C")

	if _, err := env.sessions.Load(state.ComputeSessionID(env.doc)); err == nil {
		t.Error("an empty session should not be kept on disk")
	}

	same, err := env.eng.Move(ctx, &MoveRequest{Ref: "A", Over: "A"})
	if err != nil {
		t.Fatalf("Move() onto itself error = %v", err)
	}
	if same.Moved {
		t.Error("moving onto itself should not change the order")
	}
}

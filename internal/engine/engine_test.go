package engine

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/danieljhkim/elemlist/internal/clock"
	"github.com/danieljhkim/elemlist/internal/config"
	"github.com/danieljhkim/elemlist/internal/document"
	"github.com/danieljhkim/elemlist/internal/element"
	"github.com/danieljhkim/elemlist/internal/fsops"
	"github.com/danieljhkim/elemlist/internal/hash"
	"github.com/danieljhkim/elemlist/internal/state"
)

type testEnv struct {
	eng      *Engine
	docs     *document.FileRepo
	sessions *state.FileSessionStore
	clock    *clock.FakeClock
	doc      string
}

// newTestEnv creates an engine over a temp directory with an empty document.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dir := t.TempDir()
	fs := fsops.NewRealFS()
	env := &testEnv{
		docs:     document.NewFileRepo(fs, hash.NewSHA256Hasher()),
		sessions: state.NewFileSessionStore(fs, filepath.Join(dir, "sessions")),
		clock:    clock.NewFakeClock(time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)),
		doc:      filepath.Join(dir, "template.json"),
	}
	settings := config.Settings{Document: env.doc}
	settings.Drag.DriftCheck = true
	env.eng = New(env.docs, env.sessions, env.clock, settings)

	if _, err := env.eng.Init(context.Background(), &InitRequest{}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	return env
}

// add appends elements with the given keys and returns their ids.
func (env *testEnv) add(t *testing.T, keys ...string) []string {
	t.Helper()
	ids := make([]string, 0, len(keys))
	for _, key := range keys {
		res, err := env.eng.Add(context.Background(), &AddRequest{Key: key})
		if err != nil {
			t.Fatalf("Add(%q) error = %v", key, err)
		}
		ids = append(ids, res.Element.ID)
	}
	return ids
}

func (env *testEnv) keys(t *testing.T) []string {
	t.Helper()
	doc, _, err := env.docs.Load(env.doc)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return doc.Keys()
}

func (env *testEnv) selectKeys(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		if _, err := env.eng.Select(context.Background(), &SelectRequest{Ref: key, Extend: true}); err != nil {
			t.Fatalf("Select(%q) error = %v", key, err)
		}
	}
}

func assertKeys(t *testing.T, got []string, want ...string) {
	t.Helper()
	if len(want) == 0 {
		want = []string{}
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("keys = %v, want %v", got, want)
	}
}

func TestInit(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	list, err := env.eng.List(ctx, &ListRequest{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if list.Name != "template" {
		t.Errorf("Name = %q, want template", list.Name)
	}
	if len(list.Elements) != 0 {
		t.Errorf("new document has %d elements", len(list.Elements))
	}

	_, err = env.eng.Init(ctx, &InitRequest{})
	if !errors.Is(err, ErrConflict) {
		t.Errorf("second Init() error = %v, want ErrConflict", err)
	}

	env.add(t, "title")
	env.selectKeys(t, "title")
	res, err := env.eng.Init(ctx, &InitRequest{Name: "fresh", Force: true})
	if err != nil {
		t.Fatalf("forced Init() error = %v", err)
	}
	if !res.Replaced || res.Name != "fresh" {
		t.Errorf("Init() = %+v, want replaced document named fresh", res)
	}
	assertKeys(t, env.keys(t))

	if _, err := env.sessions.Load(state.ComputeSessionID(env.doc)); err == nil {
		t.Error("forced Init() should clear the session")
	}
}

func TestOpen_MissingDocument(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.eng.List(context.Background(), &ListRequest{Document: filepath.Join(t.TempDir(), "nope.json")})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("List() error = %v, want ErrNotFound", err)
	}
}

func TestAdd(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.add(t, "title", "footer")

	res, err := env.eng.Add(ctx, &AddRequest{Key: "logo", Type: "image", Payload: `{"src":"logo.png"}`, After: "title"})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if res.Element.Index != 1 {
		t.Errorf("Index = %d, want 1", res.Element.Index)
	}
	assertKeys(t, env.keys(t), "title", "logo", "footer")

	// Keys may repeat; references then need an id.
	env.add(t, "title")
	assertKeys(t, env.keys(t), "title", "logo", "footer", "title")

	tests := []struct {
		name string
		req  AddRequest
		want error
	}{
		{"empty key", AddRequest{}, ErrValidation},
		{"payload not an object", AddRequest{Key: "x", Payload: `[1,2]`}, ErrValidation},
		{"payload not json", AddRequest{Key: "x", Payload: `{nope`}, ErrValidation},
		{"unknown anchor", AddRequest{Key: "x", After: "missing"}, ErrNotFound},
		{"ambiguous anchor", AddRequest{Key: "x", After: "title"}, ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			if _, err := env.eng.Add(ctx, &req); !errors.Is(err, tt.want) {
				t.Errorf("Add() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRemove(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.add(t, "a", "b", "c", "d")
	env.selectKeys(t, "b", "d")

	res, err := env.eng.Remove(ctx, &RemoveRequest{Refs: []string{"d", "a"}})
	if err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if len(res.Removed) != 2 || res.Removed[0].Key != "a" || !res.Removed[1].Selected {
		t.Errorf("Removed = %+v", res.Removed)
	}
	assertKeys(t, env.keys(t), "b", "c")

	list, _ := env.eng.List(ctx, &ListRequest{})
	if len(list.Selection) != 1 || list.Elements[0].Key != "b" || !list.Elements[0].Selected {
		t.Errorf("selection after remove = %v", list.Selection)
	}

	if _, err := env.eng.Remove(ctx, &RemoveRequest{Refs: []string{"b", "b"}}); !errors.Is(err, ErrValidation) {
		t.Errorf("Remove() with repeated ref error = %v, want ErrValidation", err)
	}
	if _, err := env.eng.Remove(ctx, &RemoveRequest{}); !errors.Is(err, ErrValidation) {
		t.Errorf("Remove() without refs error = %v, want ErrValidation", err)
	}
}

func TestRename(t *testing.T) {
	env := newTestEnv(t)
	ids := env.add(t, "title")

	res, err := env.eng.Rename(context.Background(), &RenameRequest{Ref: ids[0][:8], Key: "heading"})
	if err != nil {
		t.Fatalf("Rename() error = %v", err)
	}
	if res.OldKey != "title" || res.NewKey != "heading" {
		t.Errorf("Rename() = %+v", res)
	}
	assertKeys(t, env.keys(t), "heading")
}

func TestResolve(t *testing.T) {
	list := []element.Element{
		{ID: "aaaa-1111", Key: "title"},
		{ID: "aaaa-2222", Key: "subtitle"},
		{ID: "bbbb-3333", Key: "dup"},
		{ID: "cccc-4444", Key: "dup"},
	}

	tests := []struct {
		ref     string
		wantID  string
		wantErr error
		hint    string
	}{
		{ref: "aaaa-2222", wantID: "aaaa-2222"},
		{ref: "title", wantID: "aaaa-1111"},
		{ref: "bbbb", wantID: "bbbb-3333"},
		{ref: "aaaa", wantErr: ErrValidation},
		{ref: "dup", wantErr: ErrValidation},
		{ref: "aaa", wantErr: ErrNotFound},
		{ref: "titel", wantErr: ErrNotFound, hint: `did you mean "title"`},
		{ref: "zzzzzzzzzz", wantErr: ErrNotFound},
		{ref: " ", wantErr: ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, err := resolve(list, tt.ref)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("resolve(%q) error = %v, want %v", tt.ref, err, tt.wantErr)
				}
				if tt.hint != "" && !strings.Contains(err.Error(), tt.hint) {
					t.Errorf("resolve(%q) error = %v, want hint %q", tt.ref, err, tt.hint)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolve(%q) error = %v", tt.ref, err)
			}
			if got.ID != tt.wantID {
				t.Errorf("resolve(%q) = %s, want %s", tt.ref, got.ID, tt.wantID)
			}
		})
	}
}

func TestSettingsDefaultDocumentRequired(t *testing.T) {
	eng := &Engine{}
	if _, err := eng.documentPath(""); !errors.Is(err, ErrValidation) {
		t.Errorf("documentPath(\"\") error = %v, want ErrValidation", err)
	}
}

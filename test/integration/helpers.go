package integration

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/danieljhkim/elemlist/internal/clock"
	"github.com/danieljhkim/elemlist/internal/config"
	"github.com/danieljhkim/elemlist/internal/document"
	"github.com/danieljhkim/elemlist/internal/engine"
	"github.com/danieljhkim/elemlist/internal/fsops"
	"github.com/danieljhkim/elemlist/internal/hash"
	"github.com/danieljhkim/elemlist/internal/state"
)

const (
	testDocument = "/docs/template.json"
	testSessions = "/test/sessions"
)

// testFS is a filesystem implementation that tracks files in memory for testing
type testFS struct {
	files map[string][]byte
	dirs  map[string]bool
}

func newTestFS() *testFS {
	return &testFS{
		files: make(map[string][]byte),
		dirs:  make(map[string]bool),
	}
}

func (fs *testFS) Exists(path string) (bool, error) {
	_, hasFile := fs.files[path]
	return hasFile || fs.dirs[path], nil
}

func (fs *testFS) MkdirAll(path string, perm os.FileMode) error {
	for p := path; p != "/" && p != "."; p = filepath.Dir(p) {
		fs.dirs[p] = true
	}
	return nil
}

func (fs *testFS) Remove(path string) error {
	if _, ok := fs.files[path]; !ok {
		return os.ErrNotExist
	}
	delete(fs.files, path)
	return nil
}

func (fs *testFS) AtomicWrite(path string, data []byte, perm os.FileMode) error {
	fs.files[path] = append([]byte(nil), data...)
	return nil
}

func (fs *testFS) ReadFile(path string) ([]byte, error) {
	if content, ok := fs.files[path]; ok {
		return append([]byte(nil), content...), nil
	}
	return nil, os.ErrNotExist
}

func (fs *testFS) ListFiles(dir, ext string) ([]string, error) {
	names := []string{}
	for p := range fs.files {
		if filepath.Dir(p) == dir && strings.HasSuffix(p, ext) {
			names = append(names, filepath.Base(p))
		}
	}
	sort.Strings(names)
	return names, nil
}

func (fs *testFS) ValidateIdentifier(id string) error {
	return fsops.ValidateIdentifier(id)
}

// testEnv wires an engine to the in-memory filesystem the way the CLI
// wires one to the real filesystem.
type testEnv struct {
	fs       *testFS
	docs     *document.FileRepo
	sessions *state.FileSessionStore
	clock    *clock.FakeClock
	settings config.Settings
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	fs := newTestFS()
	env := &testEnv{
		fs:       fs,
		docs:     document.NewFileRepo(fs, hash.NewFakeHasher()),
		sessions: state.NewFileSessionStore(fs, testSessions),
		clock:    clock.NewFakeClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)),
		settings: config.Settings{
			Document: testDocument,
			Log:      config.LogSettings{Level: "error"},
			Drag:     config.DragSettings{DriftCheck: true},
		},
	}
	return env
}

// engine returns a fresh engine over the shared filesystem, like a new
// CLI invocation would.
func (env *testEnv) engine() *engine.Engine {
	return engine.New(env.docs, env.sessions, env.clock, env.settings)
}

// loadDocument reads the document straight from the filesystem.
func (env *testEnv) loadDocument(t *testing.T) *document.Document {
	t.Helper()
	doc, _, err := env.docs.Load(testDocument)
	if err != nil {
		t.Fatalf("loading document: %v", err)
	}
	return doc
}

// editDocument changes the document behind the engine's back.
func (env *testEnv) editDocument(t *testing.T, edit func(doc *document.Document)) {
	t.Helper()
	doc := env.loadDocument(t)
	edit(doc)
	if _, err := env.docs.Save(testDocument, doc); err != nil {
		t.Fatalf("saving document: %v", err)
	}
}

func (env *testEnv) keys(t *testing.T) string {
	t.Helper()
	return strings.Join(env.loadDocument(t).Keys(), ",")
}

func (env *testEnv) sessionFiles() []string {
	names, _ := env.fs.ListFiles(testSessions, ".json")
	return names
}

func mustAdd(t *testing.T, eng *engine.Engine, keys ...string) {
	t.Helper()
	for _, key := range keys {
		if _, err := eng.Add(context.Background(), &engine.AddRequest{Key: key, Payload: fmt.Sprintf(`{"label":%q}`, key)}); err != nil {
			t.Fatalf("Add(%s) error = %v", key, err)
		}
	}
}

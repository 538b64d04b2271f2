package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/elemlist/internal/element"
	"github.com/danieljhkim/elemlist/internal/fsops"
	"github.com/danieljhkim/elemlist/internal/hash"
)

// Format is the on-disk encoding of a document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor picks the encoding from the file extension.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Repo provides an interface for loading and saving documents.
type Repo interface {
	// Exists checks if a document exists at path.
	Exists(path string) (bool, error)

	// Load reads the document at path and returns it with the checksum of
	// its bytes on disk. Returns os.ErrNotExist if the document doesn't exist.
	Load(path string) (*Document, string, error)

	// Save writes doc to path atomically and returns the new checksum.
	Save(path string, doc *Document) (string, error)

	// Checksum returns the checksum of the document bytes currently on disk.
	Checksum(path string) (string, error)
}

// FileRepo implements Repo using files on disk.
type FileRepo struct {
	fs     fsops.FS
	hasher hash.Hasher
}

// NewFileRepo creates a new FileRepo.
func NewFileRepo(fs fsops.FS, hasher hash.Hasher) *FileRepo {
	return &FileRepo{
		fs:     fs,
		hasher: hasher,
	}
}

// Exists checks if a document exists at path.
func (r *FileRepo) Exists(path string) (bool, error) {
	return r.fs.Exists(path)
}

// Load reads the document at path.
func (r *FileRepo) Load(path string) (*Document, string, error) {
	data, err := r.fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", os.ErrNotExist
		}
		return nil, "", fmt.Errorf("failed to read document: %w", err)
	}

	doc, err := Decode(data, FormatFor(path))
	if err != nil {
		return nil, "", fmt.Errorf("failed to parse document %s: %w", path, err)
	}

	return doc, r.hasher.Sum(data), nil
}

// Save writes doc to path atomically.
func (r *FileRepo) Save(path string, doc *Document) (string, error) {
	data, err := Encode(doc, FormatFor(path))
	if err != nil {
		return "", fmt.Errorf("failed to encode document: %w", err)
	}

	if err := r.fs.AtomicWrite(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write document: %w", err)
	}

	return r.hasher.Sum(data), nil
}

// Checksum returns the checksum of the document bytes currently on disk.
func (r *FileRepo) Checksum(path string) (string, error) {
	data, err := r.fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", os.ErrNotExist
		}
		return "", fmt.Errorf("failed to read document: %w", err)
	}
	return r.hasher.Sum(data), nil
}

// Encode serializes doc in the given format.
func Encode(doc *Document, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(doc)
	case FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unknown document format %q", format)
	}
}

// Decode parses a document in the given format and checks its invariants.
func Decode(data []byte, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown document format %q", format)
	}

	if doc.SchemaVersion == 0 {
		doc.SchemaVersion = SchemaVersion
	}
	if doc.SchemaVersion > SchemaVersion {
		return nil, fmt.Errorf("unsupported schema version %d (max %d)", doc.SchemaVersion, SchemaVersion)
	}
	if doc.Elements == nil {
		doc.Elements = []element.Element{}
	}
	if err := compactPayloads(&doc); err != nil {
		return nil, err
	}
	if err := Validate(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks that every element has an id and that ids are unique.
func Validate(doc *Document) error {
	seen := make(map[string]bool, len(doc.Elements))
	for i, e := range doc.Elements {
		if e.ID == "" {
			return fmt.Errorf("element %d (%q) has no id", i, e.Key)
		}
		if seen[e.ID] {
			return fmt.Errorf("duplicate element id %s", e.ID)
		}
		seen[e.ID] = true
	}
	return nil
}

// compactPayloads strips the indentation the JSON encoder adds to payloads,
// so payloads compare equal however the document was written.
func compactPayloads(doc *Document) error {
	for i, e := range doc.Elements {
		if len(e.Payload) == 0 {
			continue
		}
		if string(e.Payload) == "null" {
			doc.Elements[i].Payload = nil
			continue
		}
		var buf bytes.Buffer
		if err := json.Compact(&buf, e.Payload); err != nil {
			return fmt.Errorf("element %s: invalid payload: %w", e.ID, err)
		}
		doc.Elements[i].Payload = buf.Bytes()
	}
	return nil
}

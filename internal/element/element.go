// Package element defines the items that make up a template's element list.
//
// An Element has an immutable id, a mutable display key and an arbitrary JSON
// payload. The list order of elements is the rendered order; the reorder and
// naming packages operate on slices of Element and never persist them.
package element

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Element is a single entry in a template's element list.
type Element struct {
	// ID is the unique, immutable identifier of the element
	ID string `json:"id"`

	// Key is the display name shown in the element list
	Key string `json:"key"`

	// Type is the element kind ("text", "image", ...)
	Type string `json:"type,omitempty"`

	// Payload holds the domain data of the element as a JSON object
	Payload json.RawMessage `json:"payload,omitempty"`
}

// New creates an element with a fresh id.
func New(key, typ string, payload json.RawMessage) Element {
	return Element{
		ID:      uuid.NewString(),
		Key:     key,
		Type:    typ,
		Payload: clonePayload(payload),
	}
}

// Duplicate returns a copy of e under a fresh id and the given key.
func (e Element) Duplicate(key string) Element {
	return New(key, e.Type, e.Payload)
}

// Field reads a payload value using a gjson path.
func (e Element) Field(path string) gjson.Result {
	if len(e.Payload) == 0 {
		return gjson.Result{}
	}
	return gjson.GetBytes(e.Payload, path)
}

// WithField returns a copy of e with the payload value at path replaced.
// When raw is true, value is inserted as JSON; otherwise it is stored as a string.
func (e Element) WithField(path, value string, raw bool) (Element, error) {
	if strings.TrimSpace(path) == "" {
		return e, fmt.Errorf("field path is empty")
	}

	payload := e.Payload
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}

	var (
		updated []byte
		err     error
	)
	if raw {
		if !json.Valid([]byte(value)) {
			return e, fmt.Errorf("value for %q is not valid JSON", path)
		}
		updated, err = sjson.SetRawBytes(clonePayload(payload), path, []byte(value))
	} else {
		updated, err = sjson.SetBytes(clonePayload(payload), path, value)
	}
	if err != nil {
		return e, fmt.Errorf("failed to set field %q: %w", path, err)
	}

	e.Payload = updated
	return e, nil
}

// WithoutField returns a copy of e with the payload value at path removed.
func (e Element) WithoutField(path string) (Element, error) {
	if len(e.Payload) == 0 {
		return e, nil
	}
	updated, err := sjson.DeleteBytes(clonePayload(e.Payload), path)
	if err != nil {
		return e, fmt.Errorf("failed to delete field %q: %w", path, err)
	}
	e.Payload = updated
	return e, nil
}

func clonePayload(p json.RawMessage) json.RawMessage {
	if p == nil {
		return nil
	}
	return append(json.RawMessage(nil), p...)
}

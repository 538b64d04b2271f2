package element

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// yamlElement is the YAML shape of an Element: the payload is a nested
// mapping instead of an embedded JSON string.
type yamlElement struct {
	ID      string `yaml:"id"`
	Key     string `yaml:"key"`
	Type    string `yaml:"type,omitempty"`
	Payload any    `yaml:"payload,omitempty"`
}

// MarshalYAML implements yaml.Marshaler.
func (e Element) MarshalYAML() (interface{}, error) {
	out := yamlElement{ID: e.ID, Key: e.Key, Type: e.Type}
	if len(e.Payload) > 0 {
		if err := json.Unmarshal(e.Payload, &out.Payload); err != nil {
			return nil, fmt.Errorf("element %s: invalid payload: %w", e.ID, err)
		}
	}
	return out, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *Element) UnmarshalYAML(node *yaml.Node) error {
	var in yamlElement
	if err := node.Decode(&in); err != nil {
		return err
	}

	e.ID = in.ID
	e.Key = in.Key
	e.Type = in.Type
	e.Payload = nil
	if in.Payload != nil {
		data, err := json.Marshal(in.Payload)
		if err != nil {
			return fmt.Errorf("element %s: payload is not representable as JSON: %w", in.ID, err)
		}
		e.Payload = data
	}
	return nil
}

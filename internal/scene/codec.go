package scene

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format names an on-disk scene encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
)

// FormatFor picks the encoding from a file extension. Unknown extensions
// are treated as JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	}
	return JSON
}

// Decode reads a scene in the given format, checks it against the schema
// and normalizes it. A bare shape, or a list of shapes, is wrapped into a
// declarative scene.
func Decode(r io.Reader, format Format) (*Scene, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	raw, err := toJSON(data, format)
	if err != nil {
		return nil, err
	}
	if err := ValidateSchema(raw); err != nil {
		return nil, err
	}
	s, err := unmarshalScene(raw)
	if err != nil {
		return nil, err
	}
	if err := Normalize(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Load decodes the scene file at path.
func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()
	s, err := Decode(f, FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	if s.ID == "" {
		s.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// Encode writes s in the given format.
func Encode(w io.Writer, s *Scene, format Format) error {
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// Save writes s to path, choosing the format by extension.
func Save(path string, s *Scene) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, s, FormatFor(path)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func toJSON(data []byte, format Format) ([]byte, error) {
	switch format {
	case JSON:
		return data, nil
	case YAML:
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSchema, err)
		}
		out, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSchema, err)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func unmarshalScene(raw []byte) (*Scene, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var shapes []Shape
		if err := json.Unmarshal(trimmed, &shapes); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSchema, err)
		}
		return &Scene{Shapes: shapes}, nil
	}

	var probe struct {
		Type   *string         `json:"type"`
		Frames json.RawMessage `json:"frames"`
		Shapes json.RawMessage `json:"shapes"`
	}
	if err := json.Unmarshal(trimmed, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchema, err)
	}
	if probe.Type != nil && probe.Frames == nil && probe.Shapes == nil {
		var sh Shape
		if err := json.Unmarshal(trimmed, &sh); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSchema, err)
		}
		return &Scene{ID: sh.ID, Shapes: []Shape{sh}}, nil
	}

	var s Scene
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchema, err)
	}
	return &s, nil
}

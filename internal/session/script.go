package session

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// NodeSpec is the serialized form of one node.
type NodeSpec struct {
	Name     string            `yaml:"name"`
	Class    string            `yaml:"class"`
	X        int               `yaml:"x"`
	Y        int               `yaml:"y"`
	Width    int               `yaml:"width,omitempty"`
	Height   int               `yaml:"height,omitempty"`
	Knobs    map[string]string `yaml:"knobs,omitempty"`
	Inputs   []string          `yaml:"inputs,omitempty"`
	Selected bool              `yaml:"selected,omitempty"`
}

// Script is a serialized node graph.
type Script struct {
	Nodes []NodeSpec `yaml:"nodes"`
}

var ErrUnknownInput = errors.New("input refers to an undeclared node")

// ParseScript decodes a YAML script. An empty document is a valid script
// with no nodes.
func ParseScript(data []byte) (Script, error) {
	var sc Script
	if len(bytes.TrimSpace(data)) == 0 {
		return sc, nil
	}
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return Script{}, fmt.Errorf("session: parse script: %w", err)
	}
	return sc, nil
}

// ReadScript reads and decodes the script at path.
func ReadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("session: read script: %w", err)
	}
	return ParseScript(data)
}

// Marshal encodes the session's current graph.
func (s *Session) Marshal() ([]byte, error) {
	sc := Script{Nodes: make([]NodeSpec, 0, len(s.nodes))}
	for _, n := range s.nodes {
		spec := NodeSpec{
			Name:     n.name,
			Class:    n.class,
			X:        n.x,
			Y:        n.y,
			Width:    n.w,
			Height:   n.h,
			Selected: n.selected,
		}
		if len(n.knobs) > 0 {
			spec.Knobs = make(map[string]string, len(n.knobs))
			for k, v := range n.knobs {
				spec.Knobs[k] = v
			}
		}
		for _, in := range n.inputs {
			name := ""
			if in != nil {
				name = in.name
			}
			spec.Inputs = append(spec.Inputs, name)
		}
		sc.Nodes = append(sc.Nodes, spec)
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(sc); err != nil {
		return nil, fmt.Errorf("session: encode script: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("session: encode script: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes the session's current graph to path.
func (s *Session) Save(path string) error {
	data, err := s.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("session: write script: %w", err)
	}
	return nil
}

package session

import "github.com/backmassage/camswap/internal/nodegraph"

// node is the session's nodegraph.Node implementation.
type node struct {
	s        *Session
	name     string
	class    string
	x, y     int
	w, h     int
	knobs    map[string]string
	inputs   []*node
	selected bool
}

func (n *node) Name() string         { return n.name }
func (n *node) Class() string        { return n.class }
func (n *node) Position() (int, int) { return n.x, n.y }
func (n *node) SetPosition(x, y int) { n.x, n.y = x, y }
func (n *node) MaxInputs() int       { return len(n.inputs) }
func (n *node) SetSelected(v bool)   { n.selected = v }

func (n *node) Input(i int) nodegraph.Node {
	if i < 0 || i >= len(n.inputs) || n.inputs[i] == nil {
		return nil
	}
	return n.inputs[i]
}

// SetInput grows the slot list when i is past the end. Sources that are not
// session nodes disconnect the slot.
func (n *node) SetInput(i int, src nodegraph.Node) {
	if i < 0 {
		return
	}
	for len(n.inputs) <= i {
		n.inputs = append(n.inputs, nil)
	}
	sn, _ := src.(*node)
	n.inputs[i] = sn
}

func (n *node) Dependencies() []nodegraph.Node {
	var out []nodegraph.Node
	seen := make(map[*node]bool)
	for _, in := range n.inputs {
		if in == nil || seen[in] {
			continue
		}
		seen[in] = true
		out = append(out, in)
	}
	return out
}

func (n *node) Dependents() []nodegraph.Node {
	var out []nodegraph.Node
	for _, other := range n.s.nodes {
		for _, in := range other.inputs {
			if in == n {
				out = append(out, other)
				break
			}
		}
	}
	return out
}

func (n *node) Knob(name string) string { return n.knobs[name] }

// contains reports whether (x, y) lies inside the node's rectangle.
func (n *node) contains(x, y int) bool {
	return x >= n.x && x <= n.x+n.w && y >= n.y && y <= n.y+n.h
}

package session

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/backmassage/camswap/internal/nodegraph"
)

// Session is a live in-memory node graph.
type Session struct {
	nodes  []*node
	byName map[string]*node
}

var _ nodegraph.Host = (*Session)(nil)

// New returns an empty session.
func New() *Session {
	return &Session{byName: make(map[string]*node)}
}

// Load reads the script at path into a new session.
func Load(path string) (*Session, error) {
	sc, err := ReadScript(path)
	if err != nil {
		return nil, err
	}
	s := New()
	if _, err := s.add(sc, false); err != nil {
		return nil, err
	}
	return s, nil
}

// FromScript builds a session from an already decoded script.
func FromScript(sc Script) (*Session, error) {
	s := New()
	if _, err := s.add(sc, false); err != nil {
		return nil, err
	}
	return s, nil
}

// Add inserts a single node without inputs and returns it. The name is made
// unique when it collides.
func (s *Session) Add(spec NodeSpec) nodegraph.Node {
	return s.insert(spec)
}

// Node looks a live node up by name.
func (s *Session) Node(name string) nodegraph.Node {
	if n, ok := s.byName[name]; ok {
		return n
	}
	return nil
}

// add inserts every node of sc, wiring inputs by name within sc. Names that
// collide with live nodes are renamed, and references inside sc follow the
// rename. When pasted is set the new nodes are selected.
func (s *Session) add(sc Script, pasted bool) ([]*node, error) {
	local := make(map[string]*node, len(sc.Nodes))
	added := make([]*node, 0, len(sc.Nodes))
	for _, spec := range sc.Nodes {
		if spec.Name != "" {
			if _, dup := local[spec.Name]; dup {
				s.remove(added)
				return nil, fmt.Errorf("session: duplicate node name %q", spec.Name)
			}
		}
		n := s.insert(spec)
		if pasted {
			n.selected = true
		}
		if spec.Name != "" {
			local[spec.Name] = n
		}
		added = append(added, n)
	}
	for i, spec := range sc.Nodes {
		n := added[i]
		n.inputs = make([]*node, len(spec.Inputs))
		for slot, ref := range spec.Inputs {
			if ref == "" {
				continue
			}
			src, ok := local[ref]
			if !ok {
				s.remove(added)
				return nil, fmt.Errorf("session: %s input %d %q: %w", n.name, slot, ref, ErrUnknownInput)
			}
			n.inputs[slot] = src
		}
	}
	return added, nil
}

func (s *Session) insert(spec NodeSpec) *node {
	name := spec.Name
	if name == "" {
		name = spec.Class + "1"
	}
	name = s.uniqueName(name)
	n := &node{
		s:        s,
		name:     name,
		class:    spec.Class,
		x:        spec.X,
		y:        spec.Y,
		w:        spec.Width,
		h:        spec.Height,
		knobs:    make(map[string]string, len(spec.Knobs)),
		selected: spec.Selected,
	}
	for k, v := range spec.Knobs {
		n.knobs[k] = v
	}
	s.nodes = append(s.nodes, n)
	s.byName[name] = n
	return n
}

// uniqueName bumps the trailing number of name until it is free:
// Camera1 → Camera2, Grade → Grade1.
func (s *Session) uniqueName(name string) string {
	if _, taken := s.byName[name]; !taken {
		return name
	}
	stem := strings.TrimRight(name, "0123456789")
	n, _ := strconv.Atoi(name[len(stem):])
	for {
		n++
		candidate := stem + strconv.Itoa(n)
		if _, taken := s.byName[candidate]; !taken {
			return candidate
		}
	}
}

func (s *Session) remove(nodes []*node) {
	for _, n := range nodes {
		s.Delete(n)
	}
}

// --- nodegraph.Host ---

func (s *Session) Nodes() []nodegraph.Node {
	out := make([]nodegraph.Node, len(s.nodes))
	for i, n := range s.nodes {
		out[i] = n
	}
	return out
}

func (s *Session) Selected() []nodegraph.Node {
	var out []nodegraph.Node
	for _, n := range s.nodes {
		if n.selected {
			out = append(out, n)
		}
	}
	return out
}

func (s *Session) ClearSelection() {
	for _, n := range s.nodes {
		n.selected = false
	}
}

// Backdrop returns the first backdrop, in session order, whose rectangle
// contains n's position.
func (s *Session) Backdrop(n nodegraph.Node) nodegraph.Node {
	sn, ok := n.(*node)
	if !ok || !s.Exists(sn) {
		return nil
	}
	for _, bd := range s.nodes {
		if bd == sn || bd.class != nodegraph.ClassBackdrop {
			continue
		}
		if bd.contains(sn.x, sn.y) {
			return bd
		}
	}
	return nil
}

func (s *Session) BackdropNodes(backdrop nodegraph.Node) []nodegraph.Node {
	bd, ok := backdrop.(*node)
	if !ok || !s.Exists(bd) {
		return nil
	}
	var out []nodegraph.Node
	for _, n := range s.nodes {
		if n != bd && bd.contains(n.x, n.y) {
			out = append(out, n)
		}
	}
	return out
}

func (s *Session) Exists(n nodegraph.Node) bool {
	sn, ok := n.(*node)
	if !ok || sn == nil {
		return false
	}
	return s.byName[sn.name] == sn
}

// Delete removes n and disconnects every slot it fed.
func (s *Session) Delete(n nodegraph.Node) {
	sn, ok := n.(*node)
	if !ok || !s.Exists(sn) {
		return
	}
	for i, cur := range s.nodes {
		if cur == sn {
			s.nodes = append(s.nodes[:i], s.nodes[i+1:]...)
			break
		}
	}
	delete(s.byName, sn.name)
	for _, other := range s.nodes {
		for i, in := range other.inputs {
			if in == sn {
				other.inputs[i] = nil
			}
		}
	}
	sn.selected = false
}

// Paste imports the script at path and returns its last declared node. The
// imported nodes are selected. An empty script returns (nil, nil).
func (s *Session) Paste(path string) (nodegraph.Node, error) {
	sc, err := ReadScript(path)
	if err != nil {
		return nil, err
	}
	added, err := s.add(sc, true)
	if err != nil {
		return nil, err
	}
	if len(added) == 0 {
		return nil, nil
	}
	return added[len(added)-1], nil
}

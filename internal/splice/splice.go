// Package splice substitutes a placeholder camera with the camera found in
// an imported node script, keeping every downstream connection.
//
// A splice is all or nothing: when the import yields no node, or no camera
// sits upstream of the import root, everything the import created is removed
// again and the session is left exactly as it was.
package splice

import (
	"errors"
	"fmt"

	"github.com/backmassage/camswap/internal/nodegraph"
)

var (
	ErrImportFailed   = errors.New("import yielded no node")
	ErrCameraNotFound = errors.New("no camera upstream of import root")
)

// Splicer performs camera substitutions against a host session.
type Splicer struct {
	host nodegraph.Host
}

// New returns a Splicer bound to host.
func New(host nodegraph.Host) *Splicer {
	return &Splicer{host: host}
}

type nodeSet map[nodegraph.Node]bool

func setOf(nodes []nodegraph.Node) nodeSet {
	s := make(nodeSet, len(nodes))
	for _, n := range nodes {
		s[n] = true
	}
	return s
}

// FindUpstreamCamera walks dependencies breadth-first from start and
// returns the first Camera node. When destructive is set every visited
// non-camera node is deleted once its dependencies have been queued; those
// deletions stand even when no camera is found.
func FindUpstreamCamera(host nodegraph.Host, start nodegraph.Node, destructive bool) (nodegraph.Node, bool) {
	return findUpstreamCamera(host, start, destructive, nil)
}

// findUpstreamCamera restricts the walk to scope when scope is non-nil.
func findUpstreamCamera(host nodegraph.Host, start nodegraph.Node, destructive bool, scope nodeSet) (nodegraph.Node, bool) {
	queue := []nodegraph.Node{start}
	visited := make(nodeSet)
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n == nil || visited[n] {
			continue
		}
		if scope != nil && !scope[n] {
			continue
		}
		visited[n] = true

		if n.Class() == nodegraph.ClassCamera {
			return n, true
		}
		queue = append(queue, n.Dependencies()...)
		if destructive {
			host.Delete(n)
		}
	}
	return nil, false
}

// Replace swaps oldCamera for the camera imported from path:
//
//  1. capture the (consumer, slot) pairs fed by oldCamera and its position;
//  2. import path;
//  3. nothing imported → ErrImportFailed;
//  4. destructive camera search from the import root, limited to imported
//     nodes; nothing found → ErrCameraNotFound;
//  5. move the new camera into place, drop imported nodes downstream of
//     it, delete oldCamera and reconnect the captured pairs.
//
// On either error the session, selection included, is unchanged.
func (s *Splicer) Replace(oldCamera nodegraph.Node, path string) (nodegraph.Node, error) {
	outputs := nodegraph.Outputs(oldCamera)
	x, y := oldCamera.Position()

	selection := s.host.Selected()
	before := setOf(s.host.Nodes())

	// Pasting connects to the selection in a live host.
	s.host.ClearSelection()
	root, err := s.host.Paste(path)
	imported := s.importedSince(before)

	if err != nil {
		s.abort(imported, selection)
		return nil, fmt.Errorf("%w: %s: %v", ErrImportFailed, path, err)
	}
	if root == nil {
		s.abort(imported, selection)
		return nil, fmt.Errorf("%w: %s", ErrImportFailed, path)
	}

	scope := setOf(imported)
	camera, ok := findUpstreamCamera(s.host, root, true, scope)
	if !ok {
		s.abort(imported, selection)
		return nil, fmt.Errorf("%w: %s", ErrCameraNotFound, path)
	}

	camera.SetPosition(x, y)
	s.deleteDownstream(camera, scope)
	s.host.Delete(oldCamera)
	for _, c := range outputs {
		c.Consumer.SetInput(c.Slot, camera)
	}
	return camera, nil
}

// importedSince lists live nodes absent from before, in host order.
func (s *Splicer) importedSince(before nodeSet) []nodegraph.Node {
	var out []nodegraph.Node
	for _, n := range s.host.Nodes() {
		if !before[n] {
			out = append(out, n)
		}
	}
	return out
}

// abort removes what an import left behind and puts the selection back.
func (s *Splicer) abort(imported, selection []nodegraph.Node) {
	for _, n := range imported {
		if s.host.Exists(n) {
			s.host.Delete(n)
		}
	}
	s.host.ClearSelection()
	for _, n := range selection {
		if s.host.Exists(n) {
			n.SetSelected(true)
		}
	}
}

// deleteDownstream removes every imported node reachable downstream of
// camera.
func (s *Splicer) deleteDownstream(camera nodegraph.Node, scope nodeSet) {
	var doomed []nodegraph.Node
	seen := nodeSet{camera: true}
	queue := camera.Dependents()
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if seen[n] || !scope[n] {
			continue
		}
		seen[n] = true
		doomed = append(doomed, n)
		queue = append(queue, n.Dependents()...)
	}
	for _, n := range doomed {
		s.host.Delete(n)
	}
}

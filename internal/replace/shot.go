package replace

import (
	"strings"

	"github.com/backmassage/camswap/internal/nodegraph"
	"github.com/backmassage/camswap/internal/shot"
)

// GroupByContainer returns the distinct backdrops enclosing nodes, in the
// order they are first reached. Nodes outside every backdrop are dropped.
func GroupByContainer(host nodegraph.Host, nodes []nodegraph.Node) []nodegraph.Node {
	var out []nodegraph.Node
	seen := make(map[nodegraph.Node]bool)
	for _, n := range nodes {
		if n == nil {
			continue
		}
		bd := host.Backdrop(n)
		if bd == nil || seen[bd] {
			continue
		}
		seen[bd] = true
		out = append(out, bd)
	}
	return out
}

// ReadPaths returns the distinct file paths of the Read nodes inside
// backdrop, in host order.
func ReadPaths(host nodegraph.Host, backdrop nodegraph.Node) []string {
	var paths []string
	seen := make(map[string]bool)
	for _, n := range nodegraph.Filter(host.BackdropNodes(backdrop), nodegraph.ClassRead) {
		p := strings.TrimSpace(n.Knob(nodegraph.KnobFile))
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		paths = append(paths, p)
	}
	return paths
}

// IdentifyShot extracts the shot identity of a backdrop from its most
// relevant Read path. Only the best-scoring path is parsed.
func IdentifyShot(host nodegraph.Host, backdrop nodegraph.Node) (shot.Identity, bool) {
	best, ok := shot.SelectBest(ReadPaths(host, backdrop))
	if !ok {
		return shot.Identity{}, false
	}
	return shot.Extract(best)
}

// Cameras returns the Camera nodes inside backdrop.
func Cameras(host nodegraph.Host, backdrop nodegraph.Node) []nodegraph.Node {
	return nodegraph.Filter(host.BackdropNodes(backdrop), nodegraph.ClassCamera)
}

// Package nodegraph declares the contract consumed from the host
// compositing runtime. Nodes are opaque handles owned by the host; callers
// compare them by identity and never copy or persist them.
package nodegraph

// Node classes the replacement logic cares about.
const (
	ClassCamera   = "Camera"
	ClassRead     = "Read"
	ClassBackdrop = "BackdropNode"
)

// KnobFile is the knob holding a Read node's file path.
const KnobFile = "file"

// Node is a host graph node.
type Node interface {
	Name() string
	Class() string
	Position() (x, y int)
	SetPosition(x, y int)

	// MaxInputs is the number of input slots.
	MaxInputs() int
	// Input returns the node connected to slot i, or nil.
	Input(i int) Node
	// SetInput connects src to slot i; nil disconnects.
	SetInput(i int, src Node)

	// Dependencies are the connected upstream nodes, in slot order.
	Dependencies() []Node
	// Dependents are the nodes consuming this node's output.
	Dependents() []Node

	// Knob returns the string value of a knob, or "".
	Knob(name string) string
	SetSelected(selected bool)
}

// Host is the active compositing session. It is single-writer: nothing else
// mutates the graph while a replacement run is in progress.
type Host interface {
	// Nodes returns every live node.
	Nodes() []Node
	// Selected returns the currently selected nodes.
	Selected() []Node
	ClearSelection()

	// Backdrop returns the backdrop enclosing n, or nil.
	Backdrop(n Node) Node
	// BackdropNodes returns the nodes enclosed by backdrop.
	BackdropNodes(backdrop Node) []Node

	// Exists reports whether n is still part of the session.
	Exists(n Node) bool
	// Delete removes n and disconnects it from its dependents.
	Delete(n Node)
	// Paste imports the node script at path and returns its root node.
	// A readable but empty script yields (nil, nil).
	Paste(path string) (Node, error)
}

// Outputs returns every (consumer, slot) pair currently fed by n.
func Outputs(n Node) []Connection {
	var out []Connection
	for _, dep := range n.Dependents() {
		for i := 0; i < dep.MaxInputs(); i++ {
			if dep.Input(i) == n {
				out = append(out, Connection{Consumer: dep, Slot: i})
			}
		}
	}
	return out
}

// Connection is one consumer input slot.
type Connection struct {
	Consumer Node
	Slot     int
}

// Filter returns the nodes of class cls, keeping order.
func Filter(nodes []Node, cls string) []Node {
	var out []Node
	for _, n := range nodes {
		if n != nil && n.Class() == cls {
			out = append(out, n)
		}
	}
	return out
}

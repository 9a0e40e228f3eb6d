// Package mesh holds the node and panel store shared by all surfaces, plus
// the geometric primitives built on top of it.
package mesh

import (
	"errors"
	"fmt"
)

// ErrUnknownID reports a node or panel id with no backing storage.
var ErrUnknownID = errors.New("unknown id")

// Mesh owns node positions and panel connectivity. Nodes and panels are
// addressed by the integer ids returned from AddNode and AddPanel. A Mesh is
// safe for concurrent readers as long as no writer runs at the same time; it
// performs no internal locking.
type Mesh struct {
	nodes  []Vector3
	panels [][]int
}

func New() *Mesh {
	return &Mesh{}
}

// AddNode appends a node and returns its id.
func (m *Mesh) AddNode(p Vector3) int {
	m.nodes = append(m.nodes, p)
	return len(m.nodes) - 1
}

// AddPanel appends a panel from an ordered node-id tuple and returns its id.
// All referenced nodes must already exist.
func (m *Mesh) AddPanel(nodeIDs ...int) (int, error) {
	for _, id := range nodeIDs {
		if id < 0 || id >= len(m.nodes) {
			return 0, fmt.Errorf("mesh: panel references node %d: %w", id, ErrUnknownID)
		}
	}
	panel := make([]int, len(nodeIDs))
	copy(panel, nodeIDs)
	m.panels = append(m.panels, panel)
	return len(m.panels) - 1, nil
}

func (m *Mesh) NodeCount() int { return len(m.nodes) }

func (m *Mesh) PanelCount() int { return len(m.panels) }

// Node returns the position of the given node.
func (m *Mesh) Node(id int) (Vector3, error) {
	if id < 0 || id >= len(m.nodes) {
		return Vector3{}, fmt.Errorf("mesh: node %d: %w", id, ErrUnknownID)
	}
	return m.nodes[id], nil
}

// Panel returns the ordered node ids of the given panel. The returned slice
// is owned by the mesh and must not be modified.
func (m *Mesh) Panel(id int) ([]int, error) {
	if id < 0 || id >= len(m.panels) {
		return nil, fmt.Errorf("mesh: panel %d: %w", id, ErrUnknownID)
	}
	return m.panels[id], nil
}

// MoveNode replaces the position of an existing node. Used by time-stepping
// callers that deform the mesh between queries.
func (m *Mesh) MoveNode(id int, p Vector3) error {
	if id < 0 || id >= len(m.nodes) {
		return fmt.Errorf("mesh: node %d: %w", id, ErrUnknownID)
	}
	m.nodes[id] = p
	return nil
}

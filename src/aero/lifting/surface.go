// Package lifting implements the trailing-edge topology, geometry and wake
// emission kinematics of a lifting surface in an unsteady potential-flow
// panel method.
package lifting

import (
	"errors"
	"fmt"

	"github.com/octwanna/vortexje/src/mesh"
)

var (
	// ErrInvalidIndex reports a spanwise or chordwise index outside the
	// surface's grids.
	ErrInvalidIndex = errors.New("index out of range")

	// ErrDegenerateGeometry reports mesh geometry for which the requested
	// quantity is undefined, such as a zero-length tangent or anti-parallel
	// trailing-edge tangents.
	ErrDegenerateGeometry = errors.New("degenerate geometry")
)

// Surface is a lifting surface: a mesh partitioned into an upper and a lower
// half, each described by a structured grid of node ids and a grid of panel
// ids. Rows run chordwise from leading to trailing edge, columns run
// spanwise. The last chordwise row is the trailing edge.
//
// The upper and lower trailing-edge node ids at the same spanwise column may
// coincide (closed trailing edge) or differ (finite-thickness gap); callers
// must not assume closure.
type Surface struct {
	Mesh *mesh.Mesh

	UpperNodes  mesh.Grid
	LowerNodes  mesh.Grid
	UpperPanels mesh.Grid
	LowerPanels mesh.Grid
}

// NewSurface validates grid dimensions and returns the surface. The upper
// and lower node grids must have equal, non-empty dimensions, and each panel
// grid must have one row and one column fewer than its node grid.
func NewSurface(m *mesh.Mesh, upperNodes, lowerNodes, upperPanels, lowerPanels mesh.Grid) (*Surface, error) {
	if m == nil {
		return nil, errors.New("lifting: nil mesh")
	}
	if upperNodes.Rows() < 1 || upperNodes.Cols() < 1 {
		return nil, fmt.Errorf("lifting: empty node grid %dx%d", upperNodes.Rows(), upperNodes.Cols())
	}
	if lowerNodes.Rows() != upperNodes.Rows() || lowerNodes.Cols() != upperNodes.Cols() {
		return nil, fmt.Errorf("lifting: node grid mismatch: upper %dx%d, lower %dx%d",
			upperNodes.Rows(), upperNodes.Cols(), lowerNodes.Rows(), lowerNodes.Cols())
	}
	for _, panels := range []mesh.Grid{upperPanels, lowerPanels} {
		if panels.Rows() != upperNodes.Rows()-1 || panels.Cols() != upperNodes.Cols()-1 {
			return nil, fmt.Errorf("lifting: panel grid %dx%d does not bridge node grid %dx%d",
				panels.Rows(), panels.Cols(), upperNodes.Rows(), upperNodes.Cols())
		}
	}
	return &Surface{
		Mesh:        m,
		UpperNodes:  upperNodes,
		LowerNodes:  lowerNodes,
		UpperPanels: upperPanels,
		LowerPanels: lowerPanels,
	}, nil
}

// ChordwiseNodeCount returns the number of chordwise node rows.
func (s *Surface) ChordwiseNodeCount() int { return s.UpperNodes.Rows() }

// ChordwisePanelCount returns the number of chordwise panel rows.
func (s *Surface) ChordwisePanelCount() int { return s.UpperPanels.Rows() }

// SpanwiseNodeCount returns the number of spanwise node columns.
func (s *Surface) SpanwiseNodeCount() int { return s.UpperNodes.Cols() }

// SpanwisePanelCount returns the number of spanwise panel columns.
func (s *Surface) SpanwisePanelCount() int { return s.UpperPanels.Cols() }

// TrailingEdgeNode returns the node id at spanwise station i on the trailing
// edge. The id comes from the upper grid; on a finite-thickness trailing
// edge the lower grid's last row may name a different node.
func (s *Surface) TrailingEdgeNode(i int) (int, error) {
	if i < 0 || i >= s.SpanwiseNodeCount() {
		return 0, fmt.Errorf("lifting: trailing-edge node %d of %d: %w", i, s.SpanwiseNodeCount(), ErrInvalidIndex)
	}
	return s.UpperNodes.At(s.UpperNodes.Rows()-1, i), nil
}

// TrailingEdgeUpperPanel returns the upper-half panel id at spanwise panel
// station i on the trailing edge.
func (s *Surface) TrailingEdgeUpperPanel(i int) (int, error) {
	if i < 0 || i >= s.SpanwisePanelCount() {
		return 0, fmt.Errorf("lifting: trailing-edge upper panel %d of %d: %w", i, s.SpanwisePanelCount(), ErrInvalidIndex)
	}
	return s.UpperPanels.At(s.UpperPanels.Rows()-1, i), nil
}

// TrailingEdgeLowerPanel returns the lower-half panel id at spanwise panel
// station i on the trailing edge.
func (s *Surface) TrailingEdgeLowerPanel(i int) (int, error) {
	if i < 0 || i >= s.SpanwisePanelCount() {
		return 0, fmt.Errorf("lifting: trailing-edge lower panel %d of %d: %w", i, s.SpanwisePanelCount(), ErrInvalidIndex)
	}
	return s.LowerPanels.At(s.LowerPanels.Rows()-1, i), nil
}

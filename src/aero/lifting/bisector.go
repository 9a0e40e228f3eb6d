package lifting

import (
	"fmt"

	"github.com/octwanna/vortexje/src/mesh"
)

// TrailingEdgeBisector returns the unit vector bisecting the upper and lower
// chordwise tangents at spanwise station i. The tangents are taken between
// the last two chordwise node rows, so the surface needs at least two.
//
// Recomputed from current node positions on every call; nothing is cached.
// Returns ErrDegenerateGeometry when a tangent has near-zero length or the
// two unit tangents are anti-parallel, since the bisector is undefined in
// both cases.
func (s *Surface) TrailingEdgeBisector(i int) (mesh.Vector3, error) {
	if i < 0 || i >= s.SpanwiseNodeCount() {
		return mesh.Vector3{}, fmt.Errorf("lifting: bisector at station %d of %d: %w", i, s.SpanwiseNodeCount(), ErrInvalidIndex)
	}
	last := s.UpperNodes.Rows() - 1
	if last < 1 {
		return mesh.Vector3{}, fmt.Errorf("lifting: bisector needs at least 2 chordwise rows: %w", ErrDegenerateGeometry)
	}

	upper, err := s.chordwiseTangent(s.UpperNodes, last, i)
	if err != nil {
		return mesh.Vector3{}, fmt.Errorf("lifting: upper tangent at station %d: %w", i, err)
	}
	lower, err := s.chordwiseTangent(s.LowerNodes, last, i)
	if err != nil {
		return mesh.Vector3{}, fmt.Errorf("lifting: lower tangent at station %d: %w", i, err)
	}

	bisector, ok := upper.Add(lower).Unit()
	if !ok {
		// Anti-parallel unit tangents sum to zero.
		return mesh.Vector3{}, fmt.Errorf("lifting: anti-parallel tangents at station %d: %w", i, ErrDegenerateGeometry)
	}
	return bisector, nil
}

// chordwiseTangent returns the unit tangent between the last two chordwise
// rows of the given node grid at spanwise column i.
func (s *Surface) chordwiseTangent(nodes mesh.Grid, last, i int) (mesh.Vector3, error) {
	aft, err := s.Mesh.Node(nodes.At(last, i))
	if err != nil {
		return mesh.Vector3{}, err
	}
	fore, err := s.Mesh.Node(nodes.At(last-1, i))
	if err != nil {
		return mesh.Vector3{}, err
	}
	tangent, ok := aft.Sub(fore).Unit()
	if !ok {
		return mesh.Vector3{}, fmt.Errorf("zero-length tangent: %w", ErrDegenerateGeometry)
	}
	return tangent, nil
}

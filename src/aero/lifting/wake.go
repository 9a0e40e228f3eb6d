package lifting

import (
	"fmt"

	"github.com/octwanna/vortexje/src/mesh"
)

// Emitter computes the convection velocity used to place newly shed wake
// nodes. The emission policy is fixed at construction so independent
// simulation runs can use different settings concurrently.
type Emitter struct {
	followBisector bool
}

// NewEmitter returns an Emitter. With followBisector set, emission follows
// the trailing-edge bisector (Mode A) whenever the surface has more than one
// chordwise node row; otherwise the wake is emitted directly against the
// apparent velocity (Mode B).
func NewEmitter(followBisector bool) *Emitter {
	return &Emitter{followBisector: followBisector}
}

// FollowsBisector reports the configured policy.
func (e *Emitter) FollowsBisector() bool { return e.followBisector }

// Velocity returns the wake emission velocity at trailing-edge spanwise
// station i for the given apparent velocity. The caller advects the new wake
// node as nodePosition + Velocity(...) * dt.
//
// In bisector-following mode the apparent velocity is projected onto the
// plane spanned by the local span direction and the bisector, then negated.
// A surface with a single spanwise station has no span direction, so the
// projection collapses onto the bisector line. The direct mode returns the
// negated apparent velocity unchanged.
func (e *Emitter) Velocity(s *Surface, apparent mesh.Vector3, i int) (mesh.Vector3, error) {
	if i < 0 || i >= s.SpanwiseNodeCount() {
		return mesh.Vector3{}, fmt.Errorf("lifting: emission at station %d of %d: %w", i, s.SpanwiseNodeCount(), ErrInvalidIndex)
	}

	if !e.followBisector || s.ChordwiseNodeCount() <= 1 {
		return apparent.Neg(), nil
	}

	// Clamp the neighbor stations at the span boundaries; no wraparound.
	prev := i
	if i > 0 {
		prev = i - 1
	}
	next := i
	if i < s.SpanwiseNodeCount()-1 {
		next = i + 1
	}
	prevNode, err := s.TrailingEdgeNode(prev)
	if err != nil {
		return mesh.Vector3{}, err
	}
	nextNode, err := s.TrailingEdgeNode(next)
	if err != nil {
		return mesh.Vector3{}, err
	}

	bisector, err := s.TrailingEdgeBisector(i)
	if err != nil {
		return mesh.Vector3{}, err
	}

	if prevNode == nextNode {
		// Single spanwise station: project onto the bisector line.
		return bisector.Scale(apparent.Dot(bisector)).Neg(), nil
	}

	prevPos, err := s.Mesh.Node(prevNode)
	if err != nil {
		return mesh.Vector3{}, err
	}
	nextPos, err := s.Mesh.Node(nextNode)
	if err != nil {
		return mesh.Vector3{}, err
	}
	spanDirection := nextPos.Sub(prevPos)

	wakeNormal, ok := spanDirection.Cross(bisector).Unit()
	if !ok {
		return mesh.Vector3{}, fmt.Errorf("lifting: span direction collinear with bisector at station %d: %w", i, ErrDegenerateGeometry)
	}
	projected := apparent.Sub(wakeNormal.Scale(apparent.Dot(wakeNormal)))
	return projected.Neg(), nil
}

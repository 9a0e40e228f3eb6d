// Package boundary defines the boundary-layer contract consumed by the
// solver and force-integration stages.
package boundary

import (
	"gonum.org/v1/gonum/mat"

	"github.com/octwanna/vortexje/src/mesh"
)

// Layer is a boundary-layer strategy. Recalculate updates internal state
// from an (n x 3) matrix of per-panel surface velocities; BlowingVelocity
// and Friction are then queried per panel by the solver.
type Layer interface {
	Recalculate(surfaceVelocities *mat.Dense)
	BlowingVelocity(panel int) float64
	Friction(panel int) mesh.Vector3
}

// NoOp is the default "no boundary layer" strategy: it keeps no state and
// reports zero blowing velocity and zero friction for every panel.
type NoOp struct{}

var _ Layer = NoOp{}

func (NoOp) Recalculate(*mat.Dense) {}

func (NoOp) BlowingVelocity(int) float64 { return 0 }

func (NoOp) Friction(int) mesh.Vector3 { return mesh.Vector3{} }

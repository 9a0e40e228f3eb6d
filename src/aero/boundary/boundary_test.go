package boundary

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/octwanna/vortexje/src/mesh"
)

func TestNoOp(t *testing.T) {
	var layer Layer = NoOp{}

	velocities := mat.NewDense(4, 3, []float64{
		1, 0, 0,
		0, 2, 0,
		0, 0, 3,
		-1, -2, -3,
	})
	layer.Recalculate(velocities)
	layer.Recalculate(nil)

	for _, panel := range []int{0, 1, 2, 3, 100, -1} {
		t.Run(fmt.Sprintf("panel=%d", panel), func(t *testing.T) {
			require.Equal(t, 0.0, layer.BlowingVelocity(panel))
			require.Equal(t, mesh.Vector3{}, layer.Friction(panel))
		})
	}
}

func TestNoOpStateless(t *testing.T) {
	layer := NoOp{}

	before := layer.BlowingVelocity(0)
	layer.Recalculate(mat.NewDense(1, 3, []float64{9, 9, 9}))
	require.Equal(t, before, layer.BlowingVelocity(0))
	require.Equal(t, mesh.Vector3{}, layer.Friction(0))
}

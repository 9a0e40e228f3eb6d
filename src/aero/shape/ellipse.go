// Package shape generates point sequences for mesh construction.
package shape

import (
	"fmt"
	"math"

	"github.com/octwanna/vortexje/src/mesh"
)

// Ellipse returns n points approximating the ellipse with semi-axis a along
// x and semi-axis b along y, in the z = 0 plane. Points sit at uniform
// parameter angles, starting at (a, 0, 0) and winding counterclockwise; the
// starting point is not repeated at the end.
func Ellipse(a, b float64, n int) ([]mesh.Vector3, error) {
	if n < 1 {
		return nil, fmt.Errorf("shape: ellipse needs at least 1 point, got %d", n)
	}
	points := make([]mesh.Vector3, n)
	for k := 0; k < n; k++ {
		theta := 2 * math.Pi * float64(k) / float64(n)
		points[k] = mesh.Vector3{X: a * math.Cos(theta), Y: b * math.Sin(theta)}
	}
	return points, nil
}

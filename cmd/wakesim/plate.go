package main

import (
	"fmt"

	"github.com/octwanna/vortexje/src/aero/lifting"
	"github.com/octwanna/vortexje/src/mesh"
)

// flatPlate builds a zero-thickness rectangular plate in the z = 0 plane
// with the chord along x and the span along y. The upper and lower halves
// share nodes and panels, so the trailing edge is closed.
func flatPlate(chordwiseNodes, spanwiseNodes int, chord, span float64) (*lifting.Surface, error) {
	if chordwiseNodes < 2 || spanwiseNodes < 1 {
		return nil, fmt.Errorf("flat plate needs at least 2x1 nodes, got %dx%d", chordwiseNodes, spanwiseNodes)
	}

	m := mesh.New()
	nodes := mesh.NewGrid(chordwiseNodes, spanwiseNodes)
	for i := 0; i < chordwiseNodes; i++ {
		x := chord * float64(i) / float64(chordwiseNodes-1)
		for j := 0; j < spanwiseNodes; j++ {
			y := 0.0
			if spanwiseNodes > 1 {
				y = span * float64(j) / float64(spanwiseNodes-1)
			}
			nodes.Set(i, j, m.AddNode(mesh.NewVector3(x, y, 0)))
		}
	}

	panels := mesh.NewGrid(chordwiseNodes-1, spanwiseNodes-1)
	for i := 0; i < chordwiseNodes-1; i++ {
		for j := 0; j < spanwiseNodes-1; j++ {
			id, err := m.AddPanel(nodes.At(i, j), nodes.At(i, j+1), nodes.At(i+1, j+1), nodes.At(i+1, j))
			if err != nil {
				return nil, err
			}
			panels.Set(i, j, id)
		}
	}

	return lifting.NewSurface(m, nodes, nodes, panels, panels)
}

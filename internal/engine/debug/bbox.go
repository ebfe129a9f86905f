// Package debug provides debug visualization and capture utilities.
package debug

import (
	"github.com/Faultbox/cubedrop/internal/engine/mesh"
	"github.com/Faultbox/cubedrop/pkg/math"
)

// BBoxWireframeVertexCount is the number of vertices for a bbox wireframe (12 edges × 2).
const BBoxWireframeVertexCount = 24

// boxEdges lists the corner pairs of the 12 box edges. Corner i has bit 0 set
// for max X, bit 1 for max Y and bit 2 for max Z.
var boxEdges = [12][2]int{
	// Bottom face
	{0, 1}, {1, 5}, {5, 4}, {4, 0},
	// Top face
	{2, 3}, {3, 7}, {7, 6}, {6, 2},
	// Vertical edges
	{0, 2}, {1, 3}, {5, 7}, {4, 6},
}

// GenerateBBoxWireframeVertices creates line vertices for a wireframe bounding box.
// Returns 24 vertices (12 edges × 2 endpoints), format: [x, y, z] per vertex.
func GenerateBBoxWireframeVertices(minX, minY, minZ, maxX, maxY, maxZ float32) []float32 {
	corners := boxCorners(mesh.Bounds{
		Min: [3]float32{minX, minY, minZ},
		Max: [3]float32{maxX, maxY, maxZ},
	})
	return edgeVertices(corners)
}

// WireframeFromBounds creates wireframe vertices for a mesh's bounds placed in
// the world by model. Rotations are applied, so the box follows the object.
func WireframeFromBounds(b mesh.Bounds, model math.Mat4) []float32 {
	corners := boxCorners(b)
	for i, c := range corners {
		corners[i] = model.TransformPoint(c)
	}
	return edgeVertices(corners)
}

func boxCorners(b mesh.Bounds) [8][3]float32 {
	var corners [8][3]float32
	for i := range corners {
		for axis := 0; axis < 3; axis++ {
			if i&(1<<axis) != 0 {
				corners[i][axis] = b.Max[axis]
			} else {
				corners[i][axis] = b.Min[axis]
			}
		}
	}
	return corners
}

func edgeVertices(corners [8][3]float32) []float32 {
	out := make([]float32, 0, BBoxWireframeVertexCount*3)
	for _, e := range boxEdges {
		a, b := corners[e[0]], corners[e[1]]
		out = append(out, a[0], a[1], a[2], b[0], b[1], b[2])
	}
	return out
}

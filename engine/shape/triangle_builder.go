package shape

import (
	"github.com/gituser12981u2/3D-Engine/common"
)

// TriangleBuilder builds a single solid-color triangle. It is the smallest
// possible shape source and the usual starting point for sanity checks.
type TriangleBuilder struct {
	vertices []common.Vertex
}

// NewTriangleBuilder creates a triangle from three positions and a color.
//
// Parameters:
//   - v1, v2, v3: the triangle corners, each an x/y/z position
//   - color: the color applied to all three vertices
//
// Returns:
//   - *TriangleBuilder: the new builder
func NewTriangleBuilder(v1, v2, v3 [3]float32, color common.Color) *TriangleBuilder {
	return &TriangleBuilder{
		vertices: []common.Vertex{
			common.NewVertex(v1[0], v1[1], v1[2], color),
			common.NewVertex(v2[0], v2[1], v2[2], color),
			common.NewVertex(v3[0], v3[1], v3[2], color),
		},
	}
}

// AsPrimitive returns a PrimitiveBuilder over the triangle.
func (t *TriangleBuilder) AsPrimitive() *PrimitiveBuilder {
	return NewPrimitiveBuilder(t.vertices, common.PrimitiveTriangle)
}

// AsMesh returns a MeshBuilder over the triangle.
func (t *TriangleBuilder) AsMesh() *MeshBuilder {
	return NewMeshBuilder(t.vertices, common.PrimitiveTriangle).WithIndices([]uint32{0, 1, 2})
}

var _ ShapeBuilder = &TriangleBuilder{}

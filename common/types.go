// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

// PrimitiveType selects the topology the GPU uses to assemble vertices.
type PrimitiveType int

const (
	// PrimitivePoint renders each vertex as an isolated point.
	PrimitivePoint PrimitiveType = iota

	// PrimitiveLine renders each pair of vertices as an independent line segment.
	PrimitiveLine

	// PrimitiveLineStrip renders vertices as a connected polyline.
	PrimitiveLineStrip

	// PrimitiveTriangle renders each triple of vertices as an independent triangle.
	PrimitiveTriangle

	// PrimitiveTriangleStrip renders vertices as a strip of triangles sharing edges.
	PrimitiveTriangleStrip
)

// String returns a human-readable name for the primitive type.
func (p PrimitiveType) String() string {
	switch p {
	case PrimitivePoint:
		return "Point"
	case PrimitiveLine:
		return "Line"
	case PrimitiveLineStrip:
		return "LineStrip"
	case PrimitiveTriangle:
		return "Triangle"
	case PrimitiveTriangleStrip:
		return "TriangleStrip"
	default:
		return "Unknown"
	}
}

// IndexType selects the width of index buffer entries for indexed draws.
type IndexType int

const (
	// IndexUint16 uses 16-bit indices.
	IndexUint16 IndexType = iota

	// IndexUint32 uses 32-bit indices. The engine always emits this type.
	IndexUint32
)

// Color is an RGBA color with components nominally in [0, 1]. Values outside
// that range are passed through to the GPU unmodified.
type Color struct {
	R, G, B, A float32
}

// NewColor creates a Color from its four components.
//
// Parameters:
//   - r, g, b, a: color components, nominally in [0, 1]
//
// Returns:
//   - Color: the assembled color
func NewColor(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Array returns the color as a flat [4]float32 in RGBA order, matching the
// vertex and instance layouts the GPU expects.
func (c Color) Array() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

// White is the default color for new scene nodes and vertices.
var White = Color{R: 1, G: 1, B: 1, A: 1}

// Vertex is a single mesh vertex: position in model space plus an RGBA color.
// The memory layout matches the GPU vertex buffer layout exactly (28 bytes,
// no padding), so vertex slices can be uploaded with SliceToBytes.
type Vertex struct {
	Position [3]float32
	Color    [4]float32
}

// NewVertex creates a Vertex from a position and a Color.
//
// Parameters:
//   - x, y, z: position in model space
//   - color: the vertex color
//
// Returns:
//   - Vertex: the assembled vertex
func NewVertex(x, y, z float32, color Color) Vertex {
	return Vertex{
		Position: [3]float32{x, y, z},
		Color:    color.Array(),
	}
}

// DefaultVertex returns a vertex at the origin with white color.
func DefaultVertex() Vertex {
	return Vertex{Color: [4]float32{1, 1, 1, 1}}
}

// Uniforms is the single-slot uniform buffer record uploaded once per draw
// command: the frame's combined view-projection matrix and the command's
// model matrix. Both are column-major. Layout matches the GPU uniform block
// (128 bytes), so it can be uploaded with StructToBytes.
type Uniforms struct {
	ViewProjectionMatrix [16]float32
	ModelMatrix          [16]float32
}

// package shape provides builders for assembling geometry into draw commands
// or retained meshes, and a factory for common procedural shapes.
//
// A shape starts life as ShapeData (vertices plus topology), is refined
// through a PrimitiveBuilder or MeshBuilder, and is finally drawn through a
// Drawer. Primitive shapes are re-submitted every frame; mesh shapes are
// registered once and referenced by id.
package shape

import (
	"github.com/gituser12981u2/3D-Engine/common"
	"github.com/gituser12981u2/3D-Engine/engine/mesh"
	"github.com/gituser12981u2/3D-Engine/engine/render_queue"
)

// Drawer is the narrow surface a shape needs to get itself on screen. The
// renderer implements it.
type Drawer interface {
	// AddMesh registers a mesh for retained drawing and returns its id.
	//
	// Parameters:
	//   - m: the mesh to register
	//
	// Returns:
	//   - int: the stable mesh id
	AddMesh(m mesh.Mesh) int

	// DrawImmediate queues a draw command for the current frame.
	//
	// Parameters:
	//   - cmd: the command to queue
	DrawImmediate(cmd render_queue.DrawCommand)
}

// ShapeBuilder converts a shape source into a primitive or mesh builder.
type ShapeBuilder interface {
	// AsPrimitive returns a builder that draws the shape as an immediate primitive.
	AsPrimitive() *PrimitiveBuilder

	// AsMesh returns a builder that draws the shape as a retained mesh.
	AsMesh() *MeshBuilder
}

// ShapeData is the raw material both builder kinds share: geometry, topology,
// a model transform, and optional per-instance data.
type ShapeData struct {
	Vertices      []common.Vertex
	Indices       []uint32
	PrimitiveType common.PrimitiveType
	Transform     [16]float32
	Instances     []render_queue.InstanceData
}

// NewShapeData creates a ShapeData with an identity transform and no indices
// or instances.
//
// Parameters:
//   - vertices: the vertex data
//   - primitiveType: the topology to assemble the vertices with
//
// Returns:
//   - ShapeData: the assembled shape data
func NewShapeData(vertices []common.Vertex, primitiveType common.PrimitiveType) ShapeData {
	return ShapeData{
		Vertices:      vertices,
		PrimitiveType: primitiveType,
		Transform:     common.IdentityMatrix(),
	}
}

// AsPrimitive returns a PrimitiveBuilder over this data.
func (d ShapeData) AsPrimitive() *PrimitiveBuilder {
	return &PrimitiveBuilder{data: d}
}

// AsMesh returns a MeshBuilder over this data.
func (d ShapeData) AsMesh() *MeshBuilder {
	return &MeshBuilder{data: d}
}

var _ ShapeBuilder = ShapeData{}

// PrimitiveBuilder customizes a shape drawn as an immediate primitive. The
// geometry travels inside the draw command each frame.
type PrimitiveBuilder struct {
	data ShapeData
}

// NewPrimitiveBuilder creates a PrimitiveBuilder from vertices and a topology.
//
// Parameters:
//   - vertices: the vertex data
//   - primitiveType: the topology to assemble the vertices with
//
// Returns:
//   - *PrimitiveBuilder: the new builder
func NewPrimitiveBuilder(vertices []common.Vertex, primitiveType common.PrimitiveType) *PrimitiveBuilder {
	return &PrimitiveBuilder{data: NewShapeData(vertices, primitiveType)}
}

// WithIndices attaches index data to the primitive.
//
// Parameters:
//   - indices: the index data
//
// Returns:
//   - *PrimitiveBuilder: the builder, for chaining
func (b *PrimitiveBuilder) WithIndices(indices []uint32) *PrimitiveBuilder {
	b.data.Indices = indices
	return b
}

// WithTransform sets the primitive's model matrix.
//
// Parameters:
//   - transform: the model matrix, column-major
//
// Returns:
//   - *PrimitiveBuilder: the builder, for chaining
func (b *PrimitiveBuilder) WithTransform(transform [16]float32) *PrimitiveBuilder {
	b.data.Transform = transform
	return b
}

// WithInstances attaches per-instance data to the primitive.
//
// Parameters:
//   - instances: the per-instance records
//
// Returns:
//   - *PrimitiveBuilder: the builder, for chaining
func (b *PrimitiveBuilder) WithInstances(instances []render_queue.InstanceData) *PrimitiveBuilder {
	b.data.Instances = instances
	return b
}

// Data returns the builder's current shape data.
func (b *PrimitiveBuilder) Data() ShapeData {
	return b.data
}

// Draw queues the primitive for the current frame.
//
// Parameters:
//   - d: the drawer to submit through
func (b *PrimitiveBuilder) Draw(d Drawer) {
	cmd := render_queue.NewPrimitiveCommand(b.data.Vertices, b.data.Indices, b.data.PrimitiveType).
		WithTransform(b.data.Transform)
	if len(b.data.Instances) > 0 {
		cmd = cmd.WithInstances(b.data.Instances)
	}
	d.DrawImmediate(cmd.Build())
}

// MeshBuilder customizes a shape drawn as a retained mesh. The geometry is
// registered with the drawer once; subsequent draws reference it by id.
type MeshBuilder struct {
	data ShapeData

	// meshID caches the registered id so repeated draws through the same
	// builder do not re-register the geometry. -1 means not yet registered.
	meshID     int
	registered bool
}

// NewMeshBuilder creates a MeshBuilder from vertices and a topology.
//
// Parameters:
//   - vertices: the vertex data
//   - primitiveType: the topology to assemble the vertices with
//
// Returns:
//   - *MeshBuilder: the new builder
func NewMeshBuilder(vertices []common.Vertex, primitiveType common.PrimitiveType) *MeshBuilder {
	return &MeshBuilder{data: NewShapeData(vertices, primitiveType)}
}

// WithIndices attaches index data to the mesh.
//
// Parameters:
//   - indices: the index data
//
// Returns:
//   - *MeshBuilder: the builder, for chaining
func (b *MeshBuilder) WithIndices(indices []uint32) *MeshBuilder {
	b.data.Indices = indices
	return b
}

// WithTransform sets the mesh's model matrix.
//
// Parameters:
//   - transform: the model matrix, column-major
//
// Returns:
//   - *MeshBuilder: the builder, for chaining
func (b *MeshBuilder) WithTransform(transform [16]float32) *MeshBuilder {
	b.data.Transform = transform
	return b
}

// WithInstances attaches per-instance data to the mesh.
//
// Parameters:
//   - instances: the per-instance records
//
// Returns:
//   - *MeshBuilder: the builder, for chaining
func (b *MeshBuilder) WithInstances(instances []render_queue.InstanceData) *MeshBuilder {
	b.data.Instances = instances
	return b
}

// Data returns the builder's current shape data.
func (b *MeshBuilder) Data() ShapeData {
	return b.data
}

// Register ensures the geometry is stored with the drawer and returns its
// mesh id. Repeated calls return the same id without re-registering.
//
// Parameters:
//   - d: the drawer to register with
//
// Returns:
//   - int: the stable mesh id
func (b *MeshBuilder) Register(d Drawer) int {
	if !b.registered {
		b.meshID = d.AddMesh(mesh.NewMesh(b.data.Vertices, b.data.Indices, b.data.PrimitiveType))
		b.registered = true
	}
	return b.meshID
}

// Draw registers the mesh if needed and queues a draw referencing it.
//
// Parameters:
//   - d: the drawer to submit through
func (b *MeshBuilder) Draw(d Drawer) {
	id := b.Register(d)
	cmd := render_queue.NewMeshCommand(id).WithTransform(b.data.Transform)
	if len(b.data.Instances) > 0 {
		cmd = cmd.WithInstances(b.data.Instances)
	}
	d.DrawImmediate(cmd.Build())
}

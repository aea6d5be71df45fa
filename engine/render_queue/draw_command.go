package render_queue

import (
	"github.com/gituser12981u2/3D-Engine/common"
)

// DrawCommandKind discriminates the two draw command variants.
type DrawCommandKind int

const (
	// DrawCommandMesh references a mesh stored in the renderer's mesh storage by id.
	DrawCommandMesh DrawCommandKind = iota

	// DrawCommandPrimitive carries its own vertex (and optional index) data inline.
	DrawCommandPrimitive
)

// InstanceData is the per-instance record for instanced draws: a model matrix
// and an RGBA color. The memory layout matches the GPU instance buffer layout
// exactly (80 bytes, no padding), so instance slices can be uploaded with
// common.SliceToBytes.
type InstanceData struct {
	ModelMatrix [16]float32
	Color       [4]float32
}

// NewInstanceData creates an InstanceData from a model matrix and a color.
//
// Parameters:
//   - model: the instance's model matrix, column-major
//   - color: the instance color
//
// Returns:
//   - InstanceData: the assembled instance record
func NewInstanceData(model [16]float32, color common.Color) InstanceData {
	return InstanceData{
		ModelMatrix: model,
		Color:       color.Array(),
	}
}

// DrawCommand is a self-contained request to draw one mesh or one inline
// primitive. Commands are value types; once submitted to a RenderQueue the
// queue owns the value and the caller must not retain aliases to its slices.
type DrawCommand struct {
	// Kind selects which variant the command is.
	Kind DrawCommandKind

	// MeshID identifies the stored mesh for DrawCommandMesh commands.
	MeshID int

	// Vertices holds inline vertex data for DrawCommandPrimitive commands.
	Vertices []common.Vertex

	// Indices optionally holds inline index data for DrawCommandPrimitive
	// commands. Nil or empty means a non-indexed draw.
	Indices []uint32

	// PrimitiveType selects the topology for DrawCommandPrimitive commands.
	PrimitiveType common.PrimitiveType

	// Instances optionally holds per-instance data. Nil or empty means a
	// single non-instanced draw.
	Instances []InstanceData

	// Transform is the command's model matrix, column-major.
	Transform [16]float32
}

// Indexed reports whether the command carries inline index data. Mesh-kind
// commands resolve their geometry from mesh storage at render time, so their
// indexed-or-not classification is decided by the stored mesh, not here.
func (d DrawCommand) Indexed() bool {
	return len(d.Indices) > 0
}

// Instanced reports whether the command carries per-instance data.
func (d DrawCommand) Instanced() bool {
	return len(d.Instances) > 0
}

// DrawCommandBuilder assembles a DrawCommand through method chaining. Obtain
// one with NewMeshCommand or NewPrimitiveCommand, refine it with the With*
// methods, and finish with Build.
type DrawCommandBuilder struct {
	cmd DrawCommand
}

// NewMeshCommand starts building a draw command that references a stored mesh.
//
// Parameters:
//   - meshID: the id returned by the renderer when the mesh was registered
//
// Returns:
//   - *DrawCommandBuilder: a builder with an identity transform and no instances
func NewMeshCommand(meshID int) *DrawCommandBuilder {
	return &DrawCommandBuilder{
		cmd: DrawCommand{
			Kind:      DrawCommandMesh,
			MeshID:    meshID,
			Transform: common.IdentityMatrix(),
		},
	}
}

// NewPrimitiveCommand starts building a draw command that carries its own
// geometry inline.
//
// Parameters:
//   - vertices: the vertex data, must be non-empty for the draw to succeed
//   - indices: optional index data, nil for a non-indexed draw
//   - primitiveType: the topology to assemble the vertices with
//
// Returns:
//   - *DrawCommandBuilder: a builder with an identity transform and no instances
func NewPrimitiveCommand(vertices []common.Vertex, indices []uint32, primitiveType common.PrimitiveType) *DrawCommandBuilder {
	return &DrawCommandBuilder{
		cmd: DrawCommand{
			Kind:          DrawCommandPrimitive,
			Vertices:      vertices,
			Indices:       indices,
			PrimitiveType: primitiveType,
			Transform:     common.IdentityMatrix(),
		},
	}
}

// WithInstances attaches per-instance data to the command.
//
// Parameters:
//   - instances: the per-instance records
//
// Returns:
//   - *DrawCommandBuilder: the builder, for chaining
func (b *DrawCommandBuilder) WithInstances(instances []InstanceData) *DrawCommandBuilder {
	b.cmd.Instances = instances
	return b
}

// WithTransform sets the command's model matrix.
//
// Parameters:
//   - transform: the model matrix, column-major
//
// Returns:
//   - *DrawCommandBuilder: the builder, for chaining
func (b *DrawCommandBuilder) WithTransform(transform [16]float32) *DrawCommandBuilder {
	b.cmd.Transform = transform
	return b
}

// Build finishes the builder and returns the assembled command.
func (b *DrawCommandBuilder) Build() DrawCommand {
	return b.cmd
}

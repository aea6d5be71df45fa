// package mesh implements retained geometry storage. Meshes are registered
// once, assigned a stable integer id, and referenced by id from draw commands
// on every subsequent frame so the geometry is never re-submitted.
package mesh

import (
	"github.com/gituser12981u2/3D-Engine/common"
)

// Mesh is a retained piece of geometry: vertices, indices, and the topology
// they should be assembled with. Stored meshes are always indexed.
type Mesh struct {
	Vertices      []common.Vertex
	Indices       []uint32
	PrimitiveType common.PrimitiveType
}

// NewMesh creates a Mesh from its components.
//
// Parameters:
//   - vertices: the vertex data
//   - indices: the index data
//   - primitiveType: the topology the indices describe
//
// Returns:
//   - Mesh: the assembled mesh
func NewMesh(vertices []common.Vertex, indices []uint32, primitiveType common.PrimitiveType) Mesh {
	return Mesh{
		Vertices:      vertices,
		Indices:       indices,
		PrimitiveType: primitiveType,
	}
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// IndexCount returns the number of indices in the mesh.
func (m *Mesh) IndexCount() int {
	return len(m.Indices)
}

// MeshStorage is an append-only arena of registered meshes. Ids are assigned
// sequentially from zero and remain valid for the lifetime of the storage;
// meshes are never removed or reordered.
type MeshStorage interface {
	// AddMesh registers a mesh and returns its id.
	//
	// Parameters:
	//   - m: the mesh to store
	//
	// Returns:
	//   - int: the stable id to reference the mesh with
	AddMesh(m Mesh) int

	// GetMesh looks up a mesh by id.
	//
	// Parameters:
	//   - id: the id returned by AddMesh
	//
	// Returns:
	//   - *Mesh: the stored mesh, or nil if the id is out of range
	GetMesh(id int) *Mesh

	// Len returns the number of stored meshes.
	//
	// Returns:
	//   - int: the mesh count
	Len() int
}

type meshStorage struct {
	meshes []Mesh
}

var _ MeshStorage = &meshStorage{}

func (s *meshStorage) AddMesh(m Mesh) int {
	s.meshes = append(s.meshes, m)
	return len(s.meshes) - 1
}

func (s *meshStorage) GetMesh(id int) *Mesh {
	if id < 0 || id >= len(s.meshes) {
		return nil
	}
	return &s.meshes[id]
}

func (s *meshStorage) Len() int {
	return len(s.meshes)
}

package mesh

// MeshStorageBuilderOption is a functional option for configuring a new MeshStorage.
type MeshStorageBuilderOption func(*meshStorage)

// NewMeshStorage creates an empty mesh storage arena.
//
// Parameters:
//   - options: optional configuration options
//
// Returns:
//   - MeshStorage: the new storage
func NewMeshStorage(options ...MeshStorageBuilderOption) MeshStorage {
	s := &meshStorage{}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// WithMeshCapacity pre-allocates the mesh arena.
//
// Parameters:
//   - capacity: the number of meshes to reserve space for
//
// Returns:
//   - MeshStorageBuilderOption: the option to pass to NewMeshStorage
func WithMeshCapacity(capacity int) MeshStorageBuilderOption {
	return func(s *meshStorage) {
		if capacity > 0 {
			s.meshes = make([]Mesh, 0, capacity)
		}
	}
}

package renderer

import (
	"fmt"

	"github.com/gituser12981u2/3D-Engine/common"
	"github.com/gituser12981u2/3D-Engine/engine/render_queue"
)

// Hard per-frame geometry capacities. These are policy constants, not derived
// limits: the index capacity is three times the vertex capacity to cover
// fully-indexed triangle lists.
const (
	MaxVertices  = 65536
	MaxIndices   = 196608
	MaxInstances = 4096
)

// BufferManager owns the fixed-capacity staging arrays that back the GPU
// buffers: vertex, index, and instance arrays, a single-slot uniform record,
// and the depth attachment size. Every update is bounds-checked against the
// array's capacity before anything is copied; an oversized update fails with
// a buffer overflow and leaves the prior contents and counts untouched. No
// update can ever write past the pre-allocated capacity.
type BufferManager interface {
	// UpdateVertexBuffer replaces the staged vertex data.
	//
	// Parameters:
	//   - vertices: the vertex data for this draw
	//
	// Returns:
	//   - error: nil, or a buffer overflow if len(vertices) exceeds capacity
	UpdateVertexBuffer(vertices []common.Vertex) error

	// UpdateIndexBuffer replaces the staged index data.
	//
	// Parameters:
	//   - indices: the index data for this draw
	//
	// Returns:
	//   - error: nil, or a buffer overflow if len(indices) exceeds capacity
	UpdateIndexBuffer(indices []uint32) error

	// UpdateInstanceBuffer replaces the staged instance data.
	//
	// Parameters:
	//   - instances: the per-instance records for this draw
	//
	// Returns:
	//   - error: nil, or a buffer overflow if len(instances) exceeds capacity
	UpdateInstanceBuffer(instances []render_queue.InstanceData) error

	// UpdateUniformBuffer overwrites the single uniform slot. There is no
	// partial update path; both matrices are always written together.
	//
	// Parameters:
	//   - viewProjection: the frame's combined view-projection matrix
	//   - model: the draw's model matrix
	UpdateUniformBuffer(viewProjection, model [16]float32)

	// Vertices returns the staged vertices, valid until the next update.
	Vertices() []common.Vertex

	// Indices returns the staged indices, valid until the next update.
	Indices() []uint32

	// Instances returns the staged instances, valid until the next update.
	Instances() []render_queue.InstanceData

	// Uniforms returns the current uniform slot contents.
	Uniforms() common.Uniforms

	// VertexCount returns the element count of the last vertex update.
	VertexCount() int

	// IndexCount returns the element count of the last index update.
	IndexCount() int

	// InstanceCount returns the element count of the last instance update.
	InstanceCount() int

	// EnsureDepthSize records the required depth attachment size. Re-requesting
	// the current size is a no-op; a differing size updates the recorded size
	// and reports that the attachment must be reallocated.
	//
	// Parameters:
	//   - width, height: the drawable size in pixels
	//
	// Returns:
	//   - bool: true if the size changed and the depth texture needs reallocating
	EnsureDepthSize(width, height int) bool

	// DepthSize returns the currently recorded depth attachment size.
	//
	// Returns:
	//   - width, height: the recorded size in pixels, zero before the first EnsureDepthSize
	DepthSize() (width, height int)
}

type bufferManager struct {
	vertices  []common.Vertex
	indices   []uint32
	instances []render_queue.InstanceData

	vertexCount   int
	indexCount    int
	instanceCount int

	uniforms common.Uniforms

	depthWidth  int
	depthHeight int

	vertexCap   int
	indexCap    int
	instanceCap int
}

var _ BufferManager = &bufferManager{}

func overflow(kind string, length, capacity int) error {
	return fmt.Errorf("%w: %s data length %d exceeds capacity %d", common.ErrBufferOverflow, kind, length, capacity)
}

func (m *bufferManager) UpdateVertexBuffer(vertices []common.Vertex) error {
	if len(vertices) > m.vertexCap {
		return overflow("vertex", len(vertices), m.vertexCap)
	}
	copy(m.vertices, vertices)
	m.vertexCount = len(vertices)
	return nil
}

func (m *bufferManager) UpdateIndexBuffer(indices []uint32) error {
	if len(indices) > m.indexCap {
		return overflow("index", len(indices), m.indexCap)
	}
	copy(m.indices, indices)
	m.indexCount = len(indices)
	return nil
}

func (m *bufferManager) UpdateInstanceBuffer(instances []render_queue.InstanceData) error {
	if len(instances) > m.instanceCap {
		return overflow("instance", len(instances), m.instanceCap)
	}
	copy(m.instances, instances)
	m.instanceCount = len(instances)
	return nil
}

func (m *bufferManager) UpdateUniformBuffer(viewProjection, model [16]float32) {
	m.uniforms.ViewProjectionMatrix = viewProjection
	m.uniforms.ModelMatrix = model
}

func (m *bufferManager) Vertices() []common.Vertex {
	return m.vertices[:m.vertexCount]
}

func (m *bufferManager) Indices() []uint32 {
	return m.indices[:m.indexCount]
}

func (m *bufferManager) Instances() []render_queue.InstanceData {
	return m.instances[:m.instanceCount]
}

func (m *bufferManager) Uniforms() common.Uniforms {
	return m.uniforms
}

func (m *bufferManager) VertexCount() int {
	return m.vertexCount
}

func (m *bufferManager) IndexCount() int {
	return m.indexCount
}

func (m *bufferManager) InstanceCount() int {
	return m.instanceCount
}

func (m *bufferManager) EnsureDepthSize(width, height int) bool {
	if width == m.depthWidth && height == m.depthHeight {
		return false
	}
	m.depthWidth = width
	m.depthHeight = height
	return true
}

func (m *bufferManager) DepthSize() (int, int) {
	return m.depthWidth, m.depthHeight
}

// BufferManagerBuilderOption is a functional option for configuring a new BufferManager.
type BufferManagerBuilderOption func(*bufferManager)

// NewBufferManager creates a buffer manager with the default capacities,
// fully pre-allocated.
//
// Parameters:
//   - options: optional configuration options
//
// Returns:
//   - BufferManager: the new buffer manager
func NewBufferManager(options ...BufferManagerBuilderOption) BufferManager {
	m := &bufferManager{
		vertexCap:   MaxVertices,
		indexCap:    MaxIndices,
		instanceCap: MaxInstances,
	}
	for _, option := range options {
		option(m)
	}
	m.vertices = make([]common.Vertex, m.vertexCap)
	m.indices = make([]uint32, m.indexCap)
	m.instances = make([]render_queue.InstanceData, m.instanceCap)
	return m
}

// WithCapacities overrides the default buffer capacities. Non-positive values
// keep the corresponding default.
//
// Parameters:
//   - vertices: vertex capacity
//   - indices: index capacity
//   - instances: instance capacity
//
// Returns:
//   - BufferManagerBuilderOption: the option to pass to NewBufferManager
func WithCapacities(vertices, indices, instances int) BufferManagerBuilderOption {
	return func(m *bufferManager) {
		if vertices > 0 {
			m.vertexCap = vertices
		}
		if indices > 0 {
			m.indexCap = indices
		}
		if instances > 0 {
			m.instanceCap = instances
		}
	}
}

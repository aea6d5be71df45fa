package renderer

import (
	"github.com/gituser12981u2/3D-Engine/common"
	"github.com/gituser12981u2/3D-Engine/engine/render_queue"
)

// RendererBackendType identifies the GPU backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU-based rendering backend.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// BackendDrawCommandKind is the four-way classification of a draw call derived
// from whether the source command carries indices and/or instances.
type BackendDrawCommandKind int

const (
	// DrawBasic draws vertices in order, one instance.
	DrawBasic BackendDrawCommandKind = iota

	// DrawIndexed draws through the index buffer, one instance.
	DrawIndexed

	// DrawInstanced draws vertices in order, many instances.
	DrawInstanced

	// DrawIndexedInstanced draws through the index buffer, many instances.
	DrawIndexedInstanced
)

// BackendDrawCommand is the backend-ready draw instruction. Which fields are
// meaningful depends on Kind: vertex extents for non-indexed draws, index
// extents for indexed draws, instance count for instanced draws.
type BackendDrawCommand struct {
	Kind          BackendDrawCommandKind
	PrimitiveType common.PrimitiveType

	VertexStart int
	VertexCount int

	IndexCount        int
	IndexType         common.IndexType
	IndexBufferOffset int

	InstanceCount int
}

// ClassifyDrawCommand derives the backend draw instruction for a resolved
// draw command. The classification is a pure function of (has indices, has
// instances); counts only fill in the extents.
//
// Parameters:
//   - primitiveType: the topology of the resolved geometry
//   - vertexCount: number of vertices uploaded
//   - indexCount: number of indices uploaded, 0 for non-indexed draws
//   - instanceCount: number of instances uploaded, 0 for non-instanced draws
//
// Returns:
//   - BackendDrawCommand: the classified instruction
func ClassifyDrawCommand(primitiveType common.PrimitiveType, vertexCount, indexCount, instanceCount int) BackendDrawCommand {
	cmd := BackendDrawCommand{
		PrimitiveType: primitiveType,
		VertexStart:   0,
		VertexCount:   vertexCount,
		IndexCount:    indexCount,
		IndexType:     common.IndexUint32,
		InstanceCount: instanceCount,
	}

	switch {
	case indexCount > 0 && instanceCount > 0:
		cmd.Kind = DrawIndexedInstanced
	case indexCount > 0:
		cmd.Kind = DrawIndexed
	case instanceCount > 0:
		cmd.Kind = DrawInstanced
	default:
		cmd.Kind = DrawBasic
	}
	return cmd
}

// GraphicsBackend is the entire boundary the render core requires from a GPU
// API. The core never touches GPU resources directly; it stages data through
// the update methods and issues one Draw per queued command.
type GraphicsBackend interface {
	// UpdateVertexBuffer uploads vertex data for the next draw.
	//
	// Parameters:
	//   - vertices: the vertex data
	//
	// Returns:
	//   - error: nil, a buffer overflow, or a backend failure
	UpdateVertexBuffer(vertices []common.Vertex) error

	// UpdateIndexBuffer uploads index data for the next draw.
	//
	// Parameters:
	//   - indices: the index data
	//
	// Returns:
	//   - error: nil, a buffer overflow, or a backend failure
	UpdateIndexBuffer(indices []uint32) error

	// UpdateUniformBuffer uploads the per-draw uniform record.
	//
	// Parameters:
	//   - viewProjection: the frame's combined view-projection matrix
	//   - model: the draw's model matrix
	//
	// Returns:
	//   - error: nil or a backend failure
	UpdateUniformBuffer(viewProjection, model [16]float32) error

	// UpdateInstanceBuffer uploads per-instance data for the next draw.
	//
	// Parameters:
	//   - instances: the per-instance records
	//
	// Returns:
	//   - error: nil, a buffer overflow, or a backend failure
	UpdateInstanceBuffer(instances []render_queue.InstanceData) error

	// Draw issues one draw call using the most recently uploaded buffers.
	//
	// Parameters:
	//   - cmd: the classified draw instruction
	//
	// Returns:
	//   - error: nil or a backend failure
	Draw(cmd BackendDrawCommand) error
}

// FrameBackend is the optional frame lifecycle a windowed backend exposes on
// top of GraphicsBackend. The render core discovers it by interface assertion
// and skips it for headless backends.
type FrameBackend interface {
	// BeginFrame acquires the next drawable and opens the frame's render pass.
	//
	// Returns:
	//   - error: nil or a backend failure
	BeginFrame() error

	// EndFrame closes the render pass and submits the frame's command buffer.
	EndFrame()

	// Present displays the submitted frame and releases the drawable.
	Present()
}

// ResizableBackend is the optional resize surface a windowed backend exposes.
type ResizableBackend interface {
	// Resize reconfigures the backend's surface and depth attachment.
	//
	// Parameters:
	//   - width, height: the new drawable size in pixels
	Resize(width, height int)
}

// package renderer implements the render core: it owns the render queue, the
// mesh storage, the scene graph, and the camera, and orchestrates one frame
// per Render call. Each queued draw command is resolved against mesh storage,
// staged into the backend's buffers, classified, and issued as exactly one
// backend draw call, in queue order, failing fast on the first error.
package renderer

import (
	"fmt"
	"sync"

	"github.com/gituser12981u2/3D-Engine/common"
	"github.com/gituser12981u2/3D-Engine/engine/camera"
	"github.com/gituser12981u2/3D-Engine/engine/mesh"
	"github.com/gituser12981u2/3D-Engine/engine/render_queue"
	"github.com/gituser12981u2/3D-Engine/engine/scene_graph"
	"github.com/gituser12981u2/3D-Engine/engine/shape"
)

// Renderer is the rendering system's top-level interface. Populate the queue
// during the frame callback (directly via DrawImmediate or indirectly through
// the scene graph), then call Render once per displayed frame.
type Renderer interface {
	// Render draws one frame: computes the view-projection matrix, lets the
	// scene graph emit its draw commands, drains the queue, and processes
	// every command in submission order. Processing stops on the first
	// failing command; draws issued earlier in the same frame are not rolled
	// back.
	//
	// Returns:
	//   - error: nil, or the first command's failure
	Render() error

	// AddMesh registers a mesh for retained drawing.
	//
	// Parameters:
	//   - m: the mesh to register
	//
	// Returns:
	//   - int: the stable mesh id
	AddMesh(m mesh.Mesh) int

	// GetMesh looks up a registered mesh by id, nil for unknown ids.
	//
	// Parameters:
	//   - id: the mesh id
	//
	// Returns:
	//   - *mesh.Mesh: the mesh, or nil
	GetMesh(id int) *mesh.Mesh

	// DrawImmediate queues a draw command for the current frame.
	//
	// Parameters:
	//   - cmd: the command to queue
	DrawImmediate(cmd render_queue.DrawCommand)

	// CreateShape starts a shape from raw vertices; chain AsPrimitive or
	// AsMesh on the result.
	//
	// Parameters:
	//   - vertices: the vertex data
	//   - primitiveType: the topology to assemble the vertices with
	//
	// Returns:
	//   - shape.ShapeData: the shape source
	CreateShape(vertices []common.Vertex, primitiveType common.PrimitiveType) shape.ShapeData

	// CreateTriangle starts a single solid-color triangle shape.
	//
	// Parameters:
	//   - v1, v2, v3: the triangle corners
	//   - color: the color applied to all three vertices
	//
	// Returns:
	//   - *shape.TriangleBuilder: the shape source
	CreateTriangle(v1, v2, v3 [3]float32, color common.Color) *shape.TriangleBuilder

	// CreateObject registers the builder's geometry as a mesh and wraps it in
	// a scene object with the given decomposed transform.
	//
	// Parameters:
	//   - b: the mesh builder holding the geometry
	//   - position: world translation
	//   - rotation: Euler rotation in radians
	//   - scale: scale factors
	//
	// Returns:
	//   - scene_graph.SceneObject: the new object
	//   - error: nil or a scene graph error
	CreateObject(b *shape.MeshBuilder, position, rotation, scale [3]float32) (scene_graph.SceneObject, error)

	// Shapes returns the procedural shape factory.
	Shapes() shape.ShapeFactory

	// Graph returns the scene graph.
	Graph() scene_graph.SceneGraph

	// Camera returns the active camera.
	Camera() camera.Camera

	// Resize reconfigures the backend surface and the camera aspect ratio.
	// Call when the window's drawable size changes.
	//
	// Parameters:
	//   - width, height: the new drawable size in pixels
	Resize(width, height int)
}

type renderer struct {
	mu *sync.Mutex

	backend GraphicsBackend
	queue   render_queue.RenderQueue
	meshes  mesh.MeshStorage
	graph   scene_graph.SceneGraph
	cam     camera.Camera
	shapes  shape.ShapeFactory
}

var _ Renderer = &renderer{}
var _ shape.Drawer = &renderer{}

func (r *renderer) Render() error {
	viewProjection := r.cam.ViewProjectionMatrix()

	r.graph.GenerateDrawCommands(r.queue)

	r.mu.Lock()
	cmds := r.queue.Drain()
	r.mu.Unlock()

	if fb, ok := r.backend.(FrameBackend); ok {
		if err := fb.BeginFrame(); err != nil {
			return err
		}
		// A failed command mid-frame still ends and presents the partial
		// frame; there are no transactional frame semantics.
		defer func() {
			fb.EndFrame()
			fb.Present()
		}()
	}

	for i, cmd := range cmds {
		if err := r.renderCommand(viewProjection, cmd); err != nil {
			common.Logger().Error("render aborted",
				"command", i,
				"queued", len(cmds),
				"err", err)
			return err
		}
	}
	return nil
}

// renderCommand resolves, stages, classifies, and draws a single command.
func (r *renderer) renderCommand(viewProjection [16]float32, cmd render_queue.DrawCommand) error {
	var vertices []common.Vertex
	var indices []uint32
	var primitiveType common.PrimitiveType

	switch cmd.Kind {
	case render_queue.DrawCommandMesh:
		m := r.meshes.GetMesh(cmd.MeshID)
		if m == nil {
			return fmt.Errorf("%w: %d", common.ErrInvalidMeshID, cmd.MeshID)
		}
		vertices = m.Vertices
		indices = m.Indices
		primitiveType = m.PrimitiveType
	case render_queue.DrawCommandPrimitive:
		vertices = cmd.Vertices
		indices = cmd.Indices
		primitiveType = cmd.PrimitiveType
	}

	if err := r.backend.UpdateVertexBuffer(vertices); err != nil {
		return err
	}
	if len(indices) > 0 {
		if err := r.backend.UpdateIndexBuffer(indices); err != nil {
			return err
		}
	}
	if err := r.backend.UpdateUniformBuffer(viewProjection, cmd.Transform); err != nil {
		return err
	}
	if len(cmd.Instances) > 0 {
		if err := r.backend.UpdateInstanceBuffer(cmd.Instances); err != nil {
			return err
		}
	}

	return r.backend.Draw(ClassifyDrawCommand(primitiveType, len(vertices), len(indices), len(cmd.Instances)))
}

func (r *renderer) AddMesh(m mesh.Mesh) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.meshes.AddMesh(m)
}

func (r *renderer) GetMesh(id int) *mesh.Mesh {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.meshes.GetMesh(id)
}

func (r *renderer) DrawImmediate(cmd render_queue.DrawCommand) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queue.AddDrawCommand(cmd)
}

func (r *renderer) CreateShape(vertices []common.Vertex, primitiveType common.PrimitiveType) shape.ShapeData {
	return shape.NewShapeData(vertices, primitiveType)
}

func (r *renderer) CreateTriangle(v1, v2, v3 [3]float32, color common.Color) *shape.TriangleBuilder {
	return shape.NewTriangleBuilder(v1, v2, v3, color)
}

func (r *renderer) CreateObject(b *shape.MeshBuilder, position, rotation, scale [3]float32) (scene_graph.SceneObject, error) {
	id := b.Register(r)
	obj := scene_graph.NewSceneObject(r.graph, id)
	if err := obj.SetTransform(position, rotation, scale); err != nil {
		return nil, err
	}
	return obj, nil
}

func (r *renderer) Shapes() shape.ShapeFactory {
	return r.shapes
}

func (r *renderer) Graph() scene_graph.SceneGraph {
	return r.graph
}

func (r *renderer) Camera() camera.Camera {
	return r.cam
}

func (r *renderer) Resize(width, height int) {
	if rb, ok := r.backend.(ResizableBackend); ok {
		rb.Resize(width, height)
	}
	if height > 0 {
		r.cam.SetAspect(float32(width) / float32(height))
	}
}

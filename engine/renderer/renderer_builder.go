package renderer

import (
	"sync"

	"github.com/gituser12981u2/3D-Engine/engine/camera"
	"github.com/gituser12981u2/3D-Engine/engine/mesh"
	"github.com/gituser12981u2/3D-Engine/engine/render_queue"
	"github.com/gituser12981u2/3D-Engine/engine/scene_graph"
	"github.com/gituser12981u2/3D-Engine/engine/shape"
)

// RendererBuilderOption is a functional option applied to a renderer during construction via NewRenderer.
type RendererBuilderOption func(*renderer)

// NewRenderer creates a render core over the given backend. The queue, mesh
// storage, scene graph, camera, and shape factory are created with defaults
// unless overridden by options.
//
// Parameters:
//   - backend: the graphics backend to draw through (must not be nil)
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: a new instance of Renderer configured with the specified backend and options
func NewRenderer(backend GraphicsBackend, options ...RendererBuilderOption) Renderer {
	if backend == nil {
		panic("renderer: NewRenderer requires a non-nil GraphicsBackend")
	}

	r := &renderer{
		mu:      &sync.Mutex{},
		backend: backend,
	}
	for _, option := range options {
		option(r)
	}

	if r.queue == nil {
		r.queue = render_queue.NewRenderQueue()
	}
	if r.meshes == nil {
		r.meshes = mesh.NewMeshStorage()
	}
	if r.graph == nil {
		r.graph = scene_graph.NewSceneGraph()
	}
	if r.cam == nil {
		r.cam = camera.NewCamera()
	}
	if r.shapes == nil {
		r.shapes = shape.NewShapeFactory()
	}
	return r
}

// WithCamera sets the camera the render core reads its view-projection from.
//
// Parameters:
//   - cam: the camera to use
//
// Returns:
//   - RendererBuilderOption: a function that applies the camera option to a renderer
func WithCamera(cam camera.Camera) RendererBuilderOption {
	return func(r *renderer) {
		r.cam = cam
	}
}

// WithRenderQueue replaces the default render queue.
//
// Parameters:
//   - queue: the queue to use
//
// Returns:
//   - RendererBuilderOption: a function that applies the queue option to a renderer
func WithRenderQueue(queue render_queue.RenderQueue) RendererBuilderOption {
	return func(r *renderer) {
		r.queue = queue
	}
}

// WithMeshStorage replaces the default mesh storage.
//
// Parameters:
//   - storage: the mesh storage to use
//
// Returns:
//   - RendererBuilderOption: a function that applies the storage option to a renderer
func WithMeshStorage(storage mesh.MeshStorage) RendererBuilderOption {
	return func(r *renderer) {
		r.meshes = storage
	}
}

// WithSceneGraph replaces the default scene graph.
//
// Parameters:
//   - graph: the scene graph to use
//
// Returns:
//   - RendererBuilderOption: a function that applies the graph option to a renderer
func WithSceneGraph(graph scene_graph.SceneGraph) RendererBuilderOption {
	return func(r *renderer) {
		r.graph = graph
	}
}

// WithShapeFactory replaces the default shape factory.
//
// Parameters:
//   - factory: the shape factory to use
//
// Returns:
//   - RendererBuilderOption: a function that applies the factory option to a renderer
func WithShapeFactory(factory shape.ShapeFactory) RendererBuilderOption {
	return func(r *renderer) {
		r.shapes = factory
	}
}

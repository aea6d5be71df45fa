package scene_graph

// SceneGraphBuilderOption is a functional option for configuring a new SceneGraph.
type SceneGraphBuilderOption func(*sceneGraph)

// NewSceneGraph creates an empty scene graph.
//
// Parameters:
//   - options: optional configuration options
//
// Returns:
//   - SceneGraph: the new graph
func NewSceneGraph(options ...SceneGraphBuilderOption) SceneGraph {
	g := &sceneGraph{}
	for _, opt := range options {
		opt(g)
	}
	return g
}

// WithNodeCapacity pre-allocates the node arena.
//
// Parameters:
//   - capacity: the number of nodes to reserve space for
//
// Returns:
//   - SceneGraphBuilderOption: the option to pass to NewSceneGraph
func WithNodeCapacity(capacity int) SceneGraphBuilderOption {
	return func(g *sceneGraph) {
		if capacity > 0 {
			g.nodes = make([]sceneNode, 0, capacity)
			g.roots = make([]NodeID, 0, capacity)
		}
	}
}

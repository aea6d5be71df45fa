package scene_graph

import (
	"github.com/gituser12981u2/3D-Engine/common"
)

// SceneObject is a convenience handle pairing a node id with its graph, so
// callers can mutate one object without threading the graph and id around.
// It keeps its own copy of the decomposed transform so individual components
// can be updated without a read-back path.
type SceneObject interface {
	// NodeID returns the underlying node handle.
	NodeID() NodeID

	// SetPosition updates the object's local translation.
	//
	// Parameters:
	//   - x, y, z: the new translation
	//
	// Returns:
	//   - error: nil or an invalid-handle error
	SetPosition(x, y, z float32) error

	// SetRotation updates the object's local Euler rotation.
	//
	// Parameters:
	//   - x, y, z: rotation angles in radians
	//
	// Returns:
	//   - error: nil or an invalid-handle error
	SetRotation(x, y, z float32) error

	// SetScale updates the object's local scale.
	//
	// Parameters:
	//   - x, y, z: the new scale factors
	//
	// Returns:
	//   - error: nil or an invalid-handle error
	SetScale(x, y, z float32) error

	// SetTransform replaces the whole decomposed transform at once.
	//
	// Parameters:
	//   - position: local translation
	//   - rotation: local Euler rotation in radians
	//   - scale: local scale factors
	//
	// Returns:
	//   - error: nil or an invalid-handle error
	SetTransform(position, rotation, scale [3]float32) error

	// SetColor updates the object's color.
	//
	// Parameters:
	//   - color: the new color
	//
	// Returns:
	//   - error: nil or an invalid-handle error
	SetColor(color common.Color) error

	// SetVisible toggles the object's visibility.
	//
	// Parameters:
	//   - visible: the new visibility
	//
	// Returns:
	//   - error: nil or an invalid-handle error
	SetVisible(visible bool) error

	// SetParent re-parents the object, NoParent detaches it to the root set.
	//
	// Parameters:
	//   - parent: the new parent, or NoParent
	//
	// Returns:
	//   - error: nil, an invalid-handle error, or a cycle error
	SetParent(parent NodeID) error
}

type sceneObject struct {
	graph SceneGraph
	id    NodeID

	position [3]float32
	rotation [3]float32
	scale    [3]float32
}

var _ SceneObject = &sceneObject{}

// NewSceneObject creates a node in the graph and wraps it, attaching the
// given mesh and an identity transform.
//
// Parameters:
//   - graph: the graph to create the node in
//   - meshID: the mesh to attach, or NoMesh
//
// Returns:
//   - SceneObject: the new object
func NewSceneObject(graph SceneGraph, meshID int) SceneObject {
	id := graph.CreateNode()
	// CreateNode always yields a valid handle, errors unreachable here.
	_ = graph.SetMesh(id, meshID)
	return &sceneObject{
		graph: graph,
		id:    id,
		scale: [3]float32{1, 1, 1},
	}
}

func (o *sceneObject) NodeID() NodeID {
	return o.id
}

func (o *sceneObject) SetPosition(x, y, z float32) error {
	o.position = [3]float32{x, y, z}
	return o.push()
}

func (o *sceneObject) SetRotation(x, y, z float32) error {
	o.rotation = [3]float32{x, y, z}
	return o.push()
}

func (o *sceneObject) SetScale(x, y, z float32) error {
	o.scale = [3]float32{x, y, z}
	return o.push()
}

func (o *sceneObject) SetTransform(position, rotation, scale [3]float32) error {
	o.position = position
	o.rotation = rotation
	o.scale = scale
	return o.push()
}

func (o *sceneObject) push() error {
	return o.graph.SetTransform(o.id, o.position, o.rotation, o.scale)
}

func (o *sceneObject) SetColor(color common.Color) error {
	return o.graph.SetColor(o.id, color)
}

func (o *sceneObject) SetVisible(visible bool) error {
	return o.graph.SetVisible(o.id, visible)
}

func (o *sceneObject) SetParent(parent NodeID) error {
	return o.graph.SetParent(o.id, parent)
}

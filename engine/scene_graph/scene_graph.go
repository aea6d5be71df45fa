// package scene_graph implements a hierarchical scene layer over the render
// queue. Nodes own a decomposed local transform, an optional mesh reference,
// a color, and a visibility flag; world transforms are composed from the root
// downward and draw commands are emitted by pre-order traversal each frame.
//
// The graph is a forest: any number of root nodes, each with its own subtree.
// Node handles are arena indices; slots are never reclaimed, so a handle
// stays unique for the life of the graph even after its node is removed.
package scene_graph

import (
	"fmt"

	"github.com/gituser12981u2/3D-Engine/common"
	"github.com/gituser12981u2/3D-Engine/engine/render_queue"
)

// NodeID is an opaque handle to a scene node.
type NodeID int

// NoParent marks a node as a root when passed to SetParent, and as the parent
// of a root when returned from Parent.
const NoParent NodeID = -1

// NoMesh marks a node as having no drawable geometry when passed to SetMesh.
const NoMesh = -1

type sceneNode struct {
	parent   NodeID
	children []NodeID

	position [3]float32
	rotation [3]float32
	scale    [3]float32

	meshID  int
	color   common.Color
	visible bool
	removed bool
}

// SceneGraph is the hierarchical node store. All mutating operations validate
// their handles and reject stale or out-of-range ids without touching state.
type SceneGraph interface {
	// CreateNode allocates a new visible root node with an identity local
	// transform, white color, and no mesh.
	//
	// Returns:
	//   - NodeID: the new node's handle
	CreateNode() NodeID

	// SetParent moves a node under a new parent, or detaches it to the root
	// set when parent is NoParent. The operation is rejected with a cycle
	// error if it would make the node its own ancestor; on rejection the node
	// is left in the root set, not reattached to its previous parent.
	//
	// Parameters:
	//   - node: the node to move
	//   - parent: the new parent, or NoParent to detach
	//
	// Returns:
	//   - error: nil, an invalid-handle error, or a cycle error
	SetParent(node, parent NodeID) error

	// Parent returns a node's parent, NoParent for roots.
	//
	// Parameters:
	//   - node: the node to query
	//
	// Returns:
	//   - NodeID: the parent handle, NoParent for roots
	//   - error: nil or an invalid-handle error
	Parent(node NodeID) (NodeID, error)

	// Children returns a copy of a node's direct children in attachment order.
	//
	// Parameters:
	//   - node: the node to query
	//
	// Returns:
	//   - []NodeID: the child handles
	//   - error: nil or an invalid-handle error
	Children(node NodeID) ([]NodeID, error)

	// SetTransform replaces a node's decomposed local transform.
	//
	// Parameters:
	//   - node: the node to mutate
	//   - position: local translation
	//   - rotation: local Euler rotation in radians
	//   - scale: local scale factors
	//
	// Returns:
	//   - error: nil or an invalid-handle error
	SetTransform(node NodeID, position, rotation, scale [3]float32) error

	// SetMesh attaches a mesh to the node, or clears it when meshID is NoMesh.
	// The id is not validated against mesh storage here; a dangling id
	// surfaces as an invalid-mesh error at render time.
	//
	// Parameters:
	//   - node: the node to mutate
	//   - meshID: the mesh handle, or NoMesh to clear
	//
	// Returns:
	//   - error: nil or an invalid-handle error
	SetMesh(node NodeID, meshID int) error

	// SetColor sets the node's color.
	//
	// Parameters:
	//   - node: the node to mutate
	//   - color: the new color
	//
	// Returns:
	//   - error: nil or an invalid-handle error
	SetColor(node NodeID, color common.Color) error

	// SetVisible toggles the node's visibility. A hidden node hides its
	// entire subtree during draw command generation.
	//
	// Parameters:
	//   - node: the node to mutate
	//   - visible: the new visibility
	//
	// Returns:
	//   - error: nil or an invalid-handle error
	SetVisible(node NodeID, visible bool) error

	// WorldTransform composes the node's world matrix by walking its parent
	// chain from the node up to its root. O(depth).
	//
	// Parameters:
	//   - node: the node to query
	//
	// Returns:
	//   - [16]float32: the world matrix, column-major
	//   - error: nil or an invalid-handle error
	WorldTransform(node NodeID) ([16]float32, error)

	// RemoveNode removes a node permanently. Non-recursive removal first
	// reparents the node's children to its former parent (or promotes them
	// to roots), then unlinks the node; recursive removal takes the whole
	// subtree down. Removed handles are never reused and all subsequent
	// operations on them fail.
	//
	// Parameters:
	//   - node: the node to remove
	//   - recursive: whether to remove the node's subtree as well
	//
	// Returns:
	//   - error: nil or an invalid-handle error
	RemoveNode(node NodeID, recursive bool) error

	// GenerateDrawCommands traverses every root pre-order and appends one
	// mesh draw command per visible node that has a mesh. World transforms
	// are accumulated down the recursion rather than recomputed per node.
	// Hidden nodes skip their entire subtree.
	//
	// Parameters:
	//   - queue: the render queue to append to
	GenerateDrawCommands(queue render_queue.RenderQueue)

	// Len returns the number of live (non-removed) nodes.
	//
	// Returns:
	//   - int: the live node count
	Len() int
}

type sceneGraph struct {
	nodes []sceneNode
	roots []NodeID
	live  int
}

var _ SceneGraph = &sceneGraph{}

func (g *sceneGraph) CreateNode() NodeID {
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, sceneNode{
		parent:  NoParent,
		scale:   [3]float32{1, 1, 1},
		meshID:  NoMesh,
		color:   common.White,
		visible: true,
	})
	g.roots = append(g.roots, id)
	g.live++
	return id
}

func invalidNode(node NodeID) error {
	return fmt.Errorf("%w: %d", common.ErrInvalidNodeID, node)
}

// node validates a handle and returns its slot.
func (g *sceneGraph) node(id NodeID) (*sceneNode, error) {
	if id < 0 || int(id) >= len(g.nodes) || g.nodes[id].removed {
		return nil, invalidNode(id)
	}
	return &g.nodes[id], nil
}

func (g *sceneGraph) SetParent(node, parent NodeID) error {
	n, err := g.node(node)
	if err != nil {
		return err
	}
	if parent != NoParent {
		if _, err := g.node(parent); err != nil {
			return err
		}
	}

	// Unlink from the previous parent or root set first; a rejected cycle
	// leaves the node in the root set rather than where it was.
	g.unlink(node, n)

	if parent == NoParent {
		g.roots = append(g.roots, node)
		return nil
	}

	if parent == node || g.isDescendant(node, parent) {
		g.roots = append(g.roots, node)
		return fmt.Errorf("%w: node %d cannot parent to %d", common.ErrSceneCycle, node, parent)
	}

	n.parent = parent
	g.nodes[parent].children = append(g.nodes[parent].children, node)
	return nil
}

// unlink detaches the node from its current parent's child list or from the
// root set, leaving its parent field cleared.
func (g *sceneGraph) unlink(id NodeID, n *sceneNode) {
	if n.parent == NoParent {
		g.roots = removeID(g.roots, id)
	} else {
		p := &g.nodes[n.parent]
		p.children = removeID(p.children, id)
	}
	n.parent = NoParent
}

// isDescendant reports whether target is in the subtree rooted at node.
func (g *sceneGraph) isDescendant(node, target NodeID) bool {
	for _, child := range g.nodes[node].children {
		if child == target || g.isDescendant(child, target) {
			return true
		}
	}
	return false
}

func removeID(ids []NodeID, id NodeID) []NodeID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}

func (g *sceneGraph) Parent(node NodeID) (NodeID, error) {
	n, err := g.node(node)
	if err != nil {
		return NoParent, err
	}
	return n.parent, nil
}

func (g *sceneGraph) Children(node NodeID) ([]NodeID, error) {
	n, err := g.node(node)
	if err != nil {
		return nil, err
	}
	out := make([]NodeID, len(n.children))
	copy(out, n.children)
	return out, nil
}

func (g *sceneGraph) SetTransform(node NodeID, position, rotation, scale [3]float32) error {
	n, err := g.node(node)
	if err != nil {
		return err
	}
	n.position = position
	n.rotation = rotation
	n.scale = scale
	return nil
}

func (g *sceneGraph) SetMesh(node NodeID, meshID int) error {
	n, err := g.node(node)
	if err != nil {
		return err
	}
	if meshID < 0 {
		meshID = NoMesh
	}
	n.meshID = meshID
	return nil
}

func (g *sceneGraph) SetColor(node NodeID, color common.Color) error {
	n, err := g.node(node)
	if err != nil {
		return err
	}
	n.color = color
	return nil
}

func (g *sceneGraph) SetVisible(node NodeID, visible bool) error {
	n, err := g.node(node)
	if err != nil {
		return err
	}
	n.visible = visible
	return nil
}

// localTransform writes the node's composed local matrix into out.
func (n *sceneNode) localTransform(out []float32) {
	common.BuildModelMatrix(out,
		n.position[0], n.position[1], n.position[2],
		n.rotation[0], n.rotation[1], n.rotation[2],
		n.scale[0], n.scale[1], n.scale[2])
}

func (g *sceneGraph) WorldTransform(node NodeID) ([16]float32, error) {
	n, err := g.node(node)
	if err != nil {
		return [16]float32{}, err
	}

	var world [16]float32
	n.localTransform(world[:])

	var local [16]float32
	for parent := n.parent; parent != NoParent; parent = g.nodes[parent].parent {
		g.nodes[parent].localTransform(local[:])
		common.Mul4(world[:], local[:], world[:])
	}
	return world, nil
}

func (g *sceneGraph) RemoveNode(node NodeID, recursive bool) error {
	n, err := g.node(node)
	if err != nil {
		return err
	}

	if recursive {
		for _, child := range append([]NodeID(nil), n.children...) {
			// children of a live node are always live, error unreachable
			_ = g.RemoveNode(child, true)
		}
	} else {
		// Re-link children to the grandparent (or promote to roots) before
		// unlinking the node itself so no subtree is orphaned.
		formerParent := n.parent
		for _, child := range append([]NodeID(nil), n.children...) {
			c := &g.nodes[child]
			c.parent = formerParent
			if formerParent == NoParent {
				g.roots = append(g.roots, child)
			} else {
				g.nodes[formerParent].children = append(g.nodes[formerParent].children, child)
			}
		}
		n.children = nil
	}

	g.unlink(node, n)
	n.children = nil
	n.meshID = NoMesh
	n.visible = false
	n.removed = true
	g.live--
	return nil
}

func (g *sceneGraph) GenerateDrawCommands(queue render_queue.RenderQueue) {
	var identity [16]float32
	common.Identity(identity[:])
	for _, root := range g.roots {
		g.emit(root, identity, queue)
	}
}

// emit recursively appends draw commands for the subtree rooted at id,
// accumulating the world transform down the recursion.
func (g *sceneGraph) emit(id NodeID, parentWorld [16]float32, queue render_queue.RenderQueue) {
	n := &g.nodes[id]
	if !n.visible {
		return
	}

	var local, world [16]float32
	n.localTransform(local[:])
	common.Mul4(world[:], parentWorld[:], local[:])

	if n.meshID != NoMesh {
		queue.AddDrawCommand(render_queue.NewMeshCommand(n.meshID).
			WithTransform(world).
			WithInstances([]render_queue.InstanceData{
				render_queue.NewInstanceData(common.IdentityMatrix(), n.color),
			}).
			Build())
	}

	for _, child := range n.children {
		g.emit(child, world, queue)
	}
}

func (g *sceneGraph) Len() int {
	return g.live
}

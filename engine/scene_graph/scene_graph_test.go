package scene_graph

import (
	"errors"
	"math"
	"testing"

	"github.com/gituser12981u2/3D-Engine/common"
	"github.com/gituser12981u2/3D-Engine/engine/render_queue"
)

const epsilon = 1e-5

func TestCreateNodeDefaults(t *testing.T) {
	g := NewSceneGraph()
	id := g.CreateNode()

	if id != 0 {
		t.Errorf("first node id = %d, want 0", id)
	}
	parent, err := g.Parent(id)
	if err != nil {
		t.Fatalf("Parent returned error: %v", err)
	}
	if parent != NoParent {
		t.Errorf("new node parent = %d, want NoParent", parent)
	}

	world, err := g.WorldTransform(id)
	if err != nil {
		t.Fatalf("WorldTransform returned error: %v", err)
	}
	if world != common.IdentityMatrix() {
		t.Errorf("new node world transform = %v, want identity", world)
	}
}

func TestSetParentAndDetach(t *testing.T) {
	g := NewSceneGraph()
	parent := g.CreateNode()
	child := g.CreateNode()

	if err := g.SetParent(child, parent); err != nil {
		t.Fatalf("SetParent returned error: %v", err)
	}
	p, _ := g.Parent(child)
	if p != parent {
		t.Errorf("child parent = %d, want %d", p, parent)
	}
	kids, _ := g.Children(parent)
	if len(kids) != 1 || kids[0] != child {
		t.Errorf("parent children = %v, want [%d]", kids, child)
	}

	if err := g.SetParent(child, NoParent); err != nil {
		t.Fatalf("detach returned error: %v", err)
	}
	p, _ = g.Parent(child)
	if p != NoParent {
		t.Errorf("detached child parent = %d, want NoParent", p)
	}
	kids, _ = g.Children(parent)
	if len(kids) != 0 {
		t.Errorf("parent children after detach = %v, want empty", kids)
	}
}

func TestCycleRejection(t *testing.T) {
	g := NewSceneGraph()
	a := g.CreateNode()
	b := g.CreateNode()
	c := g.CreateNode()

	// a -> b -> c
	if err := g.SetParent(b, a); err != nil {
		t.Fatalf("SetParent(b, a) returned error: %v", err)
	}
	if err := g.SetParent(c, b); err != nil {
		t.Fatalf("SetParent(c, b) returned error: %v", err)
	}

	// Parenting a under its own descendant must fail.
	err := g.SetParent(a, c)
	if !errors.Is(err, common.ErrSceneCycle) {
		t.Fatalf("SetParent(a, c) error = %v, want ErrSceneCycle", err)
	}

	// On rejection a stays a root; b and c are untouched.
	p, _ := g.Parent(a)
	if p != NoParent {
		t.Errorf("a parent after rejected cycle = %d, want NoParent", p)
	}
	p, _ = g.Parent(b)
	if p != a {
		t.Errorf("b parent = %d, want %d", p, a)
	}
	kids, _ := g.Children(c)
	if len(kids) != 0 {
		t.Errorf("c children = %v, want empty", kids)
	}
}

func TestSelfParentRejection(t *testing.T) {
	g := NewSceneGraph()
	a := g.CreateNode()

	if err := g.SetParent(a, a); !errors.Is(err, common.ErrSceneCycle) {
		t.Errorf("SetParent(a, a) error = %v, want ErrSceneCycle", err)
	}
	p, _ := g.Parent(a)
	if p != NoParent {
		t.Errorf("a parent after self-parent attempt = %d, want NoParent", p)
	}
}

func TestInvalidHandle(t *testing.T) {
	g := NewSceneGraph()
	id := g.CreateNode()

	ops := map[string]error{
		"SetTransform": g.SetTransform(NodeID(42), [3]float32{}, [3]float32{}, [3]float32{1, 1, 1}),
		"SetMesh":      g.SetMesh(NodeID(-1), 0),
		"SetColor":     g.SetColor(NodeID(42), common.White),
		"SetVisible":   g.SetVisible(NodeID(42), false),
		"SetParent":    g.SetParent(id, NodeID(42)),
		"RemoveNode":   g.RemoveNode(NodeID(42), false),
	}
	for name, err := range ops {
		if !errors.Is(err, common.ErrInvalidNodeID) {
			t.Errorf("%s on bad handle error = %v, want ErrInvalidNodeID", name, err)
		}
	}
}

func TestWorldTransformComposition(t *testing.T) {
	g := NewSceneGraph()
	parent := g.CreateNode()
	child := g.CreateNode()

	if err := g.SetTransform(parent, [3]float32{1, 0, 0}, [3]float32{}, [3]float32{1, 1, 1}); err != nil {
		t.Fatal(err)
	}
	if err := g.SetTransform(child, [3]float32{0, 1, 0}, [3]float32{}, [3]float32{1, 1, 1}); err != nil {
		t.Fatal(err)
	}
	if err := g.SetParent(child, parent); err != nil {
		t.Fatal(err)
	}

	world, err := g.WorldTransform(child)
	if err != nil {
		t.Fatal(err)
	}
	x, y, z := common.TransformPoint(world[:], 0, 0, 0)
	if math.Abs(float64(x-1)) > epsilon || math.Abs(float64(y-1)) > epsilon || math.Abs(float64(z)) > epsilon {
		t.Errorf("child world maps origin to (%v, %v, %v), want (1, 1, 0)", x, y, z)
	}
}

func TestWorldTransformDeepChain(t *testing.T) {
	g := NewSceneGraph()
	prev := NoParent
	var last NodeID
	for i := 0; i < 4; i++ {
		id := g.CreateNode()
		if err := g.SetTransform(id, [3]float32{1, 0, 0}, [3]float32{}, [3]float32{1, 1, 1}); err != nil {
			t.Fatal(err)
		}
		if prev != NoParent {
			if err := g.SetParent(id, prev); err != nil {
				t.Fatal(err)
			}
		}
		prev = id
		last = id
	}

	world, err := g.WorldTransform(last)
	if err != nil {
		t.Fatal(err)
	}
	x, _, _ := common.TransformPoint(world[:], 0, 0, 0)
	if math.Abs(float64(x-4)) > epsilon {
		t.Errorf("4-deep chain of unit translations maps origin x to %v, want 4", x)
	}
}

func TestRemoveNodeRelinksChildren(t *testing.T) {
	g := NewSceneGraph()
	grandparent := g.CreateNode()
	middle := g.CreateNode()
	child := g.CreateNode()

	if err := g.SetParent(middle, grandparent); err != nil {
		t.Fatal(err)
	}
	if err := g.SetParent(child, middle); err != nil {
		t.Fatal(err)
	}

	if err := g.RemoveNode(middle, false); err != nil {
		t.Fatalf("RemoveNode returned error: %v", err)
	}

	p, err := g.Parent(child)
	if err != nil {
		t.Fatalf("child handle invalid after parent removal: %v", err)
	}
	if p != grandparent {
		t.Errorf("child parent after removal = %d, want %d", p, grandparent)
	}
	kids, _ := g.Children(grandparent)
	if len(kids) != 1 || kids[0] != child {
		t.Errorf("grandparent children = %v, want [%d]", kids, child)
	}

	// The removed handle must be dead.
	if err := g.SetVisible(middle, true); !errors.Is(err, common.ErrInvalidNodeID) {
		t.Errorf("operation on removed node error = %v, want ErrInvalidNodeID", err)
	}
}

func TestRemoveNodePromotesChildrenToRoot(t *testing.T) {
	g := NewSceneGraph()
	root := g.CreateNode()
	child := g.CreateNode()
	if err := g.SetParent(child, root); err != nil {
		t.Fatal(err)
	}

	if err := g.RemoveNode(root, false); err != nil {
		t.Fatal(err)
	}

	p, err := g.Parent(child)
	if err != nil {
		t.Fatal(err)
	}
	if p != NoParent {
		t.Errorf("child parent after root removal = %d, want NoParent", p)
	}

	// The promoted child must still be traversed.
	if err := g.SetMesh(child, 0); err != nil {
		t.Fatal(err)
	}
	q := render_queue.NewRenderQueue()
	g.GenerateDrawCommands(q)
	if q.Len() != 1 {
		t.Errorf("draw commands after promotion = %d, want 1", q.Len())
	}
}

func TestRemoveNodeRecursive(t *testing.T) {
	g := NewSceneGraph()
	root := g.CreateNode()
	child := g.CreateNode()
	grandchild := g.CreateNode()
	if err := g.SetParent(child, root); err != nil {
		t.Fatal(err)
	}
	if err := g.SetParent(grandchild, child); err != nil {
		t.Fatal(err)
	}

	if err := g.RemoveNode(root, true); err != nil {
		t.Fatal(err)
	}

	if g.Len() != 0 {
		t.Errorf("live nodes after recursive removal = %d, want 0", g.Len())
	}
	for _, id := range []NodeID{root, child, grandchild} {
		if err := g.SetVisible(id, true); !errors.Is(err, common.ErrInvalidNodeID) {
			t.Errorf("node %d alive after recursive removal", id)
		}
	}
}

func TestGenerateDrawCommandsPreOrder(t *testing.T) {
	g := NewSceneGraph()
	root := g.CreateNode()
	first := g.CreateNode()
	second := g.CreateNode()
	if err := g.SetParent(first, root); err != nil {
		t.Fatal(err)
	}
	if err := g.SetParent(second, root); err != nil {
		t.Fatal(err)
	}

	for i, id := range []NodeID{root, first, second} {
		if err := g.SetMesh(id, i); err != nil {
			t.Fatal(err)
		}
	}

	q := render_queue.NewRenderQueue()
	g.GenerateDrawCommands(q)

	cmds := q.Drain()
	if len(cmds) != 3 {
		t.Fatalf("draw command count = %d, want 3", len(cmds))
	}
	for i, cmd := range cmds {
		if cmd.MeshID != i {
			t.Errorf("command %d mesh id = %d, want %d (pre-order)", i, cmd.MeshID, i)
		}
		if cmd.Kind != render_queue.DrawCommandMesh {
			t.Errorf("command %d kind = %v, want mesh", i, cmd.Kind)
		}
	}
}

func TestHiddenSubtreeSkipped(t *testing.T) {
	g := NewSceneGraph()
	root := g.CreateNode()
	child := g.CreateNode()
	if err := g.SetParent(child, root); err != nil {
		t.Fatal(err)
	}
	if err := g.SetMesh(root, 0); err != nil {
		t.Fatal(err)
	}
	if err := g.SetMesh(child, 1); err != nil {
		t.Fatal(err)
	}
	if err := g.SetVisible(child, true); err != nil {
		t.Fatal(err)
	}
	if err := g.SetVisible(root, false); err != nil {
		t.Fatal(err)
	}

	q := render_queue.NewRenderQueue()
	g.GenerateDrawCommands(q)
	if q.Len() != 0 {
		t.Errorf("hidden root emitted %d commands, want 0; hidden parents hide visible children", q.Len())
	}
}

func TestMeshlessNodesEmitNothing(t *testing.T) {
	g := NewSceneGraph()
	root := g.CreateNode()
	child := g.CreateNode()
	if err := g.SetParent(child, root); err != nil {
		t.Fatal(err)
	}
	if err := g.SetMesh(child, 5); err != nil {
		t.Fatal(err)
	}

	q := render_queue.NewRenderQueue()
	g.GenerateDrawCommands(q)

	cmds := q.Drain()
	if len(cmds) != 1 {
		t.Fatalf("draw command count = %d, want 1", len(cmds))
	}
	if cmds[0].MeshID != 5 {
		t.Errorf("command mesh id = %d, want 5", cmds[0].MeshID)
	}
}

func TestDrawCommandCarriesNodeColor(t *testing.T) {
	g := NewSceneGraph()
	id := g.CreateNode()
	if err := g.SetMesh(id, 0); err != nil {
		t.Fatal(err)
	}
	red := common.NewColor(1, 0, 0, 1)
	if err := g.SetColor(id, red); err != nil {
		t.Fatal(err)
	}

	q := render_queue.NewRenderQueue()
	g.GenerateDrawCommands(q)
	cmds := q.Drain()
	if len(cmds) != 1 {
		t.Fatalf("draw command count = %d, want 1", len(cmds))
	}
	if len(cmds[0].Instances) != 1 {
		t.Fatalf("instance count = %d, want 1", len(cmds[0].Instances))
	}
	if cmds[0].Instances[0].Color != red.Array() {
		t.Errorf("instance color = %v, want %v", cmds[0].Instances[0].Color, red.Array())
	}
}

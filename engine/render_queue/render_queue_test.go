package render_queue

import (
	"testing"

	"github.com/gituser12981u2/3D-Engine/common"
)

func TestQueuePreservesSubmissionOrder(t *testing.T) {
	q := NewRenderQueue()
	for i := 0; i < 5; i++ {
		q.AddDrawCommand(NewMeshCommand(i).Build())
	}

	cmds := q.Drain()
	if len(cmds) != 5 {
		t.Fatalf("drained %d commands, want 5", len(cmds))
	}
	for i, cmd := range cmds {
		if cmd.MeshID != i {
			t.Errorf("command %d has mesh id %d, want %d", i, cmd.MeshID, i)
		}
	}
}

func TestDrainEmptiesQueue(t *testing.T) {
	q := NewRenderQueue(WithInitialCapacity(8))
	q.AddDrawCommand(NewMeshCommand(1).Build())
	q.AddDrawCommand(NewMeshCommand(2).Build())

	if q.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", q.Len())
	}

	first := q.Drain()
	if len(first) != 2 {
		t.Fatalf("first drain returned %d commands, want 2", len(first))
	}
	if q.Len() != 0 {
		t.Errorf("Len() after drain = %d, want 0", q.Len())
	}

	second := q.Drain()
	if len(second) != 0 {
		t.Errorf("second drain returned %d commands, want 0", len(second))
	}
}

func TestQueueReusableAfterDrain(t *testing.T) {
	q := NewRenderQueue()
	q.AddDrawCommand(NewMeshCommand(1).Build())
	q.Drain()

	q.AddDrawCommand(NewMeshCommand(7).Build())
	cmds := q.Drain()
	if len(cmds) != 1 || cmds[0].MeshID != 7 {
		t.Errorf("queue after drain returned %v, want single command with mesh id 7", cmds)
	}
}

func TestMeshCommandDefaults(t *testing.T) {
	cmd := NewMeshCommand(3).Build()

	if cmd.Kind != DrawCommandMesh {
		t.Errorf("Kind = %v, want DrawCommandMesh", cmd.Kind)
	}
	if cmd.Transform != common.IdentityMatrix() {
		t.Errorf("default transform = %v, want identity", cmd.Transform)
	}
	if cmd.Instanced() {
		t.Error("mesh command with no instances reported Instanced() = true")
	}
	if cmd.Indexed() {
		t.Error("mesh command reported Indexed() = true, indices live with the stored mesh")
	}
}

func TestPrimitiveCommandBuilder(t *testing.T) {
	verts := []common.Vertex{
		common.NewVertex(0, 0, 0, common.White),
		common.NewVertex(1, 0, 0, common.White),
		common.NewVertex(0, 1, 0, common.White),
	}
	instances := []InstanceData{
		NewInstanceData(common.IdentityMatrix(), common.NewColor(1, 0, 0, 1)),
	}
	transform := common.IdentityMatrix()
	transform[12] = 5

	cmd := NewPrimitiveCommand(verts, nil, common.PrimitiveTriangle).
		WithInstances(instances).
		WithTransform(transform).
		Build()

	if cmd.Kind != DrawCommandPrimitive {
		t.Errorf("Kind = %v, want DrawCommandPrimitive", cmd.Kind)
	}
	if len(cmd.Vertices) != 3 {
		t.Errorf("vertex count = %d, want 3", len(cmd.Vertices))
	}
	if cmd.Indexed() {
		t.Error("primitive command without indices reported Indexed() = true")
	}
	if !cmd.Instanced() {
		t.Error("primitive command with instances reported Instanced() = false")
	}
	if cmd.Transform[12] != 5 {
		t.Errorf("transform x translation = %v, want 5", cmd.Transform[12])
	}
}

func TestPrimitiveCommandIndexed(t *testing.T) {
	verts := []common.Vertex{
		common.NewVertex(0, 0, 0, common.White),
		common.NewVertex(1, 0, 0, common.White),
		common.NewVertex(0, 1, 0, common.White),
		common.NewVertex(1, 1, 0, common.White),
	}
	indices := []uint32{0, 1, 2, 2, 1, 3}

	cmd := NewPrimitiveCommand(verts, indices, common.PrimitiveTriangle).Build()
	if !cmd.Indexed() {
		t.Error("primitive command with indices reported Indexed() = false")
	}
	if len(cmd.Indices) != 6 {
		t.Errorf("index count = %d, want 6", len(cmd.Indices))
	}
}

package shape

import (
	"testing"

	"github.com/gituser12981u2/3D-Engine/common"
	"github.com/gituser12981u2/3D-Engine/engine/mesh"
	"github.com/gituser12981u2/3D-Engine/engine/render_queue"
)

// recordingDrawer captures AddMesh and DrawImmediate calls for assertions.
type recordingDrawer struct {
	meshes   []mesh.Mesh
	commands []render_queue.DrawCommand
}

func (d *recordingDrawer) AddMesh(m mesh.Mesh) int {
	d.meshes = append(d.meshes, m)
	return len(d.meshes) - 1
}

func (d *recordingDrawer) DrawImmediate(cmd render_queue.DrawCommand) {
	d.commands = append(d.commands, cmd)
}

func sampleTriangle() []common.Vertex {
	return []common.Vertex{
		common.NewVertex(0, 0.5, 0, common.NewColor(1, 0, 0, 1)),
		common.NewVertex(-0.5, -0.5, 0, common.NewColor(0, 1, 0, 1)),
		common.NewVertex(0.5, -0.5, 0, common.NewColor(0, 0, 1, 1)),
	}
}

func TestPrimitiveBuilderChaining(t *testing.T) {
	transform := common.IdentityMatrix()
	transform[12], transform[13], transform[14] = 1, 2, 3
	instances := []render_queue.InstanceData{
		render_queue.NewInstanceData(common.IdentityMatrix(), common.NewColor(1, 0, 0, 1)),
	}

	b := NewPrimitiveBuilder(sampleTriangle(), common.PrimitiveTriangle).
		WithIndices([]uint32{0, 1, 2}).
		WithTransform(transform).
		WithInstances(instances)

	data := b.Data()
	if len(data.Vertices) != 3 {
		t.Errorf("vertex count = %d, want 3", len(data.Vertices))
	}
	if data.PrimitiveType != common.PrimitiveTriangle {
		t.Errorf("primitive type = %v, want triangle", data.PrimitiveType)
	}
	if len(data.Indices) != 3 {
		t.Errorf("index count = %d, want 3", len(data.Indices))
	}
	if data.Transform[12] != 1 || data.Transform[13] != 2 || data.Transform[14] != 3 {
		t.Errorf("transform translation = (%v, %v, %v), want (1, 2, 3)", data.Transform[12], data.Transform[13], data.Transform[14])
	}
	if len(data.Instances) != 1 {
		t.Errorf("instance count = %d, want 1", len(data.Instances))
	}
}

func TestPrimitiveBuilderDraw(t *testing.T) {
	d := &recordingDrawer{}
	NewPrimitiveBuilder(sampleTriangle(), common.PrimitiveTriangle).Draw(d)

	if len(d.commands) != 1 {
		t.Fatalf("drawer received %d commands, want 1", len(d.commands))
	}
	cmd := d.commands[0]
	if cmd.Kind != render_queue.DrawCommandPrimitive {
		t.Errorf("command kind = %v, want primitive", cmd.Kind)
	}
	if len(d.meshes) != 0 {
		t.Errorf("primitive draw registered %d meshes, want 0", len(d.meshes))
	}
}

func TestMeshBuilderDrawRegistersOnce(t *testing.T) {
	d := &recordingDrawer{}
	b := NewMeshBuilder(sampleTriangle(), common.PrimitiveTriangle).WithIndices([]uint32{0, 1, 2})

	b.Draw(d)
	b.Draw(d)

	if len(d.meshes) != 1 {
		t.Fatalf("mesh registered %d times, want 1", len(d.meshes))
	}
	if len(d.commands) != 2 {
		t.Fatalf("drawer received %d commands, want 2", len(d.commands))
	}
	for i, cmd := range d.commands {
		if cmd.Kind != render_queue.DrawCommandMesh {
			t.Errorf("command %d kind = %v, want mesh", i, cmd.Kind)
		}
		if cmd.MeshID != 0 {
			t.Errorf("command %d mesh id = %d, want 0", i, cmd.MeshID)
		}
	}
}

func TestTriangleBuilder(t *testing.T) {
	tri := NewTriangleBuilder(
		[3]float32{0, 0.5, 0},
		[3]float32{-0.5, -0.5, 0},
		[3]float32{0.5, -0.5, 0},
		common.NewColor(1, 0, 0, 1),
	)

	data := tri.AsPrimitive().Data()
	if len(data.Vertices) != 3 {
		t.Fatalf("triangle vertex count = %d, want 3", len(data.Vertices))
	}
	if data.Vertices[0].Position != [3]float32{0, 0.5, 0} {
		t.Errorf("vertex 0 position = %v, want (0, 0.5, 0)", data.Vertices[0].Position)
	}

	meshData := tri.AsMesh().Data()
	if len(meshData.Indices) != 3 {
		t.Errorf("triangle mesh index count = %d, want 3", len(meshData.Indices))
	}
}

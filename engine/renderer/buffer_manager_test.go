package renderer

import (
	"errors"
	"testing"

	"github.com/gituser12981u2/3D-Engine/common"
	"github.com/gituser12981u2/3D-Engine/engine/render_queue"
)

func TestBufferManagerDefaultCapacities(t *testing.T) {
	m := NewBufferManager()

	vertices := make([]common.Vertex, MaxVertices)
	if err := m.UpdateVertexBuffer(vertices); err != nil {
		t.Fatalf("update at exact vertex capacity failed: %v", err)
	}
	if m.VertexCount() != MaxVertices {
		t.Errorf("expected vertex count %d, got %d", MaxVertices, m.VertexCount())
	}

	indices := make([]uint32, MaxIndices)
	if err := m.UpdateIndexBuffer(indices); err != nil {
		t.Fatalf("update at exact index capacity failed: %v", err)
	}

	instances := make([]render_queue.InstanceData, MaxInstances)
	if err := m.UpdateInstanceBuffer(instances); err != nil {
		t.Fatalf("update at exact instance capacity failed: %v", err)
	}
}

func TestBufferManagerOverflow(t *testing.T) {
	m := NewBufferManager()

	if err := m.UpdateVertexBuffer(make([]common.Vertex, MaxVertices+1)); !errors.Is(err, common.ErrBufferOverflow) {
		t.Errorf("expected buffer overflow for oversized vertex update, got %v", err)
	}
	if err := m.UpdateIndexBuffer(make([]uint32, MaxIndices+1)); !errors.Is(err, common.ErrBufferOverflow) {
		t.Errorf("expected buffer overflow for oversized index update, got %v", err)
	}
	if err := m.UpdateInstanceBuffer(make([]render_queue.InstanceData, MaxInstances+1)); !errors.Is(err, common.ErrBufferOverflow) {
		t.Errorf("expected buffer overflow for oversized instance update, got %v", err)
	}
}

func TestBufferManagerOverflowLeavesStateUntouched(t *testing.T) {
	m := NewBufferManager(WithCapacities(4, 6, 2))

	staged := []common.Vertex{
		common.NewVertex(1, 2, 3, common.White),
		common.NewVertex(4, 5, 6, common.White),
	}
	if err := m.UpdateVertexBuffer(staged); err != nil {
		t.Fatalf("staging vertices failed: %v", err)
	}

	if err := m.UpdateVertexBuffer(make([]common.Vertex, 5)); err == nil {
		t.Fatal("expected overflow for 5 vertices with capacity 4")
	}

	if m.VertexCount() != 2 {
		t.Errorf("overflow changed vertex count to %d", m.VertexCount())
	}
	if got := m.Vertices(); len(got) != 2 || got[0].Position != [3]float32{1, 2, 3} {
		t.Errorf("overflow corrupted staged vertices: %+v", got)
	}
}

func TestBufferManagerViewsMatchCounts(t *testing.T) {
	m := NewBufferManager(WithCapacities(16, 16, 16))

	if err := m.UpdateIndexBuffer([]uint32{0, 1, 2}); err != nil {
		t.Fatalf("staging indices failed: %v", err)
	}
	if got := m.Indices(); len(got) != 3 || got[2] != 2 {
		t.Errorf("unexpected index view: %v", got)
	}

	if err := m.UpdateIndexBuffer([]uint32{7}); err != nil {
		t.Fatalf("restaging indices failed: %v", err)
	}
	if got := m.Indices(); len(got) != 1 || got[0] != 7 {
		t.Errorf("index view not truncated to new count: %v", got)
	}
}

func TestBufferManagerUniformSlot(t *testing.T) {
	m := NewBufferManager()

	vp := common.IdentityMatrix()
	vp[12] = 3
	model := common.IdentityMatrix()
	model[13] = -2

	m.UpdateUniformBuffer(vp, model)

	u := m.Uniforms()
	if u.ViewProjectionMatrix[12] != 3 {
		t.Errorf("view-projection not stored: %v", u.ViewProjectionMatrix)
	}
	if u.ModelMatrix[13] != -2 {
		t.Errorf("model matrix not stored: %v", u.ModelMatrix)
	}
}

func TestBufferManagerDepthSizing(t *testing.T) {
	m := NewBufferManager()

	if !m.EnsureDepthSize(800, 600) {
		t.Error("first depth size request should report a change")
	}
	if m.EnsureDepthSize(800, 600) {
		t.Error("same depth size should be a no-op")
	}
	if !m.EnsureDepthSize(1024, 768) {
		t.Error("new depth size should report a change")
	}

	w, h := m.DepthSize()
	if w != 1024 || h != 768 {
		t.Errorf("expected recorded size 1024x768, got %dx%d", w, h)
	}
}

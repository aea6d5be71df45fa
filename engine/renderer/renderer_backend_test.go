package renderer

import (
	"testing"

	"github.com/gituser12981u2/3D-Engine/common"
)

func TestClassifyDrawCommand(t *testing.T) {
	tests := []struct {
		name          string
		indexCount    int
		instanceCount int
		want          BackendDrawCommandKind
	}{
		{"basic", 0, 0, DrawBasic},
		{"indexed", 36, 0, DrawIndexed},
		{"instanced", 0, 100, DrawInstanced},
		{"indexed instanced", 36, 100, DrawIndexedInstanced},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := ClassifyDrawCommand(common.PrimitiveTriangle, 8, tt.indexCount, tt.instanceCount)
			if cmd.Kind != tt.want {
				t.Errorf("expected kind %d, got %d", tt.want, cmd.Kind)
			}
		})
	}
}

func TestClassifyDrawCommandCarriesExtents(t *testing.T) {
	cmd := ClassifyDrawCommand(common.PrimitiveLine, 24, 36, 4)

	if cmd.PrimitiveType != common.PrimitiveLine {
		t.Errorf("primitive type not carried: %v", cmd.PrimitiveType)
	}
	if cmd.VertexCount != 24 || cmd.VertexStart != 0 {
		t.Errorf("unexpected vertex extents: start %d count %d", cmd.VertexStart, cmd.VertexCount)
	}
	if cmd.IndexCount != 36 || cmd.IndexBufferOffset != 0 {
		t.Errorf("unexpected index extents: offset %d count %d", cmd.IndexBufferOffset, cmd.IndexCount)
	}
	if cmd.IndexType != common.IndexUint32 {
		t.Errorf("expected 32-bit indices, got %v", cmd.IndexType)
	}
	if cmd.InstanceCount != 4 {
		t.Errorf("instance count not carried: %d", cmd.InstanceCount)
	}
}

package common

import (
	"errors"
	"testing"
)

func TestErrorWrapping(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"shader compilation", ShaderCompilationError("bad token"), ErrShaderCompilationFailed},
		{"shader function", ShaderFunctionNotFoundError("vs_main"), ErrShaderFunctionNotFound},
		{"pipeline creation", PipelineCreationError("no device"), ErrPipelineCreationFailed},
		{"draw", DrawError("encoder lost"), ErrDrawFailed},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if !errors.Is(c.err, c.sentinel) {
				t.Errorf("errors.Is(%v, sentinel) = false, want true", c.err)
			}
		})
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	if errors.Is(ErrBufferOverflow, ErrInvalidMeshID) {
		t.Error("ErrBufferOverflow should not match ErrInvalidMeshID")
	}
	if errors.Is(ErrInvalidNodeID, ErrSceneCycle) {
		t.Error("ErrInvalidNodeID should not match ErrSceneCycle")
	}
}

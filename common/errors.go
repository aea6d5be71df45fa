package common

import (
	"errors"
	"fmt"
)

// Sentinel errors for the renderer. Callers classify failures with errors.Is;
// parametrized variants are produced by the constructor functions below and
// wrap their sentinel so classification still works.
var (
	// ErrDeviceNotFound indicates no usable GPU device could be acquired.
	ErrDeviceNotFound = errors.New("graphics device not found")

	// ErrBufferOverflow indicates data submitted to a fixed-capacity buffer
	// exceeds that buffer's capacity. The buffer is left unmodified.
	ErrBufferOverflow = errors.New("buffer overflow")

	// ErrInvalidMeshID indicates a draw command referenced a mesh id with no
	// live entry in mesh storage.
	ErrInvalidMeshID = errors.New("invalid mesh id")

	// ErrInvalidNodeID indicates a scene graph operation referenced an
	// out-of-range or removed node id.
	ErrInvalidNodeID = errors.New("invalid node id")

	// ErrInvalidTextureID indicates a backend operation referenced an unknown texture.
	ErrInvalidTextureID = errors.New("invalid texture id")

	// ErrInvalidPipelineID indicates a backend operation referenced an unknown pipeline.
	ErrInvalidPipelineID = errors.New("invalid pipeline id")

	// ErrSceneCycle indicates a set-parent operation was rejected because it
	// would make a node its own ancestor.
	ErrSceneCycle = errors.New("scene graph cycle")

	// ErrUnsupportedPlatform indicates the current platform has no backend implementation.
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrShaderCompilationFailed is the base error wrapped by ShaderCompilationError.
	ErrShaderCompilationFailed = errors.New("shader compilation failed")

	// ErrShaderFunctionNotFound is the base error wrapped by ShaderFunctionNotFoundError.
	ErrShaderFunctionNotFound = errors.New("shader function not found")

	// ErrPipelineCreationFailed is the base error wrapped by PipelineCreationError.
	ErrPipelineCreationFailed = errors.New("pipeline creation failed")

	// ErrDrawFailed is the base error wrapped by DrawError.
	ErrDrawFailed = errors.New("draw operation failed")
)

// ShaderCompilationError wraps ErrShaderCompilationFailed with the compiler message.
func ShaderCompilationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrShaderCompilationFailed, msg)
}

// ShaderFunctionNotFoundError wraps ErrShaderFunctionNotFound with the missing entry point name.
func ShaderFunctionNotFoundError(name string) error {
	return fmt.Errorf("%w: %s", ErrShaderFunctionNotFound, name)
}

// PipelineCreationError wraps ErrPipelineCreationFailed with the backend's message.
func PipelineCreationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrPipelineCreationFailed, msg)
}

// DrawError wraps ErrDrawFailed with the backend's message.
func DrawError(msg string) error {
	return fmt.Errorf("%w: %s", ErrDrawFailed, msg)
}

// package camera implements the perspective camera whose matrices feed the
// per-draw uniform upload. Input mapping lives with the caller; the camera
// only owns position/orientation and projection parameters.
package camera

import (
	"math"

	"github.com/gituser12981u2/3D-Engine/common"
)

// FOV is clamped to this range by SetFov, matching the scroll-zoom limits.
const (
	MinFovDegrees float32 = 1.0
	MaxFovDegrees float32 = 90.0
)

// Camera is a perspective camera. Matrices are recomputed on mutation, so the
// getters are cheap enough to call once per frame.
type Camera interface {
	// SetPosition moves the camera eye point.
	//
	// Parameters:
	//   - x, y, z: the new eye position in world space
	SetPosition(x, y, z float32)

	// SetTarget changes the point the camera looks at.
	//
	// Parameters:
	//   - x, y, z: the new target in world space
	SetTarget(x, y, z float32)

	// SetUp changes the camera's up vector.
	//
	// Parameters:
	//   - x, y, z: the new up vector
	SetUp(x, y, z float32)

	// Position returns the current eye position.
	//
	// Returns:
	//   - [3]float32: the eye position in world space
	Position() [3]float32

	// SetFov sets the vertical field of view, clamped to
	// [MinFovDegrees, MaxFovDegrees].
	//
	// Parameters:
	//   - degrees: the new field of view in degrees
	SetFov(degrees float32)

	// Fov returns the current vertical field of view in degrees.
	//
	// Returns:
	//   - float32: the field of view
	Fov() float32

	// SetAspect updates the projection aspect ratio, typically on resize.
	//
	// Parameters:
	//   - aspect: viewport width divided by height
	SetAspect(aspect float32)

	// ViewMatrix returns the current world-to-view matrix.
	//
	// Returns:
	//   - [16]float32: the view matrix, column-major
	ViewMatrix() [16]float32

	// ProjectionMatrix returns the current perspective projection matrix.
	//
	// Returns:
	//   - [16]float32: the projection matrix, column-major
	ProjectionMatrix() [16]float32

	// ViewProjectionMatrix returns projection * view.
	//
	// Returns:
	//   - [16]float32: the combined matrix, column-major
	ViewProjectionMatrix() [16]float32

	// InverseProjectionMatrix returns the inverse of the projection matrix,
	// for unprojecting screen points back into view space.
	//
	// Returns:
	//   - [16]float32: the inverse projection matrix, column-major
	//   - bool: false if the projection is singular
	InverseProjectionMatrix() ([16]float32, bool)
}

type camera struct {
	position [3]float32
	target   [3]float32
	up       [3]float32

	fovDegrees float32
	aspect     float32
	near       float32
	far        float32

	view     [16]float32
	proj     [16]float32
	viewProj [16]float32
}

var _ Camera = &camera{}

func (c *camera) SetPosition(x, y, z float32) {
	c.position = [3]float32{x, y, z}
	c.updateView()
}

func (c *camera) SetTarget(x, y, z float32) {
	c.target = [3]float32{x, y, z}
	c.updateView()
}

func (c *camera) SetUp(x, y, z float32) {
	c.up = [3]float32{x, y, z}
	c.updateView()
}

func (c *camera) Position() [3]float32 {
	return c.position
}

func (c *camera) SetFov(degrees float32) {
	c.fovDegrees = min(max(degrees, MinFovDegrees), MaxFovDegrees)
	c.updateProjection()
}

func (c *camera) Fov() float32 {
	return c.fovDegrees
}

func (c *camera) SetAspect(aspect float32) {
	if aspect > 0 {
		c.aspect = aspect
		c.updateProjection()
	}
}

func (c *camera) ViewMatrix() [16]float32 {
	return c.view
}

func (c *camera) ProjectionMatrix() [16]float32 {
	return c.proj
}

func (c *camera) ViewProjectionMatrix() [16]float32 {
	return c.viewProj
}

func (c *camera) InverseProjectionMatrix() ([16]float32, bool) {
	var inv [16]float32
	ok := common.Invert4(inv[:], c.proj[:])
	return inv, ok
}

func (c *camera) updateView() {
	common.LookAt(c.view[:],
		c.position[0], c.position[1], c.position[2],
		c.target[0], c.target[1], c.target[2],
		c.up[0], c.up[1], c.up[2])
	c.updateViewProjection()
}

func (c *camera) updateProjection() {
	fovRadians := c.fovDegrees * math.Pi / 180.0
	common.Perspective(c.proj[:], fovRadians, c.aspect, c.near, c.far)
	c.updateViewProjection()
}

func (c *camera) updateViewProjection() {
	common.Mul4(c.viewProj[:], c.proj[:], c.view[:])
}

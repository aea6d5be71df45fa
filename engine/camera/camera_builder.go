package camera

// CameraBuilderOption is a functional option for configuring a new Camera.
type CameraBuilderOption func(*camera)

// NewCamera creates a perspective camera at (0, 0, 5) looking at the origin
// with a 60 degree field of view.
//
// Parameters:
//   - options: optional configuration options
//
// Returns:
//   - Camera: the new camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &camera{
		position:   [3]float32{0, 0, 5},
		target:     [3]float32{0, 0, 0},
		up:         [3]float32{0, 1, 0},
		fovDegrees: 60,
		aspect:     16.0 / 9.0,
		near:       0.1,
		far:        100,
	}
	for _, option := range options {
		option(c)
	}
	c.updateView()
	c.updateProjection()
	return c
}

// WithPosition sets the initial eye position.
//
// Parameters:
//   - x, y, z: the eye position in world space
//
// Returns:
//   - CameraBuilderOption: the option to pass to NewCamera
func WithPosition(x, y, z float32) CameraBuilderOption {
	return func(c *camera) {
		c.position = [3]float32{x, y, z}
	}
}

// WithTarget sets the initial look-at target.
//
// Parameters:
//   - x, y, z: the target in world space
//
// Returns:
//   - CameraBuilderOption: the option to pass to NewCamera
func WithTarget(x, y, z float32) CameraBuilderOption {
	return func(c *camera) {
		c.target = [3]float32{x, y, z}
	}
}

// WithFov sets the initial vertical field of view in degrees, clamped to
// [MinFovDegrees, MaxFovDegrees].
//
// Parameters:
//   - degrees: the field of view
//
// Returns:
//   - CameraBuilderOption: the option to pass to NewCamera
func WithFov(degrees float32) CameraBuilderOption {
	return func(c *camera) {
		c.fovDegrees = min(max(degrees, MinFovDegrees), MaxFovDegrees)
	}
}

// WithAspect sets the initial aspect ratio.
//
// Parameters:
//   - aspect: viewport width divided by height
//
// Returns:
//   - CameraBuilderOption: the option to pass to NewCamera
func WithAspect(aspect float32) CameraBuilderOption {
	return func(c *camera) {
		if aspect > 0 {
			c.aspect = aspect
		}
	}
}

// WithClipPlanes sets the near and far clipping distances.
//
// Parameters:
//   - near: near plane distance (must be > 0)
//   - far: far plane distance (must be > near)
//
// Returns:
//   - CameraBuilderOption: the option to pass to NewCamera
func WithClipPlanes(near, far float32) CameraBuilderOption {
	return func(c *camera) {
		if near > 0 && far > near {
			c.near = near
			c.far = far
		}
	}
}

package engine

import (
	"sync"
	"time"

	"github.com/gituser12981u2/3D-Engine/engine/profiler"
	"github.com/gituser12981u2/3D-Engine/engine/renderer"
	"github.com/gituser12981u2/3D-Engine/engine/window"
)

// EngineBuilderOption is a functional option for configuring an Engine.
type EngineBuilderOption func(*engine)

// NewEngine creates an engine over a window and a WebGPU renderer. The
// window is created with defaults unless one is supplied via WithWindow;
// the renderer is built over the window's surface unless overridden via
// WithRenderer. Resize events are forwarded to the renderer.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the newly created engine
//   - error: nil, or a backend setup failure
func NewEngine(options ...EngineBuilderOption) (Engine, error) {
	e := &engine{
		tickRateChannel: make(chan time.Duration, 1),
		quitChannel:     make(chan struct{}),
		wg:              sync.WaitGroup{},
		profiler:        profiler.NewProfiler(),
		engineTickRate:  time.Second / 60,
	}

	for _, option := range options {
		option(e)
	}

	if e.window == nil {
		e.window = window.NewWindow()
	}

	if e.renderer == nil {
		backend, err := renderer.NewWGPUBackend(
			e.window.SurfaceDescriptor(),
			e.window.Width(),
			e.window.Height(),
		)
		if err != nil {
			return nil, err
		}
		e.renderer = renderer.NewRenderer(backend)
		e.renderer.Resize(e.window.Width(), e.window.Height())
	}

	e.window.SetResizeCallback(func(width, height int) {
		e.renderer.Resize(width, height)
	})

	return e, nil
}

// WithWindow sets a pre-configured window instead of the default one.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w window.Window) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithRenderer sets a pre-configured renderer instead of building the
// default WebGPU renderer over the window surface.
//
// Parameters:
//   - r: a pre-configured Renderer instance
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderer(r renderer.Renderer) EngineBuilderOption {
	return func(e *engine) {
		e.renderer = r
	}
}

// WithProfiling enables profiling output from construction.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithTickRate sets the logic tick rate in ticks per second. Values <= 0 are
// treated as the default (60Hz).
//
// Parameters:
//   - fps: target ticks per second (default 60)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithTickRate(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			fps = 60.0
		}
		e.engineTickRate = time.Second / time.Duration(fps)
	}
}

// WithRenderFrameLimit caps the render loop's frame rate.
//
// Parameters:
//   - fps: maximum render frames per second (0 = uncapped)
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithRenderFrameLimit(fps float64) EngineBuilderOption {
	return func(e *engine) {
		if fps <= 0 {
			e.renderFrameLimit = 0
			return
		}
		e.renderFrameLimit = time.Second / time.Duration(fps)
	}
}

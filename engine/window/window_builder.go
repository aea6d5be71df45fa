package window

import "fmt"

// WindowBuilderOption is a functional option for configuring a Window.
type WindowBuilderOption func(w *engineWindow)

// NewWindow creates and opens a platform window.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the open window
func NewWindow(options ...WindowBuilderOption) Window {
	w := &engineWindow{
		title:  "Engine",
		width:  1280,
		height: 720,
	}
	for _, option := range options {
		option(w)
	}
	if err := w.initPlatform(); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

// WithTitle sets the window title.
//
// Parameters:
//   - title: the title bar text
//
// Returns:
//   - WindowBuilderOption: the option to pass to NewWindow
func WithTitle(title string) WindowBuilderOption {
	return func(w *engineWindow) {
		w.title = title
	}
}

// WithSize sets the requested window size in screen coordinates. The actual
// drawable size may differ on high-DPI displays.
//
// Parameters:
//   - width, height: the requested size
//
// Returns:
//   - WindowBuilderOption: the option to pass to NewWindow
func WithSize(width, height int) WindowBuilderOption {
	return func(w *engineWindow) {
		if width > 0 {
			w.width = width
		}
		if height > 0 {
			w.height = height
		}
	}
}

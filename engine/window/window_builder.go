package window

// WindowBuilderOption is a functional option for configuring a Window.
// Use the With* functions to create options.
type WindowBuilderOption func(w *windowConfig)

type windowConfig struct {
	title  string
	width  int
	height int
	hidden bool
	maxFPS uint
}

// WithTitle sets the window title displayed in the title bar.
//
// Parameters:
//   - title: the window title text
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithTitle(title string) WindowBuilderOption {
	return func(w *windowConfig) {
		w.title = title
	}
}

// WithSize sets the initial window size.
//
// Parameters:
//   - width: initial width in pixels
//   - height: initial height in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithSize(width, height int) WindowBuilderOption {
	return func(w *windowConfig) {
		w.width = width
		w.height = height
	}
}

// WithHidden creates the window without showing it. Useful for offscreen
// snapshots and tests.
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithHidden() WindowBuilderOption {
	return func(w *windowConfig) {
		w.hidden = true
	}
}

// WithMaxFPS caps the frame rate of the render loop. Zero leaves it
// uncapped.
//
// Parameters:
//   - fps: maximum frames per second
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithMaxFPS(fps uint) WindowBuilderOption {
	return func(w *windowConfig) {
		w.maxFPS = fps
	}
}

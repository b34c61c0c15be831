// Package renderer provides the immediate-mode renderers the window drains
// once per frame: batched line, point and 2D line primitives submitted anew
// every frame by the application.
package renderer

import "github.com/Carmen-Shannon/glint-go/engine/camera"

// Renderer draws one batch of immediate-mode primitives for one camera pass.
// The window invokes every registered renderer after the scene graph, once
// per pass of the active camera.
type Renderer interface {
	// Render draws the pending batch. Implementations flush their batch
	// after the final pass.
	Render(pass int, cam camera.Camera)
}

// PlanarRenderer is the 2D counterpart of Renderer.
type PlanarRenderer interface {
	Render(cam camera.PlanarCamera)
}

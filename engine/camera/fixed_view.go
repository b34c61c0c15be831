package camera

import (
	"github.com/Carmen-Shannon/glint-go/engine/event"
	"github.com/Carmen-Shannon/glint-go/engine/resource"
	"github.com/go-gl/mathgl/mgl32"
)

var _ PlanarCamera = &FixedView{}

// FixedView is the default planar camera: one world unit maps to one pixel
// and the origin sits at the center of the window. It does not react to any
// input.
type FixedView struct {
	width  float32
	height float32
}

// NewFixedView creates a fixed planar camera. The size is learned from the
// first framebuffer-size event.
func NewFixedView() *FixedView {
	return &FixedView{width: 800, height: 600}
}

// HandleEvent tracks resizes; every other event is ignored.
func (c *FixedView) HandleEvent(input InputState, ev event.WindowEvent) {
	if ev.Kind == event.FramebufferSizeEvent && ev.Width > 0 && ev.Height > 0 {
		c.width = float32(ev.Width)
		c.height = float32(ev.Height)
	}
}

// Update is a no-op.
func (c *FixedView) Update(input InputState) {}

// Upload sends the pixel-to-clip projection and an identity view.
func (c *FixedView) Upload(proj, view *resource.ShaderUniform[mgl32.Mat3]) {
	proj.Upload(mgl32.Diag3(mgl32.Vec3{2 / c.width, 2 / c.height, 1}))
	view.Upload(mgl32.Ident3())
}

// Unproject maps window coordinates (origin top-left) to world coordinates
// (origin at the window center, y up).
func (c *FixedView) Unproject(window mgl32.Vec2, size mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{
		window.X() - size.X()/2,
		size.Y()/2 - window.Y(),
	}
}

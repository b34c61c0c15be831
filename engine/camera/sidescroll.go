package camera

import (
	"math"

	"github.com/Carmen-Shannon/glint-go/engine/event"
	"github.com/Carmen-Shannon/glint-go/engine/resource"
	"github.com/go-gl/mathgl/mgl32"
)

var _ PlanarCamera = &Sidescroll{}

// Sidescroll is a planar camera with a movable center and a zoom factor.
// Dragging with the drag button pans, the scroll wheel zooms.
type Sidescroll struct {
	at   mgl32.Vec2
	zoom float32

	dragButton event.MouseButton
	zoomStep   float32

	width      float32
	height     float32
	lastCursor mgl32.Vec2
}

// NewSidescroll creates a side-scrolling planar camera centered on the
// origin at 1:1 zoom.
func NewSidescroll() *Sidescroll {
	return &Sidescroll{
		zoom:       1,
		dragButton: event.Button2,
		zoomStep:   0.9,
		width:      800,
		height:     600,
	}
}

// At returns the world point at the center of the view.
func (c *Sidescroll) At() mgl32.Vec2 { return c.at }

// SetAt centers the view on a world point.
func (c *Sidescroll) SetAt(at mgl32.Vec2) { c.at = at }

// Zoom returns the current zoom factor.
func (c *Sidescroll) Zoom() float32 { return c.zoom }

// SetZoom sets the zoom factor; values greater than 1 magnify.
func (c *Sidescroll) SetZoom(zoom float32) { c.zoom = zoom }

// HandleEvent pans on drag-button drags, zooms on scroll and tracks
// resizes.
func (c *Sidescroll) HandleEvent(input InputState, ev event.WindowEvent) {
	switch ev.Kind {
	case event.CursorPosEvent:
		cursor := mgl32.Vec2{float32(ev.X), float32(ev.Y)}
		dpos := cursor.Sub(c.lastCursor)
		c.lastCursor = cursor

		if input.MouseButtonState(c.dragButton) == event.Press {
			c.at = c.at.Add(mgl32.Vec2{-dpos.X() / c.zoom, dpos.Y() / c.zoom})
		}
	case event.ScrollEvent:
		c.zoom /= float32(math.Pow(float64(c.zoomStep), ev.Y))
	case event.FramebufferSizeEvent:
		if ev.Width > 0 && ev.Height > 0 {
			c.width = float32(ev.Width)
			c.height = float32(ev.Height)
		}
	}
}

// Update is a no-op; the camera only reacts to events.
func (c *Sidescroll) Update(input InputState) {}

// Upload sends the zoomed projection and the centering view matrix.
func (c *Sidescroll) Upload(proj, view *resource.ShaderUniform[mgl32.Mat3]) {
	proj.Upload(mgl32.Diag3(mgl32.Vec3{2 * c.zoom / c.width, 2 * c.zoom / c.height, 1}))

	v := mgl32.Ident3()
	v[6] = -c.at.X()
	v[7] = -c.at.Y()
	view.Upload(v)
}

// Unproject maps window coordinates (origin top-left) to world coordinates.
func (c *Sidescroll) Unproject(window mgl32.Vec2, size mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{
		(window.X()-size.X()/2)/c.zoom + c.at.X(),
		(size.Y()/2-window.Y())/c.zoom + c.at.Y(),
	}
}

// Package camera defines the camera contracts for the 3D and planar scenes
// along with the built-in implementations: ArcBall and FirstPerson for 3D,
// FixedView and Sidescroll for 2D.
package camera

import (
	"github.com/Carmen-Shannon/glint-go/common"
	"github.com/Carmen-Shannon/glint-go/engine/event"
	"github.com/Carmen-Shannon/glint-go/engine/resource"
	"github.com/go-gl/mathgl/mgl32"
)

// InputState is the slice of window state cameras need while reacting to
// events: the current key and button states and the drawable size. The
// window's canvas implements it.
type InputState interface {
	// MouseButtonState reports the current action state of a button.
	MouseButtonState(btn event.MouseButton) event.Action
	// KeyState reports the current action state of a key.
	KeyState(k event.Key) event.Action
	// Size reports the drawable size in pixels.
	Size() (int, int)
}

// Camera drives the view and projection of the 3D scene. Rendering asks the
// camera for one or more passes per frame; every built-in camera uses a
// single pass.
type Camera interface {
	// HandleEvent reacts to one window event (cursor drags, scroll, resize).
	HandleEvent(input InputState, ev event.WindowEvent)
	// Update runs once per frame before rendering, for continuous controls
	// such as held movement keys.
	Update(input InputState)

	// Eye returns the world-space position of the viewer.
	Eye() mgl32.Vec3
	// ViewTransform returns the world-to-camera transformation.
	ViewTransform() common.Isometry3
	// Transformation returns projection * view.
	Transformation() mgl32.Mat4
	// InverseTransformation returns the inverse of Transformation.
	InverseTransformation() mgl32.Mat4
	// ClipPlanes returns the near and far clip distances.
	ClipPlanes() (near, far float32)

	// NumPasses reports how many rendering passes this camera needs.
	NumPasses() int
	// StartPass prepares the backend state for one pass.
	StartPass(pass int)
	// RenderComplete runs after the last pass of a frame.
	RenderComplete()
	// Upload sends the projection and view matrices for a pass to the
	// uniforms of the active effect.
	Upload(pass int, proj, view *resource.ShaderUniform[mgl32.Mat4])
}

// Project maps a world-space point to window coordinates.
//
// Parameters:
//   - c: camera supplying the transformation
//   - world: world-space point
//   - size: window size in pixels
//
// Returns:
//   - mgl32.Vec2: window coordinates with the origin at the bottom-left
func Project(c Camera, world mgl32.Vec3, size mgl32.Vec2) mgl32.Vec2 {
	h := c.Transformation().Mul4x1(world.Vec4(1))
	h = h.Mul(1 / h.W())
	return mgl32.Vec2{
		(h.X() + 1) * size.X() / 2,
		(h.Y() + 1) * size.Y() / 2,
	}
}

// Unproject casts a ray from the viewer through a window point.
//
// Parameters:
//   - c: camera supplying the inverse transformation
//   - window: window coordinates with the origin at the top-left
//   - size: window size in pixels
//
// Returns:
//   - mgl32.Vec3: ray origin on the near plane
//   - mgl32.Vec3: normalized ray direction
func Unproject(c Camera, window mgl32.Vec2, size mgl32.Vec2) (mgl32.Vec3, mgl32.Vec3) {
	normalized := mgl32.Vec4{
		2*window.X()/size.X() - 1,
		2*(size.Y()-window.Y())/size.Y() - 1,
		-1,
		1,
	}

	inv := c.InverseTransformation()
	hpoint := inv.Mul4x1(normalized)
	origin := hpoint.Vec3().Mul(1 / hpoint.W())

	hdir := inv.Mul4x1(mgl32.Vec4{normalized.X(), normalized.Y(), 1, 1})
	at := hdir.Vec3().Mul(1 / hdir.W())

	return origin, at.Sub(origin).Normalize()
}

// PlanarCamera drives the view and projection of the 2D scene, expressed as
// homogeneous 3x3 matrices.
type PlanarCamera interface {
	// HandleEvent reacts to one window event.
	HandleEvent(input InputState, ev event.WindowEvent)
	// Update runs once per frame before rendering.
	Update(input InputState)
	// Upload sends the planar projection and view matrices to the uniforms
	// of the active effect.
	Upload(proj, view *resource.ShaderUniform[mgl32.Mat3])
	// Unproject maps window coordinates (origin top-left) to 2D world
	// coordinates.
	Unproject(window mgl32.Vec2, size mgl32.Vec2) mgl32.Vec2
}

package camera

import (
	"math"

	"github.com/Carmen-Shannon/glint-go/common"
	"github.com/Carmen-Shannon/glint-go/engine/event"
	"github.com/Carmen-Shannon/glint-go/engine/resource"
	"github.com/go-gl/mathgl/mgl32"
)

var _ Camera = &ArcBall{}

// ArcBall orbits a focus point at a distance controlled by the scroll
// wheel. Dragging with the rotate button orbits, dragging with the drag
// button pans the focus point in the view plane.
type ArcBall struct {
	at    mgl32.Vec3
	yaw   float32
	pitch float32
	dist  float32

	minPitch float32
	maxPitch float32
	minDist  float32
	maxDist  float32
	distStep float32

	rotateButton event.MouseButton
	dragButton   event.MouseButton
	resetKey     event.Key

	fov    float32
	aspect float32
	znear  float32
	zfar   float32

	lastCursor mgl32.Vec2

	proj        mgl32.Mat4
	view        mgl32.Mat4
	projView    mgl32.Mat4
	invProjView mgl32.Mat4
}

// ArcBallOption customizes an ArcBall at construction.
type ArcBallOption func(*ArcBall)

// WithFrustum overrides the default perspective parameters.
func WithFrustum(fov, znear, zfar float32) ArcBallOption {
	return func(c *ArcBall) {
		c.fov = fov
		c.znear = znear
		c.zfar = zfar
	}
}

// WithDistanceLimits clamps the orbit distance to [min, max].
func WithDistanceLimits(min, max float32) ArcBallOption {
	return func(c *ArcBall) {
		c.minDist = min
		c.maxDist = max
	}
}

// WithArcBallButtons overrides the rotate and drag mouse buttons.
func WithArcBallButtons(rotate, drag event.MouseButton) ArcBallOption {
	return func(c *ArcBall) {
		c.rotateButton = rotate
		c.dragButton = drag
	}
}

// NewArcBall creates an arc-ball camera looking from eye toward at.
//
// Parameters:
//   - eye: initial viewer position
//   - at: initial focus point
//   - opts: optional overrides
//
// Returns:
//   - *ArcBall: the camera, ready to render with a 1:1 aspect until the
//     first framebuffer-size event arrives
func NewArcBall(eye, at mgl32.Vec3, opts ...ArcBallOption) *ArcBall {
	c := &ArcBall{
		minPitch:     0.01,
		maxPitch:     math.Pi - 0.01,
		minDist:      0.00001,
		maxDist:      1.0e4,
		distStep:     0.95,
		rotateButton: event.Button1,
		dragButton:   event.Button2,
		resetKey:     event.KeyEnter,
		fov:          math.Pi / 4,
		aspect:       1,
		znear:        0.1,
		zfar:         1024,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.SetLookAt(eye, at)
	return c
}

// At returns the focus point.
func (c *ArcBall) At() mgl32.Vec3 { return c.at }

// SetAt moves the focus point, keeping yaw, pitch and distance.
func (c *ArcBall) SetAt(at mgl32.Vec3) {
	c.at = at
	c.updateProjViews()
}

// Yaw returns the orbit angle around the vertical axis.
func (c *ArcBall) Yaw() float32 { return c.yaw }

// SetYaw sets the orbit angle around the vertical axis.
func (c *ArcBall) SetYaw(yaw float32) {
	c.yaw = yaw
	c.updateRestrictions()
	c.updateProjViews()
}

// Pitch returns the orbit angle from the vertical axis.
func (c *ArcBall) Pitch() float32 { return c.pitch }

// SetPitch sets the orbit angle from the vertical axis, clamped away from
// the poles.
func (c *ArcBall) SetPitch(pitch float32) {
	c.pitch = pitch
	c.updateRestrictions()
	c.updateProjViews()
}

// Dist returns the distance from the viewer to the focus point.
func (c *ArcBall) Dist() float32 { return c.dist }

// SetDist sets the orbit distance, clamped to the configured limits.
func (c *ArcBall) SetDist(dist float32) {
	c.dist = dist
	c.updateRestrictions()
	c.updateProjViews()
}

// SetLookAt repositions the camera from an explicit eye and focus point.
func (c *ArcBall) SetLookAt(eye, at mgl32.Vec3) {
	dist := eye.Sub(at).Len()
	c.at = at
	c.dist = dist
	if dist > 0 {
		c.pitch = float32(math.Acos(float64((eye.Y() - at.Y()) / dist)))
		c.yaw = float32(math.Atan2(float64(eye.Z()-at.Z()), float64(eye.X()-at.X())))
	}
	c.updateRestrictions()
	c.updateProjViews()
}

// Eye returns the viewer position derived from the orbit parameters.
func (c *ArcBall) Eye() mgl32.Vec3 {
	sp := common.Sin32(c.pitch)
	return c.at.Add(mgl32.Vec3{
		c.dist * common.Cos32(c.yaw) * sp,
		c.dist * common.Cos32(c.pitch),
		c.dist * common.Sin32(c.yaw) * sp,
	})
}

// ViewTransform returns the world-to-camera transformation.
func (c *ArcBall) ViewTransform() common.Isometry3 {
	return common.Iso3LookAtRH(c.Eye(), c.at, mgl32.Vec3{0, 1, 0})
}

// Transformation returns projection * view.
func (c *ArcBall) Transformation() mgl32.Mat4 { return c.projView }

// InverseTransformation returns the inverse of Transformation.
func (c *ArcBall) InverseTransformation() mgl32.Mat4 { return c.invProjView }

// ClipPlanes returns the near and far clip distances.
func (c *ArcBall) ClipPlanes() (float32, float32) { return c.znear, c.zfar }

// HandleEvent orbits on rotate-button drags, pans on drag-button drags,
// zooms on scroll and recenters on the reset key.
func (c *ArcBall) HandleEvent(input InputState, ev event.WindowEvent) {
	switch ev.Kind {
	case event.CursorPosEvent:
		cursor := mgl32.Vec2{float32(ev.X), float32(ev.Y)}
		dpos := cursor.Sub(c.lastCursor)
		c.lastCursor = cursor

		if input.MouseButtonState(c.rotateButton) == event.Press {
			c.handleRotation(dpos)
		}
		if input.MouseButtonState(c.dragButton) == event.Press {
			c.handleDrag(dpos)
		}
	case event.ScrollEvent:
		c.dist *= float32(math.Pow(float64(c.distStep), ev.Y))
		c.updateRestrictions()
		c.updateProjViews()
	case event.KeyEvent:
		if ev.Key == c.resetKey && ev.Action == event.Press {
			c.at = mgl32.Vec3{}
			c.updateProjViews()
		}
	case event.FramebufferSizeEvent:
		if ev.Height > 0 {
			c.aspect = float32(ev.Width) / float32(ev.Height)
			c.updateProjViews()
		}
	}
}

// Update is a no-op; the arc ball only reacts to events.
func (c *ArcBall) Update(input InputState) {}

// NumPasses reports a single rendering pass.
func (c *ArcBall) NumPasses() int { return 1 }

// StartPass is a no-op for the single-pass arc ball.
func (c *ArcBall) StartPass(pass int) {}

// RenderComplete is a no-op for the single-pass arc ball.
func (c *ArcBall) RenderComplete() {}

// Upload sends the projection and view matrices to the active effect.
func (c *ArcBall) Upload(pass int, proj, view *resource.ShaderUniform[mgl32.Mat4]) {
	proj.Upload(c.proj)
	view.Upload(c.view)
}

func (c *ArcBall) handleRotation(dpos mgl32.Vec2) {
	c.yaw += dpos.X() * 0.005
	c.pitch -= dpos.Y() * 0.005
	c.updateRestrictions()
	c.updateProjViews()
}

func (c *ArcBall) handleDrag(dpos mgl32.Vec2) {
	eye := c.Eye()
	dir := c.at.Sub(eye).Normalize()
	tangent := mgl32.Vec3{0, 1, 0}.Cross(dir).Normalize()
	bitangent := dir.Cross(tangent)
	mult := c.dist / 1000

	c.at = c.at.Add(tangent.Mul(dpos.X() * mult)).Add(bitangent.Mul(dpos.Y() * mult))
	c.updateProjViews()
}

func (c *ArcBall) updateRestrictions() {
	if c.pitch < c.minPitch {
		c.pitch = c.minPitch
	}
	if c.pitch > c.maxPitch {
		c.pitch = c.maxPitch
	}
	if c.dist < c.minDist {
		c.dist = c.minDist
	}
	if c.dist > c.maxDist {
		c.dist = c.maxDist
	}
}

func (c *ArcBall) updateProjViews() {
	c.proj = mgl32.Perspective(c.fov, c.aspect, c.znear, c.zfar)
	c.view = c.ViewTransform().Mat4()
	c.projView = c.proj.Mul4(c.view)
	c.invProjView = c.projView.Inv()
}

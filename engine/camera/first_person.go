package camera

import (
	"math"

	"github.com/Carmen-Shannon/glint-go/common"
	"github.com/Carmen-Shannon/glint-go/engine/event"
	"github.com/Carmen-Shannon/glint-go/engine/resource"
	"github.com/go-gl/mathgl/mgl32"
)

var _ Camera = &FirstPerson{}

// FirstPerson is a free-flying camera. Dragging with the rotate button looks
// around, dragging with the drag button pans, the scroll wheel and the arrow
// keys translate the viewer.
type FirstPerson struct {
	eye   mgl32.Vec3
	yaw   float32
	pitch float32

	moveStep   float32
	minPitch   float32
	maxPitch   float32
	upKey      event.Key
	downKey    event.Key
	leftKey    event.Key
	rightKey   event.Key
	rotateButton event.MouseButton
	dragButton   event.MouseButton

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

// FirstPersonOption customizes a FirstPerson camera at construction.
type FirstPersonOption func(*FirstPerson)

// WithFirstPersonFrustum overrides the default perspective parameters.
func WithFirstPersonFrustum(fov, znear, zfar float32) FirstPersonOption {
	return func(c *FirstPerson) {
		c.fov = fov
		c.znear = znear
		c.zfar = zfar
	}
}

// WithMoveStep overrides the keyboard translation speed, in world units per
// frame.
func WithMoveStep(step float32) FirstPersonOption {
	return func(c *FirstPerson) {
		c.moveStep = step
	}
}

// NewFirstPerson creates a first-person camera at eye looking toward at.
//
// Parameters:
//   - eye: initial viewer position
//   - at: initial point to look toward
//   - opts: optional overrides
//
// Returns:
//   - *FirstPerson: the camera
func NewFirstPerson(eye, at mgl32.Vec3, opts ...FirstPersonOption) *FirstPerson {
	c := &FirstPerson{
		moveStep:     0.5,
		minPitch:     0.01,
		maxPitch:     math.Pi - 0.01,
		upKey:        event.KeyUp,
		downKey:      event.KeyDown,
		leftKey:      event.KeyLeft,
		rightKey:     event.KeyRight,
		rotateButton: event.Button1,
		dragButton:   event.Button2,
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

// SetLookAt repositions the camera from an explicit eye and target point.
func (c *FirstPerson) SetLookAt(eye, at mgl32.Vec3) {
	dist := at.Sub(eye).Len()
	c.eye = eye
	if dist > 0 {
		c.pitch = float32(math.Acos(float64((at.Y() - eye.Y()) / dist)))
		c.yaw = float32(math.Atan2(float64(at.Z()-eye.Z()), float64(at.X()-eye.X())))
	}
	c.updateRestrictions()
	c.updateProjViews()
}

// Eye returns the viewer position.
func (c *FirstPerson) Eye() mgl32.Vec3 { return c.eye }

// SetEye moves the viewer.
func (c *FirstPerson) SetEye(eye mgl32.Vec3) {
	c.eye = eye
	c.updateProjViews()
}

// ViewDir returns the direction the camera looks toward.
func (c *FirstPerson) ViewDir() mgl32.Vec3 {
	sp := common.Sin32(c.pitch)
	return mgl32.Vec3{
		common.Cos32(c.yaw) * sp,
		common.Cos32(c.pitch),
		common.Sin32(c.yaw) * sp,
	}
}

// ViewTransform returns the world-to-camera transformation.
func (c *FirstPerson) ViewTransform() common.Isometry3 {
	return common.Iso3LookAtRH(c.eye, c.eye.Add(c.ViewDir()), mgl32.Vec3{0, 1, 0})
}

// Transformation returns projection * view.
func (c *FirstPerson) Transformation() mgl32.Mat4 { return c.projView }

// InverseTransformation returns the inverse of Transformation.
func (c *FirstPerson) InverseTransformation() mgl32.Mat4 { return c.invProjView }

// ClipPlanes returns the near and far clip distances.
func (c *FirstPerson) ClipPlanes() (float32, float32) { return c.znear, c.zfar }

// HandleEvent looks around on rotate-button drags, pans on drag-button
// drags, moves along the view direction on scroll and tracks resizes.
func (c *FirstPerson) HandleEvent(input InputState, ev event.WindowEvent) {
	switch ev.Kind {
	case event.CursorPosEvent:
		cursor := mgl32.Vec2{float32(ev.X), float32(ev.Y)}
		dpos := cursor.Sub(c.lastCursor)
		c.lastCursor = cursor

		if input.MouseButtonState(c.rotateButton) == event.Press {
			c.yaw += dpos.X() * 0.005
			c.pitch += dpos.Y() * 0.005
			c.updateRestrictions()
			c.updateProjViews()
		}
		if input.MouseButtonState(c.dragButton) == event.Press {
			dir := c.ViewDir()
			tangent := mgl32.Vec3{0, 1, 0}.Cross(dir).Normalize()
			bitangent := dir.Cross(tangent)
			c.eye = c.eye.Add(tangent.Mul(dpos.X() * 0.01)).Add(bitangent.Mul(dpos.Y() * 0.01))
			c.updateProjViews()
		}
	case event.ScrollEvent:
		c.eye = c.eye.Add(c.ViewDir().Mul(float32(ev.Y) * c.moveStep))
		c.updateProjViews()
	case event.FramebufferSizeEvent:
		if ev.Height > 0 {
			c.aspect = float32(ev.Width) / float32(ev.Height)
			c.updateProjViews()
		}
	}
}

// Update translates the viewer while the movement keys are held.
func (c *FirstPerson) Update(input InputState) {
	dir := c.ViewDir()
	tangent := mgl32.Vec3{0, 1, 0}.Cross(dir).Normalize()
	var moved bool

	if input.KeyState(c.upKey) == event.Press {
		c.eye = c.eye.Add(dir.Mul(c.moveStep))
		moved = true
	}
	if input.KeyState(c.downKey) == event.Press {
		c.eye = c.eye.Sub(dir.Mul(c.moveStep))
		moved = true
	}
	if input.KeyState(c.rightKey) == event.Press {
		c.eye = c.eye.Sub(tangent.Mul(c.moveStep))
		moved = true
	}
	if input.KeyState(c.leftKey) == event.Press {
		c.eye = c.eye.Add(tangent.Mul(c.moveStep))
		moved = true
	}

	if moved {
		c.updateProjViews()
	}
}

// NumPasses reports a single rendering pass.
func (c *FirstPerson) NumPasses() int { return 1 }

// StartPass is a no-op for the single-pass camera.
func (c *FirstPerson) StartPass(pass int) {}

// RenderComplete is a no-op for the single-pass camera.
func (c *FirstPerson) RenderComplete() {}

// Upload sends the projection and view matrices to the active effect.
func (c *FirstPerson) Upload(pass int, proj, view *resource.ShaderUniform[mgl32.Mat4]) {
	proj.Upload(c.proj)
	view.Upload(c.view)
}

func (c *FirstPerson) updateRestrictions() {
	if c.pitch < c.minPitch {
		c.pitch = c.minPitch
	}
	if c.pitch > c.maxPitch {
		c.pitch = c.maxPitch
	}
}

func (c *FirstPerson) updateProjViews() {
	c.proj = mgl32.Perspective(c.fov, c.aspect, c.znear, c.zfar)
	c.view = c.ViewTransform().Mat4()
	c.projView = c.proj.Mul4(c.view)
	c.invProjView = c.projView.Inv()
}

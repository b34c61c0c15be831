package camera

import (
	"testing"

	"github.com/Carmen-Shannon/glint-go/engine/event"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubInput replays fixed button and key states.
type stubInput struct {
	buttons map[event.MouseButton]event.Action
	keys    map[event.Key]event.Action
	width   int
	height  int
}

func (s *stubInput) MouseButtonState(btn event.MouseButton) event.Action {
	return s.buttons[btn]
}

func (s *stubInput) KeyState(k event.Key) event.Action {
	return s.keys[k]
}

func (s *stubInput) Size() (int, int) {
	return s.width, s.height
}

func newStubInput() *stubInput {
	return &stubInput{
		buttons: map[event.MouseButton]event.Action{},
		keys:    map[event.Key]event.Action{},
		width:   800,
		height:  600,
	}
}

func assertVec3Near(t *testing.T, expected, actual mgl32.Vec3) {
	t.Helper()
	assert.InDelta(t, expected.X(), actual.X(), 1e-4)
	assert.InDelta(t, expected.Y(), actual.Y(), 1e-4)
	assert.InDelta(t, expected.Z(), actual.Z(), 1e-4)
}

func TestArcBallEyeMatchesConstruction(t *testing.T) {
	eye := mgl32.Vec3{0, 0, 5}
	c := NewArcBall(eye, mgl32.Vec3{})

	assertVec3Near(t, eye, c.Eye())
	assert.InDelta(t, 5, c.Dist(), 1e-5)
	assertVec3Near(t, mgl32.Vec3{}, c.At())
}

func TestArcBallEyeFollowsFocusPoint(t *testing.T) {
	c := NewArcBall(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{})
	c.SetAt(mgl32.Vec3{1, 2, 3})
	assertVec3Near(t, mgl32.Vec3{1, 2, 8}, c.Eye())
}

func TestArcBallScrollZooms(t *testing.T) {
	c := NewArcBall(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{})
	input := newStubInput()

	c.HandleEvent(input, event.WindowEvent{Kind: event.ScrollEvent, Y: 1})
	assert.InDelta(t, 9.5, c.Dist(), 1e-4)

	c.HandleEvent(input, event.WindowEvent{Kind: event.ScrollEvent, Y: -1})
	assert.InDelta(t, 10, c.Dist(), 1e-4)
}

func TestArcBallDistanceLimits(t *testing.T) {
	c := NewArcBall(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{}, WithDistanceLimits(5, 15))

	c.SetDist(100)
	assert.InDelta(t, 15, c.Dist(), 1e-5)
	c.SetDist(1)
	assert.InDelta(t, 5, c.Dist(), 1e-5)
}

func TestArcBallRotateDragOrbits(t *testing.T) {
	c := NewArcBall(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{})
	input := newStubInput()

	// Establish the cursor position, then drag with the rotate button held.
	c.HandleEvent(input, event.WindowEvent{Kind: event.CursorPosEvent, X: 100, Y: 100})
	input.buttons[event.Button1] = event.Press
	yaw := c.Yaw()
	c.HandleEvent(input, event.WindowEvent{Kind: event.CursorPosEvent, X: 150, Y: 100})

	assert.InDelta(t, yaw+50*0.005, c.Yaw(), 1e-5)
	assert.InDelta(t, 5, c.Dist(), 1e-5)
}

func TestArcBallResetKeyRecentersFocus(t *testing.T) {
	c := NewArcBall(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{3, 3, 3})
	input := newStubInput()

	c.HandleEvent(input, event.WindowEvent{
		Kind: event.KeyEvent, Key: event.KeyEnter, Action: event.Press,
	})
	assertVec3Near(t, mgl32.Vec3{}, c.At())
}

func TestArcBallFramebufferSizeChangesProjection(t *testing.T) {
	c := NewArcBall(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{})
	input := newStubInput()
	before := c.Transformation()

	c.HandleEvent(input, event.WindowEvent{
		Kind: event.FramebufferSizeEvent, Width: 800, Height: 600,
	})
	assert.NotEqual(t, before, c.Transformation())
}

func TestProjectUnprojectRoundTrip(t *testing.T) {
	c := NewArcBall(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{})
	c.HandleEvent(newStubInput(), event.WindowEvent{
		Kind: event.FramebufferSizeEvent, Width: 800, Height: 600,
	})
	size := mgl32.Vec2{800, 600}

	// The focus point projects to the center of the window.
	win := Project(c, mgl32.Vec3{}, size)
	assert.InDelta(t, 400, win.X(), 1e-2)
	assert.InDelta(t, 300, win.Y(), 1e-2)

	// Unprojecting the center casts a ray straight at the scene.
	origin, dir := Unproject(c, mgl32.Vec2{400, 300}, size)
	require.InDelta(t, 0, origin.X(), 1e-3)
	require.InDelta(t, 0, origin.Y(), 1e-3)
	assertVec3Near(t, mgl32.Vec3{0, 0, -1}, dir)
}

func TestFixedViewUnproject(t *testing.T) {
	c := NewFixedView()
	size := mgl32.Vec2{800, 600}

	center := c.Unproject(mgl32.Vec2{400, 300}, size)
	assert.Equal(t, mgl32.Vec2{0, 0}, center)

	topLeft := c.Unproject(mgl32.Vec2{0, 0}, size)
	assert.Equal(t, mgl32.Vec2{-400, 300}, topLeft)
}

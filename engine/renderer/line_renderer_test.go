package renderer

import (
	"testing"

	"github.com/Carmen-Shannon/glint-go/common"
	"github.com/Carmen-Shannon/glint-go/engine/camera"
	"github.com/Carmen-Shannon/glint-go/engine/event"
	"github.com/Carmen-Shannon/glint-go/engine/gfx"
	"github.com/Carmen-Shannon/glint-go/engine/resource"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCamera struct{}

func (stubCamera) HandleEvent(camera.InputState, event.WindowEvent) {}
func (stubCamera) Update(camera.InputState) {}
func (stubCamera) Eye() mgl32.Vec3 { return mgl32.Vec3{} }
func (stubCamera) ViewTransform() common.Isometry3 { return common.IdentityIso3() }
func (stubCamera) Transformation() mgl32.Mat4 { return mgl32.Ident4() }
func (stubCamera) InverseTransformation() mgl32.Mat4 { return mgl32.Ident4() }
func (stubCamera) ClipPlanes() (float32, float32) { return 0.1, 1024 }
func (stubCamera) NumPasses() int { return 1 }
func (stubCamera) StartPass(int) {}
func (stubCamera) RenderComplete() {}
func (stubCamera) Upload(pass int, proj, view *resource.ShaderUniform[mgl32.Mat4]) {
	proj.Upload(mgl32.Ident4())
	view.Upload(mgl32.Ident4())
}

type stubPlanarCamera struct{}

func (stubPlanarCamera) HandleEvent(camera.InputState, event.WindowEvent) {}
func (stubPlanarCamera) Update(camera.InputState) {}
func (stubPlanarCamera) Upload(proj, view *resource.ShaderUniform[mgl32.Mat3]) {
	proj.Upload(mgl32.Ident3())
	view.Upload(mgl32.Ident3())
}
func (stubPlanarCamera) Unproject(window mgl32.Vec2, size mgl32.Vec2) mgl32.Vec2 {
	return window
}

func TestLineRendererBatchesAndClears(t *testing.T) {
	ctx := gfx.NewTestContext()
	r := NewLineRenderer(ctx)
	assert.False(t, r.NeedsRendering())

	r.DrawLine(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{1, 1, 1})
	r.DrawLine(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0})
	assert.True(t, r.NeedsRendering())

	r.Render(0, stubCamera{})

	// Two segments, four vertices; the color stream is interleaved so the
	// draw covers half the buffer elements.
	require.Len(t, ctx.Draws, 1)
	assert.Equal(t, gfx.Lines, ctx.Draws[0].Mode)
	assert.Equal(t, int32(4), ctx.Draws[0].Count)

	assert.False(t, r.NeedsRendering())
}

func TestLineRendererEmptyBatchSkipsDraw(t *testing.T) {
	ctx := gfx.NewTestContext()
	r := NewLineRenderer(ctx)

	r.Render(0, stubCamera{})
	assert.Empty(t, ctx.Draws)
}

func TestLineRendererRestoresLineWidth(t *testing.T) {
	ctx := gfx.NewTestContext()
	r := NewLineRenderer(ctx)
	r.SetLineWidth(3)

	r.DrawLine(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{1, 1, 1})
	r.Render(0, stubCamera{})

	assert.Equal(t, float32(1), ctx.CurrentLineWidth)
}

func TestLineRendererClampsWidth(t *testing.T) {
	r := NewLineRenderer(gfx.NewTestContext())
	r.SetLineWidth(0)
	assert.Equal(t, float32(1e-7), r.lineWidth)
}

func TestPointRendererBatchesAndClears(t *testing.T) {
	ctx := gfx.NewTestContext()
	r := NewPointRenderer(ctx)

	r.DrawPoint(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{1, 0, 0})
	r.DrawPoint(mgl32.Vec3{4, 5, 6}, mgl32.Vec3{0, 1, 0})
	r.DrawPoint(mgl32.Vec3{7, 8, 9}, mgl32.Vec3{0, 0, 1})
	assert.True(t, r.NeedsRendering())

	r.Render(0, stubCamera{})

	require.Len(t, ctx.Draws, 1)
	assert.Equal(t, gfx.Points, ctx.Draws[0].Mode)
	assert.Equal(t, int32(3), ctx.Draws[0].Count)
	assert.False(t, r.NeedsRendering())
}

func TestPlanarLineRendererBatchesAndClears(t *testing.T) {
	ctx := gfx.NewTestContext()
	r := NewPlanarLineRenderer(ctx)

	r.DrawLine(mgl32.Vec2{}, mgl32.Vec2{10, 0}, mgl32.Vec3{1, 1, 1})
	assert.True(t, r.NeedsRendering())

	r.Render(stubPlanarCamera{})

	require.Len(t, ctx.Draws, 1)
	assert.Equal(t, gfx.Lines, ctx.Draws[0].Mode)
	assert.Equal(t, int32(2), ctx.Draws[0].Count)
	assert.False(t, r.NeedsRendering())
}

func TestRenderersReuseStreamAllocation(t *testing.T) {
	ctx := gfx.NewTestContext()
	r := NewLineRenderer(ctx)

	r.DrawLine(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{1, 1, 1})
	r.Render(0, stubCamera{})
	r.DrawLine(mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 1, 1})
	r.Render(0, stubCamera{})

	// The second frame fits the first frame's allocation and goes through a
	// sub-range upload.
	assert.Equal(t, 1, ctx.BufferDataCount)
	assert.Equal(t, 1, ctx.BufferSubDataCount)
}

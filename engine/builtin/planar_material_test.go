package builtin

import (
	"testing"

	"github.com/Carmen-Shannon/glint-go/common"
	"github.com/Carmen-Shannon/glint-go/engine/camera"
	"github.com/Carmen-Shannon/glint-go/engine/event"
	"github.com/Carmen-Shannon/glint-go/engine/geometry"
	"github.com/Carmen-Shannon/glint-go/engine/gfx"
	"github.com/Carmen-Shannon/glint-go/engine/resource"
	"github.com/Carmen-Shannon/glint-go/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPlanarCamera struct{}

func (stubPlanarCamera) HandleEvent(camera.InputState, event.WindowEvent) {}
func (stubPlanarCamera) Update(camera.InputState) {}
func (stubPlanarCamera) Upload(proj, view *resource.ShaderUniform[mgl32.Mat3]) {
	proj.Upload(mgl32.Ident3())
	view.Upload(mgl32.Ident3())
}
func (stubPlanarCamera) Unproject(window mgl32.Vec2, size mgl32.Vec2) mgl32.Vec2 { return window }

type planarRenderFixture struct {
	ctx    *gfx.TestContext
	mat    *PlanarObjectMaterial
	object *scene.PlanarObject
	mesh   *resource.PlanarMesh
}

func newPlanarRenderFixture(t *testing.T) *planarRenderFixture {
	t.Helper()
	ctx := gfx.NewTestContext()
	mat := NewPlanarObjectMaterial(ctx)
	tm := geometry.UnitRectangle()
	mesh := resource.NewPlanarMesh(ctx, tm.Coords, tm.Faces, tm.UVs, false)
	textures := resource.NewTextureManager(ctx)
	object := scene.NewPlanarObject(mesh, 1, 1, 1, textures.GetDefault(), mat)
	return &planarRenderFixture{ctx: ctx, mat: mat, object: object, mesh: mesh}
}

func (f *planarRenderFixture) render() {
	f.object.Render(common.IdentityIso2(), mgl32.Vec2{1, 1}, stubPlanarCamera{})
}

func TestPlanarMaterialSurfaceDraw(t *testing.T) {
	f := newPlanarRenderFixture(t)
	f.render()

	require.Len(t, f.ctx.Draws, 1)
	d := f.ctx.Draws[0]
	assert.Equal(t, gfx.Triangles, d.Mode)
	assert.Equal(t, int32(f.mesh.NumPts()), d.Count)
	assert.True(t, d.Indexed)
	assert.Empty(t, f.ctx.EnabledAttribs)
}

func TestPlanarMaterialWireframeRestoresLineWidth(t *testing.T) {
	f := newPlanarRenderFixture(t)
	f.object.Data().SetLinesWidth(3)
	f.render()

	require.Len(t, f.ctx.Draws, 2)
	assert.Equal(t, float32(1), f.ctx.CurrentLineWidth)
}

func TestPlanarMaterialPointsOverlayDisablesCulling(t *testing.T) {
	f := newPlanarRenderFixture(t)
	f.object.Data().EnableBackfaceCulling(true)
	f.object.Data().SetPointsSize(4)
	f.render()

	// The surface pass enables culling; the point overlay must turn it
	// back off so back-facing vertices stay visible.
	require.Len(t, f.ctx.Draws, 2)
	_, culling := f.ctx.EnabledCaps[gfx.CullFaceCap]
	assert.False(t, culling)
}

package builtin

import (
	"testing"

	"github.com/Carmen-Shannon/glint-go/common"
	"github.com/Carmen-Shannon/glint-go/engine/camera"
	"github.com/Carmen-Shannon/glint-go/engine/event"
	"github.com/Carmen-Shannon/glint-go/engine/geometry"
	"github.com/Carmen-Shannon/glint-go/engine/gfx"
	"github.com/Carmen-Shannon/glint-go/engine/light"
	"github.com/Carmen-Shannon/glint-go/engine/resource"
	"github.com/Carmen-Shannon/glint-go/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCamera struct{}

func (stubCamera) HandleEvent(camera.InputState, event.WindowEvent) {}
func (stubCamera) Update(camera.InputState) {}
func (stubCamera) Eye() mgl32.Vec3 { return mgl32.Vec3{0, 0, 5} }
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

type renderFixture struct {
	ctx    *gfx.TestContext
	mat    *ObjectMaterial
	object *scene.Object
	mesh   *resource.Mesh
}

func newRenderFixture(t *testing.T) *renderFixture {
	t.Helper()
	ctx := gfx.NewTestContext()
	mat := NewObjectMaterial(ctx)
	tm := geometry.UnitCube()
	mesh := resource.NewMesh(ctx, tm.Coords, tm.Faces, tm.Normals, tm.UVs, false)
	textures := resource.NewTextureManager(ctx)
	object := scene.NewObject(mesh, 1, 1, 1, textures.GetDefault(), mat)
	return &renderFixture{ctx: ctx, mat: mat, object: object, mesh: mesh}
}

func (f *renderFixture) render() {
	f.object.Render(0, common.IdentityIso3(), mgl32.Vec3{1, 1, 1}, stubCamera{}, light.StickToCamera())
}

func TestObjectMaterialSurfaceDraw(t *testing.T) {
	f := newRenderFixture(t)
	f.render()

	require.Len(t, f.ctx.Draws, 1)
	d := f.ctx.Draws[0]
	assert.Equal(t, gfx.Triangles, d.Mode)
	assert.Equal(t, int32(f.mesh.NumPts()), d.Count)
	assert.True(t, d.Indexed)

	// Attributes are cleaned up after the draw.
	assert.Empty(t, f.ctx.EnabledAttribs)
}

func TestObjectMaterialWireframeWithPolygonMode(t *testing.T) {
	f := newRenderFixture(t)
	f.object.Data().SetLinesWidth(2)
	f.render()

	// Surface plus wireframe redraw, both through the index buffer.
	require.Len(t, f.ctx.Draws, 2)
	assert.Equal(t, gfx.Triangles, f.ctx.Draws[1].Mode)

	require.Len(t, f.ctx.PolygonModes, 2)
	assert.Equal(t, [2]uint32{gfx.FrontAndBack, gfx.PolygonLine}, f.ctx.PolygonModes[0])
	assert.Equal(t, [2]uint32{gfx.FrontAndBack, gfx.PolygonFill}, f.ctx.PolygonModes[1])

	assert.Equal(t, float32(1), f.ctx.CurrentLineWidth)
}

func TestObjectMaterialWireframeFallback(t *testing.T) {
	f := newRenderFixture(t)
	f.ctx.PolygonModeSupported = false
	f.object.Data().SetLinesWidth(2)
	f.render()

	require.Len(t, f.ctx.Draws, 2)
	d := f.ctx.Draws[1]
	assert.Equal(t, gfx.Lines, d.Mode)
	assert.Equal(t, int32(f.mesh.NumPts()*2), d.Count)
}

func TestObjectMaterialPointsFallback(t *testing.T) {
	f := newRenderFixture(t)
	f.ctx.PolygonModeSupported = false
	f.object.Data().SetPointsSize(4)
	f.render()

	require.Len(t, f.ctx.Draws, 2)
	d := f.ctx.Draws[1]
	assert.Equal(t, gfx.Points, d.Mode)
	assert.Equal(t, int32(f.mesh.NumPts()), d.Count)
	assert.Equal(t, float32(1), f.ctx.CurrentPointSize)
}

func TestObjectMaterialSurfaceDisabled(t *testing.T) {
	f := newRenderFixture(t)
	f.object.Data().SetSurfaceRendering(false)
	f.render()

	assert.Empty(t, f.ctx.Draws)
}

func TestObjectMaterialPointsOverlayDisablesCulling(t *testing.T) {
	f := newRenderFixture(t)
	f.object.Data().EnableBackfaceCulling(true)
	f.object.Data().SetPointsSize(4)
	f.render()

	// The surface pass enables culling; the point overlay must turn it
	// back off so back-facing vertices stay visible.
	require.Len(t, f.ctx.Draws, 2)
	_, culling := f.ctx.EnabledCaps[gfx.CullFaceCap]
	assert.False(t, culling)
}

func TestObjectMaterialCullingToggle(t *testing.T) {
	f := newRenderFixture(t)
	f.object.Data().EnableBackfaceCulling(false)
	f.render()

	_, culling := f.ctx.EnabledCaps[gfx.CullFaceCap]
	assert.False(t, culling)

	f.object.Data().EnableBackfaceCulling(true)
	f.render()
	_, culling = f.ctx.EnabledCaps[gfx.CullFaceCap]
	assert.True(t, culling)
}

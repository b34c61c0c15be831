package scene

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/glint-go/common"
	"github.com/Carmen-Shannon/glint-go/engine/camera"
	"github.com/Carmen-Shannon/glint-go/engine/event"
	"github.com/Carmen-Shannon/glint-go/engine/gfx"
	"github.com/Carmen-Shannon/glint-go/engine/light"
	"github.com/Carmen-Shannon/glint-go/engine/resource"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingMaterial counts renders and remembers the transforms it was
// handed.
type recordingMaterial struct {
	renders    int
	transforms []common.Isometry3
	scales     []mgl32.Vec3
}

func (m *recordingMaterial) Render(pass int, transform common.Isometry3, scale mgl32.Vec3, cam camera.Camera, lgt light.Light, data *ObjectData, mesh *resource.Mesh) {
	m.renders++
	m.transforms = append(m.transforms, transform)
	m.scales = append(m.scales, scale)
}

type recordingPlanarMaterial struct {
	renders    int
	transforms []common.Isometry2
}

func (m *recordingPlanarMaterial) Render(transform common.Isometry2, scale mgl32.Vec2, cam camera.PlanarCamera, data *PlanarObjectData, mesh *resource.PlanarMesh) {
	m.renders++
	m.transforms = append(m.transforms, transform)
}

type stubPlanarCamera struct{}

func (stubPlanarCamera) HandleEvent(camera.InputState, event.WindowEvent) {}
func (stubPlanarCamera) Update(camera.InputState) {}
func (stubPlanarCamera) Upload(*resource.ShaderUniform[mgl32.Mat3], *resource.ShaderUniform[mgl32.Mat3]) {
}
func (stubPlanarCamera) Unproject(window mgl32.Vec2, size mgl32.Vec2) mgl32.Vec2 {
	return window
}

// stubCamera satisfies camera.Camera without touching any graphics state.
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
func (stubCamera) Upload(int, *resource.ShaderUniform[mgl32.Mat4], *resource.ShaderUniform[mgl32.Mat4]) {
}

func newTestRegistries(t *testing.T) (*Registries, *recordingMaterial, *recordingPlanarMaterial) {
	t.Helper()
	mat := &recordingMaterial{}
	planarMat := &recordingPlanarMaterial{}
	return NewRegistries(gfx.NewTestContext(), mat, planarMat), mat, planarMat
}

func assertVec3Near(t *testing.T, expected, actual mgl32.Vec3) {
	t.Helper()
	assert.InDelta(t, expected.X(), actual.X(), 1e-5)
	assert.InDelta(t, expected.Y(), actual.Y(), 1e-5)
	assert.InDelta(t, expected.Z(), actual.Z(), 1e-5)
}

func TestWorldTransformationComposesDownTheChain(t *testing.T) {
	root := NewSceneNode()
	a := root.AddGroup()
	a.SetLocalTranslation(mgl32.Vec3{1, 0, 0})
	b := a.AddGroup()
	b.SetLocalTranslation(mgl32.Vec3{0, 1, 0})

	assertVec3Near(t, mgl32.Vec3{1, 1, 0}, b.WorldTransformation().Translation)

	// The recompute is lazy: mutating A leaves B stale until queried.
	a.AppendTranslation(mgl32.Vec3{0, 0, 5})
	assert.False(t, nodeImpl(b).upToDate)
	assertVec3Near(t, mgl32.Vec3{1, 1, 5}, b.WorldTransformation().Translation)
}

func TestInverseWorldTransformationUndoesWorld(t *testing.T) {
	root := NewSceneNode()
	a := root.AddGroup()
	a.SetLocalTranslation(mgl32.Vec3{1, 0, 0})
	b := a.AddGroup()
	b.SetLocalTranslation(mgl32.Vec3{0, 2, 0})
	b.SetLocalRotation(mgl32.QuatRotate(float32(math.Pi/2), mgl32.Vec3{0, 0, 1}))

	world := b.WorldTransformation()
	inv := b.InverseWorldTransformation()

	p := world.TransformPoint(mgl32.Vec3{3, 4, 5})
	assertVec3Near(t, mgl32.Vec3{3, 4, 5}, inv.TransformPoint(p))
	assertVec3Near(t, mgl32.Vec3{}, inv.TransformPoint(world.Translation))
}

func TestWorldTransformationAfterUnlink(t *testing.T) {
	root := NewSceneNode()
	a := root.AddGroup()
	a.SetLocalTranslation(mgl32.Vec3{1, 0, 0})
	b := a.AddGroup()
	b.SetLocalTranslation(mgl32.Vec3{0, 1, 0})

	assertVec3Near(t, mgl32.Vec3{1, 1, 0}, b.WorldTransformation().Translation)

	b.Unlink()
	require.True(t, b.IsRoot())
	assertVec3Near(t, mgl32.Vec3{0, 1, 0}, b.WorldTransformation().Translation)
	assert.Empty(t, nodeImpl(a).children)
}

func TestUnlinkIsIdempotentOnRoots(t *testing.T) {
	n := NewSceneNode()
	n.Unlink()
	assert.True(t, n.IsRoot())
}

func TestAddChildRejectsParentedNodes(t *testing.T) {
	root := NewSceneNode()
	child := root.AddGroup()

	other := NewSceneNode()
	require.Panics(t, func() { other.AddChild(child) })
}

func TestInvalidationSkipsAlreadyStaleSubtrees(t *testing.T) {
	root := NewSceneNode()
	a := root.AddGroup()
	b := a.AddGroup()

	// Resolve the whole chain, then make A stale while forcing B to look
	// fresh. Invalidating the root must not descend past the stale A, so
	// B keeps its flag.
	b.WorldTransformation()
	nodeImpl(a).upToDate = false
	nodeImpl(b).upToDate = true

	root.SetLocalTranslation(mgl32.Vec3{9, 0, 0})
	assert.False(t, nodeImpl(root).upToDate)
	assert.False(t, nodeImpl(a).upToDate)
	assert.True(t, nodeImpl(b).upToDate)
}

func TestWorldScaleUsesParentLocalScale(t *testing.T) {
	root := NewSceneNode()
	root.SetLocalScale(2, 2, 2)
	a := root.AddGroup()
	a.SetLocalScale(3, 3, 3)
	b := a.AddGroup()
	b.SetLocalScale(4, 4, 4)

	// Scale composes against the parent's local scale, not its resolved
	// world scale, so the grandparent factor does not reach B.
	b.WorldTransformation()
	assertVec3Near(t, mgl32.Vec3{12, 12, 12}, nodeImpl(b).worldScale)
}

func TestAppendVsPrependRotation(t *testing.T) {
	quarter := mgl32.QuatRotate(float32(math.Pi/2), mgl32.Vec3{0, 0, 1})

	n := NewSceneNode()
	n.SetLocalTranslation(mgl32.Vec3{1, 0, 0})
	n.AppendRotation(quarter)
	// Appending rotates about the parent's origin, moving the node.
	assertVec3Near(t, mgl32.Vec3{0, 1, 0}, n.LocalTransformation().Translation)

	m := NewSceneNode()
	m.SetLocalTranslation(mgl32.Vec3{1, 0, 0})
	m.PrependToLocalRotation(quarter)
	// Prepending rotates in the node's own frame, leaving it in place.
	assertVec3Near(t, mgl32.Vec3{1, 0, 0}, m.LocalTransformation().Translation)

	c := NewSceneNode()
	c.SetLocalTranslation(mgl32.Vec3{1, 0, 0})
	c.AppendRotationWrtCenter(quarter)
	assertVec3Near(t, mgl32.Vec3{1, 0, 0}, c.LocalTransformation().Translation)
	rotated := c.LocalTransformation().Rotation.Rotate(mgl32.Vec3{1, 0, 0})
	assertVec3Near(t, mgl32.Vec3{0, 1, 0}, rotated)
}

func TestRenderResolvesTransformsTopDown(t *testing.T) {
	reg, mat, _ := newTestRegistries(t)
	root := NewRootNode(reg)

	a := root.AddCube(1, 1, 1)
	a.SetLocalTranslation(mgl32.Vec3{1, 0, 0})
	b := a.AddCube(1, 1, 1)
	b.SetLocalTranslation(mgl32.Vec3{0, 2, 0})

	root.Render(0, stubCamera{}, light.StickToCamera())

	require.Equal(t, 2, mat.renders)
	assertVec3Near(t, mgl32.Vec3{1, 0, 0}, mat.transforms[0].Translation)
	assertVec3Near(t, mgl32.Vec3{1, 2, 0}, mat.transforms[1].Translation)
}

func TestRenderSkipsInvisibleSubtrees(t *testing.T) {
	reg, mat, _ := newTestRegistries(t)
	root := NewRootNode(reg)

	group := root.AddGroup()
	group.AddCube(1, 1, 1)
	group.SetVisible(false)
	root.AddSphere(1)

	root.Render(0, stubCamera{}, light.StickToCamera())
	assert.Equal(t, 1, mat.renders)
}

func TestConvenienceConstructorScales(t *testing.T) {
	reg, _, _ := newTestRegistries(t)
	root := NewRootNode(reg)

	sphere := root.AddSphere(2)
	assertVec3Near(t, mgl32.Vec3{4, 4, 4}, sphere.LocalScale())

	cone := root.AddCone(1, 3)
	assertVec3Near(t, mgl32.Vec3{2, 3, 2}, cone.LocalScale())

	cube := root.AddCube(1, 2, 3)
	assertVec3Near(t, mgl32.Vec3{1, 2, 3}, cube.LocalScale())
}

func TestAddGeomWithNamePanicsOnUnknownMesh(t *testing.T) {
	reg, _, _ := newTestRegistries(t)
	root := NewRootNode(reg)
	require.Panics(t, func() { root.AddGeomWithName("no-such-mesh", mgl32.Vec3{1, 1, 1}) })
}

func TestConvenienceConstructorsNeedRegistries(t *testing.T) {
	detached := NewSceneNode()
	require.Panics(t, func() { detached.AddCube(1, 1, 1) })
}

func TestRegistriesPropagateOnAttach(t *testing.T) {
	reg, _, _ := newTestRegistries(t)
	root := NewRootNode(reg)

	orphan := NewSceneNode()
	grandchild := orphan.AddGroup()
	root.AddChild(orphan)

	assert.NotPanics(t, func() { grandchild.AddCube(1, 1, 1) })
}

func TestSubtreeSettersReachEveryObject(t *testing.T) {
	reg, _, _ := newTestRegistries(t)
	root := NewRootNode(reg)

	a := root.AddCube(1, 1, 1)
	group := root.AddGroup()
	b := group.AddSphere(1)

	root.SetColor(0.25, 0.5, 0.75)
	want := mgl32.Vec3{0.25, 0.5, 0.75}
	assert.Equal(t, want, a.Object().Data().Color())
	assert.Equal(t, want, b.Object().Data().Color())

	count := 0
	root.ApplyToObjects(func(*Object) { count++ })
	assert.Equal(t, 2, count)

	nodes := 0
	root.ApplyToSceneNodes(func(SceneNode) { nodes++ })
	assert.Equal(t, 4, nodes)
}

func TestSetMaterialWithNamePanicsOnUnknownName(t *testing.T) {
	reg, _, _ := newTestRegistries(t)
	root := NewRootNode(reg)
	root.AddCube(1, 1, 1)
	require.Panics(t, func() { root.SetMaterialWithName("missing") })
}

func TestReorientFacesTarget(t *testing.T) {
	n := NewSceneNode()
	n.Reorient(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	assertVec3Near(t, mgl32.Vec3{0, 0, 5}, n.LocalTransformation().Translation)
}

func TestSharedMeshMutationIsVisibleAcrossNodes(t *testing.T) {
	reg, _, _ := newTestRegistries(t)
	root := NewRootNode(reg)
	ctx := reg.Context().(*gfx.TestContext)

	coords := []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	faces := []common.Face{{0, 1, 2}}
	mesh := resource.NewMesh(reg.Context(), coords, faces, nil, nil, true)

	a := root.AddMesh(mesh, mgl32.Vec3{1, 1, 1})
	b := root.AddMesh(mesh, mgl32.Vec3{1, 1, 1})

	mesh.Coords().LoadToGPU()
	subBefore := ctx.BufferSubDataCount
	mesh.Coords().LoadToGPU()
	require.Equal(t, subBefore, ctx.BufferSubDataCount)

	a.ModifyVertices(func(vs []mgl32.Vec3) { vs[0] = mgl32.Vec3{5, 0, 0} })

	// Both nodes alias the same mesh, so the write made through one is
	// observed through the other.
	var seen mgl32.Vec3
	b.ReadVertices(func(vs []mgl32.Vec3) { seen = vs[0] })
	assertVec3Near(t, mgl32.Vec3{5, 0, 0}, seen)

	// The mutation marked the shared vertex buffer dirty again.
	mesh.Coords().LoadToGPU()
	assert.Equal(t, subBefore+1, ctx.BufferSubDataCount)
}

func TestPlanarWorldTransformationComposes(t *testing.T) {
	root := NewPlanarSceneNode()
	a := root.AddGroup()
	a.SetLocalTranslation(mgl32.Vec2{1, 0})
	b := a.AddGroup()
	b.SetLocalTranslation(mgl32.Vec2{0, 1})

	got := b.WorldTransformation().Translation
	assert.InDelta(t, 1, got.X(), 1e-5)
	assert.InDelta(t, 1, got.Y(), 1e-5)
}

func TestPlanarInverseWorldTransformationUndoesWorld(t *testing.T) {
	root := NewPlanarSceneNode()
	a := root.AddGroup()
	a.SetLocalTranslation(mgl32.Vec2{1, 0})
	a.SetLocalRotation(float32(math.Pi / 2))

	world := a.WorldTransformation()
	inv := a.InverseWorldTransformation()

	p := world.TransformPoint(mgl32.Vec2{2, 3})
	back := inv.TransformPoint(p)
	assert.InDelta(t, 2, back.X(), 1e-5)
	assert.InDelta(t, 3, back.Y(), 1e-5)
}

func TestPlanarApplyToSceneNodesVisitsSubtree(t *testing.T) {
	reg, _, _ := newTestRegistries(t)
	root := NewPlanarRootNode(reg)
	group := root.AddGroup()
	group.AddRectangle(1, 1)

	nodes := 0
	root.ApplyToSceneNodes(func(PlanarSceneNode) { nodes++ })
	assert.Equal(t, 3, nodes)
}

func TestPlanarRenderComposesRotationParentFirst(t *testing.T) {
	reg, _, planarMat := newTestRegistries(t)
	root := NewPlanarRootNode(reg)

	a := root.AddGroup()
	a.SetLocalRotation(float32(math.Pi / 2))
	b := a.AddRectangle(1, 1)
	b.SetLocalTranslation(mgl32.Vec2{1, 0})

	root.Render(stubPlanarCamera{})

	require.Equal(t, 1, planarMat.renders)
	got := planarMat.transforms[0].Translation
	assert.InDelta(t, 0, got.X(), 1e-5)
	assert.InDelta(t, 1, got.Y(), 1e-5)
}

func TestPlanarConvexPolygonNeedsThreePoints(t *testing.T) {
	reg, _, _ := newTestRegistries(t)
	root := NewPlanarRootNode(reg)
	require.Panics(t, func() {
		root.AddConvexPolygon([]mgl32.Vec2{{0, 0}, {1, 0}}, mgl32.Vec2{1, 1})
	})
}

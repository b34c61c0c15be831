package scene

import (
	"github.com/Carmen-Shannon/glint-go/common"
	"github.com/Carmen-Shannon/glint-go/engine/camera"
	"github.com/Carmen-Shannon/glint-go/engine/geometry"
	"github.com/Carmen-Shannon/glint-go/engine/light"
	"github.com/Carmen-Shannon/glint-go/engine/loader"
	"github.com/Carmen-Shannon/glint-go/engine/resource"
	"github.com/go-gl/mathgl/mgl32"
)

// SceneNode is a handle to one node of the 3D scene graph. A node carries a
// local transformation and scale relative to its parent, optionally an
// object to draw, and any number of children.
//
// World transformations resolve lazily: mutating a node marks its subtree
// stale, and the world transform is recomputed only when rendering reaches
// the node or WorldTransformation is called. Nodes are not safe for
// concurrent use; the scene graph belongs to the render thread.
type SceneNode interface {
	// Render draws the subtree for one camera pass. The window calls this
	// once per pass on its scene root.
	Render(pass int, cam camera.Camera, lgt light.Light)

	// AddChild attaches a root node to this node. Panics when the node
	// already has a parent: a node lives under at most one parent, so
	// detach it with Unlink first.
	AddChild(child SceneNode)
	// AddGroup creates and attaches an empty child used to move several
	// objects together.
	AddGroup() SceneNode
	// Unlink detaches this node from its parent, making it a root. The
	// node keeps its local transformation.
	Unlink()
	// IsRoot reports whether this node has no parent.
	IsRoot() bool

	// HasObject reports whether this node carries geometry of its own.
	HasObject() bool
	// Object returns the attached object, or nil.
	Object() *Object

	// AddCube attaches a child rendering a cuboid with the given extents.
	AddCube(wx, wy, wz float32) SceneNode
	// AddSphere attaches a child rendering a sphere with the given radius.
	AddSphere(r float32) SceneNode
	// AddCone attaches a child rendering a cone with the given base radius
	// and height, apex up.
	AddCone(r, h float32) SceneNode
	// AddCylinder attaches a child rendering a cylinder with the given
	// radius and height.
	AddCylinder(r, h float32) SceneNode
	// AddCapsule attaches a child rendering a capsule with the given
	// radius and cylindrical height.
	AddCapsule(r, h float32) SceneNode
	// AddQuad attaches a child rendering a subdivided rectangle in the
	// local XY plane, facing +Z.
	AddQuad(w, h float32, usubs, vsubs uint32) SceneNode
	// AddGeomWithName attaches a child rendering a mesh from the mesh
	// registry, scaled by scale. Panics on an unknown name.
	AddGeomWithName(name string, scale mgl32.Vec3) SceneNode
	// AddMesh attaches a child rendering an explicit mesh, scaled by
	// scale.
	AddMesh(mesh *resource.Mesh, scale mgl32.Vec3) SceneNode
	// AddTriMesh wraps raw geometry in a mesh and attaches it.
	AddTriMesh(tm geometry.TriMesh, scale mgl32.Vec3) SceneNode
	// AddObjFile loads a Wavefront OBJ file (with its MTL library resolved
	// against mtlDir) and attaches one child per object group under a new
	// group node.
	AddObjFile(objPath, mtlDir string, scale mgl32.Vec3) (SceneNode, error)

	// SetColor sets the surface color of every object in the subtree.
	SetColor(r, g, b float32)
	// SetTexture binds a texture to every object in the subtree.
	SetTexture(texture *resource.Texture)
	// SetTextureFromFile loads an image through the texture registry and
	// binds it to every object in the subtree.
	SetTextureFromFile(path, name string) error
	// SetTextureWithName binds an already registered texture to every
	// object in the subtree. Panics on an unknown name.
	SetTextureWithName(name string)
	// SetLinesWidth enables the wireframe overlay on every object in the
	// subtree; zero disables it.
	SetLinesWidth(width float32)
	// SetLinesColor overrides the wireframe color on every object in the
	// subtree; nil falls back to the surface color.
	SetLinesColor(color *mgl32.Vec3)
	// SetPointsSize enables the vertex point overlay on every object in
	// the subtree; zero disables it.
	SetPointsSize(size float32)
	// SetSurfaceRendering toggles the filled surface on every object in
	// the subtree.
	SetSurfaceRendering(active bool)
	// EnableBackfaceCulling toggles face culling on every object in the
	// subtree.
	EnableBackfaceCulling(active bool)
	// SetMaterial swaps the material of every object in the subtree.
	SetMaterial(material Material)
	// SetMaterialWithName swaps in a material from the material registry.
	// Panics on an unknown name.
	SetMaterialWithName(name string)

	// IsVisible reports whether the subtree is rendered.
	IsVisible() bool
	// SetVisible shows or hides the subtree.
	SetVisible(visible bool)

	// ModifyVertices mutates the vertex positions of this node's mesh and
	// marks the buffer for re-upload.
	ModifyVertices(f func([]mgl32.Vec3))
	// ReadVertices reads the vertex positions of this node's mesh.
	ReadVertices(f func([]mgl32.Vec3))
	// ModifyNormals mutates the normals of this node's mesh.
	ModifyNormals(f func([]mgl32.Vec3))
	// ReadNormals reads the normals of this node's mesh.
	ReadNormals(f func([]mgl32.Vec3))
	// ModifyFaces mutates the triangle indices of this node's mesh.
	ModifyFaces(f func([]common.Face))
	// ReadFaces reads the triangle indices of this node's mesh.
	ReadFaces(f func([]common.Face))
	// ModifyUVs mutates the texture coordinates of this node's mesh.
	ModifyUVs(f func([]mgl32.Vec2))
	// ReadUVs reads the texture coordinates of this node's mesh.
	ReadUVs(f func([]mgl32.Vec2))
	// RecomputeNormals rebuilds this node's mesh normals from its faces.
	RecomputeNormals()

	// LocalScale returns the scale relative to the parent.
	LocalScale() mgl32.Vec3
	// SetLocalScale sets the scale relative to the parent.
	SetLocalScale(sx, sy, sz float32)
	// LocalTransformation returns the transformation relative to the
	// parent.
	LocalTransformation() common.Isometry3
	// SetLocalTransformation replaces the transformation relative to the
	// parent.
	SetLocalTransformation(t common.Isometry3)
	// SetLocalTranslation replaces only the translational part.
	SetLocalTranslation(t mgl32.Vec3)
	// SetLocalRotation replaces only the rotational part.
	SetLocalRotation(r mgl32.Quat)
	// WorldTransformation resolves and returns the transformation relative
	// to the scene root.
	WorldTransformation() common.Isometry3
	// InverseWorldTransformation resolves and returns the inverse of the
	// transformation relative to the scene root.
	InverseWorldTransformation() common.Isometry3
	// AppendTransformation composes t with the local transformation in the
	// parent's frame (t applied last).
	AppendTransformation(t common.Isometry3)
	// AppendTranslation translates the node in the parent's frame.
	AppendTranslation(t mgl32.Vec3)
	// AppendRotation rotates the node about the parent's origin.
	AppendRotation(r mgl32.Quat)
	// AppendRotationWrtCenter rotates the node about its own origin,
	// leaving its translation unchanged.
	AppendRotationWrtCenter(r mgl32.Quat)
	// PrependToLocalTransformation composes t with the local
	// transformation in the node's own frame (t applied first).
	PrependToLocalTransformation(t common.Isometry3)
	// PrependToLocalTranslation translates the node in its own frame.
	PrependToLocalTranslation(t mgl32.Vec3)
	// PrependToLocalRotation rotates the node in its own frame.
	PrependToLocalRotation(r mgl32.Quat)
	// Reorient places the node at eye, oriented to face target.
	Reorient(eye, target, up mgl32.Vec3)

	// ApplyToObjects runs f on every object of the subtree, this node's
	// own object first.
	ApplyToObjects(f func(*Object))
	// ApplyToSceneNodes runs f on every node of the subtree, this node
	// first.
	ApplyToSceneNodes(f func(SceneNode))
}

var _ SceneNode = &sceneNode{}

type sceneNode struct {
	localScale     mgl32.Vec3
	localTransform common.Isometry3
	worldScale     mgl32.Vec3
	worldTransform common.Isometry3
	visible        bool
	upToDate       bool
	children       []*sceneNode
	object         *Object
	parent         *sceneNode
	registries     *Registries
}

// NewSceneNode creates a detached, empty, visible node with an identity
// transformation. A node needs registries, inherited when it is attached
// under a window's scene root, before the convenience constructors work.
func NewSceneNode() SceneNode {
	return newSceneNode(nil)
}

// NewRootNode creates the scene root of a window, carrying the registries
// every descendant inherits.
func NewRootNode(reg *Registries) SceneNode {
	return newSceneNode(reg)
}

func newSceneNode(reg *Registries) *sceneNode {
	return &sceneNode{
		localScale:     mgl32.Vec3{1, 1, 1},
		localTransform: common.IdentityIso3(),
		worldScale:     mgl32.Vec3{1, 1, 1},
		worldTransform: common.IdentityIso3(),
		visible:        true,
		registries:     reg,
	}
}

func nodeImpl(n SceneNode) *sceneNode {
	impl, ok := n.(*sceneNode)
	if !ok {
		panic("scene: SceneNode implementations cannot be provided externally")
	}
	return impl
}

func (n *sceneNode) reg() *Registries {
	if n.registries == nil {
		panic("scene: node is not attached to a window scene; no resource registries available")
	}
	return n.registries
}

// Render draws the subtree rooted at this node.
func (n *sceneNode) Render(pass int, cam camera.Camera, lgt light.Light) {
	if n.visible {
		n.doRender(common.IdentityIso3(), mgl32.Vec3{1, 1, 1}, pass, cam, lgt)
	}
}

func (n *sceneNode) doRender(transform common.Isometry3, scale mgl32.Vec3, pass int, cam camera.Camera, lgt light.Light) {
	if !n.upToDate {
		n.upToDate = true
		n.worldTransform = transform.Mul(n.localTransform)
		n.worldScale = mulElem(scale, n.localScale)
	}

	if n.object != nil {
		n.object.Render(pass, n.worldTransform, n.worldScale, cam, lgt)
	}

	for _, c := range n.children {
		if c.visible {
			c.doRender(n.worldTransform, n.worldScale, pass, cam, lgt)
		}
	}
}

// invalidate marks this subtree stale. Children that are already stale are
// skipped: their own invalidation already covered everything below them, so
// repeated invalidations stay cheap.
func (n *sceneNode) invalidate() {
	n.upToDate = false
	for _, c := range n.children {
		if c.upToDate {
			c.invalidate()
		}
	}
}

// update resolves the world transformation by walking up to the nearest
// up-to-date ancestor. The world scale composes with the parent's local
// scale; see the package notes on scale composition.
func (n *sceneNode) update() {
	if n.upToDate {
		return
	}
	if n.parent != nil {
		n.parent.update()
		n.worldTransform = n.localTransform.Mul(n.parent.worldTransform)
		n.worldScale = mulElem(n.localScale, n.parent.localScale)
		n.upToDate = true
		return
	}
	n.worldTransform = n.localTransform
	n.worldScale = n.localScale
	n.upToDate = true
}

func (n *sceneNode) AddChild(child SceneNode) {
	c := nodeImpl(child)
	if !c.IsRoot() {
		panic("scene: cannot attach a node that already has a parent; Unlink it first")
	}
	c.parent = n
	if c.registries == nil {
		c.setRegistries(n.registries)
	}
	c.invalidate()
	n.children = append(n.children, c)
}

func (n *sceneNode) setRegistries(reg *Registries) {
	n.registries = reg
	for _, c := range n.children {
		if c.registries == nil {
			c.setRegistries(reg)
		}
	}
}

func (n *sceneNode) AddGroup() SceneNode {
	child := newSceneNode(n.registries)
	n.AddChild(child)
	return child
}

func (n *sceneNode) Unlink() {
	p := n.parent
	if p == nil {
		return
	}
	n.parent = nil

	for i, c := range p.children {
		if c == n {
			last := len(p.children) - 1
			p.children[i] = p.children[last]
			p.children[last] = nil
			p.children = p.children[:last]
			break
		}
	}
	n.invalidate()
}

func (n *sceneNode) IsRoot() bool {
	return n.parent == nil
}

func (n *sceneNode) HasObject() bool {
	return n.object != nil
}

func (n *sceneNode) Object() *Object {
	return n.object
}

func (n *sceneNode) addObject(mesh *resource.Mesh, scale mgl32.Vec3) SceneNode {
	reg := n.reg()
	child := newSceneNode(n.registries)
	child.localScale = scale
	child.object = NewObject(mesh, 1, 1, 1, reg.Textures.GetDefault(), reg.Materials.GetDefault())
	n.AddChild(child)
	return child
}

func (n *sceneNode) AddCube(wx, wy, wz float32) SceneNode {
	return n.AddGeomWithName(resource.MeshCube, mgl32.Vec3{wx, wy, wz})
}

func (n *sceneNode) AddSphere(r float32) SceneNode {
	return n.AddGeomWithName(resource.MeshSphere, mgl32.Vec3{r * 2, r * 2, r * 2})
}

func (n *sceneNode) AddCone(r, h float32) SceneNode {
	return n.AddGeomWithName(resource.MeshCone, mgl32.Vec3{r * 2, h, r * 2})
}

func (n *sceneNode) AddCylinder(r, h float32) SceneNode {
	return n.AddGeomWithName(resource.MeshCylinder, mgl32.Vec3{r * 2, h, r * 2})
}

func (n *sceneNode) AddCapsule(r, h float32) SceneNode {
	return n.AddTriMesh(geometry.Capsule(r, h, 50, 25), mgl32.Vec3{1, 1, 1})
}

func (n *sceneNode) AddQuad(w, h float32, usubs, vsubs uint32) SceneNode {
	tm := geometry.Quad(w, h, usubs, vsubs)
	mesh := resource.NewMesh(n.reg().Context(), tm.Coords, tm.Faces, tm.Normals, tm.UVs, true)
	res := n.AddMesh(mesh, mgl32.Vec3{1, 1, 1})
	res.EnableBackfaceCulling(false)
	return res
}

func (n *sceneNode) AddGeomWithName(name string, scale mgl32.Vec3) SceneNode {
	mesh, ok := n.reg().Meshes.Get(name)
	if !ok {
		panic("scene: unknown mesh name: " + name)
	}
	return n.AddMesh(mesh, scale)
}

func (n *sceneNode) AddMesh(mesh *resource.Mesh, scale mgl32.Vec3) SceneNode {
	return n.addObject(mesh, scale)
}

func (n *sceneNode) AddTriMesh(tm geometry.TriMesh, scale mgl32.Vec3) SceneNode {
	mesh := resource.NewMesh(n.reg().Context(), tm.Coords, tm.Faces, tm.Normals, tm.UVs, false)
	return n.AddMesh(mesh, scale)
}

func (n *sceneNode) AddObjFile(objPath, mtlDir string, scale mgl32.Vec3) (SceneNode, error) {
	reg := n.reg()
	entries, err := loader.LoadObjFile(reg.Context(), objPath, mtlDir)
	if err != nil {
		return nil, err
	}

	group := n.AddGroup()
	for _, entry := range entries {
		child := group.AddMesh(entry.Mesh, scale)
		if mtl := entry.Material; mtl != nil {
			child.SetColor(mtl.Diffuse.X(), mtl.Diffuse.Y(), mtl.Diffuse.Z())
			if mtl.DiffuseTexture != "" {
				if err := child.SetTextureFromFile(mtl.DiffuseTexture, mtl.DiffuseTexture); err != nil {
					return nil, err
				}
			}
		}
	}
	return group, nil
}

func (n *sceneNode) SetColor(r, g, b float32) {
	n.ApplyToObjects(func(o *Object) { o.Data().SetColor(r, g, b) })
}

func (n *sceneNode) SetTexture(texture *resource.Texture) {
	n.ApplyToObjects(func(o *Object) { o.Data().SetTexture(texture) })
}

func (n *sceneNode) SetTextureFromFile(path, name string) error {
	tex, err := n.reg().Textures.Add(path, name)
	if err != nil {
		return err
	}
	n.SetTexture(tex)
	return nil
}

func (n *sceneNode) SetTextureWithName(name string) {
	tex, ok := n.reg().Textures.Get(name)
	if !ok {
		panic("scene: unknown texture name: " + name)
	}
	n.SetTexture(tex)
}

func (n *sceneNode) SetLinesWidth(width float32) {
	n.ApplyToObjects(func(o *Object) { o.Data().SetLinesWidth(width) })
}

func (n *sceneNode) SetLinesColor(color *mgl32.Vec3) {
	n.ApplyToObjects(func(o *Object) { o.Data().SetLinesColor(color) })
}

func (n *sceneNode) SetPointsSize(size float32) {
	n.ApplyToObjects(func(o *Object) { o.Data().SetPointsSize(size) })
}

func (n *sceneNode) SetSurfaceRendering(active bool) {
	n.ApplyToObjects(func(o *Object) { o.Data().SetSurfaceRendering(active) })
}

func (n *sceneNode) EnableBackfaceCulling(active bool) {
	n.ApplyToObjects(func(o *Object) { o.Data().EnableBackfaceCulling(active) })
}

func (n *sceneNode) SetMaterial(material Material) {
	n.ApplyToObjects(func(o *Object) { o.SetMaterial(material) })
}

func (n *sceneNode) SetMaterialWithName(name string) {
	mat, ok := n.reg().Materials.Get(name)
	if !ok {
		panic("scene: unknown material name: " + name)
	}
	n.SetMaterial(mat)
}

func (n *sceneNode) IsVisible() bool {
	return n.visible
}

func (n *sceneNode) SetVisible(visible bool) {
	n.visible = visible
}

func (n *sceneNode) ModifyVertices(f func([]mgl32.Vec3)) {
	if n.object != nil {
		f(n.object.Mesh().Coords().MutData())
	}
}

func (n *sceneNode) ReadVertices(f func([]mgl32.Vec3)) {
	if n.object != nil {
		f(n.object.Mesh().Coords().Data())
	}
}

func (n *sceneNode) ModifyNormals(f func([]mgl32.Vec3)) {
	if n.object != nil {
		f(n.object.Mesh().Normals().MutData())
	}
}

func (n *sceneNode) ReadNormals(f func([]mgl32.Vec3)) {
	if n.object != nil {
		f(n.object.Mesh().Normals().Data())
	}
}

func (n *sceneNode) ModifyFaces(f func([]common.Face)) {
	if n.object != nil {
		f(n.object.Mesh().Faces().MutData())
	}
}

func (n *sceneNode) ReadFaces(f func([]common.Face)) {
	if n.object != nil {
		f(n.object.Mesh().Faces().Data())
	}
}

func (n *sceneNode) ModifyUVs(f func([]mgl32.Vec2)) {
	if n.object != nil {
		f(n.object.Mesh().UVs().MutData())
	}
}

func (n *sceneNode) ReadUVs(f func([]mgl32.Vec2)) {
	if n.object != nil {
		f(n.object.Mesh().UVs().Data())
	}
}

func (n *sceneNode) RecomputeNormals() {
	if n.object != nil {
		n.object.Mesh().RecomputeNormals()
	}
}

func (n *sceneNode) LocalScale() mgl32.Vec3 {
	return n.localScale
}

func (n *sceneNode) SetLocalScale(sx, sy, sz float32) {
	n.localScale = mgl32.Vec3{sx, sy, sz}
	n.invalidate()
}

func (n *sceneNode) LocalTransformation() common.Isometry3 {
	return n.localTransform
}

func (n *sceneNode) SetLocalTransformation(t common.Isometry3) {
	n.localTransform = t
	n.invalidate()
}

func (n *sceneNode) SetLocalTranslation(t mgl32.Vec3) {
	n.localTransform.Translation = t
	n.invalidate()
}

func (n *sceneNode) SetLocalRotation(r mgl32.Quat) {
	n.localTransform.Rotation = r
	n.invalidate()
}

func (n *sceneNode) WorldTransformation() common.Isometry3 {
	n.update()
	return n.worldTransform
}

func (n *sceneNode) InverseWorldTransformation() common.Isometry3 {
	n.update()
	return n.worldTransform.Inverse()
}

func (n *sceneNode) AppendTransformation(t common.Isometry3) {
	n.localTransform = t.Mul(n.localTransform)
	n.invalidate()
}

func (n *sceneNode) AppendTranslation(t mgl32.Vec3) {
	n.localTransform.Translation = n.localTransform.Translation.Add(t)
	n.invalidate()
}

func (n *sceneNode) AppendRotation(r mgl32.Quat) {
	n.AppendTransformation(common.Iso3FromParts(mgl32.Vec3{}, r))
}

func (n *sceneNode) AppendRotationWrtCenter(r mgl32.Quat) {
	n.localTransform.Rotation = r.Mul(n.localTransform.Rotation).Normalize()
	n.invalidate()
}

func (n *sceneNode) PrependToLocalTransformation(t common.Isometry3) {
	n.localTransform = n.localTransform.Mul(t)
	n.invalidate()
}

func (n *sceneNode) PrependToLocalTranslation(t mgl32.Vec3) {
	n.PrependToLocalTransformation(common.Iso3FromParts(t, mgl32.QuatIdent()))
}

func (n *sceneNode) PrependToLocalRotation(r mgl32.Quat) {
	n.PrependToLocalTransformation(common.Iso3FromParts(mgl32.Vec3{}, r))
}

func (n *sceneNode) Reorient(eye, target, up mgl32.Vec3) {
	n.localTransform = common.Iso3LookAtRH(eye, target, up).Inverse()
	n.invalidate()
}

func (n *sceneNode) ApplyToObjects(f func(*Object)) {
	if n.object != nil {
		f(n.object)
	}
	for _, c := range n.children {
		c.ApplyToObjects(f)
	}
}

func (n *sceneNode) ApplyToSceneNodes(f func(SceneNode)) {
	f(n)
	for _, c := range n.children {
		c.ApplyToSceneNodes(f)
	}
}

func mulElem(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a.X() * b.X(), a.Y() * b.Y(), a.Z() * b.Z()}
}

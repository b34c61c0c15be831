package scene

import (
	"github.com/Carmen-Shannon/glint-go/common"
	"github.com/Carmen-Shannon/glint-go/engine/camera"
	"github.com/Carmen-Shannon/glint-go/engine/geometry"
	"github.com/Carmen-Shannon/glint-go/engine/resource"
	"github.com/go-gl/mathgl/mgl32"
)

// PlanarSceneNode is the 2D counterpart of SceneNode: a node of the 2D scene
// graph with a parent-relative isometry and scale, an optional object, and
// owned children. It follows the same lazy world-transform resolution rules.
type PlanarSceneNode interface {
	// Render draws the subtree with the given 2D camera.
	Render(cam camera.PlanarCamera)

	// AddChild attaches a root node to this node. Panics when the node
	// already has a parent.
	AddChild(child PlanarSceneNode)
	// AddGroup creates and attaches an empty child.
	AddGroup() PlanarSceneNode
	// Unlink detaches this node from its parent.
	Unlink()
	// IsRoot reports whether this node has no parent.
	IsRoot() bool

	// HasObject reports whether this node carries geometry of its own.
	HasObject() bool
	// Object returns the attached object, or nil.
	Object() *PlanarObject

	// AddRectangle attaches a child rendering a rectangle with the given
	// extents.
	AddRectangle(wx, wy float32) PlanarSceneNode
	// AddCircle attaches a child rendering a circle with the given radius.
	AddCircle(r float32) PlanarSceneNode
	// AddConvexPolygon attaches a child rendering the convex polygon with
	// the given counter-clockwise vertices, scaled by scale.
	AddConvexPolygon(points []mgl32.Vec2, scale mgl32.Vec2) PlanarSceneNode
	// AddGeomWithName attaches a child rendering a mesh from the 2D mesh
	// registry. Panics on an unknown name.
	AddGeomWithName(name string, scale mgl32.Vec2) PlanarSceneNode
	// AddMesh attaches a child rendering an explicit 2D mesh.
	AddMesh(mesh *resource.PlanarMesh, scale mgl32.Vec2) PlanarSceneNode

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
	// SetPointsSize enables the vertex point overlay on every object in
	// the subtree; zero disables it.
	SetPointsSize(size float32)
	// SetSurfaceRendering toggles the filled surface on every object in
	// the subtree.
	SetSurfaceRendering(active bool)
	// SetMaterial swaps the material of every object in the subtree.
	SetMaterial(material PlanarMaterial)

	// IsVisible reports whether the subtree is rendered.
	IsVisible() bool
	// SetVisible shows or hides the subtree.
	SetVisible(visible bool)

	// LocalScale returns the scale relative to the parent.
	LocalScale() mgl32.Vec2
	// SetLocalScale sets the scale relative to the parent.
	SetLocalScale(sx, sy float32)
	// LocalTransformation returns the transformation relative to the
	// parent.
	LocalTransformation() common.Isometry2
	// SetLocalTransformation replaces the transformation relative to the
	// parent.
	SetLocalTransformation(t common.Isometry2)
	// SetLocalTranslation replaces only the translational part.
	SetLocalTranslation(t mgl32.Vec2)
	// SetLocalRotation replaces only the rotational part, in radians.
	SetLocalRotation(angle float32)
	// WorldTransformation resolves and returns the transformation relative
	// to the scene root.
	WorldTransformation() common.Isometry2
	// InverseWorldTransformation resolves and returns the inverse of the
	// transformation relative to the scene root.
	InverseWorldTransformation() common.Isometry2
	// AppendTransformation composes t with the local transformation in the
	// parent's frame.
	AppendTransformation(t common.Isometry2)
	// AppendTranslation translates the node in the parent's frame.
	AppendTranslation(t mgl32.Vec2)
	// AppendRotation rotates the node about the parent's origin.
	AppendRotation(angle float32)
	// AppendRotationWrtCenter rotates the node about its own origin.
	AppendRotationWrtCenter(angle float32)
	// PrependToLocalTransformation composes t with the local
	// transformation in the node's own frame.
	PrependToLocalTransformation(t common.Isometry2)
	// PrependToLocalTranslation translates the node in its own frame.
	PrependToLocalTranslation(t mgl32.Vec2)
	// PrependToLocalRotation rotates the node in its own frame.
	PrependToLocalRotation(angle float32)

	// ApplyToObjects runs f on every object of the subtree, this node's
	// own object first.
	ApplyToObjects(f func(*PlanarObject))
	// ApplyToSceneNodes runs f on every node of the subtree, this node
	// first.
	ApplyToSceneNodes(f func(PlanarSceneNode))
}

var _ PlanarSceneNode = &planarSceneNode{}

type planarSceneNode struct {
	localScale     mgl32.Vec2
	localTransform common.Isometry2
	worldScale     mgl32.Vec2
	worldTransform common.Isometry2
	visible        bool
	upToDate       bool
	children       []*planarSceneNode
	object         *PlanarObject
	parent         *planarSceneNode
	registries     *Registries
}

// NewPlanarSceneNode creates a detached, empty, visible 2D node with an
// identity transformation.
func NewPlanarSceneNode() PlanarSceneNode {
	return newPlanarSceneNode(nil)
}

// NewPlanarRootNode creates the 2D scene root of a window.
func NewPlanarRootNode(reg *Registries) PlanarSceneNode {
	return newPlanarSceneNode(reg)
}

func newPlanarSceneNode(reg *Registries) *planarSceneNode {
	return &planarSceneNode{
		localScale:     mgl32.Vec2{1, 1},
		localTransform: common.IdentityIso2(),
		worldScale:     mgl32.Vec2{1, 1},
		worldTransform: common.IdentityIso2(),
		visible:        true,
		registries:     reg,
	}
}

func planarNodeImpl(n PlanarSceneNode) *planarSceneNode {
	impl, ok := n.(*planarSceneNode)
	if !ok {
		panic("scene: PlanarSceneNode implementations cannot be provided externally")
	}
	return impl
}

func (n *planarSceneNode) reg() *Registries {
	if n.registries == nil {
		panic("scene: node is not attached to a window scene; no resource registries available")
	}
	return n.registries
}

func (n *planarSceneNode) Render(cam camera.PlanarCamera) {
	if n.visible {
		n.doRender(common.IdentityIso2(), mgl32.Vec2{1, 1}, cam)
	}
}

func (n *planarSceneNode) doRender(transform common.Isometry2, scale mgl32.Vec2, cam camera.PlanarCamera) {
	if !n.upToDate {
		n.upToDate = true
		n.worldTransform = transform.Mul(n.localTransform)
		n.worldScale = mulElem2(scale, n.localScale)
	}

	if n.object != nil {
		n.object.Render(n.worldTransform, n.worldScale, cam)
	}

	for _, c := range n.children {
		if c.visible {
			c.doRender(n.worldTransform, n.worldScale, cam)
		}
	}
}

func (n *planarSceneNode) invalidate() {
	n.upToDate = false
	for _, c := range n.children {
		if c.upToDate {
			c.invalidate()
		}
	}
}

func (n *planarSceneNode) update() {
	if n.upToDate {
		return
	}
	if n.parent != nil {
		n.parent.update()
		n.worldTransform = n.localTransform.Mul(n.parent.worldTransform)
		n.worldScale = mulElem2(n.localScale, n.parent.localScale)
		n.upToDate = true
		return
	}
	n.worldTransform = n.localTransform
	n.worldScale = n.localScale
	n.upToDate = true
}

func (n *planarSceneNode) AddChild(child PlanarSceneNode) {
	c := planarNodeImpl(child)
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

func (n *planarSceneNode) setRegistries(reg *Registries) {
	n.registries = reg
	for _, c := range n.children {
		if c.registries == nil {
			c.setRegistries(reg)
		}
	}
}

func (n *planarSceneNode) AddGroup() PlanarSceneNode {
	child := newPlanarSceneNode(n.registries)
	n.AddChild(child)
	return child
}

func (n *planarSceneNode) Unlink() {
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

func (n *planarSceneNode) IsRoot() bool {
	return n.parent == nil
}

func (n *planarSceneNode) HasObject() bool {
	return n.object != nil
}

func (n *planarSceneNode) Object() *PlanarObject {
	return n.object
}

func (n *planarSceneNode) addObject(mesh *resource.PlanarMesh, scale mgl32.Vec2) PlanarSceneNode {
	reg := n.reg()
	child := newPlanarSceneNode(n.registries)
	child.localScale = scale
	child.object = NewPlanarObject(mesh, 1, 1, 1, reg.Textures.GetDefault(), reg.PlanarMaterials.GetDefault())
	n.AddChild(child)
	return child
}

func (n *planarSceneNode) AddRectangle(wx, wy float32) PlanarSceneNode {
	return n.AddGeomWithName(resource.MeshRectangle, mgl32.Vec2{wx, wy})
}

func (n *planarSceneNode) AddCircle(r float32) PlanarSceneNode {
	return n.AddGeomWithName(resource.MeshCircle, mgl32.Vec2{r * 2, r * 2})
}

func (n *planarSceneNode) AddConvexPolygon(points []mgl32.Vec2, scale mgl32.Vec2) PlanarSceneNode {
	if len(points) < 3 {
		panic("scene: a convex polygon needs at least three vertices")
	}
	tm := geometry.ConvexPolygon(points)
	mesh := resource.NewPlanarMesh(n.reg().Context(), tm.Coords, tm.Faces, tm.UVs, false)
	return n.AddMesh(mesh, scale)
}

func (n *planarSceneNode) AddGeomWithName(name string, scale mgl32.Vec2) PlanarSceneNode {
	mesh, ok := n.reg().PlanarMeshes.Get(name)
	if !ok {
		panic("scene: unknown mesh name: " + name)
	}
	return n.AddMesh(mesh, scale)
}

func (n *planarSceneNode) AddMesh(mesh *resource.PlanarMesh, scale mgl32.Vec2) PlanarSceneNode {
	return n.addObject(mesh, scale)
}

func (n *planarSceneNode) SetColor(r, g, b float32) {
	n.ApplyToObjects(func(o *PlanarObject) { o.Data().SetColor(r, g, b) })
}

func (n *planarSceneNode) SetTexture(texture *resource.Texture) {
	n.ApplyToObjects(func(o *PlanarObject) { o.Data().SetTexture(texture) })
}

func (n *planarSceneNode) SetTextureFromFile(path, name string) error {
	tex, err := n.reg().Textures.Add(path, name)
	if err != nil {
		return err
	}
	n.SetTexture(tex)
	return nil
}

func (n *planarSceneNode) SetTextureWithName(name string) {
	tex, ok := n.reg().Textures.Get(name)
	if !ok {
		panic("scene: unknown texture name: " + name)
	}
	n.SetTexture(tex)
}

func (n *planarSceneNode) SetLinesWidth(width float32) {
	n.ApplyToObjects(func(o *PlanarObject) { o.Data().SetLinesWidth(width) })
}

func (n *planarSceneNode) SetPointsSize(size float32) {
	n.ApplyToObjects(func(o *PlanarObject) { o.Data().SetPointsSize(size) })
}

func (n *planarSceneNode) SetSurfaceRendering(active bool) {
	n.ApplyToObjects(func(o *PlanarObject) { o.Data().SetSurfaceRendering(active) })
}

func (n *planarSceneNode) SetMaterial(material PlanarMaterial) {
	n.ApplyToObjects(func(o *PlanarObject) { o.SetMaterial(material) })
}

func (n *planarSceneNode) IsVisible() bool {
	return n.visible
}

func (n *planarSceneNode) SetVisible(visible bool) {
	n.visible = visible
}

func (n *planarSceneNode) LocalScale() mgl32.Vec2 {
	return n.localScale
}

func (n *planarSceneNode) SetLocalScale(sx, sy float32) {
	n.localScale = mgl32.Vec2{sx, sy}
	n.invalidate()
}

func (n *planarSceneNode) LocalTransformation() common.Isometry2 {
	return n.localTransform
}

func (n *planarSceneNode) SetLocalTransformation(t common.Isometry2) {
	n.localTransform = t
	n.invalidate()
}

func (n *planarSceneNode) SetLocalTranslation(t mgl32.Vec2) {
	n.localTransform.Translation = t
	n.invalidate()
}

func (n *planarSceneNode) SetLocalRotation(angle float32) {
	n.localTransform.Rotation = angle
	n.invalidate()
}

func (n *planarSceneNode) WorldTransformation() common.Isometry2 {
	n.update()
	return n.worldTransform
}

func (n *planarSceneNode) InverseWorldTransformation() common.Isometry2 {
	n.update()
	return n.worldTransform.Inverse()
}

func (n *planarSceneNode) AppendTransformation(t common.Isometry2) {
	n.localTransform = t.Mul(n.localTransform)
	n.invalidate()
}

func (n *planarSceneNode) AppendTranslation(t mgl32.Vec2) {
	n.localTransform.Translation = n.localTransform.Translation.Add(t)
	n.invalidate()
}

func (n *planarSceneNode) AppendRotation(angle float32) {
	n.AppendTransformation(common.Iso2FromParts(mgl32.Vec2{}, angle))
}

func (n *planarSceneNode) AppendRotationWrtCenter(angle float32) {
	n.localTransform.Rotation += angle
	n.invalidate()
}

func (n *planarSceneNode) PrependToLocalTransformation(t common.Isometry2) {
	n.localTransform = n.localTransform.Mul(t)
	n.invalidate()
}

func (n *planarSceneNode) PrependToLocalTranslation(t mgl32.Vec2) {
	n.PrependToLocalTransformation(common.Iso2FromParts(t, 0))
}

func (n *planarSceneNode) PrependToLocalRotation(angle float32) {
	n.PrependToLocalTransformation(common.Iso2FromParts(mgl32.Vec2{}, angle))
}

func (n *planarSceneNode) ApplyToObjects(f func(*PlanarObject)) {
	if n.object != nil {
		f(n.object)
	}
	for _, c := range n.children {
		c.ApplyToObjects(f)
	}
}

func (n *planarSceneNode) ApplyToSceneNodes(f func(PlanarSceneNode)) {
	f(n)
	for _, c := range n.children {
		c.ApplyToSceneNodes(f)
	}
}

func mulElem2(a, b mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{a.X() * b.X(), a.Y() * b.Y()}
}

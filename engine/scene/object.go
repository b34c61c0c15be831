package scene

import (
	"github.com/Carmen-Shannon/glint-go/common"
	"github.com/Carmen-Shannon/glint-go/engine/camera"
	"github.com/Carmen-Shannon/glint-go/engine/light"
	"github.com/Carmen-Shannon/glint-go/engine/resource"
	"github.com/go-gl/mathgl/mgl32"
)

// ObjectData carries the per-object render attributes a material consults
// while drawing: color, wireframe and point overlays, face culling, the
// bound texture and an opaque user slot.
type ObjectData struct {
	color          mgl32.Vec3
	linesWidth     float32
	linesColor     *mgl32.Vec3
	pointsSize     float32
	drawSurface    bool
	cullingEnabled bool
	texture        *resource.Texture
	userData       any
}

// Color returns the surface color.
func (d *ObjectData) Color() mgl32.Vec3 { return d.color }

// SetColor sets the surface color as RGB in [0, 1].
func (d *ObjectData) SetColor(r, g, b float32) {
	d.color = mgl32.Vec3{r, g, b}
}

// LinesWidth returns the wireframe overlay width; zero disables the
// overlay.
func (d *ObjectData) LinesWidth() float32 { return d.linesWidth }

// SetLinesWidth enables the wireframe overlay with the given width, or
// disables it with zero.
func (d *ObjectData) SetLinesWidth(width float32) { d.linesWidth = width }

// LinesColor returns the wireframe color, or nil when the wireframe reuses
// the surface color.
func (d *ObjectData) LinesColor() *mgl32.Vec3 { return d.linesColor }

// SetLinesColor overrides the wireframe color; nil falls back to the
// surface color.
func (d *ObjectData) SetLinesColor(color *mgl32.Vec3) { d.linesColor = color }

// PointsSize returns the vertex point overlay size; zero disables the
// overlay.
func (d *ObjectData) PointsSize() float32 { return d.pointsSize }

// SetPointsSize enables the vertex point overlay with the given size, or
// disables it with zero.
func (d *ObjectData) SetPointsSize(size float32) { d.pointsSize = size }

// SurfaceRenderingActive reports whether the filled surface is drawn.
func (d *ObjectData) SurfaceRenderingActive() bool { return d.drawSurface }

// SetSurfaceRendering toggles drawing of the filled surface.
func (d *ObjectData) SetSurfaceRendering(active bool) { d.drawSurface = active }

// BackfaceCullingEnabled reports whether back faces are culled.
func (d *ObjectData) BackfaceCullingEnabled() bool { return d.cullingEnabled }

// EnableBackfaceCulling toggles back face culling for this object.
func (d *ObjectData) EnableBackfaceCulling(active bool) { d.cullingEnabled = active }

// Texture returns the texture sampled by the material.
func (d *ObjectData) Texture() *resource.Texture { return d.texture }

// SetTexture binds a texture to this object.
func (d *ObjectData) SetTexture(texture *resource.Texture) { d.texture = texture }

// UserData returns the opaque user slot.
func (d *ObjectData) UserData() any { return d.userData }

// SetUserData stores an arbitrary value on the object.
func (d *ObjectData) SetUserData(data any) { d.userData = data }

// Object pairs a mesh with a material and the render attributes the
// material consults. Objects are always attached to exactly one scene node.
type Object struct {
	data     ObjectData
	material Material
	mesh     *resource.Mesh
}

// NewObject creates an object with surface rendering and backface culling
// enabled.
//
// Parameters:
//   - mesh: geometry to draw
//   - r, g, b: initial surface color
//   - texture: texture to sample, usually the manager's default
//   - material: shading style
//
// Returns:
//   - *Object: the object
func NewObject(mesh *resource.Mesh, r, g, b float32, texture *resource.Texture, material Material) *Object {
	return &Object{
		data: ObjectData{
			color:          mgl32.Vec3{r, g, b},
			drawSurface:    true,
			cullingEnabled: true,
			texture:        texture,
		},
		material: material,
		mesh:     mesh,
	}
}

// Render draws the object for one camera pass.
func (o *Object) Render(pass int, transform common.Isometry3, scale mgl32.Vec3, cam camera.Camera, lgt light.Light) {
	o.material.Render(pass, transform, scale, cam, lgt, &o.data, o.mesh)
}

// Data returns the render attributes for mutation.
func (o *Object) Data() *ObjectData { return &o.data }

// Mesh returns the geometry of the object.
func (o *Object) Mesh() *resource.Mesh { return o.mesh }

// SetMaterial swaps the shading style.
func (o *Object) SetMaterial(material Material) { o.material = material }

package scene

import (
	"github.com/Carmen-Shannon/glint-go/common"
	"github.com/Carmen-Shannon/glint-go/engine/camera"
	"github.com/Carmen-Shannon/glint-go/engine/resource"
	"github.com/go-gl/mathgl/mgl32"
)

// PlanarObjectData holds the per-object rendering attributes of a 2D object.
type PlanarObjectData struct {
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
func (d *PlanarObjectData) Color() mgl32.Vec3 { return d.color }

// SetColor sets the surface color.
func (d *PlanarObjectData) SetColor(r, g, b float32) { d.color = mgl32.Vec3{r, g, b} }

// LinesWidth returns the wireframe overlay width; zero means disabled.
func (d *PlanarObjectData) LinesWidth() float32 { return d.linesWidth }

// SetLinesWidth enables the wireframe overlay; zero disables it.
func (d *PlanarObjectData) SetLinesWidth(width float32) { d.linesWidth = width }

// LinesColor returns the wireframe color override, or nil.
func (d *PlanarObjectData) LinesColor() *mgl32.Vec3 { return d.linesColor }

// SetLinesColor overrides the wireframe color; nil uses the surface color.
func (d *PlanarObjectData) SetLinesColor(color *mgl32.Vec3) { d.linesColor = color }

// PointsSize returns the vertex overlay size; zero means disabled.
func (d *PlanarObjectData) PointsSize() float32 { return d.pointsSize }

// SetPointsSize enables the vertex overlay; zero disables it.
func (d *PlanarObjectData) SetPointsSize(size float32) { d.pointsSize = size }

// SurfaceRenderingActive reports whether the filled surface is drawn.
func (d *PlanarObjectData) SurfaceRenderingActive() bool { return d.drawSurface }

// SetSurfaceRendering toggles the filled surface.
func (d *PlanarObjectData) SetSurfaceRendering(active bool) { d.drawSurface = active }

// BackfaceCullingEnabled reports whether faces are culled by winding.
func (d *PlanarObjectData) BackfaceCullingEnabled() bool { return d.cullingEnabled }

// EnableBackfaceCulling toggles face culling.
func (d *PlanarObjectData) EnableBackfaceCulling(active bool) { d.cullingEnabled = active }

// Texture returns the bound texture.
func (d *PlanarObjectData) Texture() *resource.Texture { return d.texture }

// SetTexture binds a texture.
func (d *PlanarObjectData) SetTexture(texture *resource.Texture) { d.texture = texture }

// UserData returns the application payload attached to the object.
func (d *PlanarObjectData) UserData() any { return d.userData }

// SetUserData attaches an arbitrary application payload to the object.
func (d *PlanarObjectData) SetUserData(data any) { d.userData = data }

// PlanarObject pairs a 2D mesh with a material and rendering attributes.
type PlanarObject struct {
	data     PlanarObjectData
	material PlanarMaterial
	mesh     *resource.PlanarMesh
}

// NewPlanarObject creates a 2D object with the given color, texture, and
// material. Surface rendering and backface culling start enabled.
//
// Parameters:
//   - mesh: the geometry drawn by the object.
//   - r, g, b: initial surface color.
//   - texture: texture sampled by textured materials.
//   - material: material driving the draw calls.
//
// Returns:
//   - *PlanarObject: the new object.
func NewPlanarObject(mesh *resource.PlanarMesh, r, g, b float32, texture *resource.Texture, material PlanarMaterial) *PlanarObject {
	return &PlanarObject{
		data: PlanarObjectData{
			color:          mgl32.Vec3{r, g, b},
			drawSurface:    true,
			cullingEnabled: true,
			texture:        texture,
		},
		material: material,
		mesh:     mesh,
	}
}

// Render draws the object through its material.
func (o *PlanarObject) Render(transform common.Isometry2, scale mgl32.Vec2, cam camera.PlanarCamera) {
	o.material.Render(transform, scale, cam, &o.data, o.mesh)
}

// Data returns the mutable rendering attributes.
func (o *PlanarObject) Data() *PlanarObjectData { return &o.data }

// Mesh returns the geometry drawn by the object.
func (o *PlanarObject) Mesh() *resource.PlanarMesh { return o.mesh }

// SetMaterial swaps the material used to draw the object.
func (o *PlanarObject) SetMaterial(material PlanarMaterial) { o.material = material }

package builtin

import (
	"github.com/Carmen-Shannon/glint-go/common"
	"github.com/Carmen-Shannon/glint-go/engine/camera"
	"github.com/Carmen-Shannon/glint-go/engine/gfx"
	"github.com/Carmen-Shannon/glint-go/engine/resource"
	"github.com/Carmen-Shannon/glint-go/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
)

const planarVertexSrc = `#version 150
uniform mat3 proj;
uniform mat3 view;
uniform mat3 model;
in vec2 position;
in vec2 tex_coord;
out vec2 uv;
void main() {
    uv = tex_coord;
    vec3 pos = proj * view * model * vec3(position, 1.0);
    gl_Position = vec4(pos.xy, 0.0, 1.0);
}
`

const planarFragmentSrc = `#version 150
uniform vec3 color;
uniform sampler2D tex;
in vec2 uv;
out vec4 frag_color;
void main() {
    frag_color = vec4(color * texture(tex, uv).rgb, 1.0);
}
`

var _ scene.PlanarMaterial = &PlanarObjectMaterial{}

// PlanarObjectMaterial is the default shading style of 2D objects: a flat
// color modulated by the object's texture, with optional wireframe and
// vertex-point overlays.
type PlanarObjectMaterial struct {
	effect   *resource.Effect
	position *resource.ShaderAttribute[mgl32.Vec2]
	texCoord *resource.ShaderAttribute[mgl32.Vec2]
	proj     *resource.ShaderUniform[mgl32.Mat3]
	view     *resource.ShaderUniform[mgl32.Mat3]
	model    *resource.ShaderUniform[mgl32.Mat3]
	color    *resource.ShaderUniform[mgl32.Vec3]
	tex      *resource.ShaderUniform[int32]
}

// NewPlanarObjectMaterial compiles the default 2D shader against the given
// context. Panics when the driver rejects the built-in sources.
func NewPlanarObjectMaterial(ctx gfx.Context) *PlanarObjectMaterial {
	effect := resource.NewEffect(ctx, planarVertexSrc, planarFragmentSrc)
	return &PlanarObjectMaterial{
		effect:   effect,
		position: resource.GetAttrib[mgl32.Vec2](effect, "position"),
		texCoord: resource.GetAttrib[mgl32.Vec2](effect, "tex_coord"),
		proj:     resource.GetUniform[mgl32.Mat3](effect, "proj"),
		view:     resource.GetUniform[mgl32.Mat3](effect, "view"),
		model:    resource.GetUniform[mgl32.Mat3](effect, "model"),
		color:    resource.GetUniform[mgl32.Vec3](effect, "color"),
		tex:      resource.GetUniform[int32](effect, "tex"),
	}
}

// Render draws the surface, wireframe and point overlays selected by the
// object's attributes.
func (m *PlanarObjectMaterial) Render(transform common.Isometry2, scale mgl32.Vec2, cam camera.PlanarCamera, data *scene.PlanarObjectData, mesh *resource.PlanarMesh) {
	ctx := m.effect.Context()
	m.effect.Use()
	m.position.Enable()
	m.texCoord.Enable()

	cam.Upload(m.proj, m.view)

	model := transform.Mat3().Mul3(mgl32.Diag3(mgl32.Vec3{scale.X(), scale.Y(), 1}))
	m.model.Upload(model)
	m.tex.Upload(0)

	mesh.Bind(m.position, m.texCoord)
	ctx.ActiveTexture(gfx.Texture0)
	data.Texture().Bind()

	numIndices := int32(mesh.NumPts())

	if data.SurfaceRenderingActive() {
		m.color.Upload(data.Color())
		if data.BackfaceCullingEnabled() {
			ctx.Enable(gfx.CullFaceCap)
		} else {
			ctx.Disable(gfx.CullFaceCap)
		}
		ctx.DrawElements(gfx.Triangles, numIndices, gfx.UnsignedInt, 0)
	}

	if w := data.LinesWidth(); w != 0 {
		lc := data.Color()
		if over := data.LinesColor(); over != nil {
			lc = *over
		}
		m.color.Upload(lc)
		ctx.Disable(gfx.CullFaceCap)
		ctx.LineWidth(w)
		if ctx.PolygonMode(gfx.FrontAndBack, gfx.PolygonLine) {
			ctx.DrawElements(gfx.Triangles, numIndices, gfx.UnsignedInt, 0)
			ctx.PolygonMode(gfx.FrontAndBack, gfx.PolygonFill)
		} else {
			mesh.BindEdges()
			ctx.DrawElements(gfx.Lines, numIndices*2, gfx.UnsignedInt, 0)
		}
		ctx.LineWidth(1)
	}

	if s := data.PointsSize(); s != 0 {
		m.color.Upload(data.Color())
		ctx.Disable(gfx.CullFaceCap)
		ctx.PointSize(s)
		if ctx.PolygonMode(gfx.FrontAndBack, gfx.PolygonPoint) {
			ctx.DrawElements(gfx.Triangles, numIndices, gfx.UnsignedInt, 0)
			ctx.PolygonMode(gfx.FrontAndBack, gfx.PolygonFill)
		} else {
			ctx.DrawElements(gfx.Points, numIndices, gfx.UnsignedInt, 0)
		}
		ctx.PointSize(1)
	}

	mesh.Unbind()
	m.position.Disable()
	m.texCoord.Disable()
}

// Package builtin provides the stock materials every window registers with
// its material registries: a textured Blinn-style material for 3D objects,
// debug materials visualizing normals and texture coordinates, and the
// default 2D material.
package builtin

import (
	"github.com/Carmen-Shannon/glint-go/common"
	"github.com/Carmen-Shannon/glint-go/engine/camera"
	"github.com/Carmen-Shannon/glint-go/engine/gfx"
	"github.com/Carmen-Shannon/glint-go/engine/light"
	"github.com/Carmen-Shannon/glint-go/engine/resource"
	"github.com/Carmen-Shannon/glint-go/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
)

const objectVertexSrc = `#version 150
uniform mat4 proj;
uniform mat4 view;
uniform mat4 transform;
uniform mat3 scale;
uniform mat3 ntransform;
in vec3 position;
in vec3 normal;
in vec2 tex_coord;
out vec3 ws_position;
out vec3 ws_normal;
out vec2 uv;
void main() {
    vec4 pos = transform * vec4(scale * position, 1.0);
    ws_position = pos.xyz;
    ws_normal = normalize(ntransform * scale * normal);
    uv = tex_coord;
    gl_Position = proj * view * pos;
}
`

const objectFragmentSrc = `#version 150
uniform vec3 color;
uniform vec3 light_position;
uniform sampler2D tex;
in vec3 ws_position;
in vec3 ws_normal;
in vec2 uv;
out vec4 frag_color;
void main() {
    vec3 l = normalize(light_position - ws_position);
    float lambert = max(dot(ws_normal, l), 0.0);
    vec3 base = color * texture(tex, uv).rgb;
    frag_color = vec4(base * (0.35 + 0.65 * lambert), 1.0);
}
`

var _ scene.Material = &ObjectMaterial{}

// ObjectMaterial is the default shading style of 3D objects: a single point
// light, a flat color modulated by the object's texture, and optional
// wireframe and vertex-point overlays.
type ObjectMaterial struct {
	effect     *resource.Effect
	position   *resource.ShaderAttribute[mgl32.Vec3]
	normal     *resource.ShaderAttribute[mgl32.Vec3]
	texCoord   *resource.ShaderAttribute[mgl32.Vec2]
	proj       *resource.ShaderUniform[mgl32.Mat4]
	view       *resource.ShaderUniform[mgl32.Mat4]
	transform  *resource.ShaderUniform[mgl32.Mat4]
	scale      *resource.ShaderUniform[mgl32.Mat3]
	ntransform *resource.ShaderUniform[mgl32.Mat3]
	lightPos   *resource.ShaderUniform[mgl32.Vec3]
	color      *resource.ShaderUniform[mgl32.Vec3]
	tex        *resource.ShaderUniform[int32]
}

// NewObjectMaterial compiles the default object shader against the given
// context. Panics when the driver rejects the built-in sources.
func NewObjectMaterial(ctx gfx.Context) *ObjectMaterial {
	effect := resource.NewEffect(ctx, objectVertexSrc, objectFragmentSrc)
	return &ObjectMaterial{
		effect:     effect,
		position:   resource.GetAttrib[mgl32.Vec3](effect, "position"),
		normal:     resource.GetAttrib[mgl32.Vec3](effect, "normal"),
		texCoord:   resource.GetAttrib[mgl32.Vec2](effect, "tex_coord"),
		proj:       resource.GetUniform[mgl32.Mat4](effect, "proj"),
		view:       resource.GetUniform[mgl32.Mat4](effect, "view"),
		transform:  resource.GetUniform[mgl32.Mat4](effect, "transform"),
		scale:      resource.GetUniform[mgl32.Mat3](effect, "scale"),
		ntransform: resource.GetUniform[mgl32.Mat3](effect, "ntransform"),
		lightPos:   resource.GetUniform[mgl32.Vec3](effect, "light_position"),
		color:      resource.GetUniform[mgl32.Vec3](effect, "color"),
		tex:        resource.GetUniform[int32](effect, "tex"),
	}
}

// Render draws the surface, wireframe and point overlays selected by the
// object's attributes.
func (m *ObjectMaterial) Render(pass int, transform common.Isometry3, scale mgl32.Vec3, cam camera.Camera, lgt light.Light, data *scene.ObjectData, mesh *resource.Mesh) {
	ctx := m.effect.Context()
	m.effect.Use()
	m.position.Enable()
	m.normal.Enable()
	m.texCoord.Enable()

	cam.Upload(pass, m.proj, m.view)
	m.lightPos.Upload(lgt.Position(cam.Eye()))

	m.transform.Upload(transform.Mat4())
	m.scale.Upload(mgl32.Diag3(scale))
	m.ntransform.Upload(transform.RotationMat3())
	m.tex.Upload(0)

	mesh.Bind(m.position, m.normal, m.texCoord)
	ctx.ActiveTexture(gfx.Texture0)
	data.Texture().Bind()

	numIndices := int32(mesh.NumPts())

	if data.SurfaceRenderingActive() {
		color := data.Color()
		m.color.Upload(color)
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
	m.normal.Disable()
	m.texCoord.Disable()
}

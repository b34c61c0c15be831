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

const uvsVertexSrc = `#version 150
uniform mat4 proj;
uniform mat4 view;
uniform mat4 transform;
uniform mat3 scale;
in vec3 position;
in vec2 tex_coord;
out vec2 uv;
void main() {
    uv = tex_coord;
    gl_Position = proj * view * transform * vec4(scale * position, 1.0);
}
`

const uvsFragmentSrc = `#version 150
in vec2 uv;
out vec4 frag_color;
void main() {
    frag_color = vec4(uv, 0.0, 1.0);
}
`

var _ scene.Material = &UvsMaterial{}

// UvsMaterial is a debugging material coloring each fragment by its
// interpolated texture coordinates.
type UvsMaterial struct {
	effect    *resource.Effect
	position  *resource.ShaderAttribute[mgl32.Vec3]
	texCoord  *resource.ShaderAttribute[mgl32.Vec2]
	proj      *resource.ShaderUniform[mgl32.Mat4]
	view      *resource.ShaderUniform[mgl32.Mat4]
	transform *resource.ShaderUniform[mgl32.Mat4]
	scale     *resource.ShaderUniform[mgl32.Mat3]
}

// NewUvsMaterial compiles the uv-visualization shader. Panics when the
// driver rejects the built-in sources.
func NewUvsMaterial(ctx gfx.Context) *UvsMaterial {
	effect := resource.NewEffect(ctx, uvsVertexSrc, uvsFragmentSrc)
	return &UvsMaterial{
		effect:    effect,
		position:  resource.GetAttrib[mgl32.Vec3](effect, "position"),
		texCoord:  resource.GetAttrib[mgl32.Vec2](effect, "tex_coord"),
		proj:      resource.GetUniform[mgl32.Mat4](effect, "proj"),
		view:      resource.GetUniform[mgl32.Mat4](effect, "view"),
		transform: resource.GetUniform[mgl32.Mat4](effect, "transform"),
		scale:     resource.GetUniform[mgl32.Mat3](effect, "scale"),
	}
}

// Render draws the surface only; overlays and textures are ignored.
func (m *UvsMaterial) Render(pass int, transform common.Isometry3, scale mgl32.Vec3, cam camera.Camera, _ light.Light, data *scene.ObjectData, mesh *resource.Mesh) {
	ctx := m.effect.Context()
	m.effect.Use()
	m.position.Enable()
	m.texCoord.Enable()

	cam.Upload(pass, m.proj, m.view)
	m.transform.Upload(transform.Mat4())
	m.scale.Upload(mgl32.Diag3(scale))

	mesh.Bind(m.position, nil, m.texCoord)
	if data.BackfaceCullingEnabled() {
		ctx.Enable(gfx.CullFaceCap)
	} else {
		ctx.Disable(gfx.CullFaceCap)
	}
	ctx.DrawElements(gfx.Triangles, int32(mesh.NumPts()), gfx.UnsignedInt, 0)

	mesh.Unbind()
	m.position.Disable()
	m.texCoord.Disable()
}

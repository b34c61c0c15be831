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

const normalsVertexSrc = `#version 150
uniform mat4 proj;
uniform mat4 view;
uniform mat4 transform;
uniform mat3 scale;
in vec3 position;
in vec3 normal;
out vec3 ls_normal;
void main() {
    ls_normal = normal;
    gl_Position = proj * view * transform * vec4(scale * position, 1.0);
}
`

const normalsFragmentSrc = `#version 150
in vec3 ls_normal;
out vec4 frag_color;
void main() {
    frag_color = vec4((ls_normal + 1.0) / 2.0, 1.0);
}
`

var _ scene.Material = &NormalsMaterial{}

// NormalsMaterial is a debugging material coloring each fragment by its
// interpolated model-space normal.
type NormalsMaterial struct {
	effect    *resource.Effect
	position  *resource.ShaderAttribute[mgl32.Vec3]
	normal    *resource.ShaderAttribute[mgl32.Vec3]
	proj      *resource.ShaderUniform[mgl32.Mat4]
	view      *resource.ShaderUniform[mgl32.Mat4]
	transform *resource.ShaderUniform[mgl32.Mat4]
	scale     *resource.ShaderUniform[mgl32.Mat3]
}

// NewNormalsMaterial compiles the normals-visualization shader. Panics when
// the driver rejects the built-in sources.
func NewNormalsMaterial(ctx gfx.Context) *NormalsMaterial {
	effect := resource.NewEffect(ctx, normalsVertexSrc, normalsFragmentSrc)
	return &NormalsMaterial{
		effect:    effect,
		position:  resource.GetAttrib[mgl32.Vec3](effect, "position"),
		normal:    resource.GetAttrib[mgl32.Vec3](effect, "normal"),
		proj:      resource.GetUniform[mgl32.Mat4](effect, "proj"),
		view:      resource.GetUniform[mgl32.Mat4](effect, "view"),
		transform: resource.GetUniform[mgl32.Mat4](effect, "transform"),
		scale:     resource.GetUniform[mgl32.Mat3](effect, "scale"),
	}
}

// Render draws the surface only; overlays and textures are ignored.
func (m *NormalsMaterial) Render(pass int, transform common.Isometry3, scale mgl32.Vec3, cam camera.Camera, _ light.Light, data *scene.ObjectData, mesh *resource.Mesh) {
	ctx := m.effect.Context()
	m.effect.Use()
	m.position.Enable()
	m.normal.Enable()

	cam.Upload(pass, m.proj, m.view)
	m.transform.Upload(transform.Mat4())
	m.scale.Upload(mgl32.Diag3(scale))

	mesh.Bind(m.position, m.normal, nil)
	if data.BackfaceCullingEnabled() {
		ctx.Enable(gfx.CullFaceCap)
	} else {
		ctx.Disable(gfx.CullFaceCap)
	}
	ctx.DrawElements(gfx.Triangles, int32(mesh.NumPts()), gfx.UnsignedInt, 0)

	mesh.Unbind()
	m.position.Disable()
	m.normal.Disable()
}

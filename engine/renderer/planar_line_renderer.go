package renderer

import (
	"github.com/Carmen-Shannon/glint-go/engine/camera"
	"github.com/Carmen-Shannon/glint-go/engine/gfx"
	"github.com/Carmen-Shannon/glint-go/engine/resource"
	"github.com/go-gl/mathgl/mgl32"
)

const planarLinesVertexSrc = `#version 150
uniform mat3 proj;
uniform mat3 view;
in vec2 position;
in vec3 color;
out vec3 v_color;
void main() {
    v_color = color;
    vec3 pos = proj * view * vec3(position, 1.0);
    gl_Position = vec4(pos.xy, 0.0, 1.0);
}
`

const planarLinesFragmentSrc = `#version 150
in vec3 v_color;
out vec4 frag_color;
void main() {
    frag_color = vec4(v_color, 1.0);
}
`

var _ PlanarRenderer = &PlanarLineRenderer{}

// PlanarLineRenderer batches 2D line segments submitted during the frame and
// draws them in a single call, emptying the batch afterwards. Positions and
// colors live in separate stream buffers because their element types differ.
type PlanarLineRenderer struct {
	effect *resource.Effect
	pos    *resource.ShaderAttribute[mgl32.Vec2]
	color  *resource.ShaderAttribute[mgl32.Vec3]
	proj   *resource.ShaderUniform[mgl32.Mat3]
	view   *resource.ShaderUniform[mgl32.Mat3]
	lines  *resource.GPUVec[mgl32.Vec2]
	colors *resource.GPUVec[mgl32.Vec3]
}

// NewPlanarLineRenderer compiles the 2D line shader and allocates empty
// stream-draw batches. Panics when the driver rejects the built-in sources.
func NewPlanarLineRenderer(ctx gfx.Context) *PlanarLineRenderer {
	effect := resource.NewEffect(ctx, planarLinesVertexSrc, planarLinesFragmentSrc)
	return &PlanarLineRenderer{
		effect: effect,
		pos:    resource.GetAttrib[mgl32.Vec2](effect, "position"),
		color:  resource.GetAttrib[mgl32.Vec3](effect, "color"),
		proj:   resource.GetUniform[mgl32.Mat3](effect, "proj"),
		view:   resource.GetUniform[mgl32.Mat3](effect, "view"),
		lines:  resource.NewGPUVec(ctx, []mgl32.Vec2{}, resource.ArrayBuffer, resource.StreamDraw),
		colors: resource.NewGPUVec(ctx, []mgl32.Vec3{}, resource.ArrayBuffer, resource.StreamDraw),
	}
}

// NeedsRendering reports whether any segments are pending.
func (r *PlanarLineRenderer) NeedsRendering() bool {
	return r.lines.Len() != 0
}

// DrawLine queues one segment from a to b for the current frame.
func (r *PlanarLineRenderer) DrawLine(a, b mgl32.Vec2, color mgl32.Vec3) {
	r.lines.Push(a)
	r.lines.Push(b)
	r.colors.Push(color)
	r.colors.Push(color)
}

// Render draws and then empties the pending batch.
func (r *PlanarLineRenderer) Render(cam camera.PlanarCamera) {
	if r.lines.Len() == 0 {
		return
	}

	r.effect.Use()
	r.pos.Enable()
	r.color.Enable()

	cam.Upload(r.proj, r.view)

	r.pos.Bind(r.lines)
	r.color.Bind(r.colors)

	ctx := r.effect.Context()
	ctx.DrawArrays(gfx.Lines, 0, int32(r.lines.Len()))

	r.pos.Disable()
	r.color.Disable()

	r.lines.Clear()
	r.colors.Clear()
}

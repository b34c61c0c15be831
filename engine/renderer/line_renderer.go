package renderer

import (
	"github.com/Carmen-Shannon/glint-go/engine/camera"
	"github.com/Carmen-Shannon/glint-go/engine/gfx"
	"github.com/Carmen-Shannon/glint-go/engine/resource"
	"github.com/go-gl/mathgl/mgl32"
)

const linesVertexSrc = `#version 150
uniform mat4 proj;
uniform mat4 view;
in vec3 position;
in vec3 color;
out vec3 v_color;
void main() {
    v_color = color;
    gl_Position = proj * view * vec4(position, 1.0);
}
`

const linesFragmentSrc = `#version 150
in vec3 v_color;
out vec4 frag_color;
void main() {
    frag_color = vec4(v_color, 1.0);
}
`

var _ Renderer = &LineRenderer{}

// LineRenderer batches world-space line segments submitted during the frame
// and draws them in a single call. The batch empties after it is drawn; the
// application re-submits persistent lines every frame.
type LineRenderer struct {
	effect    *resource.Effect
	pos       *resource.ShaderAttribute[mgl32.Vec3]
	color     *resource.ShaderAttribute[mgl32.Vec3]
	proj      *resource.ShaderUniform[mgl32.Mat4]
	view      *resource.ShaderUniform[mgl32.Mat4]
	lines     *resource.GPUVec[mgl32.Vec3]
	lineWidth float32
}

// NewLineRenderer compiles the line shader and allocates an empty
// stream-draw batch. Panics when the driver rejects the built-in sources.
func NewLineRenderer(ctx gfx.Context) *LineRenderer {
	effect := resource.NewEffect(ctx, linesVertexSrc, linesFragmentSrc)
	return &LineRenderer{
		effect:    effect,
		pos:       resource.GetAttrib[mgl32.Vec3](effect, "position"),
		color:     resource.GetAttrib[mgl32.Vec3](effect, "color"),
		proj:      resource.GetUniform[mgl32.Mat4](effect, "proj"),
		view:      resource.GetUniform[mgl32.Mat4](effect, "view"),
		lines:     resource.NewGPUVec(ctx, []mgl32.Vec3{}, resource.ArrayBuffer, resource.StreamDraw),
		lineWidth: 1,
	}
}

// NeedsRendering reports whether any segments are pending.
func (r *LineRenderer) NeedsRendering() bool {
	return r.lines.Len() != 0
}

// DrawLine queues one segment from a to b for the current frame.
func (r *LineRenderer) DrawLine(a, b, color mgl32.Vec3) {
	r.lines.Push(a)
	r.lines.Push(color)
	r.lines.Push(b)
	r.lines.Push(color)
}

// SetLineWidth sets the rasterized width used for every queued segment.
func (r *LineRenderer) SetLineWidth(width float32) {
	if width < 1e-7 {
		width = 1e-7
	}
	r.lineWidth = width
}

// Render draws and then empties the pending batch.
func (r *LineRenderer) Render(pass int, cam camera.Camera) {
	if r.lines.Len() == 0 {
		return
	}

	r.effect.Use()
	r.pos.Enable()
	r.color.Enable()

	cam.Upload(pass, r.proj, r.view)

	r.color.BindSubBuffer(r.lines, 1, 1)
	r.pos.BindSubBuffer(r.lines, 1, 0)

	ctx := r.effect.Context()
	ctx.LineWidth(r.lineWidth)
	ctx.DrawArrays(gfx.Lines, 0, int32(r.lines.Len()/2))
	ctx.LineWidth(1)

	r.pos.Disable()
	r.color.Disable()

	r.lines.Clear()
}

package renderer

import (
	"github.com/Carmen-Shannon/glint-go/engine/camera"
	"github.com/Carmen-Shannon/glint-go/engine/gfx"
	"github.com/Carmen-Shannon/glint-go/engine/resource"
	"github.com/go-gl/mathgl/mgl32"
)

const pointsVertexSrc = `#version 150
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

const pointsFragmentSrc = `#version 150
in vec3 v_color;
out vec4 frag_color;
void main() {
    frag_color = vec4(v_color, 1.0);
}
`

var _ Renderer = &PointRenderer{}

// PointRenderer batches world-space points submitted during the frame and
// draws them in a single call, emptying the batch afterwards.
type PointRenderer struct {
	effect    *resource.Effect
	pos       *resource.ShaderAttribute[mgl32.Vec3]
	color     *resource.ShaderAttribute[mgl32.Vec3]
	proj      *resource.ShaderUniform[mgl32.Mat4]
	view      *resource.ShaderUniform[mgl32.Mat4]
	points    *resource.GPUVec[mgl32.Vec3]
	pointSize float32
}

// NewPointRenderer compiles the point shader and allocates an empty
// stream-draw batch. Panics when the driver rejects the built-in sources.
func NewPointRenderer(ctx gfx.Context) *PointRenderer {
	effect := resource.NewEffect(ctx, pointsVertexSrc, pointsFragmentSrc)
	return &PointRenderer{
		effect:    effect,
		pos:       resource.GetAttrib[mgl32.Vec3](effect, "position"),
		color:     resource.GetAttrib[mgl32.Vec3](effect, "color"),
		proj:      resource.GetUniform[mgl32.Mat4](effect, "proj"),
		view:      resource.GetUniform[mgl32.Mat4](effect, "view"),
		points:    resource.NewGPUVec(ctx, []mgl32.Vec3{}, resource.ArrayBuffer, resource.StreamDraw),
		pointSize: 1,
	}
}

// NeedsRendering reports whether any points are pending.
func (r *PointRenderer) NeedsRendering() bool {
	return r.points.Len() != 0
}

// DrawPoint queues one point for the current frame.
func (r *PointRenderer) DrawPoint(pt, color mgl32.Vec3) {
	r.points.Push(pt)
	r.points.Push(color)
}

// SetPointSize sets the rasterized size used for every queued point.
func (r *PointRenderer) SetPointSize(size float32) {
	r.pointSize = size
}

// Render draws and then empties the pending batch.
func (r *PointRenderer) Render(pass int, cam camera.Camera) {
	if r.points.Len() == 0 {
		return
	}

	r.effect.Use()
	r.pos.Enable()
	r.color.Enable()

	cam.Upload(pass, r.proj, r.view)

	r.color.BindSubBuffer(r.points, 1, 1)
	r.pos.BindSubBuffer(r.points, 1, 0)

	ctx := r.effect.Context()
	ctx.PointSize(r.pointSize)
	ctx.DrawArrays(gfx.Points, 0, int32(r.points.Len()/2))
	ctx.PointSize(1)

	r.pos.Disable()
	r.color.Disable()

	r.points.Clear()
}

package resource

import (
	"testing"

	"github.com/Carmen-Shannon/glint-go/engine/gfx"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testVertexSrc = `#version 150
uniform mat4 proj;
in vec3 position;
void main() { gl_Position = proj * vec4(position, 1.0); }
`

const testFragmentSrc = `#version 150
out vec4 frag_color;
void main() { frag_color = vec4(1.0); }
`

func TestEffectResolvesHandles(t *testing.T) {
	ctx := gfx.NewTestContext()
	e := NewEffect(ctx, testVertexSrc, testFragmentSrc)

	proj := GetUniform[mgl32.Mat4](e, "proj")
	require.NotNil(t, proj)
	proj.Upload(mgl32.Ident4())
}

func TestAttributeBindUploadsLazily(t *testing.T) {
	ctx := gfx.NewTestContext()
	e := NewEffect(ctx, testVertexSrc, testFragmentSrc)
	pos := GetAttrib[float32](e, "position")

	v := NewGPUVec(ctx, []float32{1, 2, 3}, ArrayBuffer, StreamDraw)
	require.False(t, v.IsOnGPU())

	// Bind uploads pending CPU data before pointing the attribute at it.
	pos.Enable()
	pos.Bind(v)
	assert.True(t, v.IsOnGPU())
	assert.Equal(t, 1, ctx.BufferDataCount)

	pos.Bind(v)
	assert.Equal(t, 1, ctx.BufferDataCount)

	pos.Disable()
	assert.Empty(t, ctx.EnabledAttribs)
}

func TestAttributeBindSubBufferUploadsLazily(t *testing.T) {
	ctx := gfx.NewTestContext()
	e := NewEffect(ctx, testVertexSrc, testFragmentSrc)
	pos := GetAttrib[float32](e, "position")

	v := NewGPUVec(ctx, []float32{1, 2, 3, 4}, ArrayBuffer, StreamDraw)
	pos.BindSubBuffer(v, 1, 0)
	assert.True(t, v.IsOnGPU())
}

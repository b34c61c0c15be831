package resource

import (
	"testing"

	"github.com/Carmen-Shannon/glint-go/engine/gfx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGPUVecLoadToGPUIsIdempotent(t *testing.T) {
	ctx := gfx.NewTestContext()
	v := NewGPUVec(ctx, []float32{1, 2, 3}, ArrayBuffer, StaticDraw)

	v.LoadToGPU()
	v.LoadToGPU()

	assert.True(t, v.IsOnGPU())
	assert.Equal(t, 1, ctx.BufferDataCount)
	assert.Equal(t, 0, ctx.BufferSubDataCount)
}

func TestGPUVecGrowReallocates(t *testing.T) {
	ctx := gfx.NewTestContext()
	v := NewGPUVec(ctx, []float32{1, 2}, ArrayBuffer, DynamicDraw)
	v.LoadToGPU()

	v.Push(3, 4)
	v.LoadToGPU()

	assert.Equal(t, 2, ctx.BufferDataCount)
	assert.Equal(t, 4, v.Len())
}

func TestGPUVecShrinkReusesAllocation(t *testing.T) {
	ctx := gfx.NewTestContext()
	v := NewGPUVec(ctx, []float32{1, 2, 3, 4}, ArrayBuffer, DynamicDraw)
	v.LoadToGPU()

	v.SetData([]float32{5, 6})
	v.LoadToGPU()

	assert.Equal(t, 1, ctx.BufferDataCount)
	assert.Equal(t, 1, ctx.BufferSubDataCount)
	assert.Equal(t, 2, v.Len())
}

func TestGPUVecClearKeepsAllocation(t *testing.T) {
	ctx := gfx.NewTestContext()
	v := NewGPUVec(ctx, []float32{1, 2, 3}, ArrayBuffer, StreamDraw)
	v.LoadToGPU()

	v.Clear()
	assert.Equal(t, 0, v.Len())

	v.Push(7)
	v.LoadToGPU()

	// One element still fits the three-element allocation.
	assert.Equal(t, 1, ctx.BufferDataCount)
	assert.Equal(t, 1, ctx.BufferSubDataCount)
}

func TestGPUVecUnloadFromRAMSyncsFirst(t *testing.T) {
	ctx := gfx.NewTestContext()
	v := NewGPUVec(ctx, []float32{1, 2, 3}, ArrayBuffer, StaticDraw)

	v.UnloadFromRAM()

	assert.True(t, v.IsOnGPU())
	assert.False(t, v.IsOnRAM())
	assert.Equal(t, 1, ctx.BufferDataCount)
	assert.Equal(t, 3, v.Len())
	assert.Nil(t, v.Data())
	assert.Nil(t, v.MutData())
}

func TestGPUVecPushPanicsWithoutCPUCopy(t *testing.T) {
	ctx := gfx.NewTestContext()
	v := NewGPUVec(ctx, []float32{1}, ArrayBuffer, StaticDraw)
	v.UnloadFromRAM()

	require.Panics(t, func() { v.Push(2) })
}

func TestGPUVecBindUploadsLazily(t *testing.T) {
	ctx := gfx.NewTestContext()
	v := NewGPUVec(ctx, []float32{1}, ArrayBuffer, StaticDraw)

	v.Bind()
	assert.True(t, v.IsOnGPU())
	assert.Equal(t, 1, ctx.BufferDataCount)

	v.Bind()
	assert.Equal(t, 1, ctx.BufferDataCount)
}

func TestGPUVecBindPanicsWhenResidentNowhere(t *testing.T) {
	ctx := gfx.NewTestContext()
	v := NewGPUVec(ctx, []float32{1}, ArrayBuffer, StaticDraw)
	v.UnloadFromRAM()
	v.UnloadFromGPU()

	require.Panics(t, func() { v.Bind() })
}

func TestGPUVecUnloadFromGPURestoresOnNextUpload(t *testing.T) {
	ctx := gfx.NewTestContext()
	v := NewGPUVec(ctx, []float32{1, 2}, ArrayBuffer, StaticDraw)
	v.LoadToGPU()

	v.UnloadFromGPU()
	assert.False(t, v.IsOnGPU())
	assert.Len(t, ctx.DeletedBuffers, 1)

	v.LoadToGPU()
	assert.True(t, v.IsOnGPU())
	assert.Equal(t, 2, ctx.BufferDataCount)
}

func TestGPUVecMutDataMarksDirty(t *testing.T) {
	ctx := gfx.NewTestContext()
	v := NewGPUVec(ctx, []float32{1, 2}, ArrayBuffer, DynamicDraw)
	v.LoadToGPU()

	v.MutData()[0] = 9
	v.LoadToGPU()

	assert.Equal(t, 1, ctx.BufferSubDataCount)
}

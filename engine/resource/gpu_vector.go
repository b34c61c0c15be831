// Package resource holds the GPU-facing building blocks of the engine:
// buffers that shadow CPU slices, shader programs with typed uniform and
// attribute handles, meshes built from shared vertex streams, and the
// name-keyed managers handing those out.
package resource

import (
	"github.com/Carmen-Shannon/glint-go/common"
	"github.com/Carmen-Shannon/glint-go/engine/gfx"
)

// BufferType selects which binding target a GPUVec uploads to.
type BufferType uint32

const (
	// ArrayBuffer holds per-vertex data (positions, normals, colors).
	ArrayBuffer BufferType = BufferType(gfx.ArrayBuffer)
	// ElementArrayBuffer holds vertex indices.
	ElementArrayBuffer BufferType = BufferType(gfx.ElementArrayBuffer)
)

// AllocationType is the usage hint passed to the backend on allocation.
type AllocationType uint32

const (
	// StaticDraw is for data uploaded once and drawn many times.
	StaticDraw AllocationType = AllocationType(gfx.StaticDraw)
	// DynamicDraw is for data that is occasionally modified.
	DynamicDraw AllocationType = AllocationType(gfx.DynamicDraw)
	// StreamDraw is for data rewritten every frame.
	StreamDraw AllocationType = AllocationType(gfx.StreamDraw)
)

// GPUVec is a typed slice that can live on the CPU, the GPU, or both at
// once. CPU-side mutation marks the vector dirty; the next upload brings the
// GPU copy back in sync. Uploading an unchanged, already-resident vector is
// a no-op.
//
// A GPUVec is not safe for concurrent use.
type GPUVec[T any] struct {
	ctx   gfx.Context
	buf   gfx.Buffer
	onGPU bool
	dirty bool

	// gpuLen is the element count currently allocated on the GPU. Uploads
	// that fit inside it reuse the allocation through a sub-range write.
	gpuLen int

	// length mirrors len(data) so the size stays observable after the CPU
	// copy has been dropped.
	length int
	data   []T
	onRAM  bool

	btype BufferType
	atype AllocationType
}

// NewGPUVec wraps a CPU slice in a GPU-shadowed vector. Nothing is uploaded
// until LoadToGPU is called; the vector starts dirty.
//
// Parameters:
//   - ctx: graphics context used for all uploads
//   - data: initial CPU contents, may be empty
//   - btype: binding target
//   - atype: allocation usage hint
//
// Returns:
//   - *GPUVec[T]: the wrapped vector
func NewGPUVec[T any](ctx gfx.Context, data []T, btype BufferType, atype AllocationType) *GPUVec[T] {
	return &GPUVec[T]{
		ctx:    ctx,
		data:   data,
		onRAM:  true,
		dirty:  true,
		length: len(data),
		btype:  btype,
		atype:  atype,
	}
}

// Len reports the number of elements, whether or not the CPU copy is still
// resident.
func (v *GPUVec[T]) Len() int {
	if v.onRAM {
		return len(v.data)
	}
	return v.length
}

// IsOnRAM reports whether the CPU copy is resident.
func (v *GPUVec[T]) IsOnRAM() bool { return v.onRAM }

// IsOnGPU reports whether a GPU allocation exists.
func (v *GPUVec[T]) IsOnGPU() bool { return v.onGPU }

// Data returns the CPU contents for reading, or nil when the CPU copy has
// been unloaded. Callers must not mutate the returned slice; use MutData.
func (v *GPUVec[T]) Data() []T {
	if !v.onRAM {
		return nil
	}
	return v.data
}

// MutData returns the CPU contents for in-place mutation and marks the
// vector dirty. Returns nil when the CPU copy has been unloaded.
func (v *GPUVec[T]) MutData() []T {
	if !v.onRAM {
		return nil
	}
	v.dirty = true
	return v.data
}

// SetData replaces the CPU contents entirely and marks the vector dirty.
func (v *GPUVec[T]) SetData(data []T) {
	v.data = data
	v.onRAM = true
	v.dirty = true
	v.length = len(data)
}

// Push appends elements to the CPU contents and marks the vector dirty.
// Panics when the CPU copy has been unloaded.
func (v *GPUVec[T]) Push(elems ...T) {
	if !v.onRAM {
		panic("resource: cannot push to a vector with no CPU copy")
	}
	v.data = append(v.data, elems...)
	v.dirty = true
	v.length = len(v.data)
}

// Clear empties the CPU contents, keeping the allocation for reuse, and
// marks the vector dirty. Stream buffers rewritten each frame rely on this.
func (v *GPUVec[T]) Clear() {
	if !v.onRAM {
		return
	}
	v.data = v.data[:0]
	v.dirty = true
	v.length = 0
}

// LoadToGPU synchronizes the GPU copy with the CPU contents. Clean vectors
// are left untouched. When the new size fits the existing GPU allocation the
// data is written through a sub-range update; otherwise the buffer is
// reallocated. Vectors with no CPU copy have nothing to upload.
func (v *GPUVec[T]) LoadToGPU() {
	if !v.onRAM || !v.dirty {
		return
	}

	bytes := common.SliceToBytes(v.data)
	if v.onGPU && len(v.data) <= v.gpuLen {
		v.ctx.BindBuffer(uint32(v.btype), v.buf)
		v.ctx.BufferSubData(uint32(v.btype), 0, bytes)
	} else {
		if !v.onGPU {
			v.buf = v.ctx.CreateBuffer()
			v.onGPU = true
		}
		v.ctx.BindBuffer(uint32(v.btype), v.buf)
		v.ctx.BufferData(uint32(v.btype), bytes, uint32(v.atype))
		v.gpuLen = len(v.data)
	}
	v.length = len(v.data)
	v.dirty = false
}

// Bind synchronizes the GPU copy if needed and makes this vector the active
// buffer for its target. Panics when the vector is resident nowhere.
func (v *GPUVec[T]) Bind() {
	v.LoadToGPU()
	if !v.onGPU {
		panic("resource: cannot bind a vector that is not resident on the GPU")
	}
	v.ctx.BindBuffer(uint32(v.btype), v.buf)
}

// Unbind clears the binding for this vector's target.
func (v *GPUVec[T]) Unbind() {
	v.ctx.BindBuffer(uint32(v.btype), gfx.Buffer(0))
}

// UnloadFromGPU releases the GPU allocation. The CPU copy, if any, is kept
// and marked dirty so a later upload restores the data.
func (v *GPUVec[T]) UnloadFromGPU() {
	if !v.onGPU {
		return
	}
	v.length = v.Len()
	v.ctx.DeleteBuffer(v.buf)
	v.buf = gfx.Buffer(0)
	v.onGPU = false
	v.gpuLen = 0
	if v.onRAM {
		v.dirty = true
	}
}

// UnloadFromRAM drops the CPU copy. A dirty vector that is resident on the
// GPU is synchronized first so no data is lost. The length stays observable.
func (v *GPUVec[T]) UnloadFromRAM() {
	if !v.onRAM {
		return
	}
	if v.dirty {
		v.LoadToGPU()
	}
	v.length = len(v.data)
	v.data = nil
	v.onRAM = false
	v.dirty = false
}

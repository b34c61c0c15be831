package resource

import (
	"fmt"

	"github.com/Carmen-Shannon/glint-go/common"
	"github.com/Carmen-Shannon/glint-go/engine/gfx"
	"github.com/go-gl/mathgl/mgl32"
)

// Effect is a linked shader program together with the context it was built
// on. Materials hold one Effect per shading style and fetch typed handles to
// its uniforms and attributes once, at construction.
type Effect struct {
	ctx     gfx.Context
	program gfx.Program
	vshader gfx.Shader
	fshader gfx.Shader
}

// NewEffect compiles and links a vertex/fragment shader pair. Shader sources
// ship embedded in the engine, so a failure here is a programming error and
// panics with the backend's info log.
//
// Parameters:
//   - ctx: graphics context owning the program
//   - vertexSrc: GLSL vertex shader source
//   - fragmentSrc: GLSL fragment shader source
//
// Returns:
//   - *Effect: the linked program
func NewEffect(ctx gfx.Context, vertexSrc, fragmentSrc string) *Effect {
	vshader := ctx.CreateShader(gfx.VertexShader)
	ctx.ShaderSource(vshader, vertexSrc)
	if err := ctx.CompileShader(vshader); err != nil {
		panic(fmt.Sprintf("resource: vertex %v", err))
	}

	fshader := ctx.CreateShader(gfx.FragmentShader)
	ctx.ShaderSource(fshader, fragmentSrc)
	if err := ctx.CompileShader(fshader); err != nil {
		panic(fmt.Sprintf("resource: fragment %v", err))
	}

	program := ctx.CreateProgram()
	ctx.AttachShader(program, vshader)
	ctx.AttachShader(program, fshader)
	if err := ctx.LinkProgram(program); err != nil {
		panic(fmt.Sprintf("resource: %v", err))
	}

	return &Effect{ctx: ctx, program: program, vshader: vshader, fshader: fshader}
}

// Use installs the program into the rendering state.
func (e *Effect) Use() {
	e.ctx.UseProgram(e.program)
}

// Context returns the graphics context the program was built on.
func (e *Effect) Context() gfx.Context {
	return e.ctx
}

// Delete releases the program and both shader stages.
func (e *Effect) Delete() {
	e.ctx.DeleteProgram(e.program)
	e.ctx.DeleteShader(e.vshader)
	e.ctx.DeleteShader(e.fshader)
}

// UniformType constrains the value types a shader uniform can carry.
type UniformType interface {
	int32 | float32 | mgl32.Vec2 | mgl32.Vec3 | mgl32.Vec4 | mgl32.Mat2 | mgl32.Mat3 | mgl32.Mat4
}

// ShaderUniform is a typed handle to a uniform variable of an Effect.
type ShaderUniform[T UniformType] struct {
	ctx gfx.Context
	loc gfx.UniformLocation
}

// GetUniform resolves a uniform by name. The engine's shaders declare every
// uniform the materials reference, so an unknown name panics.
//
// Parameters:
//   - e: effect to resolve against
//   - name: uniform variable name as spelled in the GLSL source
//
// Returns:
//   - *ShaderUniform[T]: typed handle usable while the effect is in use
func GetUniform[T UniformType](e *Effect, name string) *ShaderUniform[T] {
	loc, ok := e.ctx.GetUniformLocation(e.program, name)
	if !ok {
		panic("resource: unknown uniform name: " + name)
	}
	return &ShaderUniform[T]{ctx: e.ctx, loc: loc}
}

// Upload sends a value to the uniform. The owning effect must be in use.
func (u *ShaderUniform[T]) Upload(value T) {
	switch v := any(value).(type) {
	case int32:
		u.ctx.Uniform1i(u.loc, v)
	case float32:
		u.ctx.Uniform1f(u.loc, v)
	case mgl32.Vec2:
		u.ctx.Uniform2f(u.loc, v.X(), v.Y())
	case mgl32.Vec3:
		u.ctx.Uniform3f(u.loc, v.X(), v.Y(), v.Z())
	case mgl32.Vec4:
		u.ctx.Uniform4f(u.loc, v.X(), v.Y(), v.Z(), v.W())
	case mgl32.Mat2:
		u.ctx.UniformMatrix2fv(u.loc, v)
	case mgl32.Mat3:
		u.ctx.UniformMatrix3fv(u.loc, v)
	case mgl32.Mat4:
		u.ctx.UniformMatrix4fv(u.loc, v)
	}
}

// AttribType constrains the element types a vertex attribute can stream.
type AttribType interface {
	float32 | mgl32.Vec2 | mgl32.Vec3 | mgl32.Vec4
}

// ShaderAttribute is a typed handle to a vertex attribute of an Effect.
type ShaderAttribute[T AttribType] struct {
	ctx gfx.Context
	loc gfx.AttribLocation
}

// GetAttrib resolves a vertex attribute by name. An unknown name panics for
// the same reason GetUniform does.
func GetAttrib[T AttribType](e *Effect, name string) *ShaderAttribute[T] {
	loc, ok := e.ctx.GetAttribLocation(e.program, name)
	if !ok {
		panic("resource: unknown attribute name: " + name)
	}
	return &ShaderAttribute[T]{ctx: e.ctx, loc: loc}
}

// Enable turns the attribute on for subsequent draws.
func (a *ShaderAttribute[T]) Enable() {
	a.ctx.EnableVertexAttribArray(a.loc)
}

// Disable turns the attribute off.
func (a *ShaderAttribute[T]) Disable() {
	a.ctx.DisableVertexAttribArray(a.loc)
}

// Bind points the attribute at a tightly packed vector of T, uploading any
// pending CPU-side changes first.
func (a *ShaderAttribute[T]) Bind(v *GPUVec[T]) {
	v.Bind()
	a.ctx.VertexAttribPointer(a.loc, int32(common.SizeOf[T]()/4), gfx.Float, false, 0, 0)
}

// BindSubBuffer points the attribute at an interleaved vector of T,
// skipping strides elements between consecutive reads and starting at
// element startIndex. Batched renderers interleave position and color in
// one stream buffer this way.
//
// Parameters:
//   - v: interleaved vector to read from
//   - strides: elements to skip between reads
//   - startIndex: element offset of the first read
func (a *ShaderAttribute[T]) BindSubBuffer(v *GPUVec[T], strides, startIndex int) {
	v.Bind()
	size := common.SizeOf[T]()
	a.ctx.VertexAttribPointer(
		a.loc,
		int32(size/4),
		gfx.Float,
		false,
		int32((strides+1)*size),
		startIndex*size,
	)
}
